package notification

// FilterByVariant 채널 목록에서 종류가 v인 채널만 원래 순서대로 골라 반환합니다.
//
// 입력 슬라이스는 변경하지 않으며, 일치하는 채널이 없으면 빈 슬라이스를 반환합니다.
func FilterByVariant(channels []Channel, v Variant) []Channel {
	filtered := make([]Channel, 0, len(channels))
	for _, c := range channels {
		if c.Variant() == v {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// FilterAs 채널 목록에서 구체 타입이 T인 채널만 원래 순서대로 골라 반환합니다.
//
//	emails := FilterAs[EmailChannel](channels)
func FilterAs[T Channel](channels []Channel) []T {
	filtered := make([]T, 0, len(channels))
	for _, c := range channels {
		if t, ok := c.(T); ok {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// CountByVariant 채널 종류별 개수를 반환합니다.
func CountByVariant(channels []Channel) map[Variant]int {
	counts := make(map[Variant]int, len(variantNames))
	for _, c := range channels {
		counts[c.Variant()]++
	}
	return counts
}
