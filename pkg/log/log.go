// Package log logrus 기반의 애플리케이션 로깅 설정과 헬퍼를 제공합니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// SetDebugMode Debug 모드에 따라 로그 레벨을 설정합니다.
//   - Debug 모드: Trace 레벨
//   - 운영 모드: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// MaskSensitiveData 전화번호, 디바이스 토큰 등 민감한 값을 로그용으로 마스킹합니다.
// 길이는 문자(rune) 단위로 계산하며, 4자 이하의 값은 전체를 가립니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	r := []rune(data)
	switch {
	case len(r) <= 4:
		return "***"
	case len(r) <= 12:
		return string(r[:4]) + "***"
	default:
		return string(r[:4]) + "***" + string(r[len(r)-4:])
	}
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return logrus.WithFields(newFields)
}
