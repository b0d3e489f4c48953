package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByVariant(t *testing.T) {
	t.Parallel()

	channels := demoChannels(t)

	tests := []struct {
		variant  Variant
		expected []int // channels 인덱스
	}{
		{VariantEmail, []int{0, 3}},
		{VariantSMS, []int{1}},
		{VariantPush, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			filtered := FilterByVariant(channels, tt.variant)

			require.Len(t, filtered, len(tt.expected))
			for i, idx := range tt.expected {
				assert.Equal(t, channels[idx], filtered[i])
				assert.Equal(t, tt.variant, filtered[i].Variant())
			}
		})
	}
}

func TestFilterByVariant_Absent(t *testing.T) {
	t.Parallel()

	channels := []Channel{mustEmail(t, "a@b.c", NewMessage(KindAlert, "x", PriorityLow))}

	filtered := FilterByVariant(channels, VariantPush)
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)

	assert.Empty(t, FilterByVariant(nil, VariantEmail))
}

func TestFilterByVariant_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	channels := demoChannels(t)
	snapshot := append([]Channel(nil), channels...)

	_ = FilterByVariant(channels, VariantSMS)

	assert.Equal(t, snapshot, channels)
}

func TestFilterAs(t *testing.T) {
	t.Parallel()

	channels := demoChannels(t)

	emails := FilterAs[EmailChannel](channels)
	require.Len(t, emails, 2)
	assert.Equal(t, "usuario@exemplo.com", emails[0].Address())
	assert.Equal(t, "pepo@pepo.com", emails[1].Address())

	pushes := FilterAs[PushChannel](channels)
	require.Len(t, pushes, 1)
	assert.Equal(t, "abcd1234efgh5678", pushes[0].DeviceToken())

	assert.Empty(t, FilterAs[SMSChannel](channels[:1]))
}

func TestCountByVariant(t *testing.T) {
	t.Parallel()

	counts := CountByVariant(demoChannels(t))

	assert.Equal(t, 2, counts[VariantEmail])
	assert.Equal(t, 1, counts[VariantSMS])
	assert.Equal(t, 1, counts[VariantPush])
	assert.Empty(t, CountByVariant(nil))
}
