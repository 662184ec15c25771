package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "aligned", input: "0930-1100", wantStart: "0930", wantEnd: "1100"},
		{name: "rounded outwards", input: "0945-1450", wantStart: "0930", wantEnd: "1500"},
		{name: "surrounding spaces", input: "  1000-1030 ", wantStart: "1000", wantEnd: "1030"},
		{name: "empty range", input: "1000-1000", wantStart: "1000", wantEnd: "1000"},
		{name: "same slot after rounding", input: "1005-1010", wantStart: "1000", wantEnd: "1030"},
		{name: "end rounds to end of day", input: "2300-2350", wantStart: "2300", wantEnd: "2400"},
		{name: "inverted", input: "1400-1200", wantErr: true},
		{name: "hour out of range", input: "2400-2430", wantErr: true},
		{name: "minute out of range", input: "0960-1000", wantErr: true},
		{name: "missing dash", input: "09301000", wantErr: true},
		{name: "garbage", input: "now", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeRange(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.Start.String())
			assert.Equal(t, tt.wantEnd, got.End.String())
		})
	}
}

func TestTimeRangeValidate(t *testing.T) {
	assert.NoError(t, TimeRange{Start: 600, End: 660}.Validate())
	assert.ErrorIs(t, TimeRange{Start: 600, End: 645}.Validate(), ErrInvalidTimeRange)
	assert.ErrorIs(t, TimeRange{Start: 660, End: 600}.Validate(), ErrInvalidTimeRange)
	assert.ErrorIs(t, TimeRange{Start: EndOfDay, End: EndOfDay}.Validate(), ErrInvalidTimeRange)
	assert.True(t, TimeRange{Start: 600, End: 600}.IsEmpty())
}
