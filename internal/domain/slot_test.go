package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Slot
		wantErr bool
	}{
		{name: "midnight", input: "0000", want: 0},
		{name: "half past nine", input: "0930", want: 9*60 + 30},
		{name: "last slot of day", input: "2330", want: 23*60 + 30},
		{name: "not aligned", input: "0945", wantErr: true},
		{name: "hour out of range", input: "2400", wantErr: true},
		{name: "minute out of range", input: "0960", wantErr: true},
		{name: "too short", input: "930", wantErr: true},
		{name: "with colon", input: "09:30", wantErr: true},
		{name: "letters", input: "09a0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlot(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSlot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestFloorAndCeilSlot(t *testing.T) {
	assert.Equal(t, Slot(600), FloorSlot(600))
	assert.Equal(t, Slot(600), FloorSlot(629))
	assert.Equal(t, Slot(630), CeilSlot(601))
	assert.Equal(t, Slot(630), CeilSlot(630))
	assert.Equal(t, EndOfDay, CeilSlot(23*60+50))
}

func TestSlotOf(t *testing.T) {
	loc := time.FixedZone("SGT", 8*60*60)

	assert.Equal(t, "1000", SlotOf(time.Date(2024, 3, 4, 10, 0, 0, 0, loc)).String())
	assert.Equal(t, "1000", SlotOf(time.Date(2024, 3, 4, 10, 29, 59, 0, loc)).String())
	assert.Equal(t, "1030", SlotOf(time.Date(2024, 3, 4, 10, 30, 0, 0, loc)).String())
	assert.Equal(t, "0000", SlotOf(time.Date(2024, 3, 4, 0, 5, 0, 0, loc)).String())
}

func TestSlotText(t *testing.T) {
	var s Slot
	require.NoError(t, s.UnmarshalText([]byte("2130")))
	assert.Equal(t, LastCheckedSlot, s)

	text, err := s.Next().MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2200", string(text))

	assert.Error(t, s.UnmarshalText([]byte("2115")))
	assert.Equal(t, "2400", EndOfDay.String())
}
