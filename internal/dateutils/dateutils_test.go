package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"ISO", "2025-03-15", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"RFC3339", "2025-03-15T10:20:30Z", time.Date(2025, 3, 15, 10, 20, 30, 0, time.UTC), false},
		{"ISO no zone", "2025-03-15T10:20:30", time.Date(2025, 3, 15, 10, 20, 30, 0, time.UTC), false},
		{"full", "2025-03-15 10:20:30", time.Date(2025, 3, 15, 10, 20, 30, 0, time.UTC), false},
		{"european dots", "15.03.2025", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"european slashes", "15/03/2025", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"month name", "March 15, 2025", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"extra whitespace", "  2025-03-15 ", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "not a date", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "expected %v, got %v", tt.want, got)
		})
	}
}

func TestToISODate(t *testing.T) {
	d := time.Date(2025, 7, 4, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-04", ToISODate(d))
}

func TestToISOTimestamp(t *testing.T) {
	d := time.Date(2025, 7, 4, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-04T18:30:00Z", ToISOTimestamp(d))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "2025-03-15", CleanDateString("  2025-03-15  "))
	assert.Equal(t, "March 15, 2025", CleanDateString("March   15,  2025"))
}
