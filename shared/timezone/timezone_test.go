package timezone_test

import (
	"hotie/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	assert.True(t, appTime.Equal(utcTime))
	assert.Equal(t, timezone.GetLocation(), appTime.Location())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		year    int
		month   time.Month
		day     int
	}{
		{name: "date only", value: "2025-06-01", year: 2025, month: time.June, day: 1},
		{name: "rfc3339", value: "2025-06-03T14:00:00Z", year: 2025, month: time.June, day: 3},
		{name: "garbage", value: "next tuesday", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseDate(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid date")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.year, got.Year())
			assert.Equal(t, tt.month, got.Month())
			assert.Equal(t, tt.day, got.Day())
		})
	}
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.NotEmpty(t, timezone.Format(testTime, time.DateTime))
}
