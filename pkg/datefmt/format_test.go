package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat_Styles(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 10, 4, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		style Style
		want  string
	}{
		{DateSort, "2024-10-04"},
		{DateShort, "10/04/2024"},
		{DateMed, "4 Oct 2024"},
		{DateLong, "Friday, October 4, 2024"},
		{TimeSort, "14:30 UTC"},
		{TimeShort, "2:30 PM"},
		{TimeMed, "2:30:45 PM"},
		{TimeLong, "2:30:45 PM UTC"},
		{FullSort, "2024-10-04 14:30 UTC"},
		{FullShort, "10/04/2024 2:30 PM UTC"},
		{FullMed, "4 Oct 2024 2:30 PM UTC"},
		{FullLong, "Friday, October 4, 2024 2:30 PM UTC"},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Format(ts, tt.style))
		})
	}
}

func TestFormat_CustomLayout(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 10, 4, 14, 30, 45, 0, time.UTC)
	require.Equal(t, "2024/10/04", Format(ts, Style("2006/01/02")))
}

func TestFormatUnix_Location(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	ts := time.Date(2024, 10, 4, 14, 30, 0, 0, time.UTC).Unix()
	require.Equal(t, "2024-10-04 10:30 EDT", FormatUnix(ts, FullSort, loc))
}
