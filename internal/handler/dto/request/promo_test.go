//go:build unit

package request_test

import (
	"encoding/json"
	"testing"
	"time"

	"bayashop-backoffice/internal/handler/dto/request"
	"bayashop-backoffice/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshal(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", in: `"2025-06-01T08:30:00Z"`, want: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)},
		{name: "rfc3339 with offset", in: `"2025-06-01T10:30:00+02:00"`, want: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)},
		{name: "date only is midnight utc", in: `"2025-06-01"`, want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "date time without zone", in: `"2025-06-01 08:30:00"`, want: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)},
		{name: "french format", in: `"01/06/2025"`, wantErr: true},
		{name: "number", in: `20250601`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d request.Date
			err := json.Unmarshal([]byte(tc.in), &d)
			if tc.wantErr {
				require.ErrorIs(t, err, request.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(d.Time), "want %s got %s", tc.want, d.Time)
		})
	}
}

func TestPromoCodeRequestToInput(t *testing.T) {
	payload := `{
		"Code": "NOEL",
		"Reduction": 12.5,
		"DateDebut": "2025-12-01",
		"DateFin": "2025-12-31T23:59:59Z",
		"productScope": "specific",
		"productIds": [4, 2]
	}`

	var req request.PromoCodeRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	input, err := req.ToInput()
	require.NoError(t, err)

	want := commands.PromoInput{
		Code:          "NOEL",
		Reduction:     12.5,
		StartDate:     time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		Active:        false,
		ProductScope:  "specific",
		CategoryScope: "",
		ProductIDs:    []int64{4, 2},
		CategoryIDs:   []int64{},
	}
	if diff := cmp.Diff(want, input); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}
}
