package distribution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShare(t *testing.T) {
	cases := []struct {
		name      string
		shareType ShareType
		value     string
		wantErr   bool
	}{
		{"percent lower bound", SharePercent, "0", false},
		{"percent upper bound", SharePercent, "100", false},
		{"percent fraction", SharePercent, "33.3333", false},
		{"percent above 100", SharePercent, "100.01", true},
		{"percent negative", SharePercent, "-1", true},
		{"fixed zero", ShareFixed, "0", false},
		{"fixed large", ShareFixed, "1000000", false},
		{"fixed negative", ShareFixed, "-0.01", true},
		{"unknown type", ShareType("ratio"), "10", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateShare(tc.shareType, dec(tc.value))
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidShare)
			var shareErr *InvalidShareError
			require.True(t, errors.As(err, &shareErr))
			assert.Equal(t, string(tc.shareType), shareErr.ShareType)
		})
	}
}

func TestCheckPercentCeiling(t *testing.T) {
	assert.NoError(t, CheckPercentCeiling(dec("80"), dec("20")))
	assert.NoError(t, CheckPercentCeiling(dec("0"), dec("100")))

	err := CheckPercentCeiling(dec("80"), dec("25"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverAllocation)
	assert.Contains(t, err.Error(), "current total 80%")

	var overErr *OverAllocationError
	require.True(t, errors.As(err, &overErr))
	assert.Equal(t, "25", overErr.Requested.String())
}

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{Entity: "beneficiary", ID: "42", Reason: "inactive"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "beneficiary not found or inactive: 42", err.Error())
	assert.Equal(t, "waqf not found: 7", NewNotFound("waqf", "7").Error())
}
