package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "two decimals", input: "19.99", want: 1999},
		{name: "zero", input: "0", want: 0},
		{name: "whole dollars", input: "12", want: 1200},
		{name: "one decimal", input: "0.5", want: 50},
		{name: "bare fraction", input: ".5", want: 50},
		{name: "leading zeros", input: "007.50", want: 750},
		{name: "surrounding spaces", input: " 19.99 ", want: 1999},
		{name: "large amount", input: "92233720368.54", want: 9223372036854},
		{name: "three decimals", input: "19.999", wantErr: ErrTooManyDecimals},
		{name: "negative", input: "-5", wantErr: ErrNegative},
		{name: "negative with decimals", input: "-0.01", wantErr: ErrNegative},
		{name: "negative garbage", input: "-abc", wantErr: ErrNotANumber},
		{name: "not a number", input: "abc", wantErr: ErrNotANumber},
		{name: "empty", input: "", wantErr: ErrNotANumber},
		{name: "lone dot", input: ".", wantErr: ErrNotANumber},
		{name: "two dots", input: "1.2.3", wantErr: ErrNotANumber},
		{name: "comma separator", input: "1,5", wantErr: ErrNotANumber},
		{name: "scientific notation", input: "1e2", wantErr: ErrNotANumber},
		{name: "plus sign", input: "+5", wantErr: ErrNotANumber},
		{name: "trailing dot", input: "5.", wantErr: ErrNotANumber},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToMinorUnits(tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToMajorUnits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input int64
		want  string
	}{
		{name: "two decimals", input: 1999, want: "19.99"},
		{name: "trailing zero trimmed", input: 1990, want: "19.9"},
		{name: "whole dollars", input: 1200, want: "12"},
		{name: "zero", input: 0, want: "0"},
		{name: "single cent", input: 5, want: "0.05"},
		{name: "fifty cents", input: 50, want: "0.5"},
		{name: "negative", input: -1999, want: "-19.99"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ToMajorUnits(tc.input))
		})
	}
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range []int64{0, 1, 5, 50, 99, 100, 101, 1990, 1999, 123456, 100000000} {
		got, err := ToMinorUnits(ToMajorUnits(m))
		require.NoError(t, err, "minor units %d", m)
		assert.Equal(t, m, got)
	}
}
