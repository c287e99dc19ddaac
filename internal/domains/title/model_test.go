package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating(t *testing.T) {
	tests := []struct {
		name string
		mean *string
		want *float64
	}{
		{"no reviews", nil, nil},
		{"whole", strp("7.0000000000000000"), f64p(7)},
		{"half", strp("8.5000000000000000"), f64p(8.5)},
		{"repeating mean is not rounded", strp("1.3333333333333333"), f64p(1.3333333333333333)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rating(tt.mean)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRating_MatchesArithmeticMean(t *testing.T) {
	// AVG over smallint scores 7, 7, 6
	got, err := Rating(strp("6.6666666666666667"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 20.0/3, *got, 1e-12)
}

func TestRating_Invalid(t *testing.T) {
	_, err := Rating(strp("abc"))
	assert.Error(t, err)
}

func strp(s string) *string { return &s }

func f64p(f float64) *float64 { return &f }
