package integrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		token string
		want  Algorithm
	}{
		{"trap", Trapezoidal},
		{"Trap ", Trapezoidal},
		{"  TRAP\t", Trapezoidal},
		{"simp", Simpson},
		{"Simp", Simpson},
		{"\nSIMP", Simpson},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlgorithm_Unknown(t *testing.T) {
	for _, token := range []string{"", "quad", "trapezoid", "sim p"} {
		_, err := ParseAlgorithm(token)
		require.Error(t, err, "token %q", token)
		assert.True(t, IsKind(err, KindUnknownAlgorithm))
	}
}

func TestAlgorithmString(t *testing.T) {
	assert.Equal(t, "trap", Trapezoidal.String())
	assert.Equal(t, "simp", Simpson.String())
	assert.Equal(t, "unknown", Algorithm(9).String())
	assert.Equal(t, 2, Trapezoidal.MinSamples())
	assert.Equal(t, 3, Simpson.MinSamples())
}

func TestParseBounds(t *testing.T) {
	lims, err := ParseBounds([]string{"1.5", " 4 "})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 4}, lims)

	_, err = ParseBounds([]string{"1"})
	assert.Equal(t, KindBoundsLength, KindOf(err))

	_, err = ParseBounds([]string{"one", "two"})
	assert.Equal(t, KindBoundsType, KindOf(err))

	_, err = ParseBounds([]string{"0", "inf"})
	assert.Equal(t, KindBoundsType, KindOf(err))
}

func TestError_Format(t *testing.T) {
	_, err := Gauss(nil, []float64{0, 1}, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_CALLABLE")

	wrapped := &wrapErr{err}
	assert.Equal(t, KindNotCallable, KindOf(wrapped))
	assert.False(t, IsKind(nil, KindNotCallable))
	assert.Equal(t, ErrorKind(""), KindOf(assert.AnError))
}

type wrapErr struct{ err error }

func (w *wrapErr) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrapErr) Unwrap() error { return w.err }
