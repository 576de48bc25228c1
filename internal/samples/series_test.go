package samples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeries() *Series {
	return &Series{
		X: []float64{0, 1, 2, 3, 4, 5, 6},
		F: []float64{0.1, -4, 2, 0.5, 0.01, 0.3, 0.001},
	}
}

func TestSeries_Peak(t *testing.T) {
	idx, peak := newSeries().Peak()
	assert.Equal(t, 1, idx)
	assert.Equal(t, 4.0, peak)

	idx, _ = (&Series{}).Peak()
	assert.Equal(t, -1, idx)
}

func TestSeries_EventWindow(t *testing.T) {
	s := newSeries()

	w, err := s.EventWindow(0.1) // threshold 0.4: last sample above is index 3
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, w.X)

	w, err = s.EventWindow(0.005) // threshold 0.02: index 5
	require.NoError(t, err)
	assert.Equal(t, 6, w.Len())

	w, err = s.EventWindow(1)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Len())
}

func TestSeries_EventWindowInvalid(t *testing.T) {
	_, err := newSeries().EventWindow(0)
	assert.Error(t, err)
	_, err = newSeries().EventWindow(1.5)
	assert.Error(t, err)
}

func TestSeries_Squared(t *testing.T) {
	s := &Series{X: []float64{0, 1, 2}, F: []float64{-2, 3, 0.5}}
	sq := s.Squared()
	assert.Equal(t, []float64{4, 9, 0.25}, sq.F)
	assert.Equal(t, []float64{-2, 3, 0.5}, s.F, "source is not modified")
}

func TestSeries_Downsample(t *testing.T) {
	s := newSeries()

	d, err := s.Downsample(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6}, d.X)
	assert.Equal(t, []float64{0.1, 2, 0.01, 0.001}, d.F)

	d, err = s.Downsample(1)
	require.NoError(t, err)
	assert.Equal(t, s.X, d.X)

	_, err = s.Downsample(0)
	assert.Error(t, err)
}

func TestSeries_Slice(t *testing.T) {
	s := newSeries()
	sl := s.Slice(1, 3)
	sl.F[0] = 99
	assert.Equal(t, -4.0, s.F[1])
}
