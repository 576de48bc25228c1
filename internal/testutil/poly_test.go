package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoly(t *testing.T) {
	p := Poly(2, 0, 1) // x^2 + 2
	assert.Equal(t, 2.0, p(0))
	assert.Equal(t, 27.0, p(5))
}

func TestPolyIntegral(t *testing.T) {
	assert.InDelta(t, 155.0/3, PolyIntegral([]float64{2, 0, 1}, 0, 5), 1e-12)
	assert.InDelta(t, 80.0, PolyIntegral([]float64{6, 1}, 0, 8), 1e-12)
	assert.InDelta(t, -80.0, PolyIntegral([]float64{6, 1}, 8, 0), 1e-12)
}

func TestMonomial(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0, 3}, Monomial(3, 3))
}

func TestCountingFunc_Concurrent(t *testing.T) {
	c := NewCountingFunc(Poly(1))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Eval(float64(j))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1000), c.Calls())
}

func TestArange(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, Arange(1, 10, 1))
	assert.Empty(t, Arange(1, 1, 1))
}

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 2, 5)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, xs)
	assert.Equal(t, []float64{3}, Linspace(3, 7, 1))
}

func TestSample(t *testing.T) {
	assert.Equal(t, []float64{2, 3, 6}, Sample(Poly(2, 0, 1), []float64{0, 1, 2}))
}
