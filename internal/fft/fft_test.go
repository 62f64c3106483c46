package fft

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRoundTrip checks spec.md §8's "IFFT(FFT(x)) ≈ x" property for several
// power-of-two grid sizes.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, size := range []int{4, 8, 16, 32} {
		data := make([]Complex, size*size)
		for i := range data {
			data[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
		}

		transformed := FFT2(data, size)
		roundTripped := IFFT2(transformed, size)

		for i := range data {
			assert.InDelta(t, real(data[i]), real(roundTripped[i]), 0.1, "size=%d index=%d", size, i)
			assert.InDelta(t, imag(data[i]), imag(roundTripped[i]), 0.1, "size=%d index=%d", size, i)
		}
	}
}

func TestTransposeIsInvolution(t *testing.T) {
	size := 8
	data := make([]Complex, size*size)
	for i := range data {
		data[i] = complex(float64(i), 0)
	}

	once := Transpose(data, size)
	twice := Transpose(once, size)
	for i := range data {
		assert.Equal(t, data[i], twice[i])
	}
}

func TestFFT1DConstantSignalIsDCOnly(t *testing.T) {
	// A constant signal's DC (index 0) bin equals n*value; every other bin
	// is ~0, a standard sanity check on the 1-D transform the 2-D pass
	// builds on.
	const n = 16
	data := make([]Complex, n)
	for i := range data {
		data[i] = complex(3, 0)
	}
	fft1D(data, false)

	assert.InDelta(t, 3*n, real(data[0]), 1e-9)
	assert.InDelta(t, 0, imag(data[0]), 1e-9)
	for i := 1; i < n; i++ {
		assert.InDelta(t, 0, math.Hypot(real(data[i]), imag(data[i])), 1e-9)
	}
}
