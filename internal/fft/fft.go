// Package fft implements a radix-2 Cooley-Tukey FFT/IFFT over complex128,
// plus the row/column 2-D transform the ocean generator needs. No FFT
// library appears anywhere in the retrieved example pack (the teacher has
// none; the original Rust used rustfft, which has no Go equivalent in the
// pack), so this is hand-rolled and documented in DESIGN.md as the one
// deliberate standard-library-only component of the domain stack.
package fft

import "math/cmplx"

// Complex is an alias for the standard library's complex128, matching the
// shape of original_source/src/ocean.rs's rustfft::num_complex::Complex
// usage.
type Complex = complex128

// fft1D computes the radix-2 in-place Cooley-Tukey transform of data
// (length must be a power of two). inverse selects the IFFT sign
// convention; scaling by 1/n is the caller's responsibility (matching the
// original's separate `.unscale(size)` step).
func fft1D(data []Complex, inverse bool) {
	n := len(data)
	if n <= 1 {
		return
	}

	// bit-reversal permutation
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for length := 2; length <= n; length <<= 1 {
		angle := sign * 2 * 3.141592653589793 / float64(length)
		wlen := cmplx.Rect(1, angle)
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			half := length / 2
			for j := 0; j < half; j++ {
				u := data[i+j]
				v := data[i+j+half] * w
				data[i+j] = u + v
				data[i+j+half] = u - v
				w *= wlen
			}
		}
	}
}

// Transpose returns the transpose of a size x size matrix stored
// row-major, matching original_source/src/ocean.rs::transpose.
func Transpose(m []Complex, size int) []Complex {
	out := make([]Complex, len(m))
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			out[x*size+y] = m[y*size+x]
		}
	}
	return out
}

// FFT2 performs the real-to-frequency 2-D transform (row pass, transpose,
// column pass, transpose), matching original_source/src/ocean.rs::fft2.
func FFT2(tile []Complex, size int) []Complex {
	return transform2D(tile, size, false, false)
}

// IFFT2 performs the inverse 2-D transform with 1/size scaling after each
// pass, matching original_source/src/ocean.rs::ifft2.
func IFFT2(tile []Complex, size int) []Complex {
	return transform2D(tile, size, true, true)
}

func transform2D(tile []Complex, size int, inverse, scale bool) []Complex {
	work := make([]Complex, len(tile))
	copy(work, tile)

	rowPass(work, size, inverse, scale)
	work = Transpose(work, size)
	rowPass(work, size, inverse, scale)
	return Transpose(work, size)
}

func rowPass(data []Complex, size int, inverse, scale bool) {
	row := make([]Complex, size)
	for r := 0; r < size; r++ {
		copy(row, data[r*size:r*size+size])
		fft1D(row, inverse)
		if scale {
			s := complex(1/float64(size), 0)
			for i := range row {
				row[i] *= s
			}
		}
		copy(data[r*size:r*size+size], row)
	}
}
