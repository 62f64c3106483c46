package noise

import (
	"math"
)

// Worley implements simplified hash-based cellular noise, scanning the
// 3x3x3 neighborhood of unit cells around the sample point, grounded on
// original_source/src/noise.rs::WorleyNoise.
type Worley struct {
	PointDensity float64
	Seed         uint32
}

// NewWorley constructs a Worley noise generator.
func NewWorley(pointDensity float64, seed uint32) *Worley {
	return &Worley{PointDensity: pointDensity, Seed: seed}
}

// hash produces a deterministic pseudo-random value in [0,1) for a cell
// coordinate and the generator's seed.
func (w *Worley) hash(x, y, z int) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + uint32(z)*2147483647 + w.Seed*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h%1000000) / 1000000.0
}

// featurePoint returns the jittered feature point inside cell (cx,cy,cz).
func (w *Worley) featurePoint(cx, cy, cz int) (px, py, pz float64) {
	fx := w.hash(cx, cy, cz)
	fy := w.hash(cx+17, cy+31, cz+7)
	fz := w.hash(cx+91, cy+3, cz+53)
	return float64(cx) + fx, float64(cy) + fy, float64(cz) + fz
}

// Noise returns the distance to the nearest feature point, scaled by
// PointDensity; always >= 0 per spec.md §8.
func (w *Worley) Noise(x, y, z float64) float64 {
	cx := int(math.Floor(x))
	cy := int(math.Floor(y))
	cz := int(math.Floor(z))

	minDist := math.MaxFloat64
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				px, py, pz := w.featurePoint(cx+dx, cy+dy, cz+dz)
				ddx, ddy, ddz := x-px, y-py, z-pz
				d := math.Sqrt(ddx*ddx + ddy*ddy + ddz*ddz)
				if d < minDist {
					minDist = d
				}
			}
		}
	}
	return minDist * w.PointDensity
}
