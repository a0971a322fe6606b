package csg

import (
	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// Contains reports whether p lies in s. Solids from other kernels never
// contain anything.
func Contains(s kernel.Solid, p r3.Vec) bool {
	return asSolid(s).Contains(p)
}

// Volume estimates the volume of s by sampling cell centers of a grid
// with the given cell size.
func Volume(s kernel.Solid, step float64) float64 {
	cs := asSolid(s)
	if step <= 0 {
		return 0
	}
	b := cs.Bounds()
	size := b.Size()
	nx := cells(size.X, step)
	ny := cells(size.Y, step)
	nz := cells(size.Z, step)
	dx, dy, dz := size.X/float64(nx), size.Y/float64(ny), size.Z/float64(nz)

	var count int
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for l := 0; l < nz; l++ {
				p := r3.Vec{
					X: b.Min.X + dx*(float64(i)+0.5),
					Y: b.Min.Y + dy*(float64(j)+0.5),
					Z: b.Min.Z + dz*(float64(l)+0.5),
				}
				if cs.Contains(p) {
					count++
				}
			}
		}
	}
	return float64(count) * dx * dy * dz
}

func cells(extent, step float64) int {
	n := int(extent/step + 0.5)
	if n < 1 {
		return 1
	}
	return n
}
