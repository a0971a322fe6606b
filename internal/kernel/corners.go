package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// cornerFunc replaces the corner v, whose adjacent sides leave along the
// unit vectors u (to the previous vertex) and w (to the next vertex). It
// returns how far along each side the replacement reaches and the
// replacement points, ordered from the u side to the w side.
type cornerFunc func(v, u, w r2.Vec) (float64, []r2.Vec)

// Chamfer cuts the selected corners with a straight line reaching size
// along both adjacent sides.
func (pg Polygon) Chamfer(corners []Edge, size float64) (Polygon, error) {
	return pg.cutCorners(corners, size, func(v, u, w r2.Vec) (float64, []r2.Vec) {
		return size, []r2.Vec{r2.Add(v, r2.Scale(size, u)), r2.Add(v, r2.Scale(size, w))}
	})
}

// Fillet rounds the selected corners with circular arcs of the given
// radius, each approximated by segments straight pieces.
func (pg Polygon) Fillet(corners []Edge, radius float64, segments int) (Polygon, error) {
	if segments < 1 {
		segments = 1
	}
	return pg.cutCorners(corners, radius, func(v, u, w r2.Vec) (float64, []r2.Vec) {
		return filletArc(v, u, w, radius, segments)
	})
}

// cutCorners applies fn to the selected vertices. Every corner is measured
// on the original polygon and the replacements must fit on the sides they
// share.
func (pg Polygon) cutCorners(corners []Edge, size float64, fn cornerFunc) (Polygon, error) {
	if size < 0 || math.IsNaN(size) {
		return nil, fmt.Errorf("%w: negative corner size %.2f", ErrInvalidGeometry, size)
	}
	if size == 0 || len(corners) == 0 {
		return pg, nil
	}

	n := len(pg)
	reach := make([]float64, n)
	repl := make([][]r2.Vec, n)

	for _, e := range corners {
		i := int(e)
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: edge %d out of range (%d edges)", ErrInvalidGeometry, i, n)
		}
		v := pg[i]
		du, dw := r2.Sub(pg[(i+n-1)%n], v), r2.Sub(pg[(i+1)%n], v)
		if r2.Norm(du) < pointTolerance || r2.Norm(dw) < pointTolerance {
			return nil, fmt.Errorf("%w: edge %d has a zero-length side", ErrInvalidGeometry, i)
		}
		u, w := r2.Unit(du), r2.Unit(dw)
		if math.Abs(r2.Cross(u, w)) < 1e-9 {
			return nil, fmt.Errorf("%w: edge %d is not a corner", ErrInvalidGeometry, i)
		}
		reach[i], repl[i] = fn(v, u, w)
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		side := r2.Norm(r2.Sub(pg[j], pg[i]))
		if reach[i]+reach[j] > side+pointTolerance {
			return nil, fmt.Errorf("%w: corner cut of %.2f does not fit on a %.2f side", ErrInvalidGeometry, reach[i]+reach[j], side)
		}
	}

	out := make(Polygon, 0, n+len(corners)*4)
	for i, v := range pg {
		if repl[i] != nil {
			out = append(out, repl[i]...)
			continue
		}
		out = append(out, v)
	}
	return out.Clean(), nil
}

// filletArc builds a circular arc of radius r tangent to both sides of the
// corner v.
func filletArc(v, u, w r2.Vec, r float64, segments int) (float64, []r2.Vec) {
	cos := math.Max(-1, math.Min(1, r2.Dot(u, w)))
	half := math.Acos(cos) / 2
	t := r / math.Tan(half)

	t1 := r2.Add(v, r2.Scale(t, u))
	t2 := r2.Add(v, r2.Scale(t, w))
	center := r2.Add(v, r2.Scale(r/math.Sin(half), r2.Unit(r2.Add(u, w))))

	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)
	sweep := a2 - a1
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep <= -math.Pi {
		sweep += 2 * math.Pi
	}

	pts := make([]r2.Vec, 0, segments+1)
	pts = append(pts, t1)
	for k := 1; k < segments; k++ {
		a := a1 + sweep*float64(k)/float64(segments)
		pts = append(pts, r2.Vec{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)})
	}
	pts = append(pts, t2)
	return t, pts
}
