package resolver

// Bucket is a value that can give up some of its size, down to Min.
type Bucket struct {
	Value *float64
	Min   float64
}

// Distribute takes deficit out of the buckets in order. Each bucket gives
// up as much as it can before the next one is touched; buckets already at
// or below their minimum are skipped. The part of the deficit that no
// bucket could absorb is returned.
func Distribute(deficit float64, buckets []Bucket) float64 {
	for _, b := range buckets {
		if deficit <= 0 {
			break
		}
		room := *b.Value - b.Min
		if room <= 0 {
			continue
		}
		if room > deficit {
			*b.Value -= deficit
			deficit = 0
			break
		}
		*b.Value = b.Min
		deficit -= room
	}
	if deficit < 0 {
		return 0
	}
	return deficit
}
