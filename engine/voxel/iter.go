package voxel

// Iter3d walks an inclusive axis-aligned range of lattice coordinates in
// row-major order: x varies fastest, then y, then z. The advance-and-wrap
// sequence below yields every coordinate in [min,max] exactly once and
// reports exhaustion on the call after (max.X, max.Y, max.Z) was produced.
// Resettable, so one iterator instance serves every sweep of a chunk.
type Iter3d struct {
	track Int3
	min   Int3
	max   Int3
}

func NewIter3d(min, max Int3) Iter3d {
	return Iter3d{
		track: min,
		min:   min,
		max:   max,
	}
}

// Next returns the current coordinate and advances. The second return is
// false once the range is exhausted.
func (it *Iter3d) Next() (Int3, bool) {
	ret := it.track

	if it.track.Z > it.max.Z {
		return Int3{}, false
	}

	if it.track.X >= it.max.X {
		it.track.Y++
		it.track.X = it.min.X
	} else {
		it.track.X++
		return ret, true
	}

	if it.track.Y > it.max.Y {
		it.track.Z++
		it.track.Y = it.min.Y
	}

	return ret, true
}

// Reset rewinds the iterator to min.
func (it *Iter3d) Reset() {
	it.track = it.min
}
