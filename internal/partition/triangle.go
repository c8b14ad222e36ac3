package partition

import "iter"

// Pair is one bucket pair of a partitioned join, Left < Right.
type Pair struct {
	Left  int
	Right int
}

// Triangle enumerates the strictly upper triangular pairs of an n by n
// bucket grid and maps each one to a dense index in [0, Total()).
type Triangle struct {
	n int

	// prefix[l] = number of pairs whose Left is below l
	prefix []int
}

func NewTriangle(n int) *Triangle {
	if n < 0 {
		n = 0
	}

	prefix := make([]int, n+1)
	for l := 1; l <= n; l++ {
		prefix[l] = prefix[l-1] + (n - l)
	}

	return &Triangle{n: n, prefix: prefix}
}

// Total returns n*(n-1)/2.
func (t *Triangle) Total() int {
	return t.prefix[t.n]
}

// At converts a dense index to its pair.
// Returns false if index is out of range.
func (t *Triangle) At(index int) (Pair, bool) {
	if index < 0 || index >= t.Total() {
		return Pair{}, false
	}

	for l := 0; l < t.n; l++ {
		if index < t.prefix[l+1] {
			return Pair{Left: l, Right: l + 1 + index - t.prefix[l]}, true
		}
	}

	return Pair{}, false
}

// Index is the inverse of At.
func (t *Triangle) Index(p Pair) (int, bool) {
	if p.Left < 0 || p.Left >= p.Right || p.Right >= t.n {
		return 0, false
	}

	return t.prefix[p.Left] + p.Right - p.Left - 1, true
}

// All yields the pairs in dense index order.
func (t *Triangle) All() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		if t == nil {
			return
		}

		for l := 0; l < t.n; l++ {
			for r := l + 1; r < t.n; r++ {
				if !yield(Pair{Left: l, Right: r}) {
					return
				}
			}
		}
	}
}
