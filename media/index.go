package media

import "github.com/samber/mo"

// Index numbers the links of one search's entities from 1, in presentation order.
type Index struct {
	urls []string
}

// NewIndex builds the index for results. Empty groups contribute nothing.
func NewIndex(results *Results) *Index {
	all := results.All()
	urls := make([]string, len(all))
	for i, e := range all {
		urls[i] = e.Link()
	}

	return &Index{urls: urls}
}

// Len returns the highest valid number.
func (x *Index) Len() int {
	return len(x.urls)
}

// Lookup resolves a listing number to its link.
func (x *Index) Lookup(n int) mo.Option[string] {
	if n < 1 || n > len(x.urls) {
		return mo.None[string]()
	}

	return mo.Some(x.urls[n-1])
}

// Numbers returns every valid number in ascending order.
func (x *Index) Numbers() []int {
	numbers := make([]int, len(x.urls))
	for i := range x.urls {
		numbers[i] = i + 1
	}
	return numbers
}
