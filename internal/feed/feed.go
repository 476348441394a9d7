// Package feed selects fixed-size pages out of ordered post
// collections. The same contract backs the global, per-group,
// per-author and personalized feeds.
package feed

import (
	"strconv"
)

// Page describes one page of a listing.
type Page struct {
	Number int
	Size   int
	Total  int64
}

// maxNumber caps the page number so the offset multiplication cannot
// overflow into a negative offset.
const maxNumber = 1_000_000

// ParseNumber interprets a raw ?page= value. Missing, malformed or
// non-positive values fall back to the first page; absurdly large
// values are clamped.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	if n > maxNumber {
		return maxNumber
	}
	return n
}

// Window converts a 1-indexed page number into a storage offset and
// limit. Pages past the end of the collection simply select nothing.
func Window(number, size int) (offset, limit int) {
	if number < 1 {
		number = 1
	}
	if number > maxNumber {
		number = maxNumber
	}
	return (number - 1) * size, size
}

// NumPages returns the number of pages needed for the collection. An
// empty collection still has one (empty) page.
func (p Page) NumPages() int {
	if p.Total <= 0 || p.Size <= 0 {
		return 1
	}
	n := int((p.Total + int64(p.Size) - 1) / int64(p.Size))
	if n < 1 {
		n = 1
	}
	return n
}

// HasPrevious reports whether a previous page exists.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool {
	return p.Number < p.NumPages()
}

// Previous returns the previous page number, clamped at 1.
func (p Page) Previous() int {
	if p.Number <= 1 {
		return 1
	}
	return p.Number - 1
}

// Next returns the next page number, clamped at the last page.
func (p Page) Next() int {
	if n := p.NumPages(); p.Number >= n {
		return n
	}
	return p.Number + 1
}
