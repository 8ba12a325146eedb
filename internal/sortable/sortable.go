// Package sortable is the keyed, toggleable sort every table-bearing view
// uses: a Sorter holds named comparators for a record type, tracks the
// active key and direction, and sorts stably so equal rows keep their
// relative order across repeated toggles.
package sortable

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Comparator reports the order of a and b: negative, zero or positive.
type Comparator[T any] func(a, b T) int

type Sorter[T any] struct {
	comparators map[string]Comparator[T]
	key         string
	direction   Direction
}

// New builds a sorter with no active key; Sort is the identity until a key
// is set or toggled.
func New[T any](comparators map[string]Comparator[T]) *Sorter[T] {
	return &Sorter[T]{comparators: comparators, direction: Ascending}
}

// Toggle flips the direction when key is already active, otherwise
// activates key ascending.
func (s *Sorter[T]) Toggle(key string) {
	if s.key == key {
		if s.direction == Ascending {
			s.direction = Descending
		} else {
			s.direction = Ascending
		}
		return
	}
	s.key = key
	s.direction = Ascending
}

// Set activates an explicit key and direction.
func (s *Sorter[T]) Set(key string, direction Direction) {
	s.key = key
	if direction != Descending {
		direction = Ascending
	}
	s.direction = direction
}

func (s *Sorter[T]) Key() string          { return s.key }
func (s *Sorter[T]) Direction() Direction { return s.direction }

// Sort returns a stably ordered copy of items. An empty or unknown key
// returns the items in their current order.
func (s *Sorter[T]) Sort(items []T) []T {
	sorted := slices.Clone(items)

	compare, ok := s.comparators[s.key]
	if !ok {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b T) int {
		c := compare(a, b)
		if s.direction == Descending {
			return -c
		}
		return c
	})
	return sorted
}

// ByString compares a string field. Comparison is case-sensitive byte
// order, matching how the views display raw ledger values.
func ByString[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int { return strings.Compare(field(a), field(b)) }
}

func ByInt[T any](field func(T) int) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(field(a), field(b)) }
}

func ByFloat64[T any](field func(T) float64) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(field(a), field(b)) }
}

func ByTime[T any](field func(T) time.Time) Comparator[T] {
	return func(a, b T) int { return field(a).Compare(field(b)) }
}
