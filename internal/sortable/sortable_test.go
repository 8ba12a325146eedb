package sortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	name   string
	amount float64
	seq    int
}

func newRowSorter() *Sorter[row] {
	return New(map[string]Comparator[row]{
		"name":   ByString(func(r row) string { return r.name }),
		"amount": ByFloat64(func(r row) float64 { return r.amount }),
	})
}

var rows = []row{
	{name: "beta", amount: 30, seq: 0},
	{name: "alfa", amount: 10, seq: 1},
	{name: "beta", amount: 20, seq: 2},
	{name: "alfa", amount: 10, seq: 3},
}

func TestSortAscending(t *testing.T) {
	s := newRowSorter()
	s.Set("amount", Ascending)

	sorted := s.Sort(rows)
	assert.Equal(t, []float64{10, 10, 20, 30}, amounts(sorted))
}

func TestSortDescending(t *testing.T) {
	s := newRowSorter()
	s.Set("amount", Descending)

	sorted := s.Sort(rows)
	assert.Equal(t, []float64{30, 20, 10, 10}, amounts(sorted))
}

func TestSortIsStable(t *testing.T) {
	s := newRowSorter()
	s.Set("name", Ascending)

	sorted := s.Sort(rows)
	// Equal keys keep their relative input order.
	assert.Equal(t, 1, sorted[0].seq)
	assert.Equal(t, 3, sorted[1].seq)
	assert.Equal(t, 0, sorted[2].seq)
	assert.Equal(t, 2, sorted[3].seq)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	s := newRowSorter()
	s.Set("amount", Ascending)

	_ = s.Sort(rows)
	assert.Equal(t, 30.0, rows[0].amount)
}

func TestToggle(t *testing.T) {
	s := newRowSorter()

	s.Toggle("amount")
	assert.Equal(t, "amount", s.Key())
	assert.Equal(t, Ascending, s.Direction())

	s.Toggle("amount")
	assert.Equal(t, Descending, s.Direction())

	s.Toggle("amount")
	assert.Equal(t, Ascending, s.Direction())

	// Switching key resets to ascending.
	s.Toggle("amount")
	s.Toggle("name")
	assert.Equal(t, "name", s.Key())
	assert.Equal(t, Ascending, s.Direction())
}

func TestUnknownKeyIsIdentity(t *testing.T) {
	s := newRowSorter()
	s.Set("nonexistent", Ascending)

	assert.Equal(t, rows, s.Sort(rows))
}

func TestNoKeyIsIdentity(t *testing.T) {
	s := newRowSorter()
	assert.Equal(t, rows, s.Sort(rows))
}

func TestSetNormalizesDirection(t *testing.T) {
	s := newRowSorter()
	s.Set("name", Direction("sideways"))
	assert.Equal(t, Ascending, s.Direction())
}

func amounts(rs []row) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.amount
	}
	return out
}
