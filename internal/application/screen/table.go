package screen

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// State lifecycle of a table.
type State int

const (
	Loading State = iota
	Ready
	Failed
)

// Table one resource collection as shown on screen.
type Table[T any] struct {
	def   *Definition[T]
	state State
	items []T
	query string
	err   error
}

// NewTable starts in Loading.
func NewTable[T any](def *Definition[T]) *Table[T] {
	return &Table[T]{def: def}
}

// Definition the screen definition the table renders.
func (t *Table[T]) Definition() *Definition[T] { return t.def }

// Load replaces the collection with a fresh fetch.
func (t *Table[T]) Load(items []T) {
	t.items = items
	t.err = nil
	t.state = Ready
}

// Fail records a failed fetch. The previous collection is dropped so stale
// rows are never shown next to the error.
func (t *Table[T]) Fail(err error) {
	t.items = nil
	t.err = err
	t.state = Failed
}

func (t *Table[T]) State() State      { return t.state }
func (t *Table[T]) Err() error        { return t.err }
func (t *Table[T]) Query() string     { return t.query }
func (t *Table[T]) Items() []T        { return t.items }
func (t *Table[T]) SetQuery(q string) { t.query = q }

// Visible the rows matching the current query.
func (t *Table[T]) Visible() []T {
	if t.state != Ready {
		return nil
	}
	return Filter(t.items, t.query, t.def.Search)
}

// Stats aggregates over the whole collection, whatever the query.
func (t *Table[T]) Stats() []Stat {
	if t.state != Ready || t.def.Stats == nil {
		return nil
	}
	return t.def.Stats(t.items)
}

// Empty true when a loaded table has nothing to show.
func (t *Table[T]) Empty() bool {
	return t.state == Ready && len(t.Visible()) == 0
}

// Groups the visible rows grouped by the definition's key, or nil when the
// definition does not group.
func (t *Table[T]) Groups() []Group[T] {
	if t.def.Group == nil {
		return nil
	}
	return GroupBy(t.Visible(), t.def.Group)
}

// Filter keeps the items where any of fields contains query, ignoring case.
// An empty query keeps everything.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" || fields == nil {
		return items
	}
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, v := range fields(it) {
			if strings.Contains(fold.String(v), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Group rows sharing a key.
type Group[T any] struct {
	Key   string
	Items []T
}

// GroupBy buckets items by key, groups sorted by key, items kept in input order.
func GroupBy[T any](items []T, key func(T) string) []Group[T] {
	idx := map[string]int{}
	var out []Group[T]
	for _, it := range items {
		k := key(it)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, Group[T]{Key: k})
		}
		out[i].Items = append(out[i].Items, it)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Key < out[b].Key })
	return out
}
