package wfc

import "fmt"

// IDMap is an injective mapping from a finite set of domain values to
// contiguous variable indices [0, Size()). Two shapes are provided below:
// EnumIDMap for an explicit, arbitrarily-typed value list, and RangeIDMap
// for a half-open integer range, which avoids boxing every value as an
// IndexOf lookup.
type IDMap interface {
	// Size returns V, the number of distinct values.
	Size() int

	// ValueOf returns the value bound to variable index.
	ValueOf(index int) any

	// IndexOf returns the variable index bound to value, and whether
	// value is present at all — this lookup is necessarily partial,
	// since not every value a World might hand back need be modeled.
	IndexOf(value any) (int, bool)

	// Has reports whether value is present in the map. Equivalent to
	// discarding the bool ok return of IndexOf, kept separate because
	// callers that only need membership (not the index) read more
	// clearly this way.
	Has(value any) bool
}

// EnumIDMap binds an explicit, ordered list of values to indices
// [0, len(values)).
type EnumIDMap struct {
	values []any
	index  map[any]int
}

// NewEnumIDMap builds an EnumIDMap over values. Panics if values contains
// a duplicate — the mapping is required to be injective.
func NewEnumIDMap(values ...any) *EnumIDMap {
	idx := make(map[any]int, len(values))
	for i, v := range values {
		if _, exists := idx[v]; exists {
			panic(&EngineFatal{Op: "NewEnumIDMap", Err: fmt.Errorf("duplicate value %v", v)})
		}
		idx[v] = i
	}
	cp := make([]any, len(values))
	copy(cp, values)
	return &EnumIDMap{values: cp, index: idx}
}

func (m *EnumIDMap) Size() int { return len(m.values) }

func (m *EnumIDMap) ValueOf(index int) any { return m.values[index] }

func (m *EnumIDMap) IndexOf(value any) (int, bool) {
	i, ok := m.index[value]
	return i, ok
}

func (m *EnumIDMap) Has(value any) bool {
	_, ok := m.index[value]
	return ok
}

// RangeIDMap binds the half-open integer range [Start, End) to indices
// [0, End-Start), index i corresponding to value Start+i.
type RangeIDMap struct {
	Start, End int
}

// NewRangeIDMap builds a RangeIDMap over [start, end). Panics if end <=
// start.
func NewRangeIDMap(start, end int) *RangeIDMap {
	if end <= start {
		panic(&EngineFatal{Op: "NewRangeIDMap", Err: fmt.Errorf("empty range [%d, %d)", start, end)})
	}
	return &RangeIDMap{Start: start, End: end}
}

func (m *RangeIDMap) Size() int { return m.End - m.Start }

func (m *RangeIDMap) ValueOf(index int) any { return m.Start + index }

func (m *RangeIDMap) IndexOf(value any) (int, bool) {
	v, ok := value.(int)
	if !ok || v < m.Start || v >= m.End {
		return 0, false
	}
	return v - m.Start, true
}

func (m *RangeIDMap) Has(value any) bool {
	_, ok := m.IndexOf(value)
	return ok
}
