package util

type Set[V comparable] struct {
	values map[V]bool
}

func NewSet[V comparable]() *Set[V] {
	return &Set[V]{
		values: map[V]bool{},
	}
}

// Add reports whether the value was not in the set before
func (s *Set[V]) Add(value V) bool {
	if s.values[value] {
		return false
	}
	s.values[value] = true
	return true
}

func (s *Set[V]) Remove(value V) {
	delete(s.values, value)
}

func (s *Set[V]) Contains(value V) bool {
	return s.values[value]
}

func (s *Set[V]) Len() int {
	return len(s.values)
}
