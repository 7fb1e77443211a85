package utils

// Hashable is implemented by values that can be stored in a Map. HashCode is
// fast but not collision resistant, so EqualI settles bucket collisions.
type Hashable interface {
	HashCode() uint64
	EqualI(Hashable) bool
}

// Map is a hash map keyed by Hashable values.
type Map map[uint64][]mapEntry

type mapEntry struct {
	k Hashable
	v interface{}
}

func (m Map) Find(k Hashable) (interface{}, bool) {
	for _, x := range m[k.HashCode()] {
		if x.k.EqualI(k) {
			return x.v, true
		}
	}
	return nil, false
}

func (m Map) Set(k Hashable, v interface{}) {
	h := k.HashCode()
	s := m[h]
	for i, x := range s {
		if x.k.EqualI(k) {
			s[i].v = v
			return
		}
	}
	m[h] = append(s, mapEntry{k: k, v: v})
}

// Add inserts k only if it is absent and reports whether it did.
func (m Map) Add(k Hashable, v interface{}) bool {
	h := k.HashCode()
	s := m[h]
	for _, x := range s {
		if x.k.EqualI(k) {
			return false
		}
	}
	m[h] = append(s, mapEntry{k: k, v: v})
	return true
}

func (m Map) Len() int {
	n := 0
	for _, s := range m {
		n += len(s)
	}
	return n
}
