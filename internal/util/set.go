// Package util holds small generic data structures and text helpers shared
// across the quadgen packages: ordered-iteration sets, a LIFO stack, and a
// couple of string-formatting helpers used by the pretty-printers.
package util

import (
	"fmt"
	"sort"
	"strings"
)

// ISet is a generic, unordered collection of comparable elements.
type ISet[E any] interface {
	Container[E]

	// Add adds the given element to the Set. If the element is already in the
	// set, no effect occurs.
	Add(element E)

	// AddAll adds all elements in s2 to the Set.
	AddAll(s2 ISet[E])

	// Remove removes the given element from the Set. If the element is already
	// not in the set, no effect occurs.
	Remove(element E)

	// Has returns whether the given set has the specified element.
	Has(element E) bool

	// Len returns the number of elements in the set.
	Len() int

	// Equal returns whether a Set equals another value. For sets which map
	// values to elements, this does NOT compare the mapped values.
	Equal(o any) bool

	// String is a string with the contents of the set, not guaranteed to be in
	// any particular order.
	String() string

	// StringOrdered is a string with the contents of the set, ordered
	// alphabetically.
	StringOrdered() string

	// Empty returns whether the set is empty.
	Empty() bool

	// Any returns whether any element in the set meets some condition.
	Any(predicate func(v E) bool) bool
}

// Container is the minimal read interface shared by sets: something that can
// hand back all of its elements.
type Container[E any] interface {
	Elements() []E
}

// VSet is a set that additionally maps each element to a stored value, used
// for item sets where the value is the full LR1Item and the element is its
// canonical string encoding.
type VSet[E comparable, V any] interface {
	ISet[E]

	// Set assigns the value of the element. The element is added if it isn't
	// already in the set, and is assigned the given data value.
	Set(element E, data V)

	// Get retrieves the value of an element, or the zero value of V if the
	// element is not present.
	Get(element E) V
}

// SVSet is a Set keyed by string with an arbitrary stored value type. Item
// sets (grammar.LR1Item keyed by its canonical String()) use this.
type SVSet[V any] map[string]V

func NewSVSet[V any](of ...map[string]V) SVSet[V] {
	s := SVSet[V](map[string]V{})
	for _, m := range of {
		for k, v := range m {
			s.Set(k, v)
		}
	}
	return s
}

func (s SVSet[V]) Add(idx string) {
	var zero V
	s[idx] = zero
}

func (s SVSet[V]) Set(idx string, val V) { s[idx] = val }
func (s SVSet[V]) Get(idx string) V      { return s[idx] }

func (s SVSet[V]) Has(idx string) bool {
	_, ok := s[idx]
	return ok
}

func (s SVSet[V]) Remove(idx string) { delete(s, idx) }
func (s SVSet[V]) Len() int          { return len(s) }

func (s SVSet[V]) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}

func (s SVSet[V]) AddAll(s2 ISet[string]) {
	if valued, ok := s2.(VSet[string, V]); ok {
		for _, k := range valued.Elements() {
			s.Set(k, valued.Get(k))
		}
		return
	}
	for _, k := range s2.Elements() {
		s.Add(k)
	}
}

func (s SVSet[V]) Empty() bool { return s.Len() == 0 }

func (s SVSet[V]) Any(predicate func(v string) bool) bool {
	for k := range s {
		if predicate(k) {
			return true
		}
	}
	return false
}

// StringOrdered shows the contents of the set, alphabetized.
func (s SVSet[V]) StringOrdered() string {
	return orderedSetString(s.Elements())
}

func (s SVSet[V]) String() string {
	return unorderedSetString(s.Elements())
}

// Equal returns whether two sets have the same keys. Mapped values are not
// compared.
func (s SVSet[V]) Equal(o any) bool {
	other, ok := o.(ISet[string])
	if !ok {
		return false
	}
	if s.Len() != other.Len() {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// StringSet is a set of strings with no associated value, used for FIRST
// sets, terminal sets, and the like.
type StringSet map[string]bool

func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

func StringSetOf(sl []string) StringSet {
	s := NewStringSet()
	for _, v := range sl {
		s.Add(v)
	}
	return s
}

func (s StringSet) Add(value string)    { s[value] = true }
func (s StringSet) Remove(value string) { delete(s, value) }
func (s StringSet) Len() int            { return len(s) }
func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

func (s StringSet) AddAll(s2 ISet[string]) {
	for _, v := range s2.Elements() {
		s.Add(v)
	}
}

func (s StringSet) Empty() bool { return s.Len() == 0 }

func (s StringSet) Any(predicate func(v string) bool) bool {
	for k := range s {
		if predicate(k) {
			return true
		}
	}
	return false
}

func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}
	sl := make([]string, 0, len(s))
	for v := range s {
		sl = append(sl, v)
	}
	return sl
}

func (s StringSet) StringOrdered() string { return orderedSetString(s.Elements()) }
func (s StringSet) String() string        { return unorderedSetString(s.Elements()) }

func (s StringSet) Equal(o any) bool {
	other, ok := o.(ISet[string])
	if !ok {
		return false
	}
	if s.Len() != other.Len() {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

func orderedSetString(elems []string) string {
	cp := make([]string, len(elems))
	copy(cp, elems)
	sort.Strings(cp)
	return bracketJoin(cp)
}

func unorderedSetString(elems []string) string {
	return bracketJoin(elems)
}

func bracketJoin(elems []string) string {
	var sb strings.Builder
	sb.WriteRune('{')
	for i, e := range elems {
		sb.WriteString(fmt.Sprintf("%v", e))
		if i+1 < len(elems) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}

// OrderedKeys returns the keys of m sorted alphabetically, used whenever a
// map must be iterated in a deterministic order (table construction,
// pretty-printing).
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
