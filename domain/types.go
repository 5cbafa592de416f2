package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for domain construction and input validation.
var (
	// ErrDomain is the root of every structural domain violation.
	ErrDomain = errors.New("domain: invalid domain")

	// ErrOverlap indicates a proposition present on both sides of a partition.
	ErrOverlap = fmt.Errorf("%w: environment and system must be disjoint", ErrDomain)

	// ErrUndeclared indicates an atom outside the declared domain.
	ErrUndeclared = fmt.Errorf("%w: undeclared proposition", ErrDomain)

	// ErrSystemProposition indicates an environment move that sets a
	// system-controlled proposition.
	ErrSystemProposition = fmt.Errorf("%w: proposition is controlled by the system", ErrDomain)

	// ErrEmptyName indicates a proposition with an empty name.
	ErrEmptyName = fmt.Errorf("%w: proposition name is empty", ErrDomain)
)

// Proposition is an atomic named symbol.
type Proposition string

// PropositionSet is an immutable set of propositions.
//
// The zero value is the empty set. Members are kept sorted and unique, so two
// sets holding the same propositions are Equal and share the same Key.
type PropositionSet struct {
	props []Proposition
}

// Interpretation is a PropositionSet read as the propositions that are true;
// every other proposition is false.
type Interpretation = PropositionSet

// NewPropositionSet builds a set from the given propositions.
// Duplicates are dropped and order is irrelevant.
func NewPropositionSet(props ...Proposition) PropositionSet {
	if len(props) == 0 {
		return PropositionSet{}
	}
	out := make([]Proposition, len(props))
	copy(out, props)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	// compact in place
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}

	return PropositionSet{props: out[:n]}
}

// NewInterpretation is NewPropositionSet under the Interpretation reading.
func NewInterpretation(props ...Proposition) Interpretation {
	return NewPropositionSet(props...)
}

// Props returns the members in ascending order. The slice is a copy.
func (s PropositionSet) Props() []Proposition {
	out := make([]Proposition, len(s.props))
	copy(out, s.props)

	return out
}

// Len returns the number of members.
func (s PropositionSet) Len() int { return len(s.props) }

// IsEmpty reports whether the set has no members.
func (s PropositionSet) IsEmpty() bool { return len(s.props) == 0 }

// Contains reports whether p is a member. O(log n).
func (s PropositionSet) Contains(p Proposition) bool {
	i := sort.Search(len(s.props), func(i int) bool { return s.props[i] >= p })

	return i < len(s.props) && s.props[i] == p
}

// Equal reports structural equality.
func (s PropositionSet) Equal(other PropositionSet) bool {
	if len(s.props) != len(other.props) {
		return false
	}
	for i := range s.props {
		if s.props[i] != other.props[i] {
			return false
		}
	}

	return true
}

// SubsetOf reports whether every member of s is in other.
func (s PropositionSet) SubsetOf(other PropositionSet) bool {
	for _, p := range s.props {
		if !other.Contains(p) {
			return false
		}
	}

	return true
}

// Intersect returns the members shared with other.
func (s PropositionSet) Intersect(other PropositionSet) PropositionSet {
	var out []Proposition
	for _, p := range s.props {
		if other.Contains(p) {
			out = append(out, p)
		}
	}

	return PropositionSet{props: out}
}

// Union returns the members of either set.
func (s PropositionSet) Union(other PropositionSet) PropositionSet {
	all := make([]Proposition, 0, len(s.props)+len(other.props))
	all = append(all, s.props...)
	all = append(all, other.props...)

	return NewPropositionSet(all...)
}

// Difference returns the members of s that are not in other.
func (s PropositionSet) Difference(other PropositionSet) PropositionSet {
	var out []Proposition
	for _, p := range s.props {
		if !other.Contains(p) {
			out = append(out, p)
		}
	}

	return PropositionSet{props: out}
}

// Key returns a canonical string for the set, usable as a map key. Each
// proposition is written as "<len>:<name>", so distinct sets never share a
// key whatever bytes the names hold. The empty set has the empty key.
func (s PropositionSet) Key() string {
	if len(s.props) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range s.props {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(string(p))
	}

	return b.String()
}

// String renders the set as {a, b}.
func (s PropositionSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range s.props {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(p))
	}
	b.WriteByte('}')

	return b.String()
}
