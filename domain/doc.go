// Package domain defines the value types of a synthesis problem: atomic
// propositions, interpretations (sets of true propositions), the partition of
// the atoms into environment- and system-controlled, and the partitioned
// interpretations that label the transitions of a game automaton.
//
// What
//
//   - Proposition: a named atom.
//   - PropositionSet / Interpretation: an immutable, sorted, de-duplicated set
//     of propositions. Equality is structural (Equal, Key); insertion order is
//     irrelevant.
//   - PartitionedDomain: two disjoint proposition sets, Environment and System.
//   - PartitionedInterpretation: a pair (Environment, System) of disjoint
//     interpretations, the alphabet of the game automaton.
//
// Invariants
//
//	Disjointness is validated at construction time. NewPartitionedDomain and
//	NewPartitionedInterpretation return an error wrapping ErrOverlap (and thus
//	ErrDomain) when the two sides share a proposition. Values are immutable
//	after construction and safe to share between goroutines.
//
// Errors
//
//   - ErrDomain             root of every structural violation below.
//   - ErrOverlap            a proposition appears on both sides of a partition.
//   - ErrUndeclared         an atom belongs to neither partition.
//   - ErrSystemProposition  an environment move mentions a system atom.
//
// Usage
//
//	dom, err := domain.NewPartitionedDomain(
//	    domain.NewPropositionSet("a"),
//	    domain.NewPropositionSet("b"),
//	)
//	if err != nil {
//	    // errors.Is(err, domain.ErrDomain)
//	}
//	label, err := dom.Partition(domain.NewInterpretation("a", "b"))
package domain
