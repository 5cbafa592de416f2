package domain

import "fmt"

// Owner names the partition that controls a proposition.
type Owner int

const (
	// Undeclared marks an atom that belongs to neither partition.
	Undeclared Owner = iota
	// Environment marks an environment-controlled atom.
	Environment
	// System marks a system-controlled atom.
	System
)

// String returns the lower-case owner name.
func (o Owner) String() string {
	switch o {
	case Environment:
		return "environment"
	case System:
		return "system"
	default:
		return "undeclared"
	}
}

// PartitionedDomain splits the atoms of a problem into the ones set by the
// environment and the ones set by the system. The two sides are disjoint.
type PartitionedDomain struct {
	env PropositionSet
	sys PropositionSet
}

// NewPartitionedDomain validates disjointness and returns the domain.
// A shared proposition yields an error wrapping ErrOverlap, an empty name
// one wrapping ErrEmptyName.
func NewPartitionedDomain(env, sys PropositionSet) (PartitionedDomain, error) {
	if env.Contains("") || sys.Contains("") {
		return PartitionedDomain{}, ErrEmptyName
	}
	if shared := env.Intersect(sys); !shared.IsEmpty() {
		return PartitionedDomain{}, fmt.Errorf("%w: %s appears in both", ErrOverlap, shared)
	}

	return PartitionedDomain{env: env, sys: sys}, nil
}

// Environment returns the environment-controlled propositions.
func (d PartitionedDomain) Environment() PropositionSet { return d.env }

// System returns the system-controlled propositions.
func (d PartitionedDomain) System() PropositionSet { return d.sys }

// Complete returns the union of both partitions.
func (d PartitionedDomain) Complete() PropositionSet { return d.env.Union(d.sys) }

// Equal reports structural equality.
func (d PartitionedDomain) Equal(other PartitionedDomain) bool {
	return d.env.Equal(other.env) && d.sys.Equal(other.sys)
}

// String renders the domain as "environment: {..}; system: {..}".
func (d PartitionedDomain) String() string {
	return "environment: " + d.env.String() + "; system: " + d.sys.String()
}

// Classify reports which partition owns p.
func (d PartitionedDomain) Classify(p Proposition) Owner {
	switch {
	case d.env.Contains(p):
		return Environment
	case d.sys.Contains(p):
		return System
	default:
		return Undeclared
	}
}

// ValidateSignature checks that every atom of a formula signature is declared.
func (d PartitionedDomain) ValidateSignature(signature PropositionSet) error {
	for _, p := range signature.props {
		if d.Classify(p) == Undeclared {
			return fmt.Errorf("%w: %q", ErrUndeclared, p)
		}
	}

	return nil
}

// Partition splits a possible world (flat set of true atoms) into its
// environment and system halves. An atom outside the domain yields
// ErrUndeclared.
func (d PartitionedDomain) Partition(world Interpretation) (PartitionedInterpretation, error) {
	var env, sys []Proposition
	for _, p := range world.props {
		switch d.Classify(p) {
		case Environment:
			env = append(env, p)
		case System:
			sys = append(sys, p)
		default:
			return PartitionedInterpretation{}, fmt.Errorf("%w: %q in world %s", ErrUndeclared, p, world)
		}
	}

	// world.props is already sorted and unique, so the halves are too.
	return PartitionedInterpretation{
		env: PropositionSet{props: env},
		sys: PropositionSet{props: sys},
	}, nil
}

// ValidateEnvironmentMove checks that x only sets environment atoms.
func (d PartitionedDomain) ValidateEnvironmentMove(x Interpretation) error {
	for _, p := range x.props {
		switch d.Classify(p) {
		case Environment:
		case System:
			return fmt.Errorf("%w: %q", ErrSystemProposition, p)
		default:
			return fmt.Errorf("%w: %q is not an environment proposition", ErrUndeclared, p)
		}
	}

	return nil
}

// ValidateSystemMove checks that y only sets system atoms.
func (d PartitionedDomain) ValidateSystemMove(y Interpretation) error {
	for _, p := range y.props {
		if d.Classify(p) != System {
			return fmt.Errorf("%w: %q is not a system proposition", ErrDomain, p)
		}
	}

	return nil
}

// PartitionedInterpretation is one letter of the game alphabet: what the
// environment set true and what the system set true in the same turn.
type PartitionedInterpretation struct {
	env Interpretation
	sys Interpretation
}

// NewPartitionedInterpretation validates disjointness and returns the pair.
func NewPartitionedInterpretation(env, sys Interpretation) (PartitionedInterpretation, error) {
	if shared := env.Intersect(sys); !shared.IsEmpty() {
		return PartitionedInterpretation{}, fmt.Errorf("%w: %s appears in both interpretations", ErrOverlap, shared)
	}

	return PartitionedInterpretation{env: env, sys: sys}, nil
}

// Environment returns the environment half.
func (l PartitionedInterpretation) Environment() Interpretation { return l.env }

// System returns the system half.
func (l PartitionedInterpretation) System() Interpretation { return l.sys }

// Complete returns the flat world, the union of both halves.
func (l PartitionedInterpretation) Complete() Interpretation { return l.env.Union(l.sys) }

// Equal reports structural equality.
func (l PartitionedInterpretation) Equal(other PartitionedInterpretation) bool {
	return l.env.Equal(other.env) && l.sys.Equal(other.sys)
}

// Key returns a canonical string for the pair.
func (l PartitionedInterpretation) Key() string {
	// set keys never contain a bare '|' where a length digit is expected
	return l.env.Key() + "|" + l.sys.Key()
}

// String renders the pair as "env {..} / sys {..}".
func (l PartitionedInterpretation) String() string {
	return "env " + l.env.String() + " / sys " + l.sys.String()
}
