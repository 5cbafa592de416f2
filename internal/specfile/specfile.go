// Package specfile reads and writes synthesis problems as YAML: the
// partitioned domain plus the possible-world automaton of the formula.
//
//	environment: [a]
//	system: [b]
//	signature: [a, b]        # optional
//	automaton:
//	  states:
//	    - {name: q0, initial: true}
//	    - {name: acc, terminal: true}
//	  transitions:
//	    - {from: q0, to: acc, world: [b]}
//	    - {from: q0, to: q0, world: []}
//	    - {from: q0, to: acc, empty: true}
//
// A transition with empty: true is the empty-trace marker and carries no world.
package specfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
)

// ErrFormat indicates a malformed problem file.
var ErrFormat = errors.New("specfile: malformed file")

// File is the YAML document.
type File struct {
	Environment []string     `yaml:"environment"`
	System      []string     `yaml:"system"`
	Signature   []string     `yaml:"signature,omitempty"`
	Automaton   AutomatonDoc `yaml:"automaton"`
}

// AutomatonDoc lists states by name and transitions between names.
type AutomatonDoc struct {
	States      []StateDoc      `yaml:"states"`
	Transitions []TransitionDoc `yaml:"transitions"`
}

// StateDoc is one state. Names must be unique.
type StateDoc struct {
	Name     string `yaml:"name"`
	Initial  bool   `yaml:"initial,omitempty"`
	Terminal bool   `yaml:"terminal,omitempty"`
}

// TransitionDoc is one transition, labeled by a world or the empty marker.
type TransitionDoc struct {
	From  string   `yaml:"from"`
	To    string   `yaml:"to"`
	World []string `yaml:"world,flow"`
	Empty bool     `yaml:"empty,omitempty"`
}

// Load reads the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specfile: read %s: %w", path, err)
	}

	return Parse(bytes.NewReader(data))
}

// Parse decodes one document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return &f, nil
}

// Domain returns the partitioned domain of f.
func (f *File) Domain() (domain.PartitionedDomain, error) {
	return domain.NewPartitionedDomain(props(f.Environment), props(f.System))
}

// SignatureProps returns the declared signature; nil when absent.
func (f *File) SignatureProps() []domain.Proposition {
	if len(f.Signature) == 0 {
		return nil
	}

	return props(f.Signature).Props()
}

// Raw builds the possible-world automaton. States get IDs in file order.
//
// Errors wrap ErrFormat for duplicate or unknown state names, for empty
// proposition names and for transitions that are both empty and carry a world.
func (f *File) Raw() (*game.RawAutomaton, error) {
	a := automaton.New[game.WorldLabel]()
	ids := make(map[string]automaton.StateID, len(f.Automaton.States))
	for _, s := range f.Automaton.States {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: state without a name", ErrFormat)
		}
		if _, dup := ids[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate state %q", ErrFormat, s.Name)
		}
		ids[s.Name] = a.AddState(s.Initial, s.Terminal)
	}

	for i, t := range f.Automaton.Transitions {
		from, ok := ids[t.From]
		if !ok {
			return nil, fmt.Errorf("%w: transition %d: unknown state %q", ErrFormat, i, t.From)
		}
		to, ok := ids[t.To]
		if !ok {
			return nil, fmt.Errorf("%w: transition %d: unknown state %q", ErrFormat, i, t.To)
		}

		for _, p := range t.World {
			if p == "" {
				return nil, fmt.Errorf("%w: transition %d: empty proposition name", ErrFormat, i)
			}
		}
		label := game.WorldOf(props(t.World))
		if t.Empty {
			if len(t.World) > 0 {
				return nil, fmt.Errorf("%w: transition %d: empty transition with a world", ErrFormat, i)
			}
			label = game.EmptyTrace()
		}
		if err := a.AddTransition(from, label, to); err != nil {
			return nil, fmt.Errorf("specfile: transition %d: %w", i, err)
		}
	}

	return a, nil
}

// FromAutomaton describes raw over dom as a File. States are named s0, s1, ...
func FromAutomaton(raw *game.RawAutomaton, dom domain.PartitionedDomain) *File {
	f := &File{
		Environment: strs(dom.Environment()),
		System:      strs(dom.System()),
	}
	for _, s := range raw.States() {
		f.Automaton.States = append(f.Automaton.States, StateDoc{
			Name:     stateName(s.ID),
			Initial:  s.Initial,
			Terminal: s.Terminal,
		})
	}
	for _, t := range raw.Transitions() {
		td := TransitionDoc{From: stateName(t.From), To: stateName(t.To)}
		if t.Label.IsEmpty() {
			td.Empty = true
		} else {
			td.World = strs(t.Label.World())
		}
		f.Automaton.Transitions = append(f.Automaton.Transitions, td)
	}

	return f
}

// Encode writes f as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("specfile: encode: %w", err)
	}

	return enc.Close()
}

func stateName(id automaton.StateID) string { return fmt.Sprintf("s%d", id) }

func props(names []string) domain.PropositionSet {
	ps := make([]domain.Proposition, len(names))
	for i, n := range names {
		ps[i] = domain.Proposition(n)
	}

	return domain.NewPropositionSet(ps...)
}

func strs(s domain.PropositionSet) []string {
	out := make([]string, 0, s.Len())
	for _, p := range s.Props() {
		out = append(out, string(p))
	}

	return out
}
