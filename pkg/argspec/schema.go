// SPDX-License-Identifier: MPL-2.0

package argspec

// Schema is an ordered set of arguments plus an optional tree of subcommands.
// A Schema must not be mutated once Validate has been called on it.
type Schema struct {
	// Name is the command name; for children it is the subcommand selector.
	Name string `json:"name"`
	// Description is help text; the engine only uses it for usage hints.
	Description string `json:"description,omitempty"`
	// Args are the declared arguments, in declaration order.
	Args []Argument `json:"args,omitempty"`
	// Commands are the child schemas.
	Commands []*Schema `json:"commands,omitempty"`
	// Exclusive lists groups of argument IDs of which at most one may appear on the command line.
	Exclusive [][]string `json:"exclusive,omitempty"`
	// SubcommandRequired demands that a subcommand is selected when Commands is non-empty.
	SubcommandRequired bool `json:"subcommand_required,omitempty"`
}

// HasCommands reports whether the schema has children.
func (s *Schema) HasCommands() bool {
	return len(s.Commands) > 0
}

// Command returns the child with the given name.
func (s *Schema) Command(name string) (*Schema, bool) {
	for _, c := range s.Commands {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// CommandNames returns child names in declaration order.
func (s *Schema) CommandNames() []string {
	names := make([]string, 0, len(s.Commands))
	for _, c := range s.Commands {
		names = append(names, c.Name)
	}
	return names
}

// Arg returns the argument declared on this schema with the given ID.
func (s *Schema) Arg(id string) (*Argument, bool) {
	for i := range s.Args {
		if s.Args[i].ID == id {
			return &s.Args[i], true
		}
	}
	return nil, false
}

// Positionals returns the positional arguments in declaration order.
func (s *Schema) Positionals() []*Argument {
	var out []*Argument
	for i := range s.Args {
		if s.Args[i].Kind == KindPositional {
			out = append(out, &s.Args[i])
		}
	}
	return out
}

// Globals returns the arguments of this schema that descendants inherit.
func (s *Schema) Globals() []*Argument {
	var out []*Argument
	for i := range s.Args {
		if s.Args[i].Global {
			out = append(out, &s.Args[i])
		}
	}
	return out
}

// VisibleArgs returns the arguments that can be matched at this level: the inherited
// globals of every ancestor followed by this schema's own arguments.
func (s *Schema) VisibleArgs(inherited []*Argument) []*Argument {
	out := make([]*Argument, 0, len(inherited)+len(s.Args))
	out = append(out, inherited...)
	for i := range s.Args {
		out = append(out, &s.Args[i])
	}
	return out
}

// Walk calls fn for s and every descendant, depth-first in declaration order,
// with the command path leading to each schema (the root's path is empty).
func (s *Schema) Walk(fn func(path []string, sc *Schema)) {
	s.walk(nil, fn)
}

func (s *Schema) walk(path []string, fn func(path []string, sc *Schema)) {
	fn(path, s)
	for _, c := range s.Commands {
		childPath := append(append([]string(nil), path...), c.Name)
		c.walk(childPath, fn)
	}
}
