// SPDX-License-Identifier: MPL-2.0

package argspec

type (
	// ArgOption customizes an Argument built by Flag, Option or Positional.
	ArgOption func(*Argument)

	// SchemaOption customizes a Schema built by New.
	SchemaOption func(*Schema)
)

// New builds a schema. It does not validate; call Validate before parsing.
func New(name string, opts ...SchemaOption) *Schema {
	s := &Schema{Name: name}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Args appends arguments to the schema.
func Args(args ...Argument) SchemaOption {
	return func(s *Schema) { s.Args = append(s.Args, args...) }
}

// Commands appends subcommands to the schema.
func Commands(cmds ...*Schema) SchemaOption {
	return func(s *Schema) { s.Commands = append(s.Commands, cmds...) }
}

// Exclusive declares a group of argument IDs of which at most one may be given.
func Exclusive(ids ...string) SchemaOption {
	return func(s *Schema) { s.Exclusive = append(s.Exclusive, append([]string(nil), ids...)) }
}

// Summary sets the schema description.
func Summary(description string) SchemaOption {
	return func(s *Schema) { s.Description = description }
}

// SubcommandRequired demands that one of the subcommands is selected.
func SubcommandRequired() SchemaOption {
	return func(s *Schema) { s.SubcommandRequired = true }
}

// Flag builds a boolean flag. The long name defaults to the ID.
func Flag(id string, opts ...ArgOption) Argument {
	return build(Argument{ID: id, Kind: KindFlag, Long: id}, opts)
}

// Option builds a value-taking option. The long name defaults to the ID.
func Option(id string, opts ...ArgOption) Argument {
	return build(Argument{ID: id, Kind: KindOption, Long: id}, opts)
}

// Positional builds a positional argument.
func Positional(id string, opts ...ArgOption) Argument {
	return build(Argument{ID: id, Kind: KindPositional}, opts)
}

func build(a Argument, opts []ArgOption) Argument {
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// WithShort sets the short name.
func WithShort(r rune) ArgOption {
	return func(a *Argument) { a.Short = r }
}

// WithLong sets the long name; an empty name removes the default one.
func WithLong(name string) ArgOption {
	return func(a *Argument) { a.Long = name }
}

// WithArity sets the arity.
func WithArity(arity Arity) ArgOption {
	return func(a *Argument) { a.Arity = arity }
}

// Repeatable sets zero-or-more arity.
func Repeatable() ArgOption {
	return WithArity(ArityZeroOrMore)
}

// WithType sets the value type.
func WithType(t ValueType) ArgOption {
	return func(a *Argument) { a.Type = t }
}

// WithChoices makes the argument an enumerated choice over the given variants.
func WithChoices(choices ...string) ArgOption {
	return func(a *Argument) {
		a.Type = TypeChoice
		a.Choices = append([]string(nil), choices...)
	}
}

// WithIntBits sets the integer width and the int type.
func WithIntBits(bits int) ArgOption {
	return func(a *Argument) {
		a.Type = TypeInt
		a.IntBits = bits
	}
}

// WithDefault sets the default raw value(s).
func WithDefault(values ...string) ArgOption {
	return func(a *Argument) { a.Defaults = append([]string(nil), values...) }
}

// WithEnv sets the environment variable fallback.
func WithEnv(name string) ArgOption {
	return func(a *Argument) { a.Env = name }
}

// WithEnvDelimiter splits environment values of a repeatable argument.
func WithEnvDelimiter(delim string) ArgOption {
	return func(a *Argument) { a.EnvDelimiter = delim }
}

// Required marks the argument as required.
func Required() ArgOption {
	return func(a *Argument) { a.Required = true }
}

// Global makes the argument visible to every descendant subcommand.
func Global() ArgOption {
	return func(a *Argument) { a.Global = true }
}

// WithValidators appends validators run after type coercion.
func WithValidators(vs ...Validator) ArgOption {
	return func(a *Argument) { a.Validators = append(a.Validators, vs...) }
}

// WithDescription sets the help text.
func WithDescription(d string) ArgOption {
	return func(a *Argument) { a.Description = d }
}

// WithValueName sets the usage placeholder.
func WithValueName(name string) ArgOption {
	return func(a *Argument) { a.ValueName = name }
}
