// SPDX-License-Identifier: MPL-2.0

package argspec

import (
	"errors"
	"strings"
	"testing"

	"github.com/invowk/argbind/pkg/argerr"
)

type acceptAll struct{}

func (acceptAll) Validate(Value) error { return nil }

func TestSchemaValidateAcceptsValidTree(t *testing.T) {
	t.Parallel()

	s := New("app",
		Args(
			Flag("verbose", WithShort('v'), Global(), Repeatable()),
			Option("config", WithShort('c'), WithType(TypePath), Global()),
			Option("mode", WithChoices("fast", "slow"), WithDefault("fast")),
			Flag("json"),
			Flag("yaml"),
		),
		Exclusive("json", "yaml"),
		Commands(
			New("build",
				Args(
					Flag("clean", WithShort('b')),
					Positional("target", WithArity(ArityOneOrMore)),
				),
				Exclusive("clean", "verbose"),
			),
			New("serve",
				Args(
					Option("port", WithType(TypeInt), WithIntBits(16), WithEnv("PORT"), WithDefault("8080")),
					Positional("root", WithArity(ArityZeroOrOne)),
				),
			),
		),
	)

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
}

func TestSchemaValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema *Schema
		want   string
	}{
		{
			name:   "duplicate short",
			schema: New("app", Args(Flag("a", WithShort('x')), Flag("b", WithShort('x')))),
			want:   "short name '-x' is already used",
		},
		{
			name:   "duplicate long",
			schema: New("app", Args(Flag("a", WithLong("same")), Option("b", WithLong("same")))),
			want:   "long name '--same' is already used",
		},
		{
			name:   "duplicate id",
			schema: New("app", Args(Flag("a"), Option("a", WithLong("other")))),
			want:   "duplicates identifier",
		},
		{
			name: "id duplicated in subcommand",
			schema: New("app", Args(Option("name")),
				Commands(New("sub", Args(Positional("name"))))),
			want: "duplicates identifier",
		},
		{
			name: "global long reused in subcommand",
			schema: New("app", Args(Flag("verbose", Global())),
				Commands(New("sub", Args(Flag("loud", WithLong("verbose")))))),
			want: "long name '--verbose' is already used",
		},
		{
			name:   "invalid identifier",
			schema: New("app", Args(Flag("1st"))),
			want:   "invalid identifier",
		},
		{
			name:   "invalid kind",
			schema: New("app", Args(Argument{ID: "x", Kind: "switch", Long: "x"})),
			want:   "invalid argument kind",
		},
		{
			name:   "invalid arity",
			schema: New("app", Args(Option("x", WithArity("many")))),
			want:   "invalid arity",
		},
		{
			name:   "invalid type",
			schema: New("app", Args(Option("x", WithType("uuid")))),
			want:   "invalid value type",
		},
		{
			name:   "positional with long name",
			schema: New("app", Args(Positional("x", WithLong("x")))),
			want:   "positional arguments cannot have short or long names",
		},
		{
			name:   "global positional",
			schema: New("app", Args(Positional("x", Global()))),
			want:   "positional arguments cannot be global",
		},
		{
			name:   "flag without names",
			schema: New("app", Args(Flag("x", WithLong("")))),
			want:   "needs a short or a long name",
		},
		{
			name:   "non-bool flag",
			schema: New("app", Args(Flag("x", WithType(TypeInt)))),
			want:   "flags must have type 'bool'",
		},
		{
			name:   "choice without choices",
			schema: New("app", Args(Option("x", WithType(TypeChoice)))),
			want:   "needs at least one choice",
		},
		{
			name:   "duplicate choice",
			schema: New("app", Args(Option("x", WithChoices("a", "a")))),
			want:   "duplicate choice 'a'",
		},
		{
			name:   "choices on string",
			schema: New("app", Args(Argument{ID: "x", Kind: KindOption, Long: "x", Choices: []string{"a"}})),
			want:   "choices are only allowed with type 'choice'",
		},
		{
			name:   "custom without validators",
			schema: New("app", Args(Option("x", WithType(TypeCustom)))),
			want:   "needs at least one validator",
		},
		{
			name:   "nil validator",
			schema: New("app", Args(Option("x", WithValidators(nil)))),
			want:   "validator #1 is nil",
		},
		{
			name:   "bad int width",
			schema: New("app", Args(Option("x", WithIntBits(12)))),
			want:   "int_bits must be 8, 16, 32 or 64",
		},
		{
			name:   "int width on string",
			schema: New("app", Args(Argument{ID: "x", Kind: KindOption, Long: "x", IntBits: 8})),
			want:   "int_bits is only allowed with type 'int'",
		},
		{
			name:   "two defaults on single-valued",
			schema: New("app", Args(Option("x", WithDefault("a", "b")))),
			want:   "at most one default",
		},
		{
			name:   "env delimiter on single-valued",
			schema: New("app", Args(Option("x", WithEnv("X"), WithEnvDelimiter(",")))),
			want:   "env_delimiter is only allowed on repeatable arguments",
		},
		{
			name:   "required with default",
			schema: New("app", Args(Option("x", Required(), WithDefault("a")))),
			want:   "cannot be both required and have a default",
		},
		{
			name:   "invalid env name",
			schema: New("app", Args(Option("x", WithEnv("MY VAR")))),
			want:   "invalid env name",
		},
		{
			name:   "unbounded positional not last",
			schema: New("app", Args(Positional("a", Repeatable()), Positional("b", WithArity(ArityZeroOrOne)))),
			want:   "only the last positional can have unbounded arity",
		},
		{
			name:   "required after optional positional",
			schema: New("app", Args(Positional("a", WithArity(ArityZeroOrOne)), Positional("b"))),
			want:   "required positionals must come before optional positionals",
		},
		{
			name: "unbounded positional with subcommands",
			schema: New("app", Args(Positional("files", Repeatable())),
				Commands(New("sub"))),
			want: "unbounded positionals cannot be combined with subcommands",
		},
		{
			name:   "duplicate subcommand",
			schema: New("app", Commands(New("sub"), New("sub"))),
			want:   "duplicate subcommand name 'sub'",
		},
		{
			name:   "invalid subcommand name",
			schema: New("app", Commands(New("has space"))),
			want:   "has invalid name 'has space'",
		},
		{
			name:   "nil subcommand",
			schema: New("app", Commands(nil)),
			want:   "subcommand #1 is nil",
		},
		{
			name:   "subcommand required without subcommands",
			schema: New("app", SubcommandRequired()),
			want:   "requires a subcommand but declares none",
		},
		{
			name:   "exclusive group too small",
			schema: New("app", Args(Flag("a")), Exclusive("a")),
			want:   "needs at least two members",
		},
		{
			name:   "exclusive group unknown member",
			schema: New("app", Args(Flag("a")), Exclusive("a", "b")),
			want:   "references unknown argument 'b'",
		},
		{
			name:   "exclusive group with positional",
			schema: New("app", Args(Flag("a"), Positional("p")), Exclusive("a", "p")),
			want:   "cannot include positional argument 'p'",
		},
		{
			name: "exclusive group with non-global ancestor",
			schema: New("app", Args(Flag("a")),
				Commands(New("sub", Args(Flag("b")), Exclusive("a", "b")))),
			want: "references unknown argument 'a'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.schema.Validate()
			if err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !errors.Is(err, argerr.ErrInvalidSchema) {
				t.Errorf("error does not wrap ErrInvalidSchema: %v", err)
			}
			var errs argerr.SchemaErrors
			if !errors.As(err, &errs) {
				t.Fatalf("error is %T, want argerr.SchemaErrors", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestSchemaValidateCollectsAllProblems(t *testing.T) {
	t.Parallel()

	s := New("app", Args(
		Flag("a", WithShort('x')),
		Flag("b", WithShort('x')),
		Option("c", WithType("nope")),
	))
	var errs argerr.SchemaErrors
	if err := s.Validate(); !errors.As(err, &errs) {
		t.Fatalf("Validate() = %v, want SchemaErrors", err)
	}
	if len(errs) != 2 {
		t.Errorf("len(errs) = %d, want 2: %v", len(errs), errs)
	}
}

func TestSchemaValidateLocalNamesDoNotLeak(t *testing.T) {
	t.Parallel()

	// A non-global -c at the root does not claim -c for subcommands.
	s := New("app",
		Args(Option("color", WithShort('c'))),
		Commands(New("build", Args(Flag("clean", WithShort('c'))))),
	)
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestCustomTypeWithValidator(t *testing.T) {
	t.Parallel()

	s := New("app", Args(Option("x", WithType(TypeCustom), WithValidators(acceptAll{}))))
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}
