// SPDX-License-Identifier: MPL-2.0

package argspec

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/invowk/argbind/pkg/argerr"
)

var (
	// idRegex validates argument identifiers.
	idRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_.-]*$`)
	// longRegex validates long names (the part after "--").
	longRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)
	// commandRegex validates subcommand names.
	commandRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_:.-]*$`)
)

type (
	// scope tracks the names already claimed along the current root-to-leaf path.
	scope struct {
		ids     map[string]string
		shorts  map[rune]string
		longs   map[string]string
		globals map[string]bool
	}

	// schemaValidator collects every structural problem of a schema tree.
	schemaValidator struct {
		errs argerr.SchemaErrors
	}
)

// Validate checks the structural invariants of the schema tree and returns
// argerr.SchemaErrors listing every problem, or nil.
func (s *Schema) Validate() error {
	v := &schemaValidator{}
	v.validateSchema(s, commandPath(s.Name, nil), newScope())
	return v.errs.OrNil()
}

func newScope() *scope {
	return &scope{
		ids:     make(map[string]string),
		shorts:  make(map[rune]string),
		longs:   make(map[string]string),
		globals: make(map[string]bool),
	}
}

// child copies the scope; locals of one level stay claimed for its descendants.
func (sc *scope) child() *scope {
	n := newScope()
	for k, v := range sc.ids {
		n.ids[k] = v
	}
	for k, v := range sc.shorts {
		n.shorts[k] = v
	}
	for k, v := range sc.longs {
		n.longs[k] = v
	}
	for k, v := range sc.globals {
		n.globals[k] = v
	}
	return n
}

func commandPath(name string, parent []string) []string {
	out := append([]string(nil), parent...)
	if name == "" {
		name = "<root>"
	}
	return append(out, name)
}

func (v *schemaValidator) add(path, msg string) {
	v.errs = append(v.errs, argerr.SchemaError{Path: path, Message: msg})
}

func (v *schemaValidator) validateSchema(s *Schema, path []string, inherited *scope) {
	where := strings.Join(path, " ")

	// Local names are only claimed for matching at this level; descendants only
	// see inherited globals, but IDs stay unique along the path for BoundSet storage.
	local := inherited.child()
	childScope := inherited.child()
	for i := range s.Args {
		arg := &s.Args[i]
		v.validateArgument(arg, where, local)
		childScope.ids[arg.ID] = where
		if arg.Global {
			childScope.globals[arg.ID] = true
			if arg.Short != 0 {
				childScope.shorts[arg.Short] = arg.ID
			}
			if arg.Long != "" {
				childScope.longs[arg.Long] = arg.ID
			}
		}
	}

	v.validatePositionals(s, where)
	v.validateExclusive(s, where, local)

	seen := make(map[string]bool, len(s.Commands))
	for i, c := range s.Commands {
		if c == nil {
			v.add(where, "subcommand #"+strconv.Itoa(i+1)+" is nil")
			continue
		}
		if !commandRegex.MatchString(c.Name) {
			v.add(where, "subcommand #"+strconv.Itoa(i+1)+" has invalid name '"+c.Name+"'")
		}
		if seen[c.Name] {
			v.add(where, "duplicate subcommand name '"+c.Name+"'")
		}
		seen[c.Name] = true
		v.validateSchema(c, commandPath(c.Name, path), childScope)
	}

	if s.SubcommandRequired && !s.HasCommands() {
		v.add(where, "requires a subcommand but declares none")
	}
}

func (v *schemaValidator) validateArgument(arg *Argument, where string, sc *scope) {
	field := where + " arg '" + arg.ID + "'"

	if !idRegex.MatchString(arg.ID) {
		v.add(field, "has invalid identifier (must start with a letter, contain only alphanumeric, '.', '-' and '_')")
	} else if owner, dup := sc.ids[arg.ID]; dup {
		v.add(field, "duplicates identifier already declared at '"+owner+"'")
	}
	sc.ids[arg.ID] = where

	if ok, errs := arg.Kind.IsValid(); !ok {
		v.add(field, errs[0].Error())
		return
	}
	if ok, errs := arg.Arity.IsValid(); !ok {
		v.add(field, errs[0].Error())
	}
	if ok, errs := arg.Type.IsValid(); !ok {
		v.add(field, errs[0].Error())
	}

	switch arg.Kind {
	case KindPositional:
		if arg.Short != 0 || arg.Long != "" {
			v.add(field, "positional arguments cannot have short or long names")
		}
		if arg.Global {
			v.add(field, "positional arguments cannot be global")
		}
	case KindFlag, KindOption:
		if arg.Short == 0 && arg.Long == "" {
			v.add(field, "needs a short or a long name")
		}
	}
	if arg.Kind == KindFlag && arg.GetType() != TypeBool {
		v.add(field, "flags must have type 'bool', got '"+string(arg.GetType())+"'")
	}

	v.validateNames(arg, field, sc)
	v.validateValues(arg, field)
}

func (v *schemaValidator) validateNames(arg *Argument, field string, sc *scope) {
	if arg.Short != 0 {
		if arg.Short == '-' || arg.Short == '=' || !unicode.IsPrint(arg.Short) || unicode.IsSpace(arg.Short) {
			v.add(field, "has invalid short name '"+string(arg.Short)+"'")
		} else if owner, dup := sc.shorts[arg.Short]; dup {
			v.add(field, "short name '-"+string(arg.Short)+"' is already used by '"+owner+"'")
		}
		sc.shorts[arg.Short] = arg.ID
	}
	if arg.Long != "" {
		if !longRegex.MatchString(arg.Long) {
			v.add(field, "has invalid long name '"+arg.Long+"'")
		} else if owner, dup := sc.longs[arg.Long]; dup {
			v.add(field, "long name '--"+arg.Long+"' is already used by '"+owner+"'")
		}
		sc.longs[arg.Long] = arg.ID
	}
}

func (v *schemaValidator) validateValues(arg *Argument, field string) {
	typ := arg.GetType()

	if typ == TypeChoice {
		if len(arg.Choices) == 0 {
			v.add(field, "type 'choice' needs at least one choice")
		}
		seen := make(map[string]bool, len(arg.Choices))
		for _, c := range arg.Choices {
			if seen[c] {
				v.add(field, "duplicate choice '"+c+"'")
			}
			seen[c] = true
		}
	} else if len(arg.Choices) > 0 {
		v.add(field, "choices are only allowed with type 'choice'")
	}

	if typ == TypeCustom && len(arg.Validators) == 0 {
		v.add(field, "type 'custom' needs at least one validator")
	}
	for i, val := range arg.Validators {
		if val == nil {
			v.add(field, "validator #"+strconv.Itoa(i+1)+" is nil")
		}
	}

	switch arg.IntBits {
	case 0, 8, 16, 32, 64:
	default:
		v.add(field, "int_bits must be 8, 16, 32 or 64, got "+strconv.Itoa(arg.IntBits))
	}
	if arg.IntBits != 0 && typ != TypeInt {
		v.add(field, "int_bits is only allowed with type 'int'")
	}

	if !arg.IsRepeatable() {
		if len(arg.Defaults) > 1 {
			v.add(field, "single-valued arguments accept at most one default")
		}
		if arg.EnvDelimiter != "" {
			v.add(field, "env_delimiter is only allowed on repeatable arguments")
		}
	}
	if arg.Required && arg.HasDefault() {
		v.add(field, "cannot be both required and have a default")
	}
	if arg.Env != "" && strings.ContainsAny(arg.Env, "= \t") {
		v.add(field, "has invalid env name '"+arg.Env+"'")
	}
}

// validatePositionals enforces ordering: required before optional, and at most
// one unbounded positional which must come last. Children and an unbounded
// positional are mutually exclusive.
func (v *schemaValidator) validatePositionals(s *Schema, where string) {
	foundOptional := false
	foundUnbounded := false
	for _, p := range s.Positionals() {
		field := where + " arg '" + p.ID + "'"
		if foundUnbounded {
			v.add(field, "only the last positional can have unbounded arity")
		}
		if p.IsRequired() && foundOptional {
			v.add(field, "required positionals must come before optional positionals")
		}
		if !p.IsRequired() {
			foundOptional = true
		}
		if p.IsRepeatable() {
			foundUnbounded = true
			if s.HasCommands() {
				v.add(field, "unbounded positionals cannot be combined with subcommands")
			}
		}
	}
}

func (v *schemaValidator) validateExclusive(s *Schema, where string, sc *scope) {
	for i, group := range s.Exclusive {
		field := where + " exclusive group #" + strconv.Itoa(i+1)
		if len(group) < 2 {
			v.add(field, "needs at least two members")
		}
		for _, id := range group {
			arg, ok := s.Arg(id)
			if !ok {
				if !sc.globals[id] {
					v.add(field, "references unknown argument '"+id+"'")
				}
				continue
			}
			if arg.Kind == KindPositional {
				v.add(field, "cannot include positional argument '"+id+"'")
			}
		}
	}
}
