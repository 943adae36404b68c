// SPDX-License-Identifier: MPL-2.0

package argspec

import (
	"errors"
	"reflect"
	"testing"
)

func TestArgumentDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		arg          Argument
		wantArity    Arity
		wantType     ValueType
		wantRequired bool
		wantDisplay  string
	}{
		{name: "flag", arg: Flag("verbose"), wantArity: ArityZeroOrOne, wantType: TypeBool, wantDisplay: "--verbose"},
		{name: "short only flag", arg: Flag("v", WithLong(""), WithShort('v')), wantArity: ArityZeroOrOne, wantType: TypeBool, wantDisplay: "-v"},
		{name: "option", arg: Option("port"), wantArity: ArityZeroOrOne, wantType: TypeString, wantDisplay: "--port"},
		{name: "positional", arg: Positional("target"), wantArity: ArityExactlyOne, wantType: TypeString, wantRequired: true, wantDisplay: "<TARGET>"},
		{name: "optional positional", arg: Positional("out-dir", WithArity(ArityZeroOrOne)), wantArity: ArityZeroOrOne, wantType: TypeString, wantDisplay: "<OUT_DIR>"},
		{name: "required option", arg: Option("token", Required()), wantArity: ArityZeroOrOne, wantType: TypeString, wantRequired: true, wantDisplay: "--token"},
		{name: "one or more", arg: Option("tag", WithArity(ArityOneOrMore)), wantArity: ArityOneOrMore, wantType: TypeString, wantRequired: true, wantDisplay: "--tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.arg.GetArity(); got != tt.wantArity {
				t.Errorf("GetArity() = %q, want %q", got, tt.wantArity)
			}
			if got := tt.arg.GetType(); got != tt.wantType {
				t.Errorf("GetType() = %q, want %q", got, tt.wantType)
			}
			if got := tt.arg.IsRequired(); got != tt.wantRequired {
				t.Errorf("IsRequired() = %v, want %v", got, tt.wantRequired)
			}
			if got := tt.arg.Display(); got != tt.wantDisplay {
				t.Errorf("Display() = %q, want %q", got, tt.wantDisplay)
			}
		})
	}
}

func TestEnvName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix, id, want string
	}{
		{prefix: "APP", id: "output-file", want: "APP_OUTPUT_FILE"},
		{prefix: "APP_", id: "port", want: "APP_PORT"},
		{prefix: "", id: "log.level", want: "LOG_LEVEL"},
	}
	for _, tt := range tests {
		if got := EnvName(tt.prefix, tt.id); got != tt.want {
			t.Errorf("EnvName(%q, %q) = %q, want %q", tt.prefix, tt.id, got, tt.want)
		}
	}
}

func TestEnumIsValid(t *testing.T) {
	t.Parallel()

	if ok, errs := Kind("switch").IsValid(); ok || !errors.Is(errs[0], ErrInvalidKind) {
		t.Errorf("Kind(switch).IsValid() = %v, %v", ok, errs)
	}
	if ok, errs := Arity("many").IsValid(); ok || !errors.Is(errs[0], ErrInvalidArity) {
		t.Errorf("Arity(many).IsValid() = %v, %v", ok, errs)
	}
	if ok, errs := ValueType("uuid").IsValid(); ok || !errors.Is(errs[0], ErrInvalidValueType) {
		t.Errorf("ValueType(uuid).IsValid() = %v, %v", ok, errs)
	}
	for _, a := range []Arity{"", ArityExactlyOne, ArityZeroOrOne, ArityZeroOrMore, ArityOneOrMore} {
		if ok, _ := a.IsValid(); !ok {
			t.Errorf("Arity(%q).IsValid() = false", a)
		}
	}
}

func TestSchemaHelpers(t *testing.T) {
	t.Parallel()

	s := New("app",
		Args(Flag("verbose", Global()), Option("name"), Positional("src")),
		Commands(New("build"), New("test")),
	)

	if got := s.CommandNames(); !reflect.DeepEqual(got, []string{"build", "test"}) {
		t.Errorf("CommandNames() = %v", got)
	}
	if _, ok := s.Command("deploy"); ok {
		t.Error("Command(deploy) found a child that does not exist")
	}
	if got := s.Globals(); len(got) != 1 || got[0].ID != "verbose" {
		t.Errorf("Globals() = %v", got)
	}
	if got := s.Positionals(); len(got) != 1 || got[0].ID != "src" {
		t.Errorf("Positionals() = %v", got)
	}

	build, _ := s.Command("build")
	visible := build.VisibleArgs(s.Globals())
	if len(visible) != 1 || visible[0].ID != "verbose" {
		t.Errorf("VisibleArgs() = %v, want only the inherited global", visible)
	}

	var paths []string
	s.Walk(func(path []string, sc *Schema) {
		paths = append(paths, sc.Name+":"+string(rune('0'+len(path))))
	})
	if want := []string{"app:0", "build:1", "test:1"}; !reflect.DeepEqual(paths, want) {
		t.Errorf("Walk() visited %v, want %v", paths, want)
	}
}

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	if v := IntValue(3); v.Float() != 3 || v.String() != "3" || v.Any() != int64(3) {
		t.Errorf("IntValue(3) accessors = %v %q %v", v.Float(), v.String(), v.Any())
	}
	if v := FloatValue(0.25); v.String() != "0.25" || v.Type() != TypeFloat {
		t.Errorf("FloatValue(0.25) = %q %s", v.String(), v.Type())
	}
	if v := BoolValue(true); v.String() != "true" || !v.Bool() {
		t.Errorf("BoolValue(true) = %q", v.String())
	}
	var zero Value
	if zero.Type() != TypeString || zero.String() != "" {
		t.Errorf("zero Value = %s %q", zero.Type(), zero.String())
	}
	if TextValue("", "x") != TextValue(TypeString, "x") {
		t.Error("TextValue with empty type differs from TypeString")
	}
}
