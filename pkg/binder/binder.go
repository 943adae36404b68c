// SPDX-License-Identifier: MPL-2.0

package binder

import (
	"strconv"
	"strings"

	"github.com/invowk/argbind/pkg/argerr"
	"github.com/invowk/argbind/pkg/argspec"
	"github.com/invowk/argbind/pkg/coerce"
	"github.com/invowk/argbind/pkg/lexer"
)

// NoSelector is returned by Session.Level when no subcommand selector was found.
const NoSelector = -1

type (
	// LookupFunc reads an environment variable. It has the signature of os.LookupEnv.
	LookupFunc func(name string) (string, bool)

	// rawValue accumulates the raw text given for one argument.
	rawValue struct {
		values []string
		// occurrences counts command-line appearances.
		occurrences int
		source      Source
	}

	// Session holds the state of one parse. It is not safe for concurrent use;
	// create one per parse.
	Session struct {
		lookup LookupFunc
		raws   map[string]*rawValue
		// args lists every argument on the resolved path, root level first.
		args   []*argspec.Argument
		levels []*argspec.Schema
		path   []string
	}

	// levelWalker matches the tokens of one command level.
	levelWalker struct {
		s        *Session
		schema   *argspec.Schema
		visible  []*argspec.Argument
		slots    []*argspec.Argument
		slot     int
		dispatch bool
	}
)

// MapLookup returns a LookupFunc reading from m.
func MapLookup(m map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

// Bind binds tokens against a schema without routing: subcommands are ignored and every
// positional token is assigned to the schema's positionals.
func Bind(schema *argspec.Schema, tokens []lexer.Token, lookup LookupFunc) (*BoundSet, error) {
	s := NewSession(lookup)
	if _, err := s.Level(schema, nil, tokens, false); err != nil {
		return nil, err
	}
	return s.Finish()
}

// NewSession starts a parse. A nil lookup disables environment fallbacks.
func NewSession(lookup LookupFunc) *Session {
	return &Session{lookup: lookup, raws: make(map[string]*rawValue)}
}

// Descend records that the subcommand name was selected.
func (s *Session) Descend(name string) {
	s.path = append(s.path, name)
}

// Level matches tokens at one command level. inherited lists the globals of all ancestors.
//
// With dispatch set, the first positional token naming one of the schema's subcommands
// stops the walk and its index is returned; the tokens after it belong to that subcommand.
// A positional that names no subcommand fills the level's positionals, and once those
// are full it is reported as an unknown subcommand. Without dispatch, NoSelector is
// always returned.
func (s *Session) Level(schema *argspec.Schema, inherited []*argspec.Argument, tokens []lexer.Token, dispatch bool) (int, error) {
	s.levels = append(s.levels, schema)
	for i := range schema.Args {
		s.args = append(s.args, &schema.Args[i])
	}

	w := &levelWalker{
		s:        s,
		schema:   schema,
		visible:  schema.VisibleArgs(inherited),
		slots:    schema.Positionals(),
		dispatch: dispatch && schema.HasCommands(),
	}
	return w.walk(tokens)
}

func (w *levelWalker) walk(tokens []lexer.Token) (int, error) {
	afterEnd := false
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		var (
			consumed int
			err      error
		)
		switch {
		case afterEnd:
			err = w.positional(tok)
		case tok.Kind == lexer.End:
			afterEnd = true
		case tok.Kind == lexer.LongFlag:
			consumed, err = w.long(tok, tokens[i+1:])
		case tok.Kind == lexer.ShortCluster && w.isNegativeNumber(tok):
			err = w.positional(lexer.Token{Kind: lexer.Positional, Value: tok.Raw, Raw: tok.Raw})
		case tok.Kind == lexer.ShortCluster:
			consumed, err = w.short(tok, tokens[i+1:])
		default:
			if w.dispatch {
				if _, ok := w.schema.Command(tok.Value); ok {
					return i, nil
				}
				if w.slot >= len(w.slots) {
					names := w.schema.CommandNames()
					return NoSelector, argerr.Newf(argerr.KindAmbiguousSubcommand, "", tok.Raw,
						"unrecognized subcommand '%s'", tok.Raw).
						WithValid(names).
						WithSuggestion(argerr.Suggest(tok.Value, names))
				}
			}
			err = w.positional(tok)
		}
		if err != nil {
			return NoSelector, err
		}
		i += consumed
	}
	return NoSelector, nil
}

// positional assigns tok to the current positional slot. Unbounded slots absorb
// every remaining positional.
func (w *levelWalker) positional(tok lexer.Token) error {
	if w.slot >= len(w.slots) {
		return argerr.Newf(argerr.KindUnknownArgument, "", tok.Raw, "unexpected argument '%s' found", tok.Raw)
	}
	arg := w.slots[w.slot]
	w.s.record(arg, tok.Value)
	if !arg.IsRepeatable() {
		w.slot++
	}
	return nil
}

// isNegativeNumber reports whether a short cluster such as "-5" or "-1.5" should be read
// as a positional number: it parses as one and no visible argument claims its first rune.
func (w *levelWalker) isNegativeNumber(tok lexer.Token) bool {
	if !looksNumeric(tok.Raw) {
		return false
	}
	r := []rune(tok.Name)[0]
	return w.byShort(r) == nil
}

// looksNumeric reports whether raw is a signed decimal number such as "-5" or "-.5".
// Spellings like "-inf" are not numbers on a command line.
func looksNumeric(raw string) bool {
	if len(raw) < 2 || (raw[1] != '.' && (raw[1] < '0' || raw[1] > '9')) {
		return false
	}
	_, err := strconv.ParseFloat(raw, 64)
	return err == nil
}

func (w *levelWalker) long(tok lexer.Token, rest []lexer.Token) (int, error) {
	arg := w.byLong(tok.Name)
	if arg == nil {
		return 0, argerr.Newf(argerr.KindUnknownArgument, "", tok.Raw, "unexpected argument '--%s' found", tok.Name).
			WithSuggestion(w.suggestLong(tok.Name))
	}
	if err := w.s.occurrence(arg, tok.Raw); err != nil {
		return 0, err
	}

	switch arg.Kind {
	case argspec.KindFlag:
		if tok.HasValue {
			w.s.record(arg, tok.Value)
		} else {
			w.s.record(arg, "true")
		}
		return 0, nil
	default:
		if tok.HasValue {
			w.s.record(arg, tok.Value)
			return 0, nil
		}
		return w.takeNext(arg, rest)
	}
}

func (w *levelWalker) short(tok lexer.Token, rest []lexer.Token) (int, error) {
	runes := []rune(tok.Name)
	for i, r := range runes {
		arg := w.byShort(r)
		if arg == nil {
			raw := "-" + string(r)
			msg := "unexpected argument '" + raw + "' found"
			if len(runes) > 1 {
				msg += " in '" + tok.Raw + "'"
			}
			return 0, argerr.New(argerr.KindUnknownArgument, "", raw, msg).WithSuggestion(w.suggestShort(r))
		}
		if err := w.s.occurrence(arg, "-"+string(r)); err != nil {
			return 0, err
		}
		if arg.Kind == argspec.KindFlag {
			w.s.record(arg, "true")
			continue
		}
		// A value-taking short consumes the rest of the cluster: -c10 and -c=10 mean -c 10.
		if remainder := string(runes[i+1:]); remainder != "" {
			w.s.record(arg, strings.TrimPrefix(remainder, "="))
			return 0, nil
		}
		return w.takeNext(arg, rest)
	}
	return 0, nil
}

// takeNext binds the following token as arg's value and reports how many tokens it consumed.
func (w *levelWalker) takeNext(arg *argspec.Argument, rest []lexer.Token) (int, error) {
	if len(rest) > 0 {
		next := rest[0]
		switch {
		case next.Kind == lexer.Positional:
			w.s.record(arg, next.Value)
			return 1, nil
		case next.Kind == lexer.ShortCluster && arg.GetType().Numeric():
			if looksNumeric(next.Raw) {
				w.s.record(arg, next.Raw)
				return 1, nil
			}
		}
	}
	return 0, argerr.Newf(argerr.KindMissingRequired, arg.ID, "",
		"a value is required for '%s' but none was supplied", arg.Display())
}

func (w *levelWalker) byLong(name string) *argspec.Argument {
	if name == "" {
		return nil
	}
	for _, a := range w.visible {
		if a.Long == name && a.Kind != argspec.KindPositional {
			return a
		}
	}
	return nil
}

func (w *levelWalker) byShort(r rune) *argspec.Argument {
	for _, a := range w.visible {
		if a.Short == r && a.Kind != argspec.KindPositional {
			return a
		}
	}
	return nil
}

func (w *levelWalker) suggestLong(name string) string {
	var names []string
	for _, a := range w.visible {
		if a.Long != "" {
			names = append(names, a.Long)
		}
	}
	if s := argerr.Suggest(name, names); s != "" {
		return "--" + s
	}
	return ""
}

// suggestShort offers the long form of a short name that exists in a different case.
func (w *levelWalker) suggestShort(r rune) string {
	for _, a := range w.visible {
		if a.Short != 0 && strings.EqualFold(string(a.Short), string(r)) {
			return "-" + string(a.Short)
		}
	}
	return ""
}

// occurrence counts a command-line appearance and rejects repeated single-valued arguments.
func (s *Session) occurrence(arg *argspec.Argument, raw string) error {
	rv := s.raw(arg)
	if rv.occurrences > 0 && !arg.IsRepeatable() {
		return argerr.Newf(argerr.KindDuplicateExclusive, arg.ID, raw,
			"the argument '%s' cannot be used multiple times", arg.Display())
	}
	rv.occurrences++
	return nil
}

func (s *Session) record(arg *argspec.Argument, value string) {
	rv := s.raw(arg)
	rv.values = append(rv.values, value)
	rv.source = SourceCommandLine
}

func (s *Session) raw(arg *argspec.Argument) *rawValue {
	rv, ok := s.raws[arg.ID]
	if !ok {
		rv = &rawValue{}
		s.raws[arg.ID] = rv
	}
	return rv
}

// Finish applies exclusive-group checks, environment and default fallbacks, required
// checks and coercion, in that order, and returns the BoundSet. The first failure wins.
func (s *Session) Finish() (*BoundSet, error) {
	if err := s.checkExclusive(); err != nil {
		return nil, err
	}

	for _, arg := range s.args {
		s.fallback(arg)
	}

	for _, arg := range s.args {
		if rv := s.raws[arg.ID]; arg.IsRequired() && (rv == nil || len(rv.values) == 0) {
			return nil, argerr.Newf(argerr.KindMissingRequired, arg.ID, "",
				"the following required argument was not provided: %s", arg.Display())
		}
	}

	out := newBoundSet()
	out.path = append([]string(nil), s.path...)
	for _, arg := range s.args {
		rv := s.raws[arg.ID]
		if rv == nil || len(rv.values) == 0 {
			continue
		}
		values := make([]argspec.Value, 0, len(rv.values))
		for _, raw := range rv.values {
			v, err := coerce.Coerce(raw, arg)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		out.set(arg.ID, Bound{Arg: arg, Values: values, Source: rv.source})
	}
	return out, nil
}

// fallback fills an argument that argv did not supply: environment first, then default.
// An empty environment value counts as unset.
func (s *Session) fallback(arg *argspec.Argument) {
	if rv := s.raws[arg.ID]; rv != nil && len(rv.values) > 0 {
		return
	}
	if arg.Env != "" && s.lookup != nil {
		if v, ok := s.lookup(arg.Env); ok && v != "" {
			values := []string{v}
			if arg.EnvDelimiter != "" && arg.IsRepeatable() {
				values = strings.Split(v, arg.EnvDelimiter)
			}
			s.raws[arg.ID] = &rawValue{values: values, source: SourceEnvironment}
			return
		}
	}
	if arg.HasDefault() {
		s.raws[arg.ID] = &rawValue{values: append([]string(nil), arg.Defaults...), source: SourceDefault}
	}
}

func (s *Session) checkExclusive() error {
	for _, level := range s.levels {
		for _, group := range level.Exclusive {
			first := ""
			for _, id := range group {
				rv := s.raws[id]
				if rv == nil || rv.occurrences == 0 {
					continue
				}
				if first == "" {
					first = id
					continue
				}
				return argerr.Newf(argerr.KindDuplicateExclusive, id, "",
					"the argument '%s' cannot be used with '%s'", s.display(id), s.display(first)).
					WithValid(group)
			}
		}
	}
	return nil
}

func (s *Session) display(id string) string {
	for _, a := range s.args {
		if a.ID == id {
			return a.Display()
		}
	}
	return id
}
