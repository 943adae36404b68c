// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/invowk/argbind/internal/config"
	"github.com/invowk/argbind/pkg/binder"
	"github.com/invowk/argbind/pkg/diag"
	"github.com/invowk/argbind/pkg/lexer"
)

type (
	// boundResult is the encoded form of a BoundSet.
	boundResult struct {
		Path []string              `json:"path" toml:"path"`
		Args map[string]boundValue `json:"args" toml:"args"`
	}

	boundValue struct {
		Values []any  `json:"values" toml:"values"`
		Source string `json:"source" toml:"source"`
	}
)

func newBoundResult(bound *binder.BoundSet) boundResult {
	res := boundResult{
		Path: append([]string{}, bound.Path()...),
		Args: make(map[string]boundValue),
	}
	for _, id := range bound.IDs() {
		values := bound.Values(id)
		bv := boundValue{Values: make([]any, len(values)), Source: bound.Source(id).String()}
		for i, v := range values {
			bv.Values[i] = v.Any()
		}
		res.Args[id] = bv
	}
	return res
}

// writeResult prints bound in the requested format.
func writeResult(w io.Writer, bound *binder.BoundSet, format config.OutputFormat) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(newBoundResult(bound), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.FormatTOML:
		data, err := toml.Marshal(newBoundResult(bound))
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = w.Write(data)
		return err
	case config.FormatText:
		writeText(w, bound)
		return nil
	default:
		return &config.InvalidOutputFormatError{Value: format}
	}
}

// writeText prints "path: a b" when a subcommand was selected, then one
// "id = v1, v2 (source)" line per bound argument in binding order.
func writeText(w io.Writer, bound *binder.BoundSet) {
	if path := bound.Path(); len(path) > 0 {
		fmt.Fprintln(w, titleStyle.Render("path:"), strings.Join(path, " "))
	}
	for _, id := range bound.IDs() {
		fmt.Fprintf(w, "%s = %s %s\n",
			cmdStyle.Render(id),
			strings.Join(bound.Strings(id), ", "),
			subtitleStyle.Render("("+bound.Source(id).String()+")"))
	}
}

// writeTokens prints one "kind raw" line per token.
func writeTokens(w io.Writer, argv []string) {
	for _, tok := range lexer.Tokenize(argv) {
		fmt.Fprintf(w, "%-13s %s\n", tok.Kind, tok.Raw)
	}
}

// renderDiagnostic styles diag.Describe output: the header in the error color and the
// usage line muted.
func renderDiagnostic(err error) string {
	lines := strings.Split(diag.Describe(err), "\n")
	for i, l := range lines {
		switch {
		case i == 0:
			lines[i] = errorStyle.Render(l)
		case strings.HasPrefix(l, "usage: "):
			lines[i] = subtitleStyle.Render(l)
		case strings.HasPrefix(l, "  tip: "):
			lines[i] = successStyle.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
