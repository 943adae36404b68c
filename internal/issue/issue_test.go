// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestValues_OrderedAndComplete(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != int(InvalidArgumentsId) {
		t.Fatalf("len(Values()) = %d, want %d", len(values), InvalidArgumentsId)
	}
	for i, iss := range values {
		if iss.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, iss.Id(), i+1)
		}
		if strings.TrimSpace(string(iss.MarkdownMsg())) == "" {
			t.Errorf("issue %d has no message", iss.Id())
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	if Get(Id(999)) != nil {
		t.Error("Get(999) should be nil")
	}
}

func TestIssue_MarkdownAppendsLinks(t *testing.T) {
	t.Parallel()

	md := Get(SchemaInvalidId).Markdown()
	if !strings.Contains(md, "## See also") || !strings.Contains(md, string(schemaDocs)) {
		t.Errorf("Markdown() missing links:\n%s", md)
	}
	if strings.Contains(Get(ConfigLoadFailedId).Markdown(), "See also") {
		t.Error("issue without links should have no See also section")
	}
}

func TestIssue_DocLinksIsCopy(t *testing.T) {
	t.Parallel()

	links := Get(SchemaNotFoundId).DocLinks()
	links[0] = "mutated"
	if Get(SchemaNotFoundId).DocLinks()[0] == "mutated" {
		t.Error("DocLinks() exposed internal slice")
	}
}

func TestIssue_RenderNoTTY(t *testing.T) {
	t.Parallel()

	out, err := Get(UnsupportedFormatId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Unsupported schema format") {
		t.Errorf("Render() = %q", out)
	}
}

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{"operation only", &ActionableError{Operation: "load schema"}, "failed to load schema"},
		{"with resource", &ActionableError{Operation: "load schema", Resource: "app.cue"}, "failed to load schema: app.cue"},
		{"with cause", &ActionableError{Operation: "load schema", Resource: "app.cue", Cause: cause}, "failed to load schema: app.cue: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").BuildError() != nil {
		t.Error("BuildError() without operation should be nil")
	}

	cause := errors.New("bad")
	err := NewErrorContext().
		WithOperation("load config").
		WithResource("config.cue").
		WithSuggestion("fix it").
		WithSuggestion("or remove it").
		WithIssue(ConfigLoadFailedId).
		Wrap(cause).
		BuildError()

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError() = %T, want *ActionableError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
	if ae.IssueID != ConfigLoadFailedId || len(ae.Suggestions) != 2 {
		t.Errorf("unexpected error: %+v", ae)
	}

	out := ae.Format(false)
	if !strings.Contains(out, "\n  • fix it\n  • or remove it") {
		t.Errorf("Format(false) = %q", out)
	}
	if strings.Contains(out, "Error chain") {
		t.Error("Format(false) should not include the error chain")
	}
	if !strings.Contains(ae.Format(true), "Error chain:\n  1. bad") {
		t.Errorf("Format(true) = %q", ae.Format(true))
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should be nil")
	}
	err := WrapWithContext(errors.New("x"), "read schema", "a.toml")
	if err.Error() != "failed to read schema: a.toml: x" {
		t.Errorf("Error() = %q", err.Error())
	}
}
