// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	SchemaNotFoundId Id = iota + 1
	SchemaParseErrorId
	SchemaInvalidId
	UnsupportedFormatId
	ConfigLoadFailedId
	InvalidArgumentsId
)

type (
	// Id identifies an Issue.
	Id int

	// MarkdownMsg is Markdown text rendered to the terminal.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is long-form Markdown guidance for a class of failures.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

// Id returns the issue identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the unrendered guidance.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns the documentation links appended to the guidance.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Markdown returns the guidance with its "See also" section.
func (i *Issue) Markdown() string {
	if len(i.docLinks) == 0 {
		return string(i.mdMsg)
	}
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	sb.WriteString("\n\n## See also\n")
	for _, link := range i.docLinks {
		sb.WriteString("- <")
		sb.WriteString(string(link))
		sb.WriteString(">\n")
	}
	return sb.String()
}

// Render renders the guidance with the named glamour style ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	schemaDocs HttpLink = "https://github.com/invowk/argbind#schema-files"

	issues = map[Id]*Issue{
		SchemaNotFoundId: {
			id: SchemaNotFoundId,
			mdMsg: `
# Schema file not found

argbind needs a schema file describing the command tree.

## Things you can try:
- Check the path you passed
- Create a minimal schema in CUE:
~~~cue
name: "app"
args: [{id: "verbose", kind: "flag", short: "v"}]
~~~`,
			docLinks: []HttpLink{schemaDocs},
		},
		SchemaParseErrorId: {
			id: SchemaParseErrorId,
			mdMsg: `
# Schema file could not be parsed

The file is not valid for its format, or it contains fields argbind does not know.

## Things you can try:
- Read the location in the error message and fix the syntax there
- Make sure every argument has an ` + "`id`" + ` and a ` + "`kind`" + ` (positional, flag or option)
- Run ` + "`argbind check <schema>`" + ` after each change`,
			docLinks: []HttpLink{schemaDocs},
		},
		SchemaInvalidId: {
			id: SchemaInvalidId,
			mdMsg: `
# Schema is invalid

The file parsed, but the command tree breaks a declaration rule. Every problem is listed above.

## Common causes:
- Two arguments share a short or long name on the same path
- A repeatable positional is followed by another positional
- A required argument also declares a default
- A default does not satisfy the argument's type or validators`,
			docLinks: []HttpLink{schemaDocs},
		},
		UnsupportedFormatId: {
			id: UnsupportedFormatId,
			mdMsg: `
# Unsupported schema format

argbind picks the decoder from the file extension.

## Supported extensions:
- ` + "`.cue`" + `
- ` + "`.toml`" + `
- ` + "`.hcl`",
		},
		ConfigLoadFailedId: {
			id: ConfigLoadFailedId,
			mdMsg: `
# Configuration could not be loaded

## Things you can try:
- Check ` + "`config.cue`" + ` in your argbind config directory
- Remove ARGBIND_* environment variables holding invalid values
- Pass a different file with ` + "`--config`",
		},
		InvalidArgumentsId: {
			id: InvalidArgumentsId,
			mdMsg: `
# The arguments did not match the schema

The diagnostic above names the offending argument and, when one exists, a close match.

## Things you can try:
- Put positionals that start with a dash after ` + "`--`" + `
- Check the usage line for required arguments`,
		},
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

// Get returns the issue for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
