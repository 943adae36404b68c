// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSchema = `
#Doc: {
	name:   string
	count:  int & >=0
	flags?: [...string]
	mode:   *"fast" | "slow"
}
`

type testDoc struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Flags []string `json:"flags,omitempty"`
	Mode  string   `json:"mode"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	res, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte(`
name: "demo"
count: 3
flags: ["a", "b"]
`), "#Doc")
	if err != nil {
		t.Fatalf("ParseAndDecode() unexpected error: %v", err)
	}
	if res.Value.Name != "demo" || res.Value.Count != 3 || len(res.Value.Flags) != 2 {
		t.Errorf("decoded = %+v", res.Value)
	}
	if res.Value.Mode != "fast" {
		t.Errorf("Mode = %q, want the schema default", res.Value.Mode)
	}
}

func TestParseAndDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		opts []Option
		want []string
	}{
		{name: "constraint violation", data: "name: \"x\"\ncount: -1\n", want: []string{"doc.cue", "count"}},
		{name: "wrong type", data: "name: 1\ncount: 1\n", want: []string{"name"}},
		{name: "unknown field", data: "name: \"x\"\ncount: 1\nextra: true\n", want: []string{"extra"}},
		{name: "syntax error", data: "name: \"x\ncount: 1", want: []string{"doc.cue"}},
		{name: "missing field", data: "count: 1\n", want: []string{"name"}},
		{name: "too large", data: "name: \"x\"\ncount: 1\n", opts: []Option{WithMaxFileSize(4)}, want: []string{"exceeds maximum 4 bytes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := append([]Option{WithFilename("doc.cue")}, tt.opts...)
			_, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte(tt.data), "#Doc", opts...)
			if err == nil {
				t.Fatal("ParseAndDecode() returned nil error")
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error = %q, missing %q", err.Error(), w)
				}
			}
		})
	}
}

func TestParseAndDecodeNonConcrete(t *testing.T) {
	t.Parallel()

	schema := `#Doc: { name?: string, count: int | *0 }`
	res, err := ParseAndDecode[testDoc]([]byte(schema), []byte(""), "#Doc", WithConcrete(false))
	if err != nil {
		t.Fatalf("ParseAndDecode() unexpected error: %v", err)
	}
	if res.Value.Count != 0 {
		t.Errorf("Count = %d, want 0", res.Value.Count)
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.cue")
	if err := os.WriteFile(path, []byte("name: \"file\"\ncount: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := ParseFile[testDoc]([]byte(testSchema), path, "#Doc")
	if err != nil {
		t.Fatalf("ParseFile() unexpected error: %v", err)
	}
	if res.Value.Count != 7 {
		t.Errorf("Count = %d, want 7", res.Value.Count)
	}

	if _, err := ParseFile[testDoc]([]byte(testSchema), path, "#Doc", WithMaxFileSize(3)); err == nil {
		t.Error("ParseFile() accepted a file over the size limit")
	}
	if _, err := ParseFile[testDoc]([]byte(testSchema), filepath.Join(dir, "missing.cue"), "#Doc"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseFile(missing) = %v, want os.ErrNotExist", err)
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	if FormatError(nil, "x.cue") != nil {
		t.Error("FormatError(nil) != nil")
	}
	plain := errors.New("boom")
	err := FormatError(plain, "x.cue")
	if !errors.Is(err, plain) || !strings.HasPrefix(err.Error(), "x.cue: ") {
		t.Errorf("FormatError(plain) = %v", err)
	}

	_, err = ParseAndDecode[testDoc]([]byte(testSchema), []byte("name: 1\ncount: -1\n"), "#Doc", WithFilename("x.cue"))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error = %T, want *DecodeError", err)
	}
	if de.File != "x.cue" || len(de.Problems) == 0 {
		t.Errorf("DecodeError = %+v", de)
	}
}

func TestJSONPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{path: nil, want: ""},
		{path: []string{"name"}, want: "name"},
		{path: []string{"commands", "0", "args"}, want: "commands[0].args"},
		{path: []string{"a", "0", "b", "12"}, want: "a[0].b[12]"},
		{path: []string{"0", "x"}, want: "0.x"},
	}
	for _, tt := range tests {
		if got := JSONPath(tt.path); got != tt.want {
			t.Errorf("JSONPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
