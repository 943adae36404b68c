// SPDX-License-Identifier: MPL-2.0

package lexer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want []Token
	}{
		{
			name: "empty",
			argv: nil,
			want: []Token{},
		},
		{
			name: "long flag",
			argv: []string{"--verbose"},
			want: []Token{{Kind: LongFlag, Name: "verbose", Raw: "--verbose"}},
		},
		{
			name: "long flag with inline value",
			argv: []string{"--port=8080"},
			want: []Token{{Kind: LongFlag, Name: "port", Value: "8080", HasValue: true, Raw: "--port=8080"}},
		},
		{
			name: "inline value splits on first equals",
			argv: []string{"--define=a=b"},
			want: []Token{{Kind: LongFlag, Name: "define", Value: "a=b", HasValue: true, Raw: "--define=a=b"}},
		},
		{
			name: "empty inline value",
			argv: []string{"--name="},
			want: []Token{{Kind: LongFlag, Name: "name", HasValue: true, Raw: "--name="}},
		},
		{
			name: "short cluster",
			argv: []string{"-vn"},
			want: []Token{{Kind: ShortCluster, Name: "vn", Raw: "-vn"}},
		},
		{
			name: "lone dash is positional",
			argv: []string{"-"},
			want: []Token{{Kind: Positional, Value: "-", Raw: "-"}},
		},
		{
			name: "plain positional",
			argv: []string{"file.txt"},
			want: []Token{{Kind: Positional, Value: "file.txt", Raw: "file.txt"}},
		},
		{
			name: "separator makes the rest positional",
			argv: []string{"-v", "--", "-v", "--", "--x=1"},
			want: []Token{
				{Kind: ShortCluster, Name: "v", Raw: "-v"},
				{Kind: End, Raw: "--"},
				{Kind: Positional, Value: "-v", Raw: "-v"},
				{Kind: Positional, Value: "--", Raw: "--"},
				{Kind: Positional, Value: "--x=1", Raw: "--x=1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Tokenize(tt.argv)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %+v, want %+v", tt.argv, got, tt.want)
			}
		})
	}
}

func TestTokenizeOneTokenPerElement(t *testing.T) {
	t.Parallel()

	argv := []string{"build", "-c10", "--out", "dir", "--", "--", "x"}
	tokens := Tokenize(argv)
	if len(tokens) != len(argv) {
		t.Fatalf("len(Tokenize()) = %d, want %d", len(tokens), len(argv))
	}
	if got := Strings(tokens); !reflect.DeepEqual(got, argv) {
		t.Errorf("Strings(Tokenize(argv)) = %q, want %q", got, argv)
	}
}

func TestTokenKindString(t *testing.T) {
	t.Parallel()

	tests := map[TokenKind]string{
		LongFlag:     "long-flag",
		ShortCluster: "short-cluster",
		Positional:   "positional",
		End:          "separator",
		TokenKind(0): "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
