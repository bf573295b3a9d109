package pctexp_test

import (
	"testing"

	"github.com/lwmacct/260821-go-pkg-pctexp/pkg/pctexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []pctexp.Token
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "literal only",
			input: "abc",
			want: []pctexp.Token{
				{Kind: pctexp.TokenLiteral, Pos: 0, Text: "abc"},
			},
		},
		{
			name:  "variable only",
			input: "%foo%",
			want: []pctexp.Token{
				{Kind: pctexp.TokenVar, Pos: 0, Text: "foo"},
			},
		},
		{
			name:  "literal then variable",
			input: "foo%bar%",
			want: []pctexp.Token{
				{Kind: pctexp.TokenLiteral, Pos: 0, Text: "foo"},
				{Kind: pctexp.TokenVar, Pos: 3, Text: "bar"},
			},
		},
		{
			name:  "variable then literal",
			input: "%foo%bar",
			want: []pctexp.Token{
				{Kind: pctexp.TokenVar, Pos: 0, Text: "foo"},
				{Kind: pctexp.TokenLiteral, Pos: 5, Text: "bar"},
			},
		},
		{
			name:  "adjacent variables",
			input: "%foo%%bar%",
			want: []pctexp.Token{
				{Kind: pctexp.TokenVar, Pos: 0, Text: "foo"},
				{Kind: pctexp.TokenVar, Pos: 5, Text: "bar"},
			},
		},
		{
			name:  "variables around a literal",
			input: "%foo% and %bar%",
			want: []pctexp.Token{
				{Kind: pctexp.TokenVar, Pos: 0, Text: "foo"},
				{Kind: pctexp.TokenLiteral, Pos: 5, Text: " and "},
				{Kind: pctexp.TokenVar, Pos: 10, Text: "bar"},
			},
		},
		{
			name:  "escape splits the literal",
			input: "100%% done",
			want: []pctexp.Token{
				{Kind: pctexp.TokenLiteral, Pos: 0, Text: "100"},
				{Kind: pctexp.TokenLiteral, Pos: 3, Text: "%"},
				{Kind: pctexp.TokenLiteral, Pos: 5, Text: " done"},
			},
		},
		{
			name:  "escape pair between variables",
			input: "%a%%%%b%",
			want: []pctexp.Token{
				{Kind: pctexp.TokenVar, Pos: 0, Text: "a"},
				{Kind: pctexp.TokenLiteral, Pos: 3, Text: "%"},
				{Kind: pctexp.TokenVar, Pos: 5, Text: "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pctexp.Tokens(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokens_Errors(t *testing.T) {
	t.Run("unterminated trailing token", func(t *testing.T) {
		tokens, err := pctexp.Tokens("abc%DEF")
		assert.Nil(t, tokens)

		var unterminated *pctexp.UnterminatedTokenError
		require.ErrorAs(t, err, &unterminated)
		assert.Equal(t, 3, unterminated.Pos)
	})

	t.Run("empty name without escape handling", func(t *testing.T) {
		exp := pctexp.New(pctexp.WithoutEscape())
		_, err := exp.Tokens("a%%b")

		var empty *pctexp.EmptyNameError
		require.ErrorAs(t, err, &empty)
		assert.Equal(t, 1, empty.Pos)
	})
}

func TestVars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "no variables",
			input: "just text with 100%% escape",
			want:  nil,
		},
		{
			name:  "single variable",
			input: "home is %HOME%",
			want:  []string{"HOME"},
		},
		{
			name:  "first appearance order",
			input: "%B% before %A%, then %B% again",
			want:  []string{"B", "A"},
		},
		{
			name:  "adjacent variables",
			input: "%foo%%bar%",
			want:  []string{"foo", "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pctexp.Vars(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVars_Errors(t *testing.T) {
	vars, err := pctexp.Vars("%A% and %broken")
	assert.Nil(t, vars)

	var unterminated *pctexp.UnterminatedTokenError
	require.ErrorAs(t, err, &unterminated)
	assert.Equal(t, 8, unterminated.Pos)
}
