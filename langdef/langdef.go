// Package langdef parses a small textual battery format describing the
// tokens a lexgen.Generator should build a DFA for, so a front-end tool
// (cmd/lexgen) does not need to construct []lexgen.Token by hand.
//
// Grammar, one definition per line:
//
//	token id      = `[a-zA-Z_][a-zA-Z0-9_]*` type 1 ;
//	literal if    = `if`                     type 10 ;
//	whitespace ws = `[ \t\n]+`                type 1 ;
package langdef

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"lexgen"
)

// File is the parsed battery: an ordered list of token, literal, and
// whitespace definitions.
type File struct {
	Definitions []*Definition `parser:"@@*"`
}

// Definition is one "kind identifier = `pattern` type N ;" line.
type Definition struct {
	Pos        lexer.Position
	Kind       string `parser:"@('token'|'literal'|'whitespace')"`
	Identifier string `parser:"@Ident"`
	Pattern    string `parser:"'=' @String"`
	Type       int    `parser:"'type' @Int ';'"`
}

var langLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: "`[^`]*`"},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[=;]`},
	{Name: "whitespace", Pattern: `\s+`},
	{Name: "Comment", Pattern: `#[^\n]*`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(langLexer),
	participle.Elide("whitespace", "Comment"),
	participle.Unquote("String"),
)

// Parse parses source into a File.
func Parse(source string) (*File, error) {
	return parser.ParseString("", source)
}

// Tokens converts a parsed File into the Token slices lexgen.Generator
// expects, splitting whitespace definitions into their own slice.
func (f *File) Tokens() (tokens, whitespace []lexgen.Token) {
	for _, d := range f.Definitions {
		tok := lexgen.Token{
			Identifier: d.Identifier,
			Pattern:    d.Pattern,
			Type:       lexgen.TokenType(d.Type),
			Line:       d.Pos.Line,
			Kind:       kindFor(d.Kind),
			Symbol:     d.Identifier,
		}
		if d.Kind == "whitespace" {
			whitespace = append(whitespace, tok)
		} else {
			tokens = append(tokens, tok)
		}
	}
	return tokens, whitespace
}

func kindFor(kind string) lexgen.Kind {
	if kind == "literal" {
		return lexgen.Literal
	}
	return lexgen.Regular
}
