// Package conformance cross-validates lexgen's generated automata
// against an independently compiled github.com/timtadh/lexmachine
// lexer built from the same token definitions. Agreement between two
// unrelated implementations of the same idea is a stronger signal than
// either implementation's own unit tests.
package conformance

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"lexgen"
)

// Battery is one token definition shared by both engines under test.
type Battery struct {
	Identifier string
	Pattern    string
	Type       lexgen.TokenType
	Kind       lexgen.Kind
}

// BuildLexgen runs batteries through a lexgen.Generator.
func BuildLexgen(batteries []Battery) (*lexgen.Result, error) {
	sink := &lexgen.SliceSink{}
	tokens := make([]lexgen.Token, len(batteries))
	for i, b := range batteries {
		tokens[i] = lexgen.Token{
			Identifier: b.Identifier,
			Pattern:    b.Pattern,
			Type:       b.Type,
			Line:       i + 1,
			Kind:       b.Kind,
			Symbol:     b.Identifier,
		}
	}
	res := lexgen.NewGenerator(sink, nil).Generate(tokens, nil)
	if len(sink.Errors) > 0 {
		return nil, fmt.Errorf("lexgen: %v", sink.Errors[0])
	}
	return res, nil
}

type lmToken struct {
	identifier string
	length     int
}

// BuildLexmachine compiles the same batteries into a lexmachine.Lexer,
// preserving Battery order as rule-registration order. lexmachine
// resolves equal-length matches by registration order (earliest wins);
// lexgen ranks by Type first and only then by line (Battery position),
// so the two agree on ties when batteries are listed in non-increasing
// Type order.
func BuildLexmachine(batteries []Battery) (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	for _, b := range batteries {
		identifier := b.Identifier
		lex.Add([]byte(b.Pattern), func(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return lmToken{identifier: identifier, length: len(m.Bytes)}, nil
		})
	}
	if err := lex.Compile(); err != nil {
		return nil, err
	}
	return lex, nil
}

// Accept reports whether res's token automaton consumes all of input
// as one token, and if so, which identifier accepted it.
func Accept(res *lexgen.Result, input string) (string, bool) {
	s := res.Tokens.Start
	if s == nil {
		return "", false
	}
	for _, r := range input {
		var next *lexgen.State
		for _, tr := range s.Transitions {
			if tr.Begin <= int(r) && int(r) < tr.End {
				next = tr.Target
				break
			}
		}
		if next == nil {
			return "", false
		}
		s = next
	}
	if s.Accept == nil {
		return "", false
	}
	return s.Accept.Identifier, true
}

// AcceptLexmachine reports whether lex consumes all of input as one
// token, and if so, which identifier accepted it.
func AcceptLexmachine(lex *lexmachine.Lexer, input string) (string, bool) {
	scanner, err := lex.Scanner([]byte(input))
	if err != nil {
		return "", false
	}
	tok, err, eof := scanner.Next()
	if eof || err != nil || tok == nil {
		return "", false
	}
	t := tok.(lmToken)
	if t.length != len(input) {
		return "", false
	}
	if _, err, eof := scanner.Next(); !eof || err != nil {
		return "", false
	}
	return t.identifier, true
}
