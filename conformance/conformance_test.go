package conformance

import (
	"testing"

	"lexgen"
)

var batteries = []Battery{
	{Identifier: "if", Pattern: "if", Type: 10, Kind: lexgen.Literal},
	{Identifier: "ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Type: 1, Kind: lexgen.Regular},
	{Identifier: "int", Pattern: `[0-9]+`, Type: 1, Kind: lexgen.Regular},
}

func TestAgreesWithLexmachine(t *testing.T) {
	lg, err := BuildLexgen(batteries)
	if err != nil {
		t.Fatalf("BuildLexgen: %v", err)
	}
	lm, err := BuildLexmachine(batteries)
	if err != nil {
		t.Fatalf("BuildLexmachine: %v", err)
	}

	inputs := []string{"if", "ifx", "x1", "abc123", "42", "_leading", ""}
	for _, in := range inputs {
		gotID, gotOK := Accept(lg, in)
		wantID, wantOK := AcceptLexmachine(lm, in)
		if gotOK != wantOK {
			t.Errorf("input %q: lexgen accepted=%v, lexmachine accepted=%v", in, gotOK, wantOK)
			continue
		}
		if gotOK && gotID != wantID {
			t.Errorf("input %q: lexgen chose %q, lexmachine chose %q", in, gotID, wantID)
		}
	}
}
