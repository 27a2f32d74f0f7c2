package lexgen

// Automaton is one generated DFA: its start state (nil if the input
// list produced no usable pattern) and every state reachable from it,
// in canonical iteration order.
type Automaton struct {
	Start  *State
	States []*State
}

// Result is everything one Generate call produces (§6): two
// independent automata sharing one ActionTable.
type Result struct {
	Tokens     Automaton
	Whitespace Automaton
	Actions    *ActionTable
}

// Generator runs subset construction over token batteries. It is
// strictly single-threaded and synchronous (§5): a Generator is not
// safe for concurrent use, though independent Generators share no
// mutable state and may run concurrently.
type Generator struct {
	sink    ErrorSink
	actions *ActionTable
}

// NewGenerator returns a Generator that reports diagnostics to sink
// (which may be nil) and interns semantic actions into actions. If
// actions is nil, a fresh table is created.
func NewGenerator(sink ErrorSink, actions *ActionTable) *Generator {
	if actions == nil {
		actions = NewActionTable()
	}
	return &Generator{sink: sink, actions: actions}
}

// Actions returns the ActionTable this Generator interns actions into.
func (g *Generator) Actions() *ActionTable { return g.actions }

// Generate builds the token automaton and the whitespace automaton
// independently, then assigns dense indices over their union, token
// states first (§4.3). It never returns an error: parse-time and
// generation-time problems flow through the ErrorSink (§7).
func (g *Generator) Generate(tokens, whitespace []Token) *Result {
	printf(g.sink, "generating states for %d token definitions", len(tokens))
	tokenAuto := g.build(tokens)
	printf(g.sink, "generating states for %d whitespace definitions", len(whitespace))
	wsAuto := g.build(whitespace)
	assignIndices(&tokenAuto, &wsAuto)
	return &Result{Tokens: tokenAuto, Whitespace: wsAuto, Actions: g.actions}
}

// build runs one independent subset-construction pass over tokens. If
// parsing raised any error, the resulting state set is empty (§7).
func (g *Generator) build(tokens []Token) Automaton {
	parser := NewRegexParser(tokens, g.sink)
	if parser.Errors() > 0 || parser.Root() == nil {
		return Automaton{}
	}
	leaves := parser.Leaves()

	byKey := make(map[string]*State)
	var order []string

	start, _ := g.intern(byKey, &order, newItem(parser.Root().firstpos), leaves)

	var rs RangeSet
	queue := []*State{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s.processed {
			continue
		}
		s.processed = true

		rs.Clear()
		for _, p := range s.Item.Leaves() {
			leaf := leaves[p]
			if leaf.kind != nodeEnd {
				rs.Insert(leaf.begin, leaf.end)
			}
		}

		for _, r := range rs.Enumerate() {
			var target []int
			for _, p := range s.Item.Leaves() {
				leaf := leaves[p]
				if leaf.kind == nodeEnd {
					continue
				}
				if leaf.begin <= r.Begin && r.End <= leaf.end {
					target = append(target, leaf.followpos...)
				}
			}
			if len(target) == 0 {
				continue
			}
			targetState, isNew := g.intern(byKey, &order, newItem(target), leaves)
			s.Transitions = append(s.Transitions, Transition{Begin: r.Begin, End: r.End, Target: targetState})
			if isNew {
				queue = append(queue, targetState)
			}
		}
	}

	states := make([]*State, 0, len(order))
	for _, key := range order {
		states = append(states, byKey[key])
	}
	return Automaton{Start: start, States: states}
}

// intern returns the canonical State for item, creating and computing
// its accept symbol if this is the first time item has been seen.
func (g *Generator) intern(byKey map[string]*State, order *[]string, item Item, leaves []*RegexNode) (*State, bool) {
	key := item.Key()
	if s, ok := byKey[key]; ok {
		return s, false
	}
	s := &State{Item: item}
	g.assignAccept(s, leaves)
	byKey[key] = s
	*order = append(*order, key)
	return s, true
}

// assignAccept implements §4.4: among the END leaves in s's item,
// higher TokenType wins; on equal type, lower line wins; on a full
// tie, the later-seen candidate in ascending-leaf-index order wins and
// a SymbolConflictError is reported. This is a deliberate departure
// from the original generator, which keeps the first-seen candidate on
// an exact tie; see DESIGN.md's tie-break decision.
func (g *Generator) assignAccept(s *State, leaves []*RegexNode) {
	var chosen *Token
	for _, p := range s.Item.Leaves() {
		leaf := leaves[p]
		if leaf.kind != nodeEnd {
			continue
		}
		tok := leaf.token
		switch {
		case chosen == nil:
			chosen = tok
		case tok.Type > chosen.Type:
			chosen = tok
		case tok.Type < chosen.Type:
			// keep chosen
		case tok.Line < chosen.Line:
			chosen = tok
		case tok.Line > chosen.Line:
			// keep chosen
		default:
			reportError(g.sink, tok.Line, &SymbolConflictError{Line: tok.Line, First: chosen.Identifier, Second: tok.Identifier})
			chosen = tok
		}
	}
	s.Accept = chosen
}

func assignIndices(a, b *Automaton) {
	idx := 0
	for _, s := range a.States {
		s.Index = idx
		idx++
	}
	for _, s := range b.States {
		s.Index = idx
		idx++
	}
}
