// Package lexgen turns a list of named regular-expression token
// definitions into two deterministic finite automata: one for ordinary
// tokens and one for whitespace, so a hand-written scanner can drive
// both without re-entering the token DFA between tokens.
//
// The pipeline is the classical syntax-tree-to-DFA construction (the
// position method): RegexParser builds a syntax tree annotated with
// firstpos/lastpos/followpos, Generator runs subset construction over
// sets of leaf positions ("items") using RangeSet to partition the
// alphabet without enumerating it, and accepting states are resolved
// by token priority.
package lexgen
