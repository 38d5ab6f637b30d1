// Package groupexpr compiles boolean expressions over group names into an
// AST and evaluates them against membership matrix columns.
//
// Grammar, loosest binding first:
//
//	expr  = term { "|" term }
//	term  = unary { "&" unary }
//	unary = "~" unary | primary
//	primary = GROUP | "(" expr ")"
//
// A GROUP token is the longest known group name (case-insensitive) starting
// at the current position and ending at whitespace, an operator, a
// parenthesis, or the end of input. A group name that is a prefix of another
// name therefore never matches inside it.
package groupexpr
