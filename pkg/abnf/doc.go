// Package abnf encodes rules from RFC ABNF grammars as enumerations of
// RE2 pattern fragments.
//
// Each table is an enum.Enumeration[string] keyed by the rule name used in
// the RFC (for example RFC3986 "pchar" or RFC5322 "addr-spec"). Fragments
// are not anchored and can be embedded in larger expressions. Pattern and
// Match compile an anchored expression for a whole rule and memoize it.
//
//	if abnf.Match(abnf.RFC7230, "token", header) { ... }
//
// Some productions are simplified where the full grammar cannot be expressed
// in RE2 or adds nothing for validation purposes: comments and folding
// whitespace are left out of RFC 5322, and RFC 3986 IP-literal accepts any
// bracketed run of hex digits, colons and dots.
//
// All tables are registered with the enum registry under their lower-case
// RFC name ("rfc3986", ...).
package abnf
