package abnf

import "github.com/dmitrymomot/kit/pkg/enum"

const (
	mailAtext         = "[A-Za-z0-9!#$%&'*+\\-/=?^_`{|}~]"
	mailDotAtomText   = mailAtext + `+(?:\.` + mailAtext + `+)*`
	mailQuotedString  = `"(?:[\x21\x23-\x5B\x5D-\x7E \t]|\\[\x20-\x7E\t])*"`
	mailLocalPart     = `(?:` + mailDotAtomText + `|` + mailQuotedString + `)`
	mailDomainLiteral = `\[[\x21-\x5A\x5E-\x7E]*\]`
	mailDomain        = `(?:` + mailDotAtomText + `|` + mailDomainLiteral + `)`
)

// RFC5322 holds the addr-spec productions of RFC 5322, section 3.4.1,
// without comments and folding whitespace.
var RFC5322 = enum.MustRegister(enum.New("rfc5322",
	enum.Entry[string]{Name: "atext", Value: mailAtext},
	enum.Entry[string]{Name: "dot-atom-text", Value: mailDotAtomText},
	enum.Entry[string]{Name: "quoted-string", Value: mailQuotedString},
	enum.Entry[string]{Name: "local-part", Value: mailLocalPart},
	enum.Entry[string]{Name: "domain-literal", Value: mailDomainLiteral},
	enum.Entry[string]{Name: "domain", Value: mailDomain},
	enum.Entry[string]{Name: "addr-spec", Value: mailLocalPart + `@` + mailDomain},
))
