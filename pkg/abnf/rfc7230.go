package abnf

import "github.com/dmitrymomot/kit/pkg/enum"

const httpTchar = "[!#$%&'*+\\-.^_`|~0-9A-Za-z]"

// RFC7230 holds HTTP/1.1 message syntax rules (RFC 7230, section 3.2).
var RFC7230 = enum.MustRegister(enum.New("rfc7230",
	enum.Entry[string]{Name: "tchar", Value: httpTchar},
	enum.Entry[string]{Name: "token", Value: httpTchar + `+`},
	enum.Entry[string]{Name: "OWS", Value: `[ \t]*`},
	enum.Entry[string]{Name: "RWS", Value: `[ \t]+`},
	enum.Entry[string]{Name: "field-name", Value: httpTchar + `+`},
	enum.Entry[string]{Name: "quoted-string", Value: `"(?:[\t \x21\x23-\x5B\x5D-\x7E\x{80}-\x{FF}]|\\[\t \x21-\x7E\x{80}-\x{FF}])*"`},
))
