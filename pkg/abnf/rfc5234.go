package abnf

import "github.com/dmitrymomot/kit/pkg/enum"

// RFC5234 holds the ABNF core rules (RFC 5234, appendix B.1).
var RFC5234 = enum.MustRegister(enum.New("rfc5234",
	enum.Entry[string]{Name: "ALPHA", Value: `[A-Za-z]`},
	enum.Entry[string]{Name: "BIT", Value: `[01]`},
	enum.Entry[string]{Name: "CHAR", Value: `[\x01-\x7F]`},
	enum.Entry[string]{Name: "CR", Value: `\r`},
	enum.Entry[string]{Name: "CRLF", Value: `\r\n`},
	enum.Entry[string]{Name: "CTL", Value: `[\x00-\x1F\x7F]`},
	enum.Entry[string]{Name: "DIGIT", Value: `[0-9]`},
	enum.Entry[string]{Name: "DQUOTE", Value: `"`},
	enum.Entry[string]{Name: "HEXDIG", Value: `[0-9A-Fa-f]`},
	enum.Entry[string]{Name: "HTAB", Value: `\t`},
	enum.Entry[string]{Name: "LF", Value: `\n`},
	enum.Entry[string]{Name: "LWSP", Value: `(?:(?:\r\n)?[\t ])*`},
	enum.Entry[string]{Name: "OCTET", Value: `[\x00-\xFF]`},
	enum.Entry[string]{Name: "SP", Value: `\x20`},
	enum.Entry[string]{Name: "VCHAR", Value: `[\x21-\x7E]`},
	enum.Entry[string]{Name: "WSP", Value: `[\t ]`},
))
