package abnf

import "github.com/dmitrymomot/kit/pkg/enum"

const (
	uriUnreserved  = `A-Za-z0-9\-._~`
	uriSubDelims   = `!$&'()*+,;=`
	uriGenDelims   = `:/?#\[\]@`
	uriPctEncoded  = `%[0-9A-Fa-f]{2}`
	uriPchar       = `(?:[` + uriUnreserved + uriSubDelims + `:@]|` + uriPctEncoded + `)`
	uriSegment     = uriPchar + `*`
	uriSegmentNz   = uriPchar + `+`
	uriScheme      = `[A-Za-z][A-Za-z0-9+\-.]*`
	uriUserinfo    = `(?:[` + uriUnreserved + uriSubDelims + `:]|` + uriPctEncoded + `)*`
	uriDecOctet    = `(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])`
	uriIPv4        = `(?:` + uriDecOctet + `\.){3}` + uriDecOctet
	uriIPLiteral   = `\[[0-9A-Fa-f:.]+\]`
	uriRegName     = `(?:[` + uriUnreserved + uriSubDelims + `]|` + uriPctEncoded + `)*`
	uriHost        = `(?:` + uriIPLiteral + `|` + uriIPv4 + `|` + uriRegName + `)`
	uriPort        = `[0-9]*`
	uriAuthority   = `(?:` + uriUserinfo + `@)?` + uriHost + `(?::` + uriPort + `)?`
	uriPathAbempty = `(?:/` + uriSegment + `)*`
	uriPathAbs     = `/(?:` + uriSegmentNz + `(?:/` + uriSegment + `)*)?`
	uriPathRootles = uriSegmentNz + `(?:/` + uriSegment + `)*`
	uriQuery       = `(?:` + uriPchar + `|[/?])*`
	uriHierPart    = `(?://` + uriAuthority + uriPathAbempty + `|` + uriPathAbs + `|` + uriPathRootles + `|)`
	uriAbsolute    = uriScheme + `:` + uriHierPart + `(?:\?` + uriQuery + `)?`
	uriURI         = uriAbsolute + `(?:#` + uriQuery + `)?`
)

// RFC3986 holds the generic URI syntax (RFC 3986, appendix A).
var RFC3986 = enum.MustRegister(enum.New("rfc3986",
	enum.Entry[string]{Name: "unreserved", Value: `[` + uriUnreserved + `]`},
	enum.Entry[string]{Name: "sub-delims", Value: `[` + uriSubDelims + `]`},
	enum.Entry[string]{Name: "gen-delims", Value: `[` + uriGenDelims + `]`},
	enum.Entry[string]{Name: "reserved", Value: `[` + uriGenDelims + uriSubDelims + `]`},
	enum.Entry[string]{Name: "pct-encoded", Value: uriPctEncoded},
	enum.Entry[string]{Name: "pchar", Value: uriPchar},
	enum.Entry[string]{Name: "segment", Value: uriSegment},
	enum.Entry[string]{Name: "segment-nz", Value: uriSegmentNz},
	enum.Entry[string]{Name: "scheme", Value: uriScheme},
	enum.Entry[string]{Name: "userinfo", Value: uriUserinfo},
	enum.Entry[string]{Name: "dec-octet", Value: uriDecOctet},
	enum.Entry[string]{Name: "IPv4address", Value: uriIPv4},
	enum.Entry[string]{Name: "IP-literal", Value: uriIPLiteral},
	enum.Entry[string]{Name: "reg-name", Value: uriRegName},
	enum.Entry[string]{Name: "host", Value: uriHost},
	enum.Entry[string]{Name: "port", Value: uriPort},
	enum.Entry[string]{Name: "authority", Value: uriAuthority},
	enum.Entry[string]{Name: "path-abempty", Value: uriPathAbempty},
	enum.Entry[string]{Name: "path-absolute", Value: uriPathAbs},
	enum.Entry[string]{Name: "path-rootless", Value: uriPathRootles},
	enum.Entry[string]{Name: "query", Value: uriQuery},
	enum.Entry[string]{Name: "fragment", Value: uriQuery},
	enum.Entry[string]{Name: "hier-part", Value: uriHierPart},
	enum.Entry[string]{Name: "absolute-URI", Value: uriAbsolute},
	enum.Entry[string]{Name: "URI", Value: uriURI},
))
