package abnf

import "github.com/dmitrymomot/kit/pkg/enum"

const (
	tagLanguage   = `(?:[A-Za-z]{2,3}(?:-[A-Za-z]{3}){0,3}|[A-Za-z]{4}|[A-Za-z]{5,8})`
	tagScript     = `[A-Za-z]{4}`
	tagRegion     = `(?:[A-Za-z]{2}|[0-9]{3})`
	tagVariant    = `(?:[A-Za-z0-9]{5,8}|[0-9][A-Za-z0-9]{3})`
	tagExtension  = `[0-9A-WY-Za-wy-z](?:-[A-Za-z0-9]{2,8})+`
	tagPrivateUse = `[xX](?:-[A-Za-z0-9]{1,8})+`
	tagLangtag    = tagLanguage + `(?:-` + tagScript + `)?(?:-` + tagRegion + `)?(?:-` + tagVariant + `)*(?:-` + tagExtension + `)*(?:-` + tagPrivateUse + `)?`
)

// RFC5646 holds a simplified language tag grammar (RFC 5646, section 2.1).
// Grandfathered tags are not covered.
var RFC5646 = enum.MustRegister(enum.New("rfc5646",
	enum.Entry[string]{Name: "language", Value: tagLanguage},
	enum.Entry[string]{Name: "script", Value: tagScript},
	enum.Entry[string]{Name: "region", Value: tagRegion},
	enum.Entry[string]{Name: "variant", Value: tagVariant},
	enum.Entry[string]{Name: "extension", Value: tagExtension},
	enum.Entry[string]{Name: "privateuse", Value: tagPrivateUse},
	enum.Entry[string]{Name: "langtag", Value: tagLangtag},
	enum.Entry[string]{Name: "Language-Tag", Value: `(?:` + tagLangtag + `|` + tagPrivateUse + `)`},
))
