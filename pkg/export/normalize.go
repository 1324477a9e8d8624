package export

import "strings"

// filenameEscaper percent-encodes the characters that are unsafe in an
// attachment name: the header embeds names in a bracketed, comma-separated
// list, and the destination path is built by plain concatenation.
var filenameEscaper = strings.NewReplacer(
	"[", "%5b",
	"]", "%5d",
	"(", "%28",
	")", "%29",
	",", "%2c",
)

// Normalize maps an attachment's display name to a safe on-disk base name.
// Every occurrence of an unsafe character is replaced; all other characters
// pass through untouched. The result contains none of the unsafe characters,
// so Normalize is idempotent.
func Normalize(name string) string {
	return filenameEscaper.Replace(name)
}
