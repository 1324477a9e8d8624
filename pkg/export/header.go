package export

import (
	"fmt"
	"strings"

	"github.com/avreen/enex2md/pkg/enex"
)

// timestampLayout renders ISO-8601 UTC with milliseconds and a Z suffix.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// BuildHeader synthesizes the front-matter block for a note:
//
//	---
//	title: <title>
//	created: '<ISO-8601 UTC>'
//	modified: '<ISO-8601 UTC>'
//	tags: [a, b]
//	attachments: [x.png, y.pdf]
//	---
//
// The attachments line is omitted entirely when the note has none, and the
// listed names carry the same normalization the on-disk files get, so the
// header always references real paths. A comma inside a tag cannot be
// represented and yields a TagFormatError.
func BuildHeader(note *enex.Note) (string, error) {
	for _, tag := range note.Tags {
		if strings.Contains(tag, ",") {
			return "", &TagFormatError{Tags: note.Tags}
		}
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", note.Title)
	fmt.Fprintf(&b, "created: '%s'\n", note.Created.UTC().Format(timestampLayout))
	fmt.Fprintf(&b, "modified: '%s'\n", note.Modified.UTC().Format(timestampLayout))
	fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(note.Tags, ", "))

	if len(note.Attachments) > 0 {
		names := make([]string, len(note.Attachments))
		for i, att := range note.Attachments {
			names[i] = Normalize(att.Name)
		}
		fmt.Fprintf(&b, "attachments: [%s]\n", strings.Join(names, ", "))
	}

	b.WriteString("---\n")
	return b.String(), nil
}
