package enex

import "time"

// Note is one decoded archive entry. It is handed to the Parse callback
// exactly once and not retained afterwards.
type Note struct {
	Title       string
	Created     time.Time
	Modified    time.Time
	Tags        []string
	Attachments []Attachment
	Body        string
}

// Attachment is a named binary blob owned by its parent note.
// It has no identity beyond its name and content.
type Attachment struct {
	Name    string
	Content []byte
}

// MarkupParser turns a note's raw content markup into a traversable document.
// It is supplied explicitly to Parse so the archive decoder carries no
// hidden parser state.
type MarkupParser interface {
	Parse(markup string) (Document, error)
}

// Document is a parsed markup tree that can render the note body as text.
type Document interface {
	Body() string
}
