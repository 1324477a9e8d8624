package enex

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"
	"unicode"
)

// timeLayout is the compact ISO-8601 form ENEX uses for timestamps.
const timeLayout = "20060102T150405Z"

// xmlNote mirrors one <note> element of the archive.
type xmlNote struct {
	Title     string        `xml:"title"`
	Content   string        `xml:"content"`
	Created   string        `xml:"created"`
	Updated   string        `xml:"updated"`
	Tags      []string      `xml:"tag"`
	Resources []xmlResource `xml:"resource"`
}

type xmlResource struct {
	Data       xmlData      `xml:"data"`
	Mime       string       `xml:"mime"`
	Attributes xmlResAttrib `xml:"resource-attributes"`
}

type xmlData struct {
	Encoding string `xml:"encoding,attr"`
	Value    string `xml:",chardata"`
}

type xmlResAttrib struct {
	FileName string `xml:"file-name"`
}

// Parse reads an ENEX archive from r and invokes fn once per decoded note,
// synchronously and in archive order. The markup parser is applied to each
// note's content to produce the textual body. Parsing stops at the first
// error, including any error returned by fn.
func Parse(r io.Reader, markup MarkupParser, fn func(*Note) error) error {
	if markup == nil {
		return errors.New("enex: markup parser is required")
	}
	if fn == nil {
		return errors.New("enex: note callback is required")
	}

	decoder := xml.NewDecoder(r)
	// Real exports are not always well-formed: titles carry HTML entities
	// like &nbsp; that strict XML rejects. Pass them through as literals.
	decoder.Strict = false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("enex: reading archive: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "note" {
			continue
		}

		var raw xmlNote
		if err := decoder.DecodeElement(&raw, &start); err != nil {
			return fmt.Errorf("enex: decoding note: %w", err)
		}

		note, err := buildNote(&raw, markup)
		if err != nil {
			return fmt.Errorf("enex: note %q: %w", raw.Title, err)
		}

		if err := fn(note); err != nil {
			return err
		}
	}
}

func buildNote(raw *xmlNote, markup MarkupParser) (*Note, error) {
	created, err := parseTime(raw.Created)
	if err != nil {
		return nil, fmt.Errorf("invalid created timestamp: %w", err)
	}
	modified, err := parseTime(raw.Updated)
	if err != nil {
		return nil, fmt.Errorf("invalid updated timestamp: %w", err)
	}

	note := &Note{
		Title:    raw.Title,
		Created:  created,
		Modified: modified,
		Tags:     raw.Tags,
	}

	for _, res := range raw.Resources {
		att, err := decodeResource(&res)
		if err != nil {
			return nil, err
		}
		note.Attachments = append(note.Attachments, att)
	}

	if raw.Content != "" {
		doc, err := markup.Parse(raw.Content)
		if err != nil {
			return nil, fmt.Errorf("parsing content: %w", err)
		}
		note.Body = doc.Body()
	}

	return note, nil
}

// decodeResource turns a <resource> element into an Attachment. When the
// archive supplies no file name, the MD5 digest of the content plus a
// MIME-guessed extension stands in, matching the exporter's own convention.
func decodeResource(res *xmlResource) (Attachment, error) {
	if res.Data.Encoding != "base64" {
		return Attachment{}, fmt.Errorf("unsupported resource encoding %q", res.Data.Encoding)
	}

	content, err := base64.StdEncoding.DecodeString(stripSpace(res.Data.Value))
	if err != nil {
		return Attachment{}, fmt.Errorf("decoding resource data: %w", err)
	}

	name := res.Attributes.FileName
	if name != "" {
		// Path separators would escape the flat attachment directory.
		name = strings.NewReplacer("/", "", "\\", "").Replace(name)
	} else {
		sum := md5.Sum(content)
		name = hex.EncodeToString(sum[:]) + extensionFor(res.Mime)
	}

	return Attachment{Name: name, Content: content}, nil
}

func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(timeLayout, value)
}

// stripSpace removes the line folding base64 payloads arrive with.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func extensionFor(mimeType string) string {
	exts, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
