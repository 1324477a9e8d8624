package enml

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// document wraps the parsed tree. The <en-note> wrapper and the html/body
// scaffolding the parser adds are transparent to rendering.
type document struct {
	root *html.Node
}

// blockTags end with a line break when rendered.
var blockTags = map[string]bool{
	"address": true, "blockquote": true, "div": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "ol": true, "p": true, "table": true, "tr": true,
	"ul": true, "en-note": true,
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Body renders the document's textual content. Inline attachment references
// (<en-media>) are dropped: attachment placement inside the body is not
// preserved, the header's attachment list is the canonical reference.
func (d *document) Body() string {
	var b strings.Builder
	render(&b, d.root)

	out := blankRuns.ReplaceAllString(b.String(), "\n\n")
	return strings.Trim(out, "\n")
}

func render(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "br", "hr":
			b.WriteString("\n")
			return
		case "en-todo":
			// The HTML5 tree builder leaves self-closed unknown elements
			// open, so trailing siblings may land here as children. Render
			// them; only the element itself maps to a checkbox.
			if checked(n) {
				b.WriteString("[x] ")
			} else {
				b.WriteString("[ ] ")
			}
		case "en-media":
			// Inline attachment references are dropped; the header's
			// attachment list is the canonical reference. Children are
			// kept for the same reason as en-todo.
		case "li":
			b.WriteString("- ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		render(b, c)
	}

	if n.Type == html.ElementNode && blockTags[n.Data] {
		b.WriteString("\n")
	}
}

func checked(n *html.Node) bool {
	for _, attr := range n.Attr {
		if attr.Key == "checked" && attr.Val != "false" {
			return true
		}
	}
	return false
}
