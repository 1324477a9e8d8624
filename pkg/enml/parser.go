// Package enml parses ENML, the XHTML dialect notes carry their content in,
// and renders it as plain markdown-ish text. It implements the
// enex.MarkupParser capability on top of the x/net HTML parser, which copes
// with the malformed markup real archives contain.
package enml

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/avreen/enex2md/pkg/enex"
)

// Parser is a stateless enex.MarkupParser.
type Parser struct{}

// NewParser creates an ENML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse turns an ENML string into a traversable document.
func (p *Parser) Parse(markup string) (enex.Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("enml: %w", err)
	}
	return &document{root: root}, nil
}
