package enml

import (
	"testing"
)

func TestBody(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "Plain Text",
			markup: `<en-note>hello</en-note>`,
			want:   "hello",
		},
		{
			name:   "Divs Become Lines",
			markup: `<en-note><div>one</div><div>two</div></en-note>`,
			want:   "one\ntwo",
		},
		{
			name:   "Br Breaks Line",
			markup: `<en-note>one<br/>two</en-note>`,
			want:   "one\ntwo",
		},
		{
			name:   "En-Media Dropped",
			markup: `<en-note><div>before</div><en-media hash="abc" type="image/png"/><div>after</div></en-note>`,
			want:   "before\nafter",
		},
		{
			name:   "List Items",
			markup: `<en-note><ul><li>first</li><li>second</li></ul></en-note>`,
			want:   "- first\n- second",
		},
		{
			name:   "Todo Checkboxes",
			markup: `<en-note><div><en-todo checked="true"/>done</div><div><en-todo/>pending</div></en-note>`,
			want:   "[x] done\n[ ] pending",
		},
		{
			name:   "Blank Runs Collapsed",
			markup: `<en-note><div>a</div><div><br/></div><div><br/></div><div>b</div></en-note>`,
			want:   "a\n\nb",
		},
		{
			name:   "Full ENML Prolog",
			markup: `<?xml version="1.0" encoding="UTF-8"?><!DOCTYPE en-note SYSTEM "http://xml.evernote.com/pub/enml2.dtd"><en-note><div>body text</div></en-note>`,
			want:   "body text",
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := p.Parse(tt.markup)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := doc.Body(); got != tt.want {
				t.Errorf("Body() = %q, want %q", got, tt.want)
			}
		})
	}
}
