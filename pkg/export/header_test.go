package export

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/avreen/enex2md/pkg/enex"
)

func testNote() *enex.Note {
	stamp := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return &enex.Note{
		Title:    "Test",
		Created:  stamp,
		Modified: stamp,
		Tags:     []string{"x", "y"},
		Body:     "hello",
	}
}

func TestBuildHeader(t *testing.T) {
	t.Run("No Attachments Omits Line", func(t *testing.T) {
		header, err := BuildHeader(testNote())
		if err != nil {
			t.Fatalf("BuildHeader failed: %v", err)
		}

		want := "---\n" +
			"title: Test\n" +
			"created: '2020-01-01T00:00:00.000Z'\n" +
			"modified: '2020-01-01T00:00:00.000Z'\n" +
			"tags: [x, y]\n" +
			"---\n"
		if header != want {
			t.Errorf("header = %q, want %q", header, want)
		}

		if strings.Contains(header, "attachments:") {
			t.Error("attachments line must be omitted for a note without attachments")
		}
	})

	t.Run("Attachment Names Are Normalized", func(t *testing.T) {
		note := testNote()
		note.Attachments = []enex.Attachment{{Name: "a,b.png", Content: []byte("x")}}

		header, err := BuildHeader(note)
		if err != nil {
			t.Fatalf("BuildHeader failed: %v", err)
		}

		if !strings.Contains(header, "attachments: [a%2cb.png]\n") {
			t.Errorf("header missing normalized attachment name:\n%s", header)
		}
	})

	t.Run("Non-UTC Timestamps Rendered In UTC", func(t *testing.T) {
		note := testNote()
		zone := time.FixedZone("CET", 3600)
		note.Created = time.Date(2020, 1, 1, 1, 0, 0, 500e6, zone)

		header, err := BuildHeader(note)
		if err != nil {
			t.Fatalf("BuildHeader failed: %v", err)
		}

		if !strings.Contains(header, "created: '2020-01-01T00:00:00.500Z'\n") {
			t.Errorf("timestamp not rendered as UTC with milliseconds:\n%s", header)
		}
	})

	t.Run("Comma In Tag Fails", func(t *testing.T) {
		note := testNote()
		note.Tags = []string{"x,y", "z"}

		_, err := BuildHeader(note)
		if err == nil {
			t.Fatal("expected TagFormatError, got nil")
		}

		var tagErr *TagFormatError
		if !errors.As(err, &tagErr) {
			t.Fatalf("expected TagFormatError, got %T: %v", err, err)
		}
		if !strings.Contains(err.Error(), "x,y") {
			t.Errorf("error must list the offending tags: %v", err)
		}
	})

	t.Run("Header Is Valid YAML", func(t *testing.T) {
		note := testNote()
		note.Attachments = []enex.Attachment{
			{Name: "scan[1].pdf"},
			{Name: "a,b.png"},
		}

		header, err := BuildHeader(note)
		if err != nil {
			t.Fatalf("BuildHeader failed: %v", err)
		}

		var meta struct {
			Title       string   `yaml:"title"`
			Created     string   `yaml:"created"`
			Modified    string   `yaml:"modified"`
			Tags        []string `yaml:"tags"`
			Attachments []string `yaml:"attachments"`
		}
		body := strings.TrimSuffix(strings.TrimPrefix(header, "---\n"), "---\n")
		if err := yaml.Unmarshal([]byte(body), &meta); err != nil {
			t.Fatalf("header is not valid YAML: %v\n%s", err, header)
		}

		if meta.Title != "Test" {
			t.Errorf("title = %q", meta.Title)
		}
		if meta.Created != "2020-01-01T00:00:00.000Z" {
			t.Errorf("created = %q", meta.Created)
		}
		if len(meta.Tags) != 2 || meta.Tags[0] != "x" || meta.Tags[1] != "y" {
			t.Errorf("tags = %v", meta.Tags)
		}
		if len(meta.Attachments) != 2 || meta.Attachments[0] != "scan%5b1%5d.pdf" {
			t.Errorf("attachments = %v", meta.Attachments)
		}
	})
}
