package export

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/avreen/enex2md/pkg/enex"
)

const (
	notesDir       = "notes"
	attachmentsDir = "attachments"
	catalogFile    = "export.yaml"
)

// Config holds the configuration for the export writer.
type Config struct {
	// Path is the output directory root.
	Path string
	// Source labels the run in the catalog, typically the archive path.
	Source string
	// FS defaults to the OS filesystem.
	FS afero.Fs
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Writer consumes decoded notes one at a time and populates the output
// directory tree. Notes share no state across calls except the tree itself,
// which acts as the register of attachments written so far.
type Writer struct {
	fs           afero.Fs
	logger       *slog.Logger
	root         string
	materializer *Materializer
	catalog      Catalog
}

// NewWriter creates a writer for the given output directory.
func NewWriter(config Config) *Writer {
	fs := config.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		fs:           fs,
		logger:       logger,
		root:         config.Path,
		materializer: NewMaterializer(fs, logger),
		catalog:      Catalog{Source: config.Source},
	}
}

// Initialize creates the notes and attachments directories. It is
// idempotent and must run before the first Dump.
func (w *Writer) Initialize() error {
	for _, dir := range []string{notesDir, attachmentsDir} {
		if err := w.fs.MkdirAll(filepath.Join(w.root, dir), 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	return nil
}

// Dump materializes one note: every attachment first, then the note file
// itself, header and body joined by a blank line. The first conflicting
// attachment or unrepresentable tag aborts with no rollback of what was
// already written.
func (w *Writer) Dump(note *enex.Note) error {
	for _, att := range note.Attachments {
		name := Normalize(att.Name)
		path := filepath.Join(w.root, attachmentsDir, name)

		action, err := w.materializer.Materialize(path, att.Content)
		if err != nil {
			return err
		}

		record := AttachmentRecord{Name: name, Note: note.Title, Action: action.String()}
		if action == ActionWrite {
			record.SHA256 = Fingerprint(att.Content)
		}
		w.catalog.Attachments = append(w.catalog.Attachments, record)
		w.logger.Debug("attachment materialized", "path", path, "action", action.String())
	}

	header, err := BuildHeader(note)
	if err != nil {
		return fmt.Errorf("note %q: %w", note.Title, err)
	}

	// Titles are used verbatim; a duplicate title overwrites the earlier
	// note, last writer wins.
	path := filepath.Join(w.root, notesDir, note.Title+".md")
	content := header + "\n" + note.Body
	if err := afero.WriteFile(w.fs, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing note %q: %w", note.Title, err)
	}

	w.catalog.Notes++
	w.logger.Debug("note written", "path", path, "attachments", len(note.Attachments))
	return nil
}

// WriteCatalog marshals the run summary to export.yaml in the output root.
func (w *Writer) WriteCatalog() error {
	data, err := yaml.Marshal(w.catalog)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	path := filepath.Join(w.root, catalogFile)
	if err := afero.WriteFile(w.fs, path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// Catalog returns a copy of the run summary accumulated so far.
func (w *Writer) Catalog() Catalog {
	return w.catalog
}
