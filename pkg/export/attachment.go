package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
)

// Action is the verdict for a single attachment.
type Action int

const (
	// ActionSkip means the content was the empty-content sentinel and the
	// filesystem was not touched.
	ActionSkip Action = iota
	// ActionWrite means the content was written, either fresh or as an
	// idempotent re-write of identical bytes.
	ActionWrite
	// ActionConflict means a file with different content already occupies
	// the path. The run must abort.
	ActionConflict
)

func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionWrite:
		return "write"
	case ActionConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// emptySentinel is the fixed 10-byte marker the archive carries in place of
// content that a prior out-of-band pass already extracted. It is matched by
// exact byte equality, never by length.
var emptySentinel = []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}

// Materializer decides, per attachment, whether to skip, write, or reject,
// and applies the write. It assumes a single-process, single-pass run: the
// existence check and the write are not atomic.
type Materializer struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewMaterializer creates a materializer over the given filesystem.
func NewMaterializer(fs afero.Fs, logger *slog.Logger) *Materializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Materializer{fs: fs, logger: logger}
}

// Materialize writes content to path unless the content is the empty-content
// sentinel (skip, no filesystem interaction) or a file with different
// content already exists there (conflict, fatal). Re-writing identical
// content is permitted and harmless. Equality against an existing file is
// decided by SHA-256 digest, which also gives a stable fingerprint for
// diagnosing collisions.
func (m *Materializer) Materialize(path string, content []byte) (Action, error) {
	if bytes.Equal(content, emptySentinel) {
		m.logger.Debug("attachment already extracted, skipping", "path", path)
		return ActionSkip, nil
	}

	exists, err := afero.Exists(m.fs, path)
	if err != nil {
		return ActionSkip, fmt.Errorf("checking %s: %w", path, err)
	}

	if exists {
		existing, err := fingerprintFile(m.fs, path)
		if err != nil {
			return ActionSkip, fmt.Errorf("reading %s: %w", path, err)
		}
		if existing != Fingerprint(content) {
			m.logger.Error("attachment collision",
				"path", path,
				"existing", existing,
				"incoming", Fingerprint(content),
			)
			return ActionConflict, &AttachmentConflictError{Path: path}
		}
	}

	if err := afero.WriteFile(m.fs, path, content, 0644); err != nil {
		return ActionSkip, fmt.Errorf("writing %s: %w", path, err)
	}

	return ActionWrite, nil
}

// Fingerprint returns the hex SHA-256 digest of content.
func Fingerprint(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// fingerprintFile streams the file at path into the digest, so the existing
// content is never held in memory next to the incoming copy.
func fingerprintFile(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
