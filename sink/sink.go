// Package sink provides output destinations for expanded models.
package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/specforge/monomorph/model"
)

// ErrExists is returned when a destination already exists and the sink is
// not allowed to replace it.
var ErrExists = errors.New("file already exists")

// Sink receives serialized models.
// Implementations must be safe for concurrent calls.
type Sink interface {
	// Write stores content under name. The name is a clean relative
	// slash-separated path; the sink determines the actual location.
	Write(ctx context.Context, name string, content []byte) error
}

// WriteModel encodes m with the given JSON indentation and writes it to s.
func WriteModel(ctx context.Context, s Sink, name string, m *model.Model, indent string) error {
	data, err := model.Marshal(m, indent)
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	return s.Write(ctx, name, data)
}

// FilesystemSink writes to a directory on the local filesystem.
type FilesystemSink struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode

	// Overwrite allows replacing existing files. If false, Write fails with
	// ErrExists when the destination exists.
	Overwrite bool
}

// NewFilesystemSink creates a FilesystemSink writing under root.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{
		Root:      root,
		Mode:      0644,
		Overwrite: true,
	}
}

// Write writes content to name within the root directory, creating parent
// directories as needed. The file is written to a temporary file first and
// moved into place, so readers never see partial output.
func (s *FilesystemSink) Write(ctx context.Context, name string, content []byte) error {
	if err := ValidatePath(name); err != nil {
		return fmt.Errorf("invalid path %q: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.Root, filepath.FromSlash(name))
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directories: %w", err)
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	tmp, err := os.CreateTemp(dir, ".monomorph-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	// Best effort; after a successful rename there is nothing to remove.
	defer os.Remove(tmpPath)

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if writeErr != nil {
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if s.Overwrite {
		if err := os.Rename(tmpPath, fullPath); err != nil {
			return fmt.Errorf("moving temp file: %w", err)
		}
		return nil
	}

	// Link fails if the destination exists, without a stat-then-rename race.
	if err := os.Link(tmpPath, fullPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %q", ErrExists, name)
		}
		return fmt.Errorf("creating file: %w", err)
	}
	return nil
}

// WriterSink writes every model to a single writer, such as standard output.
// The name is ignored.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a WriterSink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write writes content to the underlying writer.
func (s *WriterSink) Write(ctx context.Context, _ string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(content)
	return err
}

// ValidatePath checks that name is a clean, local, slash-separated path.
func ValidatePath(name string) error {
	if name == "" || name == "." {
		return errors.New("path is empty")
	}
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		if path.IsAbs(name) || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
			return errors.New("absolute paths not allowed")
		}
		return errors.New("path escapes the output directory")
	}
	if cleaned := path.Clean(name); cleaned != name {
		return fmt.Errorf("path is not clean (expected %q)", cleaned)
	}
	return nil
}
