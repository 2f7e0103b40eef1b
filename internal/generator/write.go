package generator

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteFileOp replaces a file's content atomically.
//
// Validation behavior:
//   - Rejects nil content (empty is OK)
//   - Rejects a target that is an existing directory
//
// Execution behavior:
//   - Creates parent directories if needed
//   - Writes to a temp file in the target directory, then renames it over Path
//   - Removes the temp file on any failure
type WriteFileOp struct {
	Fs      afero.Fs
	Path    string      // File path to write
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context) error {
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}
	if info, err := op.Fs.Stat(op.Path); err == nil && info.IsDir() {
		return fmt.Errorf("cannot overwrite directory: %s", op.Path)
	}
	return ctx.Err()
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(op.Path)
	if err := op.Fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(op.Fs, dir, "."+filepath.Base(op.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	fail := func(stage string, err error) error {
		_ = tmp.Close()
		_ = op.Fs.Remove(tmpName)
		return fmt.Errorf("%s %s: %w", stage, op.Path, err)
	}

	if _, err := tmp.Write(op.Content); err != nil {
		return fail("writing", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("closing", err)
	}
	if err := op.Fs.Chmod(tmpName, op.Mode); err != nil {
		return fail("setting mode on", err)
	}
	if err := op.Fs.Rename(tmpName, op.Path); err != nil {
		return fail("replacing", err)
	}

	return nil
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Write %s (%d bytes)", op.Path, len(op.Content))
}
