package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/dessertshop/pkg/constants"
	"github.com/agentstation/dessertshop/pkg/desserts"
	"github.com/agentstation/dessertshop/pkg/errors"
)

// Compile-time interface check.
var _ desserts.Persister = (*File)(nil)

// File stores snapshots at a single path. Writes go to a temporary file in
// the same directory which is then renamed over the target, so a reader
// never sees a half-written snapshot.
type File struct {
	path  string
	codec Codec
}

// Option configures a File.
type Option func(*File) error

// WithFormat forces an encoding instead of deriving it from the extension.
// An empty Format keeps the extension-based choice.
func WithFormat(f Format) Option {
	return func(file *File) error {
		if f == "" {
			return nil
		}
		codec, err := CodecFor(f)
		if err != nil {
			return err
		}
		file.codec = codec
		return nil
	}
}

// WithCodec sets a custom Codec.
func WithCodec(c Codec) Option {
	return func(file *File) error {
		if c == nil {
			return fmt.Errorf("codec cannot be nil")
		}
		file.codec = c
		return nil
	}
}

// NewFile creates a File persister for path.
func NewFile(path string, opts ...Option) (*File, error) {
	if path == "" {
		return nil, errors.NewConfigError("snapshot", "path is required", nil)
	}

	codec, err := CodecFor(FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	f := &File{path: path, codec: codec}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, fmt.Errorf("applying snapshot option: %w", err)
		}
	}
	return f, nil
}

// Location returns the snapshot path.
func (f *File) Location() string {
	return f.path
}

// Format returns the encoding in use.
func (f *File) Format() Format {
	return f.codec.Format()
}

// Read decodes the snapshot. A missing file yields an error matching
// fs.ErrNotExist.
func (f *File) Read() ([]desserts.Dessert, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.WrapIO("read", f.path, err)
	}

	ds, err := f.codec.Decode(data)
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.File = f.path
		}
		return nil, err
	}
	return ds, nil
}

// Write replaces the snapshot with ds.
func (f *File) Write(ds []desserts.Dessert) (err error) {
	data, err := f.codec.Encode(ds)
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", f.codec.Format(), err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()
	closed := false
	defer func() {
		if !closed {
			_ = tmp.Close()
		}
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.WrapIO("write", tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		return errors.WrapIO("sync", tmpPath, err)
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return errors.WrapIO("close", tmpPath, err)
	}
	if err = os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err = os.Rename(tmpPath, f.path); err != nil {
		return errors.WrapIO("rename", f.path, err)
	}
	return nil
}
