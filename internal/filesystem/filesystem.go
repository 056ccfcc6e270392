package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// FS forwards file operations to an afero backend.
type FS struct {
	afs afero.Afero
}

// New wraps fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *FS {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FS{afs: afero.Afero{Fs: fs}}
}

// NewOs returns an FS backed by the host filesystem.
func NewOs() *FS { return New(afero.NewOsFs()) }

// NewMem returns an FS backed by a fresh in-memory filesystem.
func NewMem() *FS { return New(afero.NewMemMapFs()) }

// Exists reports whether path can be stat'ed. Any error counts as absent.
func (f *FS) Exists(path string) bool {
	_, err := f.afs.Stat(path)
	return err == nil
}

// Mkdir creates a single directory. The parent must exist.
func (f *FS) Mkdir(path string) error {
	return f.afs.Mkdir(path, dirPerm)
}

// Mkdirp creates path and any missing parents.
func (f *FS) Mkdirp(path string) error {
	return f.afs.MkdirAll(path, dirPerm)
}

// ReadDir returns the names of the entries in path, sorted.
func (f *FS) ReadDir(path string) ([]string, error) {
	infos, err := f.afs.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}

// ReadFile returns the file contents as UTF-8 text.
func (f *FS) ReadFile(path string) (string, error) {
	return f.ReadFileEncoded(path, "")
}

// ReadFileEncoded returns the file contents decoded from the named encoding.
func (f *FS) ReadFileEncoded(path, encoding string) (string, error) {
	data, err := f.afs.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decode(data, encoding)
}

// ReadBytes returns the raw file contents.
func (f *FS) ReadBytes(path string) ([]byte, error) {
	return f.afs.ReadFile(path)
}

// WriteFile writes UTF-8 content to path, creating parent directories first.
func (f *FS) WriteFile(path, content string) error {
	return f.WriteFileEncoded(path, content, "")
}

// WriteFileEncoded encodes content with the named encoding and writes it to
// path, creating parent directories first.
func (f *FS) WriteFileEncoded(path, content, encoding string) error {
	data, err := encode(content, encoding)
	if err != nil {
		return err
	}
	if err := f.afs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	return f.afs.WriteFile(path, data, filePerm)
}

// Copy copies the bytes of src to dst, replacing dst.
func (f *FS) Copy(src, dst string) error {
	data, err := f.afs.ReadFile(src)
	if err != nil {
		return err
	}
	return f.afs.WriteFile(dst, data, filePerm)
}

// Stat returns file info for path.
func (f *FS) Stat(path string) (os.FileInfo, error) {
	return f.afs.Stat(path)
}

// IsDir reports whether path exists and is a directory.
func (f *FS) IsDir(path string) bool {
	ok, err := f.afs.IsDir(path)
	return err == nil && ok
}

// Walk walks the tree rooted at root in lexical order.
func (f *FS) Walk(root string, fn filepath.WalkFunc) error {
	return f.afs.Walk(root, fn)
}

// Resolve returns an absolute representation of path.
func Resolve(path string) (string, error) {
	return filepath.Abs(path)
}

// Join joins path segments with the OS separator.
func Join(segments ...string) string {
	return filepath.Join(segments...)
}
