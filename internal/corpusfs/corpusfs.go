// Package corpusfs is an in-memory fs.FS over a fixed set of named file
// contents, used to hand a batch of practice sources to the scanning CLI
// command without touching disk.
package corpusfs

import (
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"
)

// CorpusFS maps a file name to its full content.
type CorpusFS map[string]string

var _ fs.FS = (*CorpusFS)(nil)

func (m CorpusFS) Open(filename string) (fs.File, error) {
	if filename == "." {
		var entries []fs.DirEntry
		for name, content := range m {
			entries = append(entries, fileDirEntry{name: name, size: int64(len(content))})
		}
		return &virtualDir{entries: entries}, nil
	}

	content, ok := m[filename]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fs.ErrNotExist, filename)
	}
	return &memFile{name: filename, reader: strings.NewReader(content), size: int64(len(content))}, nil
}

// Add stores content under name, overwriting any prior content for that
// name.
func (m CorpusFS) Add(name, content string) {
	m[name] = content
}

// memFile implements fs.File over a strings.Reader.
type memFile struct {
	name   string
	reader *strings.Reader
	size   int64
}

func (f *memFile) Stat() (fs.FileInfo, error) {
	return fileInfo{name: f.name, size: f.size}, nil
}

func (f *memFile) Read(p []byte) (int, error) {
	return f.reader.Read(p)
}

func (f *memFile) Close() error {
	return nil
}

// virtualDir implements fs.File + ReadDirFile for the root listing.
type virtualDir struct {
	entries []fs.DirEntry
	pos     int
}

func (d *virtualDir) Stat() (fs.FileInfo, error) {
	return fileInfo{name: ".", mode: fs.ModeDir}, nil
}

func (d *virtualDir) Read([]byte) (int, error) {
	return 0, io.EOF // directories have no data
}

func (d *virtualDir) Close() error {
	return nil
}

func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if d.pos >= len(d.entries) {
		return nil, io.EOF
	}
	if n <= 0 || d.pos+n > len(d.entries) {
		n = len(d.entries) - d.pos
	}
	entries := d.entries[d.pos : d.pos+n]
	d.pos += n
	return entries, nil
}

// fileDirEntry implements fs.DirEntry.
type fileDirEntry struct {
	name string
	size int64
}

func (e fileDirEntry) Name() string               { return e.name }
func (e fileDirEntry) IsDir() bool                { return false }
func (e fileDirEntry) Type() fs.FileMode          { return 0 }
func (e fileDirEntry) Info() (fs.FileInfo, error) { return fileInfo{name: e.name, size: e.size}, nil }

// fileInfo is a minimal fs.FileInfo for both plain files and the root dir.
type fileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (i fileInfo) Name() string       { return i.name }
func (i fileInfo) Size() int64        { return i.size }
func (i fileInfo) Mode() fs.FileMode  { return i.mode }
func (i fileInfo) ModTime() time.Time { return time.Time{} }
func (i fileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fileInfo) Sys() interface{}   { return nil }
