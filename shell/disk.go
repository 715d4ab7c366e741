package shell

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/smarty/workshop/contracts"
)

type DiskFileSystem struct{}

func NewDiskFileSystem() *DiskFileSystem {
	return &DiskFileSystem{}
}

// Listing returns the immediate children of directory, sorted by name.
func (this *DiskFileSystem) Listing(directory string) (listing []contracts.FileInfo, err error) {
	entries, err := ioutil.ReadDir(directory)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		listing = append(listing, newFileInfo(filepath.Join(directory, entry.Name()), entry))
	}
	sort.Slice(listing, func(i, j int) bool { return listing[i].Name() < listing[j].Name() })
	return listing, nil
}

func (this *DiskFileSystem) Stat(path string) (contracts.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return newFileInfo(path, info), nil
}

func (this *DiskFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (this *DiskFileSystem) Create(path string) (io.WriteCloser, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, err
	}
	return os.Create(path)
}

func (this *DiskFileSystem) ReadFile(path string) ([]byte, error) {
	return ioutil.ReadFile(path)
}

func (this *DiskFileSystem) WriteFile(path string, content []byte) error {
	return ioutil.WriteFile(path, content, 0644)
}

func (this *DiskFileSystem) Delete(path string) error {
	return os.Remove(path)
}

func (this *DiskFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (this *DiskFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (this *DiskFileSystem) MakeExecutable(path string) error {
	return os.Chmod(path, 0755)
}

////////////////////////////////////////

type FileInfo struct {
	path string
	size int64
	mod  time.Time
	dir  bool
}

func newFileInfo(path string, info os.FileInfo) FileInfo {
	return FileInfo{
		path: path,
		size: info.Size(),
		mod:  info.ModTime(),
		dir:  info.IsDir(),
	}
}

func (this FileInfo) Path() string       { return this.path }
func (this FileInfo) Name() string       { return filepath.Base(this.path) }
func (this FileInfo) Size() int64        { return this.size }
func (this FileInfo) ModTime() time.Time { return this.mod }
func (this FileInfo) IsDir() bool        { return this.dir }
