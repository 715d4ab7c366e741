package shell

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/smarty/workshop/contracts"
)

// InMemoryFileSystem is a test double for DiskFileSystem. Directories are implied by the
// files they contain or created explicitly with MkdirAll.
type InMemoryFileSystem struct {
	fileSystem  map[string]*file
	directories map[string]struct{}
	failures    map[string]error
}

func NewInMemoryFileSystem() *InMemoryFileSystem {
	return &InMemoryFileSystem{
		fileSystem:  make(map[string]*file),
		directories: make(map[string]struct{}),
		failures:    make(map[string]error),
	}
}

// Fail causes every subsequent operation on path to return err.
func (this *InMemoryFileSystem) Fail(path string, err error) {
	this.failures[filepath.Clean(path)] = err
}

func (this *InMemoryFileSystem) Stat(path string) (contracts.FileInfo, error) {
	path = filepath.Clean(path)
	if err := this.failures[path]; err != nil {
		return nil, err
	}
	if file, found := this.fileSystem[path]; found {
		return file, nil
	}
	if this.isDirectory(path) {
		return &file{path: path, mod: InMemoryModTime, dir: true}, nil
	}
	return nil, os.ErrNotExist
}

func (this *InMemoryFileSystem) Listing(directory string) (files []contracts.FileInfo, err error) {
	directory = filepath.Clean(directory)
	if err := this.failures[directory]; err != nil {
		return nil, err
	}
	if !this.isDirectory(directory) {
		return nil, os.ErrNotExist
	}
	seen := make(map[string]struct{})
	for path, file := range this.fileSystem {
		if filepath.Dir(path) == directory {
			files = append(files, file)
			continue
		}
		if child, ok := this.childDirectory(directory, path); ok {
			seen[child] = struct{}{}
		}
	}
	for path := range this.directories {
		if child, ok := this.childDirectory(directory, filepath.Join(path, "_")); ok {
			seen[child] = struct{}{}
		}
	}
	for child := range seen {
		files = append(files, &file{path: child, mod: InMemoryModTime, dir: true})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	return files, nil
}

// childDirectory reports the immediate sub-directory of directory that contains path.
func (this *InMemoryFileSystem) childDirectory(directory, path string) (string, bool) {
	prefix := directory + string(os.PathSeparator)
	if directory == string(os.PathSeparator) {
		prefix = directory
	}
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	remainder := strings.TrimPrefix(path, prefix)
	parts := strings.SplitN(remainder, string(os.PathSeparator), 2)
	if len(parts) < 2 {
		return "", false
	}
	return filepath.Join(directory, parts[0]), true
}

func (this *InMemoryFileSystem) isDirectory(path string) bool {
	if _, found := this.directories[path]; found {
		return true
	}
	prefix := path + string(os.PathSeparator)
	for candidate := range this.directories {
		if strings.HasPrefix(candidate, prefix) {
			return true
		}
	}
	for candidate := range this.fileSystem {
		if strings.HasPrefix(candidate, prefix) {
			return true
		}
	}
	return false
}

func (this *InMemoryFileSystem) Open(path string) (io.ReadCloser, error) {
	content, err := this.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ioutil.NopCloser(bytes.NewReader(content)), nil
}

func (this *InMemoryFileSystem) Create(path string) (io.WriteCloser, error) {
	err := this.WriteFile(path, nil)
	if err != nil {
		return nil, err
	}
	return this.fileSystem[filepath.Clean(path)], nil
}

func (this *InMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if err := this.failures[path]; err != nil {
		return nil, err
	}
	target, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return target.contents, nil
}

func (this *InMemoryFileSystem) WriteFile(path string, content []byte) error {
	path = filepath.Clean(path)
	if err := this.failures[path]; err != nil {
		return err
	}
	this.fileSystem[path] = &file{
		path:     path,
		contents: content,
		mod:      InMemoryModTime,
	}
	return nil
}

func (this *InMemoryFileSystem) Delete(path string) error {
	path = filepath.Clean(path)
	if err := this.failures[path]; err != nil {
		return err
	}
	if _, found := this.fileSystem[path]; !found {
		return os.ErrNotExist
	}
	delete(this.fileSystem, path)
	return nil
}

func (this *InMemoryFileSystem) RemoveAll(path string) error {
	path = filepath.Clean(path)
	if err := this.failures[path]; err != nil {
		return err
	}
	prefix := path + string(os.PathSeparator)
	for candidate := range this.fileSystem {
		if candidate == path || strings.HasPrefix(candidate, prefix) {
			delete(this.fileSystem, candidate)
		}
	}
	for candidate := range this.directories {
		if candidate == path || strings.HasPrefix(candidate, prefix) {
			delete(this.directories, candidate)
		}
	}
	return nil
}

func (this *InMemoryFileSystem) MkdirAll(path string) error {
	path = filepath.Clean(path)
	if err := this.failures[path]; err != nil {
		return err
	}
	this.directories[path] = struct{}{}
	return nil
}

func (this *InMemoryFileSystem) MakeExecutable(path string) error {
	path = filepath.Clean(path)
	if err := this.failures[path]; err != nil {
		return err
	}
	target, found := this.fileSystem[path]
	if !found {
		return os.ErrNotExist
	}
	target.executable = true
	return nil
}

func (this *InMemoryFileSystem) IsExecutable(path string) bool {
	target, found := this.fileSystem[filepath.Clean(path)]
	return found && target.executable
}

/////////////////////////////////////////////////

type file struct {
	path       string
	contents   []byte
	mod        time.Time
	dir        bool
	executable bool
}

var InMemoryModTime = time.Now()

func (this *file) Write(p []byte) (n int, err error) {
	this.contents = append(this.contents, p...)
	return len(p), nil
}

func (this *file) Close() error       { return nil }
func (this *file) Path() string       { return this.path }
func (this *file) Name() string       { return filepath.Base(this.path) }
func (this *file) Size() int64        { return int64(len(this.contents)) }
func (this *file) ModTime() time.Time { return this.mod }
func (this *file) IsDir() bool        { return this.dir }
