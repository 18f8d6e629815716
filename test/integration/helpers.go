package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/deconflict/internal/clock"
	"github.com/danieljhkim/deconflict/internal/codec"
	"github.com/danieljhkim/deconflict/internal/engine"
	"github.com/danieljhkim/deconflict/internal/fsops"
	"github.com/danieljhkim/deconflict/internal/hash"
	"github.com/danieljhkim/deconflict/internal/report"
)

const reportsDir = "/deconflict/reports"

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files map[string][]byte
	dirs  map[string]bool
	real  *fsops.RealFS
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
		real:  fsops.NewRealFS(),
	}
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	for p := path; p != "/" && p != "."; p = filepath.Dir(p) {
		fs.dirs[p] = true
	}
	return nil
}

func (fs *testFS) Remove(path string) error {
	if _, ok := fs.files[path]; !ok {
		return os.ErrNotExist
	}
	delete(fs.files, path)
	return nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	_ = fs.MkdirAll(filepath.Dir(path), 0755)
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

func (fs *testFS) ListFiles(dir string) ([]string, error) {
	names := []string{}
	prefix := dir + string(filepath.Separator)
	for p := range fs.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		name := strings.TrimPrefix(p, prefix)
		if strings.Contains(name, string(filepath.Separator)) || strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *testFS) ValidateIdentifier(id string) error {
	return fs.real.ValidateIdentifier(id)
}

// reportFiles lists the stored report files by name.
func (fs *testFS) reportFiles(t *testing.T) []string {
	t.Helper()
	names, err := fs.ListFiles(reportsDir)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	return names
}

var baseTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

// setupTestEngine wires an engine to an in-memory filesystem, a SHA-256
// hasher, and a fake clock that advances one second per reading.
func setupTestEngine(t *testing.T, format codec.Format) (*engine.Engine, *testFS, *report.FileStore) {
	t.Helper()

	fs := newTestFS()
	if err := fs.MkdirAll(reportsDir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	clk := clock.NewFakeClock(baseTime)
	clk.SetStep(time.Second)

	store := report.NewFileStore(fs, reportsDir, format)
	eng := engine.New(store, hash.NewSHA256Hasher(), clk, nil)
	return eng, fs, store
}

// writeFile stores raw content in the in-memory filesystem.
func (fs *testFS) writeFile(path, content string) {
	fs.files[path] = []byte(content)
}

func mustf(t *testing.T, err error, format string, args ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", fmt.Sprintf(format, args...), err)
	}
}

// newStoreLike opens a second report store over the same in-memory reports directory.
func newStoreLike(fs *testFS, format codec.Format) *report.FileStore {
	return report.NewFileStore(fs, reportsDir, format)
}
