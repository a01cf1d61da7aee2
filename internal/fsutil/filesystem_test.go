package fsutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_Exists(t *testing.T) {
	fs := OSFileSystem{}

	if !fs.Exists("filesystem.go") {
		t.Error("expected filesystem.go to exist")
	}
	if fs.Exists("nonexistent_file_xyz.go") {
		t.Error("expected nonexistent file to not exist")
	}
}

func TestOSFileSystem_CreateAndRemove(t *testing.T) {
	fs := OSFileSystem{}
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	w, err := fs.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("{}")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("expected '{}', got %q", data)
	}

	if err := fs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if fs.Exists(path) {
		t.Error("file should be gone after Remove")
	}
}

func TestMemoryFileSystem_CreateVisibleAfterClose(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, err := mfs.Create("/created.txt")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("created content")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, _ := mfs.ReadFile("/created.txt")
	if len(data) != 0 {
		t.Errorf("expected empty file before Close, got %q", data)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	data, err = mfs.ReadFile("/created.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "created content" {
		t.Errorf("expected 'created content', got %q", data)
	}
}

func TestMemoryFileSystem_RemoveBeforeClose(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, _ := mfs.Create("/gone.txt")
	w.Write([]byte("partial"))
	if err := mfs.Remove("/gone.txt"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	w.Close()

	if mfs.Exists("/gone.txt") {
		t.Error("file removed before Close should not reappear")
	}
}

func TestMemoryFileSystem_OpenAndStat(t *testing.T) {
	mfs := NewMemoryFileSystem()
	if err := mfs.WriteFile("/maze.json", []byte("open me"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := mfs.Open("/maze.json")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "open me" {
		t.Errorf("expected 'open me', got %q", data)
	}

	info, err := mfs.Stat("/maze.json")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 7 || info.IsDir() {
		t.Errorf("unexpected stat: size=%d dir=%v", info.Size(), info.IsDir())
	}

	if _, err := mfs.Open("/missing.json"); err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestMemoryFileSystem_MkdirAllAndFiles(t *testing.T) {
	mfs := NewMemoryFileSystem()
	if err := mfs.MkdirAll("/out/a/b", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	for _, dir := range []string{"/out", "/out/a", "/out/a/b"} {
		if !mfs.Exists(dir) {
			t.Errorf("expected directory %s to exist", dir)
		}
	}

	mfs.WriteFile("/out/b.json", nil, 0644)
	mfs.WriteFile("/out/a.json", nil, 0644)
	files := mfs.Files()
	if len(files) != 2 || files[0] != "/out/a.json" || files[1] != "/out/b.json" {
		t.Errorf("Files() = %v", files)
	}
}
