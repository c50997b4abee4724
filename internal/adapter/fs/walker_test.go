package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkerIncludesExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.txt", "b")
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "notes.md", "md")
	writeFile(t, root, "sub/c.txt", "c")
	writeFile(t, root, "skip/d.txt", "d")

	w := NewWalker([]string{"**/*.txt"}, []string{"skip/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	var got []string
	for _, f := range files {
		got = append(got, f.RelPath)
	}
	want := []string{"a.txt", "b.txt", "sub/c.txt"}
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalkerDefaultIncludesAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "x.md", "x")
	writeFile(t, root, "y/z.txt", "z")

	files, err := NewWalker(nil, nil).Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files, got %d", len(files))
	}
}

func TestReadFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "f.txt", "content")

	got, err := ReadFile(filepath.Join(root, "f.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "content" {
		t.Errorf("ReadFile() = %q", got)
	}
	if _, err := ReadFile(filepath.Join(root, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
