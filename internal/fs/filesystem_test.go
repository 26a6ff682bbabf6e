package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestOSFilesystemManager_Resolve(t *testing.T) {
	m := NewOSFilesystemManager()

	t.Run("resolves a directory", func(t *testing.T) {
		dir := t.TempDir()
		p, err := m.Resolve(dir)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !p.IsDir() {
			t.Error("IsDir() = false, want true")
		}
		if !filepath.IsAbs(p.String()) {
			t.Errorf("String() = %q, want absolute path", p.String())
		}
	})

	t.Run("resolves a regular file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "a.jpg")
		writeFile(t, file)

		p, err := m.Resolve(file)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if p.IsDir() {
			t.Error("IsDir() = true, want false")
		}
	})

	t.Run("errors for a missing path", func(t *testing.T) {
		if _, err := m.Resolve(filepath.Join(t.TempDir(), "absent")); err == nil {
			t.Error("Resolve() expected error for missing path")
		}
	})

	t.Run("errors for an empty path", func(t *testing.T) {
		p, err := m.Resolve("")
		if err == nil {
			t.Fatalf("Resolve(\"\") = %q, want error, not the working directory", p.String())
		}
	})
}

func TestOSFilesystemManager_CountFiles(t *testing.T) {
	m := NewOSFilesystemManager()

	setup := func(t *testing.T) string {
		t.Helper()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.jpg"))
		writeFile(t, filepath.Join(dir, "b.JPG"))
		writeFile(t, filepath.Join(dir, "c.heic"))
		writeFile(t, filepath.Join(dir, "notes.txt"))
		writeFile(t, filepath.Join(dir, "sub", "d.jpeg"))
		writeFile(t, filepath.Join(dir, "sub", "deep", "e.jpg"))
		return dir
	}

	t.Run("counts everything with no filter", func(t *testing.T) {
		dir := setup(t)
		p, _ := m.Resolve(dir)

		count, err := m.CountFiles(p, nil)
		if err != nil {
			t.Fatalf("CountFiles() error = %v", err)
		}
		if count != 6 {
			t.Errorf("CountFiles() = %d, want 6", count)
		}
	})

	t.Run("filters by extension case-insensitively", func(t *testing.T) {
		dir := setup(t)
		p, _ := m.Resolve(dir)

		count, err := m.CountFiles(p, []string{"jpg", "jpeg"})
		if err != nil {
			t.Fatalf("CountFiles() error = %v", err)
		}
		if count != 4 {
			t.Errorf("CountFiles() = %d, want 4", count)
		}
	})

	t.Run("errors on a non-directory", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "a.jpg")
		writeFile(t, file)
		p, _ := m.Resolve(file)

		if _, err := m.CountFiles(p, nil); err == nil {
			t.Error("CountFiles() expected error for non-directory")
		}
	})
}
