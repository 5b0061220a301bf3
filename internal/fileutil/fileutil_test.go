package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"scribe/internal/fileutil"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	if err := os.WriteFile(src, []byte("payload"), 0o600); err != nil {
		t.Fatalf("write src: %v", err)
	}

	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "payload" {
		t.Fatalf("dst content = %q, err %v", data, err)
	}
	info, err := os.Stat(dst)
	if err != nil || info.Mode().Perm() != 0o600 {
		t.Fatalf("dst mode = %v, err %v", info.Mode(), err)
	}
}

func TestMovePathFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "archived.mp3")
	if err := os.WriteFile(src, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write src: %v", err)
	}

	if err := fileutil.MovePath(src, dst); err != nil {
		t.Fatalf("MovePath: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source still present: %v", err)
	}
	if data, err := os.ReadFile(dst); err != nil || string(data) != "audio" {
		t.Fatalf("dst content = %q, err %v", data, err)
	}
}

func TestMovePathDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "book")
	if err := os.MkdirAll(filepath.Join(src, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "nested", "part.mp3"), []byte("p"), 0o644); err != nil {
		t.Fatalf("write part: %v", err)
	}

	dst := filepath.Join(dir, "book-archived")
	if err := fileutil.MovePath(src, dst); err != nil {
		t.Fatalf("MovePath: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "nested", "part.mp3")); err != nil {
		t.Fatalf("moved tree incomplete: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source dir still present: %v", err)
	}
}

func TestMovePathRefusesOccupiedDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "dst.mp3")
	for _, p := range []string{src, dst} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	if err := fileutil.MovePath(src, dst); err == nil {
		t.Fatal("expected error for occupied destination")
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("source must be untouched after refused move: %v", err)
	}
}
