package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CopyFile streams src to dst, preserving the source file mode.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// MovePath moves a file or directory to dst. It refuses an occupied
// destination, tries a rename first, and falls back to copy-and-remove when
// src and dst live on different filesystems.
func MovePath(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("move %s: destination %s already exists", src, dst)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("move %s: stat destination: %w", src, err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EXDEV) {
		return fmt.Errorf("move %s: %w", src, err)
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	if info.IsDir() {
		err = copyDir(src, dst)
	} else {
		err = CopyFile(src, dst)
	}
	if err != nil {
		_ = os.RemoveAll(dst)
		return fmt.Errorf("move %s: %w", src, err)
	}
	return os.RemoveAll(src)
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm())
		}
		return CopyFile(path, target)
	})
}
