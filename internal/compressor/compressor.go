// Package compressor packs and unpacks the template bundle the wizard
// ships with. Bundles are plain zip archives of a template directory.
package compressor

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Pack zips the contents of srcDir into destZip, preserving the
// directory layout below srcDir.
func Pack(srcDir, destZip string) error {
	if _, err := os.Stat(srcDir); err != nil {
		return errors.Wrapf(err, "template dir %s", srcDir)
	}
	if err := os.MkdirAll(filepath.Dir(destZip), 0o755); err != nil {
		return errors.WithStack(err)
	}
	zipfile, err := os.Create(destZip)
	if err != nil {
		return errors.WithStack(err)
	}
	defer zipfile.Close()

	archive := zip.NewWriter(zipfile)
	defer archive.Close()

	return filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if rel == "." {
				return nil
			}
			_, err := archive.Create(rel + "/")
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		w, err := archive.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		_, err = io.Copy(w, file)
		return err
	})
}

// UnpackFromReader extracts a zip archive read from r into destDir.
// Entries escaping destDir are rejected.
func UnpackFromReader(r io.ReaderAt, size int64, destDir string) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return errors.Wrap(err, "opening bundle")
	}
	for _, f := range zr.File {
		if err := extractFile(f, destDir); err != nil {
			return err
		}
	}
	return nil
}

// Unpack extracts a zip archive on disk into destDir.
func Unpack(srcZip, destDir string) error {
	f, err := os.Open(srcZip)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return errors.WithStack(err)
	}
	return UnpackFromReader(f, info.Size(), destDir)
}

func extractFile(f *zip.File, destDir string) error {
	name := filepath.FromSlash(f.Name)
	if strings.Contains(name, "..") {
		return errors.Errorf("bundle entry %q escapes destination", f.Name)
	}
	fpath := filepath.Join(destDir, name)
	if f.FileInfo().IsDir() {
		return os.MkdirAll(fpath, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(fpath), 0o755); err != nil {
		return errors.WithStack(err)
	}
	out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return errors.WithStack(err)
	}
	rc, err := f.Open()
	if err != nil {
		out.Close()
		return errors.WithStack(err)
	}
	_, err = io.Copy(out, rc)
	out.Close()
	rc.Close()
	return errors.WithStack(err)
}
