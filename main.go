package main

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"

	"shireesh.com/matforge/cmd"
	"shireesh.com/matforge/internal/compressor"
)

//go:embed artifacts/templates.zip
var templatesZip embed.FS

func main() {
	f, err := templatesZip.Open("artifacts/templates.zip")
	if err != nil {
		fmt.Fprintln(os.Stderr, "template bundle not embedded:", err)
		os.Exit(1)
	}
	b, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "reading template bundle:", err)
		os.Exit(1)
	}

	tempDir, err := os.MkdirTemp("", "matforge-templates")
	if err != nil {
		fmt.Fprintln(os.Stderr, "creating temp dir:", err)
		os.Exit(1)
	}
	defer os.RemoveAll(tempDir)

	if err := compressor.UnpackFromReader(bytes.NewReader(b), int64(len(b)), tempDir); err != nil {
		fmt.Fprintln(os.Stderr, "extracting template bundle:", err)
		os.Exit(1)
	}

	cmd.Execute(tempDir)
}
