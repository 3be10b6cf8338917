//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const ucdBase = "https://www.unicode.org/Public/13.0.0/ucd/"

// Fetches the full conformance files. The repository only contains excerpts.
func main() {
	for _, file := range []string{"BidiTest.txt", "BidiMirroring.txt"} {
		if err := download(ucdBase+file, filepath.Join("ucd", file)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
			os.Exit(1)
		}
	}
}

func download(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %v: %s", url, resp.Status)
	}
	return writeFile(path, resp.Body)
}

func writeFile(path string, rc io.ReadCloser) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, rc)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}
