// Package testdata locates UCD conformance files for tests.
//
// Excerpts of the files are checked in under directory ucd. The full files may
// be fetched with
//
//	go run download.go
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// UCDReader returns a reader for the given ucd file.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// UCDPath returns the path for the given ucd file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}

// Exists is true if the given ucd file is present.
func Exists(file string) bool {
	_, err := os.Stat(UCDPath(file))
	return err == nil
}
