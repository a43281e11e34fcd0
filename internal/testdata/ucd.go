// Package testdata locates UCD files downloaded with download.go.
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// UCDReader returns a reader for the given UCD file, e.g. "UnicodeData.txt".
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// UCDPath returns the path of the given UCD file.
func UCDPath(file string) string {
	return filepath.Join(UCDDir(), file)
}

// UCDDir returns the directory download.go stores UCD files in.
func UCDDir() string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgfile), "ucd")
}
