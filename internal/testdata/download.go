//go:build ignore
// +build ignore

// Download fetches the UCD files the decancer table generator reads:
//
//     go run download.go
//
// Files are stored in directory ucd/ next to this file.
package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
)

// UnicodeVersion is the version of the UCD the tables are built from.
const UnicodeVersion = "14.0.0"

var wanted = map[string]bool{
	"UnicodeData.txt":                true,
	"BidiBrackets.txt":               true,
}

func main() {
	url := "https://www.unicode.org/Public/" + UnicodeVersion + "/ucd/UCD.zip"
	if err := downloadUCDZip(url, "ucd"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
		os.Exit(1)
	}
}

func downloadUCDZip(url, dir string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}
	z, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to extract: %w", err)
	}
	found := 0
	for _, file := range z.File {
		if file.FileInfo().IsDir() || !wanted[file.Name] {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return fmt.Errorf("failed to open %v: %w", file.Name, err)
		}
		if err := writeFile(filepath.Join(dir, filepath.Base(file.Name)), rc); err != nil {
			return fmt.Errorf("failed to write %v: %w", file.Name, err)
		}
		found++
	}
	if found != len(wanted) {
		return fmt.Errorf("UCD.zip contains %d of %d wanted files", found, len(wanted))
	}
	return nil
}

func writeFile(path string, rc io.ReadCloser) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	defer func() { _ = rc.Close() }()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	if _, err = io.Copy(f, rc); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}
