// Package filex contains local filesystem helpers used by the CLI client.
package filex

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize bounds photos read from disk.
const MaxImageSize = 10 << 20

// EnsureSubdDir creates dirName (relative names under the working
// directory) if missing and returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ReadImage loads a photo from path and sniffs its MIME type. Files that
// are not images or exceed MaxImageSize are rejected.
func ReadImage(path string) ([]byte, string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, "", err
	}
	if fi.IsDir() {
		return nil, "", fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > MaxImageSize {
		return nil, "", fmt.Errorf("%s is larger than %d bytes", path, MaxImageSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, "", fmt.Errorf("%s is not an image (%s)", path, mime)
	}
	return data, mime, nil
}
