// Package repofile manages the .taskeasy marker that pins a directory tree
// to a local data dir.
package repofile

import (
	"os"
	"path/filepath"
	"strings"
)

const FileName = ".taskeasy"

// Find walks up from startDir looking for a .taskeasy marker and returns the
// data dir it points at. Returns ("", nil) if no marker is found.
func Find(startDir string) (string, error) {
	dir := startDir
	for {
		dataDir, ok, err := Read(dir)
		if err != nil {
			return "", err
		}
		if ok {
			return dataDir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Write creates dir/.taskeasy pointing at dataDir. A relative dataDir is
// resolved against dir when read back; "" means dir itself.
func Write(dir, dataDir string) error {
	return os.WriteFile(filepath.Join(dir, FileName), []byte(dataDir+"\n"), 0644)
}

// Read returns the data dir named by the marker in dir. ok is false if there
// is no marker. A marker that is a directory is the data dir itself.
func Read(dir string) (dataDir string, ok bool, err error) {
	path := filepath.Join(dir, FileName)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	if info.IsDir() {
		return path, true, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	target := strings.TrimSpace(string(data))
	switch {
	case target == "":
		return dir, true, nil
	case filepath.IsAbs(target):
		return filepath.Clean(target), true, nil
	default:
		return filepath.Join(dir, target), true, nil
	}
}
