package dictionary

import (
	"fmt"
	"path/filepath"

	fileutil "github.com/projectdiscovery/utils/file"
)

// Locate searches for file name in start and all of its parent directories
// and returns path of first match
func Locate(name, start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, name)
		if fileutil.FileExists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find thesaurus file %v", name)
		}
		dir = parent
	}
}
