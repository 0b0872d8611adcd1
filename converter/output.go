package converter

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveToFile writes markdown to path, creating parent directories as
// needed.
func SaveToFile(markdown, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
