package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultOutputDir returns a timestamped directory under results/ for a
// run's artifacts.
func DefaultOutputDir() string {
	return filepath.Join("results", time.Now().Format("2006-01-02_150405"))
}

// EnsureParentDir creates the parent directory of path if needed.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
