package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LogFilePath returns the timestamped server log file path inside logDir.
func LogFilePath(logDir, host string, now time.Time) string {
	timestamp := now.Format("2006-01-02_15-04-05")
	logFilename := fmt.Sprintf("%s_%s_ServerLog.txt", timestamp, host)
	return filepath.Join(logDir, logFilename)
}

// EnsureDir creates dir if it does not exist and checks that it is a directory.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("could not create directory %s: %w", dir, err)
			}
			return nil
		}
		return fmt.Errorf("error accessing directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory: %s", dir)
	}
	return nil
}
