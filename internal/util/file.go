package util

import "os"

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
