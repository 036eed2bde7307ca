package utils

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// ReadJSONFile parses the given file into i
func ReadJSONFile(filename string, i interface{}) error {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, i)
}

// WriteJSONFile writes i as json to filename, creating parent directories
func WriteJSONFile(filename string, i interface{}) error {
	buf, err := json.Marshal(i)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filename, buf, 0644)
}

// FileExists returns true if name exists (file or directory)
func FileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// CopyFile copies src to dst, creating parent directories of dst
func CopyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
