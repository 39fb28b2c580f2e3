// Package codec reads scene and script files. The format is picked from the
// file extension: .json or .yaml/.yml.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	maxFileSize = 4 * 1024 * 1024 // 4MB is far beyond any hand-written scene
)

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for unsupported extensions and formats.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat maps a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ReadFile reads a file, refusing anything larger than the size limit.
func ReadFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	return io.ReadAll(io.LimitReader(file, maxFileSize))
}

// DecodeFile reads path and decodes it into v.
func DecodeFile(path string, v any) error {
	expanded, err := ExpandTilde(path)
	if err != nil {
		return err
	}
	data, err := ReadFile(expanded)
	if err != nil {
		return err
	}
	return Unmarshal(expanded, data, v)
}

// Unmarshal decodes data using path to choose JSON or YAML.
// For JSON, runs a case-insensitive key collision check before decoding.
func Unmarshal(path string, data []byte, v any) error {
	if IsJSONFile(path) {
		if err := detectCaseInsensitiveKeyCollisions(data); err != nil {
			return fmt.Errorf("case-insensitive key collision detected: %w", err)
		}
		return json.Unmarshal(data, v)
	}
	if IsYAMLFile(path) {
		return yaml.Unmarshal(data, v)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// detectCaseInsensitiveKeyCollisions rejects JSON objects holding keys that
// differ only by case, e.g. "Position" and "position". encoding/json would
// silently let the last one win.
func detectCaseInsensitiveKeyCollisions(data []byte) error {
	var res any
	// Syntax errors are left for the main decode to report.
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&res); err != nil {
		return nil
	}
	return checkKeys(res, "")
}

//nolint:gocognit // Recursive traversal handles objects and arrays.
func checkKeys(obj any, path string) error {
	switch v := obj.(type) {
	case map[string]any:
		seen := make(map[string]string, len(v))
		for key, value := range v {
			lower := strings.ToLower(key)
			if first, exists := seen[lower]; exists {
				keyPath := joinKey(path, key)
				return fmt.Errorf("case-insensitive key collision at '%s': '%s' and '%s'", keyPath, key, first)
			}
			seen[lower] = key
			if err := checkKeys(value, joinKey(path, key)); err != nil {
				return err
			}
		}
	case []any:
		for i, item := range v {
			if err := checkKeys(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// ExpandTilde expands a leading tilde to the user's home directory.
func ExpandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

func IsYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func IsJSONFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

// IsSupported reports whether path has a decodable extension.
func IsSupported(path string) bool {
	return IsJSONFile(path) || IsYAMLFile(path)
}
