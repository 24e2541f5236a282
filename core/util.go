package core

import (
	"os"
	"path/filepath"
	"strings"
)

// CleanString trims surrounding whitespace from s, lowering it when lower is true.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		s = strings.ToLower(s)
	}
	return s
}

// MaskPhone keeps the first 3 and last 4 characters of a phone number: 13812345678 -> 138****5678.
// Shorter values are returned unchanged.
func MaskPhone(phone string) string {
	r := []rune(phone)
	if len(r) < 7 {
		return phone
	}
	return string(r[:3]) + "****" + string(r[len(r)-4:])
}

// ProjectRoot walks up from the working directory to the first one holding a go.mod.
// Tests run from their package directory, so config files are found relative to the root.
// The working directory itself is returned when no go.mod is found.
func ProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}
