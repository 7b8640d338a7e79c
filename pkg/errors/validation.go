package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// sampleNameRegex matches gallery sample names such as "controls_if" or "row-break".
var sampleNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateSampleName validates a sample name received from the CLI or the
// preview server before it is used as a lookup key.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - Maximum length of 64 characters
//   - Lowercase letters, digits, '_' and '-' only, starting with a letter
func ValidateSampleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "sample name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "sample name too long (max 64 characters)")
	}

	if !sampleNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid sample name: %q", name)
	}

	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
