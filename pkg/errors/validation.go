package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds entity names and abbreviations.
const maxNameLength = 256

// ValidateName validates an agency or company name.
//
// Names are used as map keys, SVG element IDs and DOT node IDs, so the rules
// are strict about invisible characters but allow any printable text:
//   - No empty or whitespace-only names
//   - No control characters (including null bytes)
//   - Maximum length of 256 characters
func ValidateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidDataset, "%s name cannot be empty", kind)
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidDataset, "%s name too long (max %d characters)", kind, maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "%s name %q contains control characters", kind, name)
		}
	}

	return nil
}

// ValidateAssetPath validates an image path declared in a dataset.
// Asset paths are resolved against an asset directory, so they must stay
// inside it.
//
// Validation rules:
//   - Empty paths are allowed (the entity simply has no image)
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateAssetPath(path string) error {
	if path == "" {
		return nil
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

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
