package constants

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions holds the file extensions accepted for contract uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// MaxPromptChars caps how much extracted contract text is embedded in the
// extraction prompt.
const MaxPromptChars = 10000

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDF reports whether the filename carries a .pdf suffix, case-insensitive.
func IsPDF(filename string) bool {
	return NormalizeExt(filepath.Ext(filename)) == "pdf"
}
