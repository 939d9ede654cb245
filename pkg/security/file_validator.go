package security

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // MIME type reported by the client
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed upload types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},                           // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                                   // ZIP (PK..)
}

// ResumeExtensions is the whitelist for applicant resume uploads.
var ResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ImageExtensions is the whitelist for company image uploads.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Strict MIME types - application/octet-stream is deliberately absent
var strictMIMETypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"image/webp":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/zip": true, // ZIP-based documents (DOCX detection fallback)
}

// ValidateFile performs 3-layer upload validation:
// 1. Extension whitelist check
// 2. Magic byte verification (content matches extension)
// 3. MIME type whitelist (application/octet-stream rejected)
func ValidateFile(filename string, data []byte, declaredMIME string, allowed map[string]bool) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: declaredMIME,
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	// Layer 1: extension whitelist
	if !allowed[ext] {
		result.Error = "file type " + ext + " is not allowed"
		return result
	}

	// Layer 2: magic bytes must match the extension
	signatures := magicBytes[ext]
	matched := false
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.Equal(data[:len(sig)], sig) {
			matched = true
			break
		}
	}
	if !matched {
		result.Error = "file content does not match its extension"
		return result
	}

	// Layer 3: declared MIME whitelist
	if !strictMIMETypes[strings.ToLower(declaredMIME)] {
		result.Error = "MIME type " + declaredMIME + " is not allowed"
		return result
	}

	// Images must also decode: catches corrupt or disguised payloads
	// that happen to carry a valid signature prefix.
	if isImageExt(ext) {
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			result.Error = "image could not be decoded"
			return result
		}
	}

	result.Valid = true
	return result
}

func isImageExt(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}
