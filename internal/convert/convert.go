package convert

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Action names what a converter did with a file.
type Action string

const (
	ActionConvert Action = "CONVERT"
	ActionCopy    Action = "COPY"
)

// Converter writes the wiki form of src to dst.
type Converter interface {
	Convert(src, dst string) (Action, error)
}

// SupportedExtensions lists file extensions found in a documentation tree.
var SupportedExtensions = map[string]bool{
	".md":  true,
	".png": true,
	".jpg": true,
}

// ForFile returns the converter for a filename.
func ForFile(filename string) (Converter, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md":
		return NewMarkdownConverter(), nil
	case ".png", ".jpg":
		return &ImageCopier{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
