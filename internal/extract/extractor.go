// Package extract provides text extraction from uploaded resumes and job descriptions.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Supported extensions. Matching is case-sensitive.
const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
	ExtTXT  = ".txt"
)

// SupportedExtensions lists the extensions Extract accepts, in a stable order.
var SupportedExtensions = []string{ExtPDF, ExtDOCX, ExtTXT}

type parseFunc func(content []byte) (string, error)

// Extractor extracts plain text from document uploads.
type Extractor struct {
	parsers map[string]parseFunc
}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		parsers: map[string]parseFunc{
			ExtPDF:  extractPDF,
			ExtDOCX: extractDOCX,
			ExtTXT:  extractPlain,
		},
	}
}

// Supports reports whether filename has an extension Extract can handle.
func (e *Extractor) Supports(filename string) bool {
	_, ok := e.parsers[filepath.Ext(filename)]
	return ok
}

// Extract reads r fully and returns its text, trimmed of surrounding whitespace.
// The format is chosen from the extension of filename. An empty result is valid.
// Failures are returned as *Error; Extract never panics on malformed input.
func (e *Extractor) Extract(r io.Reader, filename string) (text string, err error) {
	ext := filepath.Ext(filename)
	parse, ok := e.parsers[ext]
	if !ok {
		return "", &Error{Kind: KindUnsupportedFormat, Filename: filename, Ext: ext}
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return "", &Error{Kind: KindExtractionFailure, Filename: filename, Ext: ext, Err: fmt.Errorf("read: %w", err)}
	}

	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = &Error{Kind: KindExtractionFailure, Filename: filename, Ext: ext, Err: fmt.Errorf("panic: %v", p)}
		}
	}()
	text, err = parse(content)
	if err != nil {
		return "", &Error{Kind: KindExtractionFailure, Filename: filename, Ext: ext, Err: err}
	}
	return strings.TrimSpace(text), nil
}

// ExtractFile opens the file at path and extracts it using its base name.
func (e *Extractor) ExtractFile(path string) (string, error) {
	name := filepath.Base(path)
	if !e.Supports(name) {
		return "", &Error{Kind: KindUnsupportedFormat, Filename: name, Ext: filepath.Ext(name)}
	}
	f, err := os.Open(path)
	if err != nil {
		return "", &Error{Kind: KindExtractionFailure, Filename: name, Ext: filepath.Ext(name), Err: err}
	}
	defer f.Close()
	return e.Extract(f, name)
}
