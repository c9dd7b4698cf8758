// Package e2e provides end-to-end tests; this file builds minimal resume files for supported types.
package e2e

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"strings"
)

// FixtureExtensions are the formats generated for end-to-end uploads. PDF page handling is
// covered by the extract package tests.
var FixtureExtensions = []string{".txt", ".docx"}

// MinimalFile returns the bytes of a file of the given extension holding text. Each line of
// text becomes one paragraph in a .docx. Unsupported resume formats (.rtf, .doc) get the raw
// text so tests can upload files the extractor rejects.
func MinimalFile(ext, text string) ([]byte, error) {
	switch ext {
	case ".txt", ".rtf", ".doc":
		return []byte(text), nil
	case ".docx":
		return minimalDocx(text)
	default:
		return nil, fmt.Errorf("no fixture for %q", ext)
	}
}

func minimalDocx(text string) ([]byte, error) {
	var body strings.Builder
	for _, line := range strings.Split(text, "\n") {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.WriteString(html.EscapeString(line))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	parts := []struct{ name, content string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`},
		{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body.String() + `</w:body></w:document>`},
	}
	for _, p := range parts {
		fw, err := w.Create(p.name)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write([]byte(p.content)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
