package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDOCX returns the body paragraphs of a .docx joined by newlines.
// Paragraphs inside tables, text boxes, headers and footers are not included.
func extractDOCX(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open DOCX: %w", err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}

// docxParagraphs walks word/document.xml and collects the run text of each top-level paragraph.
// Within a paragraph, w:tab becomes a tab and w:br/w:cr become newlines.
func docxParagraphs(documentXML string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(documentXML))
	dec.Strict = false

	var (
		paragraphs []string
		cur        strings.Builder
		stack      []string
		paraDepth  int
		tableDepth int
		inText     bool
	)
	// collecting is true when the element being opened is a direct child of a run
	// that belongs to a body-level paragraph.
	collecting := func() bool {
		n := len(stack)
		return tableDepth == 0 && paraDepth == 1 && n >= 2 && stack[n-2] == "r"
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				paraDepth++
				if paraDepth == 1 && tableDepth == 0 {
					cur.Reset()
				}
			case "t":
				inText = collecting()
			case "tab":
				if collecting() {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if collecting() {
					cur.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "p":
				if paraDepth == 1 && tableDepth == 0 {
					paragraphs = append(paragraphs, cur.String())
				}
				paraDepth--
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return paragraphs, nil
}
