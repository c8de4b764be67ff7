// Package extraction turns uploaded resume files into canonical parsed
// records: raw bytes to plain text, then a tiered parser chain from the
// specialized remote service down to a regex-only fallback.
package extraction

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	xmlTagRe       = regexp.MustCompile(`<[^>]+>`)
	horizontalWSRe = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRunRe   = regexp.MustCompile(`\n{3,}`)
)

// ExtractText extracts plain text from an uploaded resume file, picking
// the extractor by filename extension. Supported: .pdf, .docx, .txt.
// Unsupported types and any extraction failure return ok=false; this
// function never panics or returns an error.
func ExtractText(data []byte, filename string) (text string, ok bool) {
	// Malformed PDFs can panic deep inside the reader.
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	case ".txt":
		return normalizeWhitespace(string(data)), true
	default:
		return "", false
	}
}

func extractPDF(data []byte) (string, bool) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", false
	}

	rs, err := reader.GetPlainText()
	if err != nil {
		return "", false
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", false
	}
	return normalizeWhitespace(buf.String()), true
}

// extractDOCX joins the paragraph text of word/document.xml. Naive tag
// stripping is enough for resume bodies.
func extractDOCX(data []byte) (string, bool) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", false
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", false
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", false
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", false
	}

	content := string(docXML)
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = xmlTagRe.ReplaceAllString(content, " ")
	return normalizeWhitespace(content), true
}

// normalizeWhitespace collapses horizontal whitespace runs and caps
// consecutive blank lines at one, preserving paragraph structure.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, " ", " ")
	s = horizontalWSRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = newlineRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
