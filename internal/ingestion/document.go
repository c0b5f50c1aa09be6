package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported file formats
const (
	FormatText     = "text"
	FormatPDF      = "pdf"
	FormatDOCX     = "docx"
	docxParagraph  = "</w:p>"
	docxLineBreak  = "<w:br/>"
	docxTabElement = "<w:tab/>"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// FormatFor maps a file extension to a supported format.
func FormatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".markdown", "":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadDocument returns the raw text of a .txt, .md, .pdf or .docx file.
func ReadDocument(path string) (string, string, error) {
	format, err := FormatFor(path)
	if err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", format, fmt.Errorf("file not found: %w", err)
		}
		return "", format, fmt.Errorf("failed to read file: %w", err)
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = pdfText(data)
	case FormatDOCX:
		text, err = docxText(data)
	default:
		text = string(data)
	}
	if err != nil {
		return "", format, err
	}
	return text, format, nil
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText flattens WordprocessingML body XML into plain text lines.
func docxXMLToText(content string) string {
	content = strings.ReplaceAll(content, docxParagraph, "\n")
	content = strings.ReplaceAll(content, docxLineBreak, "\n")
	content = strings.ReplaceAll(content, docxTabElement, "\t")
	content = xmlTagRe.ReplaceAllString(content, "")

	return strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	).Replace(content)
}
