package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Document formats recognised by Decode
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatHTML = "html"
	FormatText = "text"
)

// SupportedExtensions lists the file extensions picked up when scanning directories
var SupportedExtensions = []string{".pdf", ".docx", ".txt", ".md", ".html", ".htm"}

var (
	xmlTagRe       = regexp.MustCompile(`<[^>]+>`)
	htmlBlockNodes = "p, div, li, tr, h1, h2, h3, h4, h5, h6, section, article, header, footer"
)

// FormatOf returns the decoding format for a filename, by extension.
// Unknown extensions are treated as UTF-8 text.
func FormatOf(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// IsSupported reports whether a file's extension is one of SupportedExtensions
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Decode extracts plain text from file content, dispatching on the filename extension.
// The returned text has been through CleanText.
func Decode(data []byte, filename string) (string, error) {
	format := FormatOf(filename)

	var (
		text string
		err  error
	)
	switch format {
	case FormatPDF:
		text, err = decodePDF(data)
	case FormatDOCX:
		text, err = decodeDOCX(data)
	case FormatHTML:
		text, err = decodeHTML(data)
	default:
		text = strings.ToValidUTF8(string(data), "\uFFFD")
	}
	if err != nil {
		return "", &DecodeError{Filename: filename, Format: format, Cause: err}
	}

	return CleanText(text), nil
}

// DecodeFile reads a file from disk and decodes it with Decode
func DecodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(data, filepath.Base(path))
}

func decodePDF(data []byte) (string, error) {
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

func decodeDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText turns WordprocessingML body content into paragraph-per-line text
func docxXMLToText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = strings.ReplaceAll(content, "<w:br/>", "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

func decodeHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(htmlBlockNodes).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}
	return body.Text(), nil
}
