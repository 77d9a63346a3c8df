package services

import (
	"encoding/xml"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type TextExtractor interface {
	ExtractText(filePath string) string
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// ExtractText dispatches on the file extension. Unsupported extensions and
// unreadable documents both yield an empty string; the caller decides whether
// that aborts the pipeline.
func (t *textExtractor) ExtractText(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return t.extractPDF(filePath)
	case ".docx":
		return t.extractDocx(filePath)
	default:
		log.Printf("⚠️  Unsupported file format: %s\n", filepath.Ext(filePath))
		return ""
	}
}

func (t *textExtractor) extractPDF(filePath string) string {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		log.Printf("❌ Error extracting text from PDF: %v\n", err)
		return ""
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		if text != "" {
			textBuilder.WriteString(text)
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String()
}

func (t *textExtractor) extractDocx(filePath string) string {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		log.Printf("❌ Error extracting text from DOCX: %v\n", err)
		return ""
	}
	defer doc.Close()

	return extractDocxBody(doc.Editable().GetContent())
}

// extractDocxBody walks word/document.xml and emits top-level paragraph text
// in document order, then every table row-by-row with cells separated by a
// space and rows terminated by a newline.
func extractDocxBody(content string) string {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs strings.Builder
	var tables strings.Builder
	var current strings.Builder

	tableDepth := 0
	inParagraph := false
	inCell := false
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("❌ Error parsing DOCX body: %v\n", err)
			return ""
		}

		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					current.Reset()
					inParagraph = true
				}
			case "tc":
				if tableDepth > 0 {
					current.Reset()
					inCell = true
				}
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "tbl":
				tableDepth--
			case "p":
				if inParagraph && tableDepth == 0 {
					paragraphs.WriteString(current.String())
					paragraphs.WriteString("\n")
					inParagraph = false
				}
			case "tc":
				if inCell {
					tables.WriteString(current.String())
					tables.WriteString(" ")
					inCell = false
				}
			case "tr":
				if tableDepth > 0 {
					tables.WriteString("\n")
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && (inParagraph || inCell) {
				current.Write(el)
			}
		}
	}

	return paragraphs.String() + tables.String()
}
