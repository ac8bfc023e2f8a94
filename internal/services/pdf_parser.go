package services

import (
	"bytes"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(data []byte) string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText concatenates the text layer of every page in document order
// and trims the result. Extraction failure is a data-quality condition, not
// an error: any failure yields an empty string and the caller decides
// whether that is fatal.
func (p *pdfParserService) ExtractText(data []byte) (text string) {
	// The pdf package panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️  PDF extraction panicked: %v", r)
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Printf("⚠️  Failed to open PDF: %v", err)
		return ""
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("⚠️  Failed to extract page %d: %v", pageIndex, err)
			continue
		}

		textBuilder.WriteString(pageText)
	}

	return strings.TrimSpace(textBuilder.String())
}
