package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentParserService extracts plain text from uploaded résumés.
type DocumentParserService interface {
	// ExtractText picks a decoder from the filename extension. Unsupported
	// or missing extensions yield an empty string and no error.
	ExtractText(filename string, r io.Reader) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// FileExtension returns the lower-cased text after the last dot, or "" when
// the name has no dot.
func FileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

func (p *documentParserService) ExtractText(filename string, r io.Reader) (string, error) {
	ext := FileExtension(filename)
	if ext != "pdf" && ext != "docx" {
		return "", nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}

	switch ext {
	case "pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse PDF %s: %w", filename, err)
		}
		return text, nil
	default:
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX %s: %w", filename, err)
		}
		return text, nil
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var pages []string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}

		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	return paragraphText(doc.Editable().GetContent())
}

// paragraphText walks WordprocessingML and returns the text of every w:p in
// document order, one paragraph per line.
func paragraphText(documentXML string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		current    strings.Builder
		stack      []string
		depth      int
	)

	parent := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				}
				depth++
			case "tab":
				// w:tab also defines tab stops under w:tabs; only run-level tabs are text.
				if depth > 0 && parent() == "r" {
					current.WriteString("\t")
				}
			case "br", "cr":
				if depth > 0 && parent() == "r" {
					current.WriteString("\n")
				}
			}
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if t.Name.Local == "p" && depth > 0 {
				depth--
				if depth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			}
		case xml.CharData:
			if depth > 0 && parent() == "t" {
				current.Write(t)
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
