package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"

	"github.com/ledongthuc/pdf"
)

// ExtractPDF extracts plain text from a PDF document. Image-only PDFs yield
// empty text rather than an error; the caller decides whether that is fatal.
func ExtractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Message: "failed to open document", Cause: err}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Message: "failed to extract text", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &ExtractionError{Format: "pdf", Message: "failed to read text stream", Cause: err}
	}

	return CleanText(buf.String()), nil
}

// docx document.xml elements we care about: text runs, paragraph and line
// breaks. Everything else is skipped.
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Texts []string `xml:"t"`
}

// ExtractDOCX extracts plain text from a DOCX archive by reading
// word/document.xml, one output line per paragraph.
func ExtractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "docx", Message: "failed to open archive", Cause: err}
	}

	var docXML []byte
	for _, f := range archive.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &ExtractionError{Format: "docx", Message: "failed to open document.xml", Cause: err}
		}
		docXML, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return "", &ExtractionError{Format: "docx", Message: "failed to read document.xml", Cause: err}
		}
		break
	}
	if docXML == nil {
		return "", &ExtractionError{Format: "docx", Message: "document.xml not found in archive"}
	}

	var doc docxDocument
	if err := xml.Unmarshal(docXML, &doc); err != nil {
		return "", &ExtractionError{Format: "docx", Message: "failed to parse document.xml", Cause: err}
	}

	var sb bytes.Buffer
	for _, p := range doc.Body.Paragraphs {
		for _, r := range p.Runs {
			for _, t := range r.Texts {
				sb.WriteString(t)
			}
		}
		sb.WriteString("\n")
	}

	return CleanText(sb.String()), nil
}
