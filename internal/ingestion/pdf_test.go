package ingestion

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExtractDOCX_ParagraphsBecomeLines(t *testing.T) {
	docXML := `<?xml version="1.0"?>
		<document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
			<body>
				<p><r><t>Jane Doe</t></r></p>
				<p><r><t>Skills: Go, </t><t>PostgreSQL</t></r></p>
			</body>
		</document>`

	text, err := ExtractDOCX(buildDOCX(t, docXML))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nSkills: Go, PostgreSQL", text)
}

func TestExtractDOCX_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("other.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = ExtractDOCX(buf.Bytes())

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "docx", extractErr.Format)
	assert.Contains(t, err.Error(), "document.xml not found")
}

func TestExtractDOCX_NotAnArchive(t *testing.T) {
	_, err := ExtractDOCX([]byte("definitely not a zip"))

	var extractErr *ExtractionError
	assert.True(t, errors.As(err, &extractErr))
}

func TestExtractPDF_InvalidBytes(t *testing.T) {
	_, err := ExtractPDF([]byte("not a pdf"))

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "pdf", extractErr.Format)
}
