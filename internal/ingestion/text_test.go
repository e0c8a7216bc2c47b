package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	result := CleanText("line one\r\nline two\rline three")

	assert.Equal(t, "line one\nline two\nline three", result)
}

func TestCleanText_CollapsesIntraLineWhitespace(t *testing.T) {
	result := CleanText("Jane    Doe\t\tEngineer")

	assert.Equal(t, "Jane Doe Engineer", result)
}

func TestCleanText_PreservesParagraphBreaks(t *testing.T) {
	result := CleanText("Skills: Go\n\n\n\nExperience\nAcme")

	// Runs of blank lines collapse to one blank line, not zero.
	assert.Equal(t, "Skills: Go\n\nExperience\nAcme", result)
}

func TestCleanText_KeepsBulletIndentation(t *testing.T) {
	result := CleanText("Experience\n  - Built the   billing service")

	assert.Equal(t, "Experience\n  - Built the billing service", result)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestExtractFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\njane@example.com"), 0644))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com", text)
}

func TestExtractFile_UnknownExtensionReadAsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.md")
	require.NoError(t, os.WriteFile(path, []byte("# Jane Doe"), 0644))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Jane Doe", text)
}

func TestExtractFile_NotFound(t *testing.T) {
	_, err := ExtractFile("/nonexistent/resume.txt")
	assert.ErrorContains(t, err, "file not found")
}
