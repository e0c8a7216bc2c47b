package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHistoryItem_Valid(t *testing.T) {
	doc := []byte(`{
		"id": "k3j9x2m1pq",
		"date": "8/29/2026, 10:15:00 AM",
		"kind": "match",
		"title": "Backend Engineer at Acme",
		"score": 72,
		"grade": "B",
		"payload": {"score": 72}
	}`)

	assert.NoError(t, ValidateHistoryItem(doc))
}

func TestValidateHistoryItem_BadKind(t *testing.T) {
	doc := []byte(`{"id": "abc123", "kind": "resume"}`)

	err := ValidateHistoryItem(doc)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateHistoryItem_ScoreOutOfRange(t *testing.T) {
	doc := []byte(`{"id": "abc123", "score": 101}`)

	var verr *ValidationError
	require.ErrorAs(t, ValidateHistoryItem(doc), &verr)
}

func TestValidateHistoryItem_BadIDPattern(t *testing.T) {
	doc := []byte(`{"id": "NOT-VALID"}`)

	var verr *ValidationError
	require.ErrorAs(t, ValidateHistoryItem(doc), &verr)
}

func TestValidateHistoryItem_UnknownFieldRejected(t *testing.T) {
	doc := []byte(`{"id": "abc123", "extra": true}`)

	var verr *ValidationError
	require.ErrorAs(t, ValidateHistoryItem(doc), &verr)
}

func TestValidateHistoryItem_ErrorListsFieldPaths(t *testing.T) {
	doc := []byte(`{"id": "abc123", "grade": "Z"}`)

	var verr *ValidationError
	require.ErrorAs(t, ValidateHistoryItem(doc), &verr)
	assert.Contains(t, verr.Error(), "validation failed")
}
