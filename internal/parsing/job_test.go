package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJobRequirements_SectionClassification(t *testing.T) {
	job := "Nice to have: Docker.\n\nRequirements: React and Python. 5+ years. Bachelor's degree."

	reqs := ExtractJobRequirements(job)

	assert.Contains(t, reqs.RequiredSkills, "react")
	assert.Contains(t, reqs.RequiredSkills, "python")
	assert.Contains(t, reqs.PreferredSkills, "docker")
	assert.Equal(t, 5, reqs.RequiredExperience)
	assert.True(t, reqs.EducationRequired)
}

func TestExtractJobRequirements_RequiredWinsOverPreferred(t *testing.T) {
	// A skill appearing in both windows is classified as required.
	job := "Required: Python.\nPreferred: Python and GraphQL."

	reqs := ExtractJobRequirements(job)

	assert.Contains(t, reqs.RequiredSkills, "python")
	assert.NotContains(t, reqs.PreferredSkills, "python")
}

func TestExtractJobRequirements_UnlabeledMentionsAreRequired(t *testing.T) {
	reqs := ExtractJobRequirements("We use Kubernetes daily.")

	assert.Contains(t, reqs.RequiredSkills, "kubernetes")
	assert.Empty(t, reqs.PreferredSkills)
	assert.Zero(t, reqs.RequiredExperience)
	assert.False(t, reqs.EducationRequired)
}

func TestExtractJobRequirements_EmptyText(t *testing.T) {
	reqs := ExtractJobRequirements("")

	assert.NotNil(t, reqs.RequiredSkills)
	assert.NotNil(t, reqs.PreferredSkills)
	assert.Empty(t, reqs.RequiredSkills)
	assert.Empty(t, reqs.PreferredSkills)
	assert.Zero(t, reqs.RequiredExperience)
	assert.False(t, reqs.EducationRequired)
}

func TestExtractJobRequirements_NoDuplicateSkills(t *testing.T) {
	reqs := ExtractJobRequirements("Required: Redis. We love Redis. Redis everywhere.")

	count := 0
	for _, s := range reqs.RequiredSkills {
		if s == "redis" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
