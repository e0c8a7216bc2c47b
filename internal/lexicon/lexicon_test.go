package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAll_BasicSkills(t *testing.T) {
	text := "Experienced with React, Node.js and Python on AWS."

	found := FindAll(text)

	assert.Contains(t, found, "react")
	assert.Contains(t, found, "node.js")
	assert.Contains(t, found, "python")
	assert.Contains(t, found, "aws")
}

func TestFindAll_CaseInsensitive(t *testing.T) {
	found := FindAll("DOCKER and Kubernetes and toolchains like GIT")

	assert.Contains(t, found, "docker")
	assert.Contains(t, found, "kubernetes")
	assert.Contains(t, found, "git")
}

func TestFindAll_WholeWordsOnly(t *testing.T) {
	// "rust" inside "frustrated" and "r" inside other words must not match.
	found := FindAll("frustrated with the framework")

	assert.NotContains(t, found, "rust")
	assert.NotContains(t, found, "r")
}

func TestFindAll_EmptyText(t *testing.T) {
	found := FindAll("")

	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestFindAll_DeclarationOrder(t *testing.T) {
	// javascript is declared before react; order must be stable.
	found := FindAll("react and javascript")

	assert.Equal(t, []string{"javascript", "react"}, found[:2])
}

func TestEntries_MatchesNames(t *testing.T) {
	names := Names()
	entries := Entries()

	assert.Equal(t, len(names), len(entries))
	for i, e := range entries {
		assert.Equal(t, names[i], e.Name)
	}
}

func TestEntry_MatchString(t *testing.T) {
	for _, e := range Entries() {
		if e.Name == "graphql" {
			assert.True(t, e.MatchString("We use GraphQL heavily"))
			assert.False(t, e.MatchString("We use REST heavily"))
			return
		}
	}
	t.Fatal("graphql not present in lexicon")
}
