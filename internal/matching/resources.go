package matching

import (
	"strings"

	"github.com/vedzkun/applytics/internal/types"
)

// Resource types used in the curated table.
const (
	ResourceCourse        = "course"
	ResourceDocumentation = "documentation"
	ResourceTutorial      = "tutorial"
	ResourceCertification = "certification"
)

// learningResources maps well-known skill names to curated resources.
// Read-only after init; skills without an entry produce no output.
var learningResources = map[string][]types.Resource{
	"react": {
		{Name: "React Official Docs", URL: "https://react.dev", Type: ResourceDocumentation},
		{Name: "React Course on Udemy", URL: "https://udemy.com/course/react-the-complete-guide", Type: ResourceCourse},
	},
	"typescript": {
		{Name: "TypeScript Handbook", URL: "https://typescriptlang.org/docs", Type: ResourceDocumentation},
		{Name: "TypeScript Deep Dive", URL: "https://basarat.gitbook.io/typescript", Type: ResourceTutorial},
	},
	"next.js": {
		{Name: "Next.js Learn", URL: "https://nextjs.org/learn", Type: ResourceTutorial},
		{Name: "Next.js Docs", URL: "https://nextjs.org/docs", Type: ResourceDocumentation},
	},
	"node": {
		{Name: "Node.js Docs", URL: "https://nodejs.org/docs", Type: ResourceDocumentation},
		{Name: "The Node.js Handbook", URL: "https://flaviocopes.com/node", Type: ResourceTutorial},
	},
	"python": {
		{Name: "Python Official Tutorial", URL: "https://docs.python.org/3/tutorial", Type: ResourceDocumentation},
		{Name: "Automate the Boring Stuff", URL: "https://automatetheboringstuff.com", Type: ResourceTutorial},
	},
	"aws": {
		{Name: "AWS Training", URL: "https://aws.amazon.com/training", Type: ResourceCourse},
		{Name: "AWS Certified Solutions Architect", URL: "https://aws.amazon.com/certification", Type: ResourceCertification},
	},
	"docker": {
		{Name: "Docker Get Started", URL: "https://docs.docker.com/get-started", Type: ResourceTutorial},
		{Name: "Docker Mastery on Udemy", URL: "https://udemy.com/course/docker-mastery", Type: ResourceCourse},
	},
	"kubernetes": {
		{Name: "Kubernetes Docs", URL: "https://kubernetes.io/docs", Type: ResourceDocumentation},
		{Name: "CKAD Certification", URL: "https://training.linuxfoundation.org/certification/ckad", Type: ResourceCertification},
	},
	"sql": {
		{Name: "SQLBolt Interactive Tutorial", URL: "https://sqlbolt.com", Type: ResourceTutorial},
		{Name: "Mode SQL Tutorial", URL: "https://mode.com/sql-tutorial", Type: ResourceTutorial},
	},
	"graphql": {
		{Name: "GraphQL Learn", URL: "https://graphql.org/learn", Type: ResourceDocumentation},
		{Name: "How to GraphQL", URL: "https://howtographql.com", Type: ResourceTutorial},
	},
}

// LookupResources returns curated learning resources for each missing skill
// that has an entry in the table. Skills without curated resources are
// silently omitted.
func LookupResources(missingSkills []string) []types.LearningResource {
	out := make([]types.LearningResource, 0)
	for _, skill := range missingSkills {
		resources, ok := learningResources[strings.ToLower(skill)]
		if !ok {
			continue
		}
		out = append(out, types.LearningResource{Skill: skill, Resources: resources})
	}
	return out
}
