// Package lexicon provides the static skill lexicon used by both resume
// parsing and job requirement extraction. The lexicon is compiled once at
// package init into word-boundary regular expressions; membership tests are
// case-insensitive literal matches with no fuzzy matching or stemming.
package lexicon

import "regexp"

// skillNames is the full set of known skill tokens, aliases included.
// Growing this list only adds detection capability; it never changes
// behavior for skills already matched via section scanning.
var skillNames = []string{
	// Languages and runtimes
	"javascript", "typescript", "python", "java", "c#", ".net", "asp.net",
	"c++", "c", "go", "golang", "rust", "ruby", "php", "kotlin", "swift",
	"scala", "perl", "r", "matlab", "objective-c", "dart", "elixir",

	// Web frameworks
	"react", "react.js", "reactjs", "next.js", "nextjs", "next",
	"node", "node.js", "nodejs", "express", "express.js",
	"django", "flask", "fastapi", "spring", "spring boot", "springboot",
	"rails", "ruby on rails", "laravel", "symfony",
	"vue", "vue.js", "vuejs", "angular", "svelte",

	// Mobile
	"react native", "flutter", "ios", "android", "xamarin",

	// Markup and styling
	"html", "html5", "css", "css3", "sass", "scss", "tailwind", "tailwindcss",

	// Databases and data stores
	"sql", "mysql", "postgresql", "postgres", "sqlite", "mongodb", "redis",
	"elasticsearch", "cassandra", "dynamodb", "oracle", "neo4j",

	// Cloud and infrastructure
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s",
	"terraform", "ansible", "jenkins", "ci/cd", "helm", "serverless",
	"lambda", "cloudformation", "nginx",

	// Version control and collaboration
	"git", "github", "gitlab", "bitbucket",

	// APIs and messaging
	"graphql", "rest", "restful", "api", "grpc", "websocket",
	"kafka", "rabbitmq", "nats", "mqtt",

	// Data engineering and analytics
	"spark", "hadoop", "airflow", "etl", "tableau", "power bi",
	"excel", "data analysis", "data engineering", "snowflake", "dbt",

	// Machine learning
	"machine learning", "ml", "deep learning", "ai",
	"artificial intelligence", "nlp", "computer vision",
	"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",
	"llm", "langchain", "hugging face",

	// Testing
	"selenium", "cypress", "jest", "junit", "pytest", "playwright",
	"unit testing", "integration testing", "tdd",

	// Design
	"figma", "sketch", "adobe xd", "photoshop", "illustrator",
	"ui/ux", "wireframing",

	// Methodologies and project tools
	"agile", "scrum", "kanban", "waterfall", "devops", "microservices",
	"jira", "confluence", "trello", "asana", "notion", "slack",

	// Security
	"penetration testing", "owasp", "cryptography", "network security",
	"siem", "oauth", "sso", "vulnerability assessment",

	// Operating systems and tooling
	"linux", "unix", "windows", "macos", "bash", "shell", "powershell",
	"vim", "makefile",

	// Blockchain
	"blockchain", "solidity", "ethereum", "smart contracts", "web3",

	// Soft skills
	"leadership", "communication", "teamwork", "problem solving",
	"project management", "mentoring", "stakeholder management",
	"public speaking",
}

// Entry is one lexicon skill with its compiled detection pattern.
type Entry struct {
	Name    string
	pattern *regexp.Regexp
}

// MatchString reports whether the skill appears in text as a whole word.
func (e Entry) MatchString(text string) bool {
	return e.pattern.MatchString(text)
}

var entries []Entry

func init() {
	entries = make([]Entry, 0, len(skillNames))
	for _, name := range skillNames {
		entries = append(entries, Entry{
			Name:    name,
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}
}

// Entries returns all lexicon entries in declaration order.
func Entries() []Entry {
	return entries
}

// Names returns all lexicon skill names in declaration order.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// FindAll returns every lexicon skill present in text, in declaration order.
func FindAll(text string) []string {
	found := make([]string, 0)
	for _, e := range entries {
		if e.MatchString(text) {
			found = append(found, e.Name)
		}
	}
	return found
}
