package resume

import (
	"regexp"
	"strings"
	"sync"
)

// DefaultTopic is used for question generation when no technology keyword is
// found in the resume text.
const DefaultTopic = "General Software Development"

// techKeywords is the fixed technology list matched against resume text.
// Output order follows this list, which keeps prompt topic strings stable.
var techKeywords = []string{
	// Programming languages
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust", "PHP", "Ruby",
	// Frontend
	"React", "Angular", "Vue.js", "HTML", "CSS", "SASS", "LESS", "Webpack", "Vite", "Next.js", "Nuxt.js",
	// Backend
	"Node.js", "Express", "Django", "Flask", "Spring Boot", "ASP.NET", "FastAPI", "GraphQL", "REST",
	// Databases
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Firebase", "Cassandra", "Oracle", "SQL Server",
	// DevOps and cloud
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Jenkins", "GitLab CI", "GitHub Actions", "CI/CD", "Terraform", "Ansible",
	// Frameworks and libraries
	"jQuery", "Lodash", "Express.js", "Pandas", "NumPy", "TensorFlow", "PyTorch", "Scikit-learn",
	// Tools and concepts
	"Git", "SDLC", "Agile", "Scrum", "Jira", "Linux", "Bash", "Algorithms", "Data Structures", "OOP", "Microservices",
	// AI/ML
	"AI", "Machine Learning", "Deep Learning", "NLP", "Computer Vision",
	// Other
	"Full Stack", "Frontend", "Backend", "API", "Testing", "Jest", "Cypress", "Selenium",
}

var keywordRes = sync.OnceValue(func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(techKeywords))
	for i, kw := range techKeywords {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return res
})

// ExtractTopics matches the resume text against the technology keyword list,
// case-insensitively and on word boundaries. All matches are kept, in list
// order, without ranking.
func ExtractTopics(text string) []string {
	if text == "" {
		return nil
	}
	var topics []string
	for i, re := range keywordRes() {
		if re.MatchString(text) {
			topics = append(topics, techKeywords[i])
		}
	}
	return topics
}

// TopicString joins extracted topics for the question prompt, falling back to
// the default topic when nothing matched.
func TopicString(topics []string) string {
	if len(topics) == 0 {
		return DefaultTopic
	}
	return strings.Join(topics, ", ")
}
