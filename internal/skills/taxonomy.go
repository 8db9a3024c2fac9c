package skills

var taxonomy = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust", "Swift", "Kotlin",
	"Ruby", "PHP", "Scala",
	"React", "React.js", "Vue.js", "Angular", "Svelte", "Next.js", "Nuxt.js", "Express.js", "NestJS",
	"Node.js", "Django", "Flask", "Spring Boot", "ASP.NET", "Laravel", "Ruby on Rails",
	"HTML", "HTML5", "CSS", "CSS3", "Sass", "Less", "Tailwind CSS", "Bootstrap", "Material UI",
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "GraphQL", "Firebase", "Supabase", "Kafka",
	"AWS", "Azure", "Google Cloud Platform", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "GitHub Actions",
	"Git", "Linux", "Bash", "Shell Scripting",
	"Machine Learning", "Deep Learning", "Data Science", "TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy",
	"Agile", "Scrum", "Kanban", "Jira", "Confluence",
	"REST API", "Microservices", "Serverless", "CI/CD", "TDD", "BDD",
}

// Taxonomy returns a copy of the canonical skill names.
func Taxonomy() []string {
	return append([]string(nil), taxonomy...)
}
