package keywords

// phrases are technical terms detected verbatim in the job description.
// Order is kept in the ranking.
var phrases = []string{
	"object oriented programming", "problem solving", "data structures", "algorithms",
	"rest api", "rest apis", "restful api", "restful apis", "cloud computing",
	"ci cd", "ci/cd", "continuous integration", "continuous deployment",
	"version control", "machine learning", "deep learning", "data science",
	"data analytics", "etl pipelines", "big data",

	"spring boot", "react js", "react.js", "node js", "node.js", "express.js",
	"express js", "angular", "vue js", "vue.js",

	"aws", "azure", "google cloud platform", "gcp",

	"docker", "kubernetes", "jenkins", "terraform", "github actions",

	"sql", "mysql", "postgresql", "mongodb", "nosql",

	"java", "python", "c++", "javascript", "typescript",

	"git", "bash", "linux",
}

var englishStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
	"are", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both",
	"but", "by", "can", "could", "did", "do", "does", "doing", "down", "during", "each", "etc",
	"few", "for", "from", "further", "get", "had", "has", "have", "having", "he", "her", "here",
	"hers", "herself", "him", "himself", "his", "how", "however", "i", "if", "in", "into", "is",
	"it", "its", "itself", "just", "like", "may", "me", "more", "most", "must", "my", "myself",
	"new", "no", "nor", "not", "now", "of", "off", "on", "once", "one", "only", "or", "other",
	"our", "ours", "ourselves", "out", "over", "own", "per", "same", "shall", "she", "should",
	"so", "some", "such", "than", "that", "the", "their", "theirs", "them", "themselves", "then",
	"there", "these", "they", "this", "those", "through", "to", "too", "under", "until", "up",
	"upon", "us", "use", "using", "very", "via", "was", "we", "well", "were", "what", "when",
	"where", "whether", "which", "while", "who", "whom", "why", "will", "with", "within",
	"without", "work", "working", "would", "you", "your", "yours", "yourself", "yourselves",
}

var hrStopwords = []string{
	"related", "preferred", "strategies", "solving", "strong", "ability", "learn", "adapt", "delivery",
	"seeking", "enthusiastic", "talented", "fresh", "graduates", "excellent", "communication",
	"skills", "player", "motivated", "passionate", "driven", "detail", "responsible", "duties",
	"include", "requirements", "qualifications", "role", "position", "job", "company", "organization",
	"industry", "sector", "domain", "area", "profession", "career", "opportunity", "growth",
	"potential", "salary", "benefits", "compensation", "package", "authorization", "experience",
	"year", "years", "plus", "advantage", "willing", "good", "great", "best", "world", "class",
	"cutting", "edge", "office", "location", "remote", "hybrid", "onsite",
}

var (
	stopwords = toSet(englishStopwords, hrStopwords)
	phraseSet = toSet(phrases)
)

func toSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, item := range list {
			set[item] = struct{}{}
		}
	}
	return set
}
