package catalog

// defaultData returns the built-in vocabularies. They are intentionally
// small and curated; deployments with a richer taxonomy supply a catalog
// file instead.
func defaultData() Data {
	return Data{
		Skills: []string{
			"python", "java", "javascript", "typescript", "c", "c++", "c#",
			"go", "ruby", "php", "sql", "mysql", "postgresql", "mongodb", "redis",
			"html", "css", "react", "vue", "angular", "node", "express",
			"django", "flask", "spring", "fastapi",
			"aws", "gcp", "azure", "docker", "kubernetes", "terraform", "linux",
			"rest", "api", "graphql", "microservices",
			"machine learning", "ml", "nlp", "cv", "pandas", "numpy",
			"scikit-learn", "tensorflow", "pytorch",
			"git", "agile", "scrum", "testing", "pytest", "jest",
			"excel", "tableau", "powerbi", "data", "analysis",
		},
		StopWords: []string{
			"the", "and", "or", "an", "a", "to", "of", "for", "on",
			"with", "by", "in", "at", "as", "is", "are", "was", "were",
			"be", "been", "this", "that", "it",
		},
		Phrases: []string{
			"machine learning",
			"deep learning",
			"data science",
			"artificial intelligence",
			"natural language processing",
			"computer vision",
			"cloud computing",
			"project management",
			"software development",
		},
		Synonyms: map[string][]string{
			"ml":  {"machine learning"},
			"ai":  {"artificial intelligence"},
			"nlp": {"natural language processing"},
			"cv":  {"computer vision"},
			"js":  {"javascript"},
			"py":  {"python"},
		},
	}
}
