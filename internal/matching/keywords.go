package matching

// categoryKeywords maps a lowercased opportunity category to synonyms
// that count as an interest match. Static domain data — loaded once,
// never mutated at runtime.
var categoryKeywords = map[string][]string{
	"education":   {"education", "teaching", "learning", "tutoring"},
	"healthcare":  {"health", "medical", "care", "wellness"},
	"environment": {"environment", "green", "sustainability", "climate"},
	"community":   {"community", "social", "service", "help"},
	"animals":     {"animal", "pet", "wildlife", "veterinary"},
	"arts":        {"art", "culture", "creative", "music", "theater"},
	"sports":      {"sport", "fitness", "exercise", "athletic"},
	"technology":  {"tech", "computer", "programming", "digital"},
}
