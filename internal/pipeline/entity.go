package pipeline

// GeneratedQuiz is the normalized, ownerless payload produced by the
// pipeline. Attaching an owner and persisting it is the caller's job.
type GeneratedQuiz struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Questions   []GeneratedQuestion `json:"questions"`
}

type GeneratedQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}
