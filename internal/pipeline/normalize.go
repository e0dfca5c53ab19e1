package pipeline

import (
	"encoding/json"
	"strings"
)

const optionsPerQuestion = 4

// rawQuiz mirrors the schema the prompt asks the model for. Question keys are
// renamed during parsing: question_title -> question, question_options ->
// options. The answer key is unchanged.
type rawQuiz struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Questions   []rawQuestion `json:"questions"`
}

type rawQuestion struct {
	QuestionTitle   string   `json:"question_title"`
	QuestionOptions []string `json:"question_options"`
	Answer          string   `json:"answer"`
}

// CleanResponse strips markdown code fences from a model response. Text
// without fences passes through untouched.
func CleanResponse(text string) string {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "```json") {
		t = t[len("```json"):]
	}
	if strings.HasPrefix(t, "```") {
		t = t[len("```"):]
	}
	if strings.HasSuffix(t, "```") {
		t = t[:len(t)-len("```")]
	}
	return strings.TrimSpace(t)
}

// ParseQuiz turns a raw model response into a normalized quiz payload.
// Malformed JSON and schema violations (option count, answer not among the
// options) are malformed-response failures; there is no partial recovery.
func ParseQuiz(raw string) (*GeneratedQuiz, error) {
	clean := CleanResponse(raw)

	var wire rawQuiz
	if err := json.Unmarshal([]byte(clean), &wire); err != nil {
		return nil, newError(KindMalformedResponse, "decoding quiz JSON: %w", err)
	}

	quiz := &GeneratedQuiz{
		Title:       wire.Title,
		Description: wire.Description,
		Questions:   make([]GeneratedQuestion, 0, len(wire.Questions)),
	}

	for i, q := range wire.Questions {
		if q.QuestionTitle == "" {
			return nil, newError(KindMalformedResponse, "question %d has no title", i+1)
		}
		if len(q.QuestionOptions) != optionsPerQuestion {
			return nil, newError(KindMalformedResponse,
				"question %d has %d options, expected %d", i+1, len(q.QuestionOptions), optionsPerQuestion)
		}
		if !contains(q.QuestionOptions, q.Answer) {
			return nil, newError(KindMalformedResponse,
				"question %d answer is not among its options", i+1)
		}

		quiz.Questions = append(quiz.Questions, GeneratedQuestion{
			Question: q.QuestionTitle,
			Options:  q.QuestionOptions,
			Answer:   q.Answer,
		})
	}

	return quiz, nil
}

func contains(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
