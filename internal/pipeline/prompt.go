package pipeline

import "fmt"

const promptHeader = "Based on the following transcript, generate a quiz in " +
	"valid JSON format.\n\nThe quiz must follow this exact structure:"

const promptStructure = `{
  "title": "Create a concise quiz title based on the topic of the transcript.",
  "description": "Summarize the transcript in no more than 150 characters.",
  "questions": [
    {
      "question_title": "The question goes here.",
      "question_options": [
        "Option A",
        "Option B",
        "Option C",
        "Option D"
      ],
      "answer": "The correct answer from the above options"
    }
  ]
}
    ...
    (exactly 10 questions)`

const promptRequirements = `
Requirements:
- Each question must have exactly 4 distinct answer options.
- Only one correct answer is allowed per question, and it must be
  present in 'question_options'.
- The output must be valid JSON and parsable as-is.
- Do not include explanations, comments, or any text outside the
  JSON.`

// BuildPrompt renders the generation prompt for a transcript. Pure and
// deterministic: the transcript is appended verbatim at the end.
func BuildPrompt(transcript string) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n\nTranscript:\n%s",
		promptHeader, promptStructure, promptRequirements, transcript,
	)
}
