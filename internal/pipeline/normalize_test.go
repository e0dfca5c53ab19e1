package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanResponse(t *testing.T) {
	t.Run("JSONFence", func(t *testing.T) {
		raw := "```json\n{\"key\":\"value\"}\n```"
		assert.Equal(t, `{"key":"value"}`, CleanResponse(raw))
	})

	t.Run("BareFence", func(t *testing.T) {
		raw := "```\n{\"key\":\"value\"}\n```"
		assert.Equal(t, `{"key":"value"}`, CleanResponse(raw))
	})

	t.Run("NoFence", func(t *testing.T) {
		raw := `{"key":"value"}`
		assert.Equal(t, raw, CleanResponse(raw))
	})

	t.Run("SurroundingWhitespace", func(t *testing.T) {
		raw := "  \n```json\n{\"key\":\"value\"}\n```  \n"
		assert.Equal(t, `{"key":"value"}`, CleanResponse(raw))
	})
}

func TestParseQuiz(t *testing.T) {
	t.Run("RenamesQuestionKeys", func(t *testing.T) {
		raw := `{"title":"T","questions":[{"question_title":"Q1","question_options":["A","B","C","D"],"answer":"A"}]}`

		quiz, err := ParseQuiz(raw)
		require.NoError(t, err)

		assert.Equal(t, "T", quiz.Title)
		require.Len(t, quiz.Questions, 1)
		assert.Equal(t, "Q1", quiz.Questions[0].Question)
		assert.Equal(t, []string{"A", "B", "C", "D"}, quiz.Questions[0].Options)
		assert.Equal(t, "A", quiz.Questions[0].Answer)
	})

	t.Run("FencedResponse", func(t *testing.T) {
		raw := "```json\n{\"title\":\"T\",\"description\":\"D\",\"questions\":[]}\n```"

		quiz, err := ParseQuiz(raw)
		require.NoError(t, err)
		assert.Equal(t, "T", quiz.Title)
		assert.Equal(t, "D", quiz.Description)
		assert.Empty(t, quiz.Questions)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := ParseQuiz(`{"title": "broken`)
		require.Error(t, err)
		assert.Equal(t, KindMalformedResponse, KindOf(err))
	})

	t.Run("WrongOptionCount", func(t *testing.T) {
		raw := `{"title":"T","questions":[{"question_title":"Q1","question_options":["A","B","C"],"answer":"A"}]}`

		_, err := ParseQuiz(raw)
		require.Error(t, err)
		assert.Equal(t, KindMalformedResponse, KindOf(err))
	})

	t.Run("AnswerNotAmongOptions", func(t *testing.T) {
		raw := `{"title":"T","questions":[{"question_title":"Q1","question_options":["A","B","C","D"],"answer":"E"}]}`

		_, err := ParseQuiz(raw)
		require.Error(t, err)
		assert.Equal(t, KindMalformedResponse, KindOf(err))
	})

	t.Run("MissingQuestionTitle", func(t *testing.T) {
		raw := `{"title":"T","questions":[{"question_options":["A","B","C","D"],"answer":"A"}]}`

		_, err := ParseQuiz(raw)
		require.Error(t, err)
		assert.Equal(t, KindMalformedResponse, KindOf(err))
	})
}

func TestKindOf(t *testing.T) {
	t.Run("PipelineError", func(t *testing.T) {
		err := newError(KindDownload, "boom")
		assert.Equal(t, KindDownload, KindOf(err))
		assert.True(t, KindOf(err).IsValid())
	})

	t.Run("ForeignError", func(t *testing.T) {
		assert.Equal(t, Kind(""), KindOf(assert.AnError))
	})
}
