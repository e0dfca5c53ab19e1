package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/quizly-app/quizly-api/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuizRepo struct {
	quizzes   map[uuid.UUID]*Quiz
	questions map[uuid.UUID][]*Question
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:   map[uuid.UUID]*Quiz{},
		questions: map[uuid.UUID][]*Question{},
	}
}

func (r *fakeQuizRepo) Create(q *Quiz, questions []*Question) error {
	r.quizzes[q.ID] = q
	r.questions[q.ID] = questions
	return nil
}

func (r *fakeQuizRepo) GetByIDAndUser(id, userID uuid.UUID) (*Quiz, error) {
	q, ok := r.quizzes[id]
	if !ok || q.UserID != userID {
		return nil, nil
	}
	return q, nil
}

func (r *fakeQuizRepo) ListByUser(userID uuid.UUID) ([]*Quiz, error) {
	var out []*Quiz
	for _, q := range r.quizzes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) Save(q *Quiz) error {
	r.quizzes[q.ID] = q
	return nil
}

func (r *fakeQuizRepo) Delete(id, userID uuid.UUID) (bool, error) {
	q, ok := r.quizzes[id]
	if !ok || q.UserID != userID {
		return false, nil
	}
	delete(r.quizzes, id)
	delete(r.questions, id)
	return true, nil
}

type fakeGenerator struct {
	payload *pipeline.GeneratedQuiz
	err     error
	calls   []string
}

func (g *fakeGenerator) Generate(ctx context.Context, url string) (*pipeline.GeneratedQuiz, error) {
	g.calls = append(g.calls, url)
	return g.payload, g.err
}

func samplePayload() *pipeline.GeneratedQuiz {
	return &pipeline.GeneratedQuiz{
		Title:       "T",
		Description: "D",
		Questions: []pipeline.GeneratedQuestion{
			{Question: "Q1", Options: []string{"A", "B", "C", "D"}, Answer: "A"},
			{Question: "Q2", Options: []string{"1", "2", "3", "4"}, Answer: "4"},
		},
	}
}

func TestCreateFromURL(t *testing.T) {
	userID := uuid.New()
	url := "https://example.com/watch?v=abc"

	t.Run("Success", func(t *testing.T) {
		repo := newFakeQuizRepo()
		gen := &fakeGenerator{payload: samplePayload()}
		svc := NewService(repo, gen)

		quiz, err := svc.CreateFromURL(context.Background(), userID, url)
		require.NoError(t, err)

		assert.Equal(t, []string{url}, gen.calls)
		assert.Equal(t, userID, quiz.UserID)
		assert.Equal(t, "T", quiz.Title)
		assert.Equal(t, "D", quiz.Description)
		assert.Equal(t, url, quiz.VideoURL)

		stored := repo.questions[quiz.ID]
		require.Len(t, stored, 2)
		assert.Equal(t, "Q1", stored[0].Question)
		assert.Equal(t, 0, stored[0].OrderIndex)
		assert.Equal(t, 1, stored[1].OrderIndex)
		assert.Equal(t, quiz.ID, stored[0].QuizID)

		var options []string
		require.NoError(t, json.Unmarshal(stored[0].Options, &options))
		assert.Equal(t, []string{"A", "B", "C", "D"}, options)
		assert.Contains(t, options, stored[0].Answer)
	})

	t.Run("PipelineErrorPropagatesUntouched", func(t *testing.T) {
		repo := newFakeQuizRepo()
		pipelineErr := &pipeline.Error{Kind: pipeline.KindDownload, Err: errors.New("no playable stream")}
		gen := &fakeGenerator{err: pipelineErr}
		svc := NewService(repo, gen)

		_, err := svc.CreateFromURL(context.Background(), userID, url)
		require.Error(t, err)
		assert.Equal(t, pipeline.KindDownload, pipeline.KindOf(err))
		assert.EqualError(t, err, "no playable stream")
		assert.Empty(t, repo.quizzes, "nothing must be persisted on failure")
	})
}

func TestOwnerScoping(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	repo := newFakeQuizRepo()
	gen := &fakeGenerator{payload: samplePayload()}
	svc := NewService(repo, gen)

	quiz, err := svc.CreateFromURL(context.Background(), owner, "https://example.com/watch?v=abc")
	require.NoError(t, err)

	t.Run("GetByIDOtherUser", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), other, quiz.ID)
		assert.ErrorIs(t, err, ErrQuizNotFound)
	})

	t.Run("DeleteOtherUser", func(t *testing.T) {
		err := svc.Delete(context.Background(), other, quiz.ID)
		assert.ErrorIs(t, err, ErrQuizNotFound)
	})

	t.Run("DeleteOwner", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), owner, quiz.ID))

		_, err := svc.GetByID(context.Background(), owner, quiz.ID)
		assert.ErrorIs(t, err, ErrQuizNotFound)
	})
}

func TestUpdate(t *testing.T) {
	userID := uuid.New()
	repo := newFakeQuizRepo()
	gen := &fakeGenerator{payload: samplePayload()}
	svc := NewService(repo, gen)

	quiz, err := svc.CreateFromURL(context.Background(), userID, "https://example.com/watch?v=abc")
	require.NoError(t, err)

	t.Run("TitleOnly", func(t *testing.T) {
		title := "Updated Title"
		updated, err := svc.Update(context.Background(), userID, quiz.ID, UpdateQuizRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Updated Title", updated.Title)
		assert.Equal(t, "D", updated.Description)
	})

	t.Run("NotFound", func(t *testing.T) {
		title := "x"
		_, err := svc.Update(context.Background(), userID, uuid.New(), UpdateQuizRequest{Title: &title})
		assert.ErrorIs(t, err, ErrQuizNotFound)
	})
}
