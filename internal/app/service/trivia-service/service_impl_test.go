package trivia_service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-backend/internal/model/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCategoryRepository struct {
	categories []*entity.Category
	err        error
}

func (s *stubCategoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return s.categories, s.err
}

type stubQuestionRepository struct {
	questions []*entity.Question
	listErr   error
	getErr    error
	deleteErr error
	panicOn   string
}

func (s *stubQuestionRepository) ListQuestions(ctx context.Context) ([]*entity.Question, error) {
	if s.panicOn == "list" {
		panic("list exploded")
	}
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.questions, nil
}

func (s *stubQuestionRepository) GetQuestionByID(ctx context.Context, id int) (*entity.Question, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubQuestionRepository) DeleteQuestion(ctx context.Context, question *entity.Question) error {
	if s.panicOn == "delete" {
		panic("delete exploded")
	}
	if s.deleteErr != nil {
		return s.deleteErr
	}
	kept := s.questions[:0]
	for _, q := range s.questions {
		if q.ID != question.ID {
			kept = append(kept, q)
		}
	}
	s.questions = kept
	return nil
}

func newQuestions(n int) []*entity.Question {
	out := make([]*entity.Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &entity.Question{ID: i, Question: "q", Answer: "a", Category: 1, Difficulty: 1})
	}
	return out
}

func newContext(method, target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, nil)
	return c
}

func TestListCategories(t *testing.T) {
	svc := NewTriviaService(&stubCategoryRepository{categories: []*entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}}, &stubQuestionRepository{})

	resp, status := svc.ListCategories(newContext(http.MethodGet, "/categories"))

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.TotalCategories)
	assert.Equal(t, map[int]string{1: "Science", 2: "Art"}, resp.Categories)
}

func TestListCategoriesEmpty(t *testing.T) {
	svc := NewTriviaService(&stubCategoryRepository{}, &stubQuestionRepository{})

	_, status := svc.ListCategories(newContext(http.MethodGet, "/categories"))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListCategoriesStoreError(t *testing.T) {
	svc := NewTriviaService(&stubCategoryRepository{err: errors.New("db down")}, &stubQuestionRepository{})

	_, status := svc.ListCategories(newContext(http.MethodGet, "/categories"))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestListQuestionsPages(t *testing.T) {
	svc := NewTriviaService(
		&stubCategoryRepository{categories: []*entity.Category{{ID: 1, Type: "Science"}}},
		&stubQuestionRepository{questions: newQuestions(15)},
	)

	resp, status := svc.ListQuestions(newContext(http.MethodGet, "/questions?page=2"))
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Questions, 5)
	assert.Equal(t, 11, resp.Questions[0].ID)
	assert.Equal(t, 15, resp.Questions[4].ID)
	assert.Equal(t, 15, resp.TotalQuestions)
	assert.Equal(t, map[int]string{1: "Science"}, resp.Categories)
	assert.Nil(t, resp.CurrentCategory)

	resp, status = svc.ListQuestions(newContext(http.MethodGet, "/questions"))
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Questions, 10)
	assert.Equal(t, 1, resp.Questions[0].ID)

	_, status = svc.ListQuestions(newContext(http.MethodGet, "/questions?page=3"))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListQuestionsEmptyTable(t *testing.T) {
	svc := NewTriviaService(&stubCategoryRepository{}, &stubQuestionRepository{})

	_, status := svc.ListQuestions(newContext(http.MethodGet, "/questions"))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteQuestion(t *testing.T) {
	repo := &stubQuestionRepository{questions: newQuestions(15)}
	svc := NewTriviaService(&stubCategoryRepository{}, repo)

	resp, status := svc.DeleteQuestion(newContext(http.MethodDelete, "/questions/1"), 1)

	require.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Deleted)
	assert.Equal(t, 14, resp.TotalQuestions)
	require.Len(t, resp.Questions, 10)
	assert.Equal(t, 2, resp.Questions[0].ID)
	assert.Equal(t, 11, resp.Questions[9].ID)
}

func TestDeleteQuestionUsesPageParameter(t *testing.T) {
	repo := &stubQuestionRepository{questions: newQuestions(11)}
	svc := NewTriviaService(&stubCategoryRepository{}, repo)

	resp, status := svc.DeleteQuestion(newContext(http.MethodDelete, "/questions/11?page=2"), 11)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 10, resp.TotalQuestions)
	assert.NotNil(t, resp.Questions)
	assert.Empty(t, resp.Questions)
}

func TestDeleteQuestionFailureBoundary(t *testing.T) {
	tests := []struct {
		name string
		repo *stubQuestionRepository
		id   int
	}{
		{name: "missing question", repo: &stubQuestionRepository{questions: newQuestions(3)}, id: 99},
		{name: "lookup error", repo: &stubQuestionRepository{getErr: errors.New("db down")}, id: 1},
		{name: "delete error", repo: &stubQuestionRepository{questions: newQuestions(3), deleteErr: errors.New("locked")}, id: 1},
		{name: "list error", repo: &stubQuestionRepository{questions: newQuestions(3), listErr: errors.New("db down")}, id: 1},
		{name: "delete panic", repo: &stubQuestionRepository{questions: newQuestions(3), panicOn: "delete"}, id: 1},
		{name: "list panic", repo: &stubQuestionRepository{questions: newQuestions(3), panicOn: "list"}, id: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTriviaService(&stubCategoryRepository{}, tt.repo)

			resp, status := svc.DeleteQuestion(newContext(http.MethodDelete, "/questions/1"), tt.id)

			assert.Equal(t, http.StatusUnprocessableEntity, status)
			assert.False(t, resp.Success)
		})
	}
}

func TestDeleteQuestionNotFoundIsWrapped(t *testing.T) {
	svc := &TriviaServiceImpl{
		CategoryRepository: &stubCategoryRepository{},
		QuestionRepository: &stubQuestionRepository{},
	}

	_, err := svc.deleteQuestion(newContext(http.MethodDelete, "/questions/7"), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}
