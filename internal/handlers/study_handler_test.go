package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_vocab_cards/internal/handlers"
	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStudyRouter(m *mocks.StudyService) *chi.Mux {
	h := handlers.NewStudyHandler(m)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware(false))
	router.Post("/api/study/{level}", h.StartSession)
	router.Route("/api/study/sessions/{session_id}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.EndSession)
		r.Post("/answer", h.Answer)
		r.Post("/skip", h.Skip)
		r.Post("/retry", h.Retry)
		r.Post("/restart", h.Restart)
	})
	return router
}

func TestStudyHandler_StartSession(t *testing.T) {
	id := uuid.New()
	mockStudy := mocks.NewStudyService(t)
	mockStudy.On("Start", mock.Anything, uintPtr(2), "A1").
		Return(&model.StudySessionView{SessionID: id, Level: model.LevelA1, Status: "in_progress", DeckSize: 7}, nil).Once()

	rr := httptest.NewRecorder()
	newStudyRouter(mockStudy).ServeHTTP(rr, newRequest(t, http.MethodPost, "/api/study/A1", nil, uintPtr(2)))

	require.Equal(t, http.StatusCreated, rr.Code)
	var view model.StudySessionView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, id, view.SessionID)
	assert.Equal(t, 7, view.DeckSize)
}

func TestStudyHandler_Answer(t *testing.T) {
	id := uuid.New()
	validReq := model.StudyAnswerRequest{WordID: 1, Answer: "Hello"}

	tests := []struct {
		name           string
		path           string
		body           interface{}
		setupMock      func(m *mocks.StudyService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系",
			path: "/api/study/sessions/" + id.String() + "/answer",
			body: validReq,
			setupMock: func(m *mocks.StudyService) {
				m.On("Answer", mock.Anything, (*uint)(nil), id, &validReq).
					Return(&model.StudySessionView{SessionID: id, Score: 100}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: セッションIDが UUID でない",
			path:           "/api/study/sessions/abc/answer",
			body:           validReq,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_SESSION_ID",
		},
		{
			name:           "異常系: 回答が空",
			path:           "/api/study/sessions/" + id.String() + "/answer",
			body:           model.StudyAnswerRequest{WordID: 1},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 出題中でないカード",
			path: "/api/study/sessions/" + id.String() + "/answer",
			body: validReq,
			setupMock: func(m *mocks.StudyService) {
				m.On("Answer", mock.Anything, (*uint)(nil), id, &validReq).
					Return(nil, model.NewAppError("CARD_MISMATCH", "x", "word_id", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "CARD_MISMATCH",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockStudy := mocks.NewStudyService(t)
			if tc.setupMock != nil {
				tc.setupMock(mockStudy)
			}

			rr := httptest.NewRecorder()
			newStudyRouter(mockStudy).ServeHTTP(rr, newRequest(t, http.MethodPost, tc.path, tc.body, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeError(t, rr).Code)
			}
		})
	}
}

func TestStudyHandler_SessionLifecycle(t *testing.T) {
	id := uuid.New()
	base := "/api/study/sessions/" + id.String()
	skipReq := model.StudySkipRequest{WordID: 3}

	mockStudy := mocks.NewStudyService(t)
	mockStudy.On("Get", mock.Anything, (*uint)(nil), id).Return(&model.StudySessionView{SessionID: id}, nil).Once()
	mockStudy.On("Skip", mock.Anything, (*uint)(nil), id, &skipReq).Return(&model.StudySessionView{SessionID: id, UnknownCount: 1}, nil).Once()
	mockStudy.On("Retry", mock.Anything, (*uint)(nil), id).Return(&model.StudySessionView{SessionID: id, Mode: "retry"}, nil).Once()
	mockStudy.On("Restart", mock.Anything, (*uint)(nil), id).Return(&model.StudySessionView{SessionID: id, Round: 1}, nil).Once()
	mockStudy.On("End", mock.Anything, (*uint)(nil), id).Return(nil).Once()
	router := newStudyRouter(mockStudy)

	steps := []struct {
		method string
		path   string
		body   interface{}
		status int
	}{
		{http.MethodGet, base, nil, http.StatusOK},
		{http.MethodPost, base + "/skip", skipReq, http.StatusOK},
		{http.MethodPost, base + "/retry", nil, http.StatusOK},
		{http.MethodPost, base + "/restart", nil, http.StatusOK},
		{http.MethodDelete, base, nil, http.StatusNoContent},
	}
	for _, step := range steps {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newRequest(t, step.method, step.path, step.body, nil))
		assert.Equal(t, step.status, rr.Code, "%s %s", step.method, step.path)
	}
}

func TestStudyHandler_Forbidden(t *testing.T) {
	id := uuid.New()
	mockStudy := mocks.NewStudyService(t)
	mockStudy.On("Get", mock.Anything, uintPtr(9), id).
		Return(nil, model.NewAppError("SESSION_FORBIDDEN", "x", "", model.ErrForbidden)).Once()

	rr := httptest.NewRecorder()
	newStudyRouter(mockStudy).ServeHTTP(rr, newRequest(t, http.MethodGet, "/api/study/sessions/"+id.String(), nil, uintPtr(9)))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
