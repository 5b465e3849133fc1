package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainiacs-dev/brainiacs/internal/domain"
	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
	"github.com/brainiacs-dev/brainiacs/internal/service"
)

// MockMessageService implements the service.MessageService interface
type MockMessageService struct {
	MockAppend         func(boardId string, data service.MessageCreationData) (domain.Message, error)
	MockEdit           func(boardId, messageId, text string) (domain.Message, error)
	MockSoftDelete     func(boardId, messageId, deletedBy string, deletedAt *time.Time) (domain.Message, error)
	MockToggleReaction func(boardId, messageId, userId, kind string) (domain.Message, error)
	MockPin            func(boardId, messageId, pinnedBy string, durationDays int) (domain.Message, error)
	MockUnpin          func(boardId, messageId string) error
	MockMarkSeen       func(boardId, messageId, userId string) (domain.Message, error)
}

func (m *MockMessageService) Append(_ context.Context, boardId string, data service.MessageCreationData) (domain.Message, error) {
	if m.MockAppend != nil {
		return m.MockAppend(boardId, data)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) Edit(_ context.Context, boardId, messageId, text string) (domain.Message, error) {
	if m.MockEdit != nil {
		return m.MockEdit(boardId, messageId, text)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) SoftDelete(_ context.Context, boardId, messageId, deletedBy string, deletedAt *time.Time) (domain.Message, error) {
	if m.MockSoftDelete != nil {
		return m.MockSoftDelete(boardId, messageId, deletedBy, deletedAt)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) ToggleReaction(_ context.Context, boardId, messageId, userId, kind string) (domain.Message, error) {
	if m.MockToggleReaction != nil {
		return m.MockToggleReaction(boardId, messageId, userId, kind)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) Pin(_ context.Context, boardId, messageId, pinnedBy string, durationDays int) (domain.Message, error) {
	if m.MockPin != nil {
		return m.MockPin(boardId, messageId, pinnedBy, durationDays)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) Unpin(_ context.Context, boardId, messageId string) error {
	if m.MockUnpin != nil {
		return m.MockUnpin(boardId, messageId)
	}
	return nil
}

func (m *MockMessageService) MarkSeen(_ context.Context, boardId, messageId, userId string) (domain.Message, error) {
	if m.MockMarkSeen != nil {
		return m.MockMarkSeen(boardId, messageId, userId)
	}
	return domain.Message{}, nil
}

// Setup function to create handler with mock service
func setupMessageTestHandler(messageService service.MessageService) *chi.Mux {
	h := &Handler{message: messageService}
	r := chi.NewRouter()
	r.Put("/boards/{board}/messages", h.AppendMessage)
	r.Patch("/boards/{board}/messages/{message}", h.EditMessage)
	r.Delete("/boards/{board}/messages/{message}", h.DeleteMessage)
	r.Patch("/boards/{board}/messages/{message}/seen", h.MarkMessageSeen)
	r.Patch("/boards/{board}/messages/{message}/react", h.ReactToMessage)
	r.Patch("/boards/{board}/messages/{message}/pin", h.PinMessage)
	r.Patch("/boards/{board}/messages/{message}/unpin", h.UnpinMessage)
	return r
}

func TestAppendMessageHandler(t *testing.T) {
	route := "/boards/b1/messages"
	validBody := []byte(`{"senderId": "u1", "senderName": "Alice", "text": "hello", "attachments": ["a.png"]}`)

	t.Run("successful request", func(t *testing.T) {
		mockService := &MockMessageService{
			MockAppend: func(boardId string, data service.MessageCreationData) (domain.Message, error) {
				assert.Equal(t, "b1", boardId)
				assert.Equal(t, "u1", data.SenderId)
				assert.Equal(t, "Alice", data.SenderName)
				assert.Equal(t, "hello", data.Text)
				assert.Equal(t, []string{"a.png"}, data.Attachments)
				text := "hello"
				return domain.Message{Id: "m1", Text: &text}, nil
			},
		}
		router := setupMessageTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPut, route, bytes.NewBuffer(validBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"messageId":"m1"`)
	})

	t.Run("invalid request body json", func(t *testing.T) {
		router := setupMessageTestHandler(&MockMessageService{})

		req := httptest.NewRequest(http.MethodPut, route, bytes.NewBuffer([]byte(`{invalid json::}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing required field (text)", func(t *testing.T) {
		router := setupMessageTestHandler(&MockMessageService{})

		req := httptest.NewRequest(http.MethodPut, route, bytes.NewBuffer([]byte(`{"senderId": "u1"}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockService := &MockMessageService{
			MockAppend: func(string, service.MessageCreationData) (domain.Message, error) {
				return domain.Message{}, internal_errors.NotFound("Board not found")
			},
		}
		router := setupMessageTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPut, route, bytes.NewBuffer(validBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Board not found")
	})
}

func TestEditMessageHandler(t *testing.T) {
	route := "/boards/b1/messages/m1"

	t.Run("successful request", func(t *testing.T) {
		mockService := &MockMessageService{
			MockEdit: func(boardId, messageId, text string) (domain.Message, error) {
				assert.Equal(t, "b1", boardId)
				assert.Equal(t, "m1", messageId)
				assert.Equal(t, "updated", text)
				return domain.Message{Id: messageId, Text: &text}, nil
			},
		}
		router := setupMessageTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPatch, route, bytes.NewBuffer([]byte(`{"text": "updated"}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"text":"updated"`)
	})

	t.Run("missing text", func(t *testing.T) {
		router := setupMessageTestHandler(&MockMessageService{})

		req := httptest.NewRequest(http.MethodPatch, route, bytes.NewBuffer([]byte(`{}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteMessageHandler(t *testing.T) {
	route := "/boards/b1/messages/m1"

	t.Run("successful request", func(t *testing.T) {
		deletedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		mockService := &MockMessageService{
			MockSoftDelete: func(boardId, messageId, deletedBy string, at *time.Time) (domain.Message, error) {
				assert.Equal(t, "b1", boardId)
				assert.Equal(t, "m1", messageId)
				assert.Equal(t, "u1", deletedBy)
				require.NotNil(t, at)
				assert.Equal(t, deletedAt, *at)
				return domain.Message{Id: messageId, DeletedBy: deletedBy, DeletedAt: at}, nil
			},
		}
		router := setupMessageTestHandler(mockService)

		body := []byte(`{"deletedBy": "u1", "deletedAt": "2025-06-01T12:00:00Z"}`)
		req := httptest.NewRequest(http.MethodDelete, route, bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"deletedBy":"u1"`)
	})

	t.Run("missing deletedBy", func(t *testing.T) {
		router := setupMessageTestHandler(&MockMessageService{})

		req := httptest.NewRequest(http.MethodDelete, route, bytes.NewBuffer([]byte(`{}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestReactToMessageHandler(t *testing.T) {
	route := "/boards/b1/messages/m1/react"

	t.Run("successful request", func(t *testing.T) {
		mockService := &MockMessageService{
			MockToggleReaction: func(boardId, messageId, userId, kind string) (domain.Message, error) {
				assert.Equal(t, "u1", userId)
				assert.Equal(t, "👍", kind)
				return domain.Message{Id: messageId, Reactions: domain.Reactions{kind: {userId}}}, nil
			},
		}
		router := setupMessageTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPatch, route, bytes.NewBuffer([]byte(`{"userId": "u1", "reaction": "👍"}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("reaction with path metacharacter", func(t *testing.T) {
		router := setupMessageTestHandler(&MockMessageService{})

		req := httptest.NewRequest(http.MethodPatch, route, bytes.NewBuffer([]byte(`{"userId": "u1", "reaction": "a.b"}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPinMessageHandler(t *testing.T) {
	route := "/boards/b1/messages/m1/pin"

	t.Run("successful request", func(t *testing.T) {
		mockService := &MockMessageService{
			MockPin: func(boardId, messageId, pinnedBy string, durationDays int) (domain.Message, error) {
				assert.Equal(t, "u1", pinnedBy)
				assert.Equal(t, 2, durationDays)
				return domain.Message{Id: messageId, PinnedBy: pinnedBy}, nil
			},
		}
		router := setupMessageTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPatch, route, bytes.NewBuffer([]byte(`{"pinnedBy": "u1", "pinDuration": 2}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("zero duration rejected", func(t *testing.T) {
		router := setupMessageTestHandler(&MockMessageService{})

		req := httptest.NewRequest(http.MethodPatch, route, bytes.NewBuffer([]byte(`{"pinnedBy": "u1", "pinDuration": 0}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUnpinMessageHandler(t *testing.T) {
	mockService := &MockMessageService{
		MockUnpin: func(boardId, messageId string) error {
			assert.Equal(t, "b1", boardId)
			assert.Equal(t, "m1", messageId)
			return nil
		},
	}
	router := setupMessageTestHandler(mockService)

	req := httptest.NewRequest(http.MethodPatch, "/boards/b1/messages/m1/unpin", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMarkMessageSeenHandler(t *testing.T) {
	route := "/boards/b1/messages/m1/seen"

	t.Run("successful request", func(t *testing.T) {
		mockService := &MockMessageService{
			MockMarkSeen: func(boardId, messageId, userId string) (domain.Message, error) {
				assert.Equal(t, "u1", userId)
				return domain.Message{Id: messageId, Seen: []string{userId}}, nil
			},
		}
		router := setupMessageTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPatch, route, bytes.NewBuffer([]byte(`{"seenBy": "u1"}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"seenBy":["u1"]`)
	})

	t.Run("service not found", func(t *testing.T) {
		mockService := &MockMessageService{
			MockMarkSeen: func(string, string, string) (domain.Message, error) {
				return domain.Message{}, internal_errors.NotFound("Message not found")
			},
		}
		router := setupMessageTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPatch, route, bytes.NewBuffer([]byte(`{"seenBy": "u1"}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
