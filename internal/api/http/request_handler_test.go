package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/security"
)

type MockWorkflowService struct {
	mock.Mock
}

func (m *MockWorkflowService) SubmitRequest(ctx context.Context, assetID int32, requester, note string) (*domain.Request, error) {
	args := m.Called(ctx, assetID, requester, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockWorkflowService) ApproveRequest(ctx context.Context, requestID int32, approver string) (*domain.Request, error) {
	args := m.Called(ctx, requestID, approver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockWorkflowService) RejectRequest(ctx context.Context, requestID int32, approver string) (*domain.Request, error) {
	args := m.Called(ctx, requestID, approver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockWorkflowService) ReturnRequest(ctx context.Context, requestID int32) (*domain.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockWorkflowService) GetRequest(ctx context.Context, requestID int32) (*domain.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockWorkflowService) ListMyRequests(ctx context.Context, requester string) ([]domain.Request, error) {
	args := m.Called(ctx, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockWorkflowService) ListCompanyRequests(ctx context.Context, approver string, status domain.RequestStatus) ([]domain.Request, error) {
	args := m.Called(ctx, approver, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}
func withClaims(r *http.Request, claims *security.UserClaims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
}

func employeeClaims() *security.UserClaims {
	return &security.UserClaims{UserID: 1, Email: "emp@acme.com", Role: string(domain.UserRoleEmployee)}
}

func hrClaims() *security.UserClaims {
	return &security.UserClaims{UserID: 2, Email: "hr@acme.com", Role: string(domain.UserRoleHR)}
}

func TestRequestHandler_Submit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		workflow := new(MockWorkflowService)
		handler := NewRequestHandler(workflow)

		created := &domain.Request{ID: 1, AssetID: 7, Requester: "emp@acme.com", Status: domain.RequestStatusPending}
		workflow.On("SubmitRequest", mock.Anything, int32(7), "emp@acme.com", "need one").Return(created, nil)

		body, _ := json.Marshal(map[string]interface{}{"asset_id": 7, "note": "need one"})
		r := withClaims(httptest.NewRequest(http.MethodPost, "/requests", bytes.NewReader(body)), employeeClaims())
		w := httptest.NewRecorder()

		handler.Submit(w, r)
		assert.Equal(t, http.StatusCreated, w.Code)

		var got domain.Request
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int32(1), got.ID)
	})

	t.Run("Missing Asset ID", func(t *testing.T) {
		workflow := new(MockWorkflowService)
		handler := NewRequestHandler(workflow)

		r := withClaims(httptest.NewRequest(http.MethodPost, "/requests", bytes.NewReader([]byte(`{"note":"x"}`))), employeeClaims())
		w := httptest.NewRecorder()

		handler.Submit(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		workflow.AssertNotCalled(t, "SubmitRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Asset", func(t *testing.T) {
		workflow := new(MockWorkflowService)
		handler := NewRequestHandler(workflow)

		workflow.On("SubmitRequest", mock.Anything, int32(99), "emp@acme.com", "").Return(nil, domain.ErrNotFound)

		r := withClaims(httptest.NewRequest(http.MethodPost, "/requests", bytes.NewReader([]byte(`{"asset_id":99}`))), employeeClaims())
		w := httptest.NewRecorder()

		handler.Submit(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequestHandler_Approve(t *testing.T) {
	route := func(handler *RequestHandler, r *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router := mux.NewRouter()
		router.HandleFunc("/requests/{id}/approve", handler.Approve).Methods(http.MethodPost)
		router.ServeHTTP(w, r)
		return w
	}

	t.Run("Success", func(t *testing.T) {
		workflow := new(MockWorkflowService)
		handler := NewRequestHandler(workflow)

		approved := &domain.Request{ID: 5, Status: domain.RequestStatusApproved}
		workflow.On("ApproveRequest", mock.Anything, int32(5), "hr@acme.com").Return(approved, nil)

		r := withClaims(httptest.NewRequest(http.MethodPost, "/requests/5/approve", nil), hrClaims())
		w := route(handler, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Conflict Maps To 409", func(t *testing.T) {
		workflow := new(MockWorkflowService)
		handler := NewRequestHandler(workflow)

		workflow.On("ApproveRequest", mock.Anything, int32(5), "hr@acme.com").Return(nil, domain.ErrConflict)

		r := withClaims(httptest.NewRequest(http.MethodPost, "/requests/5/approve", nil), hrClaims())
		w := route(handler, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Exhausted Inventory Maps To 409", func(t *testing.T) {
		workflow := new(MockWorkflowService)
		handler := NewRequestHandler(workflow)

		workflow.On("ApproveRequest", mock.Anything, int32(5), "hr@acme.com").Return(nil, domain.ErrInsufficientInventory)

		r := withClaims(httptest.NewRequest(http.MethodPost, "/requests/5/approve", nil), hrClaims())
		w := route(handler, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Bad ID", func(t *testing.T) {
		workflow := new(MockWorkflowService)
		handler := NewRequestHandler(workflow)

		r := withClaims(httptest.NewRequest(http.MethodPost, "/requests/abc/approve", nil), hrClaims())
		w := route(handler, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		workflow.AssertNotCalled(t, "ApproveRequest", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRequestHandler_Return(t *testing.T) {
	route := func(handler *RequestHandler, r *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router := mux.NewRouter()
		router.HandleFunc("/requests/{id}/return", handler.Return).Methods(http.MethodPost)
		router.ServeHTTP(w, r)
		return w
	}

	t.Run("Non-Returnable Maps To 400", func(t *testing.T) {
		workflow := new(MockWorkflowService)
		handler := NewRequestHandler(workflow)

		workflow.On("ReturnRequest", mock.Anything, int32(3)).Return(nil, domain.ErrInvalidAssetType)

		r := withClaims(httptest.NewRequest(http.MethodPost, "/requests/3/return", nil), employeeClaims())
		w := route(handler, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Wrong State Maps To 409", func(t *testing.T) {
		workflow := new(MockWorkflowService)
		handler := NewRequestHandler(workflow)

		workflow.On("ReturnRequest", mock.Anything, int32(3)).Return(nil, domain.ErrInvalidState)

		r := withClaims(httptest.NewRequest(http.MethodPost, "/requests/3/return", nil), employeeClaims())
		w := route(handler, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestRequireHR(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	t.Run("HR Passes", func(t *testing.T) {
		r := withClaims(httptest.NewRequest(http.MethodGet, "/", nil), hrClaims())
		w := httptest.NewRecorder()
		RequireHR(next)(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Employee Forbidden", func(t *testing.T) {
		r := withClaims(httptest.NewRequest(http.MethodGet, "/", nil), employeeClaims())
		w := httptest.NewRecorder()
		RequireHR(next)(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("No Claims Forbidden", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		RequireHR(next)(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
