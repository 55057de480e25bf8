package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tripfolio/internal/domain"
	"tripfolio/internal/handler"
	"tripfolio/internal/middleware"
	"tripfolio/internal/service"
	"tripfolio/mocks"
)

const testUserID = "user_abc"

func strPtr(s string) *string { return &s }

// setupTripRouter wires the trip handler behind stub auth middleware that
// injects a fixed subject.
func setupTripRouter(svc service.TripService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, testUserID)
		c.Next()
	})
	h := handler.NewTripHandler(svc)
	trips := r.Group("/api/v1/trips")
	{
		trips.POST("", h.Create)
		trips.GET("", h.List)
		trips.GET("/export", h.Export)
		trips.GET("/:id", h.GetByID)
		trips.PATCH("/:id", h.Update)
		trips.DELETE("/:id", h.Delete)
	}
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestTripHandler_Create(t *testing.T) {
	svc := new(mocks.MockTripService)
	router := setupTripRouter(svc)

	created := &domain.Trip{
		ID:        uuid.New(),
		UserID:    testUserID,
		Name:      "Tokyo 2026",
		StartDate: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC),
	}
	svc.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(in service.CreateTripInput) bool {
		return in.Name == "Tokyo 2026"
	})).Return(created, nil)

	body := `{"name":"Tokyo 2026","startDate":"2026-03-20T00:00:00Z","endDate":"2026-04-03T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	var got domain.Trip
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Tokyo 2026", got.Name)
	svc.AssertExpectations(t)
}

func TestTripHandler_Create_InvalidBody(t *testing.T) {
	svc := new(mocks.MockTripService)
	router := setupTripRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_BODY", env.Error.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestTripHandler_Create_ValidationDetails(t *testing.T) {
	svc := new(mocks.MockTripService)
	router := setupTripRouter(svc)

	ve := domain.NewValidationError()
	ve.Add("name", "trip name is required")
	ve.Add("endDate", "end date must be on or after start date")
	svc.On("Create", mock.Anything, testUserID, mock.Anything).Return(nil, ve)

	body := `{"name":"","startDate":"2026-06-10T00:00:00Z","endDate":"2026-06-01T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "trip name is required", env.Error.Details["name"])
	assert.Equal(t, "end date must be on or after start date", env.Error.Details["endDate"])
}

func TestTripHandler_List(t *testing.T) {
	svc := new(mocks.MockTripService)
	router := setupTripRouter(svc)

	svc.On("List", mock.Anything, testUserID).Return([]domain.Trip{
		{ID: uuid.New(), Name: "Lisbon"},
		{ID: uuid.New(), Name: "Oslo"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var got []domain.Trip
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 2)
}

func TestTripHandler_Get_NotFound(t *testing.T) {
	svc := new(mocks.MockTripService)
	router := setupTripRouter(svc)

	tripID := uuid.New()
	svc.On("Get", mock.Anything, testUserID, tripID).Return(nil, domain.ErrTripNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/"+tripID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestTripHandler_Get_InvalidID(t *testing.T) {
	svc := new(mocks.MockTripService)
	router := setupTripRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
	svc.AssertNotCalled(t, "Get")
}

func TestTripHandler_Update(t *testing.T) {
	svc := new(mocks.MockTripService)
	router := setupTripRouter(svc)

	tripID := uuid.New()
	updated := &domain.Trip{ID: tripID, UserID: testUserID, Name: "Renamed"}
	svc.On("Update", mock.Anything, testUserID, tripID, mock.MatchedBy(func(in service.UpdateTripInput) bool {
		return in.Name != nil && *in.Name == "Renamed" && in.StartDate == nil
	})).Return(updated, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/trips/"+tripID.String(),
		bytes.NewBufferString(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var got domain.Trip
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Renamed", got.Name)
	svc.AssertExpectations(t)
}

func TestTripHandler_Delete(t *testing.T) {
	svc := new(mocks.MockTripService)
	router := setupTripRouter(svc)

	tripID := uuid.New()
	svc.On("Delete", mock.Anything, testUserID, tripID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/trips/"+tripID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestTripHandler_Delete_NotFound(t *testing.T) {
	svc := new(mocks.MockTripService)
	router := setupTripRouter(svc)

	tripID := uuid.New()
	svc.On("Delete", mock.Anything, testUserID, tripID).Return(domain.ErrTripNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/trips/"+tripID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTripHandler_Export(t *testing.T) {
	svc := new(mocks.MockTripService)
	router := setupTripRouter(svc)

	svc.On("List", mock.Anything, testUserID).Return([]domain.Trip{
		{ID: uuid.New(), Name: "Lisbon", Description: strPtr("food tour")},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "trips.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestTripHandler_MissingUserContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.MockTripService)
	h := handler.NewTripHandler(svc)
	r.GET("/api/v1/trips", h.List)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "List")
}
