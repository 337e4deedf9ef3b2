package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSavedActService scripted SavedActService
type fakeSavedActService struct {
	saveResult   *models.SavedAct
	saveErr      error
	listResult   []models.SavedAct
	listErr      error
	removeResult bool
	removeErr    error
	isSaved      bool
	count        int64
}

func (f *fakeSavedActService) SaveActForUser(userEmail, userFirstName string, actID int) (*models.SavedAct, error) {
	return f.saveResult, f.saveErr
}

func (f *fakeSavedActService) GetSavedActsByUser(userEmail string) ([]models.SavedAct, error) {
	return f.listResult, f.listErr
}

func (f *fakeSavedActService) RemoveSavedAct(userEmail string, actID int) (bool, error) {
	return f.removeResult, f.removeErr
}

func (f *fakeSavedActService) IsActSavedByUser(userEmail string, actID int) (bool, error) {
	return f.isSaved, nil
}

func (f *fakeSavedActService) GetSavedActsCountByUser(userEmail string) (int64, error) {
	return f.count, nil
}

func setupSavedActRouter(service services.SavedActService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := NewSavedActController(service)
	r.POST("/api/saved-acts", c.Save)
	r.GET("/api/saved-acts/user/:userEmail", c.List)
	r.DELETE("/api/saved-acts/user/:userEmail/act/:actId", c.Remove)
	r.GET("/api/saved-acts/user/:userEmail/act/:actId/is-saved", c.IsSaved)
	r.GET("/api/saved-acts/user/:userEmail/count", c.Count)
	return r
}

func postSavedAct(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/saved-acts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveEndpoint(t *testing.T) {
	service := &fakeSavedActService{
		saveResult: &models.SavedAct{
			ID:            1,
			UserEmail:     "a@x.com",
			UserFirstName: "Anya",
			ActID:         7,
			Title:         "Contract Act",
			SavedAt:       time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	r := setupSavedActRouter(service)

	w := postSavedAct(t, r, gin.H{"userEmail": "a@x.com", "userFirstName": "Anya", "actId": 7})

	assert.Equal(t, http.StatusOK, w.Code)
	var saved models.SavedAct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, 1, saved.ID)
	assert.Equal(t, "Contract Act", saved.Title)
	assert.False(t, saved.SavedAt.IsZero())
}

func TestSaveEndpointMissingFields(t *testing.T) {
	r := setupSavedActRouter(&fakeSavedActService{})

	w := postSavedAct(t, r, gin.H{"userEmail": "a@x.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveEndpointAlreadySaved(t *testing.T) {
	r := setupSavedActRouter(&fakeSavedActService{saveErr: services.ErrActAlreadySaved})

	w := postSavedAct(t, r, gin.H{"userEmail": "a@x.com", "userFirstName": "Anya", "actId": 7})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already saved")
}

func TestSaveEndpointActNotFound(t *testing.T) {
	r := setupSavedActRouter(&fakeSavedActService{saveErr: services.ErrActNotFound})

	w := postSavedAct(t, r, gin.H{"userEmail": "a@x.com", "userFirstName": "Anya", "actId": 99})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestSaveEndpointUpstreamUnavailable(t *testing.T) {
	r := setupSavedActRouter(&fakeSavedActService{saveErr: services.ErrActsServiceUnavailable})

	w := postSavedAct(t, r, gin.H{"userEmail": "a@x.com", "userFirstName": "Anya", "actId": 7})

	// infrastructure failures stay opaque to the caller
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "unavailable")
}

func TestListEndpoint(t *testing.T) {
	service := &fakeSavedActService{
		listResult: []models.SavedAct{
			{ID: 2, ActID: 8, UserEmail: "a@x.com"},
			{ID: 1, ActID: 7, UserEmail: "a@x.com"},
		},
	}
	r := setupSavedActRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/saved-acts/user/a@x.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var savedActs []models.SavedAct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &savedActs))
	require.Len(t, savedActs, 2)
	assert.Equal(t, 8, savedActs[0].ActID)
}

func TestListEndpointEmpty(t *testing.T) {
	// a user with nothing saved gets [], never null
	r := setupSavedActRouter(&fakeSavedActService{listResult: nil})

	req := httptest.NewRequest(http.MethodGet, "/api/saved-acts/user/nobody@x.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSaveEndpointActIDZero(t *testing.T) {
	// actId 0 is a present value; it must reach the lookup and fail there,
	// not be rejected as a missing field
	r := setupSavedActRouter(&fakeSavedActService{saveErr: services.ErrActNotFound})

	w := postSavedAct(t, r, gin.H{"userEmail": "a@x.com", "userFirstName": "Anya", "actId": 0})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestRemoveEndpoint(t *testing.T) {
	r := setupSavedActRouter(&fakeSavedActService{removeResult: true})

	req := httptest.NewRequest(http.MethodDelete, "/api/saved-acts/user/a@x.com/act/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "removed")
}

func TestRemoveEndpointAbsent(t *testing.T) {
	r := setupSavedActRouter(&fakeSavedActService{removeResult: false})

	req := httptest.NewRequest(http.MethodDelete, "/api/saved-acts/user/a@x.com/act/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIsSavedEndpoint(t *testing.T) {
	r := setupSavedActRouter(&fakeSavedActService{isSaved: true})

	req := httptest.NewRequest(http.MethodGet, "/api/saved-acts/user/a@x.com/act/7/is-saved", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isSaved":true}`, w.Body.String())
}

func TestCountEndpoint(t *testing.T) {
	r := setupSavedActRouter(&fakeSavedActService{count: 3})

	req := httptest.NewRequest(http.MethodGet, "/api/saved-acts/user/a@x.com/count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":3}`, w.Body.String())
}
