package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiutdigital/clubportal/internal/config"
	"github.com/kiutdigital/clubportal/internal/idcard"
	"github.com/kiutdigital/clubportal/internal/member"
)

func newTestRouter(t *testing.T) (*gin.Engine, *member.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := member.NewMemoryStore()
	cfg := config.Config{}
	cfg.Assets.UploadRoot = t.TempDir()
	gen := idcard.NewGenerator(cfg, member.StoreAllocator{Store: store})

	r := gin.New()
	RegisterRoutes(r, NewHandler(store, gen, nil))
	return r, store
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyIDKnownMember(t *testing.T) {
	r, store := newTestRouter(t)
	m := &member.Member{
		FullName:       "Jane Wanjiru Otieno",
		MemberIDNumber: "DC-2024-0001",
		Status:         member.StatusStudent,
		CreatedAt:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(context.Background(), m))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/verify-id/DC-2024-0001", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "Jane Wanjiru Otieno", body["name"])
	assert.Equal(t, "student", body["status"])
	assert.Equal(t, "March 2024", body["member_since"])
}

func TestVerifyIDUnknownMember(t *testing.T) {
	r, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/verify-id/DC-2024-9999", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["valid"])
}

func TestDigitalIDGeneratesOnDemand(t *testing.T) {
	r, store := newTestRouter(t)
	m := &member.Member{
		FullName:  "Jane Wanjiru Otieno",
		Course:    "Computer Science",
		Status:    member.StatusStudent,
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(context.Background(), m))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/member/"+m.ID.String()+"/digital-id", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "DigitalClub_ID_DC-2024-0001_front.png")
	assert.NotEmpty(t, w.Body.Bytes())

	// The assigned ID number and path were persisted.
	saved, err := store.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "DC-2024-0001", saved.MemberIDNumber)
	assert.Equal(t, "DC-2024-0001_front.png", saved.DigitalIDPath)
}

func TestDigitalIDBadSide(t *testing.T) {
	r, store := newTestRouter(t)
	m := &member.Member{FullName: "Jane", Status: member.StatusStudent}
	require.NoError(t, store.Save(context.Background(), m))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/member/"+m.ID.String()+"/digital-id?side=sideways", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDigitalIDUnknownMember(t *testing.T) {
	r, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/member/9e8e7b1c-0c70-4a3e-bf80-1a7fca80a11a/digital-id", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegenerateEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	m := &member.Member{
		FullName:  "Jane Wanjiru Otieno",
		Status:    member.StatusStudent,
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(context.Background(), m))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/member/"+m.ID.String()+"/digital-id/regenerate", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "DC-2024-0001_front.png", body["front"])
	assert.Equal(t, "DC-2024-0001_back.png", body["back"])
}
