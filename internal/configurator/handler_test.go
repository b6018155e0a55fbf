package configurator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(service *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewHandler(service)
	r.GET("/configurator/state", h.State)
	r.POST("/configurator/next", h.Next)
	r.POST("/configurator/previous", h.Previous)
	r.POST("/configurator/jump", h.Jump)
	r.POST("/configurator/advance", h.Advance)
	r.POST("/configurator/dismiss", h.Dismiss)

	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNextEndpointReportsUnmetMinimum(t *testing.T) {
	backend := newStubBackend()
	backend.counts["Vorspeise"] = 1
	r := setupTestRouter(newTestService(backend))

	w := postJSON(t, r, "/configurator/next", gin.H{"menu": 1})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "mindestens 2 Vorspeise") {
		t.Fatalf("validation message missing: %s", w.Body.String())
	}
}

func TestNextEndpointAdvancesWhenSatisfied(t *testing.T) {
	backend := newStubBackend()
	backend.counts["Vorspeise"] = 2
	r := setupTestRouter(newTestService(backend))

	w := postJSON(t, r, "/configurator/next", gin.H{"menu": 1})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"step":1`) {
		t.Fatalf("expected step 1 in response: %s", w.Body.String())
	}
}

func TestPreviousAndJumpEndpoints(t *testing.T) {
	backend := newStubBackend()
	backend.counts["Vorspeise"] = 2
	r := setupTestRouter(newTestService(backend))

	postJSON(t, r, "/configurator/next", gin.H{"menu": 1})

	w := postJSON(t, r, "/configurator/previous", gin.H{"menu": 1})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"step":0`) {
		t.Fatalf("previous failed: %d %s", w.Code, w.Body.String())
	}

	w = postJSON(t, r, "/configurator/jump", gin.H{"menu": 1, "step": 1})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"step":1`) {
		t.Fatalf("jump failed: %d %s", w.Code, w.Body.String())
	}

	w = postJSON(t, r, "/configurator/jump", gin.H{"menu": 1, "step": 0})
	if w.Code != http.StatusOK {
		t.Fatalf("jump back failed: %d %s", w.Code, w.Body.String())
	}
}

func TestAdvanceAndDismissEndpoints(t *testing.T) {
	backend := newStubBackend()
	backend.counts["Vorspeise"] = 2
	r := setupTestRouter(newTestService(backend))

	w := postJSON(t, r, "/configurator/dismiss", gin.H{"menu": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("dismiss failed: %d %s", w.Code, w.Body.String())
	}

	w = postJSON(t, r, "/configurator/advance", gin.H{"menu": 1})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"step":1`) {
		t.Fatalf("advance failed: %d %s", w.Code, w.Body.String())
	}
}
