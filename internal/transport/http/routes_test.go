package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

const easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

func TestHealthHandler(t *testing.T) {
	r := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status field = %v, want ok", body["status"])
	}
}

func TestDeduceHandler(t *testing.T) {
	r := setupRouter()
	payload, _ := json.Marshal(DeduceRequest{Puzzle: easyPuzzle})
	req := httptest.NewRequest(http.MethodPost, "/api/deduce", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if solved, _ := body["solved"].(bool); !solved {
		t.Fatalf("solved = %v, want true", body["solved"])
	}
	if level, _ := body["level"].(float64); level != 1 {
		t.Fatalf("level = %v, want 1", body["level"])
	}
}

func TestDeduceHandlerMalformed(t *testing.T) {
	r := setupRouter()
	payload, _ := json.Marshal(DeduceRequest{Puzzle: "short"})
	req := httptest.NewRequest(http.MethodPost, "/api/deduce", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestEvaluateHandler(t *testing.T) {
	r := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/evaluate/"+easyPuzzle, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if label, _ := body["label"].(string); label != "easy" {
		t.Fatalf("label = %v, want easy", body["label"])
	}
}

func TestGenerateHandler(t *testing.T) {
	r := setupRouter()
	payload, _ := json.Marshal(GenerateRequest{Seed: 42})
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	puzzle, _ := body["puzzle"].(string)
	if len(puzzle) != 81 {
		t.Fatalf("puzzle length = %d, want 81", len(puzzle))
	}
}
