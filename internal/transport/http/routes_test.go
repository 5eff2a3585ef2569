package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

const singlePuzzle = "53..7...." +
	"6..195..." +
	".98....6." +
	"8...6...3" +
	"4..8.3..1" +
	"7...2...6" +
	".6....28." +
	"...419..5" +
	"....8..79"

// hiddenSinglePuzzle stalls with naked singles alone.
const hiddenSinglePuzzle = "200080300" +
	"060070084" +
	"030500209" +
	"000105408" +
	"000000000" +
	"402706000" +
	"301007040" +
	"720040060" +
	"004010003"

const solvedPuzzle = "534678912" +
	"672195348" +
	"198342567" +
	"859761423" +
	"426853791" +
	"713924856" +
	"961537284" +
	"287419635" +
	"345286179"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status field = %v, want ok", body["status"])
	}
}

func TestSolveNextHandlerReturnsAMove(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/solve/next", solveRequest{Puzzle: singlePuzzle})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Move *struct {
			Technique string `json:"technique"`
		} `json:"move"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Move == nil {
		t.Fatal("expected a move, got nil")
	}
}

func TestSolveNextHandlerRejectsMalformedPuzzle(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/solve/next", solveRequest{Puzzle: "too-short"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSolveAllHandlerSolvesAnEasyPuzzle(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/solve/all", solveRequest{Puzzle: singlePuzzle})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Outcome string `json:"outcome"`
		Moves   []any  `json:"moves"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Outcome != "solved" {
		t.Fatalf("outcome = %q, want solved", body.Outcome)
	}
	if len(body.Moves) == 0 {
		t.Fatal("expected at least one move")
	}
}

func TestSolveAllHandlerRespectsTechniqueRestriction(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/solve/all", solveRequest{
		Puzzle:     hiddenSinglePuzzle,
		Techniques: []string{"naked-single"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Outcome string `json:"outcome"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Outcome == "solved" {
		t.Fatal("expected this puzzle to require more than naked singles")
	}
}

func TestValidateHandler(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/validate", validateRequest{Puzzle: solvedPuzzle})
	var body struct {
		Valid  bool `json:"valid"`
		Solved bool `json:"solved"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Valid || !body.Solved {
		t.Fatalf("expected valid+solved, got %+v", body)
	}

	w = doJSON(t, r, http.MethodPost, "/api/validate", validateRequest{Puzzle: singlePuzzle})
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Valid || body.Solved {
		t.Fatalf("expected valid+unsolved, got %+v", body)
	}
}

func TestTechniqueHandler(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/technique/naked-single", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/technique/does-not-exist", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
