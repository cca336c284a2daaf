package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"svw.info/flowfinder/internal/domain"
	"svw.info/flowfinder/internal/usecase"
)

// Handler exposes the engine over JSON. The server holds no game state:
// challenges live with the caller, checks are stateless.
type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/challenge", h.handleChallenge).Methods(http.MethodPost)
	r.HandleFunc("/api/check", h.handleCheck).Methods(http.MethodPost)
	r.HandleFunc("/api/patterns", h.handlePatterns).Methods(http.MethodGet)
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Challenge ----

type challengeReq struct {
	Level   int   `json:"level"`
	Premium bool  `json:"premium,omitempty"`
	Seed    int64 `json:"seed,omitempty"`
}

type challengeResp struct {
	Challenge  *domain.GameChallenge `json:"challenge,omitempty"`
	DurationMs int64                 `json:"durationMs,omitempty"`
	Decoys     int                   `json:"decoys,omitempty"`
	Error      string                `json:"error,omitempty"`
}

func (h *Handler) handleChallenge(w http.ResponseWriter, r *http.Request) {
	var req challengeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, challengeResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Level < 1 {
		writeJSON(w, http.StatusBadRequest, challengeResp{Error: "level must be >= 1"})
		return
	}
	ch, st, err := h.UC.Generate(r.Context(), req.Seed, req.Level, req.Premium)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, challengeResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, challengeResp{
		Challenge:  ch,
		DurationMs: st.Duration.Milliseconds(),
		Decoys:     st.Decoys,
	})
}

// ---- Check ----

type checkReq struct {
	PatternID string                  `json:"patternId"`
	Elements  []domain.PatternElement `json:"elements"`
}

type checkResp struct {
	Match bool   `json:"match"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, checkResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	pattern, err := h.UC.PatternByID(r.Context(), req.PatternID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, checkResp{Error: err.Error()})
		return
	}
	ok, err := h.UC.CheckMatch(r.Context(), req.Elements, pattern)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, checkResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, checkResp{Match: ok})
}

// ---- Patterns ----

type patternMeta struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	UserLevel  int                    `json:"userLevel"`
	Load       int                    `json:"load"`
	Dimensions []domain.DimensionKind `json:"dimensions"`
}

type patternsResp struct {
	Patterns []patternMeta `json:"patterns"`
	Error    string        `json:"error,omitempty"`
}

func (h *Handler) handlePatterns(w http.ResponseWriter, r *http.Request) {
	level := 1
	if s := r.URL.Query().Get("level"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, patternsResp{Error: "invalid level"})
			return
		}
		level = n
	}
	ps, err := h.UC.Patterns(r.Context(), level)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, patternsResp{Error: err.Error()})
		return
	}
	out := make([]patternMeta, 0, len(ps))
	for i := range ps {
		out = append(out, patternMeta{
			ID:         ps[i].ID,
			Name:       ps[i].Name,
			UserLevel:  ps[i].UserLevel,
			Load:       ps[i].Complexity.Load,
			Dimensions: ps[i].Complexity.Dimensions,
		})
	}
	writeJSON(w, http.StatusOK, patternsResp{Patterns: out})
}

// ---- Health ----

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
