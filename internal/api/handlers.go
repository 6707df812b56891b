package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ZaEvab55555/Advanced-Calculator/pkg/calc"
)

// version is set via -ldflags at build time
var version = "dev"

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
}

// errUnknownAction marks an action name outside the dispatch table.
var errUnknownAction = errors.New("unknown action")

// Response types

// HealthResponse is the response for /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is the response for /version.
type VersionResponse struct {
	Version string `json:"version"`
	Service string `json:"service"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EvaluateRequest is the request body for evaluating an expression.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse carries one successful evaluation plus the full history.
type EvaluateResponse struct {
	Expression string              `json:"expression"`
	Value      float64             `json:"value"`
	Result     string              `json:"result"`
	Entry      calc.HistoryEntry   `json:"entry"`
	History    []calc.HistoryEntry `json:"history"`
}

// ActionRequest is the request body for a display action. Value is the text
// currently shown in the entry box.
type ActionRequest struct {
	Value string `json:"value"`
}

// ActionResponse carries the rewritten entry text.
type ActionResponse struct {
	Display string `json:"display"`
}

// ModesResponse reports the display modes and their status-bar labels.
type ModesResponse struct {
	Fraction      bool   `json:"fraction"`
	Pi            bool   `json:"pi"`
	Angle         string `json:"angle"`
	FractionLabel string `json:"fraction_label"`
	PiLabel       string `json:"pi_label"`
	AngleLabel    string `json:"angle_label"`
}

// Handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{
		Version: version,
		Service: "advcalc",
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Expression == "" {
		writeError(w, http.StatusBadRequest, "Expression is required")
		return
	}

	result, err := s.session.Evaluate(req.Expression)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, EvaluateResponse{
		Expression: result.Expression,
		Value:      result.Value,
		Result:     result.Display,
		Entry:      result.Entry,
		History:    s.session.History(),
	})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")

	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	display, err := s.dispatchAction(action, req.Value)
	if err != nil {
		if errors.Is(err, errUnknownAction) {
			writeError(w, http.StatusBadRequest, "Unknown action: "+action)
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ActionResponse{Display: display})
}

func (s *Server) handleGetModes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, modesResponse(s.session.Modes()))
}

func (s *Server) handleToggleMode(w http.ResponseWriter, r *http.Request) {
	switch mode := chi.URLParam(r, "mode"); mode {
	case "fraction":
		s.session.ToggleFractionMode()
	case "pi":
		s.session.TogglePiMode()
	case "angle":
		s.session.ToggleAngleMode()
	default:
		writeError(w, http.StatusBadRequest, "Unknown mode: "+mode)
		return
	}

	writeJSON(w, http.StatusOK, modesResponse(s.session.Modes()))
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.History())
}

func (s *Server) handleDeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entries, err := s.session.DeleteHistory(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "History entry not found")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.ClearHistory())
}

// dispatchAction routes an action name to the session method that rewrites
// the entry value.
func (s *Server) dispatchAction(action, value string) (string, error) {
	switch action {
	case "scientific":
		return s.session.Scientific(value)
	case "square":
		return s.session.Square(value)
	case "reciprocal":
		return s.session.Reciprocal(value)
	case "factorize":
		return s.session.Factorize(value)
	case "totient":
		return s.session.Totient(value)
	case "primecount":
		return s.session.PrimeCount(value)
	case "floor":
		return s.session.Floor(value)
	case "ceil":
		return s.session.Ceil(value)
	case "deg-to-rad":
		return s.session.DegToRad(value)
	case "rad-to-deg":
		return s.session.RadToDeg(value)
	}
	return "", errUnknownAction
}

func modesResponse(m calc.Modes) ModesResponse {
	return ModesResponse{
		Fraction:      m.Fraction,
		Pi:            m.Pi,
		Angle:         m.Angle.String(),
		FractionLabel: m.FractionLabel(),
		PiLabel:       m.PiLabel(),
		AngleLabel:    m.AngleLabel(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
