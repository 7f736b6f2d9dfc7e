package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"livequiz-service/internal/app"
	"livequiz-service/internal/domain"
)

// APIHandler exposes the session lifecycle over REST.
type APIHandler struct {
	service *app.SessionService
}

func NewAPIHandler(service *app.SessionService) *APIHandler {
	return &APIHandler{service: service}
}

// NewRouter wires the REST API and the websocket event stream.
func NewRouter(service *app.SessionService, hub *Hub) *mux.Router {
	api := NewAPIHandler(service)
	ws := NewWSHandler(service, hub)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/ws", ws.ServeWS)

	s := r.PathPrefix("/api").Subrouter()
	s.HandleFunc("/sessions", api.CreateSession).Methods(http.MethodPost)
	s.HandleFunc("/sessions/{id}", api.GetSession).Methods(http.MethodGet)
	s.HandleFunc("/sessions/{id}", api.DeleteSession).Methods(http.MethodDelete)
	s.HandleFunc("/sessions/{id}/start", api.StartSession).Methods(http.MethodPost)
	s.HandleFunc("/sessions/{id}/answers", api.SubmitAnswer).Methods(http.MethodPost)
	s.HandleFunc("/sessions/{id}/finish", api.FinishSession).Methods(http.MethodPost)
	s.HandleFunc("/sessions/{id}/result", api.GetSessionResult).Methods(http.MethodGet)
	return r
}

type createSessionRequest struct {
	HostID       string   `json:"hostId"`
	QuizID       string   `json:"quizId"`
	Participants []string `json:"participants"`
}

type submitAnswerRequest struct {
	ParticipantID   string   `json:"participantId"`
	QuestionIndex   int      `json:"questionIndex"`
	SelectedOptions []string `json:"selectedOptions"`
	TimeTakenMillis int64    `json:"timeTakenMillis"`
}

type submitAnswerResponse struct {
	Correct bool `json:"correct"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *APIHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidSession)
		return
	}
	session, err := h.service.CreateSession(r.Context(), req.HostID, req.QuizID, req.Participants)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *APIHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *APIHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.StartSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidSubmission)
		return
	}
	correct, err := h.service.SubmitAnswer(r.Context(), mux.Vars(r)["id"], req.ParticipantID, req.QuestionIndex, req.SelectedOptions, req.TimeTakenMillis)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, submitAnswerResponse{Correct: correct})
}

func (h *APIHandler) FinishSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.FinishSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) GetSessionResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.FetchSessionResult(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, message := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		message = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: message})
}

// statusForError maps the domain error taxonomy onto HTTP statuses:
// not-found 404, caller mistakes 400, conflicts and aggregation failures 409.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrQuizNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidSubmission), errors.Is(err, domain.ErrInvalidSession):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrDuplicateAnswer),
		errors.Is(err, domain.ErrSessionAlreadyStarted),
		errors.Is(err, domain.ErrSessionNotStarted),
		errors.Is(err, domain.ErrNoResponses):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
