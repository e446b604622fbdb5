package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/studyway/studyway/internal/advisor"
	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/llm"
	"github.com/studyway/studyway/internal/model"
	"github.com/studyway/studyway/internal/submission"
)

// SubmissionService is the orchestration surface the handlers call.
// *submission.Service satisfies it; tests substitute a stub.
type SubmissionService interface {
	Submit(ctx context.Context, form submission.FormInput) (*model.Submission, error)
	Get(ctx context.Context, id string) (*model.Submission, error)
	ForEmail(ctx context.Context, email string) ([]model.Submission, error)
	All(ctx context.Context) ([]model.Submission, error)
	GeneratePlanForProgram(ctx context.Context, submissionID string, index int) (*model.AdmissionPlan, error)
}

// InfoPipeline covers the request-scoped auxiliary generators.
type InfoPipeline interface {
	GenerateHousingOptions(ctx context.Context, university, city, country string) ([]model.HousingOption, error)
	GenerateCountryInfo(ctx context.Context, country string) (*model.CountryInfo, error)
	GenerateDocumentGuide(ctx context.Context, country, documentType string) (*model.DocumentGuide, error)
}

type Server struct {
	router  chi.Router
	service SubmissionService
	info    InfoPipeline
}

func NewServer(service SubmissionService, info InfoPipeline) *Server {
	srv := &Server{
		router:  chi.NewRouter(),
		service: service,
		info:    info,
	}
	srv.routes()
	common.Logger().Info("api: server ready")
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/v1/submissions", s.handleSubmit)
	s.router.Get("/v1/submissions", s.handleListSubmissions)
	s.router.Get("/v1/submissions/{id}", s.handleGetSubmission)
	s.router.Post("/v1/submissions/{id}/programs/{index}/plan", s.handleProgramPlan)
	s.router.Get("/v1/housing", s.handleHousing)
	s.router.Get("/v1/countries/{country}", s.handleCountryInfo)
	s.router.Get("/v1/documents", s.handleDocumentGuide)
	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeFailure maps pipeline errors onto HTTP statuses and user-safe
// messages. Raw parser and upstream errors stay in the server log.
func writeFailure(w http.ResponseWriter, err error) {
	logger := common.Logger()
	var (
		validation *advisor.ValidationError
		notFound   *advisor.NotFoundError
		upstream   *advisor.UpstreamError
		parse      *advisor.ParseError
		invalid    *advisor.InvalidResponseError
	)
	switch {
	case errors.As(err, &validation):
		logger.Warn("request rejected", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validation.Message})
	case errors.As(err, &notFound):
		logger.Warn("resource missing", "error", err)
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFound.Error()})
	case errors.Is(err, llm.ErrNotConfigured):
		logger.Error("request failed: llm not configured")
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: llm.ErrNotConfigured.Error()})
	case errors.As(err, &upstream):
		logger.Error("upstream failure", "status", upstream.Status, "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: upstream.UserMessage()})
	case errors.As(err, &parse):
		logger.Error("unparseable model output", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "The AI service returned an unreadable response. Please try again."})
	case errors.As(err, &invalid):
		logger.Error("invalid model output", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: invalid.Message})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to process your request. Please try again."})
	}
}
