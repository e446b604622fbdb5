package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/submission"
)

const maxFormMemory = 1 << 20

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	contentType := r.Header.Get("Content-Type")
	var err error
	if strings.HasPrefix(contentType, "multipart/form-data") {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		logger.Warn("api: submit form parse failed", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not parse form data"})
		return
	}

	form := submission.FormInput{
		AdmissionType:   r.PostFormValue("admissionType"),
		Countries:       r.PostForm["countries"],
		Programs:        r.PostForm["programs"],
		ProgramLanguage: r.PostFormValue("programLanguage"),
		Grades:          r.PostFormValue("grades"),
		LanguageExam:    r.PostFormValue("languageExam"),
		ExamScore:       r.PostFormValue("examScore"),
		Budget:          r.PostFormValue("budget"),
		Email:           r.PostFormValue("email"),
	}
	logger.Info("api: submission received", "countries", len(form.Countries), "programs", len(form.Programs))

	sub, err := s.service.Submit(r.Context(), form)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, submitResponse{Success: true, ID: sub.ID})
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if email := strings.TrimSpace(r.URL.Query().Get("email")); email != "" {
		subs, err := s.service.ForEmail(ctx, email)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"submissions": subs})
		return
	}
	subs, err := s.service.All(ctx)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"submissions": subs})
}

func (s *Server) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sub, err := s.service.Get(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if sub == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "submission not found"})
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) handleProgramPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, planResponse{Error: fmt.Sprintf("invalid program index: %v", err)})
		return
	}
	plan, err := s.service.GeneratePlanForProgram(r.Context(), id, index)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, planResponse{Success: true, Plan: plan})
}
