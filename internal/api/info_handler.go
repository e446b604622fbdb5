package api

import (
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"
)

func (s *Server) handleHousing(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	university := strings.TrimSpace(query.Get("university"))
	city := strings.TrimSpace(query.Get("city"))
	country := strings.TrimSpace(query.Get("country"))
	if university == "" || country == "" {
		writeJSON(w, http.StatusBadRequest, housingResponse{Error: "university and country are required"})
		return
	}
	options, err := s.info.GenerateHousingOptions(r.Context(), university, city, country)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, housingResponse{Success: true, Options: options})
}

func (s *Server) handleCountryInfo(w http.ResponseWriter, r *http.Request) {
	country := strings.TrimSpace(chi.URLParam(r, "country"))
	if country == "" {
		writeJSON(w, http.StatusBadRequest, countryResponse{Error: "country is required"})
		return
	}
	info, err := s.info.GenerateCountryInfo(r.Context(), country)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countryResponse{Success: true, Info: info})
}

func (s *Server) handleDocumentGuide(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	country := strings.TrimSpace(query.Get("country"))
	documentType := strings.TrimSpace(query.Get("type"))
	if country == "" || documentType == "" {
		writeJSON(w, http.StatusBadRequest, documentResponse{Error: "country and type are required"})
		return
	}
	guide, err := s.info.GenerateDocumentGuide(r.Context(), country, documentType)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, documentResponse{Success: true, Guide: guide})
}
