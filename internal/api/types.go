package api

import "github.com/studyway/studyway/internal/model"

type errorResponse struct {
	Error string `json:"error"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type planResponse struct {
	Success bool                 `json:"success"`
	Plan    *model.AdmissionPlan `json:"plan,omitempty"`
	Error   string               `json:"error,omitempty"`
}

type housingResponse struct {
	Success bool                  `json:"success"`
	Options []model.HousingOption `json:"options,omitempty"`
	Error   string                `json:"error,omitempty"`
}

type countryResponse struct {
	Success bool               `json:"success"`
	Info    *model.CountryInfo `json:"info,omitempty"`
	Error   string             `json:"error,omitempty"`
}

type documentResponse struct {
	Success bool                 `json:"success"`
	Guide   *model.DocumentGuide `json:"guide,omitempty"`
	Error   string               `json:"error,omitempty"`
}
