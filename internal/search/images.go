package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/studyway/studyway/internal/common"
)

// Tokens that mark an image URL as unusable for a campus card.
var rejectedURLTokens = []string{"logo", "icon", "avatar", "favicon"}

// Tokens that suggest the image actually shows a campus or building.
var preferredURLTokens = []string{"campus", "university", "building", "college"}

// UniversityImage finds a representative campus photo. Query variants are
// tried in descending specificity; within each variant the first hit whose
// URL passes the token heuristics wins, then the first syntactically valid
// URL of any variant, then "".
func (s *Service) UniversityImage(ctx context.Context, university, country string) string {
	if !s.Configured() {
		return ""
	}
	logger := common.Logger()
	queries := []string{
		fmt.Sprintf("%s %s campus building exterior architecture", university, country),
		fmt.Sprintf("%s %s university campus main building", university, country),
		fmt.Sprintf("%s %s campus aerial view", university, country),
		fmt.Sprintf("%s %s university building", university, country),
		fmt.Sprintf("%s %s campus", university, country),
		fmt.Sprintf("%s campus %s", university, country),
		fmt.Sprintf("%s %s", university, country),
	}
	var fallback string
	for _, query := range queries {
		images, err := s.client.SearchImages(ctx, query, 10)
		if err != nil {
			logger.Warn("search: image query failed", "query", query, "error", err)
			continue
		}
		for _, image := range images {
			candidate := image.BestURL()
			if !validImageURL(candidate) {
				continue
			}
			if fallback == "" {
				fallback = candidate
			}
			if acceptableCampusImage(candidate, image.HighQuality()) {
				logger.Debug("search: campus image found", "university", university, "url", candidate)
				return candidate
			}
		}
	}
	if fallback != "" {
		logger.Debug("search: using fallback image", "university", university, "url", fallback)
		return fallback
	}
	logger.Warn("search: no image found", "university", university, "variants", len(queries))
	return ""
}

// HousingImage finds a photo of one housing facility with a single query.
func (s *Service) HousingImage(ctx context.Context, housingName, city, country string) string {
	if !s.Configured() {
		return ""
	}
	query := fmt.Sprintf("%s %s %s student housing dormitory building exterior interior", housingName, city, country)
	images, err := s.client.SearchImages(ctx, query, 5)
	if err != nil {
		common.Logger().Warn("search: housing image query failed", "housing", housingName, "error", err)
		return ""
	}
	for _, image := range images {
		if candidate := image.BestURL(); validImageURL(candidate) {
			return candidate
		}
	}
	return ""
}

func validImageURL(raw string) bool {
	return strings.HasPrefix(raw, "http")
}

func acceptableCampusImage(raw string, highQuality bool) bool {
	lowered := strings.ToLower(raw)
	for _, token := range rejectedURLTokens {
		if strings.Contains(lowered, token) {
			return false
		}
	}
	if highQuality {
		return true
	}
	for _, token := range preferredURLTokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}
