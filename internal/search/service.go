package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/model"
)

// Service issues the domain-specific queries the pipeline needs. Every
// method is best-effort: failures and missing configuration degrade to empty
// results and are only logged, never propagated.
type Service struct {
	client *Client
}

func NewService(client *Client) *Service {
	return &Service{client: client}
}

// Configured reports whether real-time search is available.
func (s *Service) Configured() bool {
	return s != nil && s.client.Configured()
}

func (s *Service) run(ctx context.Context, label, query string, num int) []model.SearchResult {
	if !s.Configured() {
		common.Logger().Debug("search: key not configured, skipping", "label", label)
		return nil
	}
	results, err := s.client.Search(ctx, query, num)
	if err != nil {
		common.Logger().Warn("search: query failed", "label", label, "error", err)
		return nil
	}
	return results
}

// AdmissionInfo finds admission requirements, deadlines, and contacts for a
// program in a country. University may be empty for broad field searches.
func (s *Service) AdmissionInfo(ctx context.Context, university, program, country string) []model.SearchResult {
	query := strings.TrimSpace(fmt.Sprintf("%s %s admission requirements deadlines %s 2026", university, program, country))
	return s.run(ctx, "admission_info", query, 10)
}

// ProgramStructure finds curriculum and module breakdowns.
func (s *Service) ProgramStructure(ctx context.Context, university, program string) []model.SearchResult {
	query := fmt.Sprintf("%s %s curriculum courses modules structure", university, program)
	return s.run(ctx, "program_structure", query, 5)
}

// AdmissionRequirements targets the entry-requirement details (grades, exam
// scores, video essays, documents) of one specific program.
func (s *Service) AdmissionRequirements(ctx context.Context, university, program, country string) []model.SearchResult {
	query := fmt.Sprintf("%s %s admission requirements GPA exam scores video essay resume CV %s 2026", university, program, country)
	return s.run(ctx, "admission_requirements", query, 10)
}

// StudentHousing finds dormitories and student residences near a university.
func (s *Service) StudentHousing(ctx context.Context, university, city, country string) []model.SearchResult {
	query := fmt.Sprintf("%s %s %s student housing dormitory accommodation residence hall 2026", university, city, country)
	return s.run(ctx, "student_housing", query, 10)
}

// CountryCosts finds cost-of-living data for students in a country.
func (s *Service) CountryCosts(ctx context.Context, country string) []model.SearchResult {
	query := fmt.Sprintf("%s student life cost of living 2026 accommodation food transport expenses university study", country)
	return s.run(ctx, "country_costs", query, 10)
}

// CountryAdvantages finds pros, cons, and benefits for international students.
func (s *Service) CountryAdvantages(ctx context.Context, country string) []model.SearchResult {
	query := fmt.Sprintf("%s study abroad advantages benefits challenges pros cons for international students", country)
	return s.run(ctx, "country_advantages", query, 10)
}

// DocumentRequirements finds application processes for visas, permits, and
// other student paperwork.
func (s *Service) DocumentRequirements(ctx context.Context, country, documentType string) []model.SearchResult {
	query := fmt.Sprintf("%s student %s requirements application process 2026", country, documentType)
	return s.run(ctx, "document_requirements", query, 10)
}

// FormatForPrompt renders search results as a numbered block suitable for
// embedding in an LLM prompt.
func FormatForPrompt(results []model.SearchResult) string {
	if len(results) == 0 {
		return "No search results available."
	}
	var b strings.Builder
	for i, result := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Result %d:\nTitle: %s\nURL: %s\nSnippet: %s", i+1, result.Title, result.Link, result.Snippet)
	}
	return b.String()
}
