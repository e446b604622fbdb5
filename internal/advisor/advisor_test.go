package advisor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/studyway/studyway/internal/llm"
	"github.com/studyway/studyway/internal/model"
)

type mockProvider struct {
	mu           sync.Mutex
	responses    []string
	err          error
	chatCalls    int
	lastMessages []llm.Message
	lastOpts     llm.Options
}

func (m *mockProvider) Chat(ctx context.Context, messages []llm.Message, opts llm.Options) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatCalls++
	m.lastMessages = append([]llm.Message(nil), messages...)
	m.lastOpts = opts
	if m.err != nil {
		return "", m.err
	}
	if len(m.responses) == 0 {
		return "{}", nil
	}
	resp := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return resp, nil
}

func (m *mockProvider) Name() string { return "mock" }

type stubSearcher struct {
	mu             sync.Mutex
	configured     bool
	results        []model.SearchResult
	imageURL       string
	admissionCalls int
	documentTypes  []string
}

func (s *stubSearcher) Configured() bool { return s.configured }

func (s *stubSearcher) AdmissionInfo(ctx context.Context, university, program, country string) []model.SearchResult {
	s.mu.Lock()
	s.admissionCalls++
	s.mu.Unlock()
	return s.results
}

func (s *stubSearcher) ProgramStructure(ctx context.Context, university, program string) []model.SearchResult {
	return s.results
}

func (s *stubSearcher) AdmissionRequirements(ctx context.Context, university, program, country string) []model.SearchResult {
	return s.results
}

func (s *stubSearcher) StudentHousing(ctx context.Context, university, city, country string) []model.SearchResult {
	return s.results
}

func (s *stubSearcher) CountryCosts(ctx context.Context, country string) []model.SearchResult {
	return s.results
}

func (s *stubSearcher) CountryAdvantages(ctx context.Context, country string) []model.SearchResult {
	return s.results
}

func (s *stubSearcher) DocumentRequirements(ctx context.Context, country, documentType string) []model.SearchResult {
	s.mu.Lock()
	s.documentTypes = append(s.documentTypes, documentType)
	s.mu.Unlock()
	return s.results
}

func (s *stubSearcher) UniversityImage(ctx context.Context, university, country string) string {
	return s.imageURL
}

func (s *stubSearcher) HousingImage(ctx context.Context, housingName, city, country string) string {
	return s.imageURL
}

func joinResults(results []model.SearchResult) string {
	var parts []string
	for _, r := range results {
		parts = append(parts, r.Title+" "+r.Snippet)
	}
	return strings.Join(parts, "\n")
}

func testInput() model.UserInput {
	return model.UserInput{
		AdmissionType:   model.AdmissionMaster,
		Countries:       []model.Country{model.CountryGermany, model.CountryAustria},
		Programs:        []model.ProgramField{"Computer Science & IT"},
		ProgramLanguage: model.LanguageEnglish,
		Grades:          "GPA 3.7",
		LanguageExam:    model.ExamIELTS,
		ExamScore:       "7.0",
		Budget:          model.BudgetFree,
		Email:           "student@example.com",
	}
}

const recommendationJSON = `{
	"programs": [
		{
			"name": "MSc Computer Science",
			"field": "Computer Science & IT",
			"university": "Technical University of Munich",
			"country": "Germany",
			"language": "English",
			"category": "Realistic",
			"reason": "strong fit",
			"tuitionFee": "€15,000 per year",
			"websiteUrl": "https://wrong.example/"
		},
		{
			"name": "MSc Software Engineering",
			"field": "Computer Science & IT",
			"university": "Unknown Tech Institute",
			"country": "Germany",
			"language": "English",
			"category": "Ambitious",
			"reason": "reach option"
		}
	]
}`

func TestGenerateAdmissionPlanEnrichesPrograms(t *testing.T) {
	provider := &mockProvider{responses: []string{recommendationJSON}}
	searcher := &stubSearcher{
		configured: true,
		results:    []model.SearchResult{{Title: "TUM admissions", Link: "https://www.tum.de", Snippet: "deadline May 31"}},
		imageURL:   "https://images.example/campus.jpg",
	}
	a := New(provider, searcher, joinResults)

	resp, err := a.GenerateAdmissionPlan(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate admission plan: %v", err)
	}
	if len(resp.Programs) != 2 {
		t.Fatalf("expected 2 programs, got %d", len(resp.Programs))
	}
	tum := resp.Programs[0]
	if tum.WebsiteURL != "https://www.tum.de/en/" {
		t.Fatalf("verified website must replace model output, got %q", tum.WebsiteURL)
	}
	if tum.TuitionFee != "€0 (free tuition)" {
		t.Fatalf("verified tuition must replace model output, got %q", tum.TuitionFee)
	}
	if tum.ImageURL != "https://images.example/campus.jpg" {
		t.Fatalf("campus image not attached: %q", tum.ImageURL)
	}
	unknown := resp.Programs[1]
	if unknown.University != "Unknown Tech Institute" || unknown.Reason != "reach option" {
		t.Fatalf("unknown university must pass through: %+v", unknown)
	}
	// Two countries and one field: one admission search per combination.
	if searcher.admissionCalls != 2 {
		t.Fatalf("expected 2 admission searches, got %d", searcher.admissionCalls)
	}
	// Search snippets must reach the prompt.
	prompt := provider.lastMessages[len(provider.lastMessages)-1].Content
	if !strings.Contains(prompt, "deadline May 31") {
		t.Fatalf("prompt missing search snippet")
	}
	if !provider.lastOpts.JSONMode {
		t.Fatalf("recommendation call must request JSON mode")
	}
}

func TestGenerateAdmissionPlanStripsMarkdownFences(t *testing.T) {
	provider := &mockProvider{responses: []string{"```json\n" + recommendationJSON + "\n```"}}
	a := New(provider, &stubSearcher{}, joinResults)
	resp, err := a.GenerateAdmissionPlan(context.Background(), testInput())
	if err != nil {
		t.Fatalf("fenced response should parse: %v", err)
	}
	if len(resp.Programs) != 2 {
		t.Fatalf("expected 2 programs, got %d", len(resp.Programs))
	}
}

func TestGenerateAdmissionPlanRejectsMissingPrograms(t *testing.T) {
	provider := &mockProvider{responses: []string{`{"plan": null}`}}
	a := New(provider, &stubSearcher{}, joinResults)
	_, err := a.GenerateAdmissionPlan(context.Background(), testInput())
	var invalid *InvalidResponseError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}

func TestGenerateAdmissionPlanParseFailure(t *testing.T) {
	provider := &mockProvider{responses: []string{"I am sorry, I cannot produce JSON."}}
	a := New(provider, &stubSearcher{}, joinResults)
	_, err := a.GenerateAdmissionPlan(context.Background(), testInput())
	var parse *ParseError
	if !errors.As(err, &parse) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestGenerateAdmissionPlanUpstreamFailure(t *testing.T) {
	provider := &mockProvider{err: errors.New("connection reset")}
	a := New(provider, &stubSearcher{}, joinResults)
	_, err := a.GenerateAdmissionPlan(context.Background(), testInput())
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != 0 {
		t.Fatalf("network failure should carry status 0, got %d", upstream.Status)
	}
}

func TestGenerateAdmissionPlanWithoutProvider(t *testing.T) {
	a := New(nil, &stubSearcher{}, joinResults)
	if _, err := a.GenerateAdmissionPlan(context.Background(), testInput()); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if a.Configured() {
		t.Fatalf("advisor without provider must report unconfigured")
	}
}

const planJSON = `{
	"requirements": {
		"languageExams": ["IELTS 6.5"],
		"entranceExams": [],
		"videoEssay": false,
		"portfolio": false,
		"recommendationLetters": 2,
		"otherRequirements": ["motivation letter"]
	},
	"Now – 3 months": ["collect transcripts"],
	"3–6 months": ["take IELTS"],
	"Before deadlines": ["submit uni-assist application"]
}`

func TestGenerateProgramPlan(t *testing.T) {
	provider := &mockProvider{responses: []string{planJSON}}
	a := New(provider, &stubSearcher{configured: true, results: []model.SearchResult{{Title: "requirements", Snippet: "IELTS 6.5"}}}, joinResults)

	program := model.Program{Name: "MSc Computer Science", University: "TUM", Country: "Germany"}
	plan, err := a.GenerateProgramPlan(context.Background(), program, testInput())
	if err != nil {
		t.Fatalf("generate program plan: %v", err)
	}
	if len(plan.NowToThree) != 1 || len(plan.ThreeToSix) != 1 || len(plan.BeforeDeadlines) != 1 {
		t.Fatalf("unexpected timeline: %+v", plan)
	}
	if plan.Requirements == nil || plan.Requirements.RecommendationLetters != 2 {
		t.Fatalf("requirements not parsed: %+v", plan.Requirements)
	}
}

func TestGenerateProgramPlanRejectsMissingBucket(t *testing.T) {
	provider := &mockProvider{responses: []string{`{"Now – 3 months": [], "3–6 months": []}`}}
	a := New(provider, &stubSearcher{}, joinResults)
	_, err := a.GenerateProgramPlan(context.Background(), model.Program{University: "TUM"}, testInput())
	var invalid *InvalidResponseError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}

func TestGenerateProgramPlanNormalizesRequirements(t *testing.T) {
	provider := &mockProvider{responses: []string{`{"Now – 3 months": ["a"], "3–6 months": ["b"], "Before deadlines": ["c"]}`}}
	a := New(provider, &stubSearcher{}, joinResults)
	plan, err := a.GenerateProgramPlan(context.Background(), model.Program{University: "TUM"}, testInput())
	if err != nil {
		t.Fatalf("generate program plan: %v", err)
	}
	if plan.Requirements == nil || plan.Requirements.LanguageExams == nil {
		t.Fatalf("missing requirements must be normalized: %+v", plan.Requirements)
	}
}
