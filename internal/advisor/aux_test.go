package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/studyway/studyway/internal/llm"
	"github.com/studyway/studyway/internal/model"
)

const housingJSON = `{
	"housingOptions": [
		{
			"name": "Studentenwerk Dorm",
			"address": "Arcisstraße 17, Munich",
			"cost": "€350/month",
			"availability": "waitlist",
			"contact": "wohnen@studentenwerk.example",
			"facilities": ["laundry", "kitchen"],
			"roomTypes": ["single"],
			"difficulty": "Hard"
		},
		{
			"name": "Private Shared Flat",
			"address": "Schwabing, Munich",
			"cost": "€650/month",
			"availability": "immediate",
			"contact": "via portal",
			"facilities": ["furnished"],
			"roomTypes": ["room in WG"],
			"difficulty": "Medium"
		}
	]
}`

func TestGenerateHousingOptions(t *testing.T) {
	provider := &mockProvider{responses: []string{housingJSON}}
	searcher := &stubSearcher{
		configured: true,
		results:    []model.SearchResult{{Title: "Munich housing", Snippet: "dorms near TUM"}},
		imageURL:   "https://images.example/dorm.jpg",
	}
	a := New(provider, searcher, joinResults)

	options, err := a.GenerateHousingOptions(context.Background(), "TUM", "Munich", "Germany")
	if err != nil {
		t.Fatalf("generate housing: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	for _, option := range options {
		if option.ImageURL != "https://images.example/dorm.jpg" {
			t.Fatalf("option %q missing image", option.Name)
		}
	}
	prompt := provider.lastMessages[len(provider.lastMessages)-1].Content
	if !strings.Contains(prompt, "dorms near TUM") {
		t.Fatalf("housing prompt missing search snippet")
	}
}

func TestGenerateHousingOptionsRejectsMissingList(t *testing.T) {
	provider := &mockProvider{responses: []string{`{}`}}
	a := New(provider, &stubSearcher{}, joinResults)
	_, err := a.GenerateHousingOptions(context.Background(), "TUM", "Munich", "Germany")
	var invalid *InvalidResponseError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}

func TestGenerateCountryInfo(t *testing.T) {
	provider := &mockProvider{responses: []string{`{
		"name": "Germany",
		"overview": "Strong public universities with no tuition fees.",
		"advantages": ["free tuition"],
		"benefitsForStudents": ["semester ticket"],
		"challenges": ["housing market"],
		"nuances": ["Anmeldung required"],
		"costOfLiving": {
			"accommodation": "€400-700",
			"food": "€200",
			"transport": "€49",
			"utilities": "€100",
			"entertainment": "€100",
			"healthInsurance": "€120",
			"totalMonthly": "€950-1,250"
		}
	}`}}
	a := New(provider, &stubSearcher{configured: true, results: []model.SearchResult{{Title: "costs", Snippet: "rent in Berlin"}}}, joinResults)

	info, err := a.GenerateCountryInfo(context.Background(), "Germany")
	if err != nil {
		t.Fatalf("generate country info: %v", err)
	}
	if info.Name != "Germany" || info.CostOfLiving.TotalMonthly != "€950-1,250" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestGenerateCountryInfoRejectsEmptyOverview(t *testing.T) {
	provider := &mockProvider{responses: []string{`{"name": "Germany"}`}}
	a := New(provider, &stubSearcher{}, joinResults)
	_, err := a.GenerateCountryInfo(context.Background(), "Germany")
	var invalid *InvalidResponseError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}

func TestGenerateDocumentGuideAliasesDocumentType(t *testing.T) {
	provider := &mockProvider{responses: []string{`{
		"documentType": "student visa",
		"country": "Germany",
		"overview": "National visa for study purposes.",
		"requirements": ["admission letter"],
		"documentsNeeded": ["passport"],
		"applicationSteps": ["book embassy appointment"],
		"processingTime": "6-12 weeks",
		"costs": "€75",
		"importantNotes": ["apply early"]
	}`}}
	searcher := &stubSearcher{configured: true, results: []model.SearchResult{{Title: "visa", Snippet: "apply at embassy"}}}
	a := New(provider, searcher, joinResults)

	guide, err := a.GenerateDocumentGuide(context.Background(), "Germany", "visa")
	if err != nil {
		t.Fatalf("generate document guide: %v", err)
	}
	if guide.ProcessingTime != "6-12 weeks" {
		t.Fatalf("unexpected guide: %+v", guide)
	}
	if len(searcher.documentTypes) != 1 || searcher.documentTypes[0] != "student visa" {
		t.Fatalf("document type alias not applied to search: %v", searcher.documentTypes)
	}
	if provider.lastOpts.Temperature != 0.3 {
		t.Fatalf("document guide should run at temperature 0.3, got %v", provider.lastOpts.Temperature)
	}
}

func TestAuxGeneratorsRequireProvider(t *testing.T) {
	a := New(nil, &stubSearcher{}, joinResults)
	ctx := context.Background()
	if _, err := a.GenerateHousingOptions(ctx, "TUM", "Munich", "Germany"); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("housing: expected ErrNotConfigured, got %v", err)
	}
	if _, err := a.GenerateCountryInfo(ctx, "Germany"); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("country: expected ErrNotConfigured, got %v", err)
	}
	if _, err := a.GenerateDocumentGuide(ctx, "Germany", "visa"); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("documents: expected ErrNotConfigured, got %v", err)
	}
}
