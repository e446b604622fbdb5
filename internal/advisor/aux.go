package advisor

import (
	"context"
	"strings"
	"sync"

	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/llm"
	"github.com/studyway/studyway/internal/model"
)

// GenerateHousingOptions finds student housing near a university. Each
// returned option gets an independent image search; image failures leave the
// field empty.
func (a *Advisor) GenerateHousingOptions(ctx context.Context, university, city, country string) ([]model.HousingOption, error) {
	if a.provider == nil {
		return nil, llm.ErrNotConfigured
	}
	var realTimeData string
	if a.search != nil && a.search.Configured() {
		if found := a.search.StudentHousing(ctx, university, city, country); len(found) > 0 {
			realTimeData = "\n\nREAL-TIME HOUSING SEARCH RESULTS FROM INTERNET:\n" + a.format(found) +
				"\n\nUSE THIS REAL-TIME DATA to extract EXACT information about student housing options."
		}
	}
	if realTimeData == "" {
		realTimeData = "\n\nNote: Real-time web search is not available."
	}

	var parsed struct {
		HousingOptions []model.HousingOption `json:"housingOptions"`
	}
	err := a.chat(ctx, housingSystemPrompt, housingPrompt(university, city, country, realTimeData), llm.Options{JSONMode: true}, &parsed)
	if err != nil {
		return nil, err
	}
	if parsed.HousingOptions == nil {
		return nil, &InvalidResponseError{Message: "model response is missing the housingOptions list"}
	}

	if a.search != nil {
		var wg sync.WaitGroup
		for i := range parsed.HousingOptions {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				option := &parsed.HousingOptions[i]
				if url := a.search.HousingImage(ctx, option.Name, city, country); url != "" {
					option.ImageURL = url
				}
			}(i)
		}
		wg.Wait()
	}
	common.Logger().Info("advisor: housing options generated", "university", university, "options", len(parsed.HousingOptions))
	return parsed.HousingOptions, nil
}

// GenerateCountryInfo builds the study-destination overview for one country.
// Cost and advantage searches run in parallel.
func (a *Advisor) GenerateCountryInfo(ctx context.Context, country string) (*model.CountryInfo, error) {
	if a.provider == nil {
		return nil, llm.ErrNotConfigured
	}
	var costData, advantagesData string
	if a.search != nil && a.search.Configured() {
		var wg sync.WaitGroup
		var costResults, advantageResults []model.SearchResult
		wg.Add(2)
		go func() {
			defer wg.Done()
			costResults = a.search.CountryCosts(ctx, country)
		}()
		go func() {
			defer wg.Done()
			advantageResults = a.search.CountryAdvantages(ctx, country)
		}()
		wg.Wait()
		if len(costResults) > 0 {
			costData = "\n\nREAL-TIME COST OF LIVING DATA:\n" + a.format(costResults) +
				"\n\nUSE THIS REAL-TIME DATA to extract EXACT costs and expenses."
		}
		if len(advantageResults) > 0 {
			advantagesData = "\n\nREAL-TIME COUNTRY ADVANTAGES/CHALLENGES DATA:\n" + a.format(advantageResults) +
				"\n\nUSE THIS REAL-TIME DATA to extract information about pros, cons, benefits, and challenges."
		}
	}

	var info model.CountryInfo
	err := a.chat(ctx, countrySystemPrompt, countryInfoPrompt(country, costData, advantagesData), llm.Options{JSONMode: true}, &info)
	if err != nil {
		return nil, err
	}
	if info.Name == "" || info.Overview == "" {
		return nil, &InvalidResponseError{Message: "country info response is missing name or overview"}
	}
	common.Logger().Info("advisor: country info generated", "country", country)
	return &info, nil
}

// documentTypeAliases maps intake document identifiers onto search-friendly
// names.
var documentTypeAliases = map[string]string{
	"visa":             "student visa",
	"residence_permit": "residence permit",
	"bank_account":     "student bank account",
	"health_insurance": "student health insurance",
	"registration":     "student registration residence registration",
}

// GenerateDocumentGuide builds the application walkthrough for one document
// type in one country. Runs at a lower temperature since the output should
// be procedural rather than creative.
func (a *Advisor) GenerateDocumentGuide(ctx context.Context, country, documentType string) (*model.DocumentGuide, error) {
	if a.provider == nil {
		return nil, llm.ErrNotConfigured
	}
	documentName := documentType
	if alias, ok := documentTypeAliases[strings.ToLower(strings.TrimSpace(documentType))]; ok {
		documentName = alias
	}
	realTimeData := "\n\nNote: Real-time web search is not available."
	if a.search != nil && a.search.Configured() {
		if found := a.search.DocumentRequirements(ctx, country, documentName); len(found) > 0 {
			realTimeData = a.format(found)
		}
	}

	var guide model.DocumentGuide
	err := a.chat(ctx, "", documentGuidePrompt(country, documentName, realTimeData), llm.Options{Temperature: 0.3}, &guide)
	if err != nil {
		return nil, err
	}
	common.Logger().Info("advisor: document guide generated", "country", country, "document", documentName)
	return &guide, nil
}
