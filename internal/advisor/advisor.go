package advisor

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/knowledge"
	"github.com/studyway/studyway/internal/llm"
	"github.com/studyway/studyway/internal/model"
)

// Searcher is the slice of the search service the pipeline consumes.
// search.Service satisfies it; tests provide a stub.
type Searcher interface {
	Configured() bool
	AdmissionInfo(ctx context.Context, university, program, country string) []model.SearchResult
	ProgramStructure(ctx context.Context, university, program string) []model.SearchResult
	AdmissionRequirements(ctx context.Context, university, program, country string) []model.SearchResult
	StudentHousing(ctx context.Context, university, city, country string) []model.SearchResult
	CountryCosts(ctx context.Context, country string) []model.SearchResult
	CountryAdvantages(ctx context.Context, country string) []model.SearchResult
	DocumentRequirements(ctx context.Context, country, documentType string) []model.SearchResult
	UniversityImage(ctx context.Context, university, country string) string
	HousingImage(ctx context.Context, housingName, city, country string) string
}

// FormatForPrompt matches search.FormatForPrompt; kept injectable so the
// package has no import cycle with search in tests.
type Advisor struct {
	provider llm.Provider
	search   Searcher
	format   func([]model.SearchResult) string
}

func New(provider llm.Provider, searcher Searcher, format func([]model.SearchResult) string) *Advisor {
	return &Advisor{provider: provider, search: searcher, format: format}
}

// Configured reports whether plan generation is possible at all.
func (a *Advisor) Configured() bool {
	return a != nil && a.provider != nil
}

// chat runs one JSON-mode completion and decodes the result. Markdown fences
// are stripped before parsing since some models wrap output even when told
// not to.
func (a *Advisor) chat(ctx context.Context, system, prompt string, opts llm.Options, out interface{}) error {
	if a.provider == nil {
		return llm.ErrNotConfigured
	}
	messages := []llm.Message{{Role: "user", Content: prompt}}
	if system != "" {
		messages = append([]llm.Message{{Role: "system", Content: system}}, messages...)
	}
	content, err := a.provider.Chat(ctx, messages, opts)
	if err != nil {
		return &UpstreamError{Status: llm.StatusCode(err), Err: err}
	}
	cleaned := stripFences(content)
	if cleaned == "" {
		return &InvalidResponseError{Message: "empty response from model"}
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		common.Logger().Error("advisor: response not parseable", "error", err)
		return &ParseError{Err: err}
	}
	return nil
}

func stripFences(content string) string {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// GenerateAdmissionPlan runs the full recommendation pipeline for a profile:
// fan out one admission-info search per country and field combination, embed
// the snippets in the prompt, call the model, validate the returned shape,
// then enrich every program with static-table data and an image search.
func (a *Advisor) GenerateAdmissionPlan(ctx context.Context, input model.UserInput) (model.AIResponse, error) {
	logger := common.Logger()
	if a.provider == nil {
		return model.AIResponse{}, llm.ErrNotConfigured
	}

	realTimeData := a.gatherProfileContext(ctx, input)

	var parsed model.AIResponse
	err := a.chat(ctx, advisorSystemPrompt, admissionPlanPrompt(input, realTimeData), llm.Options{JSONMode: true}, &parsed)
	if err != nil {
		return model.AIResponse{}, err
	}
	if parsed.Programs == nil {
		return model.AIResponse{}, &InvalidResponseError{Message: "model response is missing the programs list"}
	}
	logger.Info("advisor: recommendations generated", "programs", len(parsed.Programs))

	a.enrichPrograms(ctx, parsed.Programs)
	return parsed, nil
}

// gatherProfileContext fans out country×field searches in parallel. Partial
// failures contribute nothing; a fully empty result degrades the prompt to a
// no-real-time-data note.
func (a *Advisor) gatherProfileContext(ctx context.Context, input model.UserInput) string {
	if a.search == nil || !a.search.Configured() {
		return "\n\nNote: Real-time web search is not available. Use your knowledge base and typical university information."
	}
	var (
		mu      sync.Mutex
		results []model.SearchResult
		wg      sync.WaitGroup
	)
	for _, country := range input.Countries {
		for _, field := range input.Programs {
			wg.Add(1)
			go func(country model.Country, field model.ProgramField) {
				defer wg.Done()
				found := a.search.AdmissionInfo(ctx, "", string(field), string(country))
				if len(found) == 0 {
					return
				}
				mu.Lock()
				results = append(results, found...)
				mu.Unlock()
			}(country, field)
		}
	}
	wg.Wait()
	if len(results) == 0 {
		return "\n\nNote: Real-time web search is not available. Use your knowledge base and typical university information."
	}
	return "\n\nREAL-TIME SEARCH RESULTS FROM INTERNET:\n" + a.format(results) +
		"\n\nUSE THIS REAL-TIME DATA to get accurate admission requirements, deadlines, and contact information. Prioritize information from these search results over general knowledge."
}

// enrichPrograms applies the static table and image search to every program
// concurrently. Enrichment never fails the batch; a missing image is not an
// error.
func (a *Advisor) enrichPrograms(ctx context.Context, programs []model.Program) {
	logger := common.Logger()
	var wg sync.WaitGroup
	for i := range programs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			enriched := knowledge.EnrichProgram(programs[i])
			if a.search != nil {
				if url := a.search.UniversityImage(ctx, enriched.University, enriched.Country); url != "" {
					enriched.ImageURL = url
				} else {
					logger.Debug("advisor: no campus image", "university", enriched.University)
				}
			}
			programs[i] = enriched
		}(i)
	}
	wg.Wait()
}

// GenerateProgramPlan produces the timeline and requirements for a single
// program, using its stored metadata as prompt context.
func (a *Advisor) GenerateProgramPlan(ctx context.Context, program model.Program, input model.UserInput) (*model.AdmissionPlan, error) {
	if a.provider == nil {
		return nil, llm.ErrNotConfigured
	}
	var requirementsData, programData string
	if a.search != nil && a.search.Configured() {
		if found := a.search.AdmissionRequirements(ctx, program.University, program.Name, program.Country); len(found) > 0 {
			requirementsData = "\n\nREAL-TIME ADMISSION REQUIREMENTS SEARCH RESULTS:\n" + a.format(found) +
				"\n\nUSE THIS REAL-TIME DATA as the PRIMARY SOURCE for the requirements section."
		}
		admission := a.search.AdmissionInfo(ctx, program.University, program.Name, program.Country)
		structure := a.search.ProgramStructure(ctx, program.University, program.Name)
		if combined := append(admission, structure...); len(combined) > 0 {
			programData = "\n\nREAL-TIME PROGRAM DATA:\n" + a.format(combined) +
				"\n\nUSE THIS REAL-TIME DATA for accurate deadlines and program structure."
		}
	}

	var plan model.AdmissionPlan
	err := a.chat(ctx, advisorSystemPrompt, programPlanPrompt(program, input, requirementsData, programData), llm.Options{JSONMode: true}, &plan)
	if err != nil {
		return nil, err
	}
	if plan.NowToThree == nil || plan.ThreeToSix == nil || plan.BeforeDeadlines == nil {
		return nil, &InvalidResponseError{Message: "plan response is missing a timeline bucket"}
	}
	plan.Normalize()
	common.Logger().Info("advisor: program plan generated", "university", program.University, "program", program.Name)
	return &plan, nil
}
