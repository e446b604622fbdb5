package submission

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studyway/studyway/internal/advisor"
	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/model"
	"github.com/studyway/studyway/internal/storage"
)

// Pipeline is the slice of the advisor the service needs; tests stub it.
type Pipeline interface {
	GenerateAdmissionPlan(ctx context.Context, input model.UserInput) (model.AIResponse, error)
	GenerateProgramPlan(ctx context.Context, program model.Program, input model.UserInput) (*model.AdmissionPlan, error)
}

// Service orchestrates form submissions: validate, identify, generate,
// persist, and query.
type Service struct {
	store    storage.Store
	pipeline Pipeline
}

func NewService(store storage.Store, pipeline Pipeline) *Service {
	return &Service{store: store, pipeline: pipeline}
}

// FormInput carries the raw form fields before validation.
type FormInput struct {
	AdmissionType   string
	Countries       []string
	Programs        []string
	ProgramLanguage string
	Grades          string
	LanguageExam    string
	ExamScore       string
	Budget          string
	Email           string
}

func (f FormInput) toUserInput() model.UserInput {
	countries := make([]model.Country, 0, len(f.Countries))
	for _, c := range f.Countries {
		countries = append(countries, model.Country(strings.TrimSpace(c)))
	}
	fields := make([]model.ProgramField, 0, len(f.Programs))
	for _, p := range f.Programs {
		fields = append(fields, model.ProgramField(strings.TrimSpace(p)))
	}
	return model.UserInput{
		AdmissionType:   model.AdmissionType(strings.TrimSpace(f.AdmissionType)),
		Countries:       countries,
		Programs:        fields,
		ProgramLanguage: model.ProgramLanguage(strings.TrimSpace(f.ProgramLanguage)),
		Grades:          strings.TrimSpace(f.Grades),
		LanguageExam:    model.LanguageExam(strings.TrimSpace(f.LanguageExam)),
		ExamScore:       strings.TrimSpace(f.ExamScore),
		Budget:          model.Budget(strings.TrimSpace(f.Budget)),
		Email:           strings.ToLower(strings.TrimSpace(f.Email)),
	}
}

// Submit validates the form, runs the full recommendation pipeline, and
// persists the resulting submission. Validation happens before any external
// call; an invalid form never reaches the LLM and leaves no stored side
// effect.
func (s *Service) Submit(ctx context.Context, form FormInput) (*model.Submission, error) {
	logger := common.Logger()
	input := form.toUserInput()
	if err := input.Validate(); err != nil {
		return nil, &advisor.ValidationError{Message: err.Error()}
	}

	response, err := s.pipeline.GenerateAdmissionPlan(ctx, input)
	if err != nil {
		return nil, err
	}

	sub := model.Submission{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Input:     input,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, sub); err != nil {
		logger.Error("submission: save failed", "id", sub.ID, "error", err)
		return nil, err
	}
	logger.Info("submission: created", "id", sub.ID, "email", sub.Email, "programs", len(response.Programs))
	return &sub, nil
}

// Get returns one submission or nil.
func (s *Service) Get(ctx context.Context, id string) (*model.Submission, error) {
	return s.store.GetByID(ctx, id)
}

// ForEmail returns every submission stored under an email address,
// case-insensitively.
func (s *Service) ForEmail(ctx context.Context, email string) ([]model.Submission, error) {
	return s.store.GetByEmail(ctx, email)
}

// All lists every stored submission; backs the admin view.
func (s *Service) All(ctx context.Context) ([]model.Submission, error) {
	return s.store.GetAll(ctx)
}

// GeneratePlanForProgram builds a timeline for the program at index within
// the submission's normalized program list and patches the stored plan.
// Repeated calls overwrite the same plan field: last write wins, keyed by
// nothing, matching the stored schema.
func (s *Service) GeneratePlanForProgram(ctx context.Context, submissionID string, index int) (*model.AdmissionPlan, error) {
	sub, err := s.store.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, &advisor.NotFoundError{Resource: "submission"}
	}
	programs := sub.Response.NormalizedPrograms()
	if len(programs) == 0 {
		return nil, &advisor.NotFoundError{Resource: "programs"}
	}
	if index < 0 || index >= len(programs) {
		return nil, &advisor.NotFoundError{Resource: "program"}
	}

	plan, err := s.pipeline.GenerateProgramPlan(ctx, programs[index], sub.Input)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdatePlan(ctx, submissionID, plan); err != nil {
		common.Logger().Error("submission: update plan failed", "id", submissionID, "error", err)
		return nil, err
	}
	common.Logger().Info("submission: plan stored", "id", submissionID, "program_index", index)
	return plan, nil
}
