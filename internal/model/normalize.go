package model

import "strings"

// Placeholder reports whether a field value carries no real information.
// The LLM occasionally emits "Not specified" despite being told not to.
func Placeholder(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || strings.EqualFold(trimmed, "not specified")
}

// NormalizedPrograms returns the canonical program list for a response.
// When only the legacy universities shape is present, each entry is
// translated: language defaults to English, category to Realistic, and the
// university name doubles as the program name.
func (r AIResponse) NormalizedPrograms() []Program {
	if len(r.Programs) > 0 {
		return r.Programs
	}
	if len(r.Universities) == 0 {
		return nil
	}
	programs := make([]Program, 0, len(r.Universities))
	for _, uni := range r.Universities {
		name := uni.Name
		if name == "" {
			name = "Program"
		}
		category := uni.Category
		if category == "" {
			category = "Realistic"
		}
		programs = append(programs, Program{
			Name:                 name,
			Field:                uni.Field,
			University:           uni.Name,
			Country:              uni.Country,
			Language:             "English",
			Category:             category,
			Reason:               uni.Reason,
			AdmissionStatus:      uni.AdmissionStatus,
			RequiredImprovements: uni.RequiredImprovements,
			WebsiteURL:           uni.WebsiteURL,
			ContactEmail:         uni.ContactEmail,
			ContactPhone:         uni.ContactPhone,
			ApplicationStartDate: uni.ApplicationStartDate,
			ApplicationDeadline:  uni.ApplicationDeadline,
			SemesterStartDate:    uni.SemesterStartDate,
			TuitionFee:           uni.TuitionFee,
			Description:          uni.Description,
		})
	}
	return programs
}

// Normalize coerces a plan into its invariant shape: the three timeline
// buckets are always non-nil arrays and the requirements block always exists
// with non-nil slices.
func (p *AdmissionPlan) Normalize() {
	if p == nil {
		return
	}
	if p.NowToThree == nil {
		p.NowToThree = []string{}
	}
	if p.ThreeToSix == nil {
		p.ThreeToSix = []string{}
	}
	if p.BeforeDeadlines == nil {
		p.BeforeDeadlines = []string{}
	}
	if p.Requirements == nil {
		p.Requirements = &PlanRequirements{}
	}
	if p.Requirements.LanguageExams == nil {
		p.Requirements.LanguageExams = []string{}
	}
	if p.Requirements.EntranceExams == nil {
		p.Requirements.EntranceExams = []string{}
	}
	if p.Requirements.OtherRequirements == nil {
		p.Requirements.OtherRequirements = []string{}
	}
}
