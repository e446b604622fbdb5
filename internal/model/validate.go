package model

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address looks deliverable enough to use as
// a lookup key. Intentionally loose; there is no verification step.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// Validate checks that every required profile field is present and carries a
// known enum value. It runs before any identifier is assigned or external
// call is made.
func (in UserInput) Validate() error {
	if !in.AdmissionType.Valid() {
		return fmt.Errorf("admission type %q is not recognized", in.AdmissionType)
	}
	if len(in.Countries) == 0 {
		return fmt.Errorf("at least one country is required")
	}
	for _, c := range in.Countries {
		if !c.Valid() {
			return fmt.Errorf("country %q is not recognized", c)
		}
	}
	if len(in.Programs) == 0 {
		return fmt.Errorf("at least one program field is required")
	}
	for _, p := range in.Programs {
		if !p.Valid() {
			return fmt.Errorf("program field %q is not recognized", p)
		}
	}
	if !in.ProgramLanguage.Valid() {
		return fmt.Errorf("program language %q is not recognized", in.ProgramLanguage)
	}
	if strings.TrimSpace(in.Grades) == "" {
		return fmt.Errorf("grades are required")
	}
	if !in.LanguageExam.Valid() {
		return fmt.Errorf("language exam %q is not recognized", in.LanguageExam)
	}
	if !in.Budget.Valid() {
		return fmt.Errorf("budget %q is not recognized", in.Budget)
	}
	if !ValidEmail(in.Email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
