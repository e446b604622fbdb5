package knowledge

import (
	"strings"

	"github.com/studyway/studyway/internal/model"
)

// Lookup finds the table entry for a university in a country. Matching is
// tolerant of LLM naming drift: exact name, case-insensitive name, substring
// containment in either direction, and finally two or more shared
// significant words (longer than three characters).
func Lookup(university, country string) (UniversityInfo, bool) {
	countryData, ok := universityTable[country]
	if !ok {
		return UniversityInfo{}, false
	}
	name := strings.TrimSpace(university)
	if name == "" {
		return UniversityInfo{}, false
	}
	if info, ok := countryData[name]; ok {
		return info, true
	}
	for key, info := range countryData {
		if strings.EqualFold(key, name) {
			return info, true
		}
	}
	nameLower := strings.ToLower(name)
	for key, info := range countryData {
		keyLower := strings.ToLower(key)
		if strings.Contains(nameLower, keyLower) || strings.Contains(keyLower, nameLower) {
			return info, true
		}
		if sharedSignificantWords(nameLower, keyLower) >= 2 {
			return info, true
		}
	}
	return UniversityInfo{}, false
}

func sharedSignificantWords(a, b string) int {
	bWords := make(map[string]struct{})
	for _, word := range strings.Fields(b) {
		if len(word) > 3 {
			bWords[word] = struct{}{}
		}
	}
	shared := 0
	for _, word := range strings.Fields(a) {
		if len(word) <= 3 {
			continue
		}
		if _, ok := bWords[word]; ok {
			shared++
		}
	}
	return shared
}

// EnrichProgram fills a program's contact, date, and fee fields from the
// static table. Table data is authoritative when an entry exists: a known
// value replaces whatever the LLM supplied for that field, while fields the
// table does not cover keep their original value unless it is a placeholder.
// The operation is idempotent.
func EnrichProgram(p model.Program) model.Program {
	info, ok := Lookup(p.University, p.Country)
	if !ok {
		return p
	}
	p.WebsiteURL = pick(info.WebsiteURL, p.WebsiteURL)
	p.ContactEmail = pick(info.ContactEmail, p.ContactEmail)
	p.ContactPhone = pick(info.ContactPhone, p.ContactPhone)
	p.ApplicationStartDate = pick(info.ApplicationStartDate, p.ApplicationStartDate)
	p.ApplicationDeadline = pick(info.ApplicationDeadline, p.ApplicationDeadline)
	p.SemesterStartDate = pick(info.SemesterStartDate, p.SemesterStartDate)
	p.TuitionFee = pick(info.TuitionFee, p.TuitionFee)
	if model.Placeholder(p.Name) {
		if suggested := suggestProgramName(info, p.Field); suggested != "" {
			p.Name = suggested
		}
	}
	return p
}

func pick(known, existing string) string {
	if known != "" {
		return known
	}
	if model.Placeholder(existing) {
		return ""
	}
	return existing
}

func suggestProgramName(info UniversityInfo, field string) string {
	if len(info.CommonPrograms) == 0 || strings.TrimSpace(field) == "" {
		return ""
	}
	fieldLower := strings.ToLower(field)
	for _, candidate := range info.CommonPrograms {
		candidateLower := strings.ToLower(candidate)
		if strings.Contains(candidateLower, fieldLower) {
			return candidate
		}
		if strings.Contains(fieldLower, "business") && strings.Contains(candidateLower, "business") {
			return candidate
		}
		if strings.Contains(fieldLower, "economics") && strings.Contains(candidateLower, "economics") {
			return candidate
		}
		if strings.Contains(fieldLower, "computer") && strings.Contains(candidateLower, "computer") {
			return candidate
		}
	}
	return ""
}
