package advisor

import (
	"fmt"
	"strings"

	"github.com/studyway/studyway/internal/model"
)

const advisorSystemPrompt = "You are a helpful admissions advisor. Always return valid JSON only, no markdown formatting."

const housingSystemPrompt = "You are a helpful student housing advisor. Always return valid JSON only, no markdown formatting."

const countrySystemPrompt = "You are a helpful study abroad advisor. Always return valid JSON only, no markdown formatting."

func describeLanguagePreference(pref model.ProgramLanguage) string {
	switch pref {
	case model.LanguageEnglish:
		return "English-taught programs only"
	case model.LanguageLocal:
		return "Local language programs only"
	default:
		return "Either English or local language"
	}
}

func describeExam(input model.UserInput) string {
	if input.ExamScore != "" {
		return fmt.Sprintf("%s (Score: %s)", input.LanguageExam, input.ExamScore)
	}
	return string(input.LanguageExam)
}

func joinCountries(countries []model.Country) string {
	names := make([]string, len(countries))
	for i, c := range countries {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func joinFields(fields []model.ProgramField) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func admissionPlanPrompt(input model.UserInput, realTimeData string) string {
	countries := joinCountries(input.Countries)
	fields := joinFields(input.Programs)
	return fmt.Sprintf(`You are an admissions advisor. Generate detailed program recommendations with COMPLETE REAL-WORLD information.

IMPORTANT: You MUST use REAL, ACTUAL information from the internet about universities. Search for and use:
- Real university websites and program pages
- Actual admissions office contact information (email and phone)
- Real application deadlines and dates for the upcoming academic year
- Actual tuition fees and costs
- Real program descriptions and requirements

Based on the following profile:
- Admission type: %s
- Countries: %s
- Desired programs/fields: %s
- Program language preference: %s
- Grades: %s
- Language exam: %s
- Budget: %s%s

Return JSON with specific programs including ALL REAL details:
{
  "programs": [
    {
      "name": "REAL program name from the university website, including abbreviations like BBE, BSc, MSc (e.g., 'Bachelor in Business and Economics (BBE)' for WU Vienna, 'Master of Science in Computer Science' for TU Munich)",
      "field": "Field of study",
      "university": "Real university name",
      "country": "Country name",
      "language": "English" or "Local",
      "category": "Realistic" or "Reach",
      "reason": "Why this program matches the profile",
      "websiteUrl": "REAL official university/program website URL",
      "contactEmail": "REAL admissions office email from the university website",
      "contactPhone": "REAL admissions office phone with country code",
      "applicationStartDate": "REAL application opening date (e.g., 'October 1, 2025')",
      "applicationDeadline": "REAL application deadline (e.g., 'January 15, 2026')",
      "semesterStartDate": "REAL semester start date (e.g., 'September 2026')",
      "tuitionFee": "REAL tuition fee from the university website (e.g., '€726.72 per semester', '€0')",
      "admissionStatus": "Can apply now" or "Need improvement" or "Eligible now",
      "requiredImprovements": "What needs to be improved to apply (only if status is 'Need improvement')",
      "description": "Real 2-3 sentence description of the program and university",
      "programStructure": "Detailed structure: core courses, electives, modules, specialization tracks, thesis requirements, internships"
    }
  ]
}

CRITICAL REQUIREMENTS:
- Use ONLY REAL universities and programs that exist in the specified countries
- Use ONLY REAL program names as they appear on university websites
- Use ONLY REAL website URLs, contact emails, phone numbers, deadlines, and tuition fees from official sources
- Return 8-12 specific programs
- For "admissionStatus": use "Can apply now" if current grades/exam scores meet requirements, "Eligible now" if already qualified, "Need improvement" if scores/grades need to be better
- Match programs to fields: %s
- Programs must be from: %s
- Respect language preference: %s
- DO NOT make up or invent information - use only real, verifiable data
- NEVER return "Not specified" or empty strings - ALWAYS provide real data; if exact data is unavailable, use realistic data typical for universities in that country

Return ONLY valid JSON, no markdown, no emojis, no additional text.`,
		input.AdmissionType, countries, fields,
		describeLanguagePreference(input.ProgramLanguage),
		input.Grades, describeExam(input), input.Budget, realTimeData,
		fields, countries, input.ProgramLanguage)
}

func programPlanPrompt(program model.Program, input model.UserInput, requirementsData, programData string) string {
	var improvements string
	if program.RequiredImprovements != "" {
		improvements = "\n- Required Improvements: " + program.RequiredImprovements
	}
	return fmt.Sprintf(`You are an admissions advisor. Generate a detailed, personalized admission plan for a specific program using REAL information from the internet.

Program Details:
- Program: %s
- University: %s
- Country: %s
- Website: %s
- Contact Email: %s
- Contact Phone: %s
- Application Start: %s
- Application Deadline: %s
- Semester Start: %s
- Tuition Fee: %s

User Profile:
- Admission type: %s
- Grades: %s
- Language exam: %s
- Budget: %s
- Admission Status: %s%s%s%s

Create a detailed step-by-step admission plan with SPECIFIC dates, costs, and actions based on REAL university requirements:

Return JSON:
{
  "requirements": {
    "languageExams": ["Specific language exam requirements with minimum scores (e.g., 'IELTS: 7.0 minimum')"],
    "gpaRequirements": "GPA or grade requirements (e.g., 'Minimum 3.0 GPA or equivalent')",
    "entranceExams": ["Any entrance exams required (e.g., 'GMAT: minimum 600')"],
    "videoEssay": true or false,
    "portfolio": true or false,
    "recommendationLetters": number of recommendation letters required,
    "otherRequirements": ["Any other specific requirements (e.g., 'Motivation letter required', 'CV/Resume required')"]
  },
  "Now – 3 months": ["Specific action with exact dates from the program", "Another action with dates"],
  "3–6 months": ["Action items with specific dates", "More steps with deadlines"],
  "Before deadlines": ["Final steps with exact deadlines from the program", "Submission checklist with dates"]
}

CRITICAL REQUIREMENTS:
- The "requirements" section must list ALL specific admission requirements for this university and program: language exams with minimum scores, GPA/grade requirements, entrance exams, video essay, portfolio, recommendation letter count, and other documents
- Use the EXACT dates from the program details above and the EXACT tuition fee with payment deadlines
- Reference the REAL contact information and website URL above
- If admissionStatus is "Need improvement", include specific steps to improve with target scores/grades
- Make actions actionable and time-specific with real dates; each university has DIFFERENT requirements

Return ONLY valid JSON, no markdown, no emojis.`,
		orNotSpecified(program.Name), orNotSpecified(program.University), orNotSpecified(program.Country),
		orNotSpecified(program.WebsiteURL), orNotSpecified(program.ContactEmail), orNotSpecified(program.ContactPhone),
		orNotSpecified(program.ApplicationStartDate), orNotSpecified(program.ApplicationDeadline),
		orNotSpecified(program.SemesterStartDate), orNotSpecified(program.TuitionFee),
		input.AdmissionType, input.Grades, describeExam(input), input.Budget,
		orNotSpecified(program.AdmissionStatus), improvements,
		requirementsData, programData)
}

func housingPrompt(university, city, country, realTimeData string) string {
	return fmt.Sprintf(`You are a student housing advisor. Extract structured information about student housing options from search results.

University: %s
City: %s
Country: %s%s

Based on the search results above, extract information about student housing/dormitories and return structured JSON:

Return JSON object:
{
  "housingOptions": [
    {
      "name": "Name of the housing facility",
      "address": "Full street address if available, or city/area",
      "cost": "Monthly cost with currency (e.g., '€300-600/month')",
      "availability": "Availability status (e.g., 'Usually available', 'Limited availability', 'Competitive')",
      "contact": "Contact email or phone if found in search results, or 'Contact via website'",
      "facilities": ["Facilities like: wifi, kitchen, laundry, gym, common room, study room, parking"],
      "roomTypes": ["Room types like: single room, double room, shared room, apartment, studio"],
      "difficulty": "Easy" or "Medium" or "Hard" based on availability,
      "websiteUrl": "Official website URL if found in search results",
      "description": "Brief 1-2 sentence description of the housing option"
    }
  ]
}

CRITICAL REQUIREMENTS:
- Extract ONLY real information from the search results
- Use actual names, costs, addresses, and contacts from the search results
- Return 3-8 housing options
- For "difficulty": "Easy" = usually available, "Medium" = limited availability, "Hard" = competitive/very limited spots
- Use ONLY real website URLs if found in search results
- NEVER return "Not specified" - use reasonable defaults based on typical student housing

Return ONLY valid JSON, no markdown, no emojis, no additional text.`, university, city, country, realTimeData)
}

func countryInfoPrompt(country, costData, advantagesData string) string {
	return fmt.Sprintf(`You are a study abroad advisor. Provide comprehensive information about studying in %s for international students.
%s
%s

Based on the search results above, provide detailed information about %s:

Return JSON object:
{
  "name": "%s",
  "overview": "2-3 sentence overview of the country as a study destination",
  "advantages": ["5-7 main advantages of studying in this country"],
  "benefitsForStudents": ["5-7 specific benefits for international students"],
  "challenges": ["3-5 main challenges"],
  "nuances": ["3-5 important nuances or things to know"],
  "costOfLiving": {
    "accommodation": "Detailed accommodation cost",
    "food": "Food expenses",
    "transport": "Transportation costs",
    "utilities": "Utilities if not included",
    "entertainment": "Entertainment and leisure",
    "healthInsurance": "Health insurance cost",
    "totalMonthly": "Total monthly estimate",
    "detailedBreakdown": "Detailed breakdown paragraph with specific examples and ranges"
  }
}

CRITICAL REQUIREMENTS:
- Extract REAL cost information from search results - when they contain specific costs, use those EXACT numbers
- Mention REAL challenges that international students face
- Include important nuances like visa requirements, language requirements, cultural aspects
- Return realistic and helpful information for prospective students

Return ONLY valid JSON, no markdown, no emojis, no additional text.`, country, costData, advantagesData, country, country)
}

func documentGuidePrompt(country, documentName, realTimeData string) string {
	return fmt.Sprintf(`You are a documentation advisor for international students. Provide comprehensive, detailed information about obtaining %s in %s for international students.

%s

Based on the search results above, provide detailed step-by-step information about obtaining %s in %s:

Return JSON object:
{
  "documentType": "%s",
  "country": "%s",
  "overview": "2-3 sentence overview explaining what this document is and why it's needed for students",
  "requirements": ["5-8 eligibility requirements"],
  "documentsNeeded": ["8-12 specific documents required for the application"],
  "applicationSteps": ["8-15 detailed step-by-step procedures in chronological order"],
  "processingTime": "Detailed processing time information",
  "costs": "Detailed cost breakdown",
  "importantNotes": ["5-10 critical notes, warnings, and tips"],
  "officialLinks": ["Official website URLs if found in search results"]
}

CRITICAL REQUIREMENTS:
- Extract ONLY real information from search results
- Provide detailed chronological steps that students can follow exactly
- Include specific costs, processing times, and requirements from the search results
- Mention the specific authorities, embassies, or offices where applications are processed
- Include when to apply relative to the program start date
- NEVER return "Not specified" - fall back to general knowledge if search results lack specifics, but mark it clearly

Return ONLY valid JSON, no markdown, no emojis, no additional text.`,
		documentName, country, realTimeData, documentName, country, documentName, country)
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not specified"
	}
	return value
}
