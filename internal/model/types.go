package model

import "time"

type AdmissionType string

const (
	AdmissionBachelor AdmissionType = "Bachelor"
	AdmissionMaster   AdmissionType = "Master"
)

func (a AdmissionType) Valid() bool {
	return a == AdmissionBachelor || a == AdmissionMaster
}

type Country string

const (
	CountryGermany     Country = "Germany"
	CountryNetherlands Country = "Netherlands"
	CountryItaly       Country = "Italy"
	CountryFrance      Country = "France"
	CountryUK          Country = "UK"
	CountryAustria     Country = "Austria"
	CountryNotSure     Country = "Not sure"
)

var knownCountries = map[Country]struct{}{
	CountryGermany: {}, CountryNetherlands: {}, CountryItaly: {},
	CountryFrance: {}, CountryUK: {}, CountryAustria: {}, CountryNotSure: {},
}

func (c Country) Valid() bool {
	_, ok := knownCountries[c]
	return ok
}

type LanguageExam string

const (
	ExamIELTS LanguageExam = "IELTS"
	ExamTOEFL LanguageExam = "TOEFL"
	ExamNone  LanguageExam = "None"
)

func (e LanguageExam) Valid() bool {
	return e == ExamIELTS || e == ExamTOEFL || e == ExamNone
}

type Budget string

const (
	BudgetFree   Budget = "Free"
	BudgetLow    Budget = "< 3,000"
	BudgetMedium Budget = "3,000 - 10,000"
	BudgetHigh   Budget = "10,000 - 30,000"
	BudgetTop    Budget = "> 30,000"
)

func (b Budget) Valid() bool {
	switch b {
	case BudgetFree, BudgetLow, BudgetMedium, BudgetHigh, BudgetTop:
		return true
	}
	return false
}

type ProgramField string

var knownFields = map[ProgramField]struct{}{
	"Business & Management": {}, "Computer Science & IT": {}, "Engineering": {},
	"Medicine & Health": {}, "Law": {}, "Arts & Humanities": {},
	"Social Sciences": {}, "Natural Sciences": {}, "Economics": {},
	"Psychology": {}, "Architecture": {}, "Not sure": {},
}

func (f ProgramField) Valid() bool {
	_, ok := knownFields[f]
	return ok
}

type ProgramLanguage string

const (
	LanguageEnglish ProgramLanguage = "English"
	LanguageLocal   ProgramLanguage = "Local"
	LanguageEither  ProgramLanguage = "Either"
)

func (l ProgramLanguage) Valid() bool {
	return l == LanguageEnglish || l == LanguageLocal || l == LanguageEither
}

// UserInput is the study profile collected from the intake form. It is
// immutable once a submission has been created.
type UserInput struct {
	AdmissionType   AdmissionType   `json:"admissionType"`
	Countries       []Country       `json:"countries"`
	Programs        []ProgramField  `json:"programs"`
	ProgramLanguage ProgramLanguage `json:"programLanguage"`
	Grades          string          `json:"grades"`
	LanguageExam    LanguageExam    `json:"languageExam"`
	ExamScore       string          `json:"examScore,omitempty"`
	Budget          Budget          `json:"budget"`
	Email           string          `json:"email"`
}

// Program is a single recommended degree program. The LLM produces the core
// fields; enrichment fills the optional contact/date/fee/image fields.
type Program struct {
	Name                 string `json:"name"`
	Field                string `json:"field"`
	University           string `json:"university"`
	Country              string `json:"country"`
	Language             string `json:"language"`
	Category             string `json:"category"`
	Reason               string `json:"reason"`
	WebsiteURL           string `json:"websiteUrl,omitempty"`
	ContactEmail         string `json:"contactEmail,omitempty"`
	ContactPhone         string `json:"contactPhone,omitempty"`
	ApplicationStartDate string `json:"applicationStartDate,omitempty"`
	ApplicationDeadline  string `json:"applicationDeadline,omitempty"`
	SemesterStartDate    string `json:"semesterStartDate,omitempty"`
	TuitionFee           string `json:"tuitionFee,omitempty"`
	AdmissionStatus      string `json:"admissionStatus,omitempty"`
	RequiredImprovements string `json:"requiredImprovements,omitempty"`
	ImageURL             string `json:"imageUrl,omitempty"`
	Description          string `json:"description,omitempty"`
	ProgramStructure     string `json:"programStructure,omitempty"`
}

// University is the legacy recommendation shape used by early responses.
// It survives only inside stored submissions and is translated to Program
// at read time.
type University struct {
	Name                 string `json:"name"`
	Country              string `json:"country"`
	Category             string `json:"category"`
	Reason               string `json:"reason"`
	Field                string `json:"field,omitempty"`
	AdmissionStatus      string `json:"admissionStatus,omitempty"`
	RequiredImprovements string `json:"requiredImprovements,omitempty"`
	WebsiteURL           string `json:"websiteUrl,omitempty"`
	ContactEmail         string `json:"contactEmail,omitempty"`
	ContactPhone         string `json:"contactPhone,omitempty"`
	ApplicationStartDate string `json:"applicationStartDate,omitempty"`
	ApplicationDeadline  string `json:"applicationDeadline,omitempty"`
	SemesterStartDate    string `json:"semesterStartDate,omitempty"`
	TuitionFee           string `json:"tuitionFee,omitempty"`
	Description          string `json:"description,omitempty"`
}

// PlanRequirements is the structured requirements block of an admission plan.
type PlanRequirements struct {
	LanguageExams         []string `json:"languageExams"`
	GPARequirements       string   `json:"gpaRequirements,omitempty"`
	EntranceExams         []string `json:"entranceExams"`
	VideoEssay            bool     `json:"videoEssay"`
	Portfolio             bool     `json:"portfolio"`
	RecommendationLetters int      `json:"recommendationLetters"`
	OtherRequirements     []string `json:"otherRequirements"`
}

// AdmissionPlan is a timeline keyed by three fixed buckets. The bucket keys
// are part of the stored wire format and must not change.
type AdmissionPlan struct {
	Requirements    *PlanRequirements `json:"requirements,omitempty"`
	NowToThree      []string          `json:"Now – 3 months"`
	ThreeToSix      []string          `json:"3–6 months"`
	BeforeDeadlines []string          `json:"Before deadlines"`
}

// AIResponse is the canonical pipeline output. Programs is authoritative;
// Universities is the legacy shape kept for old stored submissions.
type AIResponse struct {
	Programs     []Program      `json:"programs"`
	Universities []University   `json:"universities,omitempty"`
	Plan         *AdmissionPlan `json:"plan,omitempty"`
}

// Submission is the aggregate persisted per form submission. Only the
// response plan is mutated after creation.
type Submission struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Input     UserInput  `json:"input"`
	Response  AIResponse `json:"response"`
	CreatedAt time.Time  `json:"createdAt"`
}

// HousingOption is a request-scoped housing recommendation; never persisted.
type HousingOption struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Cost         string   `json:"cost"`
	Availability string   `json:"availability"`
	Contact      string   `json:"contact"`
	Facilities   []string `json:"facilities"`
	RoomTypes    []string `json:"roomTypes"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Difficulty   string   `json:"difficulty"`
	WebsiteURL   string   `json:"websiteUrl,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// CostOfLiving breaks down typical monthly student expenses for a country.
type CostOfLiving struct {
	Accommodation     string `json:"accommodation"`
	Food              string `json:"food"`
	Transport         string `json:"transport"`
	Utilities         string `json:"utilities"`
	Entertainment     string `json:"entertainment"`
	HealthInsurance   string `json:"healthInsurance"`
	TotalMonthly      string `json:"totalMonthly"`
	DetailedBreakdown string `json:"detailedBreakdown,omitempty"`
}

// CountryInfo is a request-scoped study-destination overview.
type CountryInfo struct {
	Name                string       `json:"name"`
	Overview            string       `json:"overview"`
	Advantages          []string     `json:"advantages"`
	BenefitsForStudents []string     `json:"benefitsForStudents"`
	Challenges          []string     `json:"challenges"`
	Nuances             []string     `json:"nuances"`
	CostOfLiving        CostOfLiving `json:"costOfLiving"`
}

// DocumentGuide is a request-scoped walkthrough for one document type.
type DocumentGuide struct {
	DocumentType     string   `json:"documentType"`
	Country          string   `json:"country"`
	Overview         string   `json:"overview"`
	Requirements     []string `json:"requirements"`
	DocumentsNeeded  []string `json:"documentsNeeded"`
	ApplicationSteps []string `json:"applicationSteps"`
	ProcessingTime   string   `json:"processingTime"`
	Costs            string   `json:"costs"`
	ImportantNotes   []string `json:"importantNotes"`
	OfficialLinks    []string `json:"officialLinks,omitempty"`
}

// SearchResult is one organic hit returned by the web-search provider.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
