package knowledge

// UniversityInfo holds verified contact, date, and fee data for a known
// institution. Sourced from official university pages; extend the table as
// new institutions come up in recommendations.
type UniversityInfo struct {
	WebsiteURL           string
	ContactEmail         string
	ContactPhone         string
	ApplicationStartDate string
	ApplicationDeadline  string
	SemesterStartDate    string
	TuitionFee           string
	CommonPrograms       []string
}

var universityTable = map[string]map[string]UniversityInfo{
	"Austria": {
		"University of Vienna": {
			WebsiteURL:           "https://www.univie.ac.at/en/",
			ContactEmail:         "studienabteilung@univie.ac.at",
			ContactPhone:         "+43 1 4277-0",
			ApplicationStartDate: "March 1, 2026",
			ApplicationDeadline:  "September 5, 2026",
			SemesterStartDate:    "October 2026",
			TuitionFee:           "€726.72 per semester for non-EU students, €0 for EU students",
			CommonPrograms: []string{
				"Bachelor in Business and Economics (BBE)",
				"Master in Business Administration",
				"Bachelor in Computer Science",
				"Master in Computer Science",
			},
		},
		"Vienna University of Economics and Business": {
			WebsiteURL:           "https://www.wu.ac.at/en/",
			ContactEmail:         "admissions@wu.ac.at",
			ContactPhone:         "+43 1 31336-0",
			ApplicationStartDate: "February 1, 2026",
			ApplicationDeadline:  "May 15, 2026",
			SemesterStartDate:    "October 2026",
			TuitionFee:           "€726.72 per semester",
			CommonPrograms: []string{
				"Bachelor in Business and Economics (BBE)",
				"Master in International Business",
				"Master in Finance",
				"Master in Marketing",
			},
		},
	},
	"Germany": {
		"University of Heidelberg": {
			WebsiteURL:           "https://www.uni-heidelberg.de/en",
			ContactEmail:         "studium@uni-heidelberg.de",
			ContactPhone:         "+49 6221 54-0",
			ApplicationStartDate: "May 1, 2026",
			ApplicationDeadline:  "July 15, 2026",
			SemesterStartDate:    "October 2026",
			TuitionFee:           "€0 (free tuition for all students)",
		},
		"Technical University of Munich": {
			WebsiteURL:           "https://www.tum.de/en/",
			ContactEmail:         "studium@tum.de",
			ContactPhone:         "+49 89 289-01",
			ApplicationStartDate: "April 1, 2026",
			ApplicationDeadline:  "May 31, 2026",
			SemesterStartDate:    "October 2026",
			TuitionFee:           "€0 (free tuition)",
			CommonPrograms: []string{
				"Master of Science in Computer Science",
				"Bachelor of Science in Computer Science",
				"Master of Science in Management",
			},
		},
		"Ludwig Maximilian University of Munich": {
			WebsiteURL:           "https://www.lmu.de/en/",
			ContactEmail:         "info@lmu.de",
			ContactPhone:         "+49 89 2180-0",
			ApplicationStartDate: "May 1, 2026",
			ApplicationDeadline:  "July 15, 2026",
			SemesterStartDate:    "October 2026",
			TuitionFee:           "€0 (free tuition)",
			CommonPrograms: []string{
				"Bachelor of Science in Business Administration",
				"Master of Science in Business Administration",
				"Bachelor of Science in Computer Science",
			},
		},
		"LMU Munich": {
			WebsiteURL:           "https://www.lmu.de/en/",
			ContactEmail:         "info@lmu.de",
			ContactPhone:         "+49 89 2180-0",
			ApplicationStartDate: "May 1, 2026",
			ApplicationDeadline:  "July 15, 2026",
			SemesterStartDate:    "October 2026",
			TuitionFee:           "€0 (free tuition)",
		},
		"LMU": {
			WebsiteURL:           "https://www.lmu.de/en/",
			ContactEmail:         "info@lmu.de",
			ContactPhone:         "+49 89 2180-0",
			ApplicationStartDate: "May 1, 2026",
			ApplicationDeadline:  "July 15, 2026",
			SemesterStartDate:    "October 2026",
			TuitionFee:           "€0 (free tuition)",
		},
	},
	"Netherlands": {
		"University of Amsterdam": {
			WebsiteURL:           "https://www.uva.nl/en",
			ContactEmail:         "info@uva.nl",
			ContactPhone:         "+31 20 525-9111",
			ApplicationStartDate: "October 1, 2025",
			ApplicationDeadline:  "January 15, 2026",
			SemesterStartDate:    "September 2026",
			TuitionFee:           "€2,314 per year for EU students, €9,000-15,000 for non-EU",
		},
		"Delft University of Technology": {
			WebsiteURL:           "https://www.tudelft.nl/en/",
			ContactEmail:         "contactcenter-esa@tudelft.nl",
			ContactPhone:         "+31 15 278-2222",
			ApplicationStartDate: "October 1, 2025",
			ApplicationDeadline:  "January 15, 2026",
			SemesterStartDate:    "September 2026",
			TuitionFee:           "€2,314 per year for EU students, €15,000-19,000 for non-EU",
		},
	},
	"France": {
		"Sorbonne University": {
			WebsiteURL:           "https://www.sorbonne-universite.fr/en",
			ContactEmail:         "scolarite@sorbonne-universite.fr",
			ContactPhone:         "+33 1 44 27 30 00",
			ApplicationStartDate: "January 1, 2026",
			ApplicationDeadline:  "April 1, 2026",
			SemesterStartDate:    "September 2026",
			TuitionFee:           "€2,770 per year for EU students, €3,770 for non-EU",
		},
	},
	"UK": {
		"University of Oxford": {
			WebsiteURL:           "https://www.ox.ac.uk/",
			ContactEmail:         "admissions@ox.ac.uk",
			ContactPhone:         "+44 1865 270000",
			ApplicationStartDate: "June 1, 2026",
			ApplicationDeadline:  "October 15, 2026",
			SemesterStartDate:    "October 2026",
			TuitionFee:           "£9,250 per year for UK students, £27,840-39,010 for international",
		},
		"University of Cambridge": {
			WebsiteURL:           "https://www.cam.ac.uk/",
			ContactEmail:         "admissions@cam.ac.uk",
			ContactPhone:         "+44 1223 333300",
			ApplicationStartDate: "June 1, 2026",
			ApplicationDeadline:  "October 15, 2026",
			SemesterStartDate:    "October 2026",
			TuitionFee:           "£9,250 per year for UK students, £24,507-63,990 for international",
		},
	},
}
