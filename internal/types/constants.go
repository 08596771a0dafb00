package types

// Fields is the catalog of study/work fields offered on the profile and
// job-search forms.
var Fields = []string{
	"Software Engineering",
	"Data Science",
	"Business / Management",
	"Luxury / Fashion",
	"Hospitality / Tourism",
	"Engineering / Industry",
	"Arts / Design",
}

// VisaTypes is the catalog of French visa statuses offered on the profile form.
var VisaTypes = []string{
	"VLS-TS Student",
	"APS / Recepissee",
	"Passeport Talent",
	"Work Visa (Salarié)",
	"EU Blue Card",
}

// LanguageLevel pairs a CEFR code with its form label.
type LanguageLevel struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// LanguageLevels is the catalog of CEFR French levels offered on the
// profile form, in ascending order.
var LanguageLevels = []LanguageLevel{
	{Code: "A1", Label: "A1 - Beginner"},
	{Code: "A2", Label: "A2 - Elementary"},
	{Code: "B1", Label: "B1 - Intermediate"},
	{Code: "B2", Label: "B2 - Upper Intermediate"},
	{Code: "C1", Label: "C1 - Advanced"},
	{Code: "C2", Label: "C2 - Native / Fluent"},
}
