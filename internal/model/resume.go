package model

// Go models for the canonical resume document. The same shape is used by the
// form editor, the template renderer and (minus ids/avatar) the AI boundary.

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	Avatar   string `json:"avatar,omitempty"` // data URI, never sent to the AI
	Age      string `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"` // "YYYY-MM" or free text
	EndDate     string `json:"endDate"`   // "YYYY-MM" or a present sentinel
	Description string `json:"description"`
}

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type Education struct {
	ID     string `json:"id"`
	Degree string `json:"degree"`
	Major  string `json:"major"`
	School string `json:"school"`
	// Year is the legacy free-text range, kept as a fallback when the
	// start/end dates are absent (e.g. "2018 - 2022").
	Year      string `json:"year"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Courses   string `json:"courses,omitempty"`
}

type SkillItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"` // proficiency 0-100
}

type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Projects     []Project    `json:"projects"`
	Education    []Education  `json:"education"`
	Skills       []SkillItem  `json:"skills"`
}

// DefaultSkillLevel is assigned to skills coming from extraction (the model
// returns bare names) and to newly added skill rows in the editor.
const DefaultSkillLevel = 80

// Language selects both UI strings and the document language.
type Language string

const (
	LangEN Language = "en"
	LangZH Language = "zh"
)

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == LangZH {
		return LangEN
	}
	return LangZH
}

func ParseLanguage(s string) Language {
	if s == string(LangZH) {
		return LangZH
	}
	return LangEN
}

// PresentSentinel is the localized "ongoing" literal written into end-date
// fields. It is a label, not a parseable date.
func PresentSentinel(lang Language) string {
	if lang == LangZH {
		return "至今"
	}
	return "Present"
}

var presentSentinels = map[string]bool{
	"Present": true,
	"Ongoing": true,
	"至今":      true,
	"进行中":     true,
}

// IsPresentSentinel reports whether an end-date value means "ongoing" in any
// supported localization.
func IsPresentSentinel(s string) bool {
	return presentSentinels[s]
}

// Clone returns a copy whose list fields share no backing arrays with the
// receiver, so a snapshot can be read while the original keeps being edited.
func (r ResumeData) Clone() ResumeData {
	out := r
	out.Experience = make([]Experience, len(r.Experience))
	copy(out.Experience, r.Experience)
	out.Projects = make([]Project, len(r.Projects))
	copy(out.Projects, r.Projects)
	out.Education = make([]Education, len(r.Education))
	copy(out.Education, r.Education)
	out.Skills = make([]SkillItem, len(r.Skills))
	copy(out.Skills, r.Skills)
	return out
}

// Normalize replaces nil list fields with empty slices so that every
// ResumeData round-trips through JSON with arrays, never null.
func (r *ResumeData) Normalize() {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []SkillItem{}
	}
}
