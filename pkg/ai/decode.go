package ai

import (
	"encoding/json"
	"strings"

	"resume-architect/internal/model"
)

// Wire types: what actually crosses the AI boundary. No ids, no avatar,
// skills as bare names. Absent fields decode to "" which is exactly the
// coercion the document model requires.

type wirePersonal struct {
	FullName string `json:"fullName"`
	Age      string `json:"age"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

type wireExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type wireProject struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type wireEducation struct {
	Degree    string `json:"degree"`
	Major     string `json:"major"`
	School    string `json:"school"`
	Year      string `json:"year"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type wireResume struct {
	PersonalInfo wirePersonal     `json:"personalInfo"`
	Summary      string           `json:"summary"`
	Experience   []wireExperience `json:"experience"`
	Projects     []wireProject    `json:"projects"`
	Education    []wireEducation  `json:"education"`
	Skills       []string         `json:"skills"`
}

// decodeWire parses the model output, salvaging the outermost {...} object
// when the reply carries stray text around the JSON.
func decodeWire(raw string) (*wireResume, error) {
	raw = strings.TrimSpace(raw)
	var w wireResume
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		i := strings.Index(raw, "{")
		j := strings.LastIndex(raw, "}")
		if i < 0 || j <= i {
			return nil, err
		}
		if err2 := json.Unmarshal([]byte(raw[i:j+1]), &w); err2 != nil {
			return nil, err
		}
	}
	return &w, nil
}

// DecodeExtraction turns a raw extraction reply into a ResumeData: every
// list item gets a freshly generated id, skills become SkillItem rows at the
// default proficiency, and the avatar starts empty.
func DecodeExtraction(raw string, ids model.IDGen) (*model.ResumeData, error) {
	w, err := decodeWire(raw)
	if err != nil {
		return nil, err
	}
	out := &model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			FullName: w.PersonalInfo.FullName,
			Email:    w.PersonalInfo.Email,
			Phone:    w.PersonalInfo.Phone,
			Location: w.PersonalInfo.Location,
			LinkedIn: w.PersonalInfo.LinkedIn,
			Website:  w.PersonalInfo.Website,
			Age:      w.PersonalInfo.Age,
			Gender:   w.PersonalInfo.Gender,
			Avatar:   "",
		},
		Summary: w.Summary,
	}
	for _, e := range w.Experience {
		out.Experience = append(out.Experience, model.Experience{
			ID:          ids.NewID(),
			Title:       e.Title,
			Company:     e.Company,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
		})
	}
	for _, p := range w.Projects {
		out.Projects = append(out.Projects, model.Project{
			ID:          ids.NewID(),
			Name:        p.Name,
			Role:        p.Role,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			Description: p.Description,
			Link:        p.Link,
		})
	}
	for _, ed := range w.Education {
		out.Education = append(out.Education, model.Education{
			ID:        ids.NewID(),
			Degree:    ed.Degree,
			Major:     ed.Major,
			School:    ed.School,
			Year:      ed.Year,
			StartDate: ed.StartDate,
			EndDate:   ed.EndDate,
		})
	}
	for _, name := range w.Skills {
		out.Skills = append(out.Skills, model.SkillItem{
			ID:    ids.NewID(),
			Name:  name,
			Level: model.DefaultSkillLevel,
		})
	}
	out.Normalize()
	return out, nil
}

// translationPayload strips ids and the avatar from the document before it
// is serialized into the translation prompt. Skills flatten to bare names.
func translationPayload(data model.ResumeData) wireResume {
	w := wireResume{
		PersonalInfo: wirePersonal{
			FullName: data.PersonalInfo.FullName,
			Age:      data.PersonalInfo.Age,
			Gender:   data.PersonalInfo.Gender,
			Email:    data.PersonalInfo.Email,
			Phone:    data.PersonalInfo.Phone,
			Location: data.PersonalInfo.Location,
			LinkedIn: data.PersonalInfo.LinkedIn,
			Website:  data.PersonalInfo.Website,
		},
		Summary: data.Summary,
	}
	for _, e := range data.Experience {
		w.Experience = append(w.Experience, wireExperience{
			Title: e.Title, Company: e.Company,
			StartDate: e.StartDate, EndDate: e.EndDate,
			Description: e.Description,
		})
	}
	for _, p := range data.Projects {
		w.Projects = append(w.Projects, wireProject{
			Name: p.Name, Role: p.Role,
			StartDate: p.StartDate, EndDate: p.EndDate,
			Description: p.Description, Link: p.Link,
		})
	}
	for _, ed := range data.Education {
		w.Education = append(w.Education, wireEducation{
			Degree: ed.Degree, Major: ed.Major, School: ed.School,
			Year: ed.Year, StartDate: ed.StartDate, EndDate: ed.EndDate,
		})
	}
	for _, s := range data.Skills {
		w.Skills = append(w.Skills, s.Name)
	}
	return w
}

// MergeTranslation re-attaches what the remote transform never saw: the
// original avatar verbatim, and original item ids by positional index. If
// the model changed a list's length, surplus entries get fresh ids; this is
// an accepted approximation, not a guaranteed correspondence. Age and gender
// fall back to the pre-translation values when the response omits them.
func MergeTranslation(orig model.ResumeData, raw string, ids model.IDGen) (model.ResumeData, error) {
	w, err := decodeWire(raw)
	if err != nil {
		return model.ResumeData{}, err
	}
	out := model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			FullName: w.PersonalInfo.FullName,
			Email:    w.PersonalInfo.Email,
			Phone:    w.PersonalInfo.Phone,
			Location: w.PersonalInfo.Location,
			LinkedIn: w.PersonalInfo.LinkedIn,
			Website:  w.PersonalInfo.Website,
			Age:      w.PersonalInfo.Age,
			Gender:   w.PersonalInfo.Gender,
			Avatar:   orig.PersonalInfo.Avatar,
		},
		Summary: w.Summary,
	}
	if out.PersonalInfo.Age == "" {
		out.PersonalInfo.Age = orig.PersonalInfo.Age
	}
	if out.PersonalInfo.Gender == "" {
		out.PersonalInfo.Gender = orig.PersonalInfo.Gender
	}
	for i, e := range w.Experience {
		id := ids.NewID()
		if i < len(orig.Experience) {
			id = orig.Experience[i].ID
		}
		out.Experience = append(out.Experience, model.Experience{
			ID: id, Title: e.Title, Company: e.Company,
			StartDate: e.StartDate, EndDate: e.EndDate,
			Description: e.Description,
		})
	}
	for i, p := range w.Projects {
		id := ids.NewID()
		if i < len(orig.Projects) {
			id = orig.Projects[i].ID
		}
		out.Projects = append(out.Projects, model.Project{
			ID: id, Name: p.Name, Role: p.Role,
			StartDate: p.StartDate, EndDate: p.EndDate,
			Description: p.Description, Link: p.Link,
		})
	}
	for i, ed := range w.Education {
		id := ids.NewID()
		if i < len(orig.Education) {
			id = orig.Education[i].ID
		}
		out.Education = append(out.Education, model.Education{
			ID: id, Degree: ed.Degree, Major: ed.Major, School: ed.School,
			Year: ed.Year, StartDate: ed.StartDate, EndDate: ed.EndDate,
		})
	}
	for i, name := range w.Skills {
		id := ids.NewID()
		level := model.DefaultSkillLevel
		if i < len(orig.Skills) {
			id = orig.Skills[i].ID
			level = orig.Skills[i].Level
		}
		out.Skills = append(out.Skills, model.SkillItem{ID: id, Name: name, Level: level})
	}
	out.Normalize()
	return out, nil
}
