package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"resume-architect/internal/model"
)

// Section names one of the editable list sections of a resume.
type Section string

const (
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
)

// ParseSection validates a URL path segment against the known sections.
func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionExperience, SectionProjects, SectionEducation, SectionSkills:
		return Section(s), nil
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// AddItem appends a new entry to a list section. The body carries the item's
// fields; the id is always generated server-side. New skills default to the
// standard proficiency when the body omits a level.
func AddItem(r *model.ResumeData, sec Section, body []byte, gen model.IDGen) (string, error) {
	id := gen.NewID()
	switch sec {
	case SectionExperience:
		var item model.Experience
		if err := json.Unmarshal(body, &item); err != nil {
			return "", err
		}
		item.ID = id
		r.Experience = append(r.Experience, item)
	case SectionProjects:
		var item model.Project
		if err := json.Unmarshal(body, &item); err != nil {
			return "", err
		}
		item.ID = id
		r.Projects = append(r.Projects, item)
	case SectionEducation:
		var item model.Education
		if err := json.Unmarshal(body, &item); err != nil {
			return "", err
		}
		item.ID = id
		r.Education = append(r.Education, item)
	case SectionSkills:
		item := model.SkillItem{Level: model.DefaultSkillLevel}
		if err := json.Unmarshal(body, &item); err != nil {
			return "", err
		}
		item.ID = id
		r.Skills = append(r.Skills, item)
	default:
		return "", fmt.Errorf("unknown section %q", sec)
	}
	return id, nil
}

// UpdateItem merges the body's fields into the item with the given id.
// Fields absent from the body keep their current values; the id itself is
// immutable. A missing id is reported as not found, never an error.
func UpdateItem(r *model.ResumeData, sec Section, id string, body []byte) (bool, error) {
	switch sec {
	case SectionExperience:
		for i := range r.Experience {
			if r.Experience[i].ID == id {
				item := r.Experience[i]
				if err := json.Unmarshal(body, &item); err != nil {
					return false, err
				}
				item.ID = id
				r.Experience[i] = item
				return true, nil
			}
		}
	case SectionProjects:
		for i := range r.Projects {
			if r.Projects[i].ID == id {
				item := r.Projects[i]
				if err := json.Unmarshal(body, &item); err != nil {
					return false, err
				}
				item.ID = id
				r.Projects[i] = item
				return true, nil
			}
		}
	case SectionEducation:
		for i := range r.Education {
			if r.Education[i].ID == id {
				item := r.Education[i]
				if err := json.Unmarshal(body, &item); err != nil {
					return false, err
				}
				item.ID = id
				r.Education[i] = item
				return true, nil
			}
		}
	case SectionSkills:
		for i := range r.Skills {
			if r.Skills[i].ID == id {
				item := r.Skills[i]
				if err := json.Unmarshal(body, &item); err != nil {
					return false, err
				}
				item.ID = id
				r.Skills[i] = item
				return true, nil
			}
		}
	}
	return false, nil
}

// RemoveItem deletes the item with the given id from a section. Removing an
// unknown id is a silent no-op.
func RemoveItem(r *model.ResumeData, sec Section, id string) bool {
	switch sec {
	case SectionExperience:
		for i := range r.Experience {
			if r.Experience[i].ID == id {
				r.Experience = append(r.Experience[:i], r.Experience[i+1:]...)
				return true
			}
		}
	case SectionProjects:
		for i := range r.Projects {
			if r.Projects[i].ID == id {
				r.Projects = append(r.Projects[:i], r.Projects[i+1:]...)
				return true
			}
		}
	case SectionEducation:
		for i := range r.Education {
			if r.Education[i].ID == id {
				r.Education = append(r.Education[:i], r.Education[i+1:]...)
				return true
			}
		}
	case SectionSkills:
		for i := range r.Skills {
			if r.Skills[i].ID == id {
				r.Skills = append(r.Skills[:i], r.Skills[i+1:]...)
				return true
			}
		}
	}
	return false
}

// SetAvatar stores a profile photo as an image data URI.
func SetAvatar(r *model.ResumeData, dataURI string) error {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return fmt.Errorf("avatar must be an image data URI")
	}
	r.PersonalInfo.Avatar = dataURI
	return nil
}

// ClearAvatar removes the profile photo.
func ClearAvatar(r *model.ResumeData) {
	r.PersonalInfo.Avatar = ""
}
