package render

import (
	"regexp"
	"strings"

	"resume-architect/internal/model"
)

// Shared formatting rules. Every template variant styles the same fields
// differently, but date handling and bullet splitting are identical.

// FormatDate turns "2023-01" into "2023.01" for display. Sentinels and other
// non-standard tokens ("Present", "至今", bare years) pass through untouched:
// anything shorter than five characters or without a separator is not a date.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	if len(s) < 5 || !strings.Contains(s, "-") {
		return s
	}
	return strings.Replace(s, "-", ".", 1)
}

// FormatRange renders a start/end pair, falling back to the legacy free-text
// year range when both are absent. A lone start date is assumed ongoing.
func FormatRange(start, end, legacy string) string {
	if start != "" || end != "" {
		s := FormatDate(start)
		e := FormatDate(end)
		switch {
		case s != "" && e != "":
			return s + " - " + e
		case s != "":
			return s + " - Present"
		default:
			return e
		}
	}
	return legacy
}

var bulletPrefixRe = regexp.MustCompile(`^[•\-\*]\s*`)

// Bullets splits a newline-delimited description into discrete rows,
// stripping any leading bullet punctuation per line.
func Bullets(description string) []string {
	var out []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(bulletPrefixRe.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SkillNames joins skill names with the given separator for the variants
// that render skills as a single line.
func SkillNames(skills []model.SkillItem, sep string) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, sep)
}

var sectionHeaders = map[model.Language]map[string]string{
	model.LangEN: {
		"summary":    "Professional Summary",
		"experience": "Work Experience",
		"projects":   "Project Experience",
		"education":  "Education",
		"skills":     "Professional Skills",
		"links":      "Links",
		"contact":    "Contact",
		"basicInfo":  "Basic Info",
		"selfEval":   "Self Evaluation",
		"courses":    "Courses: ",
		// fresh-grad relabels
		"resume":     "RESUME",
		"objective":  "JOB OBJECTIVE:",
		"campus":     "Campus Experience",
		"internship": "Internship Experience",
		"skillsAdv":  "Skills & Advantages",
		"freshGrad":  "Fresh Graduate",
		// sidebar/freshgrad field labels
		"age": "Age:", "gender": "Gender:", "loc": "Loc:", "tel": "Tel:",
		"emailLabel": "Email:", "degreeLabel": "Degree:", "school": "School:",
		"name": "Name:",
	},
	model.LangZH: {
		"summary":    "自我评价",
		"experience": "工作经历",
		"projects":   "项目经历",
		"education":  "教育经历",
		"skills":     "专业技能",
		"links":      "作品链接",
		"contact":    "联系方式",
		"basicInfo":  "基本信息",
		"selfEval":   "自我评价",
		"courses":    "主修课程：",
		"resume":     "个人简历",
		"objective":  "求职意向：",
		"campus":     "校园经历",
		"internship": "实习经历",
		"skillsAdv":  "技能&优势",
		"freshGrad":  "应届毕业生",
		"age": "年龄：", "gender": "性别：", "loc": "居住地：", "tel": "电话：",
		"emailLabel": "邮箱：", "degreeLabel": "学历：", "school": "院校：",
		"name": "姓名：",
	},
}

// Headers returns the localized section header strings for a language.
func Headers(lang model.Language) map[string]string {
	if h, ok := sectionHeaders[lang]; ok {
		return h
	}
	return sectionHeaders[model.LangEN]
}
