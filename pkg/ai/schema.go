package ai

// Response schemas for Gemini structured output. They mirror the wire shape
// of ResumeData: nested personalInfo object, flat-object arrays for the list
// sections, skills as bare name strings. Ids and avatar never cross the wire.

func typeString(desc string) map[string]any {
	m := map[string]any{"type": "STRING"}
	if desc != "" {
		m["description"] = desc
	}
	return m
}

func typeObject(props map[string]any) map[string]any {
	return map[string]any{"type": "OBJECT", "properties": props}
}

func typeArray(items map[string]any) map[string]any {
	return map[string]any{"type": "ARRAY", "items": items}
}

func personalInfoSchema() map[string]any {
	return typeObject(map[string]any{
		"fullName": typeString(""),
		"age":      typeString(""),
		"gender":   typeString(""),
		"email":    typeString(""),
		"phone":    typeString(""),
		"location": typeString(""),
		"linkedin": typeString(""),
		"website":  typeString(""),
	})
}

func resumeSchema(dateDesc string) map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"personalInfo": personalInfoSchema(),
			"summary":      typeString(""),
			"experience": typeArray(typeObject(map[string]any{
				"title":       typeString(""),
				"company":     typeString(""),
				"startDate":   typeString(dateDesc),
				"endDate":     typeString(dateDesc),
				"description": typeString(""),
			})),
			"projects": typeArray(typeObject(map[string]any{
				"name":        typeString(""),
				"role":        typeString(""),
				"startDate":   typeString(dateDesc),
				"endDate":     typeString(dateDesc),
				"description": typeString(""),
				"link":        typeString(""),
			})),
			"education": typeArray(typeObject(map[string]any{
				"degree":    typeString(""),
				"major":     typeString(""),
				"school":    typeString(""),
				"year":      typeString(""),
				"startDate": typeString(dateDesc),
				"endDate":   typeString(dateDesc),
			})),
			"skills": typeArray(typeString("")),
		},
	}
}

func extractionSchema() map[string]any {
	s := resumeSchema("YYYY-MM format or Present")
	s["required"] = []string{"personalInfo", "experience", "education", "skills"}
	return s
}

func translationSchema() map[string]any {
	return resumeSchema("")
}
