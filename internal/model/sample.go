package model

// SampleResume seeds a fresh session with placeholder content so the preview
// is never blank. Ids come from the supplied generator.
func SampleResume(gen IDGen) ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{
			FullName: "Alex Doe",
			Email:    "alex.doe@example.com",
			Phone:    "(555) 123-4567",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/alexdoe",
			Website:  "alexdoe.dev",
			Avatar:   "",
			Age:      "28",
			Gender:   "Male",
		},
		Summary: "Results-oriented software engineer with 5+ years of experience in full-stack development. " +
			"Proven track record of delivering scalable web applications and optimizing backend performance.",
		Experience: []Experience{
			{
				ID:        gen.NewID(),
				Title:     "Senior Software Engineer",
				Company:   "Tech Solutions Inc.",
				StartDate: "2021-03",
				EndDate:   "Present",
				Description: "• Led a team of 5 developers in rebuilding the core checkout payment microservice.\n" +
					"• Reduced API latency by 40% through caching strategies and database indexing.\n" +
					"• Mentored junior developers and conducted code reviews.",
			},
			{
				ID:        gen.NewID(),
				Title:     "Software Developer",
				Company:   "Creative Startups LLC",
				StartDate: "2018-06",
				EndDate:   "2021-02",
				Description: "• Developed responsive UI components using React and Tailwind CSS.\n" +
					"• Integrated third-party APIs for map services and email notifications.\n" +
					"• Collaborated with designers to ensure pixel-perfect implementation.",
			},
		},
		Projects: []Project{
			{
				ID:        gen.NewID(),
				Name:      "E-commerce Analytics Dashboard",
				Role:      "Frontend Lead",
				StartDate: "2020-01",
				EndDate:   "2020-06",
				Description: "• Built a real-time analytics dashboard using React, D3.js, and WebSocket.\n" +
					"• Optimized data visualization performance for large datasets.",
				Link: "github.com/alexdoe/analytics",
			},
		},
		Education: []Education{
			{
				ID:        gen.NewID(),
				Degree:    "B.S.",
				Major:     "Computer Science",
				School:    "University of Technology",
				Year:      "2018 - 2022",
				StartDate: "2018-09",
				EndDate:   "2022-06",
			},
		},
		Skills: []SkillItem{
			{ID: gen.NewID(), Name: "React", Level: 90},
			{ID: gen.NewID(), Name: "TypeScript", Level: 85},
			{ID: gen.NewID(), Name: "Node.js", Level: 80},
			{ID: gen.NewID(), Name: "AWS", Level: 75},
			{ID: gen.NewID(), Name: "Python", Level: 70},
			{ID: gen.NewID(), Name: "GraphQL", Level: 65},
			{ID: gen.NewID(), Name: "Docker", Level: 60},
		},
	}
}
