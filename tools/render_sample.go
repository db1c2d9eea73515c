package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"resume-architect/internal/model"
	"resume-architect/internal/render"
)

// Renders the sample document (or a JSON file) with one variant so template
// changes can be eyeballed in a browser without starting the server.
func main() {
	variant := flag.String("template", "modern", "template variant to render")
	lang := flag.String("lang", "zh", "language (en or zh)")
	in := flag.String("in", "", "optional resume JSON file, defaults to the sample")
	tplDir := flag.String("templates", "templates", "templates directory")
	out := flag.String("out", "resume_preview.html", "output file")
	flag.Parse()

	data := model.SampleResume(model.UUIDGen{})
	if *in != "" {
		b, err := os.ReadFile(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
			os.Exit(2)
		}
		if err := json.Unmarshal(b, &data); err != nil {
			fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
			os.Exit(2)
		}
		data.Normalize()
	}

	r, err := render.New(*tplDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse templates: %v\n", err)
		os.Exit(2)
	}
	html, err := r.Render(data, render.ParseVariant(*variant), model.ParseLanguage(*lang))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", filepath.Clean(*out))
}
