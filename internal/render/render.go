package render

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"resume-architect/internal/model"
)

// Variant selects one of the fixed layout strategies. Adding a variant means
// adding a template file and a name entry; the data contract never changes.
type Variant string

const (
	VariantModern    Variant = "modern"
	VariantClassic   Variant = "classic"
	VariantMinimal   Variant = "minimal"
	VariantSidebar   Variant = "sidebar"
	VariantFreshGrad Variant = "freshgrad"
)

// Variants lists all layouts in display order.
var Variants = []Variant{VariantModern, VariantClassic, VariantMinimal, VariantSidebar, VariantFreshGrad}

var variantNames = map[model.Language]map[Variant]string{
	model.LangEN: {
		VariantModern:    "Modern",
		VariantClassic:   "Classic",
		VariantMinimal:   "Minimal",
		VariantSidebar:   "Sidebar",
		VariantFreshGrad: "Fresh Grad",
	},
	model.LangZH: {
		VariantModern:    "现代",
		VariantClassic:   "经典",
		VariantMinimal:   "极简",
		VariantSidebar:   "侧边栏",
		VariantFreshGrad: "应届生",
	},
}

// ParseVariant maps a request value onto a known variant, defaulting to the
// modern layout for unknown input.
func ParseVariant(s string) Variant {
	for _, v := range Variants {
		if s == string(v) {
			return v
		}
	}
	return VariantModern
}

// Name returns the localized display name of a variant.
func (v Variant) Name(lang model.Language) string {
	names, ok := variantNames[lang]
	if !ok {
		names = variantNames[model.LangEN]
	}
	return names[v]
}

// Renderer is a pure function from (document, variant, language) to an HTML
// page: no state beyond the parsed templates, fully deterministic.
type Renderer struct {
	tpls map[Variant]*template.Template
}

// pageData is the execution context shared by all variants.
type pageData struct {
	Data model.ResumeData
	T    map[string]string
	ZH   bool
	// HeadTitle is the first experience title, used by the minimal header
	// subtitle and the fresh-grad objective line, with a localized fallback.
	HeadTitle string
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatDate":  FormatDate,
		"formatRange": FormatRange,
		"bullets":     Bullets,
		"skillNames":  SkillNames,
		// avatars are data URIs, which the html/template URL filter would
		// otherwise reject
		"dataURL": func(s string) template.URL { return template.URL(s) },
		"initial": func(s string) string {
			for _, r := range s {
				return string(r)
			}
			return ""
		},
	}
}

// New parses all variant templates from tplDir up front so a malformed
// template fails at startup, not mid-export.
func New(tplDir string) (*Renderer, error) {
	r := &Renderer{tpls: map[Variant]*template.Template{}}
	for _, v := range Variants {
		path := filepath.Join(tplDir, string(v)+".html")
		tpl, err := template.New(string(v) + ".html").Funcs(funcMap()).ParseFiles(path)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v, err)
		}
		r.tpls[v] = tpl
	}
	return r, nil
}

// Render produces the standalone HTML document for one variant.
func (r *Renderer) Render(data model.ResumeData, v Variant, lang model.Language) (string, error) {
	tpl, ok := r.tpls[v]
	if !ok {
		tpl = r.tpls[VariantModern]
	}
	headTitle := ""
	if len(data.Experience) > 0 {
		headTitle = data.Experience[0].Title
	}
	pd := pageData{
		Data:      data,
		T:         Headers(lang),
		ZH:        lang == model.LangZH,
		HeadTitle: headTitle,
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, pd); err != nil {
		return "", fmt.Errorf("render %s: %w", v, err)
	}
	return buf.String(), nil
}
