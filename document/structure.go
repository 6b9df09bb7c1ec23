package document

import (
	"fmt"
	"strings"
)

// SectionSpec is one row of a structure template. Ratio is relative to the
// whole document for top-level rows and to the parent's budget for
// subsections.
type SectionSpec struct {
	Title string
	Level int
	Ratio float64
}

// Template lists the top-level sections of a document type and, for some
// of them, the subsections that replace them.
type Template struct {
	Sections    []SectionSpec
	Subsections map[string][]SectionSpec
}

var templates = map[DocumentType]Template{
	TypeReport: {
		Sections: []SectionSpec{
			{"서론", 1, 0.20},
			{"본론", 1, 0.60},
			{"결론", 1, 0.20},
		},
		Subsections: map[string][]SectionSpec{
			"서론": {
				{"연구 배경", 2, 0.5},
				{"연구 목적", 2, 0.5},
			},
			"본론": {
				{"이론적 배경", 2, 0.3},
				{"주요 내용 분석", 2, 0.4},
				{"사례 및 적용", 2, 0.3},
			},
			"결론": {
				{"요약", 2, 0.5},
				{"향후 전망", 2, 0.5},
			},
		},
	},
	TypeBusinessReport: {
		Sections: []SectionSpec{
			{"배경", 1, 0.15},
			{"문제점 분석", 1, 0.20},
			{"상세 분석", 1, 0.30},
			{"해결 방안", 1, 0.25},
			{"기대 효과", 1, 0.10},
		},
	},
	TypeEssay: {
		Sections: []SectionSpec{
			{"주장 제시", 1, 0.10},
			{"근거 1", 1, 0.25},
			{"근거 2", 1, 0.25},
			{"반론 및 재반박", 1, 0.20},
			{"결론", 1, 0.20},
		},
	},
	TypeProposal: {
		Sections: []SectionSpec{
			{"기획 배경", 1, 0.15},
			{"현황 분석", 1, 0.20},
			{"기획 내용", 1, 0.35},
			{"예상 효과", 1, 0.20},
			{"실행 계획", 1, 0.10},
		},
	},
}

// Templates returns a deep copy of the built-in templates keyed by
// document type.
func Templates() map[DocumentType]Template {
	out := make(map[DocumentType]Template, len(templates))
	for k, v := range templates {
		out[k] = v.clone()
	}
	return out
}

func (t Template) clone() Template {
	c := Template{Sections: append([]SectionSpec(nil), t.Sections...)}
	if t.Subsections != nil {
		c.Subsections = make(map[string][]SectionSpec, len(t.Subsections))
		for title, subs := range t.Subsections {
			c.Subsections[title] = append([]SectionSpec(nil), subs...)
		}
	}
	return c
}

// TemplateFor returns the template of docType, falling back to the report
// template for types without one. The result shares storage with the
// package table and must not be modified.
func TemplateFor(docType DocumentType) Template {
	if t, ok := templates[docType]; ok {
		return t
	}
	return templates[TypeReport]
}

// BuildStructure lays out the sections of a document and gives each a
// character budget. Budgets are floored and the remainder is not
// redistributed, so the total may fall short of the target by less than
// one character per section.
func BuildStructure(docType DocumentType, meta *Metadata, topic string) *Structure {
	tpl := TemplateFor(docType)
	var sections []*Section
	order := 1
	for _, spec := range tpl.Sections {
		allocated := int(float64(meta.TargetLengthChars) * spec.Ratio)
		subs, ok := tpl.Subsections[spec.Title]
		if !ok || len(subs) == 0 {
			sections = append(sections, &Section{
				Title:             spec.Title,
				Level:             spec.Level,
				TargetLengthChars: allocated,
				Order:             order,
			})
			order++
			continue
		}
		for _, sub := range subs {
			sections = append(sections, &Section{
				Title:             sub.Title,
				Level:             sub.Level,
				TargetLengthChars: int(float64(allocated) * sub.Ratio),
				Order:             order,
			})
			order++
		}
	}
	return &Structure{
		Sections: sections,
		Outline:  buildOutline(sections),
	}
}

func buildOutline(sections []*Section) []string {
	outline := make([]string, 0, len(sections))
	for _, s := range sections {
		indent := strings.Repeat("  ", max(s.Level-1, 0))
		outline = append(outline, fmt.Sprintf("%s%d. %s", indent, s.Order, s.Title))
	}
	return outline
}
