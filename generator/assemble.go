package generator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"doc_auto_formatter/document"
)

const maxHeadingLevel = 4

// criterionCheckpoints maps recognised evaluation criteria to their canned
// checkpoint line. Unrecognised criteria produce no line.
var criterionCheckpoints = map[string]string{
	"논리성": "[OK] 논리적 흐름: 각 섹션이 이전 내용을 자연스럽게 이어받아 논리적 구조를 형성함",
	"객관성": "[OK] 객관적 서술: 주관적 판단보다는 사실과 근거를 바탕으로 서술함",
	"완전성": "[OK] 내용의 완전성: 주제에 대한 주요 내용이 모두 포함되어 있음",
	"명확성": "[OK] 명확한 표현: 핵심 개념과 주장이 명확하게 제시됨",
	"설득력": "[OK] 설득력 있는 논증: 근거와 예시를 통해 주장을 뒷받침함",
}

var criterionAliases = map[string]string{
	"logic":          "논리성",
	"coherence":      "논리성",
	"objectivity":    "객관성",
	"completeness":   "완전성",
	"clarity":        "명확성",
	"persuasiveness": "설득력",
}

const proofreadTip = "[TIP] 보완 제안: 실제 제출 전에 맞춤법 검사 및 문장 다듬기를 권장합니다."

// Assemble builds the final document from a structure whose sections have
// been written.
func Assemble(st *document.Structure, meta *document.Metadata, in document.UserInput) *document.GeneratedDocument {
	return &document.GeneratedDocument{
		Overview:         Overview(meta, in),
		StructureSummary: st.Outline,
		Content:          FormatContent(st.Sections),
		Checkpoints:      Checkpoints(meta, in, st.Sections),
		Metadata:         meta,
	}
}

func Overview(meta *document.Metadata, in document.UserInput) string {
	return fmt.Sprintf("본 문서는 '%s'에 대한 %s로, %s에 제출하기 위해 작성되었습니다. "+
		"문서의 목적은 %s이며, 총 약 %d자 분량으로 구성됩니다.",
		in.Topic, in.DocumentType, in.TargetAudience, meta.Purpose, meta.TargetLengthChars)
}

// FormatContent renders sections as markdown headings followed by their
// bodies. Heading depth follows the section level, capped at four.
func FormatContent(sections []*document.Section) string {
	var sb strings.Builder
	for _, s := range sections {
		level := min(max(s.Level, 1), maxHeadingLevel)
		fmt.Fprintf(&sb, "%s %d. %s\n", strings.Repeat("#", level), s.Order, s.Title)
		sb.WriteString(s.Content)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Checkpoints lists the self-review lines: one per recognised criterion,
// then length, keyword coverage and a closing tip.
func Checkpoints(meta *document.Metadata, in document.UserInput, sections []*document.Section) []string {
	var out []string
	for _, criterion := range meta.EvaluationFocus {
		key := strings.TrimSpace(criterion)
		if alias, ok := criterionAliases[strings.ToLower(key)]; ok {
			key = alias
		}
		if line, ok := criterionCheckpoints[key]; ok {
			out = append(out, line)
		}
	}

	total := 0
	bodies := make([]string, 0, len(sections))
	for _, s := range sections {
		total += utf8.RuneCountInString(s.Content)
		bodies = append(bodies, s.Content)
	}
	out = append(out, fmt.Sprintf("[OK] 분량 적정성: 목표 분량(%d자) 대비 실제 분량(%d자)", meta.TargetLengthChars, total))

	if len(in.RequiredKeywords) > 0 {
		all := strings.Join(bodies, " ")
		included := 0
		for _, kw := range in.RequiredKeywords {
			if strings.Contains(all, kw) {
				included++
			}
		}
		out = append(out, fmt.Sprintf("[OK] 필수 키워드 포함: %d/%d개 포함", included, len(in.RequiredKeywords)))
	}

	return append(out, proofreadTip)
}
