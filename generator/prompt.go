package generator

import (
	"fmt"
	"strings"

	"doc_auto_formatter/document"
)

const previewRunes = 200

// BuildSectionPrompt builds the generation prompt for one section, showing
// the model the given previously written sections for continuity.
func BuildSectionPrompt(sec *document.Section, meta *document.Metadata, in document.UserInput, previous []*document.Section) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "주제: %s\n", in.Topic)
	fmt.Fprintf(&sb, "문서 종류: %s\n", in.DocumentType)
	fmt.Fprintf(&sb, "제출 대상: %s\n", in.TargetAudience)
	fmt.Fprintf(&sb, "문체: %s\n", in.WritingStyle)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "현재 작성할 섹션: %s\n", sec.Title)
	fmt.Fprintf(&sb, "섹션 레벨: %d\n", sec.Level)
	fmt.Fprintf(&sb, "목표 분량: 약 %d자\n", sec.TargetLengthChars)
	sb.WriteString("\n")
	sb.WriteString("문체 요구사항:\n")
	fmt.Fprintf(&sb, "- 어휘 수준: %s\n", meta.VocabularyLevel)
	fmt.Fprintf(&sb, "- 문장 복잡도: %s\n", meta.SentenceComplexity)
	sb.WriteString("\n")

	if len(previous) > 0 {
		sb.WriteString("이전 섹션들:\n")
		for _, p := range previous {
			fmt.Fprintf(&sb, "- %s: %s...\n", p.Title, truncateRunes(p.Content, previewRunes))
		}
		sb.WriteString("\n")
	}

	if len(in.RequiredKeywords) > 0 {
		fmt.Fprintf(&sb, "반드시 포함할 키워드: %s\n", strings.Join(in.RequiredKeywords, ", "))
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "위 조건에 맞춰 '%s' 섹션을 완성된 문장으로 작성하세요. "+
		"형식만 제시하지 말고 실제 내용을 포함하여 작성하세요. "+
		"논리적이고 자연스러운 문장으로 작성하며, "+
		"이전 섹션과의 연결성을 고려하세요.", sec.Title)
	return sb.String()
}
