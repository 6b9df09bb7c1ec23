package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"doc_auto_formatter/document"
)

func TestBuildSectionPrompt(t *testing.T) {
	in := document.ParseInput(map[string]any{
		"topic":             "인공지능",
		"required_keywords": []any{"AI", "윤리"},
	})
	meta := document.Analyze(in, 2000)
	sec := &document.Section{Title: "연구 목적", Level: 2, TargetLengthChars: 200, Order: 2}
	prev := []*document.Section{{Title: "연구 배경", Content: strings.Repeat("가", 250), Order: 1}}

	p := BuildSectionPrompt(sec, meta, in, prev)

	assert.Contains(t, p, "주제: 인공지능\n")
	assert.Contains(t, p, "문서 종류: 과제 레포트\n")
	assert.Contains(t, p, "제출 대상: 대학교\n")
	assert.Contains(t, p, "문체: 학술적\n")
	assert.Contains(t, p, "현재 작성할 섹션: 연구 목적\n")
	assert.Contains(t, p, "섹션 레벨: 2\n")
	assert.Contains(t, p, "목표 분량: 약 200자\n")
	assert.Contains(t, p, "- 어휘 수준: 학술용어_포함\n")
	assert.Contains(t, p, "- 문장 복잡도: 복잡\n")
	assert.Contains(t, p, "이전 섹션들:\n- 연구 배경: "+strings.Repeat("가", 200)+"...\n")
	assert.NotContains(t, p, strings.Repeat("가", 201))
	assert.Contains(t, p, "반드시 포함할 키워드: AI, 윤리\n")
	assert.True(t, strings.HasSuffix(p, "이전 섹션과의 연결성을 고려하세요."))
}

func TestBuildSectionPrompt_OmitsEmptyBlocks(t *testing.T) {
	in := document.ParseInput(nil)
	meta := document.Analyze(in, 2000)
	sec := &document.Section{Title: "연구 배경", Level: 2, TargetLengthChars: 200, Order: 1}

	p := BuildSectionPrompt(sec, meta, in, nil)

	assert.NotContains(t, p, "이전 섹션들")
	assert.NotContains(t, p, "반드시 포함할 키워드")
}

func TestDraftSession_Recent(t *testing.T) {
	var s draftSession
	assert.Empty(t, s.recent(2))

	for i := 1; i <= 4; i++ {
		s.add(&document.Section{Order: i})
	}
	got := s.recent(2)
	assert.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Order)
	assert.Equal(t, 4, got[1].Order)
}
