package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPipeline(t *testing.T) *Pipeline {
	t.Helper()
	agent, err := NewAgent(MockLLM{}, nil)
	require.NoError(t, err)
	p, err := NewPipeline(agent, nil)
	require.NoError(t, err)
	return p
}

func TestPipeline_ReportScenario(t *testing.T) {
	doc, err := newMockPipeline(t).Run(context.Background(), map[string]any{
		"document_type":     "과제 레포트",
		"target_audience":   "대학교",
		"topic":             "T",
		"length":            "A4 1장",
		"writing_style":     "학술적",
		"required_keywords": []any{"K1"},
	})
	require.NoError(t, err)

	assert.Contains(t, doc.Content, "## 1. 연구 배경\n")
	assert.Contains(t, doc.Content, "## 7. 향후 전망\n")
	assert.Contains(t, doc.Content, "K1")
	assert.Equal(t, 2000, doc.Metadata.TargetLengthChars)
	assert.Len(t, doc.StructureSummary, 7)

	require.GreaterOrEqual(t, len(doc.Checkpoints), 3)
	assert.Contains(t, doc.Checkpoints, "[OK] 필수 키워드 포함: 1/1개 포함")
	var hasLength bool
	for _, c := range doc.Checkpoints {
		if strings.HasPrefix(c, "[OK] 분량 적정성: 목표 분량(2000자)") {
			hasLength = true
		}
	}
	assert.True(t, hasLength)
	assert.Equal(t, proofreadTip, doc.Checkpoints[len(doc.Checkpoints)-1])
}

func TestPipeline_Defaults(t *testing.T) {
	doc, err := newMockPipeline(t).Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 6000, doc.Metadata.TargetLengthChars)
	assert.Contains(t, doc.Overview, "'주제 미지정'")
}

func TestPipeline_GenerationFailure(t *testing.T) {
	agent, err := NewAgent(&recordingLLM{failAt: 1}, nil)
	require.NoError(t, err)
	p, err := NewPipeline(agent, nil)
	require.NoError(t, err)

	doc, err := p.Run(context.Background(), map[string]any{"topic": "T"})
	require.Error(t, err)
	assert.Nil(t, doc)
}

func TestNewPipeline_RequiresAgent(t *testing.T) {
	_, err := NewPipeline(nil, nil)
	require.Error(t, err)
}
