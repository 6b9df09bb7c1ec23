package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc_auto_formatter/document"
)

func sampleDoc() *document.GeneratedDocument {
	return &document.GeneratedDocument{
		Overview:         "'기후 변화'에 대한 과제 레포트입니다.",
		StructureSummary: []string{"1. 서론", "  2. 배경"},
		Content:          "# 1. 서론\n서론 본문\n\n## 2. 배경\n배경 본문\n\n",
		Checkpoints:      []string{"[OK] 분량 적정성", "[TIP] 검토"},
		Metadata:         &document.Metadata{TargetLengthChars: 2000},
	}
}

func TestText(t *testing.T) {
	out := Text(sampleDoc())
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 8)
	assert.Equal(t, strings.Repeat("=", 80), lines[0])
	assert.Equal(t, "[1] 전체 문서 개요", lines[1])
	assert.Equal(t, "'기후 변화'에 대한 과제 레포트입니다.", lines[4])
	assert.Equal(t, "전체 구조:", lines[6])
	assert.Equal(t, "  1. 서론", lines[7])
	assert.Equal(t, "    2. 배경", lines[8])
	assert.Contains(t, out, "[2] 자동 생성된 문서 본문")
	assert.Contains(t, out, "[3] 제출용 체크포인트\n"+strings.Repeat("=", 80)+"\n\n[OK] 분량 적정성\n[TIP] 검토\n")
	assert.True(t, strings.HasSuffix(out, "[TIP] 검토\n"))
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleDoc())

	assert.True(t, strings.HasPrefix(out, "# 문서/레포트 자동 생성 결과\n\n## 📋 전체 문서 개요\n"))
	assert.Contains(t, out, "### 문서 구조\n\n- 1. 서론\n-   2. 배경\n")
	assert.Contains(t, out, "## ✅ 제출용 체크포인트\n\n- [OK] 분량 적정성\n- [TIP] 검토\n")
}

func TestHTML(t *testing.T) {
	out, err := HTML(sampleDoc())
	require.NoError(t, err)

	assert.Contains(t, out, `<meta charset="utf-8">`)
	assert.Contains(t, out, "<h1>문서/레포트 자동 생성 결과</h1>")
	assert.Contains(t, out, "<li>[OK] 분량 적정성</li>")
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"TXT", FormatText},
		{"md", FormatMarkdown},
		{" Markdown ", FormatMarkdown},
		{"html", FormatHTML},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := ParseFormat("pdf")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Render(sampleDoc(), Format("pdf"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "doc.md")
	require.NoError(t, SaveToFile(sampleDoc(), path, FormatMarkdown))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Markdown(sampleDoc()), string(data))
	assert.Equal(t, ".md", FormatMarkdown.Ext())
}
