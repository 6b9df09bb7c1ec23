// Package render turns a generated document into text, markdown or HTML.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"doc_auto_formatter/document"
)

type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps user input to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext is the file extension conventionally used for f.
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	}
	return ".txt"
}

// ContentType is the HTTP content type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

var rule = strings.Repeat("=", 80)

// Text renders the three-part plain text report.
func Text(doc *document.GeneratedDocument) string {
	parts := []string{
		rule,
		"[1] 전체 문서 개요",
		rule,
		"",
		doc.Overview,
		"",
		"전체 구조:",
	}
	for _, item := range doc.StructureSummary {
		parts = append(parts, "  "+item)
	}
	parts = append(parts, "", "",
		rule,
		"[2] 자동 생성된 문서 본문",
		rule,
		"",
		doc.Content,
		"",
		rule,
		"[3] 제출용 체크포인트",
		rule,
		"",
	)
	parts = append(parts, doc.Checkpoints...)
	parts = append(parts, "")
	return strings.Join(parts, "\n")
}

func Markdown(doc *document.GeneratedDocument) string {
	parts := []string{
		"# 문서/레포트 자동 생성 결과\n",
		"## 📋 전체 문서 개요\n",
		doc.Overview,
		"\n",
		"### 문서 구조\n",
	}
	for _, item := range doc.StructureSummary {
		parts = append(parts, "- "+item)
	}
	parts = append(parts, "\n",
		"## 📄 자동 생성된 문서 본문\n",
		doc.Content,
		"\n",
		"## ✅ 제출용 체크포인트\n",
	)
	for _, cp := range doc.Checkpoints {
		parts = append(parts, "- "+cp)
	}
	parts = append(parts, "\n")
	return strings.Join(parts, "\n")
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

const htmlPage = `<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// HTML converts the markdown rendering into a standalone page.
func HTML(doc *document.GeneratedDocument) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(doc)), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return fmt.Sprintf(htmlPage, html.EscapeString("문서/레포트 자동 생성 결과"), buf.String()), nil
}

func Render(doc *document.GeneratedDocument, f Format) (string, error) {
	switch f {
	case FormatText:
		return Text(doc), nil
	case FormatMarkdown:
		return Markdown(doc), nil
	case FormatHTML:
		return HTML(doc)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// SaveToFile renders doc and writes it to path, creating parent directories.
func SaveToFile(doc *document.GeneratedDocument, path string, f Format) error {
	out, err := Render(doc, f)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(out), 0o644)
}
