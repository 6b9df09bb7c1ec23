package document

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultDocumentType = TypeReport
	DefaultAudience     = AudienceUniversity
	DefaultWritingStyle = StyleAcademic
	DefaultLength       = "A4 3장"
	DefaultTopic        = "주제 미지정"

	// CharsPerPage approximates one A4 page of Korean prose.
	CharsPerPage       = 2000
	defaultLengthChars = 3 * CharsPerPage
)

type synonymGroup[T ~string] struct {
	keywords []string
	value    T
}

var documentTypeSynonyms = []synonymGroup[DocumentType]{
	{[]string{"레포트", "리포트", "report"}, TypeReport},
	{[]string{"보고서", "보고"}, TypeBusinessReport},
	{[]string{"기획", "제안"}, TypeProposal},
	{[]string{"실험", "실습"}, TypeExperimentReport},
	{[]string{"독서", "감상"}, TypeBookReview},
	{[]string{"논술", "에세이"}, TypeEssay},
	{[]string{"업무", "업보"}, TypeBusinessDocument},
}

var audienceSynonyms = []synonymGroup[Audience]{
	{[]string{"중학"}, AudienceMiddleSchool},
	{[]string{"고등"}, AudienceHighSchool},
	{[]string{"대학", "대학원"}, AudienceUniversity},
	{[]string{"회사", "기업", "직장"}, AudienceCompany},
	{[]string{"공공", "기관", "정부"}, AudiencePublicAgency},
}

var styleSynonyms = []synonymGroup[WritingStyle]{
	{[]string{"설명"}, StyleExplanatory},
	{[]string{"논증"}, StyleArgumentative},
	{[]string{"보고"}, StyleReport},
	{[]string{"서술"}, StyleNarrative},
	{[]string{"학술"}, StyleAcademic},
}

type lengthPattern struct {
	re      *regexp.Regexp
	perUnit int
}

// Order matters: the first matching pattern wins.
var lengthPatterns = []lengthPattern{
	{regexp.MustCompile(`(?i)A4\s*(\d+)\s*(?:장|pages?)`), CharsPerPage},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:장|pages?)`), CharsPerPage},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:자|characters?)`), 1},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:글자|chars?)`), 1},
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// ParseInput turns a loosely typed request into a UserInput. It never
// fails: missing values get defaults and unrecognised values pass through.
func ParseInput(raw map[string]any) UserInput {
	return UserInput{
		DocumentType:       matchSynonym(stringField(raw, "document_type"), documentTypeSynonyms, DefaultDocumentType),
		TargetAudience:     matchSynonym(stringField(raw, "target_audience"), audienceSynonyms, DefaultAudience),
		Topic:              parseTopic(stringField(raw, "topic")),
		Length:             parseLength(stringField(raw, "length")),
		WritingStyle:       matchSynonym(stringField(raw, "writing_style"), styleSynonyms, DefaultWritingStyle),
		RequiredKeywords:   parseList(raw["required_keywords"]),
		ExcludedContent:    parseList(raw["excluded_content"]),
		EvaluationCriteria: parseList(raw["evaluation_criteria"]),
	}
}

// LengthToChars resolves a length description such as "A4 3장" or
// "1500자" to a character count. Unrecognised text, and counts too large
// for an int, resolve to 6000.
func LengthToChars(length string) int {
	for _, p := range lengthPatterns {
		m := p.re.FindStringSubmatch(length)
		if len(m) < 2 {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n > math.MaxInt/p.perUnit {
			return defaultLengthChars
		}
		return n * p.perUnit
	}
	return defaultLengthChars
}

func stringField(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func matchSynonym[T ~string](value string, groups []synonymGroup[T], def T) T {
	if value == "" {
		return def
	}
	lower := strings.ToLower(value)
	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return g.value
			}
		}
	}
	return T(value)
}

func parseTopic(value string) string {
	if value == "" {
		return DefaultTopic
	}
	return value
}

func parseLength(value string) string {
	if value == "" {
		return DefaultLength
	}
	for _, p := range lengthPatterns {
		if p.re.MatchString(value) {
			return value
		}
	}
	if digitsOnly.MatchString(value) {
		return fmt.Sprintf("A4 %s장", value)
	}
	return value
}

func parseList(value any) []string {
	out := []string{}
	switch v := value.(type) {
	case string:
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	case []string:
		for _, item := range v {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	case []any:
		for _, item := range v {
			if item == nil {
				continue
			}
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
