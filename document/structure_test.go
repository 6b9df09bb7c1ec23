package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_RatiosSumToOne(t *testing.T) {
	for dt, tpl := range Templates() {
		var total float64
		for _, s := range tpl.Sections {
			total += s.Ratio
		}
		assert.InDelta(t, 1.0, total, 1e-9, "top level of %s", dt)

		for parent, subs := range tpl.Subsections {
			var sum float64
			for _, s := range subs {
				sum += s.Ratio
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "subsections of %s/%s", dt, parent)
		}
	}
}

func TestBuildStructure_BudgetDrift(t *testing.T) {
	types := append([]DocumentType{"연구 노트"}, TypeReport, TypeBusinessReport, TypeProposal,
		TypeExperimentReport, TypeBookReview, TypeEssay, TypeBusinessDocument)
	for _, dt := range types {
		for _, target := range []int{1, 999, 2000, 3333, 6000, 12345} {
			st := BuildStructure(dt, &Metadata{TargetLengthChars: target}, "T")
			sum := 0
			for _, s := range st.Sections {
				sum += s.TargetLengthChars
			}
			drift := target - sum
			assert.GreaterOrEqual(t, drift, 0, "%s/%d", dt, target)
			assert.Less(t, drift, len(st.Sections), "%s/%d", dt, target)
		}
	}
}

func TestBuildStructure_OrderIsContiguous(t *testing.T) {
	for dt := range Templates() {
		st := BuildStructure(dt, &Metadata{TargetLengthChars: 6000}, "T")
		require.NotEmpty(t, st.Sections)
		require.Len(t, st.Outline, len(st.Sections))
		for i, s := range st.Sections {
			assert.Equal(t, i+1, s.Order)
			assert.Empty(t, s.Content)
		}
	}
}

func TestBuildStructure_ReportSubsections(t *testing.T) {
	st := BuildStructure(TypeReport, &Metadata{TargetLengthChars: 2000}, "T")

	var titles []string
	var budgets []int
	for _, s := range st.Sections {
		titles = append(titles, s.Title)
		budgets = append(budgets, s.TargetLengthChars)
		assert.Equal(t, 2, s.Level)
	}
	assert.Equal(t, []string{"연구 배경", "연구 목적", "이론적 배경", "주요 내용 분석", "사례 및 적용", "요약", "향후 전망"}, titles)
	assert.Equal(t, []int{200, 200, 360, 480, 360, 200, 200}, budgets)
	assert.Equal(t, "  1. 연구 배경", st.Outline[0])
	assert.Equal(t, "  7. 향후 전망", st.Outline[6])
}

func TestBuildStructure_FlatTemplate(t *testing.T) {
	st := BuildStructure(TypeBusinessReport, &Metadata{TargetLengthChars: 6000}, "T")

	require.Len(t, st.Sections, 5)
	assert.Equal(t, "배경", st.Sections[0].Title)
	assert.Equal(t, 900, st.Sections[0].TargetLengthChars)
	assert.Equal(t, 1, st.Sections[0].Level)
	assert.Equal(t, "1. 배경", st.Outline[0])
	assert.Equal(t, "5. 기대 효과", st.Outline[4])
}

func TestBuildStructure_UnknownTypeFallsBackToReport(t *testing.T) {
	meta := &Metadata{TargetLengthChars: 4000}
	want := BuildStructure(TypeReport, meta, "T")

	for _, dt := range []DocumentType{"연구 노트", TypeBookReview, TypeExperimentReport, TypeBusinessDocument} {
		got := BuildStructure(dt, meta, "T")
		assert.Equal(t, want.Outline, got.Outline, "type %s", dt)
		require.Len(t, got.Sections, len(want.Sections))
		for i := range want.Sections {
			assert.Equal(t, *want.Sections[i], *got.Sections[i], "type %s", dt)
		}
	}
}

func TestBuildStructure_HugeLengthKeepsPositiveBudgets(t *testing.T) {
	target := LengthToChars("5000000000000000장")
	st := BuildStructure(TypeReport, &Metadata{TargetLengthChars: target}, "T")
	for _, s := range st.Sections {
		assert.Positive(t, s.TargetLengthChars, s.Title)
	}
}

func TestTemplates_ReturnsDeepCopy(t *testing.T) {
	got := Templates()
	assert.Len(t, got, 4)

	report := got[TypeReport]
	report.Sections[0].Title = "변경됨"
	report.Subsections["서론"][0].Ratio = 0
	delete(report.Subsections, "본론")

	orig := TemplateFor(TypeReport)
	assert.Equal(t, "서론", orig.Sections[0].Title)
	assert.Equal(t, 0.5, orig.Subsections["서론"][0].Ratio)
	assert.Contains(t, orig.Subsections, "본론")
}
