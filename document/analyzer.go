package document

var purposeByType = map[DocumentType]Purpose{
	TypeReport:           PurposeExplanatory,
	TypeBusinessReport:   PurposeReporting,
	TypeProposal:         PurposePersuasive,
	TypeExperimentReport: PurposeReporting,
	TypeBookReview:       PurposeEvaluation,
	TypeEssay:            PurposePersuasive,
	TypeBusinessDocument: PurposeReporting,
}

var purposeByStyle = map[WritingStyle]Purpose{
	StyleArgumentative: PurposePersuasive,
	StyleReport:        PurposeReporting,
	StyleAcademic:      PurposeExplanatory,
}

// difficulty describes how prose should read for an audience.
type difficulty struct {
	VocabularyLevel    string
	SentenceComplexity string
	ExplanationDepth   string
}

var difficultyByAudience = map[Audience]difficulty{
	AudienceMiddleSchool: {"기본", "단순", "기초"},
	AudienceHighSchool:   {"일반", "중간", "중급"},
	AudienceUniversity:   {"학술용어_포함", "복잡", "심화"},
	AudienceCompany:      {"전문용어_포함", "간결", "실무"},
	AudiencePublicAgency: {"공식용어_포함", "명확", "공식"},
}

var defaultCriteriaByPurpose = map[Purpose][]string{
	PurposeExplanatory: {"명확성", "체계성", "완전성"},
	PurposePersuasive:  {"논리성", "설득력", "근거의 타당성"},
	PurposeReporting:   {"객관성", "정확성", "완전성"},
	PurposeEvaluation:  {"비판적 사고", "객관성", "깊이"},
}

var genericCriteria = []string{"논리성", "객관성", "완전성"}

// Analyze derives document metadata from a normalized input and its
// resolved length. It is deterministic and has no failure modes.
func Analyze(in UserInput, targetChars int) *Metadata {
	purpose := ResolvePurpose(in)
	d := resolveDifficulty(in)
	return &Metadata{
		Purpose:            purpose,
		DifficultyLevel:    in.TargetAudience,
		VocabularyLevel:    d.VocabularyLevel,
		SentenceComplexity: d.SentenceComplexity,
		EvaluationFocus:    evaluationFocus(in, purpose),
		TargetLengthChars:  targetChars,
		TargetLengthPages:  (targetChars + CharsPerPage - 1) / CharsPerPage,
	}
}

// ResolvePurpose looks at the document type first, then the style.
func ResolvePurpose(in UserInput) Purpose {
	if p, ok := purposeByType[in.DocumentType]; ok {
		return p
	}
	if p, ok := purposeByStyle[in.WritingStyle]; ok {
		return p
	}
	return PurposeExplanatory
}

func resolveDifficulty(in UserInput) difficulty {
	d, ok := difficultyByAudience[in.TargetAudience]
	if !ok {
		d = difficultyByAudience[AudienceUniversity]
	}
	switch in.WritingStyle {
	case StyleAcademic:
		d.VocabularyLevel = "학술용어_포함"
		d.SentenceComplexity = "복잡"
	case StyleReport:
		d.SentenceComplexity = "간결"
	}
	return d
}

func evaluationFocus(in UserInput, purpose Purpose) []string {
	if len(in.EvaluationCriteria) > 0 {
		return append([]string(nil), in.EvaluationCriteria...)
	}
	if c, ok := defaultCriteriaByPurpose[purpose]; ok {
		return append([]string(nil), c...)
	}
	return append([]string(nil), genericCriteria...)
}
