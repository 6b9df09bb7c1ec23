package document

// DocumentType is the kind of document requested. Values outside the
// constants below are kept verbatim so custom types still flow through.
type DocumentType string

const (
	TypeReport           DocumentType = "과제 레포트"
	TypeBusinessReport   DocumentType = "보고서"
	TypeProposal         DocumentType = "기획서"
	TypeExperimentReport DocumentType = "실험 보고서"
	TypeBookReview       DocumentType = "독서감상문"
	TypeEssay            DocumentType = "논술문"
	TypeBusinessDocument DocumentType = "업무 보고"
)

// Known reports whether t is one of the built-in document types.
func (t DocumentType) Known() bool {
	switch t {
	case TypeReport, TypeBusinessReport, TypeProposal, TypeExperimentReport,
		TypeBookReview, TypeEssay, TypeBusinessDocument:
		return true
	}
	return false
}

// Audience is who the document is submitted to.
type Audience string

const (
	AudienceMiddleSchool Audience = "중학교"
	AudienceHighSchool   Audience = "고등학교"
	AudienceUniversity   Audience = "대학교"
	AudienceCompany      Audience = "회사"
	AudiencePublicAgency Audience = "공공기관"
)

func (a Audience) Known() bool {
	switch a {
	case AudienceMiddleSchool, AudienceHighSchool, AudienceUniversity,
		AudienceCompany, AudiencePublicAgency:
		return true
	}
	return false
}

// WritingStyle is the requested prose register.
type WritingStyle string

const (
	StyleExplanatory   WritingStyle = "설명형"
	StyleArgumentative WritingStyle = "논증형"
	StyleReport        WritingStyle = "보고체"
	StyleNarrative     WritingStyle = "서술형"
	StyleAcademic      WritingStyle = "학술적"
)

func (s WritingStyle) Known() bool {
	switch s {
	case StyleExplanatory, StyleArgumentative, StyleReport, StyleNarrative, StyleAcademic:
		return true
	}
	return false
}

// Purpose is the derived intent of a document.
type Purpose string

const (
	PurposeExplanatory Purpose = "설명용"
	PurposePersuasive  Purpose = "설득용"
	PurposeReporting   Purpose = "보고용"
	PurposeEvaluation  Purpose = "평가용"
)

// UserInput is a normalized generation request. Every field is populated
// by ParseInput; list fields are never nil.
type UserInput struct {
	DocumentType       DocumentType `json:"document_type"`
	TargetAudience     Audience     `json:"target_audience"`
	Topic              string       `json:"topic"`
	Length             string       `json:"length"`
	WritingStyle       WritingStyle `json:"writing_style"`
	RequiredKeywords   []string     `json:"required_keywords"`
	ExcludedContent    []string     `json:"excluded_content"`
	EvaluationCriteria []string     `json:"evaluation_criteria"`
}

// Metadata is what Analyze derives from a UserInput.
type Metadata struct {
	Purpose            Purpose  `json:"purpose"`
	DifficultyLevel    Audience `json:"difficulty_level"`
	VocabularyLevel    string   `json:"vocabulary_level"`
	SentenceComplexity string   `json:"sentence_complexity"`
	EvaluationFocus    []string `json:"evaluation_focus"`
	TargetLengthChars  int      `json:"target_length_chars"`
	TargetLengthPages  int      `json:"target_length_pages"`
}

// Section is one titled block with its own length budget. Content is empty
// until the generator fills it.
type Section struct {
	Title             string `json:"title"`
	Level             int    `json:"level"`
	Content           string `json:"content"`
	TargetLengthChars int    `json:"target_length_chars"`
	Order             int    `json:"order"`
}

// Structure holds sections in display order together with the outline.
type Structure struct {
	Sections []*Section `json:"sections"`
	Outline  []string   `json:"outline"`
}

// GeneratedDocument is the assembled result of one generation request.
type GeneratedDocument struct {
	Overview         string    `json:"overview"`
	StructureSummary []string  `json:"structure_summary"`
	Content          string    `json:"content"`
	Checkpoints      []string  `json:"checkpoints"`
	Metadata         *Metadata `json:"metadata"`
}
