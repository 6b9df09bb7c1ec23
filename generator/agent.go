package generator

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"doc_auto_formatter/document"
	"doc_auto_formatter/logger"
)

const (
	sectionTemperature = 0.7
	// charsPerToken is a rough Korean chars-per-token ratio.
	charsPerToken = 2
)

var tracer = otel.Tracer("doc_auto_formatter/generator")

// Agent writes section bodies one at a time through an LLMClient.
type Agent struct {
	llm LLMClient
	log *logger.Logger
}

func NewAgent(llm LLMClient, log *logger.Logger) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Agent{llm: llm, log: log}, nil
}

// WriteSections fills the Content of every section in ascending Order.
// Each prompt sees the two most recently finished sections, so sections are
// generated strictly one after another. The first generation error aborts
// the whole document.
func (a *Agent) WriteSections(ctx context.Context, st *document.Structure, meta *document.Metadata, in document.UserInput) error {
	sections := make([]*document.Section, len(st.Sections))
	copy(sections, st.Sections)
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })

	var session draftSession
	for _, sec := range sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		content, err := a.writeSection(ctx, sec, meta, in, session.recent(contextWindow))
		if err != nil {
			return fmt.Errorf("generate section %d (%s): %w", sec.Order, sec.Title, err)
		}
		sec.Content = content
		session.add(sec)
	}
	return nil
}

func (a *Agent) writeSection(ctx context.Context, sec *document.Section, meta *document.Metadata, in document.UserInput, previous []*document.Section) (string, error) {
	ctx, span := tracer.Start(ctx, "generator.section")
	defer span.End()
	span.SetAttributes(
		attribute.Int("section.order", sec.Order),
		attribute.String("section.title", sec.Title),
		attribute.Int("section.target_chars", sec.TargetLengthChars),
	)

	prompt := BuildSectionPrompt(sec, meta, in, previous)
	raw, err := a.llm.Generate(ctx, prompt, sectionTemperature, sec.TargetLengthChars/charsPerToken)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	content := PostProcess(raw, in.RequiredKeywords, in.ExcludedContent, sec.TargetLengthChars)
	a.log.Debug("section generated",
		"order", sec.Order,
		"title", sec.Title,
		"target_chars", sec.TargetLengthChars,
		"raw_chars", len([]rune(raw)),
		"final_chars", len([]rune(content)),
	)
	return content, nil
}
