package generator

import (
	"context"
	"errors"

	"doc_auto_formatter/document"
	"doc_auto_formatter/logger"
)

// Pipeline runs one generation request from raw input to an assembled
// document. It keeps no per-request state, so one Pipeline can serve
// concurrent requests as long as its LLMClient can.
type Pipeline struct {
	agent *Agent
	log   *logger.Logger
}

func NewPipeline(agent *Agent, log *logger.Logger) (*Pipeline, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{agent: agent, log: log}, nil
}

// Run normalizes raw, plans the structure, writes every section and
// assembles the result. Either the whole document is produced or an error
// is returned.
func (p *Pipeline) Run(ctx context.Context, raw map[string]any) (*document.GeneratedDocument, error) {
	in := document.ParseInput(raw)
	targetChars := document.LengthToChars(in.Length)
	log := p.log.With("topic", in.Topic, "document_type", string(in.DocumentType))
	log.Info("input parsed", "audience", string(in.TargetAudience), "style", string(in.WritingStyle), "target_chars", targetChars)

	meta := document.Analyze(in, targetChars)
	log.Info("document analyzed", "purpose", string(meta.Purpose), "pages", meta.TargetLengthPages)

	st := document.BuildStructure(in.DocumentType, meta, in.Topic)
	log.Info("structure planned", "sections", len(st.Sections))

	if err := p.agent.WriteSections(ctx, st, meta, in); err != nil {
		log.Error("section generation failed", "error", err)
		return nil, err
	}

	doc := Assemble(st, meta, in)
	log.Info("document assembled", "checkpoints", len(doc.Checkpoints))
	return doc, nil
}
