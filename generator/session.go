package generator

import "doc_auto_formatter/document"

// contextWindow is how many finished sections are shown to the model.
const contextWindow = 2

// draftSession accumulates finished sections while a document is written.
// Later prompts read from it, so sections must be added in order.
type draftSession struct {
	completed []*document.Section
}

func (s *draftSession) add(sec *document.Section) {
	s.completed = append(s.completed, sec)
}

// recent returns up to n most recently finished sections, oldest first.
func (s *draftSession) recent(n int) []*document.Section {
	if len(s.completed) <= n {
		return s.completed
	}
	return s.completed[len(s.completed)-n:]
}
