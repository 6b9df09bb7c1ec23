package server

import (
	"time"

	"github.com/patrickmn/go-cache"

	"doc_auto_formatter/document"
)

// documentStore keeps generated documents for a while so they can be
// re-rendered in another format without generating again.
type documentStore struct {
	c *cache.Cache
}

func newDocumentStore(ttl time.Duration) *documentStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &documentStore{c: cache.New(ttl, 10*time.Minute)}
}

func (s *documentStore) set(id string, doc *document.GeneratedDocument) {
	s.c.Set(id, doc, cache.DefaultExpiration)
}

func (s *documentStore) get(id string) (*document.GeneratedDocument, bool) {
	v, ok := s.c.Get(id)
	if !ok {
		return nil, false
	}
	doc, ok := v.(*document.GeneratedDocument)
	return doc, ok
}
