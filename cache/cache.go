// Package cache wraps document generation with a TTL memo. Generation is
// pure, so the cache is a plain speedup for render paths that regenerate
// the same document on every page view.
package cache

import (
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/minio/highwayhash"

	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/schema"
)

var hashKey = make([]byte, 32)

type entry struct {
	doc jsonld.Document
	at  time.Time
}

// Generator memoizes schema.Generate results keyed by a hash of the type,
// the record and the page identity. Safe for concurrent use.
type Generator struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[uint64]entry
}

// New builds a Generator with the given TTL. A non-positive TTL disables
// caching and every call generates fresh.
func New(ttl time.Duration) *Generator {
	return &Generator{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uint64]entry),
	}
}

// Generate returns the cached document when a fresh entry exists for the
// same (type, record, permalink) triple, generating and storing otherwise.
// Records that cannot be hashed fall through to direct generation.
func (g *Generator) Generate(typ jsonld.SchemaType, rec jsonld.Record, pc *jsonld.PageContext) (jsonld.Document, error) {
	if g == nil || g.ttl <= 0 {
		return schema.Generate(typ, rec, pc)
	}
	key, ok := g.key(typ, rec, pc)
	if !ok {
		return schema.Generate(typ, rec, pc)
	}

	now := g.now()
	g.mu.Lock()
	if e, hit := g.entries[key]; hit && now.Sub(e.at) < g.ttl {
		g.mu.Unlock()
		return e.doc, nil
	}
	g.mu.Unlock()

	doc, err := schema.Generate(typ, rec, pc)
	if err != nil || doc == nil {
		return doc, err
	}
	g.mu.Lock()
	g.entries[key] = entry{doc: doc, at: now}
	g.mu.Unlock()
	return doc, nil
}

// Invalidate drops every cached entry.
func (g *Generator) Invalidate() {
	g.mu.Lock()
	g.entries = make(map[uint64]entry)
	g.mu.Unlock()
}

func (g *Generator) key(typ jsonld.SchemaType, rec jsonld.Record, pc *jsonld.PageContext) (uint64, bool) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, false
	}
	h.Write([]byte(typ))
	h.Write([]byte{0})
	payload, err := json.Marshal(rec)
	if err != nil {
		return 0, false
	}
	h.Write(payload)
	h.Write([]byte{0})
	if pc != nil {
		h.Write([]byte(pc.Permalink))
	}
	return h.Sum64(), true
}
