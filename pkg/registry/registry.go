// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry holds the set of schema documents a validator
// knows about, keyed by absolute URI. A document is either supplied
// directly by the caller (via [Registry.Add]) or fetched lazily
// through a FetchHook the first time some other schema's $ref points
// at its URI. Entries record which of the two happened, since a
// strict validator may want to forbid silent network fetches.
package registry

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/kschema/jsonschema/pkg/schema"
	"github.com/kschema/jsonschema/pkg/uri"
)

// FetchHook retrieves the raw bytes of a schema document given its URI.
// It is the caller-supplied half of remote $ref resolution; Registry
// decides when to call it and how to cache the result.
type FetchHook func(uri *url.URL) ([]byte, error)

// Provenance records how an entry came to be in the registry.
type Provenance int

const (
	// UserSupplied means the caller added the schema directly.
	UserSupplied Provenance = iota
	// Fetched means the schema was retrieved through a FetchHook.
	Fetched
)

// String implements fmt.Stringer.
func (p Provenance) String() string {
	if p == Fetched {
		return "fetched"
	}
	return "user-supplied"
}

// entry is one schema document tracked by the registry.
type entry struct {
	schema     *schema.Schema
	provenance Provenance
}

// Registry is a thread-safe collection of schema documents keyed by
// their absolute base URI (fragment-free).
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	fetch   FetchHook
	vocab   *schema.Vocabulary
}

// New returns an empty Registry. defaultVocab is used to parse
// documents fetched via fetch when they don't declare their own
// $schema; fetch may be nil, in which case remote $ref resolution
// fails with an error instead of reaching out to the network.
func New(defaultVocab *schema.Vocabulary, fetch FetchHook) *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		fetch:   fetch,
		vocab:   defaultVocab,
	}
}

// Add registers a user-supplied, already-resolved schema under uri.
// It is an error to add a schema at a URI that is already registered.
func (r *Registry) Add(uri *url.URL, s *schema.Schema) error {
	key := registryKey(uri)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("registry: %q is already registered", key)
	}
	r.entries[key] = &entry{schema: s, provenance: UserSupplied}
	return nil
}

// Lookup returns the schema registered at uri's base (fragment-free)
// URI, if any.
func (r *Registry) Lookup(uri *url.URL) *schema.Schema {
	key := registryKey(uri)
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[key]; ok {
		return e.schema
	}
	return nil
}

// Provenance reports how the schema at uri's base URI entered the
// registry, and whether it is registered at all.
func (r *Registry) Provenance(uri *url.URL) (Provenance, bool) {
	key := registryKey(uri)
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok {
		return 0, false
	}
	return e.provenance, true
}

// Loader adapts the registry into the [schema.ResolveOpts.Loader]
// signature used by every draft package's resolver: it checks the
// registry first, then falls back to fetching and parsing a document,
// recording it as Fetched.
func (r *Registry) Loader(schemaID string, u *url.URL) (*schema.Schema, error) {
	if s := r.Lookup(u); s != nil {
		return s, nil
	}

	if r.fetch == nil {
		return nil, fmt.Errorf("registry: no fetch hook configured to load %q", u)
	}

	body, err := r.fetch(u)
	if err != nil {
		return nil, fmt.Errorf("registry: fetching %q: %w", u, err)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("registry: %q did not contain valid JSON: %w", u, err)
	}

	var defaultSchemaID string
	if r.vocab != nil {
		defaultSchemaID = r.vocab.Schema
	}
	s, err := schema.SchemaFromJSON(defaultSchemaID, u, raw)
	if err != nil {
		return nil, fmt.Errorf("registry: parsing %q: %w", u, err)
	}

	if err := s.Resolve(&schema.ResolveOpts{URI: u, Loader: r.Loader}); err != nil {
		return nil, fmt.Errorf("registry: resolving %q: %w", u, err)
	}

	key := registryKey(u)
	r.mu.Lock()
	if _, ok := r.entries[key]; !ok {
		r.entries[key] = &entry{schema: s, provenance: Fetched}
	}
	existing := r.entries[key].schema
	r.mu.Unlock()

	return existing, nil
}

// registryKey normalizes u down to the fragment-free string used as a
// map key; the fragment identifies an anchor or pointer within the
// document, not the document itself.
func registryKey(u *url.URL) string {
	return uri.Key(u)
}
