// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema_test

import (
	"net/url"
	"testing"

	"github.com/kschema/jsonschema/pkg/jsonschema"
	"github.com/kschema/jsonschema/pkg/output"
)

func TestNewValidatesDefaultDraft(t *testing.T) {
	s, err := jsonschema.New([]byte(`{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"required": ["name"]
	}`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.Validate(map[string]any{"name": "ok"}); err != nil {
		t.Fatalf("Validate(valid instance): %v", err)
	}
	if err := s.Validate(map[string]any{}); err == nil {
		t.Fatalf("Validate(missing required): expected an error")
	}
}

func TestCompilerSelectsDraft(t *testing.T) {
	c := jsonschema.NewCompiler(&jsonschema.Options{DefaultDraft: jsonschema.Draft7})
	s, err := c.Compile(nil, []byte(`{
		"type": "object",
		"properties": {"n": {"type": "integer"}}
	}`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if err := s.Validate(map[string]any{"n": 1}); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := s.Validate(map[string]any{"n": "not an int"}); err == nil {
		t.Fatalf("Validate: expected a type error")
	}
}

func TestValidateWithFormatRendersOutput(t *testing.T) {
	c := jsonschema.NewCompiler(&jsonschema.Options{OutputFormat: jsonschema.OutputFlag})
	s, err := c.Compile(nil, []byte(`{"type": "string"}`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	got := c.ValidateWithFormat(s, 123)
	r, ok := got.(output.FlagResult)
	if !ok {
		t.Fatalf("ValidateWithFormat returned %T, want output.FlagResult", got)
	}
	if r.Valid {
		t.Fatalf("got valid, want invalid for a non-string instance against {type: string}")
	}
}

func TestCompilerResolvesRemoteRef(t *testing.T) {
	remote := mustURL(t, "https://example.com/address.json")
	fetched := 0
	c := jsonschema.NewCompiler(&jsonschema.Options{
		FetchHook: func(u *url.URL) ([]byte, error) {
			fetched++
			return []byte(`{"type": "string"}`), nil
		},
	})

	if _, err := c.AddResource(remote, []byte(`{"type": "string"}`)); err != nil {
		t.Fatalf("AddResource: %v", err)
	}

	s, err := c.Compile(mustURL(t, "https://example.com/person.json"), []byte(`{
		"type": "object",
		"properties": {"home": {"$ref": "address.json"}}
	}`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if err := s.Validate(map[string]any{"home": "123 Main St"}); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := s.Validate(map[string]any{"home": 5}); err == nil {
		t.Fatalf("Validate: expected a type error for the referenced schema")
	}
	// The ref target was pre-registered via AddResource, so the fetch
	// hook should never have been consulted.
	if fetched != 0 {
		t.Fatalf("fetch hook called %d times, want 0", fetched)
	}
}

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	if err != nil {
		t.Fatalf("url.Parse(%q): %v", s, err)
	}
	return u
}
