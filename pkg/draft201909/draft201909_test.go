// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft201909_test

import (
	"testing"

	"github.com/kschema/jsonschema/pkg/draft201909"
	"github.com/kschema/jsonschema/pkg/schema"
)

func TestRecursiveRefWalksOutermostFrame(t *testing.T) {
	// A classic "extensible list" shape: the root declares
	// $recursiveAnchor, and a nested "tree" schema's $recursiveRef
	// should bind back to the outermost schema being validated, not
	// to its own immediate document.
	schemaJSON := map[string]any{
		"$schema":          draft201909.SchemaID,
		"$recursiveAnchor": true,
		"type":             "object",
		"properties": map[string]any{
			"children": map[string]any{
				"type":  "array",
				"items": map[string]any{"$recursiveRef": "#"},
			},
		},
	}

	s, err := schema.SchemaFromJSON(draft201909.SchemaID, nil, schemaJSON)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	if err := s.Resolve(&schema.ResolveOpts{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	ok := map[string]any{
		"children": []any{
			map[string]any{"children": []any{}},
		},
	}
	if err := s.Validate(ok); err != nil {
		t.Fatalf("Validate(nested tree): %v", err)
	}

	bad := map[string]any{
		"children": []any{
			map[string]any{"children": "not an array"},
		},
	}
	if err := s.Validate(bad); err == nil {
		t.Fatalf("Validate(malformed nested tree): expected an error")
	}
}

func TestRecursiveRefDoesNotEscapeNonAnchoredDocument(t *testing.T) {
	// A declares $recursiveAnchor and $refs B, which does not declare
	// $recursiveAnchor itself. B's own $recursiveRef: "#" must resolve
	// statically to B, not redirect to A's frame just because A happens
	// to be on the dynamic-anchor stack from having been entered first.
	schemaJSON := map[string]any{
		"$id":              "https://example.com/a",
		"$schema":          draft201909.SchemaID,
		"$recursiveAnchor": true,
		"type":             "object",
		"required":         []any{"root"},
		"properties": map[string]any{
			"root": map[string]any{"$ref": "#/$defs/b"},
		},
		"$defs": map[string]any{
			"b": map[string]any{
				"$id":  "https://example.com/b",
				"type": "object",
				"properties": map[string]any{
					"child": map[string]any{"$recursiveRef": "#"},
				},
			},
		},
	}

	s, err := schema.SchemaFromJSON(draft201909.SchemaID, nil, schemaJSON)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	if err := s.Resolve(&schema.ResolveOpts{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// "child" satisfies B's schema (plain object, no "required") but
	// not A's (which requires "root"). If $recursiveRef wrongly
	// redirected to A, this would fail.
	ok := map[string]any{
		"root": map[string]any{"child": map[string]any{}},
	}
	if err := s.Validate(ok); err != nil {
		t.Fatalf("Validate: got error %v, want valid (recursiveRef should stay bound to B, not A)", err)
	}
}

func TestLegacyItemsTuple(t *testing.T) {
	schemaJSON := map[string]any{
		"$schema": draft201909.SchemaID,
		"items": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
		"additionalItems": map[string]any{"type": "boolean"},
	}

	s, err := schema.SchemaFromJSON(draft201909.SchemaID, nil, schemaJSON)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	if err := s.Resolve(&schema.ResolveOpts{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := s.Validate([]any{"a", 1, true}); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := s.Validate([]any{"a", 1, "not a bool"}); err == nil {
		t.Fatalf("Validate: expected additionalItems to reject a non-boolean tail element")
	}
}
