// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft202012_test

import (
	"errors"
	"testing"

	"github.com/kschema/jsonschema/internal/validerr"
	"github.com/kschema/jsonschema/pkg/draft202012"
	"github.com/kschema/jsonschema/pkg/schema"
)

func TestBasicOutput_TypeUnderProperties(t *testing.T) {
	schemaJSON := map[string]any{
		"$schema": draft202012.SchemaID,
		"properties": map[string]any{
			"name": map[string]any{
				"type": "string",
			},
		},
	}

	s, err := schema.SchemaFromJSON(draft202012.SchemaID, nil, schemaJSON)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	if err := s.Resolve(&schema.ResolveOpts{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	err = s.Validate(map[string]any{"name": 123})
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}

	var ve *validerr.ValidationError
	if !errors.As(err, &ve) {
		var ves *validerr.ValidationErrors
		if !errors.As(err, &ves) || len(ves.Errs) != 1 {
			t.Fatalf("expected single ValidationError, got %T: %v", err, err)
		}
		ve = ves.Errs[0]
	}

	if ve.KeywordLocation != "#/properties/name/type" {
		t.Fatalf("keywordLocation: got %q, want %q", ve.KeywordLocation, "#/properties/name/type")
	}
	if ve.InstanceLocation != "#/name" {
		t.Fatalf("instanceLocation: got %q, want %q", ve.InstanceLocation, "#/name")
	}
}

func TestDynamicRefExtensiblePattern(t *testing.T) {
	// The base half of the "extensible list" pattern: a base schema
	// declares a $dynamicAnchor in $defs and reaches it through a
	// $dynamicRef under "items". With no extending schema in scope,
	// the $dynamicRef binds to the base's own anchored string schema.
	baseJSON := map[string]any{
		"$id":     "https://example.com/base.json",
		"$schema": draft202012.SchemaID,
		"type":    "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":  "array",
				"items": map[string]any{"$dynamicRef": "#item"},
			},
		},
		"$defs": map[string]any{
			"item": map[string]any{
				"$dynamicAnchor": "item",
				"type":           "string",
			},
		},
	}

	s, err := schema.SchemaFromJSON(draft202012.SchemaID, nil, baseJSON)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	if err := s.Resolve(&schema.ResolveOpts{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := s.Validate(map[string]any{"items": []any{"a", "b"}}); err != nil {
		t.Fatalf("Validate(all strings): %v", err)
	}
	if err := s.Validate(map[string]any{"items": []any{"a", 2}}); err == nil {
		t.Fatalf("Validate(mixed types): expected an error")
	}
}

func TestMultipleOfDecimal(t *testing.T) {
	schemaJSON := map[string]any{
		"$schema":    draft202012.SchemaID,
		"multipleOf": 0.1,
	}

	s, err := schema.SchemaFromJSON(draft202012.SchemaID, nil, schemaJSON)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	if err := s.Resolve(&schema.ResolveOpts{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := s.Validate(0.3); err != nil {
		t.Fatalf("Validate(0.3): got error %v, want valid", err)
	}
	if err := s.Validate(0.25); err == nil {
		t.Fatalf("Validate(0.25): expected an error")
	}
}
