// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft7_test

import (
	"testing"

	"github.com/kschema/jsonschema/pkg/draft7"
	"github.com/kschema/jsonschema/pkg/schema"
)

func TestLegacyDefinitionsAndDependencies(t *testing.T) {
	schemaJSON := map[string]any{
		"$schema":     draft7.SchemaID,
		"definitions": map[string]any{"name": map[string]any{"type": "string"}},
		"properties": map[string]any{
			"name":        map[string]any{"$ref": "#/definitions/name"},
			"credit_card": map[string]any{"type": "string"},
		},
		"dependencies": map[string]any{
			"credit_card": []any{"billing_address"},
		},
	}

	s, err := schema.SchemaFromJSON(draft7.SchemaID, nil, schemaJSON)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	if err := s.Resolve(&schema.ResolveOpts{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := s.Validate(map[string]any{"name": "ok"}); err != nil {
		t.Fatalf("Validate(no credit_card): %v", err)
	}
	if err := s.Validate(map[string]any{"credit_card": "4111"}); err == nil {
		t.Fatalf("Validate: expected dependentRequired-style failure for missing billing_address")
	}
	if err := s.Validate(map[string]any{"credit_card": "4111", "billing_address": "1 Infinite Loop"}); err != nil {
		t.Fatalf("Validate(satisfied dependency): %v", err)
	}
}

func TestIfThenElse(t *testing.T) {
	schemaJSON := map[string]any{
		"$schema": draft7.SchemaID,
		"if":      map[string]any{"properties": map[string]any{"country": map[string]any{"const": "US"}}},
		"then":    map[string]any{"required": []any{"zip"}},
		"else":    map[string]any{"required": []any{"postal_code"}},
	}

	s, err := schema.SchemaFromJSON(draft7.SchemaID, nil, schemaJSON)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	if err := s.Resolve(&schema.ResolveOpts{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := s.Validate(map[string]any{"country": "US", "zip": "94043"}); err != nil {
		t.Fatalf("Validate(US with zip): %v", err)
	}
	if err := s.Validate(map[string]any{"country": "US"}); err == nil {
		t.Fatalf("Validate(US without zip): expected an error")
	}
	if err := s.Validate(map[string]any{"country": "FR", "postal_code": "75001"}); err != nil {
		t.Fatalf("Validate(non-US with postal_code): %v", err)
	}
}
