// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft6_test

import (
	"testing"

	"github.com/kschema/jsonschema/pkg/draft6"
	"github.com/kschema/jsonschema/pkg/schema"
)

func TestBasicValidation(t *testing.T) {
	schemaJSON := map[string]any{
		"$schema": draft6.SchemaID,
		"type":    "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1.0},
			"age":  map[string]any{"type": "integer", "minimum": 0.0},
		},
		"required": []any{"name"},
	}

	s, err := schema.SchemaFromJSON(draft6.SchemaID, nil, schemaJSON)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	if err := s.Resolve(&schema.ResolveOpts{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := s.Validate(map[string]any{"name": "Ada", "age": 30}); err != nil {
		t.Fatalf("Validate(valid instance): %v", err)
	}
	if err := s.Validate(map[string]any{"age": -1}); err == nil {
		t.Fatalf("Validate: expected errors for a missing name and a negative age")
	}
}

func TestLegacyRefByID(t *testing.T) {
	schemaJSON := map[string]any{
		"$schema": draft6.SchemaID,
		"definitions": map[string]any{
			"positiveInt": map[string]any{
				"id":      "#positiveInt",
				"type":    "integer",
				"minimum": 1.0,
			},
		},
		"properties": map[string]any{
			"count": map[string]any{"$ref": "#positiveInt"},
		},
	}

	s, err := schema.SchemaFromJSON(draft6.SchemaID, nil, schemaJSON)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	if err := s.Resolve(&schema.ResolveOpts{}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := s.Validate(map[string]any{"count": 3}); err != nil {
		t.Fatalf("Validate(count=3): %v", err)
	}
	if err := s.Validate(map[string]any{"count": 0}); err == nil {
		t.Fatalf("Validate(count=0): expected a minimum violation")
	}
}
