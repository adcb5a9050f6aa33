// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output_test

import (
	"testing"

	"github.com/kschema/jsonschema/internal/validerr"
	"github.com/kschema/jsonschema/pkg/output"
)

func TestRenderFlag(t *testing.T) {
	if r := output.Render(output.Flag, nil).(output.FlagResult); !r.Valid {
		t.Fatalf("nil error: got invalid, want valid")
	}

	err := &validerr.ValidationError{Message: "not a string", KeywordLocation: "#/type", InstanceLocation: "#"}
	if r := output.Render(output.Flag, err).(output.FlagResult); r.Valid {
		t.Fatalf("validation error: got valid, want invalid")
	}
}

func TestRenderBasic(t *testing.T) {
	errs := &validerr.ValidationErrors{Errs: []*validerr.ValidationError{
		{Message: "not a string", KeywordLocation: "#/properties/name/type", InstanceLocation: "#/name"},
		{Message: "missing", KeywordLocation: "#/required/age", InstanceLocation: "#"},
	}}

	r := output.Render(output.Basic, errs).(output.BasicResult)
	if r.Valid {
		t.Fatalf("got valid, want invalid")
	}
	if len(r.Errors) != 2 {
		t.Fatalf("got %d errors, want 2", len(r.Errors))
	}
	if r.Errors[0].KeywordLocation != "#/properties/name/type" {
		t.Fatalf("keywordLocation: got %q", r.Errors[0].KeywordLocation)
	}

	valid := output.Render(output.Basic, nil).(output.BasicResult)
	if !valid.Valid || len(valid.Errors) != 0 {
		t.Fatalf("nil error: got %+v, want valid with no errors", valid)
	}
}

func TestRenderDetailedGroupsByPath(t *testing.T) {
	errs := &validerr.ValidationErrors{Errs: []*validerr.ValidationError{
		{Message: "not a string", KeywordLocation: "#/allOf/0/properties/name/type", InstanceLocation: "#/name"},
		{Message: "too long", KeywordLocation: "#/allOf/0/properties/name/maxLength", InstanceLocation: "#/name"},
		{Message: "missing", KeywordLocation: "#/required/age", InstanceLocation: "#"},
	}}

	root := output.Render(output.Detailed, errs).(*output.Node)
	if root.Valid {
		t.Fatalf("root: got valid, want invalid")
	}
	if len(root.Errors) != 2 {
		t.Fatalf("got %d top-level branches, want 2 (allOf/0/properties/name and required/age)", len(root.Errors))
	}

	var nameBranch *output.Node
	for _, n := range root.Errors {
		if n.KeywordLocation == "#/allOf/0/properties/name" {
			nameBranch = n
		}
	}
	if nameBranch == nil {
		t.Fatalf("expected a pruned branch at #/allOf/0/properties/name, got %+v", root.Errors)
	}
	if len(nameBranch.Errors) != 2 {
		t.Fatalf("got %d errors under name, want 2 (type, maxLength)", len(nameBranch.Errors))
	}
}

func TestRenderVerboseKeepsFullChain(t *testing.T) {
	errs := &validerr.ValidationErrors{Errs: []*validerr.ValidationError{
		{Message: "not a string", KeywordLocation: "#/allOf/0/properties/name/type", InstanceLocation: "#/name"},
	}}

	root := output.Render(output.Verbose, errs).(*output.Node)
	// Walk down: allOf -> 0 -> properties -> name -> type, none collapsed.
	n := root
	depth := 0
	for len(n.Errors) == 1 {
		n = n.Errors[0]
		depth++
	}
	if depth != 5 {
		t.Fatalf("got chain depth %d, want 5 (allOf/0/properties/name/type)", depth)
	}
}

func TestRenderValidInstanceIsEmptyTree(t *testing.T) {
	root := output.Render(output.Detailed, nil).(*output.Node)
	if !root.Valid || len(root.Errors) != 0 {
		t.Fatalf("got %+v, want a single valid node", root)
	}
}
