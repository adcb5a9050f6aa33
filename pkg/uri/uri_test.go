// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uri_test

import (
	"net/url"
	"testing"

	"github.com/kschema/jsonschema/pkg/uri"
)

func TestParse(t *testing.T) {
	u, err := uri.Parse("$ref", "https://example.com/schema.json#/$defs/foo")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Fragment != "/$defs/foo" {
		t.Fatalf("fragment: got %q", u.Fragment)
	}

	if _, err := uri.Parse("$ref", "://bad"); err == nil {
		t.Fatalf("expected an error for an invalid URI")
	}
}

func TestResolve(t *testing.T) {
	base, _ := url.Parse("https://example.com/a/base.json")
	ref, _ := url.Parse("other.json")
	got := uri.Resolve(base, ref)
	if got.String() != "https://example.com/a/other.json" {
		t.Fatalf("got %q", got.String())
	}

	if got := uri.Resolve(nil, ref); got != ref {
		t.Fatalf("with a nil base, want ref unchanged")
	}
}

func TestWithoutFragmentAndKey(t *testing.T) {
	u, _ := url.Parse("https://example.com/schema.json#/$defs/foo")
	if got := uri.WithoutFragment(u).String(); got != "https://example.com/schema.json" {
		t.Fatalf("got %q", got)
	}
	if got := uri.Key(u); got != "https://example.com/schema.json" {
		t.Fatalf("got %q", got)
	}
	// The original must be unmodified.
	if u.Fragment != "/$defs/foo" {
		t.Fatalf("Key mutated its argument")
	}
}

func TestAnchorKey(t *testing.T) {
	base, _ := url.Parse("https://example.com/schema.json")
	got := uri.AnchorKey(base, "foo")
	if got != "https://example.com/schema.json#foo" {
		t.Fatalf("got %q", got)
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"http://json-schema.org/draft-07/schema#", "http://json-schema.org/draft-07/schema", true},
		{"http://json-schema.org/draft-07/schema", "http://json-schema.org/draft-06/schema", false},
	}
	for _, c := range cases {
		if got := uri.Equal(c.a, c.b); got != c.want {
			t.Errorf("Equal(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
