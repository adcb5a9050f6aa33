// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry_test

import (
	"fmt"
	"net/url"
	"testing"

	_ "github.com/kschema/jsonschema/pkg/draft202012"
	"github.com/kschema/jsonschema/pkg/registry"
	"github.com/kschema/jsonschema/pkg/schema"
)

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	if err != nil {
		t.Fatalf("url.Parse(%q): %v", s, err)
	}
	return u
}

func TestAddAndLookup(t *testing.T) {
	reg := registry.New(nil, nil)
	uri := mustURL(t, "https://example.com/person.json")

	s, err := schema.SchemaFromJSON("https://json-schema.org/draft/2020-12/schema", uri, map[string]any{
		"type": "object",
	})
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}

	if err := reg.Add(uri, s); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := reg.Lookup(uri); got != s {
		t.Fatalf("Lookup returned %v, want %v", got, s)
	}

	p, ok := reg.Provenance(uri)
	if !ok || p != registry.UserSupplied {
		t.Fatalf("Provenance: got (%v, %v), want (UserSupplied, true)", p, ok)
	}

	if err := reg.Add(uri, s); err == nil {
		t.Fatalf("expected an error re-adding the same URI")
	}
}

func TestLoaderFetchesAndCaches(t *testing.T) {
	target := mustURL(t, "https://example.com/address.json")
	body := []byte(`{"$schema":"https://json-schema.org/draft/2020-12/schema","type":"string"}`)

	fetches := 0
	reg := registry.New(nil, func(u *url.URL) ([]byte, error) {
		fetches++
		if u.String() != target.String() {
			return nil, fmt.Errorf("unexpected fetch of %q", u)
		}
		return body, nil
	})

	s1, err := reg.Loader("", target)
	if err != nil {
		t.Fatalf("Loader: %v", err)
	}
	if s1 == nil {
		t.Fatalf("Loader returned a nil schema")
	}

	p, ok := reg.Provenance(target)
	if !ok || p != registry.Fetched {
		t.Fatalf("Provenance: got (%v, %v), want (Fetched, true)", p, ok)
	}

	s2, err := reg.Loader("", target)
	if err != nil {
		t.Fatalf("second Loader call: %v", err)
	}
	if s2 != s1 {
		t.Fatalf("second Loader call returned a different schema, want the cached one")
	}
	if fetches != 1 {
		t.Fatalf("fetch hook called %d times, want 1", fetches)
	}
}

func TestLoaderWithoutFetchHookFails(t *testing.T) {
	reg := registry.New(nil, nil)
	if _, err := reg.Loader("", mustURL(t, "https://example.com/missing.json")); err == nil {
		t.Fatalf("expected an error when no fetch hook is configured")
	}
}
