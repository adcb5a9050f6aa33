// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uri provides the small set of URI operations the schema
// registry and the per-draft resolvers need: parsing schema
// identifiers, resolving references against a base, and normalizing a
// URI down to the form used as a registry key. The per-draft resolver
// code in pkg/draft202012, pkg/draft201909, pkg/draft7, and pkg/draft6
// each do this inline against net/url; this package gives the registry
// and the top-level jsonschema package the same behavior without
// reaching into a specific draft package.
package uri

import (
	"fmt"
	"net/url"
)

// Parse parses a URI reference, such as the value of a $ref or $id
// keyword. It differs from url.Parse only in producing an error that
// names the field being parsed.
func Parse(field, s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid URI %q: %w", field, s, err)
	}
	return u, nil
}

// Resolve resolves ref against base, the way $ref and $id resolve
// against the URI of their enclosing document. If base is nil, ref is
// returned unchanged.
func Resolve(base, ref *url.URL) *url.URL {
	if base == nil {
		return ref
	}
	return base.ResolveReference(ref)
}

// WithoutFragment returns a copy of u with an empty fragment, which is
// the form used as a registry key: the fragment identifies an anchor
// or JSON pointer within the document, not the document itself.
func WithoutFragment(u *url.URL) *url.URL {
	u2 := *u
	u2.Fragment = ""
	return &u2
}

// Key returns the canonical string used to key a document or anchor in
// the schema registry: the URI with any fragment removed.
func Key(u *url.URL) string {
	return WithoutFragment(u).String()
}

// AnchorKey returns the canonical string used to key a plain-name
// fragment (an $anchor or $dynamicAnchor) within base.
func AnchorKey(base *url.URL, anchor string) string {
	u := WithoutFragment(base)
	u.Fragment = anchor
	return u.String()
}

// Equal reports whether a and b name the same resource, ignoring a
// trailing "#" empty fragment some drafts produce when round-tripping
// a bare $schema value (e.g. "http://json-schema.org/draft-07/schema#").
func Equal(a, b string) bool {
	return trimEmptyFragment(a) == trimEmptyFragment(b)
}

func trimEmptyFragment(s string) string {
	if n := len(s); n > 0 && s[n-1] == '#' {
		return s[:n-1]
	}
	return s
}
