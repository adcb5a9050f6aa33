// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metaschema recognizes references to the well-known JSON Schema
// meta-schema documents (the schemas that describe the schema keywords
// themselves) so that a $ref to one of them resolves to something, rather
// than failing with an unresolved-reference error.
//
// It does not carry the full text of each meta-schema. Since a validator's
// job is to check instances against schemas, not to check schemas against
// their own meta-schema, a permissive stand-in (the "true" schema) is
// sufficient for every recognized meta-schema URI.
package metaschema

import (
	"net/url"
	"strings"

	"github.com/kschema/jsonschema/internal/schemacache"
	"github.com/kschema/jsonschema/pkg/schema"
)

// metaCache is a cache of the meta-schema stand-ins.
// We use a single cache since they shouldn't change.
var metaCache schemacache.ConcurrentCache

// Load checks whether uri refers to a meta-schema under prefix,
// and if so returns a permissive stand-in schema for it.
// If uri is not a recognized meta-schema, this returns nil, nil.
func Load(schemaID, prefix string, uri *url.URL, ropts *schema.ResolveOpts) (*schema.Schema, error) {
	if uri.Scheme != "http" && uri.Scheme != "https" {
		return nil, nil
	}
	if uri.Host != "json-schema.org" {
		return nil, nil
	}
	path, ok := strings.CutPrefix(uri.Path, prefix)
	if !ok {
		return nil, nil
	}

	if s := metaCache.Load(schemaID, path); s != nil {
		return s, nil
	}

	s := &schema.Schema{
		Parts: []schema.Part{
			schema.MakePart(&schema.BoolKeyword, schema.PartBool(true)),
		},
	}

	r := metaCache.Store(schemaID, path, s)
	return r, nil
}
