// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draft202012 defines the keywords used by
// JSON schema version 2020-12.
package draft202012

import (
	"github.com/kschema/jsonschema/internal/keywordorder"
	"github.com/kschema/jsonschema/pkg/schema"
)

// SchemaID is the $schema URI identifying this draft.
const SchemaID = "https://json-schema.org/draft/2020-12/schema"

// Vocabulary is the 2020-12 vocabulary, combining the core and
// applicator keyword sets into a single set since this package does
// not support selectively disabling individual vocabularies.
var Vocabulary = &schema.Vocabulary{
	Name:     "draft2020-12",
	Schema:   SchemaID,
	Keywords: keywordMap,
	Cmp:      keywordorder.Cmp,
	Resolve:  resolveSchema,
}

func init() {
	schema.RegisterVocabulary(Vocabulary, true)
}
