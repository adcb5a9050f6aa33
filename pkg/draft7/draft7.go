// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draft7 defines the keywords used by JSON schema draft-07.
package draft7

import (
	"github.com/kschema/jsonschema/internal/keywordorder"
	"github.com/kschema/jsonschema/pkg/schema"
)

// SchemaID is the $schema URI identifying this draft.
const SchemaID = "http://json-schema.org/draft-07/schema#"

// Vocabulary is the draft-07 vocabulary.
var Vocabulary = &schema.Vocabulary{
	Name:     "draft7",
	Schema:   SchemaID,
	Keywords: keywordMap,
	Cmp:      keywordorder.Cmp,
	Resolve:  resolveSchema,
}

func init() {
	schema.RegisterVocabulary(Vocabulary, false)
}
