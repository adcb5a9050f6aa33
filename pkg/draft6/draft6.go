// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draft6 defines the keywords used by JSON schema draft-06.
package draft6

import (
	"github.com/kschema/jsonschema/internal/keywordorder"
	"github.com/kschema/jsonschema/pkg/schema"
)

// SchemaID is the $schema URI identifying this draft.
const SchemaID = "http://json-schema.org/draft-06/schema#"

// Vocabulary is the draft-06 vocabulary.
var Vocabulary = &schema.Vocabulary{
	Name:     "draft6",
	Schema:   SchemaID,
	Keywords: keywordMap,
	Cmp:      keywordorder.Cmp,
	Resolve:  resolveSchema,
}

func init() {
	schema.RegisterVocabulary(Vocabulary, false)
}
