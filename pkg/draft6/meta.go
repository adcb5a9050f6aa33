// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft6

import (
	"net/url"

	"github.com/kschema/jsonschema/internal/metaschema"
	"github.com/kschema/jsonschema/pkg/schema"
)

// metaSchemaPrefix is the URI path prefix used by the draft-06 meta-schema.
const metaSchemaPrefix = "/draft-06/"

// checkMetaSchema returns a stand-in schema if uri refers to the
// draft-06 meta-schema, or nil, nil otherwise.
func checkMetaSchema(uri *url.URL, ropts *schema.ResolveOpts) (*schema.Schema, error) {
	return metaschema.Load(SchemaID, metaSchemaPrefix, uri, ropts)
}
