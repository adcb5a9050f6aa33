// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft6

import (
	"fmt"

	"github.com/kschema/jsonschema/internal/validator"
	"github.com/kschema/jsonschema/pkg/schema"
)

// resolvedRefKeyword is a special Keyword used to record what a
// $ref keyword refers to in a schema. Draft-06 has no dynamic or
// recursive scoping, so a $ref always resolves statically.
var resolvedRefKeyword = schema.Keyword{
	Name:      "$$resolvedRef",
	ArgType:   schema.ArgTypeSchema,
	Validate:  validator.ValidateTrue,
	Generated: true,
}

// validateRef validates a $ref keyword.
func validateRef(arg schema.PartValue, instance any, state *schema.ValidationState) error {
	for _, part := range state.Schema.Parts {
		if part.Keyword == &resolvedRefKeyword {
			return part.Value.(schema.PartSchema).S.ValidateInPlaceSchema(instance, state)
		}
	}
	return fmt.Errorf(`reference %q unresolved`, arg.(schema.PartString))
}
