// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft201909

import (
	"fmt"

	"github.com/kschema/jsonschema/internal/validator"
	"github.com/kschema/jsonschema/pkg/schema"
)

// resolvedRefKeyword is a special Keyword used to record what a
// $ref keyword refers to in a schema.
var resolvedRefKeyword = schema.Keyword{
	Name:      "$$resolvedRef",
	ArgType:   schema.ArgTypeSchema,
	Validate:  validator.ValidateTrue,
	Generated: true,
}

// resolvedRecursiveRefKeyword records what a $recursiveRef statically
// refers to, for use when no dynamic frame overrides it.
var resolvedRecursiveRefKeyword = schema.Keyword{
	Name:      "$$resolvedRecursiveRef",
	ArgType:   schema.ArgTypeSchema,
	Validate:  validator.ValidateTrue,
	Generated: true,
}

// recordRecursiveAnchorKeyword records, during validation, that the schema
// owning it declared "$recursiveAnchor": true.
var recordRecursiveAnchorKeyword = schema.Keyword{
	Name:      "$$recordRecursiveAnchor",
	ArgType:   schema.ArgTypeSchema,
	Validate:  validateRecordRecursiveAnchor,
	Generated: true,
}

// clearRecursiveAnchorKeyword removes the frame pushed by
// recordRecursiveAnchorKeyword once the schema that owns it finishes.
var clearRecursiveAnchorKeyword = schema.Keyword{
	Name:      "$$clearRecursiveAnchor",
	ArgType:   schema.ArgTypeSchema,
	Validate:  validateClearRecursiveAnchor,
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

// validationData holds the stack of $recursiveAnchor frames seen so far
// while validating, outermost first.
type validationData struct {
	frames []*schema.Schema
}

// validateRecordRecursiveAnchor pushes a frame onto the dynamic-anchor
// stack. This is added by the builder at the base schema of a
// "$recursiveAnchor": true declaration.
func validateRecordRecursiveAnchor(arg schema.PartValue, instance any, state *schema.ValidationState) error {
	s := arg.(schema.PartSchema).S
	if *state.VersionData == nil {
		*state.VersionData = &validationData{}
	}
	vd := (*state.VersionData).(*validationData)
	vd.frames = append(vd.frames, s)
	return nil
}

// validateClearRecursiveAnchor pops the frame pushed by
// validateRecordRecursiveAnchor.
func validateClearRecursiveAnchor(arg schema.PartValue, instance any, state *schema.ValidationState) error {
	vd := (*state.VersionData).(*validationData)
	if n := len(vd.frames); n > 0 {
		vd.frames = vd.frames[:n-1]
	}
	return nil
}

// declaresRecursiveAnchor reports whether s is itself the schema node
// that declared "$recursiveAnchor": true (i.e. it carries the
// recordRecursiveAnchorKeyword pushed by resolveIDs).
func declaresRecursiveAnchor(s *schema.Schema) bool {
	if s == nil {
		return false
	}
	for _, part := range s.Parts {
		if part.Keyword == &recordRecursiveAnchorKeyword {
			return true
		}
	}
	return false
}

// validateRecursiveRef validates a $recursiveRef keyword. Per the dynamic
// scoping rule for this draft, the reference follows the chain of
// recursive anchors from the outermost frame in, but only when the
// statically resolved target's own document root also declares
// "$recursiveAnchor": true; otherwise the dynamic stack is irrelevant
// and the statically resolved target is used directly.
func validateRecursiveRef(arg schema.PartValue, instance any, state *schema.ValidationState) error {
	var staticTarget *schema.Schema
	for _, part := range state.Schema.Parts {
		if part.Keyword == &resolvedRecursiveRefKeyword {
			staticTarget = part.Value.(schema.PartSchema).S
			break
		}
	}
	if staticTarget == nil {
		return fmt.Errorf("recursive reference unresolved")
	}

	target := staticTarget
	if declaresRecursiveAnchor(staticTarget) && *state.VersionData != nil {
		vd := (*state.VersionData).(*validationData)
		if len(vd.frames) > 0 {
			target = vd.frames[0]
		}
	}
	return target.ValidateInPlaceSchema(instance, state)
}
