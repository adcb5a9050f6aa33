// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft6

import (
	"github.com/kschema/jsonschema/internal/validator"
	"github.com/kschema/jsonschema/pkg/schema"
)

// keywordMap lists every keyword recognized by the draft-06 dialect.
// Draft-06 predates if/then/else, $comment, readOnly/writeOnly, and
// the content* annotations, and like draft-07 uses legacy
// "definitions" and "dependencies" and identifies documents with a
// plain "id" alongside "$id".
var keywordMap = map[string]*schema.Keyword{
	"$schema": &schema.SchemaKeyword,

	"$id": {
		Name:     "$id",
		ArgType:  schema.ArgTypeString,
		Validate: validator.ValidateTrue,
	},
	"id": {
		Name:     "id",
		ArgType:  schema.ArgTypeString,
		Validate: validator.ValidateTrue,
	},
	"$ref": {
		Name:     "$ref",
		ArgType:  schema.ArgTypeString,
		Validate: validateRef,
	},
	"definitions": {
		Name:     "definitions",
		ArgType:  schema.ArgTypeMapSchema,
		Validate: validator.ValidateTrue,
	},

	"title": {
		Name:     "title",
		ArgType:  schema.ArgTypeString,
		Validate: validator.ValidateTrue,
	},
	"description": {
		Name:     "description",
		ArgType:  schema.ArgTypeString,
		Validate: validator.ValidateTrue,
	},
	"default": {
		Name:    "default",
		ArgType: schema.ArgTypeAny,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateDefault(arg.(schema.PartAny), instance, state)
		},
	},
	"examples": {
		Name:     "examples",
		ArgType:  schema.ArgTypeAny,
		Validate: validator.ValidateTrue,
	},

	"type": {
		Name:    "type",
		ArgType: schema.ArgTypeStringOrStrings,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateType(arg.(schema.PartStringOrStrings), instance, state)
		},
	},
	"enum": {
		Name:    "enum",
		ArgType: schema.ArgTypeAny,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateEnum(arg.(schema.PartAny), instance, state)
		},
	},
	"const": {
		Name:    "const",
		ArgType: schema.ArgTypeAny,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateConst(arg.(schema.PartAny), instance, state)
		},
	},

	"multipleOf": {
		Name:    "multipleOf",
		ArgType: schema.ArgTypeFloat,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMultipleOf(arg.(schema.PartFloat), instance, state)
		},
	},
	"maximum": {
		Name:    "maximum",
		ArgType: schema.ArgTypeFloat,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMaximum(arg.(schema.PartFloat), instance, state)
		},
	},
	"exclusiveMaximum": {
		Name:    "exclusiveMaximum",
		ArgType: schema.ArgTypeFloat,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateExclusiveMaximum(arg.(schema.PartFloat), instance, state)
		},
	},
	"minimum": {
		Name:    "minimum",
		ArgType: schema.ArgTypeFloat,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMinimum(arg.(schema.PartFloat), instance, state)
		},
	},
	"exclusiveMinimum": {
		Name:    "exclusiveMinimum",
		ArgType: schema.ArgTypeFloat,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateExclusiveMinimum(arg.(schema.PartFloat), instance, state)
		},
	},

	"maxLength": {
		Name:    "maxLength",
		ArgType: schema.ArgTypeInt,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMaxLength(arg.(schema.PartInt), instance, state)
		},
	},
	"minLength": {
		Name:    "minLength",
		ArgType: schema.ArgTypeInt,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMinLength(arg.(schema.PartInt), instance, state)
		},
	},
	"pattern": {
		Name:    "pattern",
		ArgType: schema.ArgTypeString,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidatePattern(arg.(schema.PartString), instance, state)
		},
	},
	"format": {
		Name:    "format",
		ArgType: schema.ArgTypeString,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateFormat(arg.(schema.PartString), instance, state)
		},
	},

	"items": {
		Name:    "items",
		ArgType: schema.ArgTypeSchemaOrSchemas,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidatePre2020Items(arg.(schema.PartSchemaOrSchemas), instance, state)
		},
	},
	"additionalItems": {
		Name:    "additionalItems",
		ArgType: schema.ArgTypeSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidatePre2020AdditionalItems(arg.(schema.PartSchema), instance, state)
		},
	},
	"contains": {
		Name:    "contains",
		ArgType: schema.ArgTypeSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateContains(arg.(schema.PartSchema), instance, state)
		},
	},
	"maxItems": {
		Name:    "maxItems",
		ArgType: schema.ArgTypeInt,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMaxItems(arg.(schema.PartInt), instance, state)
		},
	},
	"minItems": {
		Name:    "minItems",
		ArgType: schema.ArgTypeInt,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMinItems(arg.(schema.PartInt), instance, state)
		},
	},
	"uniqueItems": {
		Name:    "uniqueItems",
		ArgType: schema.ArgTypeBool,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateUniqueItems(arg.(schema.PartBool), instance, state)
		},
	},

	"properties": {
		Name:    "properties",
		ArgType: schema.ArgTypeMapSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateProperties(arg.(schema.PartMapSchema), instance, state)
		},
	},
	"patternProperties": {
		Name:    "patternProperties",
		ArgType: schema.ArgTypeMapSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidatePatternProperties(arg.(schema.PartMapSchema), instance, state)
		},
	},
	"additionalProperties": {
		Name:    "additionalProperties",
		ArgType: schema.ArgTypeSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateAdditionalProperties(arg.(schema.PartSchema), instance, state)
		},
	},
	"propertyNames": {
		Name:    "propertyNames",
		ArgType: schema.ArgTypeSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidatePropertyNames(arg.(schema.PartSchema), instance, state)
		},
	},
	"maxProperties": {
		Name:    "maxProperties",
		ArgType: schema.ArgTypeInt,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMaxProperties(arg.(schema.PartInt), instance, state)
		},
	},
	"minProperties": {
		Name:    "minProperties",
		ArgType: schema.ArgTypeInt,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMinProperties(arg.(schema.PartInt), instance, state)
		},
	},
	"required": {
		Name:    "required",
		ArgType: schema.ArgTypeStrings,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateRequired(arg.(schema.PartStrings), instance, state)
		},
	},
	"dependencies": {
		Name:    "dependencies",
		ArgType: schema.ArgTypeMapArrayOrSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateDependencies(arg.(schema.PartMapArrayOrSchema), instance, state)
		},
	},

	"allOf": {
		Name:    "allOf",
		ArgType: schema.ArgTypeSchemas,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateAllOf(arg.(schema.PartSchemas), instance, state)
		},
	},
	"anyOf": {
		Name:    "anyOf",
		ArgType: schema.ArgTypeSchemas,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateAnyOf(arg.(schema.PartSchemas), instance, state)
		},
	},
	"oneOf": {
		Name:    "oneOf",
		ArgType: schema.ArgTypeSchemas,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateOneOf(arg.(schema.PartSchemas), instance, state)
		},
	},
	"not": {
		Name:    "not",
		ArgType: schema.ArgTypeSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateNot(arg.(schema.PartSchema), instance, state)
		},
	},
}
