// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft201909

import (
	"github.com/kschema/jsonschema/internal/validator"
	"github.com/kschema/jsonschema/pkg/schema"
)

// keywordMap lists every keyword recognized by the 2019-09 core and
// applicator vocabularies. Unlike 2020-12, "items" accepts either a
// single schema or a tuple of schemas, paired with "additionalItems",
// and references use the boolean $recursiveAnchor/$recursiveRef pair
// rather than $dynamicAnchor/$dynamicRef.
var keywordMap = map[string]*schema.Keyword{
	"$schema": &schema.SchemaKeyword,

	"$id": {
		Name:     "$id",
		ArgType:  schema.ArgTypeString,
		Validate: validator.ValidateTrue,
	},
	"$anchor": {
		Name:     "$anchor",
		ArgType:  schema.ArgTypeString,
		Validate: validator.ValidateTrue,
	},
	"$recursiveAnchor": {
		Name:     "$recursiveAnchor",
		ArgType:  schema.ArgTypeBool,
		Validate: validator.ValidateTrue,
	},
	"$ref": {
		Name:     "$ref",
		ArgType:  schema.ArgTypeString,
		Validate: validateRef,
	},
	"$recursiveRef": {
		Name:     "$recursiveRef",
		ArgType:  schema.ArgTypeString,
		Validate: validateRecursiveRef,
	},
	"$defs": {
		Name:     "$defs",
		ArgType:  schema.ArgTypeMapSchema,
		Validate: validator.ValidateTrue,
	},
	"$comment": {
		Name:     "$comment",
		ArgType:  schema.ArgTypeString,
		Validate: validator.ValidateTrue,
	},
	"$vocabulary": {
		Name:     "$vocabulary",
		ArgType:  schema.ArgTypeAny,
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
	"deprecated": {
		Name:     "deprecated",
		ArgType:  schema.ArgTypeBool,
		Validate: validator.ValidateTrue,
	},
	"readOnly": {
		Name:     "readOnly",
		ArgType:  schema.ArgTypeBool,
		Validate: validator.ValidateTrue,
	},
	"writeOnly": {
		Name:     "writeOnly",
		ArgType:  schema.ArgTypeBool,
		Validate: validator.ValidateTrue,
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
	"maxContains": {
		Name:    "maxContains",
		ArgType: schema.ArgTypeInt,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMaxContains(arg.(schema.PartInt), instance, state)
		},
	},
	"minContains": {
		Name:    "minContains",
		ArgType: schema.ArgTypeInt,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateMinContains(arg.(schema.PartInt), instance, state)
		},
	},
	"unevaluatedItems": {
		Name:    "unevaluatedItems",
		ArgType: schema.ArgTypeSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidatePre2020UnevaluatedItems(arg.(schema.PartSchema), instance, state)
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
	"unevaluatedProperties": {
		Name:    "unevaluatedProperties",
		ArgType: schema.ArgTypeSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateUnevaluatedProperties(arg.(schema.PartSchema), instance, state)
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
	"dependentRequired": {
		Name:    "dependentRequired",
		ArgType: schema.ArgTypeAny,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateDependentRequired(arg.(schema.PartAny), instance, state)
		},
	},
	"dependentSchemas": {
		Name:    "dependentSchemas",
		ArgType: schema.ArgTypeMapSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateDependentSchemas(arg.(schema.PartMapSchema), instance, state)
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
	"if": {
		Name:    "if",
		ArgType: schema.ArgTypeSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateIf(arg.(schema.PartSchema), instance, state)
		},
	},
	"then": {
		Name:    "then",
		ArgType: schema.ArgTypeSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateThen(arg.(schema.PartSchema), instance, state)
		},
	},
	"else": {
		Name:    "else",
		ArgType: schema.ArgTypeSchema,
		Validate: func(arg schema.PartValue, instance any, state *schema.ValidationState) error {
			return validator.ValidateElse(arg.(schema.PartSchema), instance, state)
		},
	},
}
