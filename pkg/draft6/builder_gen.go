// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft6

import "github.com/kschema/jsonschema/pkg/schema"

// The methods in this file give each draft-06 keyword a typed method
// on Builder, rather than requiring callers to look up a
// *schema.Keyword by hand and call the untyped methods from the
// builder package.

func (b *Builder) AddBool(keyword *schema.Keyword, v bool) *Builder {
	b.b = b.b.AddBool(keyword, v)
	return b
}

func (b *Builder) AddString(keyword *schema.Keyword, s string) *Builder {
	b.b = b.b.AddString(keyword, s)
	return b
}

func (b *Builder) AddStrings(keyword *schema.Keyword, s []string) *Builder {
	b.b = b.b.AddStrings(keyword, s)
	return b
}

func (b *Builder) AddInt(keyword *schema.Keyword, i int64) *Builder {
	b.b = b.b.AddInt(keyword, i)
	return b
}

func (b *Builder) AddFloat(keyword *schema.Keyword, f float64) *Builder {
	b.b = b.b.AddFloat(keyword, f)
	return b
}

func (b *Builder) AddSchema(keyword *schema.Keyword, s *schema.Schema) *Builder {
	b.b = b.b.AddSchema(keyword, s)
	return b
}

func (b *Builder) AddSchemas(keyword *schema.Keyword, schemas []*schema.Schema) *Builder {
	b.b = b.b.AddSchemas(keyword, schemas)
	return b
}

func (b *Builder) AddMapSchema(keyword *schema.Keyword, m map[string]*schema.Schema) *Builder {
	b.b = b.b.AddMapSchema(keyword, m)
	return b
}

func (b *Builder) AddAny(keyword *schema.Keyword, v any) *Builder {
	b.b = b.b.AddAny(keyword, v)
	return b
}

func (b *Builder) AddID(id string) *Builder { return b.AddString(keywordMap["$id"], id) }

func (b *Builder) AddRef(ref string) *Builder { return b.AddString(keywordMap["$ref"], ref) }

func (b *Builder) AddDefinitions(m map[string]*schema.Schema) *Builder {
	return b.AddMapSchema(keywordMap["definitions"], m)
}

func (b *Builder) AddTitle(s string) *Builder { return b.AddString(keywordMap["title"], s) }

func (b *Builder) AddDescription(s string) *Builder {
	return b.AddString(keywordMap["description"], s)
}

func (b *Builder) AddDefault(v any) *Builder { return b.AddAny(keywordMap["default"], v) }

func (b *Builder) AddExamples(v []any) *Builder { return b.AddAny(keywordMap["examples"], v) }

func (b *Builder) AddContentEncoding(s string) *Builder {
	return b.AddString(keywordMap["contentEncoding"], s)
}

func (b *Builder) AddContentMediaType(s string) *Builder {
	return b.AddString(keywordMap["contentMediaType"], s)
}

func (b *Builder) AddType(pv schema.PartStringOrStrings) *Builder {
	b.b = b.b.AddSchemaParts([]schema.Part{schema.MakePart(keywordMap["type"], pv)})
	return b
}

func (b *Builder) AddEnum(v []any) *Builder { return b.AddAny(keywordMap["enum"], v) }

func (b *Builder) AddConst(v any) *Builder { return b.AddAny(keywordMap["const"], v) }

func (b *Builder) AddMultipleOf(f float64) *Builder {
	return b.AddFloat(keywordMap["multipleOf"], f)
}

func (b *Builder) AddMaximum(f float64) *Builder { return b.AddFloat(keywordMap["maximum"], f) }

func (b *Builder) AddExclusiveMaximum(f float64) *Builder {
	return b.AddFloat(keywordMap["exclusiveMaximum"], f)
}

func (b *Builder) AddMinimum(f float64) *Builder { return b.AddFloat(keywordMap["minimum"], f) }

func (b *Builder) AddExclusiveMinimum(f float64) *Builder {
	return b.AddFloat(keywordMap["exclusiveMinimum"], f)
}

func (b *Builder) AddMaxLength(i int64) *Builder { return b.AddInt(keywordMap["maxLength"], i) }

func (b *Builder) AddMinLength(i int64) *Builder { return b.AddInt(keywordMap["minLength"], i) }

func (b *Builder) AddPattern(s string) *Builder { return b.AddString(keywordMap["pattern"], s) }

func (b *Builder) AddFormat(s string) *Builder { return b.AddString(keywordMap["format"], s) }

// AddItems sets "items" to a single schema applied to every element.
func (b *Builder) AddItems(s *schema.Schema) *Builder {
	b.b = b.b.AddSchemaParts([]schema.Part{schema.MakePart(keywordMap["items"], schema.PartSchemaOrSchemas{Schema: s})})
	return b
}

// AddItemsTuple sets "items" to a tuple of per-position schemas.
func (b *Builder) AddItemsTuple(s []*schema.Schema) *Builder {
	b.b = b.b.AddSchemaParts([]schema.Part{schema.MakePart(keywordMap["items"], schema.PartSchemaOrSchemas{Schemas: s})})
	return b
}

func (b *Builder) AddAdditionalItems(s *schema.Schema) *Builder {
	return b.AddSchema(keywordMap["additionalItems"], s)
}

func (b *Builder) AddContains(s *schema.Schema) *Builder {
	return b.AddSchema(keywordMap["contains"], s)
}

func (b *Builder) AddMaxItems(i int64) *Builder { return b.AddInt(keywordMap["maxItems"], i) }

func (b *Builder) AddMinItems(i int64) *Builder { return b.AddInt(keywordMap["minItems"], i) }

func (b *Builder) AddUniqueItems(v bool) *Builder {
	return b.AddBool(keywordMap["uniqueItems"], v)
}

func (b *Builder) AddProperties(m map[string]*schema.Schema) *Builder {
	return b.AddMapSchema(keywordMap["properties"], m)
}

func (b *Builder) AddPatternProperties(m map[string]*schema.Schema) *Builder {
	return b.AddMapSchema(keywordMap["patternProperties"], m)
}

func (b *Builder) AddAdditionalProperties(s *schema.Schema) *Builder {
	return b.AddSchema(keywordMap["additionalProperties"], s)
}

func (b *Builder) AddPropertyNames(s *schema.Schema) *Builder {
	return b.AddSchema(keywordMap["propertyNames"], s)
}

func (b *Builder) AddMaxProperties(i int64) *Builder {
	return b.AddInt(keywordMap["maxProperties"], i)
}

func (b *Builder) AddMinProperties(i int64) *Builder {
	return b.AddInt(keywordMap["minProperties"], i)
}

func (b *Builder) AddRequired(s []string) *Builder {
	return b.AddStrings(keywordMap["required"], s)
}

func (b *Builder) AddDependencies(pv schema.PartMapArrayOrSchema) *Builder {
	b.b = b.b.AddSchemaParts([]schema.Part{schema.MakePart(keywordMap["dependencies"], pv)})
	return b
}

func (b *Builder) AddAllOf(s []*schema.Schema) *Builder { return b.AddSchemas(keywordMap["allOf"], s) }

func (b *Builder) AddAnyOf(s []*schema.Schema) *Builder { return b.AddSchemas(keywordMap["anyOf"], s) }

func (b *Builder) AddOneOf(s []*schema.Schema) *Builder { return b.AddSchemas(keywordMap["oneOf"], s) }

func (b *Builder) AddNot(s *schema.Schema) *Builder { return b.AddSchema(keywordMap["not"], s) }
