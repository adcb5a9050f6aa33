// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keywordorder provides the keyword evaluation order shared by
// every supported JSON schema draft. Keywords validate in an order
// that lets annotation-producing keywords run before the keywords
// that consume their annotations as notes, such as "unevaluatedItems"
// and "unevaluatedProperties".
package keywordorder

// priority assigns each keyword a relative evaluation order.
// Keywords not listed here sort after everything listed.
// Keywords with equal priority, including unlisted ones, sort by name.
var priority = map[string]int{
	"$schema":         0,
	"$id":             1,
	"$anchor":         2,
	"$dynamicAnchor":  3,
	"$recursiveAnchor": 3,
	"$defs":           4,
	"definitions":     4,
	"$comment":        5,
	"title":           6,
	"description":     7,
	"default":         8,
	"deprecated":      9,
	"readOnly":        10,
	"writeOnly":       11,
	"examples":        12,

	"type":  13,
	"enum":  14,
	"const": 15,

	"multipleOf":       16,
	"maximum":          17,
	"exclusiveMaximum": 18,
	"minimum":          19,
	"exclusiveMinimum": 20,

	"maxLength": 21,
	"minLength": 22,
	"pattern":   23,
	"format":    24,

	"prefixItems":  25,
	"items":        26,
	"additionalItems": 27,
	"contains":     27,
	"maxItems":     28,
	"minItems":     29,
	"uniqueItems":  30,
	"maxContains":  31,
	"minContains":  32,

	"properties":           33,
	"patternProperties":    34,
	"additionalProperties": 35,
	"propertyNames":        36,
	"maxProperties":        37,
	"minProperties":        38,
	"required":             39,
	"dependentRequired":    40,
	"dependentSchemas":     41,
	"dependencies":         42,

	"$ref":          43,
	"$recursiveRef": 44,
	"$dynamicRef":   45,

	"allOf": 46,
	"anyOf": 47,
	"oneOf": 48,
	"not":   49,
	"if":    50,
	"then":  51,
	"else":  52,

	"unevaluatedItems":      53,
	"unevaluatedProperties": 54,
}

// unknownPriority is used for keywords not listed in priority.
const unknownPriority = 1000

// Cmp compares two keyword names for the order in which they should
// be validated. It is suitable for use as a [schema.Vocabulary] Cmp field.
func Cmp(a, b string) int {
	pa, pb := rank(a), rank(b)
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	}
}

// rank returns the priority of a keyword, or unknownPriority if unlisted.
func rank(name string) int {
	if p, ok := priority[name]; ok {
		return p
	}
	return unknownPriority
}
