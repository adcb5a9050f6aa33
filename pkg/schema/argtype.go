// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import "fmt"

// ArgType is an enumeration of the possible schema part types.
type ArgType int

const (
	ArgTypeBool ArgType = iota + 1
	ArgTypeString
	ArgTypeStrings
	ArgTypeStringOrStrings
	ArgTypeInt
	ArgTypeFloat
	ArgTypeSchema
	ArgTypeSchemas
	ArgTypeMapSchema
	ArgTypeSchemaOrSchemas
	ArgTypeMapArrayOrSchema
	ArgTypeAny
)

// argTypeNames maps an ArgType to the name used in builder method
// names, such as "Bool" for the AddBool method.
var argTypeNames = map[ArgType]string{
	ArgTypeBool:             "Bool",
	ArgTypeString:           "String",
	ArgTypeStrings:          "Strings",
	ArgTypeStringOrStrings:  "StringOrStrings",
	ArgTypeInt:              "Int",
	ArgTypeFloat:            "Float",
	ArgTypeSchema:           "Schema",
	ArgTypeSchemas:          "Schemas",
	ArgTypeMapSchema:        "MapSchema",
	ArgTypeSchemaOrSchemas:  "SchemaOrSchemas",
	ArgTypeMapArrayOrSchema: "MapArrayOrSchema",
	ArgTypeAny:              "Any",
}

// ArgTypeName returns a name to use for an ArgType in diagnostic messages.
func ArgTypeName(at ArgType) string {
	if n, ok := argTypeNames[at]; ok {
		return n
	}
	panic(fmt.Sprintf("unexpected ArgType value %d", at))
}
