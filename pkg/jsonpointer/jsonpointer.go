// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonpointer implements RFC 6901 JSON Pointers and the
// IETF relative-json-pointer extension, along with the schema-specific
// dereferencing used to resolve $ref and $dynamicRef targets.
package jsonpointer

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kschema/jsonschema/pkg/schema"
)

// Parse splits a JSON Pointer string into its unescaped reference tokens.
// The leading "/" (and any "#" fragment marker) is stripped.
// An empty pointer has zero tokens and refers to the whole document.
func Parse(pointer string) ([]string, error) {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("invalid JSON pointer %q: must start with /", pointer)
	}
	toks := strings.Split(pointer[1:], "/")
	for i, t := range toks {
		toks[i] = decodeToken(t)
	}
	return toks, nil
}

// Navigate walks doc (typically the result of unmarshaling JSON into
// map[string]any / []any / scalars) following the tokens in pointer,
// and returns the value found there.
func Navigate(doc any, pointer string) (any, error) {
	toks, err := Parse(pointer)
	if err != nil {
		return nil, err
	}

	v := doc
	for _, tok := range toks {
		switch n := v.(type) {
		case map[string]any:
			nv, ok := n[tok]
			if !ok {
				return nil, fmt.Errorf("JSON pointer %q: key %q not present", pointer, tok)
			}
			v = nv

		case []any:
			idx, err := arrayIndex(tok, len(n))
			if err != nil {
				return nil, fmt.Errorf("JSON pointer %q: %v", pointer, err)
			}
			v = n[idx]

		default:
			rv := reflect.ValueOf(v)
			switch rv.Kind() {
			case reflect.Slice, reflect.Array:
				idx, err := arrayIndex(tok, rv.Len())
				if err != nil {
					return nil, fmt.Errorf("JSON pointer %q: %v", pointer, err)
				}
				v = rv.Index(idx).Interface()
			default:
				return nil, fmt.Errorf("JSON pointer %q: cannot index into %T at token %q", pointer, v, tok)
			}
		}
	}

	return v, nil
}

// arrayIndex parses a JSON pointer array token, including the "-" token
// that refers to the (nonexistent) element past the end of the array.
func arrayIndex(tok string, length int) (int, error) {
	if tok == "-" {
		return 0, fmt.Errorf("index %q refers to a nonexistent element", tok)
	}
	idx, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("token %q is not an array index", tok)
	}
	if idx < 0 || idx >= length {
		return 0, fmt.Errorf("array index %d out of range (length %d)", idx, length)
	}
	return idx, nil
}

// RelativePointer is a parsed relative JSON pointer: an ancestor count,
// optionally followed by either an index-manipulation marker ("#") or
// a trailing ordinary JSON pointer.
type RelativePointer struct {
	// Up is the number of levels to move up from the current location
	// before applying the rest of the pointer.
	Up int
	// IndexManipulation is true if the pointer ends in "#", meaning
	// it refers to the property name or array index of the location
	// found after moving Up levels, rather than its value.
	IndexManipulation bool
	// Pointer is the ordinary JSON pointer to apply after moving Up
	// levels. It is empty when IndexManipulation is true.
	Pointer string
}

// ParseRelative parses a relative JSON pointer of the form
// "<non-negative integer>" followed by either "#" or an ordinary
// JSON pointer (which may be empty).
func ParseRelative(s string) (*RelativePointer, error) {
	orig := s
	bad := func() error {
		return fmt.Errorf("%q is not a valid relative JSON pointer", orig)
	}

	if len(s) == 0 {
		return nil, bad()
	}

	var up int
	if s[0] == '0' {
		s = s[1:]
	} else if s[0] >= '1' && s[0] <= '9' {
		digits := s[:1]
		s = s[1:]
		for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
			digits += s[:1]
			s = s[1:]
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil, bad()
		}
		up = n
	} else {
		return nil, bad()
	}

	if s == "#" {
		return &RelativePointer{Up: up, IndexManipulation: true}, nil
	}
	if s != "" && s[0] != '/' {
		return nil, bad()
	}

	return &RelativePointer{Up: up, Pointer: s}, nil
}

// DerefSchema takes a JSON pointer and a root schema and returns
// the schema to which the pointer refers.
// The schemaID parameter is the default schema ID.
func DerefSchema(schemaID string, root *schema.Schema, pointer string) (*schema.Schema, error) {
	s := root
	pointer = strings.TrimPrefix(pointer, "/")
	toks := strings.Split(pointer, "/")
	for i := 0; i < len(toks); i++ {
		tok := decodeToken(toks[i])
		for _, part := range s.Parts {
			if part.Keyword.Generated {
				continue
			}
			if part.Keyword.Name != tok {
				continue
			}

			switch part.Keyword.ArgType {
			case schema.ArgTypeSchema:
				s = part.Value.(schema.PartSchema).S

			case schema.ArgTypeSchemas:
				i++
				if i >= len(toks) {
					return nil, fmt.Errorf("when dereferencing pointer %q expected array index after %q", pointer, tok)
				}
				tok = decodeToken(toks[i])
				idx, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fmt.Errorf("when dereferencing pointer %q got token %q, expected array index", pointer, tok)
				}
				schemas := part.Value.(schema.PartSchemas)
				if idx < 0 || idx >= len(schemas) {
					return nil, fmt.Errorf("when dereferencing pointer %q array index %d out of range (length %d)", pointer, idx, len(schemas))
				}
				s = schemas[idx]

			case schema.ArgTypeMapSchema:
				i++
				if i >= len(toks) {
					return nil, fmt.Errorf("when dereferencing pointer %q expected map key after %q", pointer, tok)
				}
				tok = decodeToken(toks[i])
				m := part.Value.(schema.PartMapSchema)
				ms, ok := m[tok]
				if !ok {
					return nil, fmt.Errorf("when dereferencing pointer %q map key %q not present", pointer, tok)
				}
				s = ms

			case schema.ArgTypeSchemaOrSchemas:
				pv := part.Value.(schema.PartSchemaOrSchemas)
				if pv.Schema != nil {
					s = pv.Schema
				} else {
					i++
					if i >= len(toks) {
						return nil, fmt.Errorf("when dereferencing pointer %q expected array index after %q", pointer, tok)
					}
					tok = decodeToken(toks[i])
					idx, err := strconv.Atoi(tok)
					if err != nil {
						return nil, fmt.Errorf("when dereferencing pointer %q got token %q, expected array index", pointer, tok)
					}
					if idx < 0 || idx >= len(pv.Schemas) {
						return nil, fmt.Errorf("when dereferencing pointer %q array index %d out of range (length %d)", pointer, idx, len(pv.Schemas))
					}
					s = pv.Schemas[idx]
				}

			case schema.ArgTypeMapArrayOrSchema:
				i++
				if i >= len(toks) {
					return nil, fmt.Errorf("when dereferencing pointer %q expected map key after %q", pointer, tok)
				}
				tok = decodeToken(toks[i])
				m := part.Value.(schema.PartMapArrayOrSchema)
				mv, ok := m[tok]
				if !ok {
					return nil, fmt.Errorf("when dereferencing pointer %q map key %q not present", pointer, tok)
				}
				if mv.Schema == nil {
					return nil, fmt.Errorf("when dereferencing pointer %q map key %q is not a schema", pointer, tok)
				}
				s = mv.Schema

			case schema.ArgTypeAny:
				pv := part.Value.(schema.PartAny).V
			resolveLoop:
				for {
					switch v := pv.(type) {
					case bool, map[string]any:
						var err error
						s, err = schema.SchemaFromJSON(schemaID, nil, v)
						if err != nil {
							return nil, fmt.Errorf("when dereferencing pointer %q failed to resolve unrecognized schema: %v", pointer, err)
						}
						break resolveLoop

					case []any:
						i++
						if i >= len(toks) {
							return nil, fmt.Errorf("when dereferencing pointer %q expected array index after %q", pointer, tok)
						}
						tok = decodeToken(toks[i])
						idx, err := strconv.Atoi(tok)
						if err != nil {
							return nil, fmt.Errorf("when dereferencing pointer %q for token %q, expected array index", pointer, tok)
						}
						if idx < 0 || idx >= len(v) {
							return nil, fmt.Errorf("when dereferencing pointer %q array index %d out of range (length %d)", pointer, idx, len(v))
						}
						pv = v[idx]

					default:
						return nil, fmt.Errorf("when dereferencing pointer %q unexpected type %T", pointer, v)
					}
				}

			default:
				return nil, fmt.Errorf("when dereferencing pointer %q unexpected part type %s", pointer, schema.ArgTypeName(part.Keyword.ArgType))
			}

			break
		}
	}

	return s, nil
}

// decodeToken unmangles a token in a JSON pointer.
func decodeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	return strings.ReplaceAll(tok, "~0", "~")
}
