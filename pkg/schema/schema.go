// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema defines the in-memory representation of a JSON schema
// and the machinery used to decode, resolve, and validate against it.
// Do not create values of type [Schema] directly.
// Instead, unmarshal from JSON or use a draft-specific Builder.
//
// If you have an existing Schema, you can edit the Parts list,
// but you must call [Schema.Finalize] afterward.
// When adding a new Part it will help to use [Vocabulary.Keywords];
// each supported JSON schema draft has a Vocabulary package variable.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"maps"
	"math"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/kschema/jsonschema/internal/validerr"
	"github.com/kschema/jsonschema/pkg/notes"
)

// Schema is a JSON schema.
// A JSON schema determines whether an instance is valid or not.
type Schema struct {
	// The different elements of this Schema.
	Parts []Part
}

// Clone returns a copy of a Schema.
func (s *Schema) Clone() *Schema {
	return &Schema{Parts: slices.Clone(s.Parts)}
}

// String returns a somewhat readable representation of a Schema.
// The format differs from JSON output, and also includes internal
// information not stored in JSON.
func (s *Schema) String() string {
	var sb strings.Builder
	sb.WriteString("Schema{")
	for i, part := range s.Parts {
		if i > 0 {
			sb.WriteString(", ")
		}
		val := part.Value
		if part.Keyword.Generated {
			// Don't try to print schemas of generated keywords.
			// They can cause infinite recursion.
			switch part.Keyword.ArgType {
			case ArgTypeBool, ArgTypeString, ArgTypeStrings, ArgTypeInt, ArgTypeFloat:
			default:
				val = PartString("<not printed>")
			}
		}
		fmt.Fprintf(&sb, "{%s %v}", part.Keyword.Name, val)
	}
	sb.WriteByte('}')
	return sb.String()
}

// LookupKeyword returns the value associated with a keyword in the schema.
// The bool result reports whether the keyword is present at all.
func (s *Schema) LookupKeyword(keyword string) (PartValue, bool) {
	for _, part := range s.Parts {
		if !part.Keyword.Generated && part.Keyword.Name == keyword {
			return part.Value, true
		}
	}
	return nil, false
}

// Finalize sorts the schema keywords into the order required for validation.
// Normally there is no need to call this explicitly.
// It will be called automatically by a Builder or by the JSON unmarshaler.
func (s *Schema) Finalize(v *Vocabulary) {
	slices.SortFunc(s.Parts, func(a, b Part) int {
		return v.Cmp(a.Keyword.Name, b.Keyword.Name)
	})
}

// Resolve resolves references across a schema and its subschemas.
// Normally there is no need to call this explicitly.
// It will be called automatically by the JSON unmarshaler.
func (s *Schema) Resolve(opts *ResolveOpts) error {
	var v *Vocabulary
	if opts != nil {
		v = opts.Vocabulary
	}

	if v == nil {
		for _, part := range s.Parts {
			if part.Keyword == &SchemaKeyword {
				v = LookupVocabulary(string(part.Value.(PartString)))
				if v == nil {
					return fmt.Errorf("no registered vocabulary for schema %q when resolving", part.Value.(PartString))
				}
				break
			}
		}
		if v == nil {
			return errors.New("unknown schema vocabulary when resolving")
		}
	}

	if opts == nil {
		opts = &ResolveOpts{
			Vocabulary: v,
			Loader:     loader,
		}
	}

	return v.Resolve(s, opts)
}

// Children returns an iterator over the immediate subschemas.
// The first iterator value is the name of the schema as used in a JSON pointer,
// the second is the schema itself.
func (s *Schema) Children() iter.Seq2[string, *Schema] {
	return func(yield func(string, *Schema) bool) {
		for _, part := range s.Parts {
			if part.Keyword.Generated {
				continue
			}

			switch part.Keyword.ArgType {
			case ArgTypeSchema:
				if !yield(part.Keyword.Name, part.Value.(PartSchema).S) {
					return
				}

			case ArgTypeSchemas:
				for i, sub := range part.Value.(PartSchemas) {
					name := fmt.Sprintf("%s/%d", part.Keyword.Name, i)
					if !yield(name, sub) {
						return
					}
				}

			case ArgTypeMapSchema:
				type keyVal struct {
					key string
					val *Schema
				}
				m := part.Value.(PartMapSchema)
				keyVals := make([]keyVal, 0, len(m))
				for k, v := range m {
					keyVals = append(keyVals, keyVal{k, v})
				}
				slices.SortFunc(keyVals, func(a, b keyVal) int {
					return strings.Compare(a.key, b.key)
				})
				for _, kv := range keyVals {
					name := part.Keyword.Name + "/" + kv.key
					if !yield(name, kv.val) {
						return
					}
				}

			case ArgTypeSchemaOrSchemas:
				pv := part.Value.(PartSchemaOrSchemas)
				if pv.Schema != nil {
					if !yield(part.Keyword.Name, pv.Schema) {
						return
					}
				} else {
					for i, sub := range pv.Schemas {
						name := fmt.Sprintf("%s/%d", part.Keyword.Name, i)
						if !yield(name, sub) {
							return
						}
					}
				}

			case ArgTypeMapArrayOrSchema:
				type keyVal struct {
					key string
					val *Schema
				}
				m := part.Value.(PartMapArrayOrSchema)
				keyVals := make([]keyVal, 0, len(m))
				for k, v := range m {
					if v.Schema != nil {
						keyVals = append(keyVals, keyVal{k, v.Schema})
					}
				}
				slices.SortFunc(keyVals, func(a, b keyVal) int {
					return strings.Compare(a.key, b.key)
				})
				for _, kv := range keyVals {
					name := part.Keyword.Name + "/" + kv.key
					if !yield(name, kv.val) {
						return
					}
				}
			}
		}
	}
}

// MarshalJSON marshals a [Schema] into JSON format.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.marshalSchema(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// marshalSchema marshals a [Schema] into JSON format, storing the results in buf.
func (s *Schema) marshalSchema(buf *bytes.Buffer) error {
	if isBoolSchema, isTrueSchema := s.isBoolSchema(); isBoolSchema {
		if isTrueSchema {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	}

	buf.WriteByte('{')

	first := true
	for _, part := range s.Parts {
		if part.Keyword.Generated {
			continue
		}

		if first {
			first = false
		} else {
			buf.WriteByte(',')
		}

		fmt.Fprintf(buf, "%s:", encodeString(part.Keyword.Name))

		switch v := part.Value.(type) {
		case PartBool:
			fmt.Fprintf(buf, "%t", v)
		case PartString:
			fmt.Fprintf(buf, "%s", encodeString(string(v)))
		case PartStrings:
			buf.WriteByte('[')
			for i, s := range v {
				if i > 0 {
					buf.WriteByte(',')
				}
				fmt.Fprintf(buf, "%s", encodeString(s))
			}
			buf.WriteByte(']')
		case PartStringOrStrings:
			if v.Strings == nil {
				fmt.Fprintf(buf, "%s", encodeString(v.String))
			} else {
				buf.WriteByte('[')
				for i, s := range v.Strings {
					if i > 0 {
						buf.WriteByte(',')
					}
					fmt.Fprintf(buf, "%s", encodeString(s))
				}
				buf.WriteByte(']')
			}
		case PartInt:
			fmt.Fprintf(buf, "%d", v)
		case PartFloat:
			if PartFloat(int64(v)) == v {
				fmt.Fprintf(buf, "%d", int64(v))
			} else if PartFloat(uint64(v)) == v {
				fmt.Fprintf(buf, "%d", uint64(v))
			} else {
				fmt.Fprintf(buf, "%g", v)
			}
		case PartSchema:
			if err := v.S.marshalSchema(buf); err != nil {
				return err
			}
		case PartSchemas:
			buf.WriteByte('[')
			for i, sch := range v {
				if i > 0 {
					buf.WriteByte(',')
				}
				if err := sch.marshalSchema(buf); err != nil {
					return err
				}
			}
			buf.WriteByte(']')
		case PartMapSchema:
			buf.WriteByte('{')
			names := slices.Collect(maps.Keys(v))
			slices.Sort(names)
			for i, name := range names {
				if i > 0 {
					buf.WriteByte(',')
				}
				fmt.Fprintf(buf, "%s:", encodeString(name))
				if err := v[name].marshalSchema(buf); err != nil {
					return err
				}
			}
			buf.WriteByte('}')
		case PartSchemaOrSchemas:
			if v.Schema != nil {
				if err := v.Schema.marshalSchema(buf); err != nil {
					return err
				}
			} else {
				buf.WriteByte('[')
				for i, sch := range v.Schemas {
					if i > 0 {
						buf.WriteByte(',')
					}
					if err := sch.marshalSchema(buf); err != nil {
						return err
					}
				}
				buf.WriteByte(']')
			}
		case PartMapArrayOrSchema:
			buf.WriteByte('{')
			names := slices.Collect(maps.Keys(v))
			slices.Sort(names)
			for i, name := range names {
				if i > 0 {
					buf.WriteByte(',')
				}
				fmt.Fprintf(buf, "%s:", encodeString(name))
				as := v[name]
				if as.Schema != nil {
					if err := as.Schema.marshalSchema(buf); err != nil {
						return err
					}
				} else {
					buf.WriteByte('[')
					for j, s := range as.Array {
						if j > 0 {
							buf.WriteByte(',')
						}
						fmt.Fprintf(buf, "%s", encodeString(s))
					}
					buf.WriteByte(']')
				}
			}
			buf.WriteByte('}')
		case PartAny:
			if err := json.NewEncoder(buf).Encode(v.V); err != nil {
				return err
			}
		default:
			return fmt.Errorf("schema.MarshalJSON: unexpected type %T", part.Value)
		}
	}

	buf.WriteByte('}')

	return nil
}

// isBoolSchema reports whether schema is a boolean schema,
// and reports whether it is the "true" schema.
func (s *Schema) isBoolSchema() (isBoolSchema, isTrueSchema bool) {
	isBoolSchema = false
	for _, part := range s.Parts {
		if part.Keyword == &SchemaKeyword || part.Keyword.Generated {
			continue
		}
		if part.Keyword != &BoolKeyword {
			return false, false
		}
		isBoolSchema = true
		isTrueSchema = bool(part.Value.(PartBool))
	}
	return isBoolSchema, isTrueSchema
}

// encodeString returns the JSON encoding of s.
func encodeString(s string) []byte {
	data, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("json.Marshal failed, which should be impossible: %v", err))
	}
	return data
}

// UnmarshalJSON decodes the JSON representation of a [Schema].
func (s *Schema) UnmarshalJSON(data []byte) error {
	s.Parts = s.Parts[:0:0]

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	vocabulary, err := s.buildTopFromJSON("", nil, v)
	if err != nil {
		return err
	}

	ropts := &ResolveOpts{
		Vocabulary: vocabulary,
		Loader:     loader,
	}
	return s.Resolve(ropts)
}

// buildTopFromJSON builds a [Schema] from JSON parsed into the
// empty interface value v. This assumes that this is the root schema.
func (s *Schema) buildTopFromJSON(schemaID string, uri *url.URL, v any) (*Vocabulary, error) {
	var version string
	if m, ok := v.(map[string]any); ok {
		if schemaVal, ok := m["$schema"]; ok {
			version, ok = schemaVal.(string)
			if !ok {
				return nil, errors.New("$schema does not have a string value")
			}
			s.Parts = append(s.Parts,
				Part{
					&SchemaKeyword,
					PartString(version),
				},
			)
			delete(m, "$schema")
		}
		v = m
	}

	if version == "" && schemaID != "" {
		version = schemaID
	}

	var vocabulary *Vocabulary
	if version == "" {
		vocabulary = DefaultVocabulary()
		if vocabulary == nil {
			return nil, errors.New("JSON schema version not specified and there is no default")
		}
		s.Parts = append(
			s.Parts,
			Part{
				&SchemaKeyword,
				PartString(vocabulary.Schema),
			},
		)
	} else {
		vocabulary = LookupVocabulary(version)
		if vocabulary == nil {
			return nil, fmt.Errorf("JSON schema version %q not recognized", version)
		}
	}

	err := s.buildFromJSON(v, vocabulary)
	return vocabulary, err
}

// SchemaFromJSON builds a [Schema] from a JSON value that has already been
// parsed. The optional schemaID argument is something like [draft202012.SchemaID].
// The optional uri is where the schema was loaded from.
// It is normally necessary to call [Schema.Resolve] on the result.
func SchemaFromJSON(schemaID string, uri *url.URL, v any) (*Schema, error) {
	var s Schema
	if _, err := s.buildTopFromJSON(schemaID, uri, v); err != nil {
		return nil, err
	}
	return &s, nil
}

// buildFromJSON builds a [Schema] from JSON parsed into the
// empty interface value v.
func (s *Schema) buildFromJSON(v any, vocabulary *Vocabulary) error {
	switch v := v.(type) {
	case bool:
		s.Parts = append(s.Parts, Part{
			&BoolKeyword,
			PartBool(v),
		})

	case map[string]any:
		for keyword, val := range v {
			if err := s.addKeywordFromJSON(keyword, val, vocabulary); err != nil {
				return err
			}
		}
		s.Finalize(vocabulary)

	default:
		return fmt.Errorf("unexpected type %T while JSON decoding schema", v)
	}
	return nil
}

// addKeywordFromJSON adds a [Schema] keyword and value parsed from JSON.
func (s *Schema) addKeywordFromJSON(keyword string, val any, vocabulary *Vocabulary) error {
	if len(keyword) == 0 {
		return errors.New("empty JSON keyword")
	}

	sk, ok := vocabulary.Keywords[keyword]
	if !ok {
		// Unrecognized keywords are ignored.
		// They do not affect the validation result.
		s.Parts = append(s.Parts, Part{
			Keyword: &Keyword{
				Name:     keyword,
				ArgType:  ArgTypeAny,
				Validate: validateTrue,
			},
			Value: PartAny{val},
		})
		return nil
	}

	var spv PartValue
	switch sk.ArgType {
	case ArgTypeBool:
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("%q argument is type %T, want bool", keyword, val)
		}
		spv = PartBool(b)
	case ArgTypeString:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("%q argument is type %T, want string", keyword, val)
		}
		spv = PartString(s)
	case ArgTypeStrings:
		vals, ok := val.([]any)
		if !ok {
			return fmt.Errorf("%q argument is type %T, want array of string", keyword, val)
		}
		strs := make([]string, 0, len(vals))
		for i, v := range vals {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("%q argument item %d is %T, want string", keyword, i, v)
			}
			strs = append(strs, s)
		}
		spv = PartStrings(strs)
	case ArgTypeStringOrStrings:
		s, ok := val.(string)
		if ok {
			spv = PartStringOrStrings{String: s}
		} else {
			vals, ok := val.([]any)
			if !ok {
				return fmt.Errorf("%q argument is type %T, want string or array of string", keyword, val)
			}
			strs := make([]string, 0, len(vals))
			for i, v := range vals {
				s, ok := v.(string)
				if !ok {
					return fmt.Errorf("%q argument item %d is %T, want string", keyword, i, v)
				}
				strs = append(strs, s)
			}
			spv = PartStringOrStrings{Strings: strs}
		}
	case ArgTypeInt:
		f, ok := val.(float64)
		if !ok {
			return fmt.Errorf("%q argument is type %T, want integer", keyword, val)
		}
		if f != math.Trunc(f) {
			return fmt.Errorf("%q argument is non-integer, want integer", keyword)
		}
		spv = PartInt(f)
	case ArgTypeFloat:
		f, ok := val.(float64)
		if !ok {
			return fmt.Errorf("%q argument is type %T, want number", keyword, val)
		}
		spv = PartFloat(f)
	case ArgTypeSchema:
		var s Schema
		if err := s.buildFromJSON(val, vocabulary); err != nil {
			return err
		}
		spv = PartSchema{&s}
	case ArgTypeSchemas:
		as, ok := val.([]any)
		if !ok {
			return fmt.Errorf("%q argument is type %T, want array", keyword, val)
		}
		schemas := make([]*Schema, 0, len(as))
		for _, a := range as {
			var s Schema
			if err := s.buildFromJSON(a, vocabulary); err != nil {
				return err
			}
			schemas = append(schemas, &s)
		}
		spv = PartSchemas(schemas)
	case ArgTypeMapSchema:
		jm, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("%q argument is type %T, want object", keyword, val)
		}
		nm := make(map[string]*Schema, len(jm))
		for k, v := range jm {
			var s Schema
			if err := s.buildFromJSON(v, vocabulary); err != nil {
				return err
			}
			nm[k] = &s
		}
		spv = PartMapSchema(nm)
	case ArgTypeSchemaOrSchemas:
		var (
			schemaVal  *Schema
			schemasVal []*Schema
		)
		as, ok := val.([]any)
		if ok {
			schemasVal = make([]*Schema, 0, len(as))
			for _, a := range as {
				var s Schema
				if err := s.buildFromJSON(a, vocabulary); err != nil {
					return err
				}
				schemasVal = append(schemasVal, &s)
			}
		} else {
			var s Schema
			if err := s.buildFromJSON(val, vocabulary); err != nil {
				return err
			}
			schemaVal = &s
		}
		spv = PartSchemaOrSchemas{
			Schema:  schemaVal,
			Schemas: schemasVal,
		}
	case ArgTypeMapArrayOrSchema:
		jm, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("%q argument is type %T, want object", keyword, val)
		}
		nm := make(map[string]ArrayOrSchema, len(jm))
		for k, v := range jm {
			var as ArrayOrSchema
			switch v := v.(type) {
			case bool, map[string]any:
				var s Schema
				if err := s.buildFromJSON(v, vocabulary); err != nil {
					return err
				}
				as.Schema = &s
			case []any:
				strs := make([]string, 0, len(v))
				for i, v := range v {
					s, ok := v.(string)
					if !ok {
						return fmt.Errorf("%q argument item %s:%d is %T, want string", keyword, k, i, v)
					}
					strs = append(strs, s)
				}
				as.Array = strs
			default:
				return fmt.Errorf("%q argument item %s is %T, want schema or array of strings", keyword, k, v)
			}
			nm[k] = as
		}
		spv = PartMapArrayOrSchema(nm)
	case ArgTypeAny:
		spv = PartAny{val}
	default:
		panic("can't happen")
	}

	s.Parts = append(s.Parts, Part{
		Keyword: sk,
		Value:   spv,
	})
	return nil
}

// Validate reports whether instance satisfies schema.
// If it does, this will return nil.
// If it does not, this will return an error with type either
// [*ValidationError] or [*ValidationErrors].
// A non-nil error with a different type indicates some error
// during validation processing.
//
// An instance may be an object read from JSON,
// with a Go type like map[string]any or []any.
// An instance may also be a Go struct or a pointer to a Go struct;
// in this case json tags on fields are used when matching field names.
func (s *Schema) Validate(instance any) error {
	return s.ValidateWithOpts(instance, &ValidateOpts{ValidateFormat: true})
}

// ValidateOpts describes validation options.
type ValidateOpts struct {
	// Whether to modify the instance being validated by setting defaults.
	ApplyDefaults bool

	// Whether to validate the format keyword.
	// In order for this to be effective, the package
	// jsonschema/format must be blank imported;
	// by default the format keyword always matches.
	ValidateFormat bool

	// If true, unrecognized format names cause a validation error
	// instead of being treated as an unenforced assertion.
	StrictFormat bool

	// StrictTypes is not read by any validator: "type" assertions
	// match the same way whether or not it is set.
	StrictTypes bool

	// MaxReferenceDepth is not read during validation. Following
	// $ref/$dynamicRef is bounded only by the fixed nesting limit of
	// [ValidationState.Child], which ends validation with an error.
	MaxReferenceDepth int
}

// ValidateWithOpts is like Validate but supports options.
func (s *Schema) ValidateWithOpts(instance any, opts *ValidateOpts) error {
	var versionData any
	state := &ValidationState{
		Root:        s,
		VersionData: &versionData,
		Opts:        opts,
	}
	state.RootState = state
	return s.ValidateSubSchema(instance, state)
}

// ValidateInPlaceSchema reports whether instance satisfies schema,
// where schema is a subschema that is evaluated in the same context
// as the parent schema.
func (s *Schema) ValidateInPlaceSchema(instance any, state *ValidationState) error {
	subState, err := state.Child()
	if err != nil {
		return err
	}
	subState.Schema = s

	var topErr error
	for i, p := range s.Parts {
		if p.Keyword.Validate == nil {
			continue
		}
		subState.Index = i
		if err := p.Keyword.Validate(p.Value, instance, subState); err != nil {
			if hasAnyLocation(err) {
				validerr.AddError(&topErr, err, "")
			} else {
				validerr.AddError(&topErr, err, p.Keyword.Name)
			}
		}
	}

	state.Notes.AddNotes(subState.Notes)

	return topErr
}

// ValidateSubSchema reports whether instance satisfies schema,
// where schema is a sub-schema of some larger validation request.
// This is like Validate but also accepts the current validation state.
func (s *Schema) ValidateSubSchema(instance any, state *ValidationState) error {
	subState, err := state.Child()
	if err != nil {
		return err
	}
	subState.Schema = s

	var topErr error
	for i, p := range s.Parts {
		if p.Keyword.Validate == nil {
			continue
		}
		subState.Index = i
		if err := p.Keyword.Validate(p.Value, instance, subState); err != nil {
			if hasAnyLocation(err) {
				validerr.AddError(&topErr, err, "")
			} else {
				validerr.AddError(&topErr, err, p.Keyword.Name)
			}
		}
	}
	return topErr
}

// hasAnyLocation reports whether err already has a populated keyword or instance location.
func hasAnyLocation(err error) bool {
	switch e := err.(type) {
	case *validerr.ValidationError:
		return e.KeywordLocation != "" || e.InstanceLocation != ""
	case *validerr.ValidationErrors:
		for _, ve := range e.Errs {
			if ve.KeywordLocation != "" || ve.InstanceLocation != "" {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ValidationError is returned by a validation function
// when an instance fails validation.
type ValidationError = validerr.ValidationError

// ValidationErrors is a collection of ValidationError values.
type ValidationErrors = validerr.ValidationErrors

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	return validerr.IsValidationError(err)
}

// Keyword is a schema keyword.
type Keyword struct {
	// Name is the keyword, such as allOf, anyOf, and so forth.
	Name string

	// ArgType is the type of argument expected.
	ArgType ArgType

	// Validate is a function that checks whether the schema matches
	// the keyword. arg is the value from the schema, which is [Part.Value].
	// instance is the object to validate.
	Validate func(arg PartValue, instance any, state *ValidationState) error

	// Generated is true if this keyword is not represented in JSON,
	// but is added to record additional information.
	Generated bool
}

// Equal reports whether two keywords are equal.
// This is for the benefit of the github.com/google/go-cmp package,
// which won't compare the Validate function values.
func (k1 Keyword) Equal(k2 Keyword) bool {
	return k1.Name == k2.Name && k1.ArgType == k2.ArgType && k1.Generated == k2.Generated
}

// Part is one part of a JSON schema.
// This is a keyword, such as "$id" or "properties",
// along with the value associated with that keyword in the schema.
type Part struct {
	Keyword *Keyword
	Value   PartValue
}

// MakePart builds a Part.
func MakePart(keyword *Keyword, value PartValue) Part {
	return Part{
		Keyword: keyword,
		Value:   value,
	}
}

// PartValue is the value of a JSON schema element.
// This is accessed via a type switch.
type PartValue interface {
	partValue() // restrict to types defined in this package
}

// PartBool is a schema part value that is a bool.
type PartBool bool

// PartString is a schema part value that is a string.
type PartString string

// PartStrings is a schema part value that is a list of strings.
type PartStrings []string

// PartStringOrStrings is a schema part that is either a single string
// or a list of strings. If Strings is not nil, String must be empty.
type PartStringOrStrings struct {
	String  string
	Strings []string
}

// PartInt is a schema part value that is an integer.
type PartInt int64

// PartFloat is a schema part value that is a floating-point number.
type PartFloat float64

// PartSchema is a schema part value that is a reference to a schema.
type PartSchema struct {
	S *Schema
}

// PartSchemas is a schema part value that is a list of schemas.
type PartSchemas []*Schema

// PartMapSchema is a schema part value that is a map from strings to schemas.
type PartMapSchema map[string]*Schema

// PartSchemaOrSchemas is either a single schema or a list of schemas.
// Exactly one of the fields will be nil.
type PartSchemaOrSchemas struct {
	Schema  *Schema
	Schemas []*Schema
}

// PartMapArrayOrSchema is a map from strings to elements,
// where each element is either an array of strings or a schema.
// This is used for the draft7 "dependencies" keyword.
type PartMapArrayOrSchema map[string]ArrayOrSchema

// ArrayOrSchema is the element type of the PartMapArrayOrSchema map.
// Exactly one of the fields will be nil.
type ArrayOrSchema struct {
	Array  []string // a zero-length slice is []string{}, not nil
	Schema *Schema
}

// PartAny is a schema part value that is an arbitrary type.
type PartAny struct {
	V any
}

func (PartBool) partValue()             {}
func (PartString) partValue()           {}
func (PartStrings) partValue()          {}
func (PartStringOrStrings) partValue()  {}
func (PartInt) partValue()              {}
func (PartFloat) partValue()            {}
func (PartSchema) partValue()           {}
func (PartSchemas) partValue()          {}
func (PartMapSchema) partValue()        {}
func (PartSchemaOrSchemas) partValue()  {}
func (PartMapArrayOrSchema) partValue() {}
func (PartAny) partValue()              {}

// ResolveOpts is options to use when resolving the schema.
// These are all optional.
type ResolveOpts struct {
	// The vocabulary to use.
	// This overrides anything recorded with the schema.
	Vocabulary *Vocabulary
	// URI of root of schema.
	// This is overridden by a $id keyword, if present.
	URI *url.URL
	// Load a remote reference, specifying the default schema.
	Loader func(schemaID string, uri *url.URL) (*Schema, error)
}

// SetLoader sets a function to call when resolving a $ref
// to an external schema. This is a global property,
// as there is no way to pass the desired value into the JSON decoder.
// Callers should use appropriate locking.
//
// This returns the old loader function.
// The default loader function is nil, which will produce an
// error for a $ref to an external schema.
func SetLoader(fn func(schemaID string, uri *url.URL) (*Schema, error)) func(string, *url.URL) (*Schema, error) {
	ret := loader
	loader = fn
	return ret
}

// loader is the default loader function.
var loader func(schemaID string, uri *url.URL) (*Schema, error)

// ValidationState is state we maintain while validating a schema.
// This does not apply to subschemas or parent schemas.
// This is exported for use by additional schema implementations.
type ValidationState struct {
	// The root of the Schema being validated.
	Root *Schema
	// The ValidationState attached to the root Schema, for global information.
	RootState *ValidationState
	// The Schema being validated.
	Schema *Schema
	// The index in schema.Parts of the keyword currently being validated.
	Index int
	// Current URI, from $id keyword.
	URI *url.URL
	// Notes created during validation.
	Notes notes.Notes
	// Depth of tree when validating. Used to avoid infinite recursion.
	Depth int
	// Validation options. Nil for the defaults.
	Opts *ValidateOpts
	// For use by version-specific code.
	VersionData *any

	// InstancePath holds the JSON Pointer tokens to the current location
	// within the instance being validated.
	InstancePath []string
}

// Child returns a new ValidationState that is a child of vs.
// This can be used to validate a subschema without changing
// the notes stored in vs.
func (vs *ValidationState) Child() (*ValidationState, error) {
	if vs.Depth > 1000 {
		return nil, errors.New("recursion while validating schema too deep")
	}

	ret := &ValidationState{
		Root:         vs.Root,
		RootState:    vs.RootState,
		Schema:       vs.Schema,
		Index:        vs.Index,
		URI:          vs.URI,
		Depth:        vs.Depth + 1,
		Opts:         vs.Opts,
		VersionData:  vs.VersionData,
		InstancePath: append([]string(nil), vs.InstancePath...),
	}
	return ret, nil
}

// PushInstanceToken appends a token to the instance path.
func (vs *ValidationState) PushInstanceToken(tok string) {
	vs.InstancePath = append(vs.InstancePath, tok)
}

// PopInstanceToken removes the last token from the instance path.
func (vs *ValidationState) PopInstanceToken() {
	if n := len(vs.InstancePath); n > 0 {
		vs.InstancePath = vs.InstancePath[:n-1]
	}
}

// InstancePointer returns the current instance location as a JSON Pointer
// string starting with '#'.
func (vs *ValidationState) InstancePointer() string {
	if len(vs.InstancePath) == 0 {
		return "#"
	}
	b := make([]byte, 0, 2*len(vs.InstancePath))
	b = append(b, '#', '/')
	for i, t := range vs.InstancePath {
		if i > 0 {
			b = append(b, '/')
		}
		for j := 0; j < len(t); j++ {
			switch t[j] {
			case '~':
				b = append(b, '~', '0')
			case '/':
				b = append(b, '~', '1')
			default:
				b = append(b, t[j])
			}
		}
	}
	return string(b)
}

// EnsureInstanceLocation sets InstanceLocation on validation errors if empty.
func EnsureInstanceLocation(err error, ptr string) error {
	switch e := err.(type) {
	case *validerr.ValidationError:
		if e.InstanceLocation == "" || e.InstanceLocation == "#" {
			e.InstanceLocation = ptr
		}
		return e
	case *validerr.ValidationErrors:
		for _, ve := range e.Errs {
			if ve.InstanceLocation == "" || ve.InstanceLocation == "#" {
				ve.InstanceLocation = ptr
			}
		}
		return e
	default:
		return err
	}
}

// SchemaKeyword is a keyword to hold the schema version.
var SchemaKeyword = Keyword{
	Name:     "$schema",
	ArgType:  ArgTypeString,
	Validate: validateTrue,
}

// BoolKeyword is not a real keyword, but is used to represent the
// special schema values "true" and "false".
var BoolKeyword = Keyword{
	Name:     "$bool",
	ArgType:  ArgTypeBool,
	Validate: validateBool,
}

// validateTrue is a validator function that always succeeds.
func validateTrue(PartValue, any, *ValidationState) error {
	return nil
}

// validateBool handles the special $bool keyword,
// which does not actually appear in schema definitions.
func validateBool(arg PartValue, instance any, state *ValidationState) error {
	b := arg.(PartBool)
	if !b {
		return &validerr.ValidationError{
			Message: "false schema never matches",
		}
	}
	return nil
}

// Vocabulary is a vocabulary type: a list of known keywords.
// Each schema version defines an instance of this type.
type Vocabulary struct {
	// The name of this schema version, for messages.
	Name string
	// The URI that describes this schema version.
	// The value of the $schema keyword.
	Schema string
	// The keywords of this schema version.
	Keywords map[string]*Keyword
	// A function that resolves references within a schema.
	Resolve func(*Schema, *ResolveOpts) error
	// The sorting function of this schema.
	Cmp func(string, string) int
}

// A registry is a mapping from schema name to Vocabulary.
type registry struct {
	mu      sync.Mutex
	mapping map[string]*Vocabulary
	defval  *Vocabulary // default vocabulary
}

// add adds an item to the registry.
func (r *registry) add(s string, v *Vocabulary, def bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mapping == nil {
		r.mapping = make(map[string]*Vocabulary)
	}
	if _, found := r.mapping[s]; found {
		panic(fmt.Sprintf("multiple attempts to add %q to registry", s))
	}
	r.mapping[s] = v
	if def {
		if r.defval != nil {
			panic("multiple default vocabularies")
		}
		r.defval = v
	}
}

// lookup returns an element from the registry, or nil if not present.
func (r *registry) lookup(s string) *Vocabulary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mapping[s]
}

// def returns the default vocabulary, or nil if there isn't one.
func (r *registry) def() *Vocabulary {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.defval != nil {
		return r.defval
	}
	if len(r.mapping) == 1 {
		for _, v := range r.mapping {
			return v
		}
	}
	return nil
}

// setDef sets the default vocabulary.
func (r *registry) setDef(s string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.mapping {
		if v.Name == s {
			r.defval = v
			return nil
		}
	}

	return fmt.Errorf("setting default to %q failed: unknown schema ID", s)
}

// clear clears the registry, removing all entries.
func (r *registry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mapping = nil
	r.defval = nil
}

// reg is the global registry.
var reg registry

// RegisterVocabulary registers a vocabulary.
// The def argument is true for the default vocabulary.
// It's normally not necessary to call this;
// importing a JSON schema version package will register it.
func RegisterVocabulary(v *Vocabulary, def bool) {
	reg.add(strings.TrimSuffix(v.Schema, "#"), v, def)
}

// LookupVocabulary returns a registered vocabulary, or nil if no vocabulary
// was registered under that name.
func LookupVocabulary(s string) *Vocabulary {
	// For draft7 we can see "http://json-schema.org/draft-07/schema#".
	s = strings.TrimSuffix(s, "#")
	return reg.lookup(s)
}

// DefaultVocabulary returns the default vocabulary, or nil if there isn't one.
func DefaultVocabulary() *Vocabulary {
	return reg.def()
}

// SetDefaultSchema sets the default schema.
// The argument should be something like "draft7" or "draft2020-12".
func SetDefaultSchema(s string) error {
	return reg.setDef(s)
}

// ClearVocabularies discards the vocabulary registry. This is for tests.
func ClearVocabularies() {
	reg.clear()
}
