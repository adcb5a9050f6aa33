// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft7

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/kschema/jsonschema/internal/schemacache"
	"github.com/kschema/jsonschema/pkg/builder"
	"github.com/kschema/jsonschema/pkg/jsonpointer"
	"github.com/kschema/jsonschema/pkg/schema"
)

// Builder is a JSON schema builder for the draft-07 dialect.
//
// Programs should use [NewBuilder] or [NewSubBuilder] to get a Builder.
type Builder struct {
	b *builder.Builder
}

// NewBuilder returns a [Builder] to use to build a JSON schema.
func NewBuilder() *Builder {
	b := &Builder{builder.New(Vocabulary)}
	return b.AddString(&schema.SchemaKeyword, SchemaID)
}

// NewSubBuilder returns a [Builder] like [NewBuilder], but is for a
// schema that will be part of some larger schema.
func NewSubBuilder() *Builder {
	return &Builder{builder.New(Vocabulary)}
}

// Build returns a newly built schema.
func (b *Builder) Build() *schema.Schema {
	return b.b.Build()
}

// NewSubBuilder returns a new [Builder] with the same vocabulary.
func (b *Builder) NewSubBuilder() *Builder {
	return &Builder{builder.New(Vocabulary)}
}

// BoolSchema returns a newly built schema accepting all or no instances.
func (b *Builder) BoolSchema(acceptAll bool) *schema.Schema {
	b2 := b.NewSubBuilder()
	b2.b.AddBool(&schema.BoolKeyword, acceptAll)
	return b2.Build()
}

// AddSchemaParts adds a list of parts.
func (b *Builder) AddSchemaParts(parts []schema.Part) *Builder {
	b.b = b.b.AddSchemaParts(parts)
	return b
}

// Infer adds schema elements to b designed to validate JSON values
// that unmarshal into values of the given type.
func Infer[T any](b *Builder, opts *builder.InferOpts) (*Builder, error) {
	return builder.Infer[T](b, opts)
}

// InferType is like [Infer] but takes a [reflect.Type] rather than a
// type argument.
func InferType(b *Builder, typ reflect.Type, opts *builder.InferOpts) (*Builder, error) {
	return builder.InferType(b, typ, opts)
}

// AddItemsSchema is for builder.Infer. Use the AddItems method instead.
func (b *Builder) AddItemsSchema(s *schema.Schema) *Builder {
	return b.AddItems(s)
}

// resolveState holds state during resolveSchema.
type resolveState struct {
	ropts   *schema.ResolveOpts
	root    *schema.Schema
	schemas map[*schema.Schema]schemaData
	uris    map[string]*schema.Schema
	cache   schemacache.Cache
}

// schemaData is information we keep for some schemas.
type schemaData struct {
	uri *url.URL
}

// subInfo holds information we pass down to subschemas.
type subInfo struct {
	uri  *url.URL
	name []string
}

// Name returns the name of the current subschema.
func (si subInfo) Name() string {
	return "/" + strings.Join(si.name, "/")
}

// resolveSchema is the Vocabulary.Resolve field.
func resolveSchema(sch *schema.Schema, ropts *schema.ResolveOpts) error {
	state := &resolveState{
		ropts: ropts,
		root:  sch,
	}
	var uri *url.URL
	if ropts != nil {
		uri = ropts.URI
	}
	return resolveRefSchema(uri, sch, state)
}

// resolveRefSchema resolves a schema that may have a known URI.
func resolveRefSchema(uri *url.URL, sch *schema.Schema, state *resolveState) error {
	subData := subInfo{uri: uri}
	if err := resolveIDs(sch, state, subData); err != nil {
		return err
	}
	return resolveRefs(sch, state, subData)
}

// resolveIDs finds the document-identifying $id (or legacy id) values
// in a schema.
func resolveIDs(subSchema *schema.Schema, state *resolveState, subData subInfo) error {
	if subSchema == nil {
		return nil
	}

	for _, part := range subSchema.Parts {
		var err error
		switch part.Keyword.Name {
		case "$id", "id":
			subData, err = resolveID(subSchema, part.Value, state, subData)
		case "$ref":
			if state.schemas == nil {
				state.schemas = make(map[*schema.Schema]schemaData)
			}
			state.schemas[subSchema] = schemaData{uri: subData.uri}
		}
		if err != nil {
			return err
		}
	}

	for name, subsub := range subSchema.Children() {
		subsubData := subInfo{
			uri:  subData.uri,
			name: append(subData.name, name),
		}
		if err := resolveIDs(subsub, state, subsubData); err != nil {
			return err
		}
	}

	return nil
}

// resolveID handles the $id/id keyword when searching for identities.
func resolveID(subSchema *schema.Schema, value schema.PartValue, state *resolveState, subData subInfo) (subInfo, error) {
	arg := value.(schema.PartString)
	uri, err := url.Parse(string(arg))
	if err != nil {
		return subInfo{}, fmt.Errorf(`%s: failed to parse "$id" %q: %v`, subData.Name(), arg, err)
	}
	var newURI *url.URL
	if uri.IsAbs() || subData.uri == nil {
		newURI = uri
	} else {
		newURI = subData.uri.ResolveReference(uri)
	}

	if state.uris == nil {
		state.uris = make(map[string]*schema.Schema)
	}
	key := *newURI
	key.Fragment = ""
	if newURI.Fragment != "" {
		// A plain-name fragment on draft-07's id is an anchor.
		anchorURI := key
		anchorURI.Fragment = newURI.Fragment
		state.uris[anchorURI.String()] = subSchema
	}
	state.uris[key.String()] = subSchema

	return subInfo{uri: &key, name: subData.name}, nil
}

// resolveRefs resolves all $ref keywords in the schema.
func resolveRefs(subSchema *schema.Schema, state *resolveState, subData subInfo) error {
	if subSchema == nil {
		return nil
	}

	sawRef := false
	for _, part := range subSchema.Parts {
		if part.Keyword.Name != "$ref" {
			continue
		}
		if sawRef {
			return fmt.Errorf("%s: more than one $ref", subData.Name())
		}
		sawRef = true
		if err := resolveRef(subSchema, part.Value, state, subData); err != nil {
			return err
		}
	}

	for name, subsub := range subSchema.Children() {
		subsubData := subInfo{name: append(subData.name, name)}
		if err := resolveRefs(subsub, state, subsubData); err != nil {
			return err
		}
	}

	return nil
}

// resolveRef resolves a $ref in the schema.
func resolveRef(subSchema *schema.Schema, value schema.PartValue, state *resolveState, subData subInfo) error {
	ref := string(value.(schema.PartString))
	refURI, err := url.Parse(ref)
	if err != nil {
		return err
	}

	sd, ok := state.schemas[subSchema]
	if !ok {
		panic("resolveIDs did not resolve schema URI")
	}
	if sd.uri != nil {
		refURI = sd.uri.ResolveReference(refURI)
	}

	frag := refURI.Fragment

	addRef := func(refSchema *schema.Schema) {
		subSchema.Parts = append(subSchema.Parts, schema.Part{
			Keyword: &resolvedRefKeyword,
			Value:   schema.PartSchema{S: refSchema},
		})
	}

	if s, ok := state.uris[refURI.String()]; ok {
		addRef(s)
		return nil
	}

	refSchema, err := resolveURI(refURI, state, subData)
	if err != nil {
		return err
	}

	if s, ok := state.uris[refURI.String()]; ok {
		addRef(s)
		return nil
	}

	if frag != "" {
		if !strings.HasPrefix(frag, "/") {
			return fmt.Errorf("%s: could not find fragment %q from URI %q", subData.Name(), frag, refURI)
		}
		if refSchema, err = jsonpointer.DerefSchema(SchemaID, refSchema, frag); err != nil {
			return fmt.Errorf("%s: could not resolve JSON pointer %q from URI %q: %v", subData.Name(), frag, refURI, err)
		}
	}

	addRef(refSchema)
	return nil
}

// resolveURI returns the schema for a URI.
func resolveURI(refURI *url.URL, state *resolveState, subData subInfo) (*schema.Schema, error) {
	noFragURIBase := *refURI
	noFragURIBase.Fragment = ""
	noFragURI := &noFragURIBase
	noFragStr := noFragURI.String()

	if noFragStr == "" {
		return state.root, nil
	}

	if refSchema, ok := state.uris[noFragStr]; ok {
		return refSchema, nil
	}

	if !noFragURI.IsAbs() {
		return nil, fmt.Errorf("%s: could not resolve ref to %q", subData.Name(), noFragURI)
	}

	refSchema, err := checkMetaSchema(noFragURI, state.ropts)
	if err != nil {
		return nil, err
	}
	if refSchema != nil {
		return refSchema, nil
	}

	if state.ropts.Loader == nil {
		return nil, fmt.Errorf("%s: remote loading of URI %q not permitted", subData.Name(), noFragURI)
	}

	refSchema = state.cache.Load(SchemaID, noFragStr)
	if refSchema != nil {
		return refSchema, nil
	}

	refSchema, err = state.ropts.Loader(SchemaID, noFragURI)
	if err != nil {
		return nil, fmt.Errorf("%s: loading of URI %q failed: %v", subData.Name(), noFragURI, err)
	}
	if refSchema == nil {
		return nil, fmt.Errorf("%s: loading of URI %q returned no schema and no error", subData.Name(), noFragURI)
	}

	state.cache.Store(SchemaID, noFragStr, refSchema)

	if err := resolveRefSchema(noFragURI, refSchema, state); err != nil {
		return nil, fmt.Errorf("%s: resolving schema at URI %q failed: %v", subData.Name(), noFragURI, err)
	}

	return refSchema, nil
}
