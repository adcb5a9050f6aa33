// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonschema is the top-level entry point for compiling and
// validating JSON Schema documents. It ties together the per-draft
// keyword vocabularies (pkg/draft202012, pkg/draft201909, pkg/draft7,
// pkg/draft6), the schema registry used to resolve remote $ref
// targets (pkg/registry), and the four standard output formats
// (pkg/output).
package jsonschema

import (
	"encoding/json"
	"fmt"
	"net/url"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"

	"github.com/kschema/jsonschema/pkg/draft201909"
	"github.com/kschema/jsonschema/pkg/draft202012"
	"github.com/kschema/jsonschema/pkg/draft6"
	"github.com/kschema/jsonschema/pkg/draft7"
	"github.com/kschema/jsonschema/pkg/output"
	"github.com/kschema/jsonschema/pkg/registry"
	"github.com/kschema/jsonschema/pkg/schema"
)

// Schema is a compiled JSON schema, ready to validate instances.
type Schema = schema.Schema

// Draft selects which dialect a document is parsed as when it does
// not declare its own $schema.
type Draft int

const (
	Draft202012 Draft = iota
	Draft201909
	Draft7
	Draft6
)

// schemaID returns the $schema URI identifying d.
func (d Draft) schemaID() string {
	switch d {
	case Draft202012:
		return draft202012.SchemaID
	case Draft201909:
		return draft201909.SchemaID
	case Draft7:
		return draft7.SchemaID
	case Draft6:
		return draft6.SchemaID
	default:
		return draft202012.SchemaID
	}
}

// OutputFormat selects one of the four standard result shapes.
type OutputFormat int

const (
	OutputFlag OutputFormat = iota
	OutputBasic
	OutputDetailed
	OutputVerbose
)

func (f OutputFormat) render() output.Format {
	switch f {
	case OutputFlag:
		return output.Flag
	case OutputDetailed:
		return output.Detailed
	case OutputVerbose:
		return output.Verbose
	default:
		return output.Basic
	}
}

// Options configures how a [Schema] is compiled and how it validates.
type Options struct {
	// DefaultDraft is used to parse a schema document that does not
	// declare its own $schema keyword. The zero value is Draft202012.
	DefaultDraft Draft

	// OutputFormat selects the shape [Schema.ValidateWithFormat]
	// returns. The zero value is OutputFlag.
	OutputFormat OutputFormat

	// StrictFormat causes an unrecognized "format" value to be a
	// validation error instead of an unenforced assertion.
	StrictFormat bool

	// StrictTypes is passed on as [schema.ValidateOpts.StrictTypes],
	// which no validator reads: "type" matching is the same whether
	// or not it is set.
	StrictTypes bool

	// RequireFormatValidation turns "format" into an assertion rather
	// than an annotation: with it, a "format" value is checked when a
	// validator is registered for it (for example by importing
	// pkg/format); without it, registered format validators are not run.
	RequireFormatValidation bool

	// MaxReferenceDepth is passed on as
	// [schema.ValidateOpts.MaxReferenceDepth], which is not read during
	// validation; $ref/$dynamicRef/$recursiveRef chasing is bounded only
	// by the fixed nesting limit of [schema.ValidationState.Child].
	MaxReferenceDepth int

	// ApplyDefaults causes "default" values to be written back into
	// the instance being validated, where possible.
	ApplyDefaults bool

	// FetchHook retrieves a remote schema document by URI, to resolve
	// a $ref this compiler has not otherwise been given. A nil
	// FetchHook means remote $ref targets cannot be resolved.
	FetchHook func(uri *url.URL) ([]byte, error)
}

// Compiler compiles schema documents into [Schema] values that share
// a single [registry.Registry], so a $ref between two documents
// compiled by the same Compiler resolves without being fetched twice.
type Compiler struct {
	opts *Options
	reg  *registry.Registry
}

// NewCompiler returns a Compiler configured by opts. A nil opts is
// equivalent to a zero-valued [Options].
func NewCompiler(opts *Options) *Compiler {
	if opts == nil {
		opts = &Options{}
	}
	vocab := schema.LookupVocabulary(opts.DefaultDraft.schemaID())
	return &Compiler{
		opts: opts,
		reg:  registry.New(vocab, registry.FetchHook(opts.FetchHook)),
	}
}

// AddResource registers an already-parsed schema document at uri, so
// that other documents' $ref keywords can resolve it without a fetch.
func (c *Compiler) AddResource(uri *url.URL, data []byte) (*Schema, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("jsonschema: %q did not contain valid JSON: %w", uri, err))
	}

	s, err := schema.SchemaFromJSON(c.opts.DefaultDraft.schemaID(), uri, raw)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("jsonschema: parsing %q: %w", uri, err))
	}
	if err := s.Resolve(&schema.ResolveOpts{URI: uri, Loader: c.reg.Loader}); err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("jsonschema: resolving %q: %w", uri, err))
	}
	if err := c.reg.Add(uri, s); err != nil {
		return nil, motmedelErrors.NewWithTrace(err)
	}
	return s, nil
}

// Compile parses and resolves the schema document in data, returning
// a [Schema] ready to validate instances. uri, if non-nil, is the
// document's own identity, used to resolve any relative $id/$ref it
// contains and to resolve the "base URI" default case; it may be nil
// for a document that stands alone.
func (c *Compiler) Compile(uri *url.URL, data []byte) (*Schema, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("jsonschema: invalid JSON: %w", err))
	}

	s, err := schema.SchemaFromJSON(c.opts.DefaultDraft.schemaID(), uri, raw)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("jsonschema: %w", err))
	}

	if err := s.Resolve(&schema.ResolveOpts{URI: uri, Loader: c.reg.Loader}); err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("jsonschema: resolving schema: %w", err))
	}

	return s, nil
}

// New parses data as a standalone schema document, using [Draft202012]
// and no remote-fetch capability. It is the simplest way to get a
// [Schema] from a document that contains no external $ref targets.
func New(data []byte) (*Schema, error) {
	return NewCompiler(nil).Compile(nil, data)
}

// ValidateOpts builds the [schema.ValidateOpts] described by c's
// Options, for use with [Schema.ValidateWithOpts].
func (c *Compiler) ValidateOpts() *schema.ValidateOpts {
	return &schema.ValidateOpts{
		ApplyDefaults:     c.opts.ApplyDefaults,
		ValidateFormat:    c.opts.RequireFormatValidation,
		StrictFormat:      c.opts.StrictFormat,
		StrictTypes:       c.opts.StrictTypes,
		MaxReferenceDepth: c.opts.MaxReferenceDepth,
	}
}

// ValidateWithFormat validates instance against s using the options c
// was constructed with, and renders the result in the configured
// [OutputFormat] rather than returning a bare error.
func (c *Compiler) ValidateWithFormat(s *Schema, instance any) any {
	err := s.ValidateWithOpts(instance, c.ValidateOpts())
	return output.Render(c.opts.OutputFormat.render(), err)
}
