// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package output renders a validation result in the four output
// formats defined by the JSON Schema core specification: flag, basic,
// detailed, and verbose. The validator produces, at minimum, a flat
// list of [validerr.ValidationError] values, each already carrying a
// fully composed keywordLocation and instanceLocation (see
// [validerr.AddError]); this package is responsible only for shaping
// that list into the JSON structure each format calls for.
package output

import (
	"sort"
	"strings"

	"github.com/kschema/jsonschema/internal/validerr"
)

// Format names one of the four standard output formats.
type Format int

const (
	// Flag reports only a boolean.
	Flag Format = iota
	// Basic reports a flat list of errors.
	Basic
	// Detailed reports errors grouped into a tree by keyword location.
	Detailed
	// Verbose is built from the same failing-node tree as Detailed,
	// without Detailed's single-child-chain pruning. It does not show
	// successful branches or annotations: the underlying representation
	// this package renders from is a flat list of failures
	// ([validerr.ValidationError]), with no record of keywords that
	// passed, so there is no passing-branch data for Verbose to
	// include. See DESIGN.md's Component J entry.
	Verbose
)

// FlagResult is the "flag" output format: the simplest true/false report.
type FlagResult struct {
	Valid bool `json:"valid"`
}

// BasicError is one entry in the "basic" format's flat error list.
type BasicError struct {
	KeywordLocation  string `json:"keywordLocation"`
	InstanceLocation string `json:"instanceLocation"`
	Error            string `json:"error"`
}

// BasicResult is the "basic" output format: a flat list of errors.
type BasicResult struct {
	Valid  bool         `json:"valid"`
	Errors []BasicError `json:"errors,omitempty"`
}

// Node is one node of the "detailed" or "verbose" output tree.
type Node struct {
	Valid            bool    `json:"valid"`
	KeywordLocation  string  `json:"keywordLocation"`
	InstanceLocation string  `json:"instanceLocation,omitempty"`
	Error            string  `json:"error,omitempty"`
	Errors           []*Node `json:"errors,omitempty"`
}

// Render builds the output value for the given format from err, the
// error returned by validating a schema against an instance. A nil err
// means the instance was valid. Render panics if format is not one of
// the four constants in this package.
func Render(format Format, err error) any {
	errs := flatten(err)

	switch format {
	case Flag:
		return FlagResult{Valid: len(errs) == 0}
	case Basic:
		return basicResult(errs)
	case Detailed:
		return detailedResult(errs, true)
	case Verbose:
		return detailedResult(errs, false)
	default:
		panic("output: unknown format")
	}
}

// flatten extracts the list of leaf [validerr.ValidationError] values
// from err, whether it is a single error, a [validerr.ValidationErrors],
// or nil.
func flatten(err error) []*validerr.ValidationError {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *validerr.ValidationError:
		return []*validerr.ValidationError{e}
	case *validerr.ValidationErrors:
		out := make([]*validerr.ValidationError, 0, len(e.Errs))
		out = append(out, e.Errs...)
		return out
	default:
		return []*validerr.ValidationError{{Message: e.Error()}}
	}
}

func basicResult(errs []*validerr.ValidationError) BasicResult {
	if len(errs) == 0 {
		return BasicResult{Valid: true}
	}
	r := BasicResult{Errors: make([]BasicError, len(errs))}
	for i, e := range errs {
		r.Errors[i] = BasicError{
			KeywordLocation:  e.KeywordLocation,
			InstanceLocation: e.InstanceLocation,
			Error:            e.Message,
		}
	}
	return r
}

// detailedResult groups the flat error list into a tree keyed by the
// "/"-separated segments of each error's keywordLocation. When prune
// is true (the "detailed" format), a chain of nodes that each have
// exactly one child is collapsed into a single node, matching how
// implementations typically present "detailed" output; "verbose"
// keeps every intermediate node.
func detailedResult(errs []*validerr.ValidationError, prune bool) *Node {
	root := &Node{Valid: len(errs) == 0, KeywordLocation: "#"}
	if len(errs) == 0 {
		return root
	}

	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].KeywordLocation < errs[j].KeywordLocation
	})

	type branch struct {
		node     *Node
		children map[string]*branch
	}
	rootBranch := &branch{node: root, children: map[string]*branch{}}

	for _, e := range errs {
		segs := pathSegments(e.KeywordLocation)
		cur := rootBranch
		path := "#"
		for _, seg := range segs {
			path += "/" + seg
			child, ok := cur.children[seg]
			if !ok {
				n := &Node{Valid: false, KeywordLocation: path}
				child = &branch{node: n, children: map[string]*branch{}}
				cur.children[seg] = child
				cur.node.Errors = append(cur.node.Errors, n)
			}
			cur = child
		}
		cur.node.InstanceLocation = e.InstanceLocation
		cur.node.Error = e.Message
	}

	if prune {
		pruneChains(root)
	}
	return root
}

// pathSegments splits a keywordLocation like "#/allOf/0/properties/x"
// into ["allOf", "0", "properties", "x"].
func pathSegments(loc string) []string {
	loc = strings.TrimPrefix(loc, "#")
	loc = strings.TrimPrefix(loc, "/")
	if loc == "" {
		return nil
	}
	return strings.Split(loc, "/")
}

// pruneChains collapses any node that has exactly one child and no
// error message of its own into that child, so a long chain of single
// applicator failures (e.g. "allOf/0/properties/x") reads as one node
// rather than a deeply nested one.
func pruneChains(n *Node) {
	for len(n.Errors) == 1 && n.Error == "" {
		only := n.Errors[0]
		n.Error = only.Error
		n.InstanceLocation = only.InstanceLocation
		n.KeywordLocation = only.KeywordLocation
		n.Errors = only.Errors
	}
	for _, c := range n.Errors {
		pruneChains(c)
	}
}
