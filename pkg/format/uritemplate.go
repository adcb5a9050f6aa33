// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"regexp"

	"github.com/kschema/jsonschema/pkg/schema"
)

// uriTemplateExprRe matches one {...} expression of a RFC 6570 URI
// Template: an optional operator, followed by one or more
// comma-separated varspecs (varname with an optional modifier).
var uriTemplateExprRe = regexp.MustCompile(
	`^[+#./;?&=,!@|]?` +
		`(?:%[0-9A-Fa-f]{2}|[A-Za-z0-9_.]|%[A-Za-z0-9])+` +
		`(?:\*|:[1-9][0-9]{0,3})?` +
		`(?:,(?:%[0-9A-Fa-f]{2}|[A-Za-z0-9_.]|%[A-Za-z0-9])+(?:\*|:[1-9][0-9]{0,3})?)*$`,
)

// uriTemplateFormat requires a valid RFC 6570 URI Template. No pack
// example imports a URI-template library (see SPEC_FULL.md's Domain
// Stack table), so this checks the literal/expression grammar
// directly, in the same hand-rolled style as uriFormat.
func uriTemplateFormat(instance any, state *schema.ValidationState) error {
	s, ok := instance.(string)
	if !ok {
		return nil
	}
	if !isValidURITemplate(s) {
		return fmt.Errorf("%q is not a valid URI template", s)
	}
	return nil
}

// isValidURITemplate reports whether s is a syntactically valid URI
// Template: literal characters outside of "{" / "}", interspersed
// with "{expression}" blocks whose contents match uriTemplateExprRe.
func isValidURITemplate(s string) bool {
	for len(s) > 0 {
		switch s[0] {
		case '{':
			end := -1
			for i := 1; i < len(s); i++ {
				if s[i] == '{' {
					return false
				}
				if s[i] == '}' {
					end = i
					break
				}
			}
			if end < 0 {
				return false
			}
			if !uriTemplateExprRe.MatchString(s[1:end]) {
				return false
			}
			s = s[end+1:]
		case '}':
			return false
		default:
			s = s[1:]
		}
	}
	return true
}
