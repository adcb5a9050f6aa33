// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "testing"

func TestIsValidURITemplate(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"http://example.com/~{username}/", true},
		{"http://example.com/dictionary/{term:1}/{term}", true},
		{"http://example.com/search{?q,lang}", true},
		{"{+path}/here", true},
		{"{#frag}", true},
		{"plain-literal-no-expression", true},
		{"", true},
		{"http://example.com/{unterminated", false},
		{"http://example.com/unopened}", false},
		{"http://example.com/{nested{expr}}", false},
		{"http://example.com/{}", false},
		{"{var:0}", false},
	}
	for _, tt := range tests {
		if got := isValidURITemplate(tt.s); got != tt.want {
			t.Errorf("isValidURITemplate(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestURITemplateFormat(t *testing.T) {
	if err := uriTemplateFormat("http://example.com/{id}", nil); err != nil {
		t.Errorf("uriTemplateFormat(valid) = %v, want nil", err)
	}
	if err := uriTemplateFormat("http://example.com/{id", nil); err == nil {
		t.Errorf("uriTemplateFormat(invalid) = nil, want error")
	}
	if err := uriTemplateFormat(42, nil); err != nil {
		t.Errorf("uriTemplateFormat(non-string) = %v, want nil", err)
	}
}
