// Copyright (C) 2025 SAGE-X Project
//
// This file is part of httpsig.
//
// httpsig is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// httpsig is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with httpsig.  If not, see <https://www.gnu.org/licenses/>.

package sfv

import "strings"

// QuoteIfBare turns a consumer-supplied identifier like
// `example-dict;key="a"` into a valid sf-item string by wrapping a bare
// (unquoted) name in double quotes, then re-serialising the whole thing
// canonically. Input that already starts with a quote is only
// canonicalised, not re-wrapped.
func QuoteIfBare(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMalformed
	}
	if s[0] != '"' {
		idx := strings.IndexByte(s, ';')
		name, rest := s, ""
		if idx >= 0 {
			name, rest = s[:idx], s[idx:]
		}
		name = strings.TrimSpace(name)
		name = strings.ReplaceAll(name, `\`, `\\`)
		name = strings.ReplaceAll(name, `"`, `\"`)
		s = `"` + name + `"` + rest
	}
	it, err := ParseItem(s)
	if err != nil {
		return "", err
	}
	return SerializeItem(it)
}
