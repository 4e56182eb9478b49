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

package component

import (
	"fmt"
	"strings"

	"github.com/sage-x-project/httpsig/pkg/sfv"
)

// Well-known parameter names a component identifier may carry.
const (
	ParamSF    = "sf"    // serialize the field as a structured field before signing
	ParamKey   = "key"   // select a single member of a dictionary-valued field
	ParamBS    = "bs"    // byte-sequence encode each raw field value
	ParamReq   = "req"   // resolve against the bound request of a response
	ParamName  = "name"  // the @query-param name to extract
	ParamTrailer = "tr"  // resolve against trailers instead of the header block
)

// Identifier names a single component to include in a signature base: a
// derived component such as "@method", or a field name such as
// "content-type", together with the parameters that modify how it is
// resolved.
type Identifier struct {
	Name   string
	Params sfv.Params
}

// NewIdentifier builds an Identifier with no parameters.
func NewIdentifier(name string) Identifier {
	return Identifier{Name: name}
}

// WithParam returns a copy of id with key=value added or replaced.
func (id Identifier) WithParam(key string, value sfv.BareItem) Identifier {
	return Identifier{Name: id.Name, Params: id.Params.With(key, value)}
}

// IsDerived reports whether id names a derived ("@"-prefixed) component.
func (id Identifier) IsDerived() bool {
	return strings.HasPrefix(id.Name, "@")
}

// Param looks up a parameter by key.
func (id Identifier) Param(key string) (sfv.BareItem, bool) {
	return id.Params.Get(key)
}

// CanonicalString renders id as it must appear, quoted, on a
// signature-base line: the lower-cased name as an sf-string, followed
// by its parameters in the order they were set.
func (id Identifier) CanonicalString() (string, error) {
	item := sfv.Item{Value: strings.ToLower(id.Name), Params: id.Params}
	return sfv.SerializeItem(item)
}

// ParseIdentifier parses a component identifier as it appears inside a
// Signature-Input inner list, e.g. `"content-type"` or
// `"@query-param";name="baz"`. Bare (unquoted) identifiers, as consumers
// commonly write them in code, are accepted too.
func ParseIdentifier(s string) (Identifier, error) {
	quoted, err := sfv.QuoteIfBare(s)
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	item, err := sfv.ParseItem(quoted)
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	name, ok := item.Value.(string)
	if !ok {
		return Identifier{}, fmt.Errorf("%w: component identifier must be a string", ErrMalformedInput)
	}
	return Identifier{Name: name, Params: item.Params}, nil
}
