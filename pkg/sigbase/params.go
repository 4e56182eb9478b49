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

package sigbase

import (
	"strings"

	"github.com/sage-x-project/httpsig/pkg/component"
	"github.com/sage-x-project/httpsig/pkg/sfv"
)

// Params carries the metadata that rides alongside a covered-component
// list: everything that ends up in the trailing "@signature-params"
// line of an httpbis base, or travels with the signature of a cavage
// one. Created and Expires are nil when unset, distinguishing "not
// present" from "present as zero".
type Params struct {
	Components []component.Identifier
	Created    *int64
	Expires    *int64
	Nonce      string
	Alg        string
	KeyID      string
	Tag        string
}

// InnerList renders p's component list and metadata as the sf-inner-list
// that is the value of "@signature-params": the components, each as a
// quoted-string item carrying its own parameters, followed by p's
// metadata as the inner list's own parameters, in the conventional
// created/expires/nonce/alg/keyid/tag order.
func (p Params) InnerList() sfv.InnerList {
	items := make([]sfv.Item, len(p.Components))
	for i, c := range p.Components {
		items[i] = sfv.Item{Value: strings.ToLower(c.Name), Params: c.Params}
	}
	var params sfv.Params
	if p.Created != nil {
		params = params.With("created", *p.Created)
	}
	if p.Expires != nil {
		params = params.With("expires", *p.Expires)
	}
	if p.Nonce != "" {
		params = params.With("nonce", p.Nonce)
	}
	if p.Alg != "" {
		params = params.With("alg", p.Alg)
	}
	if p.KeyID != "" {
		params = params.With("keyid", p.KeyID)
	}
	if p.Tag != "" {
		params = params.With("tag", p.Tag)
	}
	return sfv.InnerList{Items: items, Params: params}
}
