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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sage-x-project/httpsig/pkg/component"
	"github.com/sage-x-project/httpsig/pkg/sfv"
)

// ErrMissingCavageParam is raised when a cavage component list names
// "(created)" or "(expires)" but p carries no corresponding value.
var ErrMissingCavageParam = errors.New("sigbase: cavage component requires a signature parameter that was not set")

// BuildHTTPBIS assembles the RFC 9421 signature base for msg: one
// `"identifier": value` line per component in p.Components, in order
// (a "@query-param" identifier matching more than one value contributes
// one line per value; a field's multiple values arrive already joined
// with ", " as one value, so a field gives one line), terminated by the
// `"@signature-params": <inner-list>` line derived from p. An empty
// p.Components is valid and produces a base containing only that
// trailing line.
func BuildHTTPBIS(msg component.Message, p Params) (string, error) {
	lines := make([]string, 0, len(p.Components)+1)
	for _, id := range p.Components {
		values, err := component.Resolve(id, msg)
		if err != nil {
			return "", err
		}
		label, err := id.CanonicalString()
		if err != nil {
			return "", err
		}
		for _, v := range values {
			lines = append(lines, label+": "+v)
		}
	}
	innerStr, err := sfv.SerializeInnerList(p.InnerList())
	if err != nil {
		return "", err
	}
	lines = append(lines, `"@signature-params": `+innerStr)
	return strings.Join(lines, "\n"), nil
}

// BuildCavage assembles a legacy cavage-dialect signature base: one
// `identifier: value` line per component, unquoted and lower-cased, with
// "(request-target)", "(created)" and "(expires)" resolved as
// pseudo-headers from msg and p rather than from the message's own
// headers. Unlike httpbis, no trailing parameters line is produced —
// the parameters travel with the signature itself.
func BuildCavage(msg component.Message, p Params) (string, error) {
	if len(p.Components) == 0 {
		return "", ErrEmptyComponentList
	}
	lines := make([]string, 0, len(p.Components))
	for _, id := range p.Components {
		name := strings.ToLower(id.Name)
		switch name {
		case "(request-target)":
			target, err := cavageRequestTarget(msg)
			if err != nil {
				return "", err
			}
			lines = append(lines, "(request-target): "+target)
		case "(created)":
			if p.Created == nil {
				return "", fmt.Errorf("%w: (created)", ErrMissingCavageParam)
			}
			lines = append(lines, "(created): "+strconv.FormatInt(*p.Created, 10))
		case "(expires)":
			if p.Expires == nil {
				return "", fmt.Errorf("%w: (expires)", ErrMissingCavageParam)
			}
			lines = append(lines, "(expires): "+strconv.FormatInt(*p.Expires, 10))
		default:
			values, err := component.Resolve(component.NewIdentifier(name), msg)
			if err != nil {
				return "", err
			}
			lines = append(lines, name+": "+strings.Join(values, ", "))
		}
	}
	return strings.Join(lines, "\n"), nil
}

// cavageRequestTarget renders the traditional "(request-target)" value:
// the lower-cased method, a space, then the @request-target path and
// query — distinct from RFC 9421's "@request-target", which omits the
// method entirely.
func cavageRequestTarget(msg component.Message) (string, error) {
	method, err := component.Resolve(component.NewIdentifier("@method"), msg)
	if err != nil {
		return "", err
	}
	target, err := component.Resolve(component.NewIdentifier("@request-target"), msg)
	if err != nil {
		return "", err
	}
	return strings.ToLower(method[0]) + " " + target[0], nil
}

// CavageHeaderList renders p.Components as the space-separated list that
// fills a cavage Signature header's "headers" parameter, e.g.
// "(request-target) (created) host digest".
func CavageHeaderList(p Params) string {
	names := make([]string, len(p.Components))
	for i, c := range p.Components {
		names[i] = strings.ToLower(c.Name)
	}
	return strings.Join(names, " ")
}
