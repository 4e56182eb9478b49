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
	"net/url"
	"strconv"
	"strings"

	"github.com/sage-x-project/httpsig/pkg/sfv"
)

// defaultPorts maps a URL scheme to the port @authority omits.
var defaultPorts = map[string]string{"http": "80", "https": "443"}

// Resolve returns the signature-base value(s) for id against msg. Most
// identifiers resolve to exactly one value; a "@query-param" identifier
// naming a repeated query parameter resolves to one value per
// occurrence, in the order the parameter appears in the query string,
// and the caller is expected to emit one base line per value.
func Resolve(id Identifier, msg Message) ([]string, error) {
	if id.IsDerived() {
		return resolveDerived(id, msg)
	}
	return resolveField(id, msg)
}

func resolveDerived(id Identifier, msg Message) ([]string, error) {
	switch id.Name {
	case "@method":
		req, ok := requestViewForDerived(id, msg)
		if !ok {
			return nil, fmt.Errorf("%w: @method requires a request, or \";req\" on a response bound to one", ErrMissingComponent)
		}
		return []string{strings.ToUpper(req.Method)}, nil

	case "@target-uri":
		req, ok := requestViewForDerived(id, msg)
		if !ok {
			return nil, fmt.Errorf("%w: @target-uri requires a request, or \";req\" on a response bound to one", ErrMissingComponent)
		}
		return []string{req.URL.String()}, nil

	case "@authority":
		req, ok := requestViewForDerived(id, msg)
		if !ok {
			return nil, fmt.Errorf("%w: @authority requires a request, or \";req\" on a response bound to one", ErrMissingComponent)
		}
		return []string{canonicalAuthority(req.URL)}, nil

	case "@scheme":
		req, ok := requestViewForDerived(id, msg)
		if !ok {
			return nil, fmt.Errorf("%w: @scheme requires a request, or \";req\" on a response bound to one", ErrMissingComponent)
		}
		scheme := strings.ToLower(req.URL.Scheme)
		if scheme == "" {
			scheme = "https"
		}
		return []string{scheme}, nil

	case "@request-target":
		req, ok := requestViewForDerived(id, msg)
		if !ok {
			return nil, fmt.Errorf("%w: @request-target requires a request, or \";req\" on a response bound to one", ErrMissingComponent)
		}
		if strings.EqualFold(req.Method, "CONNECT") {
			return []string{req.URL.Host}, nil
		}
		return []string{pathAndQuery(req.URL)}, nil

	case "@path":
		req, ok := requestViewForDerived(id, msg)
		if !ok {
			return nil, fmt.Errorf("%w: @path requires a request, or \";req\" on a response bound to one", ErrMissingComponent)
		}
		path := req.URL.EscapedPath()
		if path == "" {
			path = "/"
		}
		return []string{path}, nil

	case "@query":
		req, ok := requestViewForDerived(id, msg)
		if !ok {
			return nil, fmt.Errorf("%w: @query requires a request, or \";req\" on a response bound to one", ErrMissingComponent)
		}
		if req.URL.RawQuery == "" {
			return []string{"?"}, nil
		}
		return []string{"?" + req.URL.RawQuery}, nil

	case "@query-param":
		name, ok := id.Param(ParamName)
		nameStr, _ := name.(string)
		if !ok || nameStr == "" {
			return nil, fmt.Errorf("%w: @query-param requires a \"name\" parameter", ErrInvalidParameters)
		}
		req, ok := requestViewForDerived(id, msg)
		if !ok {
			return nil, fmt.Errorf("%w: @query-param requires a request, or \";req\" on a response bound to one", ErrMissingComponent)
		}
		values := rawQueryParamValues(req.URL.RawQuery, nameStr)
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: query parameter %q not present", ErrMissingComponent, nameStr)
		}
		return values, nil

	case "@status":
		if msg.Response == nil {
			return nil, fmt.Errorf("%w: @status requires a response", ErrMissingComponent)
		}
		return []string{strconv.Itoa(msg.Response.StatusCode)}, nil

	default:
		return nil, fmt.Errorf("%w: unknown derived component %q", ErrMalformedInput, id.Name)
	}
}

// requestViewForDerived returns the request a derived component
// identifier should resolve against: msg's own request if msg is a
// request, or msg.Response.BoundRequest if msg is a response AND id
// itself carries a truthy ";req" parameter. A response given to a
// request-only derived component without ";req" is not resolved
// against its bound request even if one is present — the identifier,
// not the message, decides whether "req" applies.
func requestViewForDerived(id Identifier, msg Message) (*RequestMessage, bool) {
	if msg.Request != nil {
		return msg.Request, true
	}
	if msg.Response == nil {
		return nil, false
	}
	reqParam, hasReq := id.Param(ParamReq)
	if !hasReq {
		return nil, false
	}
	if b, _ := reqParam.(bool); !b {
		return nil, false
	}
	return msg.Response.BoundRequest, msg.Response.BoundRequest != nil
}

// canonicalAuthority lowercases the host and omits a port matching the
// scheme's default.
func canonicalAuthority(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	port := u.Port()
	scheme := strings.ToLower(u.Scheme)
	if port == "" || port == defaultPorts[scheme] {
		return host
	}
	return host + ":" + port
}

func pathAndQuery(u *url.URL) string {
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}

// rawQueryParamValues returns the raw (still percent-encoded) values of
// every "name=value" pair in rawQuery whose percent-decoded key matches
// name, in order of occurrence.
func rawQueryParamValues(rawQuery, name string) []string {
	if rawQuery == "" {
		return nil
	}
	var values []string
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			decodedKey = key
		}
		if decodedKey == name {
			values = append(values, value)
		}
	}
	return values
}

func resolveField(id Identifier, msg Message) ([]string, error) {
	_, hasSF := id.Param(ParamSF)
	keyParam, hasKey := id.Param(ParamKey)
	_, hasBS := id.Param(ParamBS)
	_, hasTrailer := id.Param(ParamTrailer)
	reqParam, hasReq := id.Param(ParamReq)

	if hasBS && hasSF {
		return nil, fmt.Errorf("%w: \"bs\" and \"sf\" cannot both be set", ErrInvalidParameters)
	}
	if hasKey && !hasSF {
		return nil, fmt.Errorf("%w: \"key\" requires \"sf\"", ErrInvalidParameters)
	}

	header := msg.header()
	if hasTrailer {
		header = msg.trailer()
	}
	if hasReq {
		if b, _ := reqParam.(bool); b && msg.Response != nil {
			if msg.Response.BoundRequest == nil {
				return nil, fmt.Errorf("%w: \"req\" requires a bound request", ErrMissingComponent)
			}
			header = msg.Response.BoundRequest.Header
			if hasTrailer {
				header = msg.Response.BoundRequest.Trailer
			}
		}
	}

	values := header.Values(id.Name)
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: field %q not present", ErrMissingComponent, id.Name)
	}
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}

	if hasBS {
		return []string{serializeAsByteSequenceList(values)}, nil
	}
	if hasSF {
		return serializeAsStructuredField(values, keyParam, hasKey)
	}
	return []string{strings.Join(values, ", ")}, nil
}

func serializeAsByteSequenceList(values []string) string {
	list := make(sfv.List, len(values))
	for i, v := range values {
		list[i] = sfv.NewItem(sfv.Bytes(v))
	}
	out, err := sfv.SerializeList(list)
	if err != nil {
		// Every member is a freshly constructed byte-sequence Item; this
		// cannot fail.
		return ""
	}
	return out
}

func serializeAsStructuredField(values []string, keyParam sfv.BareItem, hasKey bool) ([]string, error) {
	raw := strings.Join(values, ", ")
	if !hasKey {
		dict, err := sfv.ParseDictionary(raw)
		if err == nil {
			out, serr := sfv.SerializeDictionary(dict)
			if serr != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedInput, serr)
			}
			return []string{out}, nil
		}
		list, err := sfv.ParseList(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field is not a valid structured field: %v", ErrMalformedInput, err)
		}
		out, err := sfv.SerializeList(list)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return []string{out}, nil
	}

	keyStr, ok := keyParam.(string)
	if !ok {
		return nil, fmt.Errorf("%w: \"key\" must be a string", ErrInvalidParameters)
	}
	dict, err := sfv.ParseDictionary(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: field is not a valid structured dictionary: %v", ErrMalformedInput, err)
	}
	member, ok := dict.Get(keyStr)
	if !ok {
		return nil, fmt.Errorf("%w: dictionary key %q not present", ErrMissingComponent, keyStr)
	}
	out, err := sfv.SerializeMember(member)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return []string{out}, nil
}
