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

package httpsig

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/sage-x-project/httpsig/pkg/component"
	"github.com/sage-x-project/httpsig/pkg/sigbase"
)

// cavageAlgorithmAliases maps an httpbis algorithm identifier to the
// legacy token a cavage Signature header's "algorithm" parameter
// should carry. Only the algorithms draft-cavage-http-signatures
// itself named got a dedicated token; everything else — including
// "hs2019"-era algorithms this package recognizes but the draft never
// assigned a legacy name to, such as "ecdsa-p384-sha384" or "ed25519"
// — passes through under its own modern name.
var cavageAlgorithmAliases = map[string]string{
	"rsa-pss-sha512":    "hs2019",
	"rsa-v1_5-sha1":     "rsa-sha1",
	"rsa-v1_5-sha256":   "rsa-sha256",
	"ecdsa-p256-sha256": "ecdsa-sha256",
}

// cavageAlgorithmReverse inverts cavageAlgorithmAliases, except for
// "hs2019": that token is deliberately algorithm-agnostic (it is the
// only one of the four forward mappings that does not round-trip to a
// single modern name), so it is left for the caller to resolve via the
// key itself rather than guessed here.
var cavageAlgorithmReverse = map[string]string{
	"rsa-sha1":     "rsa-v1_5-sha1",
	"rsa-sha256":   "rsa-v1_5-sha256",
	"ecdsa-sha256": "ecdsa-p256-sha256",
}

func cavageAlgorithmName(alg string) string {
	if alias, ok := cavageAlgorithmAliases[alg]; ok {
		return alias
	}
	return alg
}

// cavageModernAlgorithmName translates a legacy algorithm token parsed
// off an incoming cavage signature back to the modern name key lookup
// and acceptance policy expect, per the reverse of
// cavageAlgorithmAliases. "hs2019" and any name this package has no
// legacy mapping for are returned unchanged.
func cavageModernAlgorithmName(alg string) string {
	if modern, ok := cavageAlgorithmReverse[alg]; ok {
		return modern
	}
	return alg
}

// cavageParams is the parsed form of a cavage Signature/Authorization
// header's comma-separated parameter list.
type cavageParams struct {
	KeyID     string
	Algorithm string
	Created   *int64
	Expires   *int64
	Headers   []string // defaults to ["(created)"] when absent, per draft
	Signature []byte
}

func signCavage(msg component.Message, cfg SignConfig) (SignedMessage, error) {
	if cfg.Key == nil {
		return SignedMessage{}, fmt.Errorf("%w: signature has no key", ErrMalformedInput)
	}
	created := cfg.createdUnix()
	expires := cfg.expiresUnix()
	params := sigbase.Params{Components: cfg.Components, Created: &created, Expires: expires}
	base, err := sigbase.BuildCavage(msg, params)
	if err != nil {
		return SignedMessage{}, err
	}
	raw, err := cfg.Key.Sign([]byte(base))
	if err != nil {
		return SignedMessage{}, fmt.Errorf("httpsig: sign: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `keyId="%s"`, cfg.Key.KeyID())
	fmt.Fprintf(&b, `,algorithm="%s"`, cavageAlgorithmName(cfg.Key.Algorithm()))
	if len(cfg.Components) > 0 {
		fmt.Fprintf(&b, `,headers="%s"`, sigbase.CavageHeaderList(params))
	}
	fmt.Fprintf(&b, ",created=%d", created)
	if expires != nil {
		fmt.Fprintf(&b, ",expires=%d", *expires)
	}
	fmt.Fprintf(&b, `,signature="%s"`, base64.StdEncoding.EncodeToString(raw))

	return SignedMessage{Signature: b.String()}, nil
}

// parseCavageHeader parses a Signature (or Authorization-scheme-
// stripped) header value into its comma-separated key="value" and
// key=value parameters.
func parseCavageHeader(s string) (cavageParams, error) {
	var p cavageParams
	for _, field := range splitCavageFields(s) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return cavageParams{}, fmt.Errorf("%w: malformed signature parameter %q", ErrMalformedInput, field)
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		switch key {
		case "keyId":
			p.KeyID = value
		case "algorithm":
			p.Algorithm = value
		case "created":
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return cavageParams{}, fmt.Errorf("%w: malformed created", ErrMalformedInput)
			}
			p.Created = &v
		case "expires":
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return cavageParams{}, fmt.Errorf("%w: malformed expires", ErrMalformedInput)
			}
			p.Expires = &v
		case "headers":
			p.Headers = strings.Fields(value)
		case "signature":
			raw, err := base64.StdEncoding.DecodeString(value)
			if err != nil {
				return cavageParams{}, fmt.Errorf("%w: malformed signature encoding", ErrMalformedInput)
			}
			p.Signature = raw
		}
	}
	if len(p.Headers) == 0 {
		p.Headers = []string{"(created)"}
	}
	if p.KeyID == "" || p.Signature == nil {
		return cavageParams{}, fmt.Errorf("%w: signature missing keyId or signature", ErrMalformedInput)
	}
	return p, nil
}

// splitCavageFields splits s on commas that are not inside a
// double-quoted value.
func splitCavageFields(s string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		fields = append(fields, strings.TrimSpace(cur.String()))
	}
	return fields
}

func (p cavageParams) components() []component.Identifier {
	ids := make([]component.Identifier, len(p.Headers))
	for i, h := range p.Headers {
		ids[i] = component.NewIdentifier(h)
	}
	return ids
}
