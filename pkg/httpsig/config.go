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
	"time"

	"github.com/sage-x-project/httpsig/pkg/component"
)

// Dialect selects which wire format Sign and Verify use.
type Dialect int

const (
	// HTTPBIS is the current IETF dialect (RFC 9421): Signature and
	// Signature-Input headers, each a Structured-Field Dictionary.
	HTTPBIS Dialect = iota
	// Cavage is the legacy dialect: a single Signature (or
	// Authorization) header, comma-separated parameters.
	Cavage
)

func (d Dialect) String() string {
	if d == Cavage {
		return "cavage"
	}
	return "httpbis"
}

// SignConfig describes one signature to produce over a message.
type SignConfig struct {
	// Label names this signature in the Signature-Input/Signature
	// dictionaries. Required for HTTPBIS; ignored by Cavage, which
	// carries only one signature per message.
	Label string

	// Components lists, in order, the identifiers this signature
	// covers.
	Components []component.Identifier

	// Key signs the assembled base.
	Key SigningKey

	Dialect Dialect

	// Created defaults to time.Now() if zero.
	Created time.Time
	// Expires is omitted from the signature parameters if zero.
	Expires time.Time
	// Nonce is included as the "nonce" parameter if non-empty.
	Nonce string
	// Tag is included as the "tag" parameter if non-empty.
	Tag string
}

func (c SignConfig) createdUnix() int64 {
	if c.Created.IsZero() {
		return time.Now().Unix()
	}
	return c.Created.Unix()
}

func (c SignConfig) expiresUnix() *int64 {
	if c.Expires.IsZero() {
		return nil
	}
	v := c.Expires.Unix()
	return &v
}

// VerifyConfig describes the acceptance policy applied to every
// signature Verify checks.
type VerifyConfig struct {
	// KeyLookup resolves the VerifyingKey for an incoming keyid.
	KeyLookup KeyLookup

	// RequiredComponents, if non-empty, must all be covered by a
	// signature for it to be acceptable — missing even one is
	// ErrUnacceptableSignature.
	RequiredComponents []component.Identifier

	// RequiredParams, if non-empty, names signature parameters
	// (e.g. "created", "keyid", "nonce") that must all be present on a
	// signature for it to be acceptable.
	RequiredParams []string

	// AcceptableAlgorithms restricts which algorithms are accepted; nil
	// accepts any algorithm the resolved key itself supports.
	AcceptableAlgorithms []string

	// Labels restricts verification to the named signatures; nil
	// verifies every signature present on the message.
	Labels []string

	// MaxAge bounds how old "created" may be relative to Now(); zero
	// disables the check.
	MaxAge time.Duration

	// NotAfter caps how recent "created" may be; zero disables the
	// check. Unlike MaxAge (relative to Now), NotAfter is an absolute
	// timestamp.
	NotAfter time.Time

	// ClockSkewTolerance extends both ends of the created/expires
	// window to absorb clock drift between signer and verifier.
	ClockSkewTolerance time.Duration

	// All selects how multiple selected signatures combine. When false
	// (the default), the first signature that verifies short-circuits
	// the call and a label whose key is unknown is skipped rather than
	// failing the call. When true, every selected label must have a
	// known key and must verify, and an unknown key fails the call
	// immediately.
	All bool

	// Now defaults to time.Now if nil.
	Now func() time.Time
}

func (c VerifyConfig) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c VerifyConfig) acceptsAlgorithm(alg string) bool {
	if len(c.AcceptableAlgorithms) == 0 {
		return true
	}
	for _, a := range c.AcceptableAlgorithms {
		if a == alg {
			return true
		}
	}
	return false
}

func (c VerifyConfig) wantsLabel(label string) bool {
	if len(c.Labels) == 0 {
		return true
	}
	for _, l := range c.Labels {
		if l == label {
			return true
		}
	}
	return false
}
