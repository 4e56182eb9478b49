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
	"errors"

	"github.com/sage-x-project/httpsig/pkg/component"
)

// Errors surfaced by component resolution and identifier parsing are
// re-exported here so callers can errors.Is against a single taxonomy
// without importing pkg/component directly.
var (
	ErrMalformedInput    = component.ErrMalformedInput
	ErrMissingComponent  = component.ErrMissingComponent
	ErrInvalidParameters = component.ErrInvalidParameters
)

var (
	// ErrUnknownAlgorithm is the sentinel for an algorithm identifier no
	// key implementation handles. Sign and Verify in this package do not
	// return it: an algorithm name without a cavage alias passes through
	// unchanged.
	ErrUnknownAlgorithm = errors.New("httpsig: unknown algorithm")

	// ErrUnsupportedAlgorithm is raised by VerifyHTTPBIS when a
	// signature's "alg" parameter names an algorithm other than the one
	// the resolved VerifyingKey reports. Sign and VerifyCavage do not
	// make this check.
	ErrUnsupportedAlgorithm = errors.New("httpsig: key does not support the requested algorithm")

	// ErrUnknownKey is raised when a KeyLookup cannot resolve the keyid
	// named by an incoming signature.
	ErrUnknownKey = errors.New("httpsig: unknown key")

	// ErrUnacceptableSignature is raised when a Signature-Input entry
	// does not meet a VerifyConfig's acceptance policy (required
	// components or parameters missing, algorithm not in
	// AcceptableAlgorithms). A label not selected by VerifyConfig.Labels
	// is skipped, not rejected.
	ErrUnacceptableSignature = errors.New("httpsig: signature does not meet the acceptance policy")

	// ErrExpired is raised when a signature's created/expires window has
	// passed relative to the configured clock, beyond any tolerance.
	ErrExpired = errors.New("httpsig: signature expired")

	// ErrVerificationFailed is raised when the cryptographic check
	// itself fails — the base was built successfully but the signature
	// bytes don't validate against it.
	ErrVerificationFailed = errors.New("httpsig: signature verification failed")

	// ErrNoSignatures is raised when a verify call finds no
	// Signature/Signature-Input entries (or cavage Signature header) to
	// check at all, or when no httpbis entry was checked because each was
	// left out by VerifyConfig.Labels or skipped for an unknown key
	// outside All mode.
	ErrNoSignatures = errors.New("httpsig: no signatures present")

	// ErrDuplicateLabel is raised when SignConfig names the same label
	// for two signatures in one SignMulti call. Verification does not
	// return it.
	ErrDuplicateLabel = errors.New("httpsig: duplicate signature label")
)
