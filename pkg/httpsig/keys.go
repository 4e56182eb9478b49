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

import "context"

// SigningKey produces a raw signature over an already-assembled
// signature base. Implementations never see the HTTP message itself —
// only the bytes to sign — which keeps key material decoupled from
// transport and storage concerns.
type SigningKey interface {
	// Algorithm returns the HTTP Message Signatures algorithm
	// identifier this key signs with, e.g. "ecdsa-p256-sha256",
	// "rsa-pss-sha512", "hmac-sha256", "ed25519", or, for a cavage-only
	// key that predates the httpbis registry, "hs2019".
	Algorithm() string

	// KeyID identifies this key for the "keyid" signature parameter.
	// Empty means the caller manages keyid assignment separately.
	KeyID() string

	// Sign returns a signature over data. For ECDSA algorithms the
	// signature is fixed-width IEEE P1363 (r || s), never ASN.1 DER.
	Sign(data []byte) ([]byte, error)
}

// VerifyingKey checks a signature produced by the matching SigningKey.
type VerifyingKey interface {
	// Algorithm returns the algorithm identifier this key verifies.
	Algorithm() string

	// Verify returns nil if signature is a valid signature over data,
	// and an error wrapping ErrVerificationFailed otherwise.
	Verify(data, signature []byte) error
}

// KeyLookup resolves the VerifyingKey to check an incoming signature
// with. keyID is the "keyid" signature parameter (httpbis) or the
// Signature header's keyId parameter (cavage); alg is the algorithm the
// signature itself names, which a multi-algorithm key store can use to
// pick among several keys sharing a keyID.
type KeyLookup interface {
	LookupVerifyingKey(ctx context.Context, keyID, alg string) (VerifyingKey, error)
}

// KeyLookupFunc adapts a function to a KeyLookup.
type KeyLookupFunc func(ctx context.Context, keyID, alg string) (VerifyingKey, error)

// LookupVerifyingKey implements KeyLookup.
func (f KeyLookupFunc) LookupVerifyingKey(ctx context.Context, keyID, alg string) (VerifyingKey, error) {
	return f(ctx, keyID, alg)
}

// StaticKeyLookup resolves every keyID to the same VerifyingKey,
// convenient for single-key deployments and tests.
func StaticKeyLookup(key VerifyingKey) KeyLookup {
	return KeyLookupFunc(func(context.Context, string, string) (VerifyingKey, error) {
		return key, nil
	})
}
