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

// Package httpsig orchestrates signing and verification of HTTP
// messages under both the current IETF httpbis dialect (RFC 9421,
// Signature/Signature-Input headers) and the legacy cavage dialect (a
// single Signature or Authorization header).
//
// The package is pure and I/O-free: it resolves components with
// pkg/component, assembles bases with pkg/sigbase, and calls out to a
// caller-supplied SigningKey or VerifyingKey to produce or check the
// raw bytes. It never computes a digest over a message body, never
// performs a network round trip, and never stores a key itself —
// key material and key storage are the caller's concern, reached
// through the SigningKey, VerifyingKey and KeyLookup interfaces.
package httpsig
