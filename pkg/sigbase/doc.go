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

// Package sigbase builds the signature base string: the canonical byte
// sequence that is actually signed or verified, assembled from resolved
// component values and a set of signature parameters.
//
// Two dialects are supported. The httpbis dialect (RFC 9421) joins
// `"identifier": value` lines with "\n" and terminates with a
// `"@signature-params": <inner-list>` line covering the component list
// itself plus created/expires/keyid/alg/nonce/tag. The legacy cavage
// dialect joins `identifier: value` lines (no quoting, lower-cased
// pseudo-headers like "(request-target)", "(created)", "(expires)")
// with "\n" and carries no trailing parameters line — the parameters
// instead travel alongside the signature in the Signature/Authorization
// header itself.
package sigbase
