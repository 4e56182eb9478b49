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

// Package cryptoutil provides ready-made httpsig.SigningKey and
// httpsig.VerifyingKey implementations over the standard library's
// crypto primitives, for callers who don't need to bring their own.
// The orchestrator in pkg/httpsig never imports this package — it only
// depends on the SigningKey/VerifyingKey interfaces, so a caller with a
// KMS-backed or hardware-backed key never needs to touch this code.
//
// ECDSA signatures are always fixed-width IEEE P1363 (r fixed-width ||
// s fixed-width), never ASN.1 DER, per the "ecdsa-p256-sha256" and
// "ecdsa-p384-sha384" algorithm registrations.
package cryptoutil
