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

// Package sfv implements parsing and serialisation of HTTP Structured
// Field Values (RFC 8941): Items, Lists, Dictionaries, Inner Lists and
// their Parameters.
//
// # Bare items
//
// A bare item is one of: Integer (int64), Decimal, string, Token,
// Bytes (a byte sequence), or bool. These map onto Go's native int64,
// the sfv.Decimal, string, sfv.Token and sfv.Bytes types, and bool.
//
// # Round-tripping
//
// Every value this package can serialise, it can parse back into an
// identical value, and vice versa for well-formed input. Multiple raw
// header values for the same field must be joined with ", " before
// being handed to ParseList/ParseDictionary/ParseItem, per RFC 9421's
// field-combination rule.
package sfv
