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

// Package component resolves signable values ("components") out of an
// HTTP message: derived pseudo-components (@method, @path, ...) and
// named HTTP fields, per the HTTP Message Signatures component
// identifier grammar.
//
// A Message is a tagged union of a Request or a Response; a Response
// may optionally carry the Request it answers, which lets a signature
// over the response bind values from the request (the ";req"
// parameter).
//
// Resolution never mutates the Message and never re-decodes percent
// encoding in @path, @query or @query-param — the draft's later
// revisions dropped decoding, and this package follows that.
package component
