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

import "net/http"

// Header is the header multimap resolution reads from. It is an alias
// for http.Header so callers can pass a request's or response's Header
// field directly, with net/http's usual case-insensitive lookup and
// canonicalisation.
type Header = http.Header
