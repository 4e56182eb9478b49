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

import "errors"

var (
	// ErrMalformedInput covers identifier syntax errors and shapes the
	// resolver cannot make sense of.
	ErrMalformedInput = errors.New("component: malformed input")

	// ErrMissingComponent is raised when a requested field is absent
	// from the message, a @query-param name does not occur, or a
	// request/response-only derived component is asked of the wrong
	// message kind.
	ErrMissingComponent = errors.New("component: missing component")

	// ErrInvalidParameters is raised for parameter combinations the
	// identifier grammar disallows (e.g. both "bs" and "sf", "key"
	// without "sf", "@query-param" without "name").
	ErrInvalidParameters = errors.New("component: invalid parameters")
)
