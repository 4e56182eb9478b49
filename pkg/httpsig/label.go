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

import "fmt"

// validateLabels enforces the label-uniqueness invariant across a
// batch of signatures produced in one SignMulti call: every label must
// be non-empty and distinct.
func validateLabels(cfgs []SignConfig) error {
	seen := make(map[string]bool, len(cfgs))
	for _, c := range cfgs {
		if c.Label == "" {
			return fmt.Errorf("%w: signature label must not be empty", ErrMalformedInput)
		}
		if seen[c.Label] {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, c.Label)
		}
		seen[c.Label] = true
	}
	return nil
}
