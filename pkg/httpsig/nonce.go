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

import "github.com/google/uuid"

// NewNonce generates a fresh value suitable for SignConfig.Nonce. The
// draft defines the nonce parameter as an opaque carried value; it is
// up to the caller to generate one, so this is convenience, not part
// of Sign itself.
func NewNonce() string {
	return uuid.NewString()
}
