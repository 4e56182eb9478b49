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

package sfv

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SerializeItem renders an Item in canonical sf-item form.
func SerializeItem(it Item) (string, error) {
	var b strings.Builder
	if err := writeBareItem(&b, it.Value); err != nil {
		return "", err
	}
	writeParams(&b, it.Params)
	return b.String(), nil
}

// SerializeInnerList renders an InnerList in canonical form, e.g.
// ("a" "b";x=1);keyid="k".
func SerializeInnerList(il InnerList) (string, error) {
	var b strings.Builder
	b.WriteByte('(')
	for i, it := range il.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		s, err := SerializeItem(it)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteByte(')')
	writeParams(&b, il.Params)
	return b.String(), nil
}

// SerializeMember renders a Member (Item or InnerList).
func SerializeMember(m Member) (string, error) {
	switch v := m.(type) {
	case Item:
		return SerializeItem(v)
	case InnerList:
		return SerializeInnerList(v)
	default:
		return "", fmt.Errorf("%w: unknown member type %T", ErrMalformed, m)
	}
}

// SerializeList renders a top-level sf-list.
func SerializeList(l List) (string, error) {
	parts := make([]string, len(l))
	for i, m := range l {
		s, err := SerializeMember(m)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// SerializeDictionary renders a top-level sf-dictionary.
func SerializeDictionary(d Dictionary) (string, error) {
	parts := make([]string, len(d))
	for i, e := range d {
		s, err := serializeDictEntry(e)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

func serializeDictEntry(e DictEntry) (string, error) {
	if it, ok := e.Value.(Item); ok {
		if b, ok := it.Value.(bool); ok && b {
			var params strings.Builder
			writeParams(&params, it.Params)
			return e.Key + params.String(), nil
		}
	}
	s, err := SerializeMember(e.Value)
	if err != nil {
		return "", err
	}
	return e.Key + "=" + s, nil
}

func writeParams(b *strings.Builder, params Params) {
	for _, p := range params {
		b.WriteByte(';')
		b.WriteString(p.Key)
		if bv, ok := p.Value.(bool); ok && bv {
			continue
		}
		b.WriteByte('=')
		// params with a malformed value are not expected in memory; errors
		// from writeBareItem here would only arise from invalid input the
		// caller constructed directly rather than via the parser.
		_ = writeBareItem(b, p.Value)
	}
}

func writeBareItem(b *strings.Builder, v BareItem) error {
	switch x := v.(type) {
	case int64:
		if x > 999999999999999 || x < -999999999999999 {
			return fmt.Errorf("%w: integer out of range", ErrMalformed)
		}
		b.WriteString(strconv.FormatInt(x, 10))
	case int:
		return writeBareItem(b, int64(x))
	case Decimal:
		return writeDecimal(b, float64(x))
	case float64:
		return writeDecimal(b, x)
	case string:
		b.WriteByte('"')
		for i := 0; i < len(x); i++ {
			c := x[i]
			if c == '"' || c == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
		b.WriteByte('"')
	case Token:
		b.WriteString(string(x))
	case Bytes:
		b.WriteByte(':')
		b.WriteString(base64.StdEncoding.EncodeToString([]byte(x)))
		b.WriteByte(':')
	case bool:
		if x {
			b.WriteString("?1")
		} else {
			b.WriteString("?0")
		}
	default:
		return fmt.Errorf("%w: unsupported bare item type %T", ErrMalformed, v)
	}
	return nil
}

func writeDecimal(b *strings.Builder, f float64) error {
	intPart := math.Trunc(f)
	if math.Abs(intPart) >= 1e12 {
		return fmt.Errorf("%w: decimal integer component too large", ErrMalformed)
	}
	s := strconv.FormatFloat(f, 'f', 3, 64)
	// Trim trailing zeros but keep at least one fractional digit.
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	b.WriteString(s)
	return nil
}
