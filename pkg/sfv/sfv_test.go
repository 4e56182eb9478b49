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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItem_Integer(t *testing.T) {
	it, err := ParseItem("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), it.Value)

	it, err = ParseItem("-42")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), it.Value)
}

func TestParseItem_Decimal(t *testing.T) {
	it, err := ParseItem("4.5")
	require.NoError(t, err)
	assert.Equal(t, Decimal(4.5), it.Value)
}

func TestParseItem_String(t *testing.T) {
	it, err := ParseItem(`"hello \"world\""`)
	require.NoError(t, err)
	assert.Equal(t, `hello "world"`, it.Value)
}

func TestParseItem_Token(t *testing.T) {
	it, err := ParseItem("*foo123/bar")
	require.NoError(t, err)
	assert.Equal(t, Token("*foo123/bar"), it.Value)
}

func TestParseItem_ByteSequence(t *testing.T) {
	it, err := ParseItem(":YSBmYWtlIHNpZ25hdHVyZQ==:")
	require.NoError(t, err)
	assert.Equal(t, Bytes("a fake signature"), it.Value)
}

func TestParseItem_Boolean(t *testing.T) {
	it, err := ParseItem("?1")
	require.NoError(t, err)
	assert.Equal(t, true, it.Value)

	it, err = ParseItem("?0")
	require.NoError(t, err)
	assert.Equal(t, false, it.Value)
}

func TestParseItem_Params(t *testing.T) {
	it, err := ParseItem(`"sig1";created=1618884473;keyid="test-key-rsa-pss"`)
	require.NoError(t, err)
	assert.Equal(t, "sig1", it.Value)
	v, ok := it.Params.Get("created")
	require.True(t, ok)
	assert.Equal(t, int64(1618884473), v)
	v, ok = it.Params.Get("keyid")
	require.True(t, ok)
	assert.Equal(t, "test-key-rsa-pss", v)
}

func TestParseItem_MalformedInput(t *testing.T) {
	_, err := ParseItem(`"unterminated`)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseItem("")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseItem("42 trailing garbage")
	assert.Error(t, err)
}

func TestParseDictionary_InnerListWithParams(t *testing.T) {
	d, err := ParseDictionary(`sig1=("@method" "@authority" "@path");created=1618884473;keyid="test-key-rsa-pss"`)
	require.NoError(t, err)
	m, ok := d.Get("sig1")
	require.True(t, ok)
	il, ok := m.(InnerList)
	require.True(t, ok)
	require.Len(t, il.Items, 3)
	assert.Equal(t, "@method", il.Items[0].Value)
	created, ok := il.Params.Get("created")
	require.True(t, ok)
	assert.Equal(t, int64(1618884473), created)
}

func TestParseDictionary_EmptyInnerList(t *testing.T) {
	d, err := ParseDictionary(`sig=();created=1618884473;keyid="test-key-rsa-pss"`)
	require.NoError(t, err)
	m, ok := d.Get("sig")
	require.True(t, ok)
	il := m.(InnerList)
	assert.Empty(t, il.Items)
}

func TestParseDictionary_BooleanNoValue(t *testing.T) {
	d, err := ParseDictionary(`a, b;foo=1`)
	require.NoError(t, err)
	a, _ := d.Get("a")
	assert.Equal(t, Item{Value: true}, a)
}

func TestSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		`sig1=:YSBmYWtlIHNpZ25hdHVyZQ==:`,
		`sig1=();created=1618884473;keyid="test-key-rsa-pss"`,
		`sig1=("@method" "@authority" "@path" "content-digest");created=1618884473;keyid="test-key-rsa-pss"`,
	}
	for _, in := range inputs {
		d, err := ParseDictionary(in)
		require.NoError(t, err)
		out, err := SerializeDictionary(d)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestSerializeList(t *testing.T) {
	l, err := ParseList(`"a", "b";x=1, (1 2);y=?1`)
	require.NoError(t, err)
	require.Len(t, l, 3)
	out, err := SerializeList(l)
	require.NoError(t, err)
	assert.Equal(t, `"a", "b";x=1, (1 2);y`, out)
}

func TestQuoteIfBare(t *testing.T) {
	out, err := QuoteIfBare(`example-dict;key="a"`)
	require.NoError(t, err)
	assert.Equal(t, `"example-dict";key="a"`, out)

	out, err = QuoteIfBare(`"already-quoted"`)
	require.NoError(t, err)
	assert.Equal(t, `"already-quoted"`, out)

	out, err = QuoteIfBare(`@method`)
	require.NoError(t, err)
	assert.Equal(t, `"@method"`, out)
}

func TestCombiningRawHeaderValues(t *testing.T) {
	// RFC 9421: multiple raw header values are combined with ", " before
	// being parsed as a structured field.
	raw := []string{`a=1`, `b=2`}
	combined := raw[0] + ", " + raw[1]
	d, err := ParseDictionary(combined)
	require.NoError(t, err)
	av, _ := d.Get("a")
	bv, _ := d.Get("b")
	assert.Equal(t, Item{Value: int64(1)}, av)
	assert.Equal(t, Item{Value: int64(2)}, bv)
}
