package deb822

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// marshalString is a test helper for the common case of a successful
// Marshal of a single value.
func marshalString(t *testing.T, v any) string {
	t.Helper()
	out, err := Marshal(v)
	require.NoError(t, err)
	return string(out)
}

func TestMarshalStruct(t *testing.T) {
	t.Run("empty struct writes nothing", func(t *testing.T) {
		assert.Empty(t, marshalString(t, struct{}{}))
	})

	t.Run("single field", func(t *testing.T) {
		assert.Equal(t, "Bar: baz\n", marshalString(t, barRecord{Bar: "baz"}))
	})

	t.Run("fields in declaration order", func(t *testing.T) {
		v := packageRecord{Name: "bitcoin", Summary: "Magic Internet Money"}
		assert.Equal(t, "Name: bitcoin\nSummary: Magic Internet Money\n", marshalString(t, v))
	})

	t.Run("empty value still writes the key", func(t *testing.T) {
		assert.Equal(t, "Bar: \n", marshalString(t, barRecord{}))
	})

	t.Run("pointer to struct", func(t *testing.T) {
		assert.Equal(t, "Bar: baz\n", marshalString(t, &barRecord{Bar: "baz"}))
	})
}

func TestMarshalMultiline(t *testing.T) {
	t.Run("continuation lines", func(t *testing.T) {
		v := barRecord{Bar: "first line\nsecond line"}
		assert.Equal(t, "Bar: first line\n second line\n", marshalString(t, v))
	})

	t.Run("empty line becomes paragraph marker", func(t *testing.T) {
		v := barRecord{Bar: "first paragraph\n\nsecond paragraph"}
		assert.Equal(t, "Bar: first paragraph\n .\n second paragraph\n", marshalString(t, v))
	})
}

func TestMarshalOptional(t *testing.T) {
	type record struct {
		Bar *string `deb822:"Bar"`
	}

	t.Run("nil omits the field", func(t *testing.T) {
		assert.Empty(t, marshalString(t, record{}))
	})

	t.Run("set pointer writes the value", func(t *testing.T) {
		baz := "baz"
		assert.Equal(t, "Bar: baz\n", marshalString(t, record{Bar: &baz}))
	})
}

func TestMarshalList(t *testing.T) {
	type record struct {
		Bar []string `deb822:"Bar"`
	}

	t.Run("empty list omits the field", func(t *testing.T) {
		assert.Empty(t, marshalString(t, record{}))
		assert.Empty(t, marshalString(t, record{Bar: []string{}}))
	})

	t.Run("single item", func(t *testing.T) {
		assert.Equal(t, "Bar: baz\n", marshalString(t, record{Bar: []string{"baz"}}))
	})

	t.Run("items aligned under the key", func(t *testing.T) {
		v := record{Bar: []string{"baz", "bitcoin"}}
		assert.Equal(t, "Bar: baz,\n     bitcoin\n", marshalString(t, v))
	})
}

func TestMarshalNamedStringType(t *testing.T) {
	type record struct {
		Foo currency `deb822:"Foo"`
	}

	assert.Equal(t, "Foo: monopoly money\n", marshalString(t, record{Foo: currencyMonopoly}))
}

func TestMarshalTextMarshaler(t *testing.T) {
	type record struct {
		Essential yesNo `deb822:"Essential"`
	}

	assert.Equal(t, "Essential: yes\n", marshalString(t, record{Essential: true}))
	assert.Equal(t, "Essential: no\n", marshalString(t, record{Essential: false}))
}

func TestMarshalMap(t *testing.T) {
	// Keys come out sorted, whatever the map iteration order.
	v := map[string]string{
		"Version": "0.21.1",
		"Name":    "bitcoin",
	}
	assert.Equal(t, "Name: bitcoin\nVersion: 0.21.1\n", marshalString(t, v))
}

func TestMarshalSequence(t *testing.T) {
	t.Run("records separated by a blank line", func(t *testing.T) {
		v := []packageRecord{{Name: "bitcoin"}, {Name: "lightning"}}
		assert.Equal(t, "Name: bitcoin\n\nName: lightning\n", marshalString(t, v))
	})

	t.Run("empty slice writes nothing", func(t *testing.T) {
		assert.Empty(t, marshalString(t, []packageRecord{}))
	})

	t.Run("pointer elements", func(t *testing.T) {
		v := []*barRecord{{Bar: "a"}, {Bar: "b"}}
		assert.Equal(t, "Bar: a\n\nBar: b\n", marshalString(t, v))
	})
}

func TestMarshalUnsupported(t *testing.T) {
	var ute *UnsupportedTypeError

	t.Run("numeric field", func(t *testing.T) {
		v := struct {
			Count int `deb822:"Count"`
		}{Count: 3}
		assert.ErrorAs(t, marshalErr(t, v), &ute)
	})

	t.Run("bool field", func(t *testing.T) {
		v := struct {
			Flag bool `deb822:"Flag"`
		}{}
		assert.ErrorAs(t, marshalErr(t, v), &ute)
	})

	t.Run("scalar value", func(t *testing.T) {
		assert.ErrorAs(t, marshalErr(t, 42), &ute)
	})

	t.Run("nested record", func(t *testing.T) {
		v := struct {
			Inner barRecord `deb822:"Inner"`
		}{}
		assert.ErrorAs(t, marshalErr(t, v), &ute)
	})

	t.Run("nil", func(t *testing.T) {
		err := marshalErr(t, nil)
		require.ErrorAs(t, err, &ute)
		assert.Equal(t, "deb822: unsupported value: nil", err.Error())
	})
}

func marshalErr(t *testing.T, v any) error {
	t.Helper()
	_, err := Marshal(v)
	require.Error(t, err)
	return err
}

func TestMarshalInvalidKey(t *testing.T) {
	v := map[string]string{"a:b": "x"}
	_, err := Marshal(v)
	assert.Error(t, err)
}

func TestEncoderStreaming(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)

	require.NoError(t, e.Encode(barRecord{Bar: "a"}))
	require.NoError(t, e.Encode(barRecord{Bar: "b"}))
	assert.Equal(t, "Bar: a\n\nBar: b\n", buf.String())
}

func TestEncoderWrapLongLines(t *testing.T) {
	long := "Insanely long string meant for testing, that will be over eighty characters long, I believe."

	t.Run("first line never wrapped", func(t *testing.T) {
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		e.SetWrapLongLines(true)
		require.NoError(t, e.Encode(barRecord{Bar: long}))
		assert.Equal(t, "Bar: "+long+"\n", buf.String())
	})

	t.Run("continuation lines wrapped", func(t *testing.T) {
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		e.SetWrapLongLines(true)
		require.NoError(t, e.Encode(barRecord{Bar: "Begin\n" + long}))
		assert.Equal(t,
			"Bar: Begin\n Insanely long string meant for testing, that will be over eighty characters \n long, I believe.\n",
			buf.String())
	})

	t.Run("disabled by default", func(t *testing.T) {
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		require.NoError(t, e.Encode(barRecord{Bar: "Begin\n" + long}))
		assert.Equal(t, "Bar: Begin\n "+long+"\n", buf.String())
	})
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	type record struct {
		Name        string   `deb822:"Name"`
		Description string   `deb822:"Description"`
		Depends     []string `deb822:"Depends"`
		Homepage    *string  `deb822:"Homepage"`
	}

	home := "https://bitcoincore.org"
	in := []record{
		{
			Name:        "bitcoind",
			Description: "peer-to-peer digital currency\n\nFull node implementation.",
			Depends:     []string{"libc6", "libssl1.1"},
			Homepage:    &home,
		},
		{
			Name:        "lnd",
			Description: "lightning network daemon",
		},
	}

	out, err := Marshal(in)
	require.NoError(t, err)

	var got []record
	require.NoError(t, Unmarshal(out, &got))
	assert.Equal(t, in, got)
}
