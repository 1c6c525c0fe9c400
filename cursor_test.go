package lazyxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// first returns the first non-document raw of buf.
func first(t *testing.T, input string) Raw {
	t.Helper()
	r, err := Parse([]byte(input)).Next()
	require.NoError(t, err)
	return r
}

func TestTag(t *testing.T) {
	testCases := []struct {
		Input string
		Tag   string
		OK    bool
	}{
		{`<tag _id="1" x="abc" />`, "tag", true},
		{`<foo:bar>`, "foo:bar", true},
		{`</end>`, "end", true},
		{`<?target data?>`, "target", true},
		{`<?xml version="1.0"?>`, "", false},
		{`<!--comment-->`, "", false},
		{`<![CDATA[x]]>`, "", false},
		{`text`, "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			tag, ok := first(t, tc.Input).Tag()
			assert.Equal(t, tc.OK, ok)
			assert.Equal(t, tc.Tag, tag)
		})
	}
}

func TestAttributes(t *testing.T) {
	testCases := []struct {
		Input    string
		Expected Attributes
	}{
		{`<?xml version="1.0" key="value"?>`, Attributes{{"version", "1.0"}, {"key", "value"}}},
		{`<tag _id="1" x="abc" />`, Attributes{{"_id", "1"}, {"x", "abc"}}},
		{`<a k = "spaced"  >`, Attributes{{"k", "spaced"}}},
		{`<a single='quote'/>`, Attributes{{"single", "quote"}}},
		{`<a k="v&amp;w"/>`, Attributes{{"k", "v&w"}}},
		{`<a k="1" k="2"/>`, Attributes{{"k", "2"}}},
		{`<a/>`, nil},
		{`<!--x-->`, nil},
		{`</a>`, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			attrs, err := first(t, tc.Input).Attributes()
			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, attrs)
		})
	}
}

func TestAttributesErrors(t *testing.T) {
	for _, input := range []string{
		`<a key>`,
		`<a key=>`,
		`<a key="unterminated>`,
		`<a ="nokey">`,
	} {
		t.Run(input, func(t *testing.T) {
			_, err := first(t, input).Attributes()
			var bad *BadAttributeError
			assert.ErrorAs(t, err, &bad)
		})
	}
}

func TestEachAttribute(t *testing.T) {
	r := first(t, `<a one="1" two="2" three="3"/>`)
	var keys []string
	err := r.EachAttribute(func(key, value []byte) bool {
		keys = append(keys, string(key))
		return len(keys) < 2
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, keys)

	// Kinds without attributes produce no calls.
	err = first(t, `<!--x-->`).EachAttribute(func(_, _ []byte) bool {
		t.Fatal("unexpected call")
		return false
	})
	assert.NoError(t, err)
}

func TestAttribute(t *testing.T) {
	r := first(t, `<tag _id="1" x="a&amp;b" />`)
	v, ok := r.Attribute("x")
	assert.True(t, ok)
	assert.Equal(t, "a&b", v)
	_, ok = r.Attribute("missing")
	assert.False(t, ok)
}

func TestRoot(t *testing.T) {
	doc := Parse([]byte(`<?xml version="1.0"?><!--prolog--><root><inner/></root>`))
	root, ok := doc.Root()
	assert.True(t, ok)
	tag, _ := root.Tag()
	assert.Equal(t, "root", tag)
	assert.Equal(t, RawElementOpen, root.Kind)

	_, ok = Parse([]byte(`<!--only a comment-->`)).Root()
	assert.False(t, ok)
}

func TestValue(t *testing.T) {
	testCases := []struct {
		Input    string
		Expected string
		OK       bool
	}{
		{`<![CDATA[cdata test]]>`, "cdata test", true},
		{`<!-- a comment -->`, "a comment", true},
		{`<!---->`, "", true},
		{`<!--   -->`, "", true},
		{`some &lt;escaped&gt; text`, "some <escaped> text", true},
		{`<!DOCTYPE note [ <!ENTITY nbsp "&#xA0;"> ]>`, `note [ <!ENTITY nbsp "&#xA0;"> ]`, true},
		{`<tag/>`, "", false},
		{`<?pi data?>`, "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			v, ok := first(t, tc.Input).Value()
			assert.Equal(t, tc.OK, ok)
			assert.Equal(t, tc.Expected, v)
		})
	}
}

func TestChildren(t *testing.T) {
	buf := readBooks(t)
	doc := Parse(buf)
	top, err := doc.Children()
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, RawDeclaration, top[0].Kind)
	assert.Equal(t, RawElementOpen, top[1].Kind)

	books, err := top[1].Children()
	require.NoError(t, err)
	require.Len(t, books, 12)
	for _, b := range books {
		tag, _ := b.Tag()
		assert.Equal(t, "book", tag)
		assert.Equal(t, 2, b.Depth)
	}

	fields, err := books[0].Children()
	require.NoError(t, err)
	require.Len(t, fields, 6)
	tag, _ := fields[0].Tag()
	assert.Equal(t, "author", tag)

	// Close tags and grandchildren are not children.
	inner, err := fields[0].Children()
	require.NoError(t, err)
	require.Len(t, inner, 1)
	assert.Equal(t, RawText, inner[0].Kind)

	// Only open tags and the document have children.
	none, err := inner[0].Children()
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestParent(t *testing.T) {
	buf := readBooks(t)
	doc := Parse(buf)
	top, err := doc.Children()
	require.NoError(t, err)
	catalog := top[1]

	books, err := catalog.Children()
	require.NoError(t, err)
	fields, err := books[0].Children()
	require.NoError(t, err)

	p, ok := fields[0].Parent()
	assert.True(t, ok)
	assert.Equal(t, books[0], p)

	p, ok = books[0].Parent()
	assert.True(t, ok)
	assert.Equal(t, catalog, p)

	p, ok = catalog.Parent()
	assert.True(t, ok)
	assert.Equal(t, RawDocument, p.Kind)

	_, ok = doc.Parent()
	assert.False(t, ok)
}
