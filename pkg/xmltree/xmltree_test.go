package xmltree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserdes/xmlserdes/pkg/xmltree"
)

func TestBuildAndEncode(t *testing.T) {
	root := xmltree.New("furniture")
	root.SetAttr("type", "chair")

	name := xmltree.New("name")
	name.Text = "Armchair"
	dims := xmltree.New("dimensions")
	for _, v := range []string{"1", "2"} {
		d := xmltree.New("dimension")
		d.Text = v
		dims.Append(d)
	}
	root.Append(name, dims)

	want := `<furniture type="chair"><name>Armchair</name>` +
		`<dimensions><dimension>1</dimension><dimension>2</dimension></dimensions></furniture>`
	assert.Equal(t, want, root.String())
}

func TestSetAttrReplaces(t *testing.T) {
	el := xmltree.New("e")
	el.SetAttr("k", "1")
	el.SetAttr("k", "2")

	v, ok := el.Attr("k")
	require.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Len(t, el.Attrs, 1)
}

func TestAttrMissing(t *testing.T) {
	el := xmltree.New("e")
	_, ok := el.Attr("absent")
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	el, err := xmltree.ParseString(`<r><a>1</a><b>2</b><a>3</a></r>`)
	require.NoError(t, err)

	first := el.Find("a")
	require.NotNil(t, first)
	assert.Equal(t, "1", first.Text)

	all := el.FindAll("a")
	require.Len(t, all, 2)
	assert.Equal(t, "3", all[1].Text)

	assert.Nil(t, el.Find("c"))
	assert.Empty(t, el.FindAll("c"))
}

func TestParseWhitespaceBetweenChildren(t *testing.T) {
	el, err := xmltree.ParseString(`<list>
	  <item>10</item>
	  <item>20</item>
	</list>`)
	require.NoError(t, err)

	assert.Empty(t, el.Text)
	require.Len(t, el.Children, 2)
	assert.Equal(t, "10", el.Children[0].Text)
	assert.Equal(t, "20", el.Children[1].Text)
}

func TestParseKeepsLeafText(t *testing.T) {
	el, err := xmltree.ParseString(`<name> spaced out </name>`)
	require.NoError(t, err)
	assert.Equal(t, " spaced out ", el.Text)
}

func TestParseDropsNamespaceDeclarations(t *testing.T) {
	el, err := xmltree.ParseString(`<r xmlns="urn:x" xmlns:p="urn:y" p:k="v"><p:c/></r>`)
	require.NoError(t, err)

	assert.Equal(t, "r", el.Tag)
	v, ok := el.Attr("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Len(t, el.Attrs, 1)
	require.Len(t, el.Children, 1)
	assert.Equal(t, "c", el.Children[0].Tag)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "unclosed", input: "<a><b></a>"},
		{name: "text only", input: "just text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := xmltree.Parse(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestEncodeEscaping(t *testing.T) {
	el := xmltree.New("e")
	el.SetAttr("q", `a"b<c`)
	el.Text = "1 < 2 & 3 > 2"

	got := el.String()
	parsed, err := xmltree.ParseString(got)
	require.NoError(t, err)

	v, ok := parsed.Attr("q")
	require.True(t, ok)
	assert.Equal(t, `a"b<c`, v)
	assert.Equal(t, "1 < 2 & 3 > 2", parsed.Text)
}

func TestEncodeSelfClosing(t *testing.T) {
	el := xmltree.New("empty")
	assert.Equal(t, "<empty/>", el.String())

	parsed, err := xmltree.ParseString(el.String())
	require.NoError(t, err)
	assert.Equal(t, "empty", parsed.Tag)
	assert.Empty(t, parsed.Text)
}

func TestRoundTrip(t *testing.T) {
	input := `<shop size="12"><name>corner</name><stock><item qty="2">bolt</item><item qty="9">nut</item></stock></shop>`
	el, err := xmltree.ParseString(input)
	require.NoError(t, err)
	assert.Equal(t, input, el.String())
}
