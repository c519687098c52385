package wallet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderNothingOnNil(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, Render(&buf, nil, false))
	assert.Equal(t, "", buf.String())

	assert.Nil(t, Render(&buf, nil, true))
	assert.Equal(t, "", buf.String())
}

func TestRenderBlockFormat(t *testing.T) {
	res := OrderedResult{
		{Key: "address", Val: "addr1"},
		{Key: "index", Val: 7},
	}
	var buf bytes.Buffer
	assert.Nil(t, Render(&buf, res, false))
	assert.Equal(t, "address: addr1\nindex: 7\n", buf.String())
}

func TestRenderIndentedJSON(t *testing.T) {
	res := OrderedResult{
		{Key: "address", Val: "addr1"},
		{Key: "index", Val: 7},
	}
	var buf bytes.Buffer
	assert.Nil(t, Render(&buf, res, true))
	assert.Equal(t, "{\n  \"address\": \"addr1\",\n  \"index\": 7\n}\n", buf.String())
}

func TestRenderNestedBlock(t *testing.T) {
	res := OrderedResult{
		{Key: "account", Val: "acct1"},
		{Key: "addresses", Val: []string{"addr1", "addr2"}},
	}
	var buf bytes.Buffer
	assert.Nil(t, Render(&buf, res, false))
	assert.Equal(t, "account: acct1\naddresses:\n  - addr1\n  - addr2\n", buf.String())
}

func TestOrderedResultOmitsEmpty(t *testing.T) {
	res := OrderedResult{
		{Key: "name", Val: "acct1"},
		{Key: "label", Val: ""},
		{Key: "keys", Val: []string{}},
	}
	out, err := res.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, `{"name":"acct1"}`, string(out))

	var buf bytes.Buffer
	assert.Nil(t, Render(&buf, res, false))
	assert.Equal(t, "name: acct1\n", buf.String())
}

func TestRenderPlainValue(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, Render(&buf, "deadbeef", true))
	assert.Equal(t, "\"deadbeef\"\n", buf.String())

	buf.Reset()
	assert.Nil(t, Render(&buf, "deadbeef", false))
	assert.Equal(t, "deadbeef\n", buf.String())
}
