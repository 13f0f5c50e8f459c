package describe_test

import (
	"bytes"
	"testing"

	"github.com/jkcclemens/describe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	Name string
	Age  int
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, f := range describe.Formats() {
		parsed, err := describe.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestParseFormatUnsupported(t *testing.T) {
	t.Parallel()
	_, err := describe.ParseFormat("xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, describe.ErrUnsupportedFormat)
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := describe.Write(&buf, describe.Format("xml"), describe.Of(pair{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, describe.ErrUnsupportedFormat)
}

func TestWriteText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := describe.Write(&buf, describe.Text, describe.Of(pair{Name: "Alice", Age: 30}))
	require.NoError(t, err)
	assert.Equal(t, "pair{Name=Alice,Age=30}\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	data, err := describe.Marshal(describe.JSON, describe.Of(pair{Name: "Alice", Age: 30}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"pair","fields":[{"key":"Name","value":"Alice"},{"key":"Age","value":"30"}]}`, string(data))
}

func TestWriteJSONNilTarget(t *testing.T) {
	t.Parallel()
	data, err := describe.Marshal(describe.JSON, describe.Of(nil))
	require.NoError(t, err)
	assert.Equal(t, "null\n", string(data))
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	data, err := describe.Marshal(describe.YAML, describe.Of(pair{Name: "Alice", Age: 30}))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "type: pair")
	assert.Contains(t, out, "key: Name")
	assert.Contains(t, out, "value: Alice")
	assert.Contains(t, out, "key: Age")
	assert.Contains(t, out, `value: "30"`)
}

func TestWriteTable(t *testing.T) {
	t.Parallel()
	data, err := describe.Marshal(describe.Table, describe.Of(pair{Name: "Alice", Age: 30}))
	require.NoError(t, err)
	want := "" +
		"╭───────────────╮\n" +
		"│     pair      │\n" +
		"├───────┬───────┤\n" +
		"│ FIELD │ VALUE │\n" +
		"├───────┼───────┤\n" +
		"│ Name  │ Alice │\n" +
		"│ Age   │ 30    │\n" +
		"╰───────┴───────╯\n"
	assert.Equal(t, want, string(data))
}

func TestWriteTableNilTarget(t *testing.T) {
	t.Parallel()
	data, err := describe.Marshal(describe.Table, describe.Of(nil))
	require.NoError(t, err)
	assert.Equal(t, "null\n", string(data))
}

func TestWriteRespectsEntryComparator(t *testing.T) {
	t.Parallel()
	d := describe.Of(pair{Name: "Alice", Age: 30}).
		EntryComparator(func(a, b describe.Entry) int {
			if a.Key < b.Key {
				return -1
			}
			if a.Key > b.Key {
				return 1
			}
			return 0
		})
	data, err := describe.Marshal(describe.JSON, d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"pair","fields":[{"key":"Age","value":"30"},{"key":"Name","value":"Alice"}]}`, string(data))
}

func TestEntriesSnapshot(t *testing.T) {
	t.Parallel()
	entries := describe.Of(pair{Name: "Alice", Age: 30}).Entries()
	assert.Equal(t, []describe.Entry{
		{Key: "Name", Value: "Alice"},
		{Key: "Age", Value: "30"},
	}, entries)

	assert.Nil(t, describe.Of(nil).Entries())
}
