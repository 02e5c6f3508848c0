package connector

import (
	"testing"

	"http-connector/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersSetGet(t *testing.T) {
	h := NewHeaders()

	_, ok := h.Get("Content-Type")
	assert.False(t, ok)

	h.Set("Content-Type", "text/html")

	v, ok := h.Get("Content-Type")
	require.True(t, ok)
	assert.Equal(t, "text/html", v)

	// Lookup ignores case.
	v, ok = h.Get("content-type")
	require.True(t, ok)
	assert.Equal(t, "text/html", v)

	h.Set("CONTENT-TYPE", "text/plain")
	v, ok = h.Get("Content-Type")
	require.True(t, ok)
	assert.Equal(t, "text/plain", v)
}

func TestHeadersAdd(t *testing.T) {
	h := NewHeaders()

	h.Add("Accept", "text/html")
	h.Add("accept", "text/plain")

	v, ok := h.Get("Accept")
	require.True(t, ok)
	assert.Equal(t, "text/html", v, "Get returns the first value ever added")

	assert.Equal(t, []string{"text/html", "text/plain"}, h.Values("ACCEPT"))
}

func TestHeadersSetReplacesAllValues(t *testing.T) {
	h := NewHeaders()

	h.Add("Warning", "a")
	h.Add("Warning", "b")
	h.Set("Warning", "c")

	assert.Equal(t, []string{"c"}, h.Values("Warning"))
}

func TestHeadersDisplayCasing(t *testing.T) {
	h := NewHeaders()

	h.Add("x-custom", "1")
	h.Add("X-CUSTOM", "2")
	h.Set("X-Custom", "3")

	// First insertion's casing wins for output.
	assert.Equal(t, []string{"x-custom"}, h.Names())
}

func TestHeadersNamesOrder(t *testing.T) {
	h := NewHeaders()

	h.Set("B-Header", "1")
	h.Set("A-Header", "2")
	h.Add("C-Header", "3")
	h.Set("B-Header", "4") // does not move

	assert.Equal(t, []string{"B-Header", "A-Header", "C-Header"}, h.Names())
}

func TestHeadersAbsentName(t *testing.T) {
	h := NewHeaders()

	v, ok := h.Get("Nope")
	assert.False(t, ok)
	assert.Empty(t, v)

	assert.Nil(t, h.Values("Nope"))
	assert.False(t, h.Contains("Nope"))

	// Deleting an absent name is a no-op.
	h.Del("Nope")
	assert.Zero(t, h.Len())
}

func TestHeadersDel(t *testing.T) {
	h := NewHeaders()

	h.Set("A", "1")
	h.Set("B", "2")
	h.Set("C", "3")

	h.Del("b")

	assert.Equal(t, []string{"A", "C"}, h.Names())
	assert.False(t, h.Contains("B"))

	// Index survives the splice.
	v, ok := h.Get("C")
	require.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestHeadersClear(t *testing.T) {
	h := NewHeaders()

	h.Set("A", "1")
	h.Add("B", "2")
	h.Clear()

	assert.Zero(t, h.Len())
	assert.Empty(t, h.Names())
	assert.False(t, h.Contains("A"))
}

func TestHeadersZeroValue(t *testing.T) {
	var h Headers

	h.Set("A", "1")
	v, ok := h.Get("A")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestHeadersValuesIsACopy(t *testing.T) {
	h := NewHeaders()
	h.Add("A", "1")

	values := h.Values("A")
	values[0] = "mutated"

	v, _ := h.Get("A")
	assert.Equal(t, "1", v)
}

func TestHeadersFromMap(t *testing.T) {
	h := HeadersFromMap(map[string][]string{
		"B-Header": {"2"},
		"A-Header": {"1a", "1b"},
	})

	// Map order is meaningless, so insertion is sorted.
	assert.Equal(t, []string{"A-Header", "B-Header"}, h.Names())
	assert.Equal(t, []string{"1a", "1b"}, h.Values("a-header"))
}

func TestHeadersToRawFields(t *testing.T) {
	h := NewHeaders()
	h.Set("Content-Type", "text/plain")
	h.Add("X-Multi", "1")
	h.Add("X-Multi", "2")

	expected := []http.Field{
		{Name: []byte("Content-Type"), Value: []byte("text/plain")},
		{Name: []byte("X-Multi"), Value: []byte("1")},
		{Name: []byte("X-Multi"), Value: []byte("2")},
	}
	assert.Equal(t, expected, h.ToRawFields())
}
