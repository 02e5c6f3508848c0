package connector

import (
	"sort"
	"strings"

	"http-connector/http"
)

// Headers is an ordered, case-insensitive, multi-valued header table.
// Lookups ignore case; output preserves the casing of the name's first
// insertion and the insertion order of names and values, so the wire
// rendering of one table is deterministic.
//
// The zero value is ready to use.
type Headers struct {
	entries []headerEntry
	index   map[string]int // lowercase name -> entries index
}

type headerEntry struct {
	display string
	values  []string
}

func NewHeaders() *Headers {
	return &Headers{index: make(map[string]int)}
}

// HeadersFromMap builds a table from a pre-parsed map. Names are
// inserted in sorted order since the map carries none.
func HeadersFromMap(initial map[string][]string) *Headers {
	h := NewHeaders()

	names := make([]string, 0, len(initial))
	for name := range initial {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, value := range initial[name] {
			h.Add(name, value)
		}
	}

	return h
}

func (h *Headers) ensure() {
	if h.index == nil {
		h.index = make(map[string]int)
	}
}

// Set replaces every value of name with the single given value. The
// display casing of an already-known name is kept.
func (h *Headers) Set(name, value string) {
	h.ensure()
	key := strings.ToLower(name)
	if idx, ok := h.index[key]; ok {
		h.entries[idx].values = []string{value}
		return
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, headerEntry{display: name, values: []string{value}})
}

// Add appends value to name, creating the entry on first use.
func (h *Headers) Add(name, value string) {
	h.ensure()
	key := strings.ToLower(name)
	if idx, ok := h.index[key]; ok {
		h.entries[idx].values = append(h.entries[idx].values, value)
		return
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, headerEntry{display: name, values: []string{value}})
}

// Get returns the first value ever added for name. Absence is reported
// by ok, never by an error.
func (h *Headers) Get(name string) (value string, ok bool) {
	idx, ok := h.index[strings.ToLower(name)]
	if !ok || len(h.entries[idx].values) == 0 {
		return "", false
	}
	return h.entries[idx].values[0], true
}

// Values returns all values of name in insertion order. The slice is a
// copy; missing names yield nil.
func (h *Headers) Values(name string) []string {
	idx, ok := h.index[strings.ToLower(name)]
	if !ok {
		return nil
	}
	values := make([]string, len(h.entries[idx].values))
	copy(values, h.entries[idx].values)
	return values
}

// Names returns the display names in insertion order of their first
// appearance.
func (h *Headers) Names() []string {
	names := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		names = append(names, e.display)
	}
	return names
}

func (h *Headers) Contains(name string) bool {
	_, ok := h.index[strings.ToLower(name)]
	return ok
}

func (h *Headers) Del(name string) {
	key := strings.ToLower(name)
	idx, ok := h.index[key]
	if !ok {
		return
	}

	h.entries = append(h.entries[:idx], h.entries[idx+1:]...)
	delete(h.index, key)
	for k, i := range h.index {
		if i > idx {
			h.index[k] = i - 1
		}
	}
}

// Len is the number of distinct names.
func (h *Headers) Len() int { return len(h.entries) }

func (h *Headers) Clear() {
	h.entries = nil
	h.index = make(map[string]int)
}

// ToRawFields renders the table as wire fields, one per value, in
// table order.
func (h *Headers) ToRawFields() []http.Field {
	fields := make([]http.Field, 0, len(h.entries))
	for _, e := range h.entries {
		for _, v := range e.values {
			fields = append(fields, http.Field{
				Name:  []byte(e.display),
				Value: []byte(v),
			})
		}
	}
	return fields
}
