package htmlnode

import "strings"

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an insertion-ordered attribute collection.
// Serialized output follows insertion order byte-for-byte.
type Attrs struct {
	keys   []string
	values map[string]string
}

// NewAttrs creates an attribute collection holding attrs in the given order.
// The result is non-nil even when attrs is empty.
func NewAttrs(attrs ...Attr) *Attrs {
	a := &Attrs{values: make(map[string]string, len(attrs))}
	for _, attr := range attrs {
		a.Set(attr.Key, attr.Value)
	}
	return a
}

// Set stores value under key. Re-setting an existing key keeps its original position.
func (a *Attrs) Set(key, value string) *Attrs {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return a
}

// Get returns the value stored under key.
func (a *Attrs) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	value, ok := a.values[key]
	return value, ok
}

// Len returns the number of attributes. A nil collection has length zero.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the attribute keys in insertion order.
func (a *Attrs) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// HTML serializes the collection as it appears inside an opening tag.
//
// A nil collection yields "". A non-nil collection yields a leading space
// followed by space-separated key="value" pairs, so an empty non-nil
// collection yields a lone " ".
func (a *Attrs) HTML() string {
	if a == nil {
		return ""
	}

	pairs := make([]string, 0, len(a.keys))
	for _, key := range a.keys {
		pairs = append(pairs, key+`="`+a.values[key]+`"`)
	}

	return " " + strings.Join(pairs, " ")
}
