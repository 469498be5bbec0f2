package linkedin

import (
	"net/url"
	"strconv"
	"strings"
)

// Params is an insertion-ordered set of query parameters. The LinkScout API
// is sensitive to parameter order in signed request logs, and url.Values
// sorts keys on Encode, so the client keeps its own ordered container.
//
// Empty values are dropped at Set time: a parameter the caller did not
// provide never appears in the query string.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set adds a parameter, preserving insertion order. Empty values are
// silently dropped. Setting an existing key updates it in place.
func (p *Params) Set(key, value string) *Params {
	if value == "" {
		return p
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// SetInt adds an integer parameter. Zero is a meaningful value (pagination
// offsets) and is not dropped.
func (p *Params) SetInt(key string, value int) *Params {
	return p.Set(key, strconv.Itoa(value))
}

// SetBool adds an explicitly provided boolean flag as the lowercase literal
// "true" or "false". Callers encode absence with a nil *bool and never call
// SetBool for it; absence is not false.
func (p *Params) SetBool(key string, value bool) *Params {
	return p.Set(key, strconv.FormatBool(value))
}

// SetList adds a multi-value parameter as a single comma-joined string.
// Input order is preserved and values are not de-duplicated. An empty list
// is dropped like any other empty value.
func (p *Params) SetList(key string, values []string) *Params {
	return p.Set(key, strings.Join(values, ","))
}

// Len returns the number of parameters that will be serialized.
func (p *Params) Len() int {
	return len(p.keys)
}

// Encode serializes the parameters in insertion order. An empty set
// encodes to "".
func (p *Params) Encode() string {
	if len(p.keys) == 0 {
		return ""
	}
	var b strings.Builder
	for i, key := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[key]))
	}
	return b.String()
}
