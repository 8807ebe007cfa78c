package utils

import (
	"net/url"
	"strings"

	"github.com/hr3lxphr6j/requests"
)

// QueryBuilder accumulates query parameters for an outgoing request.
// Keys keep the order of their first Set; setting an existing key overwrites its value in place.
// The zero value is ready to use.
type QueryBuilder struct {
	keys   []string
	values map[string]string
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func (q *QueryBuilder) Set(key, value string) {
	if q.values == nil {
		q.values = make(map[string]string)
	}
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
}

func (q *QueryBuilder) Get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

func (q *QueryBuilder) Len() int {
	return len(q.keys)
}

// Keys returns a copy of the keys in insertion order.
func (q *QueryBuilder) Keys() []string {
	keys := make([]string, len(q.keys))
	copy(keys, q.keys)
	return keys
}

// Encode renders the parameters as a query string.
// Unlike url.Values.Encode the keys are not sorted.
func (q *QueryBuilder) Encode() string {
	var sb strings.Builder
	for i, k := range q.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(q.values[k]))
	}
	return sb.String()
}

// Apply appends the encoded parameters to rawUrl, after any query it already has.
func (q *QueryBuilder) Apply(rawUrl string) (string, error) {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return "", err
	}
	if encoded := q.Encode(); encoded != "" {
		if u.RawQuery == "" {
			u.RawQuery = encoded
		} else {
			u.RawQuery += "&" + encoded
		}
	}
	return u.String(), nil
}

// Options converts the parameters to request options, one requests.Query per key, in order.
func (q *QueryBuilder) Options() []requests.RequestOption {
	opts := make([]requests.RequestOption, 0, len(q.keys))
	for _, k := range q.keys {
		opts = append(opts, requests.Query(k, q.values[k]))
	}
	return opts
}
