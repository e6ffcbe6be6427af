package urlhandler

import "strings"

// QueryValues maps a query parameter name to its raw, still percent-encoded
// values in the order they appear in the query string.
type QueryValues map[string][]string

// ExtractQuery splits a raw query string into QueryValues.
// Blank values ("key=" or a bare "key") are kept as empty strings and repeated
// keys keep every value. Keys are decoded; values are left untouched so the
// caller decides how to normalize them. Malformed input never fails: the worst
// case is an empty or partial result.
func ExtractQuery(rawQuery string) QueryValues {
	values := make(QueryValues)
	for rawQuery != "" {
		var pair string
		pair, rawQuery, _ = strings.Cut(rawQuery, "&")
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		key = unescapeLenient(key)
		values[key] = append(values[key], value)
	}
	return values
}

// First returns the first raw value recorded for key, or nil when the key
// never appeared in the query.
func (v QueryValues) First(key string) *string {
	vs := v[key]
	if len(vs) == 0 {
		return nil
	}
	first := vs[0]
	return &first
}
