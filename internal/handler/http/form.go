package http

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// maxFormDepth is the deepest bracket nesting expanded into maps. Deeper
	// segments are kept as one literal key.
	maxFormDepth = 5

	// maxFormParameters bounds the number of pairs in a URL-encoded body.
	maxFormParameters = 1000
)

// parseForm decodes a URL-encoded body with bracket syntax:
//
//	a=1            -> {"a": "1"}
//	a=1&a=2        -> {"a": ["1", "2"]}
//	a[]=1&a[]=2    -> {"a": ["1", "2"]}
//	a[b][c]=1      -> {"a": {"b": {"c": "1"}}}
//
// Keys are processed in their order of appearance. Scalars and lists that
// meet a nested key under the same name are merged into the map under
// their list indexes, and values added to an existing map take the next
// free index:
//
//	a=1&a[b]=2     -> {"a": {"0": "1", "b": "2"}}
//	a[b]=1&a[]=2   -> {"a": {"b": "1", "0": "2"}}
func parseForm(body string) (map[string]any, error) {
	result := make(map[string]any)
	if body == "" {
		return result, nil
	}

	pairs := strings.Split(body, "&")
	if len(pairs) > maxFormParameters {
		return nil, ErrTooManyParameters
	}

	for _, pair := range pairs {
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, err
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, err
		}
		if key == "" {
			continue
		}

		assignFormValue(result, splitFormKey(key), value)
	}

	return result, nil
}

// splitFormKey splits "a[b][c]" into ["a", "b", "c"] and "a[]" into
// ["a", ""]. A key with unbalanced brackets is returned whole.
func splitFormKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 {
		return []string{key}
	}

	segments := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return []string{key}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}
		}
		if len(segments) > maxFormDepth {
			segments = append(segments, rest)
			break
		}
		segments = append(segments, rest[1:end])
		rest = rest[end+1:]
	}

	return segments
}

func assignFormValue(node map[string]any, path []string, value string) {
	key := path[0]
	rest := path[1:]

	switch {
	case len(rest) == 0:
		node[key] = appendFormValue(node[key], value, false)
	case len(rest) == 1 && rest[0] == "":
		node[key] = appendFormValue(node[key], value, true)
	default:
		child, ok := node[key].(map[string]any)
		if !ok {
			child = formValueToMap(node[key])
			node[key] = child
		}
		assignFormValue(child, rest, value)
	}
}

// appendFormValue merges value into existing. asList forces a slice even
// for the first value.
func appendFormValue(existing any, value string, asList bool) any {
	switch v := existing.(type) {
	case map[string]any:
		v[nextFormIndex(v)] = value
		return v
	case []any:
		return append(v, value)
	case string:
		return []any{v, value}
	default:
		if asList {
			return []any{value}
		}
		return value
	}
}

// formValueToMap turns an existing scalar or list into a map keyed by list
// index.
func formValueToMap(existing any) map[string]any {
	result := make(map[string]any)
	switch v := existing.(type) {
	case string:
		result["0"] = v
	case []any:
		for i, item := range v {
			result[strconv.Itoa(i)] = item
		}
	}
	return result
}

// nextFormIndex returns the smallest non-negative integer key absent from m.
func nextFormIndex(m map[string]any) string {
	for i := 0; ; i++ {
		key := strconv.Itoa(i)
		if _, taken := m[key]; !taken {
			return key
		}
	}
}
