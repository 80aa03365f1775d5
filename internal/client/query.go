package client

import (
	"fmt"
	"net/url"
	"strconv"
)

// numericKeys are filter keys the backend expects in numeric form; string
// values for these are coerced before serialization.
var numericKeys = map[string]struct{}{
	"page":  {},
	"limit": {},
}

// Params is the open set of optional list filters. Keys whose value is nil
// or an empty string are never serialized into the query string.
type Params map[string]any

// Encode serializes the defined keys into query values.
func (p Params) Encode() url.Values {
	values := url.Values{}
	for key, raw := range p {
		s, ok := encodeValue(raw)
		if !ok {
			continue
		}
		if _, numeric := numericKeys[key]; numeric {
			n, err := strconv.Atoi(s)
			if err != nil {
				continue
			}
			s = strconv.Itoa(n)
		}
		values.Set(key, s)
	}
	return values
}

func encodeValue(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
