package axiora

import (
	"fmt"
	"net/url"
	"strconv"
)

// encode renders params as a query string, skipping nil values. Cleaning an
// already-clean map is a no-op; only the nil entries are ever dropped.
func (p Params) encode() string {
	if len(p) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range p {
		if v == nil {
			continue
		}
		values.Set(k, paramString(v))
	}
	return values.Encode()
}

func paramString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
