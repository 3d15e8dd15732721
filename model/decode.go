package model

import (
	"bytes"
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DecodeObject decodes raw JSON into a loosely-typed object map. Numbers
// are kept as json.Number so monetary text reaches parseDecimal without a
// float round-trip.
func DecodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, formatErr("", "expected a JSON object")
	}
	return obj, nil
}

func expectString(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", formatErr(key, "is required")
	}
	s, ok := v.(string)
	if !ok {
		return "", formatErr(key, "must be a string")
	}
	return s, nil
}

// optionalString implements the lenient rule for Organization's optional
// fields: absent or non-string values collapse to "".
func optionalString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func parseDecimal(v any, field string) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Decimal{}, formatErr(field, "is required")
	case decimal.Decimal:
		return n, nil
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}, &FormatError{Field: field, Msg: "is not a valid decimal", Cause: err}
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Decimal{}, &FormatError{Field: field, Msg: "is not a valid decimal", Cause: err}
		}
		return d, nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, formatErr(field, "is not a finite number")
		}
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	default:
		return decimal.Decimal{}, formatErr(field, "must be a number or decimal string")
	}
}

func parseEpochSeconds(v any, field string) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, formatErr(field, "is required")
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, &FormatError{Field: field, Msg: "is not a valid timestamp", Cause: err}
		}
		return floorSeconds(f, field)
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, &FormatError{Field: field, Msg: "is not a valid timestamp", Cause: err}
		}
		return floorSeconds(f, field)
	case float64:
		return floorSeconds(n, field)
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, formatErr(field, "must be epoch seconds")
	}
}

func floorSeconds(f float64, field string) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, formatErr(field, "is not a finite number")
	}
	return int64(math.Floor(f)), nil
}

func parseDateTime(v any, field string) (time.Time, error) {
	secs, err := parseEpochSeconds(v, field)
	if err != nil {
		return time.Time{}, err
	}
	return FromEpochSeconds(secs), nil
}

// ParseURI parses raw and requires a scheme and host, the minimum for a
// URL this client can actually request.
func ParseURI(raw, field string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &FormatError{Field: field, Msg: "is not a valid URI", Cause: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, formatErr(field, "must include a scheme and host")
	}
	return u, nil
}

func copyExtra(obj map[string]any, key string) (map[string]any, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, formatErr(key, "must be an object")
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = val
	}
	return out, nil
}
