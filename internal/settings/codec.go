package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
)

// Codec converts between a typed value and the string a form input holds.
type Codec interface {
	Stringify(v any) (string, error)
	Parse(s string) (any, error)
}

// CustomOptionKey is the select option that switches a floatValuesOrCustom
// setting to free text.
const CustomOptionKey = "custom"

// Codec returns the codec of d's kind.
func (d Descriptor) Codec() Codec {
	switch d.Kind {
	case KindBool:
		return boolCodec{}
	case KindFloat:
		return floatCodec{}
	case KindFloat1000:
		return float1000Codec{}
	case KindFloatOrNull:
		return nullable{floatCodec{}}
	case KindInt:
		return intCodec{}
	case KindIntOrNull:
		return nullable{intCodec{}}
	case KindJSONString:
		return jsonCodec{}
	case KindRangePercent:
		return rangePercentCodec{}
	case KindFloatValuesOrCustom:
		return floatValuesOrCustomCodec{options: d.Options}
	case KindString:
		return stringCodec{}
	case KindCustom:
		return customCodec{key: d.Key}
	}
	return customCodec{key: d.Key}
}

type boolCodec struct{}

func (boolCodec) Stringify(v any) (string, error) {
	b, ok := v.(bool)
	if !ok {
		return "", fmt.Errorf(messages.CodecUnsupportedTypeFmt, v)
	}
	return strconv.FormatBool(b), nil
}

func (boolCodec) Parse(s string) (any, error) {
	switch strings.TrimSpace(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, fmt.Errorf(messages.CodecNotBoolFmt, s)
}

type floatCodec struct{}

func (floatCodec) Stringify(v any) (string, error) {
	f, err := toFloat(v)
	if err != nil {
		return "", err
	}
	return rows.FormatNumber(f), nil
}

func (floatCodec) Parse(s string) (any, error) {
	return parseFloat(s)
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf(messages.CodecNotNumberFmt, s)
	}
	return f, nil
}

type float1000Codec struct{}

func (float1000Codec) Stringify(v any) (string, error) {
	f, err := toFloat(v)
	if err != nil {
		return "", err
	}
	return rows.FormatNumber(f / 1000), nil
}

// Parse multiplies by 1000 and rounds to a millionth so that values survive
// the division in Stringify unchanged.
func (float1000Codec) Parse(s string) (any, error) {
	f, err := parseFloat(s)
	if err != nil {
		return nil, err
	}
	return math.Round(f*1000*1e6) / 1e6, nil
}

type intCodec struct{}

func (intCodec) Stringify(v any) (string, error) {
	i, err := toInt(v)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(i), nil
}

func (intCodec) Parse(s string) (any, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf(messages.CodecNotIntegerFmt, s)
	}
	return i, nil
}

// nullable maps nil to the empty string and back.
type nullable struct {
	inner Codec
}

func (n nullable) Stringify(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	return n.inner.Stringify(v)
}

func (n nullable) Parse(s string) (any, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return n.inner.Parse(s)
}

type jsonCodec struct{}

func (jsonCodec) Stringify(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf(messages.CodecInvalidJSONFmt, err)
	}
	return string(b), nil
}

func (jsonCodec) Parse(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf(messages.CodecInvalidJSONFmt, err)
	}
	return v, nil
}

type rangePercentCodec struct{}

func (rangePercentCodec) Stringify(v any) (string, error) {
	return floatCodec{}.Stringify(v)
}

func (rangePercentCodec) Parse(s string) (any, error) {
	f, err := parseFloat(s)
	if err != nil {
		return nil, err
	}
	if f < 0 || f > 1 {
		return nil, fmt.Errorf(messages.CodecOutOfUnitRangeFmt, f)
	}
	return f, nil
}

// PercentLabel renders a rangePercent state string as a rounded percentage.
func PercentLabel(s string) string {
	f, err := parseFloat(s)
	if err != nil {
		return ""
	}
	return strconv.Itoa(int(math.Round(f*100))) + "%"
}

// floatValuesOrCustomCodec stores [isCustom, "value"] as JSON text.
type floatValuesOrCustomCodec struct {
	options []Option
}

func (c floatValuesOrCustomCodec) Stringify(v any) (string, error) {
	f, err := toFloat(v)
	if err != nil {
		return "", err
	}
	s := rows.FormatNumber(f)
	return EncodeCustomTuple(!hasOption(c.options, s), s), nil
}

func (c floatValuesOrCustomCodec) Parse(s string) (any, error) {
	_, value, err := DecodeCustomTuple(s)
	if err != nil {
		return nil, err
	}
	return parseFloat(value)
}

func hasOption(options []Option, key string) bool {
	for _, o := range options {
		if o.Key == key {
			return true
		}
	}
	return false
}

// EncodeCustomTuple returns the state string of a floatValuesOrCustom setting.
func EncodeCustomTuple(isCustom bool, value string) string {
	b, _ := json.Marshal([]any{isCustom, value})
	return string(b)
}

// DecodeCustomTuple splits a floatValuesOrCustom state string.
func DecodeCustomTuple(s string) (bool, string, error) {
	var tuple []any
	if err := json.Unmarshal([]byte(s), &tuple); err != nil || len(tuple) != 2 {
		return false, "", errors.New(messages.CodecInvalidTuple)
	}
	isCustom, ok := tuple[0].(bool)
	if !ok {
		return false, "", errors.New(messages.CodecInvalidTuple)
	}
	value, ok := tuple[1].(string)
	if !ok {
		return false, "", errors.New(messages.CodecInvalidTuple)
	}
	return isCustom, value, nil
}

type stringCodec struct{}

func (stringCodec) Stringify(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	}
	return "", fmt.Errorf(messages.CodecUnsupportedTypeFmt, v)
}

func (stringCodec) Parse(s string) (any, error) {
	return s, nil
}

type customCodec struct {
	key string
}

func (c customCodec) Stringify(any) (string, error) {
	return "", fmt.Errorf(messages.CodecSpecialKeyFmt, c.key)
}

func (c customCodec) Parse(string) (any, error) {
	return nil, fmt.Errorf(messages.CodecSpecialKeyFmt, c.key)
}

// toFloat accepts the numeric types JSON, TOML and YAML decoders produce.
func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf(messages.CodecNotNumberFmt, x.String())
		}
		return f, nil
	}
	return 0, fmt.Errorf(messages.CodecUnsupportedTypeFmt, v)
}

// toInt accepts whole numbers of any numeric type.
func toInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case int32:
		return int(x), nil
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf(messages.CodecNotIntegerFmt, rows.FormatNumber(f))
	}
	return int(f), nil
}
