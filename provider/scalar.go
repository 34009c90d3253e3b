package provider

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Scalar is a loosely typed JSON scalar. Extraction services disagree on
// whether heights, ids and sizes are strings or numbers, so the literal text
// is kept together with the kind it arrived as. Null and absent values are
// both reported as not present.
type Scalar struct {
	text    string
	number  bool
	boolean bool
	present bool
}

// Str builds a present string scalar.
func Str(s string) Scalar {
	return Scalar{text: s, present: true}
}

// Num builds a present numeric scalar.
func Num(n int) Scalar {
	return Scalar{text: strconv.Itoa(n), number: true, present: true}
}

// Bool builds a present boolean scalar.
func Bool(b bool) Scalar {
	return Scalar{text: strconv.FormatBool(b), boolean: true, present: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0, string(data) == "null":
		*s = Scalar{}
	case data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = Str(text)
	case string(data) == "true", string(data) == "false":
		*s = Bool(string(data) == "true")
	case data[0] == '{', data[0] == '[':
		// Structured values carry no scalar meaning for the normalizer.
		*s = Scalar{}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = Scalar{text: n.String(), number: true, present: true}
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	switch {
	case !s.present:
		return []byte("null"), nil
	case s.number, s.boolean:
		return []byte(s.text), nil
	default:
		return json.Marshal(s.text)
	}
}

// Present reports whether the field carried a non-null value.
func (s Scalar) Present() bool {
	return s.present
}

// IsNumber reports whether the value arrived as a JSON number.
func (s Scalar) IsNumber() bool {
	return s.present && s.number
}

// String returns the literal text, empty when absent.
func (s Scalar) String() string {
	return s.text
}

// Text returns the value when it is present and not blank.
func (s Scalar) Text() mo.Option[string] {
	if !s.present || strings.TrimSpace(s.text) == "" {
		return mo.None[string]()
	}
	return mo.Some(s.text)
}

// Bool returns the boolean value of the field. Strings "true" and "false"
// are accepted as well.
func (s Scalar) Bool() mo.Option[bool] {
	if !s.present {
		return mo.None[bool]()
	}

	b, err := strconv.ParseBool(strings.TrimSpace(s.text))
	if err != nil {
		return mo.None[bool]()
	}
	return mo.Some(b)
}

// Equals reports whether the field is the JSON number n.
func (s Scalar) Equals(n int) bool {
	if !s.IsNumber() {
		return false
	}

	f, err := strconv.ParseFloat(s.text, 64)
	return err == nil && f == float64(n)
}
