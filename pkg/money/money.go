package money

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a currency value held in minor units (two decimal places).
// It is stored as numeric(12,2) and rendered in JSON as a decimal number.
type Amount int64

const Zero Amount = 0

var ErrInvalidAmount = errors.New("invalid money amount")

// FromMinor builds an Amount from cents.
func FromMinor(minor int64) Amount {
	return Amount(minor)
}

// FromMajor builds an Amount from whole currency units.
func FromMajor(major int64) Amount {
	return Amount(major * 100)
}

// Parse reads "1500", "1500.5", "1500.50" or "-3.25". More than two
// fractional digits is rejected rather than rounded, as is anything
// outside the numeric(12,2) range.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	negative := false
	if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, s)
	}

	whole = strings.TrimLeft(whole, "0")
	if len(whole) > maxWholeDigits {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	if whole == "" {
		whole = "0"
	}
	for len(frac) < 2 {
		frac += "0"
	}

	// Both parts are bounded digit strings, so neither conversion can overflow.
	units, _ := strconv.ParseInt(whole, 10, 64)
	cents, _ := strconv.ParseInt(frac, 10, 64)

	minor := units*100 + cents
	if negative {
		minor = -minor
	}
	return Amount(minor), nil
}

// numeric(12,2) leaves ten digits left of the point.
const maxWholeDigits = 10

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Minor() int64 {
	return int64(a)
}

// Times multiplies by a ticket count.
func (a Amount) Times(n int) Amount {
	return a * Amount(n)
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Sub(b Amount) Amount {
	return a - b
}

func (a Amount) IsNegative() bool {
	return a < 0
}

func (a Amount) IsPositive() bool {
	return a > 0
}

func (a Amount) LessThan(b Amount) bool {
	return a < b
}

// String formats as "1500.00".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (a Amount) Float64() float64 {
	return float64(a) / 100
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer for numeric columns.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner for numeric columns.
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = 0
		return nil
	case []byte:
		return a.scanString(string(v))
	case string:
		return a.scanString(v)
	case int64:
		*a = FromMajor(v)
		return nil
	case float64:
		return a.scanString(strconv.FormatFloat(v, 'f', 2, 64))
	default:
		return fmt.Errorf("cannot scan %T into money.Amount", src)
	}
}

func (a *Amount) scanString(s string) error {
	// numeric(12,2) always comes back with two places; trim anything wider
	// produced by ad-hoc expressions.
	if whole, frac, ok := strings.Cut(s, "."); ok && len(frac) > 2 {
		s = whole + "." + frac[:2]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// GormDataType keeps AutoMigrate from picking bigint for the int64 kind.
func (Amount) GormDataType() string {
	return "numeric(12,2)"
}
