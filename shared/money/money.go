// Package money provides fixed-point monetary values. Prices are stored in the
// database as NUMERIC(10,2); holding them as integer hundredths keeps night
// totals exact instead of drifting through float64.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cents is a monetary amount in integer hundredths of the currency unit.
type Cents int64

var errInvalidDecimal = errors.New("money: invalid decimal value")

// Parse converts a decimal string such as "120", "120.5" or "120.50" to Cents.
func Parse(value string) (Cents, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errInvalidDecimal
	}

	negative := false
	if value[0] == '+' || value[0] == '-' {
		negative = value[0] == '-'
		value = value[1:]
	}

	whole, frac, _ := strings.Cut(value, ".")
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: parsing %q: %w", value, err)
	}

	var hundredths int64

	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}

		for len(frac) < 2 {
			frac += "0"
		}

		hundredths, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("money: parsing %q: %w", value, err)
		}
	}

	total := units*100 + hundredths
	if negative {
		total = -total
	}

	return Cents(total), nil
}

// MustParse is Parse for trusted literals, panicking on malformed input.
func MustParse(value string) Cents {
	c, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return c
}

// String renders the amount with two decimal places.
func (c Cents) String() string {
	sign := ""

	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Mul scales the amount by an integer factor, e.g. an extra-guest count.
func (c Cents) Mul(factor int64) Cents {
	return Cents(int64(c) * factor)
}

// MarshalJSON renders the amount as a plain two-decimal JSON number.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts both numbers and numeric strings.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*c = 0

		return nil
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// Scan implements sql.Scanner. lib/pq hands NUMERIC columns back as []byte.
func (c *Cents) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = 0

		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}

		*c = parsed

		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}

		*c = parsed

		return nil
	case int64:
		*c = Cents(v * 100)

		return nil
	case float64:
		*c = Cents(math.Round(v * 100))

		return nil
	default:
		return fmt.Errorf("money: cannot scan %T", src)
	}
}

// Value implements driver.Valuer, writing the two-decimal representation.
func (c Cents) Value() (driver.Value, error) {
	return c.String(), nil
}
