package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/shared/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected money.Cents
		wantErr  bool
	}{
		{
			name:     "whole amount",
			input:    "120",
			expected: 12000,
		},
		{
			name:     "one decimal place",
			input:    "120.5",
			expected: 12050,
		},
		{
			name:     "two decimal places",
			input:    "120.50",
			expected: 12050,
		},
		{
			name:     "extra decimals are truncated",
			input:    "120.559",
			expected: 12055,
		},
		{
			name:     "zero",
			input:    "0",
			expected: 0,
		},
		{
			name:     "negative amount",
			input:    "-45.25",
			expected: -4525,
		},
		{
			name:     "leading plus sign",
			input:    "+10",
			expected: 1000,
		},
		{
			name:     "fraction only",
			input:    ".75",
			expected: 75,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCents_String(t *testing.T) {
	assert.Equal(t, "120.00", money.Cents(12000).String())
	assert.Equal(t, "120.50", money.Cents(12050).String())
	assert.Equal(t, "0.05", money.Cents(5).String())
	assert.Equal(t, "0.00", money.Cents(0).String())
	assert.Equal(t, "-45.25", money.Cents(-4525).String())
}

func TestCents_Mul(t *testing.T) {
	assert.Equal(t, money.Cents(6000), money.MustParse("20").Mul(3))
	assert.Equal(t, money.Cents(0), money.MustParse("20").Mul(0))
	assert.Equal(t, money.Cents(-3000), money.MustParse("-15").Mul(2))
}

func TestCents_JSON(t *testing.T) {
	data, err := json.Marshal(money.Cents(12050))
	assert.NoError(t, err)
	assert.Equal(t, "120.50", string(data))

	var c money.Cents

	assert.NoError(t, json.Unmarshal([]byte("130"), &c))
	assert.Equal(t, money.Cents(13000), c)

	assert.NoError(t, json.Unmarshal([]byte(`"99.99"`), &c))
	assert.Equal(t, money.Cents(9999), c)

	assert.NoError(t, json.Unmarshal([]byte("null"), &c))
	assert.Equal(t, money.Cents(0), c)
}

func TestCents_Scan(t *testing.T) {
	var c money.Cents

	assert.NoError(t, c.Scan([]byte("130.00")))
	assert.Equal(t, money.Cents(13000), c)

	assert.NoError(t, c.Scan("85.25"))
	assert.Equal(t, money.Cents(8525), c)

	assert.NoError(t, c.Scan(int64(42)))
	assert.Equal(t, money.Cents(4200), c)

	assert.NoError(t, c.Scan(nil))
	assert.Equal(t, money.Cents(0), c)

	assert.Error(t, c.Scan(struct{}{}))
}

func TestCents_Value(t *testing.T) {
	v, err := money.Cents(12050).Value()
	assert.NoError(t, err)
	assert.Equal(t, "120.50", v)
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		money.MustParse("not-a-number")
	})
}
