package utils

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "$",
	"AUD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"INR": "₹",
	"VND": "₫",
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// FormatMoney renders an amount held as an integer count of hundredths of
// the major unit. Zero-decimal currencies collapse to a rounded whole
// number (half away from zero), never a truncated one.
func FormatMoney(amount int64, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("unknown currency %q: %w", code, err)
	}
	scale, _ := currency.Cash.Rounding(unit)

	neg := amount < 0
	abs := amount
	if neg {
		abs = -abs
	}

	// rescale hundredths to the currency's minor-unit scale, rounding half up
	p := pow10(scale)
	minor := (abs*p + 50) / 100

	out := moneyPrinter.Sprintf("%d", minor/p)
	if scale > 0 {
		out = fmt.Sprintf("%s.%0*d", out, scale, minor%p)
	}

	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}
	if neg {
		return "-" + symbol + out, nil
	}
	return symbol + out, nil
}

// ParseMoney inverts FormatMoney back to hundredths of the major unit.
func ParseMoney(s, code string) (int64, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 0, fmt.Errorf("unknown currency %q: %w", code, err)
	}
	scale, _ := currency.Cash.Rounding(unit)

	t := strings.TrimSpace(s)
	neg := strings.HasPrefix(t, "-")
	t = strings.TrimPrefix(t, "-")
	if symbol, ok := currencySymbols[unit.String()]; ok {
		t = strings.TrimPrefix(t, symbol)
	}
	t = strings.TrimSpace(strings.TrimPrefix(t, unit.String()))
	t = strings.ReplaceAll(t, ",", "")
	if t == "" {
		return 0, fmt.Errorf("malformed money string %q", s)
	}

	wholePart := t
	fracPart := ""
	if i := strings.IndexByte(t, '.'); i >= 0 {
		wholePart, fracPart = t[:i], t[i+1:]
	}
	whole, err := strconv.ParseInt(wholePart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed money string %q", s)
	}
	var frac int64
	if fracPart != "" {
		if len(fracPart) > scale {
			return 0, fmt.Errorf("money string %q exceeds %s minor-unit precision", s, unit)
		}
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed money string %q", s)
		}
		// right-pad short fractions to the currency scale
		frac *= pow10(scale - len(fracPart))
	}

	p := pow10(scale)
	minor := whole*p + frac
	cents := (minor*100 + p/2) / p
	if neg {
		cents = -cents
	}
	return cents, nil
}
