package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DigitsOf strips every non-digit character from a phone number.
func DigitsOf(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhoneDisplay renders an accepted phone number in E.164 when the
// region metadata can make sense of it; otherwise the input is returned
// as stored. Assumes US numbers when no country code is present.
func FormatPhoneDisplay(phone string) string {
	num, err := phonenumbers.Parse(strings.TrimSpace(phone), "US")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return phone
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
