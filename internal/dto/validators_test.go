package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsisdnPattern(t *testing.T) {
	valid := []string{
		"0712345678",
		"0112345678",
		"254712345678",
		"+254712345678",
	}
	for _, number := range valid {
		assert.True(t, msisdnPattern.MatchString(number), "expected %s to be valid", number)
	}

	invalid := []string{
		"",
		"071234567",      // too short
		"07123456789",    // too long
		"0812345678",     // not a mobile prefix
		"+255712345678",  // wrong country code
		"07 1234 5678",   // whitespace
		"notanumber",
	}
	for _, number := range invalid {
		assert.False(t, msisdnPattern.MatchString(number), "expected %s to be invalid", number)
	}
}
