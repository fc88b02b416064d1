package accounts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePincode(t *testing.T) {
	cases := []struct {
		value int64
		ok    bool
	}{
		{-1, false},
		{0, false},
		{99999, false},
		{100000, true},
		{560001, true},
		{999999, true},
		{1000000, false},
	}
	for _, tc := range cases {
		err := ValidatePincode(tc.value)
		if tc.ok {
			assert.NoError(t, err, "pincode %d", tc.value)
			continue
		}
		require.Error(t, err, "pincode %d", tc.value)
		assert.ErrorIs(t, err, ErrInvalidPincode)
		assert.Contains(t, err.Error(), "6 digit")
	}
}

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		value int64
		ok    bool
	}{
		{0, false},
		{99, false},
		{999999999, false},
		{1000000000, true},
		{9876543210, true},
		{9999999999, true},
		{10000000000, false},
	}
	for _, tc := range cases {
		err := ValidatePhone(tc.value)
		if tc.ok {
			assert.NoError(t, err, "phone %d", tc.value)
			continue
		}
		assert.ErrorIs(t, err, ErrInvalidPhone, "phone %d", tc.value)
	}
}

func TestValidateFullName(t *testing.T) {
	valid := []string{"Jane Doe", "  Jane   Doe  ", "Jane\tDoe", "Jane\nDoe"}
	invalid := []string{"", "   ", "Jane", "Jane Q Doe", "Jane Doe Smith Jr"}

	for _, name := range valid {
		assert.NoError(t, ValidateFullName(name), "%q", name)
	}
	for _, name := range invalid {
		err := ValidateFullName(name)
		assert.ErrorIs(t, err, ErrInvalidFullName, "%q", name)
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     error
	}{
		{"valid", "Secret12", nil},
		{"empty", "", ErrPasswordShort},
		{"short lowercase only", "short1", ErrPasswordShort},
		{"short but mixed case", "Ab1", ErrPasswordShort},
		{"no uppercase", "secret123", ErrPasswordNoUpper},
		{"no lowercase", "SECRET123", ErrPasswordNoLower},
		{"no letters", "12345678", ErrPasswordNoUpper},
		{"mixed with non ascii", "ÉCOLEabc1", nil},
		{"non ascii upper does not count", "ÉÉÉÉabcd", ErrPasswordNoUpper},
		{"only non ascii letters", "éééééééé", ErrPasswordNoUpper},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tc.password)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ErrWeakPassword)
		})
	}
}

func TestValidatePasswordStrengthCountsRunes(t *testing.T) {
	// seven runes, more than eight bytes
	err := ValidatePasswordStrength("Aéééééé")
	assert.ErrorIs(t, err, ErrPasswordShort)
}

func TestPasswordDetailDoesNotMatchOtherDetail(t *testing.T) {
	err := ValidatePasswordStrength("secret123")
	assert.False(t, errors.Is(err, ErrPasswordShort))
	assert.False(t, errors.Is(err, ErrInvalidPhone))
}

func TestSplitFullName(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"  Jane   Doe ", "Jane", "Doe"},
		{"Jane", "Jane", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := SplitFullName(tc.in)
		assert.Equal(t, tc.first, first, "%q", tc.in)
		assert.Equal(t, tc.last, last, "%q", tc.in)
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"Foo@EXAMPLE.Com":     "Foo@example.com",
		"  a@X.COM ":          "a@x.com",
		"weird@name@Host.ORG": "weird@name@host.org",
		"no-at-sign":          "no-at-sign",
		"":                    "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeEmail(in), "%q", in)
	}
}
