package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com",
		"https://www.example.com/path?q=1",
		"https://sub.example.co/a/b#frag",
	}
	for _, u := range valid {
		assert.True(t, IsValidURL(u), u)
	}

	invalid := []string{
		"",
		"example.com",
		"ftp://example.com",
		"https://nodot",
		"not a url",
	}
	for _, u := range invalid {
		assert.False(t, IsValidURL(u), u)
	}
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com", NormalizeURL("  example.com  "))
	assert.Equal(t, "http://example.com", NormalizeURL("http://example.com"))
	assert.Equal(t, "HTTPS://example.com", NormalizeURL("HTTPS://example.com"))
	assert.Equal(t, "", NormalizeURL("   "))

	// idempotent
	once := NormalizeURL("example.com")
	assert.Equal(t, once, NormalizeURL(once))
}

func TestIsValidAlias(t *testing.T) {
	assert.True(t, IsValidAlias(""))
	assert.True(t, IsValidAlias("my-link"))
	assert.True(t, IsValidAlias("ab"))
	assert.True(t, IsValidAlias("A1-b2-C3"))

	assert.False(t, IsValidAlias("a"))
	assert.False(t, IsValidAlias("-bad"))
	assert.False(t, IsValidAlias("bad-"))
	assert.False(t, IsValidAlias("double--hyphen"))
	assert.False(t, IsValidAlias("has_underscore"))
	assert.False(t, IsValidAlias("has space"))
}

func TestValidateAlias(t *testing.T) {
	assert.NoError(t, ValidateAlias("my-link"))

	err := ValidateAlias("-bad")
	assert.EqualError(t, err, "error.alias_invalid")
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.example.co"))

	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("user@example"))
	assert.False(t, IsValidEmail("user example.com"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestValidateTargetURL(t *testing.T) {
	assert.NoError(t, ValidateTargetURL("https://example.com"))

	assert.EqualError(t, ValidateTargetURL(""), "error.url_required")
	assert.EqualError(t, ValidateTargetURL("notaurl"), "error.url_invalid")

	long := "https://example.com/" + strings.Repeat("a", 2048)
	assert.EqualError(t, ValidateTargetURL(long), "error.url_max_length")
}

func TestValidatePassword(t *testing.T) {
	strong := ValidatePassword("Abc12345!")
	assert.True(t, strong.IsValid)
	assert.Equal(t, 5, strong.Score)
	assert.Empty(t, strong.Feedback)

	weakest := ValidatePassword("abc")
	assert.False(t, weakest.IsValid)
	assert.LessOrEqual(t, weakest.Score, 1)

	empty := ValidatePassword("")
	assert.False(t, empty.IsValid)
	assert.Equal(t, 0, empty.Score)
	assert.Equal(t, []string{"Password is required"}, empty.Feedback)

	// all character classes but too short: score alone never validates
	short := ValidatePassword("Ab1!")
	assert.False(t, short.IsValid)
	assert.Equal(t, 4, short.Score)
	assert.Contains(t, short.Feedback, "Password must be at least 8 characters")

	// long but monotonous
	weak := ValidatePassword("abcdefgh")
	assert.False(t, weak.IsValid)
	assert.Equal(t, 2, weak.Score)
	assert.Contains(t, weak.Feedback, "Include uppercase letters")
	assert.Contains(t, weak.Feedback, "Include numbers")
	assert.Contains(t, weak.Feedback, "Include special characters")

	// exactly at the threshold: length + lowercase + digits
	borderline := ValidatePassword("abcdef12")
	assert.True(t, borderline.IsValid)
	assert.Equal(t, 3, borderline.Score)
}
