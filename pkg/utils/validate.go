package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	urlPattern   = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)
	aliasPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*[A-Za-z0-9]$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	lowerPattern   = regexp.MustCompile(`[a-z]`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// IsValidURL reports whether s looks like an absolute HTTP(S) URL with a
// dotted host and a TLD-like suffix. Callers normalize first.
func IsValidURL(s string) bool {
	return s != "" && urlPattern.MatchString(s)
}

// NormalizeURL trims whitespace and prepends https:// when no scheme is
// present. It does not validate the result and is idempotent.
func NormalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		s = "https://" + s
	}
	return s
}

// IsValidAlias reports whether alias is usable as a custom short code. The
// empty alias is valid (optional field); a non-empty alias needs at least two
// characters, alphanumeric ends, no consecutive hyphens and no characters
// outside [A-Za-z0-9-].
func IsValidAlias(alias string) bool {
	if alias == "" {
		return true
	}
	if strings.Contains(alias, "--") {
		return false
	}
	return aliasPattern.MatchString(alias)
}

// ValidateAlias is the error-returning variant used by request DTOs.
func ValidateAlias(alias string) error {
	if !IsValidAlias(alias) {
		return fmt.Errorf("error.alias_invalid")
	}
	return nil
}

// IsValidEmail is a local@domain.tld shape check, intentionally not
// RFC-complete.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateTargetURL checks a destination URL before any provider is called.
func ValidateTargetURL(targetURL string) error {
	if targetURL == "" {
		return fmt.Errorf("error.url_required")
	}
	if len(targetURL) > 2048 {
		return fmt.Errorf("error.url_max_length")
	}
	if !IsValidURL(targetURL) {
		return fmt.Errorf("error.url_invalid")
	}
	return nil
}

// PasswordStrength is the result of ValidatePassword.
type PasswordStrength struct {
	IsValid  bool     `json:"isValid"`
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
}

// ValidatePassword scores a password 0..5 (length ≥ 8, lowercase, uppercase,
// digit, special character). IsValid requires score ≥ 3 and length ≥ 8.
// Feedback lists the unmet rules in check order.
func ValidatePassword(password string) PasswordStrength {
	result := PasswordStrength{Feedback: []string{}}

	if password == "" {
		result.Feedback = append(result.Feedback, "Password is required")
		return result
	}

	if len(password) < 8 {
		result.Feedback = append(result.Feedback, "Password must be at least 8 characters")
	} else {
		result.Score++
	}

	checks := []struct {
		re      *regexp.Regexp
		message string
	}{
		{lowerPattern, "Include lowercase letters"},
		{upperPattern, "Include uppercase letters"},
		{digitPattern, "Include numbers"},
		{specialPattern, "Include special characters"},
	}
	for _, c := range checks {
		if c.re.MatchString(password) {
			result.Score++
		} else {
			result.Feedback = append(result.Feedback, c.message)
		}
	}

	result.IsValid = result.Score >= 3 && len(password) >= 8
	return result
}
