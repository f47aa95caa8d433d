package utils

import (
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"
)

const shortCodeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ShortCodeLength is the length of locally synthesized short codes.
const ShortCodeLength = 6

// GenerateShortCode returns a random alphanumeric short code.
func GenerateShortCode() string {
	b := make([]byte, ShortCodeLength)
	for i := range b {
		b[i] = shortCodeChars[rand.IntN(len(shortCodeChars))]
	}
	return string(b)
}

// Domain extracts the hostname of a URL, empty on parse failure.
func Domain(rawURL string) string {
	u, err := url.Parse(NormalizeURL(rawURL))
	if err != nil {
		return ""
	}
	return u.Hostname()
}

var (
	suggestionAdjectives = []string{"quick", "fast", "easy", "smart", "best", "top", "pro"}
	suggestionNouns      = []string{"link", "url", "site", "page", "web", "app"}
)

// SuggestAliases derives up to five custom-alias candidates from the target
// URL's domain plus random adjective-noun-number combinations, skipping
// aliases already in use.
func SuggestAliases(rawURL string, existing []string) []string {
	taken := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		taken[a] = struct{}{}
	}

	var suggestions []string
	if domain := Domain(rawURL); domain != "" {
		name := strings.SplitN(strings.TrimPrefix(domain, "www."), ".", 2)[0]
		suggestions = append(suggestions, name, name+"-link", name+"-url")
	}
	for i := 0; i < 3; i++ {
		adj := suggestionAdjectives[rand.IntN(len(suggestionAdjectives))]
		noun := suggestionNouns[rand.IntN(len(suggestionNouns))]
		suggestions = append(suggestions, adj+"-"+noun+"-"+strconv.Itoa(rand.IntN(999)))
	}

	out := make([]string, 0, 5)
	for _, s := range suggestions {
		if _, ok := taken[s]; ok {
			continue
		}
		out = append(out, s)
		if len(out) == 5 {
			break
		}
	}
	return out
}
