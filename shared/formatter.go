package shared

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

func GetHostName(instanceUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(instanceUrl)
	if urlError != nil {
		return "", fmt.Errorf("Failed to parse instance URL '%s': %v", instanceUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

// NormalizeDomain turns user input like "https://Mastodon.Social/" into "mastodon.social".
func NormalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	if strings.Contains(domain, "://") {
		if host, err := GetHostName(domain); err == nil && host != "" {
			domain = host
		}
	}
	domain = strings.TrimRight(domain, "/")
	return strings.ToLower(domain)
}

// MakeFullName returns the account's full name: @username@domain
func MakeFullName(username, domain string) string {
	return "@" + username + "@" + domain
}

// MakeIdentifier returns the domain:accountId string that is unique across instances.
func MakeIdentifier(domain, accountId string) string {
	return domain + ":" + accountId
}

// GetAcctDomain returns the domain part of a Mastodon "acct" (user@domain), or "" for local accounts.
func GetAcctDomain(acct string) string {
	ix := strings.LastIndexByte(acct, '@')
	if ix == -1 {
		return ""
	}
	return acct[ix+1:]
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}
