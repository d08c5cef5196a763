// Package visits derives the "recently visited domains" feed from the raw
// proxy request log. The feed is recomputed from scratch on every log
// snapshot; nothing here is stateful.
package visits

import (
	"net/url"
	"strings"
)

// MaxRecent is the number of unique domains kept in the recent-visits feed.
const MaxRecent = 8

// Visit is one entry in the recent-visits feed: the most recent request
// seen for a domain.
type Visit struct {
	Domain    string `json:"domain"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

// LogEntry is the subset of a proxy log record the projector needs.
type LogEntry struct {
	Timestamp string
	URL       string
	Action    string
}

// ExtractDomain returns the host portion of a logged request URL.
//
// Proxy logs mix full URLs ("http://example.com/path") with bare
// CONNECT-style authorities ("example.com:443"), so structured parsing
// alone is not enough. Resolution order:
//
//  1. empty input yields ""
//  2. no scheme separator but a colon present: everything before the
//     first colon (host:port form)
//  3. url.Parse hostname
//  4. token fallback: strip an http(s):// prefix, cut at the first "/"
//     and then at the first ":"
func ExtractDomain(raw string) string {
	if raw == "" {
		return ""
	}

	if !strings.Contains(raw, "://") {
		if i := strings.Index(raw, ":"); i >= 0 {
			return raw[:i]
		}
	}

	if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}

	return fallbackDomain(raw)
}

// fallbackDomain is the token-based second tier: best effort on inputs
// url.Parse rejects.
func fallbackDomain(raw string) string {
	s := strings.TrimPrefix(raw, "http://")
	s = strings.TrimPrefix(s, "https://")
	s, _, _ = strings.Cut(s, "/")
	s, _, _ = strings.Cut(s, ":")
	return s
}

// BuildRecent projects a log snapshot onto the recent-visits feed.
//
// Entries are scanned newest-first (the input is in service order, oldest
// first), each domain is kept once at its most recent occurrence, entries
// without an extractable domain are skipped, and the feed is capped at
// MaxRecent. Pure: the same snapshot always yields the same feed.
func BuildRecent(entries []LogEntry) []Visit {
	out := make([]Visit, 0, MaxRecent)
	seen := make(map[string]struct{}, MaxRecent)

	for i := len(entries) - 1; i >= 0 && len(out) < MaxRecent; i-- {
		domain := ExtractDomain(entries[i].URL)
		if domain == "" {
			continue
		}
		if _, dup := seen[domain]; dup {
			continue
		}
		seen[domain] = struct{}{}
		out = append(out, Visit{
			Domain:    domain,
			Action:    entries[i].Action,
			Timestamp: entries[i].Timestamp,
		})
	}

	return out
}
