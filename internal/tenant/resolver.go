package tenant

import (
	"context"
	"net"
	"strings"
)

// Resolver maps a location subdomain to its tenant.
type Resolver interface {
	ResolveSubdomain(ctx context.Context, subdomain string) (Tenant, error)
}

// SubdomainFromHost extracts the left-most label of host when host is a
// direct child of baseDomain. "downtown.book.example.com" with base
// "book.example.com" yields "downtown".
func SubdomainFromHost(host, baseDomain string) (string, bool) {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	baseDomain = strings.ToLower(strings.TrimPrefix(baseDomain, "."))

	suffix := "." + baseDomain
	if baseDomain == "" || !strings.HasSuffix(host, suffix) {
		return "", false
	}

	sub := strings.TrimSuffix(host, suffix)
	if sub == "" || strings.Contains(sub, ".") {
		return "", false
	}
	return sub, true
}
