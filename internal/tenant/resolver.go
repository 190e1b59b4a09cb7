// Package tenant derives a tenant identifier from an inbound request host.
// One deployment serves many shops; the leftmost host label tells them apart.
package tenant

import (
	"regexp"
	"strings"
)

// DefaultTenant is returned for hosts that carry no usable subdomain:
// loopback names, bare IP addresses and hosts with fewer than three
// dot-separated labels. It exists so local development always lands on
// a working shop.
const DefaultTenant = "minimal"

// HeaderTenantID carries a pre-resolved tenant id set by an upstream
// edge layer. When present on a request it is authoritative and the
// host is not consulted.
const HeaderTenantID = "X-Tenant-ID"

var ipv4Pattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)

// Resolve maps a request host to a tenant id. It is total: unrecognized
// or malformed hosts resolve to DefaultTenant rather than failing.
func Resolve(host string) string {
	return ResolveWithDefault(host, DefaultTenant)
}

// ResolveWithDefault is Resolve with a caller-chosen fallback tenant,
// used when the deployment configures a different development shop.
func ResolveWithDefault(host, fallback string) string {
	hostname := host
	if i := strings.IndexByte(hostname, ':'); i >= 0 {
		hostname = hostname[:i]
	}

	labels := strings.Split(hostname, ".")
	if len(labels) < 3 || isLoopback(hostname) || ipv4Pattern.MatchString(hostname) {
		return fallback
	}
	return labels[0]
}

func isLoopback(hostname string) bool {
	return hostname == "localhost" ||
		strings.HasPrefix(hostname, "127.0.0.1") ||
		strings.HasPrefix(hostname, "0.0.0.0")
}
