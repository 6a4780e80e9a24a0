package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// EmailDomainResolvable reports whether the domain of email has an MX or
// an address record. Lookups are bounded to two seconds.
func EmailDomainResolvable(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}
