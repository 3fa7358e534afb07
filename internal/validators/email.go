package validators

import (
	"net"
	"strings"
)

func IsEmail(identifier string) bool {
	at := strings.LastIndex(identifier, "@")
	return at > 0 && at < len(identifier)-1
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
