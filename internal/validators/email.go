package validators

import (
	"net"
	"net/mail"
	"strings"
)

// EmailDomainChecker permite trocar a consulta DNS nos testes.
type EmailDomainChecker func(email string) bool

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

// AcceptAnyDomain desliga a checagem de DNS (EMAIL_DOMAIN_CHECK=false).
func AcceptAnyDomain(string) bool { return true }

func IsEmailSyntaxValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@")+1:], ".")
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
