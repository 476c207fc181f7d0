package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are lower-cased HTTP header names whose values are
// credentials. The request logging middleware consults IsSensitiveHeader so
// the header list and the masq field list below stay in one place.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
}

// sensitiveFields are attribute keys redacted wherever they appear, including
// nested inside groups and structs.
var sensitiveFields = []string{
	"password",
	"password_hash",
	"jwt_secret",
	"access_token",
	"token",
	"dsn",
}

// sensitivePrefixes catch variants such as "password_confirm" or
// "secret_key".
var sensitivePrefixes = []string{"password_", "secret", "api_key"}

// sensitiveValues match credentials that reached an unredacted attribute:
// bearer headers, raw HS256 tokens and the userinfo of a postgres DSN.
var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-z0-9\-._~+/]+=*`),
	regexp.MustCompile(`eyJ[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]+`),
	regexp.MustCompile(`(?i)postgres(ql)?://[^\s:/@]+:[^\s@]+@`),
}

// IsSensitiveHeader reports whether the named header must not be logged.
func IsSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if h == name {
			return true
		}
	}
	return false
}

// newRedactAttr builds the masq ReplaceAttr hook installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(sensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))
	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, p := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
