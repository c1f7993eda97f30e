package httpapi

import (
	"net"
	"net/http"
	"strings"
)

// clientOrigin is what the edge tells us about the caller. Both fields are
// best effort and only used for request logs.
type clientOrigin struct {
	IP      string
	Country string
}

var (
	clientIPHeaders      = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}
	clientCountryHeaders = []string{"Fly-Client-Country", "CF-IPCountry", "X-Vercel-IP-Country", "CloudFront-Viewer-Country"}
)

func resolveClientOrigin(r *http.Request) clientOrigin {
	origin := clientOrigin{Country: "ZZ"}
	for _, header := range clientIPHeaders {
		if ip := parseClientIP(r.Header.Get(header)); ip != "" {
			origin.IP = ip
			break
		}
	}
	if origin.IP == "" {
		origin.IP = parseClientIP(r.RemoteAddr)
	}
	for _, header := range clientCountryHeaders {
		if code, ok := countryCode(r.Header.Get(header)); ok {
			origin.Country = code
			break
		}
	}
	return origin
}

// parseClientIP takes the first hop of a forwarded list and strips any port.
func parseClientIP(raw string) string {
	value, _, _ := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	if parsed := net.ParseIP(value); parsed != nil {
		return parsed.String()
	}
	return ""
}

func countryCode(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "", false
	}
	return code, true
}
