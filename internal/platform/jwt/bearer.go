package jwtmw

import "strings"

// AuthenticateHeader is the WWW-Authenticate challenge sent with 401 responses.
const AuthenticateHeader = "Bearer"

// BearerToken extracts the credentials from an "Authorization: Bearer <token>" header value.
// The scheme is matched case-insensitively.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", false
	}
	return token, true
}
