package middleware

import "strings"

// BearerToken extracts the token of a "Bearer <token>" Authorization value.
// The service never validates it; it is forwarded to the backend as is.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
