package common

// AccessTokenCookieName is the cookie that carries the short-lived access
// token. The __Host- prefix enforces Secure + Path=/ + no Domain attribute.
const AccessTokenCookieName = "__Host-dc-access"

// RefreshTokenCookieName is the cookie that carries the rotating refresh
// token.
const RefreshTokenCookieName = "__Host-dc-refresh"
