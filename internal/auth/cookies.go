package auth

import (
	"net/http"
	"os"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

func cookieDomain() string {
	return os.Getenv("COOKIE_DOMAIN")
}

func setAuthCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   cookieDomain(),
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func SetAccessCookie(w http.ResponseWriter, token string) {
	setAuthCookie(w, AccessTokenCookie, token, int(AccessTokenDuration.Seconds()))
}

func SetRefreshCookie(w http.ResponseWriter, token string) {
	setAuthCookie(w, RefreshTokenCookie, token, int(RefreshTokenDuration.Seconds()))
}

func ClearAuthCookies(w http.ResponseWriter) {
	setAuthCookie(w, AccessTokenCookie, "", -1)
	setAuthCookie(w, RefreshTokenCookie, "", -1)
}
