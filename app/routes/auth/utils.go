package auth

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTokenTTL  = 24 * time.Hour
	rememberTokenTTL = 30 * 24 * time.Hour
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

type JWTClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func getJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "assignmate-secret-key" // Default for development
	}
	return []byte(secret)
}

// GenerateJWT issues a token for the user. remember extends the lifetime
// from the default 24 hours to 30 days.
func GenerateJWT(userID string, remember bool) (string, error) {
	ttl := sessionTokenTTL
	if remember {
		ttl = rememberTokenTTL
	}
	claims := JWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "assignmate",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}

// setAuthCookie writes the JWT cookie. Without remember the cookie carries
// no expiry, so the browser drops it when the session ends.
func setAuthCookie(c *fiber.Ctx, token string, remember bool) {
	cookie := &fiber.Cookie{
		Name:        "jwt_token",
		Value:       token,
		HTTPOnly:    true,
		SameSite:    "Lax",
		SessionOnly: !remember,
	}
	if remember {
		cookie.Expires = time.Now().Add(rememberTokenTTL)
	}
	c.Cookie(cookie)
}

func clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
