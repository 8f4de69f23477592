package ports

import "time"

// Claims is the verified content of an access token.
type Claims struct {
	SubjectID int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService interface {
	Issue(subjectID int64) (string, error)
	// Verify returns the claims of a valid token, or one of
	// domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid,
	// domain.ErrTokenExpired. There is no degraded-trust result.
	Verify(token string) (*Claims, error)
}
