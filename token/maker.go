package token

import "time"

// Maker is the contract for anything that can create and verify tokens.
// Keeping it an interface lets the auth middleware and tests swap the
// implementation without touching the rest of the application.
type Maker interface {
	CreateToken(email string, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
