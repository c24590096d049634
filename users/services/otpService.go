package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/redis/go-redis/v9"
)

// TOTPSetup carries everything the dashboard needs to enroll an
// authenticator app
type TOTPSetup struct {
	Secret    string
	QRCodeURL string
	ManualKey string
}

// OtpService handles the second factor of the admin login flow: TOTP code
// validation plus the short-lived pre-token that bridges the password step
// and the code step.
type OtpService interface {
	GeneratePreToken(userID string) (string, error)
	ValidatePreToken(preToken string, userID string) bool
	GenerateTOTPSecret(email string) (*TOTPSetup, error)
	ValidateTOTPCode(secret, code string) bool
}

type otpService struct {
	redisClient *redis.Client
	ctx         context.Context
}

func NewOtpService(redisClient *redis.Client, ctx context.Context) OtpService {
	return &otpService{
		redisClient: redisClient,
		ctx:         ctx,
	}
}

const preTokenTTL = 5 * time.Minute

// GeneratePreToken stores a one-shot token in Redis marking that the
// password step succeeded for this user.
func (os *otpService) GeneratePreToken(userID string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	preToken := hex.EncodeToString(buf)

	key := "pre_token:" + preToken
	if err := os.redisClient.Set(os.ctx, key, userID, preTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store pre-token: %w", err)
	}
	return preToken, nil
}

// ValidatePreToken consumes the pre-token; a token is valid exactly once
func (os *otpService) ValidatePreToken(preToken string, userID string) bool {
	if preToken == "" || userID == "" {
		return false
	}

	key := "pre_token:" + preToken
	stored, err := os.redisClient.Get(os.ctx, key).Result()
	if err != nil || stored != userID {
		return false
	}

	os.redisClient.Del(os.ctx, key)
	return true
}

func (os *otpService) GenerateTOTPSecret(email string) (*TOTPSetup, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Photo Portfolio Admin",
		AccountName: email,
	})
	if err != nil {
		return nil, err
	}

	return &TOTPSetup{
		Secret:    key.Secret(),
		QRCodeURL: key.URL(),
		ManualKey: key.Secret(),
	}, nil
}

func (os *otpService) ValidateTOTPCode(secret, code string) bool {
	if secret == "" || code == "" {
		return false
	}
	return totp.Validate(code, secret)
}
