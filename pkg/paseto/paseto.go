package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
)

// Claims is the decoded session token payload. CompanyID is zero for the
// super admin, who is not scoped to a tenant.
type Claims struct {
	UserID    primitive.ObjectID `json:"user_id"`
	CompanyID primitive.ObjectID `json:"company_id"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
}

const tokenTTL = 24 * time.Hour

var (
	pasetoInstance = paseto.NewV2()
	symmetricKey   []byte
)

// Init decodes and installs the v2.local symmetric key. Must be called once
// at startup before tokens are issued or validated.
func Init(secretBase64 string) error {
	decoded, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		decoded, err = base64.StdEncoding.DecodeString(secretBase64)
		if err != nil {
			return fmt.Errorf("PASETO secret is not valid base64: %w", err)
		}
	}
	if len(decoded) != 32 {
		return fmt.Errorf("PASETO secret must decode to exactly 32 bytes, got %d", len(decoded))
	}
	symmetricKey = decoded
	return nil
}

// GenerateToken issues a session token for a console user.
func GenerateToken(user *models.User) (string, error) {
	now := time.Now()

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: now.Add(tokenTTL),
		NotBefore:  now,
	}
	token.Set("user_id", user.ID.Hex())
	token.Set("company_id", user.CompanyID.Hex())
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return pasetoInstance.Encrypt(symmetricKey, token, "")
}

// ValidateToken decrypts and validates a session token.
func ValidateToken(tokenString string) (*Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := pasetoInstance.Decrypt(tokenString, symmetricKey, &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}
	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	userID, err := primitive.ObjectIDFromHex(token.Get("user_id"))
	if err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}
	// The super admin carries the zero ObjectID here.
	companyID, err := primitive.ObjectIDFromHex(token.Get("company_id"))
	if err != nil {
		return nil, fmt.Errorf("invalid company_id claim: %w", err)
	}

	return &Claims{
		UserID:    userID,
		CompanyID: companyID,
		Email:     token.Get("email"),
		Role:      token.Get("role"),
	}, nil
}
