package paseto

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
)

func initTestKey(t *testing.T) {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	if err := Init(base64.URLEncoding.EncodeToString(key)); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	initTestKey(t)

	user := &models.User{
		ID:        primitive.NewObjectID(),
		CompanyID: primitive.NewObjectID(),
		Email:     "admin@acme.test",
		Role:      models.RoleCompanyAdmin,
	}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("claims.UserID = %v, want %v", claims.UserID, user.ID)
	}
	if claims.CompanyID != user.CompanyID {
		t.Errorf("claims.CompanyID = %v, want %v", claims.CompanyID, user.CompanyID)
	}
	if claims.Email != user.Email || claims.Role != user.Role {
		t.Errorf("claims = %+v, want email/role from user", claims)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	initTestKey(t)

	if _, err := ValidateToken("v2.local.not-a-real-token"); err == nil {
		t.Error("ValidateToken() accepted a malformed token")
	}
}

func TestInitRejectsShortKey(t *testing.T) {
	if err := Init(base64.URLEncoding.EncodeToString([]byte("short"))); err == nil {
		t.Error("Init() accepted a key shorter than 32 bytes")
	}
}
