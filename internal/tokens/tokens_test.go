package tokens

import (
	"context"
	"strings"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/settleview/settleview-api/internal/config"
	"github.com/settleview/settleview-api/internal/sessions"
	"github.com/settleview/settleview-api/internal/users"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	return cfg
}

func TestGenerateAccessToken_ValidAndClaims(t *testing.T) {
	cfg := testConfig("test-secret-32-bytes-should-be-long-enough")
	u := &users.User{Sub: "1", Name: "John Doe", Email: "john@example.com", Role: users.RoleClient}

	tokenStr, err := GenerateAccessToken(cfg, u, 2*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	ver := NewVerifier(cfg.JWT.Secret, nil)
	tok, err := ver.Verify(context.Background(), tokenStr)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	var claims map[string]interface{}
	if err := tok.Claims(&claims); err != nil {
		t.Fatalf("claims error: %v", err)
	}
	if claims["sub"] != "1" {
		t.Fatalf("unexpected sub claim: %v", claims["sub"])
	}
	if claims["role"] != users.RoleClient {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
	if claims["email"] != "john@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
}

func TestVerify_Expiry(t *testing.T) {
	cfg := testConfig("another-secret-32-bytes-longgggg")
	u := &users.User{Sub: "u2", Name: "X", Email: "x@x", Role: users.RoleClient}
	tokenStr, err := GenerateAccessToken(cfg, u, 1*time.Second)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	// wait for expiry
	time.Sleep(2 * time.Second)
	if _, err := NewVerifier(cfg.JWT.Secret, nil).Verify(context.Background(), tokenStr); err == nil {
		t.Fatalf("expected verification to fail after expiry")
	}
}

func TestVerify_WrongSecretFails(t *testing.T) {
	cfg := testConfig("secret-one-32-bytes-xxxxxxxxxxxxxxxx")
	u := &users.User{Sub: "u3", Name: "Bob", Email: "bob@example.com", Role: users.RoleClient}
	tokenStr, err := GenerateAccessToken(cfg, u, 2*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	if _, err := NewVerifier("different-secret-xxxxxxxxxxxxxxxx", nil).Verify(context.Background(), tokenStr); err == nil {
		t.Fatalf("expected verification to fail with wrong secret")
	}
}

func TestVerify_Malformed(t *testing.T) {
	if _, err := NewVerifier("x", nil).Verify(context.Background(), "not.a.jwt"); err == nil {
		t.Fatalf("expected verification to fail for malformed token")
	}
}

// Rejected when alg=none (unsigned token)
func TestVerify_AlgNoneRejected(t *testing.T) {
	headerEnc := new(jwt.Token).EncodeSegment([]byte(`{"alg":"none"}`))
	payloadEnc := new(jwt.Token).EncodeSegment([]byte(`{"sub":"u-none","exp":9999999999}`))
	tok := headerEnc + "." + payloadEnc + "."
	if _, err := NewVerifier("x", nil).Verify(context.Background(), tok); err == nil {
		t.Fatalf("expected alg=none token to be rejected")
	}
}

// Tampering with payload must fail signature verification
func TestVerify_TamperedPayload(t *testing.T) {
	cfg := testConfig("tamper-test-secret-32-bytes-xxxxxxx")
	u := &users.User{Sub: "user-t", Name: "Tamper", Email: "t@example.com", Role: users.RoleClient}
	tokenStr, err := GenerateAccessToken(cfg, u, 5*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token parts")
	}
	payloadBytes, _ := jwt.NewParser().DecodeSegment(parts[1])
	parts[1] = new(jwt.Token).EncodeSegment([]byte(strings.Replace(string(payloadBytes), "user-t", "attacker", 1)))
	tampered := strings.Join(parts, ".")
	if _, err := NewVerifier(cfg.JWT.Secret, nil).Verify(context.Background(), tampered); err == nil {
		t.Fatalf("expected signature verification to fail for tampered token")
	}
}

func TestVerify_RevokedToken(t *testing.T) {
	m, err := mr.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer m.Close()
	bl := sessions.NewBlacklist(redis.NewClient(&redis.Options{Addr: m.Addr()}))

	cfg := testConfig("revocation-secret-32-bytes-xxxxxxxx")
	u := &users.User{Sub: "u4", Name: "Eve", Email: "eve@example.com", Role: users.RoleClient}
	tokenStr, err := GenerateAccessToken(cfg, u, 5*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	ver := NewVerifier(cfg.JWT.Secret, bl)
	if _, err := ver.Verify(context.Background(), tokenStr); err != nil {
		t.Fatalf("expected valid token before revocation: %v", err)
	}

	if err := bl.Add(context.Background(), tokenStr, 5*time.Minute); err != nil {
		t.Fatalf("blacklist add: %v", err)
	}
	if _, err := ver.Verify(context.Background(), tokenStr); err != ErrTokenRevoked {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}
