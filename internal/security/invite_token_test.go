package security

import (
	"encoding/base64"
	"testing"
)

func TestNewInviteToken(t *testing.T) {
	tok, hash, err := NewInviteToken()
	if err != nil {
		t.Fatalf("NewInviteToken: %v", err)
	}
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		t.Fatalf("token is not base64url: %v", err)
	}
	if len(raw) != InviteTokenBytes {
		t.Errorf("token entropy = %d bytes, want %d", len(raw), InviteTokenBytes)
	}
	if hash != HashInviteToken(tok) {
		t.Error("returned hash does not match HashInviteToken(token)")
	}
	if hash == tok {
		t.Error("hash must differ from the raw token")
	}
}

func TestNewInviteToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok, _, err := NewInviteToken()
		if err != nil {
			t.Fatalf("NewInviteToken: %v", err)
		}
		if seen[tok] {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[tok] = true
	}
}

func TestHashInviteToken(t *testing.T) {
	h1 := HashInviteToken("tok-1")
	if h1 != HashInviteToken("tok-1") {
		t.Error("hash is not deterministic")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64", len(h1))
	}
	if h1 == HashInviteToken("tok-2") {
		t.Error("different tokens produced the same hash")
	}
}

func TestInviteTokenMatches(t *testing.T) {
	stored := HashInviteToken("correct")
	if !InviteTokenMatches("correct", stored) {
		t.Error("matching token rejected")
	}
	if InviteTokenMatches("wrong", stored) {
		t.Error("wrong token accepted")
	}
	if InviteTokenMatches("correct", "") {
		t.Error("empty stored hash accepted")
	}
}
