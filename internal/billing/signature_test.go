package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
)

func signManifest(dataID, requestID, ts, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	secret := "super-secret"
	v1 := signManifest("12345", "req-1", "1693526400", secret)
	header := "ts=1693526400,v1=" + v1

	if !VerifySignature(header, "req-1", "12345", secret) {
		t.Fatal("valid signature rejected")
	}
}

func TestVerifySignature_ToleratesSpacesBetweenParts(t *testing.T) {
	secret := "super-secret"
	v1 := signManifest("12345", "req-1", "1693526400", secret)
	header := "ts=1693526400, v1=" + v1

	if !VerifySignature(header, "req-1", "12345", secret) {
		t.Fatal("valid signature with spaces rejected")
	}
}

func TestVerifySignature_Invalid(t *testing.T) {
	secret := "super-secret"
	v1 := signManifest("12345", "req-1", "1693526400", secret)

	cases := []struct {
		name      string
		header    string
		requestID string
		dataID    string
		secret    string
	}{
		{"wrong secret", "ts=1693526400,v1=" + v1, "req-1", "12345", "other"},
		{"tampered data id", "ts=1693526400,v1=" + v1, "req-1", "99999", secret},
		{"tampered request id", "ts=1693526400,v1=" + v1, "req-2", "12345", secret},
		{"tampered ts", "ts=1693526500,v1=" + v1, "req-1", "12345", secret},
		{"missing v1", "ts=1693526400", "req-1", "12345", secret},
		{"missing ts", "v1=" + v1, "req-1", "12345", secret},
		{"empty header", "", "req-1", "12345", secret},
		{"empty secret", "ts=1693526400,v1=" + v1, "req-1", "12345", ""},
		{"garbage", "nonsense", "req-1", "12345", secret},
	}

	for _, tc := range cases {
		if VerifySignature(tc.header, tc.requestID, tc.dataID, tc.secret) {
			t.Fatalf("%s: signature accepted", tc.name)
		}
	}
}
