package otp

import (
	"testing"
	"time"

	libotp "github.com/pquerna/otp"
)

const testSecret = "JBSWY3DPEHPK3PXP" // base32, test-only

func TestValidateCurrentStepOnly(t *testing.T) {
	o := NewTOTP(30, 0, libotp.DigitsSix)
	at := time.Date(2025, 6, 1, 12, 0, 15, 0, time.UTC)

	code, err := o.GenerateCode(testSecret, at)
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}

	if !o.Validate(code, testSecret, at) {
		t.Fatal("expected code to be valid at the same instant")
	}

	// with skew 0, neighbouring steps must be rejected
	if o.Validate(code, testSecret, at.Add(30*time.Second)) {
		t.Error("expected code to be invalid one step later")
	}
	if o.Validate(code, testSecret, at.Add(-30*time.Second)) {
		t.Error("expected code to be invalid one step earlier")
	}
}

func TestValidateWithSkewWindow(t *testing.T) {
	o := NewTOTP(30, 1, libotp.DigitsSix)
	at := time.Date(2025, 6, 1, 12, 0, 15, 0, time.UTC)

	code, err := o.GenerateCode(testSecret, at)
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}

	if !o.Validate(code, testSecret, at.Add(30*time.Second)) {
		t.Error("expected code to be valid one step later with skew 1")
	}
	if o.Validate(code, testSecret, at.Add(90*time.Second)) {
		t.Error("expected code to be invalid outside the skew window")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	o := NewTOTP(0, 0, libotp.DigitsSix)

	if o.Validate("000000", testSecret, time.Now()) && o.Validate("999999", testSecret, time.Now()) {
		t.Error("two distinct codes cannot both be valid in one step")
	}
	if o.Validate("not-a-code", testSecret, time.Now()) {
		t.Error("expected non-numeric code to be rejected")
	}
}
