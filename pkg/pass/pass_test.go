package pass_test

import (
	"slot_backend/pkg/pass"
	"testing"
)

func TestPassword(t *testing.T) {
	hash, err := pass.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("password stored as is")
	}
	if !pass.VerifyPassword(hash, "hunter2") {
		t.Error("correct password rejected")
	}
	if pass.VerifyPassword(hash, "hunter3") {
		t.Error("wrong password accepted")
	}
}
