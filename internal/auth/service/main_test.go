package service

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies that no goroutines leak from token and key handling.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
