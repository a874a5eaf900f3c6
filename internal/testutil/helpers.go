package testutil

import (
	"os"
	"testing"
)

// RequireCapture skips the test if the WIRETOP_CAPTURE_TEST environment variable
// is not set. This ensures that tests requiring real kernel capabilities
// (raw sockets, interfaces) are only run in the proper environment.
func RequireCapture(t *testing.T) {
	t.Helper()
	if os.Getenv("WIRETOP_CAPTURE_TEST") == "" {
		t.Skip("Skipping test: requires WIRETOP_CAPTURE_TEST environment")
	}
}
