package pretty

import (
	"bytes"
	"testing"
)

func TestIsColorEnabledModes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	if !IsColorEnabled("always", &buf) {
		t.Error("always mode should enable color")
	}
	if IsColorEnabled("never", &buf) {
		t.Error("never mode should disable color")
	}
	// A bytes.Buffer is not a TTY, so auto must disable color.
	if IsColorEnabled("auto", &buf) {
		t.Error("auto mode should disable color for non-TTY writer")
	}
}

func TestIsColorEnabledNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	if IsColorEnabled("auto", &buf) {
		t.Error("NO_COLOR should disable color in auto mode")
	}
	if !IsColorEnabled("always", &buf) {
		t.Error("always mode should override NO_COLOR")
	}
}
