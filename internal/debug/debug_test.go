package debug

import "testing"

func TestSetDebug(t *testing.T) {
	defer SetDebug(false)

	SetDebug(true)
	if !IsEnabled() {
		t.Error("expected debug to be enabled")
	}

	SetDebug(false)
	if IsEnabled() {
		t.Error("expected debug to be disabled")
	}
}

func TestDebugDisabledIsSilent(t *testing.T) {
	SetDebug(false)
	// Must not panic or block when disabled.
	Debug("ignored %d", 1)
	DebugValue("key", "value")
}
