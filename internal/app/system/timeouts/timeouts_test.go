package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing || Short() != DefaultShort || Medium() != DefaultMedium || Long() != DefaultLong {
		t.Error("defaults not in effect after Reset")
	}
}

func TestConfigure(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Configure(Config{Ping: 100 * time.Millisecond, Long: time.Minute})

	if Ping() != 100*time.Millisecond {
		t.Errorf("Ping() = %v", Ping())
	}
	if Long() != time.Minute {
		t.Errorf("Long() = %v", Long())
	}
	// Zero values keep the current settings.
	if Short() != DefaultShort || Medium() != DefaultMedium {
		t.Error("zero values must not override existing settings")
	}
}
