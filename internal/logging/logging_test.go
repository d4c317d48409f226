package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Warn("socket refused", "network", "udp4")

	output := buf.String()
	for _, want := range []string{"lan-address-gen", "WARN", "socket refused", "network=udp4"} {
		if !strings.Contains(output, want) {
			t.Errorf("text output should contain %q, got: %s", want, output)
		}
	}
	if strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Errorf("text output should not be JSON, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, true, &buf)

	Debug("probed address", "addr", "192.168.1.1", "alive", true)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not a JSON record: %v (%s)", err, buf.String())
	}
	if record["level"] != "DEBUG" {
		t.Errorf("level = %v, want DEBUG", record["level"])
	}
	if record["msg"] != "probed address" {
		t.Errorf("msg = %v, want %q", record["msg"], "probed address")
	}
	if record["addr"] != "192.168.1.1" {
		t.Errorf("addr = %v, want %q", record["addr"], "192.168.1.1")
	}
}

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		json      bool
		wantDebug bool
	}{
		{"text", false, false, false},
		{"text verbose", true, false, true},
		{"json", false, true, false},
		{"json verbose", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Setup(tt.verbose, tt.json, &buf)

			if Verbose != tt.verbose {
				t.Errorf("Verbose = %v, want %v", Verbose, tt.verbose)
			}

			Debug("debug line")
			if got := strings.Contains(buf.String(), "debug line"); got != tt.wantDebug {
				t.Errorf("debug line written = %v, want %v (output: %s)", got, tt.wantDebug, buf.String())
			}
		})
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	logger := With("addr", "10.0.0.1")
	if logger == nil {
		t.Fatal("With() returned nil")
	}

	logger.Debug("no reply", "error", "timeout")

	output := buf.String()
	for _, want := range []string{"no reply", "addr=10.0.0.1", "error=timeout"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestSetup_NilWriter(t *testing.T) {
	// Falls back to stderr
	Setup(false, false, nil)

	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}

func TestUserOutput_Redirect(t *testing.T) {
	var out, errOut bytes.Buffer
	SetUserOutput(&out, &errOut)
	defer SetUserOutput(nil, nil)

	UserInfo("Using pattern: %s", "10")
	UserSuccess("Available address found: %s", "10.0.0.1")
	UserWarning("--%s has no effect without --ping", "timeout")

	stdout := out.String()
	if !strings.Contains(stdout, "Using pattern: 10") {
		t.Errorf("Expected info line on stdout, got: %s", stdout)
	}
	if !strings.Contains(stdout, "Available address found: 10.0.0.1") {
		t.Errorf("Expected success line on stdout, got: %s", stdout)
	}
	if strings.Contains(stdout, "no effect") {
		t.Errorf("Warning should not reach stdout, got: %s", stdout)
	}

	stderr := errOut.String()
	if !strings.Contains(stderr, "--timeout has no effect without --ping") {
		t.Errorf("Expected warning line on stderr, got: %s", stderr)
	}
}
