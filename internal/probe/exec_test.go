package probe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/firefly-engineering/lan-address-gen/internal/system"
)

func TestExecProber_Alive(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("ping -c 1 -W 1 192.168.1.10", []byte("1 packets received"), nil)
	exec.DefaultResponse = system.MockResponse{Err: errors.New("exit status 1")}

	p := &ExecProber{Executor: exec, Timeout: time.Second}

	if !p.Alive(context.Background(), "192.168.1.10") {
		t.Error("Alive(192.168.1.10) = false, want true")
	}
	if p.Alive(context.Background(), "192.168.1.11") {
		t.Error("Alive(192.168.1.11) = true, want false")
	}

	if len(exec.Commands) != 2 {
		t.Fatalf("Commands = %d, want 2", len(exec.Commands))
	}
	if got := exec.Commands[1].Line(); got != "ping -c 1 -W 1 192.168.1.11" {
		t.Errorf("command = %q, want %q", got, "ping -c 1 -W 1 192.168.1.11")
	}
}

func TestExecProber_MissingUtility(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("ping", nil, errors.New(`exec: "ping": executable file not found in $PATH`))

	p := &ExecProber{Executor: exec}
	if p.Alive(context.Background(), "10.0.0.1") {
		t.Error("a probe that cannot run should report not alive")
	}
}

func TestExecProber_TimeoutRounding(t *testing.T) {
	tests := []struct {
		timeout time.Duration
		want    string
	}{
		{0, "ping -c 1 -W 1 10.0.0.1"},
		{300 * time.Millisecond, "ping -c 1 -W 1 10.0.0.1"},
		{1500 * time.Millisecond, "ping -c 1 -W 2 10.0.0.1"},
		{3 * time.Second, "ping -c 1 -W 3 10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.timeout.String(), func(t *testing.T) {
			exec := system.NewMockExecutor()
			p := &ExecProber{Executor: exec, Timeout: tt.timeout}
			p.Alive(context.Background(), "10.0.0.1")

			cmd, ok := exec.LastCommand()
			if !ok {
				t.Fatal("no command recorded")
			}
			if cmd.Line() != tt.want {
				t.Errorf("command = %q, want %q", cmd.Line(), tt.want)
			}
		})
	}
}

func TestExecProber_RejectsNonIPv4(t *testing.T) {
	exec := system.NewMockExecutor()
	p := &ExecProber{Executor: exec}

	for _, addr := range []string{"-f.1.2.3", "lan.1.2.3", "::1", ""} {
		if p.Alive(context.Background(), addr) {
			t.Errorf("Alive(%q) = true, want false", addr)
		}
	}
	if len(exec.Commands) != 0 {
		t.Errorf("no command should run for invalid addresses, got %d", len(exec.Commands))
	}
}

func TestExecProber_CanceledContext(t *testing.T) {
	exec := system.NewMockExecutor()
	p := &ExecProber{Executor: exec}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if p.Alive(ctx, "10.0.0.1") {
		t.Error("Alive with a canceled context should be false")
	}
}
