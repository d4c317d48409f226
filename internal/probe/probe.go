package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/firefly-engineering/lan-address-gen/internal/system"
)

// DefaultTimeout bounds a single probe attempt.
const DefaultTimeout = time.Second

// Prober checks whether a host answers at a dotted-quad address.
type Prober interface {
	Alive(ctx context.Context, addr string) bool
}

// Func adapts an ordinary function to the Prober interface.
type Func func(ctx context.Context, addr string) bool

// Alive calls f(ctx, addr).
func (f Func) Alive(ctx context.Context, addr string) bool {
	return f(ctx, addr)
}

// Method selects a Prober implementation.
type Method string

const (
	MethodExec Method = "exec"
	MethodICMP Method = "icmp"
)

// ParseMethod validates a method name; the empty string selects MethodExec.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case "", MethodExec:
		return MethodExec, nil
	case MethodICMP:
		return MethodICMP, nil
	default:
		return "", fmt.Errorf("unknown probe method %q (use exec or icmp)", s)
	}
}

// New builds the Prober for method. A non-positive timeout means DefaultTimeout.
func New(method Method, timeout time.Duration, exec system.CommandExecutor) (Prober, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	switch method {
	case "", MethodExec:
		if exec == nil {
			exec = system.DefaultExecutor()
		}
		return &ExecProber{Executor: exec, Timeout: timeout}, nil
	case MethodICMP:
		return &ICMPProber{Timeout: timeout}, nil
	default:
		return nil, fmt.Errorf("unknown probe method %q", method)
	}
}
