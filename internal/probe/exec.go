package probe

import (
	"context"
	"math"
	"net/netip"
	"strconv"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/lan-address-gen/internal/logging"
	"github.com/firefly-engineering/lan-address-gen/internal/system"
)

// pingCommand is the system utility used by ExecProber.
const pingCommand = "ping"

// startupGrace is added to the per-attempt deadline so a slow process start
// does not kill ping before its own -W timeout fires.
const startupGrace = time.Second

// ExecProber shells out to ping: one packet, Timeout seconds of wait.
type ExecProber struct {
	Executor system.CommandExecutor
	Timeout  time.Duration
}

// Alive reports whether ping exits successfully for addr.
func (p *ExecProber) Alive(ctx context.Context, addr string) bool {
	// Only plain IPv4 literals reach the command line.
	if ip, err := netip.ParseAddr(addr); err != nil || !ip.Is4() {
		logging.Debug("skipping probe of non-IPv4 address", "addr", addr)
		return false
	}

	args := p.args(addr)
	logging.Debug("probing address", "addr", addr, "command", shellquote.Join(append([]string{pingCommand}, args...)...))

	ctx, cancel := context.WithTimeout(ctx, p.timeout()+startupGrace)
	defer cancel()

	if _, err := p.Executor.Execute(ctx, pingCommand, args...); err != nil {
		logging.Debug("no reply", "addr", addr, "error", err)
		return false
	}
	return true
}

func (p *ExecProber) args(addr string) []string {
	wait := int(math.Ceil(p.timeout().Seconds()))
	return []string{"-c", "1", "-W", strconv.Itoa(max(wait, 1)), addr}
}

func (p *ExecProber) timeout() time.Duration {
	if p.Timeout <= 0 {
		return DefaultTimeout
	}
	return p.Timeout
}
