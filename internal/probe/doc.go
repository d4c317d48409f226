// Package probe answers whether a candidate address is already in use.
//
// A Prober reports liveness as a plain bool. Every operational failure (a
// missing ping binary, a socket that cannot be opened, a timeout) reads as
// "not alive", so callers never see probe errors.
//
// Two implementations are provided:
//
//	ExecProber - runs the system ping utility through a system.CommandExecutor
//	ICMPProber - sends a single ICMP echo request itself
//
// Both send one echo request and wait at most Timeout for a reply.
//
//	p, err := probe.New(probe.MethodExec, time.Second, system.DefaultExecutor())
//	if p.Alive(ctx, "192.168.1.20") { ... }
//
// Func adapts an ordinary function, which is what tests use:
//
//	stub := probe.Func(func(ctx context.Context, addr string) bool { return false })
package probe
