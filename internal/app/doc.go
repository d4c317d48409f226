// Package app wires configuration, the command executor and the prober
// together for the CLI.
//
// Tests construct an App with options instead of touching the OS:
//
//	a := app.New(
//	    app.WithConfig(cfg),
//	    app.WithProber(probe.Func(func(ctx context.Context, addr string) bool { return false })),
//	)
//	addr, err := a.Generate("build-runner")
package app
