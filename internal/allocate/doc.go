// Package allocate walks an address space until a prober reports a free address.
//
// Starting from a mapped address, FindAvailable probes each candidate in
// turn and advances with address.Increment while the candidate answers:
//
//	addr, _ := address.FromString("ci-runner", salt, "10")
//	res, err := allocate.FindAvailable(ctx, addr, prober)
//	// res.Address is the first candidate that did not answer
//
// Probes run strictly one after another, since each result decides the
// next candidate.
//
// # Termination
//
// Increment wraps around at the end of the space, so a space in which every
// address answers is walked forever. WithMaxAttempts bounds the walk and
// returns ErrExhausted instead; the default is unbounded. Canceling ctx also
// stops the walk.
package allocate
