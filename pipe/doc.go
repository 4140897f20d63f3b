// Package pipe composes functions into left-to-right pipelines.
//
// Pipe and TryPipe chain steps over a single type. Pipe2 to Pipe6 chain steps
// whose types change along the way. Partial1 to Partial3, Variadic and
// WithOptions bind trailing arguments of multi-argument functions so they fit
// into a pipeline as one-argument steps.
//
// Eval is the dynamic form: steps are any function value or a Call carrying
// extra arguments, checked with reflection at run time. Misused steps are
// reported as ErrInvalidStep; errors returned by the steps themselves pass
// through unchanged.
package pipe
