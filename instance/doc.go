// Package instance reads query records from a text stream and writes the
// one-line answers.
//
// Input is a sequence of whitespace-delimited integers:
//
//	n limit                  header; "0 0" ends the stream
//	t(0,0) ... t(n-1,n-1)    n×n TimeMatrix, row-major
//	c(0,0) ... c(n-1,n-1)    n×n CostMatrix, row-major
//
// Line breaks carry no meaning. Each record yields one output line
// "<cost> <time>". Infeasible answers print a sentinel pair or fail,
// depending on the Encoder's InfeasiblePolicy.
//
// Errors are final: after ErrSyntax, ErrTruncated, ErrBadHeader or
// ErrTooLarge the Decoder stops, matching the "report and stop" contract of
// the command-line driver.
package instance
