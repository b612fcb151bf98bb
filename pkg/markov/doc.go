/*
Package markov implements a variable-order Markov chain over any
comparable symbol type: building an immutable transition model from an
observed sequence, generating new sequences that preserve the source's
local n-gram statistics, and comparing symbol distributions.

Models are built once and are safe for concurrent read-only use.
Generation takes an explicit *rand.Rand so results are reproducible and
independent generations can run in parallel, each with its own stream.
*/
package markov
