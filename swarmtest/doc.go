/*
Package swarmtest provides an in-memory ledger for testing verdict registry
programs without a deployed chain.

The harness models the parts of the hosting ledger the program can observe:
accounts with balances, owners and data, request signatures, storage pricing,
a clock, and atomic request execution. A request either commits all of its
account mutations or none of them.

Typical use creates an Executor bound to a program, funds a signer and
submits requests built with the rpc bindings:

	e := swarmtest.NewExecutor(t, programID, verdictprogram.Process)
	acc := e.NewSigner(t, 10_000_000_000)
	e.Invoke(t, instr, acc)
*/
package swarmtest
