/*
Package ledger models the boundary of the host chain as seen by VerdictSwarm
programs and clients: account addresses and their base58 encoding, derivation
of program-owned addresses, runtime account views, the request schema and the
rent parameters that price account storage.

The host chain identifies accounts by 32-byte ed25519 public keys. Addresses
owned by a program are not public keys at all: they are produced by
[FindProgramAddress], which searches for a digest that does not decode as a
point on the ed25519 curve, so no private key for such an address can exist.
The seed tuple that produced an address doubles as its signing authority, see
[DerivedAuthority].

Everything in this package is deterministic and side-effect free. Chain state
lives behind the runtime executing a program; an in-process implementation
suitable for tests is provided by the swarmtest package.
*/
package ledger
