/*
Package verdictprogram contains the verdict registry program deployed on the
hosting ledger.

Swarm agents scan a subject (a token contract, a document, a binary) and
agree on a verdict. One agent then registers the verdict on the ledger so
that anyone can later verify what was decided about that exact subject. The
program stores each verdict in its own account at an address derived from
the scan hash, which makes the registry content-addressed: re-deriving the
address from a subject is enough to look its verdict up, and a second
registration for the same subject fails because the account already exists.

Two request forms are accepted. The fixed form packs a scan hash, a small
payload and a kind byte into 40 bytes and stores a 73-byte record. The
token-verdict form carries scoring fields for a token on a named chain and
stores a variable-size object. Both are write-once: the program never
updates or deletes an account it created.

# Request accounts

Every request names three accounts in order: the authority that signs and
funds the write, the verdict slot, and the account manager that allocates
it. The created account is funded to the storage exemption minimum, so it
lives forever.
*/
package verdictprogram

/*
Program storage model.

Record accounts, derived from ["v", scan_hash]:
 - 73 bytes at fixed offsets:
   [0]     bump seed
   [1:33]  scan hash
   [33:40] payload
   [40]    kind
   [41:73] authority

Token-verdict accounts, derived from ["verdict", token, chain, scan_hash]:
 - 8-byte account tag, then the Verdict fields in declaration order;
   strings are length-prefixed, integers little-endian. Account size is
   exactly the encoded size.
*/
