package ledger

// Account is a request-scoped view of a ledger slot handed to a program.
// Mutations made through it take effect only if the whole request succeeds.
type Account struct {
	// Key is the slot address.
	Key Address
	// Lamports is the slot balance in the smallest currency unit.
	Lamports uint64
	// Owner is the program allowed to mutate the slot's data.
	Owner Address
	// Data is the slot payload. Programs may resize it only through the
	// account-management runtime, not by reslicing.
	Data []byte
	// Signer is set when the request carries a valid signature for Key.
	Signer bool
	// Writable is set when the request marked the slot as mutable.
	Writable bool
}

// AccountMeta declares how a request touches one address.
type AccountMeta struct {
	Key      Address
	Signer   bool
	Writable bool
}

// Meta builds an AccountMeta in one expression.
func Meta(key Address, signer, writable bool) AccountMeta {
	return AccountMeta{Key: key, Signer: signer, Writable: writable}
}

// Instruction is one program invocation: the target program, the ordered
// account list it operates on and an opaque argument blob the program itself
// decodes.
type Instruction struct {
	Program  Address
	Accounts []AccountMeta
	Data     []byte
}
