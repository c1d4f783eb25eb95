package swarmtest

import (
	"fmt"

	"github.com/verdictswarm/verdictswarm-contract/ledger"
	verdictprogram "github.com/verdictswarm/verdictswarm-contract/verdict"
	"go.uber.org/zap"
)

// runtimeEnv is the execution environment of one request. It implements
// verdictprogram.Runtime on top of the staged account views, so program
// mutations stay invisible until the request commits.
type runtimeEnv struct {
	ledger   *Ledger
	program  ledger.Address
	accounts []*ledger.Account
}

func (e *runtimeEnv) Rent() ledger.Rent { return e.ledger.Rent() }

func (e *runtimeEnv) Now() int64 { return e.ledger.Now() }

func (e *runtimeEnv) Log(msg string) {
	e.ledger.log.Info(msg, zap.Stringer("program", e.program))
}

// CreateAccount applies the account manager's slot creation rules to the
// staged views.
func (e *runtimeEnv) CreateAccount(prm verdictprogram.CreateAccountPrm, auth ledger.DerivedAuthority) error {
	if !e.staged(ledger.SystemProgram) {
		return fmt.Errorf("account manager %s is not in the request", ledger.SystemProgram)
	}
	if prm.Space > ledger.MaxAccountDataLen {
		return fmt.Errorf("requested %d bytes over the %d account cap", prm.Space, ledger.MaxAccountDataLen)
	}

	target := prm.Target
	if target.Lamports != 0 || len(target.Data) != 0 || !target.Owner.IsZero() {
		return fmt.Errorf("account %s: %w", target.Key, ledger.ErrAccountExists)
	}
	if !target.Writable {
		return fmt.Errorf("account %s is not writable", target.Key)
	}
	if !target.Signer && !auth.Authorizes(e.program, target.Key) {
		return fmt.Errorf("account %s: %w", target.Key, ledger.ErrMissingSignature)
	}

	funder := prm.Funder
	if !funder.Signer {
		return fmt.Errorf("funder %s: %w", funder.Key, ledger.ErrMissingSignature)
	}
	if !funder.Writable {
		return fmt.Errorf("funder %s is not writable", funder.Key)
	}
	if funder.Lamports < prm.Lamports {
		return fmt.Errorf("funder %s holds %d of %d lamports: %w",
			funder.Key, funder.Lamports, prm.Lamports, ledger.ErrInsufficientFunds)
	}

	funder.Lamports -= prm.Lamports
	target.Lamports += prm.Lamports
	target.Owner = prm.Owner
	target.Data = make([]byte, prm.Space)

	e.ledger.log.Debug("account created",
		zap.Stringer("account", target.Key),
		zap.Stringer("owner", prm.Owner),
		zap.Uint64("lamports", prm.Lamports),
		zap.Uint64("space", prm.Space))
	return nil
}

func (e *runtimeEnv) staged(addr ledger.Address) bool {
	for _, acc := range e.accounts {
		if acc.Key == addr {
			return true
		}
	}
	return false
}
