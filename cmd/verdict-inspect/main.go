// Command verdict-inspect derives verdict account addresses and decodes
// account data without touching a node.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/verdictswarm/verdictswarm-contract/idl"
	"github.com/verdictswarm/verdictswarm-contract/ledger"
	"github.com/verdictswarm/verdictswarm-contract/rpc/verdict"
	verdictprogram "github.com/verdictswarm/verdictswarm-contract/verdict"
)

func main() {
	programStr := flag.String("program", verdict.ProgramID, "Base58 address of the program deployment")
	scanHashHex := flag.String("scan-hash", "", "Hex encoded 32-byte scan hash to derive addresses for")
	token := flag.String("token", "", "Token address of a token verdict (use with -chain)")
	chain := flag.String("chain", "", "Chain name of a token verdict (use with -token)")
	decodeHex := flag.String("decode", "", "Hex encoded account data to decode")
	showInterface := flag.Bool("interface", false, "Print the program interface summary")

	flag.Parse()

	program, err := ledger.AddressFromString(*programStr)
	if err != nil {
		log.Fatal(fmt.Errorf("parse program address: %w", err))
	}

	switch {
	case *decodeHex != "":
		err = decode(*decodeHex)
	case *scanHashHex != "":
		err = derive(program, *scanHashHex, *token, *chain)
	case *showInterface:
		err = printInterface()
	default:
		log.Fatal("missing -scan-hash, -decode or -interface")
	}
	if err != nil {
		log.Fatal(err)
	}
}

func derive(program ledger.Address, scanHashHex, token, chain string) error {
	scanHash, err := parseScanHash(scanHashHex)
	if err != nil {
		return err
	}

	record, bump, err := verdict.RecordAddress(program, scanHash)
	if err != nil {
		return fmt.Errorf("derive record address: %w", err)
	}
	fmt.Printf("record address: %s (bump %d)\n", record, bump)

	if token == "" && chain == "" {
		return nil
	}

	addr, bump, err := verdict.VerdictAddress(program, token, chain, scanHash)
	if err != nil {
		return fmt.Errorf("derive verdict address: %w", err)
	}
	fmt.Printf("verdict address: %s (bump %d)\n", addr, bump)
	return nil
}

func decode(blobHex string) error {
	blob, err := hex.DecodeString(blobHex)
	if err != nil {
		return fmt.Errorf("parse account data: %w", err)
	}

	if v, err := verdictprogram.DecodeVerdict(blob); err == nil {
		fmt.Printf("token verdict\n")
		fmt.Printf("  authority:   %s\n", v.Authority)
		fmt.Printf("  token:       %s\n", v.TokenAddress)
		fmt.Printf("  chain:       %s\n", v.Chain)
		fmt.Printf("  score:       %d/%d\n", v.Score, verdictprogram.MaxScore)
		fmt.Printf("  grade:       %s\n", v.Grade)
		fmt.Printf("  agent count: %d\n", v.AgentCount)
		fmt.Printf("  tier:        %s\n", v.Tier)
		fmt.Printf("  timestamp:   %s\n", time.Unix(v.Timestamp, 0).UTC().Format(time.RFC3339))
		fmt.Printf("  scan hash:   %x\n", v.ScanHash)
		fmt.Printf("  bump:        %d\n", v.Bump)
		return nil
	}

	r, err := verdictprogram.DecodeRecord(blob)
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	fmt.Printf("record\n")
	fmt.Printf("  scan hash: %x\n", r.ScanHash)
	fmt.Printf("  payload:   %x\n", r.Payload)
	fmt.Printf("  kind:      0x%02x\n", r.Kind)
	fmt.Printf("  authority: %s\n", r.Authority)
	fmt.Printf("  bump:      %d\n", r.Bump)
	return nil
}

func printInterface() error {
	d, err := idl.Get()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", d.Name, d.Version)
	fmt.Printf("deployment: %s\n", d.Metadata.Address)
	for _, ins := range d.Instructions {
		fmt.Printf("instruction %s\n", ins.Name)
		for _, acc := range ins.Accounts {
			fmt.Printf("  account %s (mut=%t signer=%t)\n", acc.Name, acc.IsMut, acc.IsSigner)
		}
		for _, arg := range ins.Args {
			fmt.Printf("  arg %s\n", arg.Name)
		}
	}
	for _, e := range d.Errors {
		fmt.Printf("error %d %s: %s\n", e.Code, e.Name, e.Msg)
	}
	return nil
}

func parseScanHash(s string) ([32]byte, error) {
	var h [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("parse scan hash: %w", err)
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("scan hash is %d bytes, want %d", len(b), len(h))
	}
	copy(h[:], b)
	return h, nil
}
