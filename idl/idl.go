/*
Package idl embeds the interface definition of the verdict registry program
and provides typed access to it.

The document follows the serialization framework's interface format, so
third-party tooling that consumes such definitions can drive the program
without this module.
*/
package idl

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/verdictswarm/verdictswarm-contract/ledger"
)

//go:embed verdictswarm_onchain.json
var document []byte

var errInvalidDocument = errors.New("invalid interface document")

// Document is the parsed interface definition.
type Document struct {
	Version      string        `json:"version"`
	Name         string        `json:"name"`
	Instructions []Instruction `json:"instructions"`
	Accounts     []Account     `json:"accounts"`
	Errors       []Error       `json:"errors"`
	Metadata     Metadata      `json:"metadata"`
}

// Instruction describes one callable program operation.
type Instruction struct {
	Name     string        `json:"name"`
	Accounts []AccountMeta `json:"accounts"`
	Args     []Field       `json:"args"`
}

// AccountMeta describes one account an instruction touches.
type AccountMeta struct {
	Name     string `json:"name"`
	IsMut    bool   `json:"isMut"`
	IsSigner bool   `json:"isSigner"`
}

// Account describes a stored object layout.
type Account struct {
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

// AccountType is the structural part of a stored object description.
type AccountType struct {
	Kind   string  `json:"kind"`
	Fields []Field `json:"fields"`
}

// Field is a named typed slot. Type is either a primitive name in quotes or
// a composite descriptor object, kept raw for the caller to interpret.
type Field struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

// Error describes one program error code.
type Error struct {
	Code int    `json:"code"`
	Name string `json:"name"`
	Msg  string `json:"msg"`
}

// Metadata carries deployment information.
type Metadata struct {
	Address string `json:"address"`
}

// Get parses the embedded interface definition.
func Get() (Document, error) {
	return parse(document)
}

func parse(b []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return d, fmt.Errorf("%w: %w", errInvalidDocument, err)
	}
	if d.Name == "" || len(d.Instructions) == 0 {
		return d, fmt.Errorf("%w: missing name or instructions", errInvalidDocument)
	}
	if _, err := d.Program(); err != nil {
		return d, err
	}
	return d, nil
}

// Program returns the deployment address the document names.
func (d Document) Program() (ledger.Address, error) {
	a, err := ledger.AddressFromString(d.Metadata.Address)
	if err != nil {
		return ledger.Address{}, fmt.Errorf("%w: deployment address: %w", errInvalidDocument, err)
	}
	return a, nil
}

// Instruction looks an instruction up by name.
func (d Document) Instruction(name string) (Instruction, bool) {
	for i := range d.Instructions {
		if d.Instructions[i].Name == name {
			return d.Instructions[i], true
		}
	}
	return Instruction{}, false
}
