package verdict

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// HashScanReport hashes a scan report into the scan hash used for
// derivation and storage. The canonical form is compact JSON with sorted
// object keys as encoding/json renders it, so any two users of these
// bindings agree on the verdict address. Other serializers space and number
// the same report differently; a digest computed elsewhere matches only if
// the producer emits these exact bytes.
func HashScanReport(report map[string]any) ([32]byte, error) {
	b, err := json.Marshal(report)
	if err != nil {
		return [32]byte{}, fmt.Errorf("canonicalize scan report: %w", err)
	}
	return sha256.Sum256(b), nil
}

// NewScanID returns a short random scan identifier, 12 hex characters.
func NewScanID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:6])
}
