package record

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainRun is the domain prefix for run identities.
// The version suffix allows a future change of hashed fields.
const DomainRun = "numint/run/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// RunID computes the content-addressed ID of a run.
// The result is hashed in its FormatResult text so NaN and ±Inf estimates
// still get an identity. Batch and Seq are excluded: the ID names what was
// computed, not when.
func RunID(kind string, params map[string]any, result float64) (string, error) {
	if params == nil {
		params = map[string]any{}
	}
	obj := map[string]any{
		"kind":   kind,
		"params": params,
		"result": FormatResult(result),
	}
	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("RunID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainRun, canonical), nil
}
