package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// #region record

// Record is one verified zero in an exchange artifact. RealPart is always
// 0.5 (the critical line); VerificationHash is the SHA-256 of the decimal
// expansion string, preserving source precision across tools.
type Record struct {
	Index            int64   `json:"index"`
	RealPart         float64 `json:"real_part"`
	ImaginaryPart    float64 `json:"imaginary_part"`
	VerificationHash string  `json:"verification_hash"`
}

// #endregion record

// #region build

// Build turns an ascending value sequence into indexed records,
// numbering from startIndex.
func Build(values []float64, startIndex int64) []Record {
	records := make([]Record, len(values))
	for i, v := range values {
		records[i] = Record{
			Index:            startIndex + int64(i),
			RealPart:         0.5,
			ImaginaryPart:    v,
			VerificationHash: HashValue(v),
		}
	}
	return records
}

// HashValue returns the SHA-256 hex digest of v's decimal expansion.
func HashValue(v float64) string {
	expansion := strconv.FormatFloat(v, 'g', -1, 64)
	sum := sha256.Sum256([]byte(expansion))
	return hex.EncodeToString(sum[:])
}

// #endregion build

// #region io

// WriteFile writes records as an indented JSON array artifact.
func WriteFile(path string, records []Record) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a JSON manifest artifact.
func ReadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return records, nil
}

// #endregion io

// #region verify

// Verify checks every record's hash against its stored value.
// Returns the indices of records whose hash does not match.
func Verify(records []Record) []int64 {
	var bad []int64
	for _, r := range records {
		if HashValue(r.ImaginaryPart) != r.VerificationHash {
			bad = append(bad, r.Index)
		}
	}
	return bad
}

// #endregion verify
