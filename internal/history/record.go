package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Record kinds, one per CLI operation that produces a result.
const (
	KindEval     = "eval"
	KindCompare  = "compare"
	KindSimplify = "simplify"
	KindLocate   = "locate"
)

// domainRecord separates record hashes from any other sha256 use.
// The version suffix leaves room for algorithm migration.
const domainRecord = "cantor/record/v1"

// timeLayout keeps a fixed-width fraction so the stored strings sort
// lexicographically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record is one completed calculation.
type Record struct {
	ID        string
	Kind      string
	Input     string
	Output    string
	StepsUsed int
	Hash      string
	CreatedAt time.Time
}

// NewRecord builds a record with a creation-ordered ID and a content
// hash. Input and output are NFC normalized so visually identical text
// hashes identically.
func NewRecord(kind, input, output string, stepsUsed int) (Record, error) {
	input = norm.NFC.String(input)
	output = norm.NFC.String(output)

	hash, err := contentHash(kind, input, output)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Kind:      kind,
		Input:     input,
		Output:    output,
		StepsUsed: stepsUsed,
		Hash:      hash,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// contentHash is SHA256(domain + 0x00 + canonical JSON of the logical
// content). The null separator keeps the domain/data boundary
// unambiguous; ID, steps, and timestamp are excluded so the hash
// identifies what was computed, not when.
func contentHash(kind, input, output string) (string, error) {
	payload, err := json.Marshal(struct {
		Kind   string `json:"kind"`
		Input  string `json:"input"`
		Output string `json:"output"`
	}{kind, input, output})
	if err != nil {
		return "", fmt.Errorf("marshal record content: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(domainRecord))
	h.Write([]byte{0x00})
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil)), nil
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
