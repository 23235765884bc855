// Package config loads calculator settings from YAML files and
// validates them against an embedded CUE schema.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/cantor/internal/budget"
	mapping "github.com/roach88/cantor/internal/embed"
)

//go:embed schema.cue
var schemaCUE string

// Scales mirrors mapping.Scales with serialization tags.
type Scales struct {
	Add  float64 `yaml:"add" json:"add"`
	Mult float64 `yaml:"mult" json:"mult"`
	Exp  float64 `yaml:"exp" json:"exp"`
	Tet  float64 `yaml:"tet" json:"tet"`
}

// Config is the full calculator configuration.
type Config struct {
	OperationBudget int    `yaml:"operation_budget" json:"operation_budget"`
	SimplifyBudget  int    `yaml:"simplify_budget" json:"simplify_budget"`
	InverseDepth    int    `yaml:"inverse_depth" json:"inverse_depth"`
	HistoryPath     string `yaml:"history_path" json:"history_path"`
	Scales          Scales `yaml:"scales" json:"scales"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	s := mapping.DefaultScales()
	return Config{
		OperationBudget: budget.DefaultLimit,
		SimplifyBudget:  60,
		InverseDepth:    mapping.DefaultMaxDepth,
		HistoryPath:     "cantor_history.db",
		Scales:          Scales{Add: s.Add, Mult: s.Mult, Exp: s.Exp, Tet: s.Tet},
	}
}

// Embedding converts the serialized scales into the mapping form.
func (c Config) Embedding() mapping.Scales {
	return mapping.Scales{Add: c.Scales.Add, Mult: c.Scales.Mult, Exp: c.Scales.Exp, Tet: c.Scales.Tet}
}

// ValidationError reports a configuration that parsed but violates the
// schema.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

// Load reads a YAML configuration file over the defaults. Unknown keys
// are rejected, and the merged result is validated against the schema.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes over the defaults and validates.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks a configuration against the embedded CUE schema.
func Validate(c Config) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return fmt.Errorf("config schema has no #Config definition")
	}
	unified := def.Unify(ctx.Encode(c))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}
