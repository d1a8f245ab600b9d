package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads a configuration file from the given path.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
// - .facefixrc will try both YAML and HCL formats
// Values absent from the file keep their defaults.
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	base := filepath.Base(path)
	var cfg *Config

	// For .facefixrc files, try both YAML and HCL
	if base == ".facefixrc" {
		cfg, err = loadYAML(data)
		if err != nil {
			cfg, err = loadHCL(data, path)
		}
		if err != nil {
			return nil, errors.Errorf("parsing %s as YAML or HCL: %w", base, err)
		}
	} else {
		switch ext {
		case ".json":
			cfg, err = loadJSON(data)
		case ".yaml", ".yml":
			cfg, err = loadYAML(data)
		case ".hcl":
			cfg, err = loadHCL(data, path)
		default:
			return nil, errors.Errorf("unsupported config extension %q", ext)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// loadJSON loads a configuration from JSON data
func loadJSON(data []byte) (*Config, error) {
	cfg := Default()
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return cfg, nil
}

// loadYAML loads a configuration from YAML data
func loadYAML(data []byte) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return cfg, nil
}

// hclConfig is the HCL-side schema. Optional attributes decode into
// pointers so absent values keep the defaults.
type hclConfig struct {
	Root            *string  `hcl:"root,optional"`
	Recursive       *bool    `hcl:"recursive,optional"`
	ProcessDisabled *bool    `hcl:"process_disabled,optional"`
	Backup          *bool    `hcl:"backup,optional"`
	Exclude         []string `hcl:"exclude,optional"`
	MatchPolicy     *string  `hcl:"match_policy,optional"`
	Jobs            *int     `hcl:"jobs,optional"`
	NoColor         *bool    `hcl:"no_color,optional"`
}

// loadHCL loads a configuration from HCL data
func loadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := Default()
	if hclCfg.Root != nil {
		cfg.Root = *hclCfg.Root
	}
	if hclCfg.Recursive != nil {
		cfg.Recursive = *hclCfg.Recursive
	}
	if hclCfg.ProcessDisabled != nil {
		cfg.ProcessDisabled = *hclCfg.ProcessDisabled
	}
	if hclCfg.Backup != nil {
		cfg.Backup = *hclCfg.Backup
	}
	if len(hclCfg.Exclude) > 0 {
		cfg.Exclude = hclCfg.Exclude
	}
	if hclCfg.MatchPolicy != nil {
		cfg.MatchPolicy = *hclCfg.MatchPolicy
	}
	if hclCfg.Jobs != nil {
		cfg.Jobs = *hclCfg.Jobs
	}
	if hclCfg.NoColor != nil {
		cfg.NoColor = *hclCfg.NoColor
	}
	return cfg, nil
}
