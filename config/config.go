// Package config loads boundscheck.conf, a per-directory TOML file that
// tunes the analyzer without touching code, in the same up-the-tree
// override style staticcheck.conf uses: a config found in a package's own
// directory overrides only the fields it explicitly sets, falling back to
// whatever an ancestor directory (or the built-in default) supplies.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable knobs of the bounds checker.
type Config struct {
	// MaxPasses bounds the number of times the fixed point engine will
	// revisit a function's blocks before giving up and reporting whatever
	// it has, guarding against a pathological CFG that never stabilizes.
	MaxPasses int `toml:"max_passes"`

	// FilterGenerated skips files that facts.Generated recognizes as
	// machine-generated.
	FilterGenerated bool `toml:"filter_generated"`

	// ReportInfeasibleBranches additionally reports branches the interval
	// analysis proves can never be taken, not just out-of-bounds indexing.
	ReportInfeasibleBranches bool `toml:"report_infeasible_branches"`
}

var Default = Config{
	MaxPasses:                1000,
	FilterGenerated:          true,
	ReportInfeasibleBranches: false,
}

const fileName = "boundscheck.conf"

type layer struct {
	cfg  Config
	meta toml.MetaData
}

// Load walks from dir up to the filesystem root collecting every
// boundscheck.conf it finds, then merges them field-by-field: a value set
// by a config closer to dir wins over one set by an ancestor, and the
// built-in Default fills in anything no config on the path set at all.
func Load(dir string) (Config, error) {
	var layers []layer

	for {
		f, err := os.Open(filepath.Join(dir, fileName))
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, err
			}
		} else {
			var c Config
			meta, decErr := toml.NewDecoder(f).Decode(&c)
			f.Close()
			if decErr != nil {
				return Config{}, decErr
			}
			layers = append(layers, layer{c, meta})
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	cfg := Default
	// layers were collected nearest-first; apply furthest-first so that
	// the nearest directory's explicit settings win last.
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if l.meta.IsDefined("max_passes") {
			cfg.MaxPasses = l.cfg.MaxPasses
		}
		if l.meta.IsDefined("filter_generated") {
			cfg.FilterGenerated = l.cfg.FilterGenerated
		}
		if l.meta.IsDefined("report_infeasible_branches") {
			cfg.ReportInfeasibleBranches = l.cfg.ReportInfeasibleBranches
		}
	}
	return cfg, nil
}
