// Package gen turns a benchmark result set into the Go source of a weight
// table.
package gen

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v2"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/xcm"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights"
)

// ResultSet is the output of one benchmark run of the generic XCM
// instructions.
type ResultSet struct {
	Provenance weights.Provenance `yaml:"provenance"`
	Weights    []Result           `yaml:"weights"`
}

// Result is the measured record of one instruction.
type Result struct {
	Name           string `yaml:"name"`
	weights.Record `yaml:",inline"`
}

// Load reads and validates a result set from a yaml file.
func Load(path string) (*ResultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read result set %s: %w", path, err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid result set %s: %w", path, err)
	}
	return rs, nil
}

// Parse decodes and validates a yaml result set.
func Parse(data []byte) (*ResultSet, error) {
	var rs ResultSet
	if err := yaml.UnmarshalStrict(data, &rs); err != nil {
		return nil, fmt.Errorf("could not decode result set: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Validate returns every problem in the result set: invalid provenance,
// unknown or duplicate instruction names, and instructions without a result.
func (rs *ResultSet) Validate() error {
	var result *multierror.Error

	if err := rs.Provenance.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid provenance: %w", err))
	}

	seen := make(map[xcm.Instruction]struct{}, len(rs.Weights))
	for _, r := range rs.Weights {
		i, err := xcm.ParseInstruction(r.Name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if _, dup := seen[i]; dup {
			result = multierror.Append(result, fmt.Errorf("duplicate result for %s", i.Name()))
			continue
		}
		seen[i] = struct{}{}
	}

	for _, i := range xcm.AllInstructions() {
		if _, ok := seen[i]; !ok {
			result = multierror.Append(result, fmt.Errorf("no result for %s", i.Name()))
		}
	}

	return result.ErrorOrNil()
}

// Records returns the results keyed by instruction. The result set must be
// valid.
func (rs *ResultSet) Records() (map[xcm.Instruction]weights.Record, error) {
	records := make(map[xcm.Instruction]weights.Record, len(rs.Weights))
	for _, r := range rs.Weights {
		i, err := xcm.ParseInstruction(r.Name)
		if err != nil {
			return nil, err
		}
		records[i] = r.Record
	}
	return records, nil
}

// Table builds a weight table from the result set.
func (rs *ResultSet) Table(db weights.DbWeightProvider) (*weights.Table, error) {
	records, err := rs.Records()
	if err != nil {
		return nil, err
	}
	return weights.NewTable(records, rs.Provenance, db)
}
