// Package kusama holds the generic XCM instruction weights benchmarked for
// the Kusama relay chain runtime.
//
// generic.go is produced by `xcm-weights generate` from a benchmark result
// set and must not be edited by hand; regenerate it instead.
package kusama

//go:generate go run ../../../cmd/util/cmd/xcm-weights generate --input ../gen/testdata/kusama_generic.yaml --output generic.go --package kusama

import (
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights"
)

// NewWeightInfo returns the Kusama generic weight table, charging storage
// access at the cost reported by db.
func NewWeightInfo(db weights.DbWeightProvider) *weights.Table {
	return weights.MustNewTable(Records, Provenance, db)
}
