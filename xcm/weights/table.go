package weights

import (
	"fmt"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
	"github.com/Bullrich/polkadot-fellows-runtimes/model/xcm"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/errors"
)

// Table maps every dispatchable instruction to its benchmarked record and
// combines records with the db weight of the configured provider.
//
// A Table is immutable once constructed and safe for concurrent use, provided
// the DbWeightProvider is.
type Table struct {
	records    []Record
	provenance Provenance
	db         DbWeightProvider
}

var _ WeightInfo = (*Table)(nil)

// NewTable constructs a Table. records must hold exactly one entry for every
// instruction in xcm.AllInstructions(); otherwise an IncompleteTableError
// naming every missing and unexpected entry is returned.
func NewTable(records map[xcm.Instruction]Record, provenance Provenance, db DbWeightProvider) (*Table, error) {
	if db == nil {
		return nil, fmt.Errorf("db weight provider must not be nil")
	}

	var missing, extra []string
	for _, i := range xcm.AllInstructions() {
		if _, ok := records[i]; !ok {
			missing = append(missing, i.Name())
		}
	}
	for i := range records {
		if !i.Valid() {
			extra = append(extra, i.Name())
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		return nil, errors.NewIncompleteTableError(missing, extra)
	}

	t := &Table{
		records:    make([]Record, xcm.Count()),
		provenance: provenance,
		db:         db,
	}
	for i, r := range records {
		r.Storage = append([]StorageAccess(nil), r.Storage...)
		t.records[i] = r
	}
	t.provenance.Command = append([]string(nil), provenance.Command...)

	return t, nil
}

// MustNewTable is like NewTable but panics on error. It is meant for
// generated tables, which are checked for completeness when rendered.
func MustNewTable(records map[xcm.Instruction]Record, provenance Provenance, db DbWeightProvider) *Table {
	t, err := NewTable(records, provenance, db)
	if err != nil {
		panic(err)
	}
	return t
}

// WithDbWeight returns a copy of the table that reads storage costs from db.
func (t *Table) WithDbWeight(db DbWeightProvider) *Table {
	if db == nil {
		panic("db weight provider must not be nil")
	}
	c := *t
	c.db = db
	return &c
}

// Weight returns the total weight of instruction i. It panics if i is not a
// member of the instruction set: asking for one is a programming error.
func (t *Table) Weight(i xcm.Instruction) weight.Weight {
	return t.record(i).Weight(t.db.DbWeight())
}

// Weights returns the total weight of every instruction.
func (t *Table) Weights() map[xcm.Instruction]weight.Weight {
	db := t.db.DbWeight()
	all := xcm.AllInstructions()
	out := make(map[xcm.Instruction]weight.Weight, len(all))
	for _, i := range all {
		out[i] = t.records[i].Weight(db)
	}
	return out
}

// Record returns the benchmarked record of instruction i. It panics if i is
// not a member of the instruction set.
func (t *Table) Record(i xcm.Instruction) Record {
	r := t.record(i)
	r.Storage = append([]StorageAccess(nil), r.Storage...)
	return r
}

func (t *Table) record(i xcm.Instruction) Record {
	if !i.Valid() {
		panic(fmt.Sprintf("no weight record for %s", i))
	}
	return t.records[i]
}

// Instructions returns the instructions covered by the table.
func (t *Table) Instructions() []xcm.Instruction {
	return xcm.AllInstructions()
}

// Provenance returns the description of the benchmark run the table was
// generated from.
func (t *Table) Provenance() Provenance {
	p := t.provenance
	p.Command = append([]string(nil), p.Command...)
	return p
}

// DbWeight returns the db weight currently in effect.
func (t *Table) DbWeight() weight.RuntimeDbWeight {
	return t.db.DbWeight()
}

func (t *Table) ReportHolding() weight.Weight           { return t.Weight(xcm.ReportHolding) }
func (t *Table) BuyExecution() weight.Weight            { return t.Weight(xcm.BuyExecution) }
func (t *Table) QueryResponse() weight.Weight           { return t.Weight(xcm.QueryResponse) }
func (t *Table) Transact() weight.Weight                { return t.Weight(xcm.Transact) }
func (t *Table) RefundSurplus() weight.Weight           { return t.Weight(xcm.RefundSurplus) }
func (t *Table) SetErrorHandler() weight.Weight         { return t.Weight(xcm.SetErrorHandler) }
func (t *Table) SetAppendix() weight.Weight             { return t.Weight(xcm.SetAppendix) }
func (t *Table) ClearError() weight.Weight              { return t.Weight(xcm.ClearError) }
func (t *Table) DescendOrigin() weight.Weight           { return t.Weight(xcm.DescendOrigin) }
func (t *Table) ClearOrigin() weight.Weight             { return t.Weight(xcm.ClearOrigin) }
func (t *Table) ReportError() weight.Weight             { return t.Weight(xcm.ReportError) }
func (t *Table) ClaimAsset() weight.Weight              { return t.Weight(xcm.ClaimAsset) }
func (t *Table) Trap() weight.Weight                    { return t.Weight(xcm.Trap) }
func (t *Table) SubscribeVersion() weight.Weight        { return t.Weight(xcm.SubscribeVersion) }
func (t *Table) UnsubscribeVersion() weight.Weight      { return t.Weight(xcm.UnsubscribeVersion) }
func (t *Table) InitiateReserveWithdraw() weight.Weight { return t.Weight(xcm.InitiateReserveWithdraw) }
func (t *Table) BurnAsset() weight.Weight               { return t.Weight(xcm.BurnAsset) }
func (t *Table) ExpectAsset() weight.Weight             { return t.Weight(xcm.ExpectAsset) }
func (t *Table) ExpectOrigin() weight.Weight            { return t.Weight(xcm.ExpectOrigin) }
func (t *Table) ExpectError() weight.Weight             { return t.Weight(xcm.ExpectError) }
func (t *Table) ExpectTransactStatus() weight.Weight    { return t.Weight(xcm.ExpectTransactStatus) }
func (t *Table) QueryPallet() weight.Weight             { return t.Weight(xcm.QueryPallet) }
func (t *Table) ExpectPallet() weight.Weight            { return t.Weight(xcm.ExpectPallet) }
func (t *Table) ReportTransactStatus() weight.Weight    { return t.Weight(xcm.ReportTransactStatus) }
func (t *Table) ClearTransactStatus() weight.Weight     { return t.Weight(xcm.ClearTransactStatus) }
func (t *Table) SetTopic() weight.Weight                { return t.Weight(xcm.SetTopic) }
func (t *Table) ClearTopic() weight.Weight              { return t.Weight(xcm.ClearTopic) }
func (t *Table) SetFeesMode() weight.Weight             { return t.Weight(xcm.SetFeesMode) }
func (t *Table) UnpaidExecution() weight.Weight         { return t.Weight(xcm.UnpaidExecution) }
