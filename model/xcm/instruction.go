package xcm

import (
	"strconv"
	"strings"

	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/errors"
)

// Instruction identifies one generic XCM instruction whose execution cost is
// benchmarked independently of any asset transactor.
type Instruction uint8

const (
	ReportHolding Instruction = iota
	BuyExecution
	QueryResponse
	Transact
	RefundSurplus
	SetErrorHandler
	SetAppendix
	ClearError
	DescendOrigin
	ClearOrigin
	ReportError
	ClaimAsset
	Trap
	SubscribeVersion
	UnsubscribeVersion
	InitiateReserveWithdraw
	BurnAsset
	ExpectAsset
	ExpectOrigin
	ExpectError
	ExpectTransactStatus
	QueryPallet
	ExpectPallet
	ReportTransactStatus
	ClearTransactStatus
	SetTopic
	ClearTopic
	SetFeesMode
	UnpaidExecution

	// instructionCount must stay last
	instructionCount
)

var instructionNames = [instructionCount]string{
	"ReportHolding",
	"BuyExecution",
	"QueryResponse",
	"Transact",
	"RefundSurplus",
	"SetErrorHandler",
	"SetAppendix",
	"ClearError",
	"DescendOrigin",
	"ClearOrigin",
	"ReportError",
	"ClaimAsset",
	"Trap",
	"SubscribeVersion",
	"UnsubscribeVersion",
	"InitiateReserveWithdraw",
	"BurnAsset",
	"ExpectAsset",
	"ExpectOrigin",
	"ExpectError",
	"ExpectTransactStatus",
	"QueryPallet",
	"ExpectPallet",
	"ReportTransactStatus",
	"ClearTransactStatus",
	"SetTopic",
	"ClearTopic",
	"SetFeesMode",
	"UnpaidExecution",
}

var benchmarkNames = [instructionCount]string{
	"report_holding",
	"buy_execution",
	"query_response",
	"transact",
	"refund_surplus",
	"set_error_handler",
	"set_appendix",
	"clear_error",
	"descend_origin",
	"clear_origin",
	"report_error",
	"claim_asset",
	"trap",
	"subscribe_version",
	"unsubscribe_version",
	"initiate_reserve_withdraw",
	"burn_asset",
	"expect_asset",
	"expect_origin",
	"expect_error",
	"expect_transact_status",
	"query_pallet",
	"expect_pallet",
	"report_transact_status",
	"clear_transact_status",
	"set_topic",
	"clear_topic",
	"set_fees_mode",
	"unpaid_execution",
}

var byName = func() map[string]Instruction {
	m := make(map[string]Instruction, 2*int(instructionCount))
	for i := Instruction(0); i < instructionCount; i++ {
		m[instructionNames[i]] = i
		m[benchmarkNames[i]] = i
	}
	return m
}()

// AllInstructions returns every instruction the executor can dispatch, in
// benchmark order.
func AllInstructions() []Instruction {
	all := make([]Instruction, instructionCount)
	for i := range all {
		all[i] = Instruction(i)
	}
	return all
}

// Count returns the number of dispatchable instructions.
func Count() int {
	return int(instructionCount)
}

// Valid reports whether i is a member of the instruction set.
func (i Instruction) Valid() bool {
	return i < instructionCount
}

// String returns the CamelCase name of the instruction.
func (i Instruction) String() string {
	if !i.Valid() {
		return "Instruction(" + strconv.Itoa(int(i)) + ")"
	}
	return instructionNames[i]
}

// Name returns the snake_case name the benchmarking harness uses for the
// instruction.
func (i Instruction) Name() string {
	if !i.Valid() {
		return "instruction_" + strconv.Itoa(int(i))
	}
	return benchmarkNames[i]
}

// ParseInstruction resolves either the CamelCase or the snake_case name of an
// instruction.
func ParseInstruction(name string) (Instruction, error) {
	if i, ok := byName[strings.TrimSpace(name)]; ok {
		return i, nil
	}
	return 0, errors.NewUnknownInstructionError(name)
}
