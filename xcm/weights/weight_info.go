package weights

import (
	"fmt"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
	"github.com/Bullrich/polkadot-fellows-runtimes/model/xcm"
)

// WeightInfo exposes the weight of every generic XCM instruction. The
// executor queries it once per instruction to decide whether enough weight
// budget remains.
type WeightInfo interface {
	ReportHolding() weight.Weight
	BuyExecution() weight.Weight
	QueryResponse() weight.Weight
	Transact() weight.Weight
	RefundSurplus() weight.Weight
	SetErrorHandler() weight.Weight
	SetAppendix() weight.Weight
	ClearError() weight.Weight
	DescendOrigin() weight.Weight
	ClearOrigin() weight.Weight
	ReportError() weight.Weight
	ClaimAsset() weight.Weight
	Trap() weight.Weight
	SubscribeVersion() weight.Weight
	UnsubscribeVersion() weight.Weight
	InitiateReserveWithdraw() weight.Weight
	BurnAsset() weight.Weight
	ExpectAsset() weight.Weight
	ExpectOrigin() weight.Weight
	ExpectError() weight.Weight
	ExpectTransactStatus() weight.Weight
	QueryPallet() weight.Weight
	ExpectPallet() weight.Weight
	ReportTransactStatus() weight.Weight
	ClearTransactStatus() weight.Weight
	SetTopic() weight.Weight
	ClearTopic() weight.Weight
	SetFeesMode() weight.Weight
	UnpaidExecution() weight.Weight
}

// Dispatch returns the weight info reports for instruction i. Every member of
// the instruction set has a case; any other value panics.
func Dispatch(info WeightInfo, i xcm.Instruction) weight.Weight {
	switch i {
	case xcm.ReportHolding:
		return info.ReportHolding()
	case xcm.BuyExecution:
		return info.BuyExecution()
	case xcm.QueryResponse:
		return info.QueryResponse()
	case xcm.Transact:
		return info.Transact()
	case xcm.RefundSurplus:
		return info.RefundSurplus()
	case xcm.SetErrorHandler:
		return info.SetErrorHandler()
	case xcm.SetAppendix:
		return info.SetAppendix()
	case xcm.ClearError:
		return info.ClearError()
	case xcm.DescendOrigin:
		return info.DescendOrigin()
	case xcm.ClearOrigin:
		return info.ClearOrigin()
	case xcm.ReportError:
		return info.ReportError()
	case xcm.ClaimAsset:
		return info.ClaimAsset()
	case xcm.Trap:
		return info.Trap()
	case xcm.SubscribeVersion:
		return info.SubscribeVersion()
	case xcm.UnsubscribeVersion:
		return info.UnsubscribeVersion()
	case xcm.InitiateReserveWithdraw:
		return info.InitiateReserveWithdraw()
	case xcm.BurnAsset:
		return info.BurnAsset()
	case xcm.ExpectAsset:
		return info.ExpectAsset()
	case xcm.ExpectOrigin:
		return info.ExpectOrigin()
	case xcm.ExpectError:
		return info.ExpectError()
	case xcm.ExpectTransactStatus:
		return info.ExpectTransactStatus()
	case xcm.QueryPallet:
		return info.QueryPallet()
	case xcm.ExpectPallet:
		return info.ExpectPallet()
	case xcm.ReportTransactStatus:
		return info.ReportTransactStatus()
	case xcm.ClearTransactStatus:
		return info.ClearTransactStatus()
	case xcm.SetTopic:
		return info.SetTopic()
	case xcm.ClearTopic:
		return info.ClearTopic()
	case xcm.SetFeesMode:
		return info.SetFeesMode()
	case xcm.UnpaidExecution:
		return info.UnpaidExecution()
	}
	panic(fmt.Sprintf("no weight for %s", i))
}
