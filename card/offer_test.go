package card

import (
	"testing"

	types "github.com/ProjectsTask/EasySwapKit/types/v1"
)

const (
	addrA = "0x0000000000000000000000000000000000000AAA"
	addrB = "0x0000000000000000000000000000000000000BBB"
)

func offerBy(creator string) *types.Order {
	return &types.Order{
		OrderID:   "o-1",
		Side:      types.OrderSideOffer,
		Status:    types.OrderStatusActive,
		CreatedBy: creator,
	}
}

func TestEvaluateOfferState_NoOffer(t *testing.T) {
	got, err := EvaluateOfferState(nil, addrA, strPtr("5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil state without offer, got %+v", got)
	}
}

func TestEvaluateOfferState_SelfMadeOffer(t *testing.T) {
	// 出价者即浏览者: 持有也不能接受自己的出价
	got, err := EvaluateOfferState(offerBy(addrA), addrA, strPtr("5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Show || got.CanAcceptOffer || !got.IsOfferMadeBySelf || !got.UserOwnsToken {
		t.Errorf("got %+v, want show=true canAccept=false self=true owns=true", got)
	}
}

func TestEvaluateOfferState_NotOwner(t *testing.T) {
	got, err := EvaluateOfferState(offerBy(addrB), addrA, strPtr("0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Show || got.CanAcceptOffer || got.IsOfferMadeBySelf || got.UserOwnsToken {
		t.Errorf("got %+v, want show=true canAccept=false self=false owns=false", got)
	}
}

func TestEvaluateOfferState_CanAccept(t *testing.T) {
	got, err := EvaluateOfferState(offerBy(addrB), addrA, strPtr("1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.CanAcceptOffer {
		t.Errorf("expected canAccept=true, got %+v", got)
	}
}

// 地址比较忽略大小写
func TestEvaluateOfferState_CaseInsensitiveAddress(t *testing.T) {
	creator := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	viewer := "0xD8DA6BF26964AF9D7EED9E03E53415D37AA96045"
	got, err := EvaluateOfferState(offerBy(creator), viewer, strPtr("3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsOfferMadeBySelf {
		t.Error("expected self-made offer despite case difference")
	}
	if got.CanAcceptOffer {
		t.Error("self-made offer must not be acceptable")
	}
}

// 余额缺失必须与余额 "0" 完全等价
func TestEvaluateOfferState_NilBalanceEqualsZero(t *testing.T) {
	withNil, err := EvaluateOfferState(offerBy(addrB), addrA, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withZero, err := EvaluateOfferState(offerBy(addrB), addrA, strPtr("0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *withNil != *withZero {
		t.Errorf("nil balance state %+v differs from zero balance state %+v", withNil, withZero)
	}
}

// 不变量: canAccept => !self && owns
func TestEvaluateOfferState_SelfConsistency(t *testing.T) {
	creators := []string{addrA, addrB}
	viewers := []string{addrA, addrB, ""}
	balances := []*string{nil, strPtr("0"), strPtr("1"), strPtr("5")}

	for _, creator := range creators {
		for _, viewer := range viewers {
			for _, balance := range balances {
				got, err := EvaluateOfferState(offerBy(creator), viewer, balance)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.CanAcceptOffer && (got.IsOfferMadeBySelf || !got.UserOwnsToken) {
					t.Errorf("inconsistent state for creator=%s viewer=%s: %+v", creator, viewer, got)
				}
			}
		}
	}
}

func TestEvaluateOfferState_InvalidBalance(t *testing.T) {
	if _, err := EvaluateOfferState(offerBy(addrB), addrA, strPtr("lots")); err == nil {
		t.Error("expected error for non-integer balance")
	}
}
