package card

import (
	"testing"

	types "github.com/ProjectsTask/EasySwapKit/types/v1"
)

func strPtr(s string) *string {
	return &s
}

func TestGetSupplyStatusText(t *testing.T) {
	tests := []struct {
		name         string
		remaining    *string
		contractType types.ContractType
		unlimited    bool
		want         string
	}{
		{"erc721 ignores quantity", strPtr("5"), types.ContractTypeERC721, false, SupplyTextUnique},
		{"unlimited wins over zero remaining", strPtr("0"), types.ContractTypeERC1155, true, SupplyTextUnlimited},
		{"unlimited without remaining", nil, types.ContractTypeERC1155, true, SupplyTextUnlimited},
		{"missing remaining", nil, types.ContractTypeERC1155, false, SupplyTextUnavailable},
		{"sold out", strPtr("0"), types.ContractTypeERC1155, false, SupplyTextSoldOut},
		{"remaining embedded", strPtr("7"), types.ContractTypeERC1155, false, "7 left"},
		{"large remaining", strPtr("1000000"), types.ContractTypeERC1155, false, "1000000 left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetSupplyStatusText(tt.remaining, tt.contractType, tt.unlimited)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetSupplyStatusText_Invalid(t *testing.T) {
	if _, err := GetSupplyStatusText(strPtr("many"), types.ContractTypeERC1155, false); err == nil {
		t.Error("expected error for non-integer remaining")
	}
	if _, err := GetSupplyStatusText(strPtr("-1"), types.ContractTypeERC1155, false); err == nil {
		t.Error("expected error for negative remaining")
	}
	if _, err := GetSupplyStatusText(strPtr("5"), types.ContractType("ERC20"), false); err == nil {
		t.Error("expected error for unknown contract type")
	}
}
