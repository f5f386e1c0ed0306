package card

import (
	"fmt"

	"github.com/pkg/errors"

	types "github.com/ProjectsTask/EasySwapKit/types/v1"
)

// 供给状态文案
const (
	SupplyTextUnique      = "Unique item"        // ERC-721, 无数量语义
	SupplyTextUnlimited   = "Unlimited supply"   // 无限供给
	SupplyTextUnavailable = "Supply unavailable" // 剩余量未知
	SupplyTextSoldOut     = "Sold out"
)

// GetSupplyStatusText 计算一级销售商品的供给/余量文案
// 规则 (按顺序):
// 1. ERC-721 -> 固定文案, 数量语义不适用
// 2. 无限供给 -> 无限文案, 忽略 quantityRemaining
// 3. 剩余量缺失 -> 未知文案
// 4. 剩余量为 0 -> 售罄
// 5. 其余 -> 嵌入剩余数量的文案
func GetSupplyStatusText(quantityRemaining *string, contractType types.ContractType, unlimitedSupply bool) (string, error) {
	switch contractType {
	case types.ContractTypeERC721:
		return SupplyTextUnique, nil
	case types.ContractTypeERC1155:
	default:
		return "", errors.Errorf("unknown contract type: %q", contractType)
	}

	if unlimitedSupply {
		return SupplyTextUnlimited, nil
	}
	if quantityRemaining == nil {
		return SupplyTextUnavailable, nil
	}

	qty, err := parseAmount(*quantityRemaining)
	if err != nil {
		return "", errors.Wrap(err, "invalid quantity remaining")
	}
	if qty.IsZero() {
		return SupplyTextSoldOut, nil
	}
	return fmt.Sprintf("%s left", qty.String()), nil
}
