package card

import (
	"github.com/pkg/errors"

	"github.com/ProjectsTask/EasySwapKit/common/utils"
	types "github.com/ProjectsTask/EasySwapKit/types/v1"
)

// OfferState 针对当前浏览者的出价展示状态
// 不变量: CanAcceptOffer == true 蕴含 IsOfferMadeBySelf == false 且 UserOwnsToken == true
type OfferState struct {
	Show              bool `json:"show"`
	CanAcceptOffer    bool `json:"can_accept_offer"`
	IsOfferMadeBySelf bool `json:"is_offer_made_by_self"`
	UserOwnsToken     bool `json:"user_owns_token"`
}

// EvaluateOfferState 计算最佳出价相对当前浏览者的状态
// 规则:
// 1. 无出价 -> 返回 nil, 出价 UI 不渲染
// 2. IsOfferMadeBySelf: 浏览者地址已知且与出价者地址相同 (忽略大小写)
// 3. UserOwnsToken: 余额已知且 > 0; 余额缺失视同 "0", 不是"未知"
// 4. CanAcceptOffer: 持有该 Token 且出价不是自己发出的
// 同样的四个输入永远得到同样的输出, 不依赖时钟或随机数
func EvaluateOfferState(offer *types.Order, viewerAddress string, viewerBalance *string) (*OfferState, error) {
	if offer == nil {
		return nil, nil
	}

	isOfferMadeBySelf := viewerAddress != "" && utils.AddressEqual(offer.CreatedBy, viewerAddress)

	userOwnsToken := false
	if viewerBalance != nil {
		balance, err := parseAmount(*viewerBalance)
		if err != nil {
			return nil, errors.Wrap(err, "invalid viewer balance")
		}
		userOwnsToken = balance.IsPositive()
	}

	return &OfferState{
		Show:              true,
		CanAcceptOffer:    !isOfferMadeBySelf && userOwnsToken,
		IsOfferMadeBySelf: isOfferMadeBySelf,
		UserOwnsToken:     userOwnsToken,
	}, nil
}
