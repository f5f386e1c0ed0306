package card

import (
	"github.com/pkg/errors"

	types "github.com/ProjectsTask/EasySwapKit/types/v1"
)

// CardInput 构建卡片 props 所需的全部数据
// 数据已由 fetching 层解析完成, 这里只做同步的纯组装
type CardInput struct {
	CollectibleOrder types.CollectibleOrder
	CardType         types.CardType
	RequestedAction  types.Action // 为空时默认为 BUY

	ViewerAddress string  // 未连接钱包时为空
	ViewerBalance *string // 缺失视同 "0"

	ListingCurrency *types.Currency // 挂单计价币种
	OfferCurrency   *types.Currency // 出价计价币种

	// shop 卡片
	SaleItem      *types.PrimarySaleItem
	SaleRemaining *string

	// 展示提示: 强制使用持有者按钮组渲染, 不改变路由结果
	PrioritizeOwnerActions bool
}

// CollectibleCardProps 渲染层消费的卡片数据
type CollectibleCardProps struct {
	TokenID  string         `json:"token_id"`
	Name     string         `json:"name"`
	ImageURL string         `json:"image_url"`
	CardType types.CardType `json:"card_type"`

	ListingPrice *PriceDisplay `json:"listing_price,omitempty"`
	OfferPrice   *PriceDisplay `json:"offer_price,omitempty"`
	SalePrice    *PriceDisplay `json:"sale_price,omitempty"`
	SupplyText   string        `json:"supply_text,omitempty"`

	OfferState *OfferState `json:"offer_state,omitempty"`
	Action     CardAction  `json:"action"`

	// 渲染哪组动作按钮: 路由结果为持有者动作, 或调用方显式要求
	UseOwnerActionSet bool `json:"use_owner_action_set"`
}

// BuildCollectibleCardProps 将聚合订单数据组装为可渲染的卡片 props
// 仅负责按约定调用归一化与决策函数, 自身不含额外规则
func BuildCollectibleCardProps(in CardInput) (*CollectibleCardProps, error) {
	co := in.CollectibleOrder

	offerState, err := EvaluateOfferState(co.Offer, in.ViewerAddress, in.ViewerBalance)
	if err != nil {
		return nil, errors.Wrap(err, "failed on evaluate offer state")
	}

	owned := false
	if in.ViewerBalance != nil {
		balance, err := parseAmount(*in.ViewerBalance)
		if err != nil {
			return nil, errors.Wrap(err, "invalid viewer balance")
		}
		owned = balance.IsPositive()
	}

	requested := in.RequestedAction
	if requested == "" {
		requested = types.ActionBuy
	}

	actionInput := CardActionInput{
		Action:     requested,
		CardType:   in.CardType,
		Owned:      owned,
		HasListing: co.Listing != nil,
		HasOffer:   co.Offer != nil,
	}
	if in.SaleItem != nil {
		actionInput.UnlimitedSupply = in.SaleItem.UnlimitedSupply
		actionInput.QuantityRemaining = in.SaleRemaining
	}

	action, err := ResolveCardAction(actionInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed on resolve card action")
	}

	props := &CollectibleCardProps{
		TokenID:           co.Metadata.TokenID,
		Name:              co.Metadata.Name,
		ImageURL:          co.Metadata.Image,
		CardType:          in.CardType,
		OfferState:        offerState,
		Action:            action,
		UseOwnerActionSet: action.IsOwnerAction || in.PrioritizeOwnerActions,
	}

	if co.Listing != nil && in.ListingCurrency != nil {
		price, err := FormatPrice(co.Listing.PriceAmount, *in.ListingCurrency)
		if err != nil {
			return nil, errors.Wrap(err, "failed on format listing price")
		}
		props.ListingPrice = &price
	}
	if co.Offer != nil && in.OfferCurrency != nil {
		price, err := FormatPrice(co.Offer.PriceAmount, *in.OfferCurrency)
		if err != nil {
			return nil, errors.Wrap(err, "failed on format offer price")
		}
		props.OfferPrice = &price
	}

	if in.SaleItem != nil {
		if in.ListingCurrency != nil {
			price, err := FormatPrice(in.SaleItem.PriceAmount, *in.ListingCurrency)
			if err != nil {
				return nil, errors.Wrap(err, "failed on format sale price")
			}
			props.SalePrice = &price
		}
		supplyText, err := GetSupplyStatusText(in.SaleRemaining, in.SaleItem.ContractType, in.SaleItem.UnlimitedSupply)
		if err != nil {
			return nil, errors.Wrap(err, "failed on get supply status text")
		}
		props.SupplyText = supplyText
	}

	return props, nil
}
