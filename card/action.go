package card

import (
	"github.com/pkg/errors"

	types "github.com/ProjectsTask/EasySwapKit/types/v1"
)

// CardActionInput 动作路由决策的输入
// 每次渲染/查询后重新求值, 不持久化任何状态
type CardActionInput struct {
	Action   types.Action   // 浏览者请求的动作
	CardType types.CardType // 使用哪套规则
	Owned    bool           // 浏览者是否持有至少 1 个该 Token

	// market 卡片: 该 Token 是否存在最佳挂单/出价
	HasListing bool
	HasOffer   bool

	// shop 卡片: 一级销售商品的供给状态
	UnlimitedSupply   bool
	QuantityRemaining *string
}

// CardAction 动作路由决策结果
type CardAction struct {
	Visible       bool         `json:"visible"`
	RoutedAction  types.Action `json:"routed_action,omitempty"`
	IsOwnerAction bool         `json:"is_owner_action"`
}

// ResolveCardAction 计算卡片上最终呈现的动作
// 规则按顺序求值:
// 1. inventory-non-tradable: 任何动作都不可见 (仅展示持仓)
// 2. shop: 只有 BUY 有意义, 且商品必须仍可售
// (无限供给, 或剩余量已知且 > 0); 持有与否无关
// 3. market: 路由见 routeMarketAction
// 未知的 CardType/Action 直接报错, 绝不静默选一个默认动作 —
// 静默选错会让用户发起非法交易
func ResolveCardAction(in CardActionInput) (CardAction, error) {
	if err := validateAction(in.Action); err != nil {
		return CardAction{}, err
	}

	switch in.CardType {
	case types.CardTypeInventoryNonTradable:
		return CardAction{Visible: false}, nil

	case types.CardTypeShop:
		if in.Action != types.ActionBuy {
			return CardAction{Visible: false}, nil
		}
		available := in.UnlimitedSupply
		if !available && in.QuantityRemaining != nil {
			qty, err := parseAmount(*in.QuantityRemaining)
			if err != nil {
				return CardAction{}, errors.Wrap(err, "invalid quantity remaining")
			}
			available = qty.IsPositive()
		}
		return CardAction{Visible: available, RoutedAction: types.ActionBuy}, nil

	case types.CardTypeMarket:
		routed := routeMarketAction(in.Owned, in.HasListing, in.HasOffer)
		return CardAction{
			Visible:       true,
			RoutedAction:  routed,
			IsOwnerAction: IsOwnerAction(routed),
		}, nil

	default:
		return CardAction{}, errors.Errorf("unknown card type: %q", in.CardType)
	}
}

// routeMarketAction 二级市场动作路由
// 持有者 (互斥且穷尽, 按优先级恰好命中一个):
// 1. 存在最佳出价 -> SELL (接受出价)
// 2. 无挂单 -> LIST (创建挂单)
// 3. 已有挂单 -> TRANSFER (已挂单, 默认转账而非重复挂单)
// 非持有者:
// 1. 存在挂单 -> BUY
// 2. 否则 -> OFFER
func routeMarketAction(owned, hasListing, hasOffer bool) types.Action {
	if owned {
		if hasOffer {
			return types.ActionSell
		}
		if !hasListing {
			return types.ActionList
		}
		return types.ActionTransfer
	}
	if hasListing {
		return types.ActionBuy
	}
	return types.ActionOffer
}

// IsOwnerAction 是否为持有者动作
// 调用方据此决定渲染持有者按钮组还是非持有者按钮组,
// 与 prioritizeOwnerActions 展示提示无关
func IsOwnerAction(a types.Action) bool {
	switch a {
	case types.ActionSell, types.ActionList, types.ActionTransfer:
		return true
	}
	return false
}

// GuardAction 动作执行前的持有拦截
// 钱包连接后才能得知持有状态, 此时若浏览者尝试对已持有的 Token
// 执行 BUY/OFFER, 通知 onCannot 回调并返回 false
// 这是通知而非异常, UI 保持可响应, 只是不执行该动作
func GuardAction(action types.Action, owned bool, onCannot func(types.Action)) bool {
	if owned && (action == types.ActionBuy || action == types.ActionOffer) {
		if onCannot != nil {
			onCannot(action)
		}
		return false
	}
	return true
}

func validateAction(a types.Action) error {
	switch a {
	case types.ActionBuy, types.ActionSell, types.ActionList, types.ActionOffer, types.ActionTransfer:
		return nil
	default:
		return errors.Errorf("unknown action: %q", a)
	}
}
