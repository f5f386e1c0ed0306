package types

// OrderSide 订单方向: 挂单(listing) 或 出价(offer)
type OrderSide string

const (
	OrderSideListing OrderSide = "listing" // 卖方挂单
	OrderSideOffer   OrderSide = "offer"   // 买方出价
)

// OrderStatus 订单状态, 由后端维护, SDK 只读
type OrderStatus string

const (
	OrderStatusActive          OrderStatus = "active"
	OrderStatusInactive        OrderStatus = "inactive"
	OrderStatusExpired         OrderStatus = "expired"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusFilled          OrderStatus = "filled"
	OrderStatusDecimalsMissing OrderStatus = "decimals_missing" // 币种精度缺失, 无法展示
)

// ContractType NFT 合约标准
type ContractType string

const (
	ContractTypeERC721  ContractType = "ERC721"
	ContractTypeERC1155 ContractType = "ERC1155"
)

// Action 用户在卡片上可执行的操作
type Action string

const (
	ActionBuy      Action = "buy"
	ActionSell     Action = "sell"
	ActionList     Action = "list"
	ActionOffer    Action = "offer"
	ActionTransfer Action = "transfer"
)

// CardType 卡片类型, 决定动作路由使用哪套规则
// market: 二级市场卡片
// shop: 一级销售(Primary Sale)卡片
// inventory-non-tradable: 仅展示持仓, 不可交易
type CardType string

const (
	CardTypeMarket               CardType = "market"
	CardTypeShop                 CardType = "shop"
	CardTypeInventoryNonTradable CardType = "inventory-non-tradable"
)
