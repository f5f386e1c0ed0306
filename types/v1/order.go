package types

// Order 表示一条挂单(listing)或出价(offer)
// 所有数量与金额均为原始整数字符串 (raw units), 绝不使用浮点
// 不变量: QuantityRemaining <= QuantityInitial; 状态流转由后端负责, SDK 视为只读快照
type Order struct {
	OrderID                   string      `json:"order_id"`
	Side                      OrderSide   `json:"side"`
	Status                    OrderStatus `json:"status"`
	ChainID                   int         `json:"chain_id"`
	CollectionContractAddress string      `json:"collection_contract_address"`
	TokenID                   *string     `json:"token_id"` // Collection 级出价时为空
	CreatedBy                 string      `json:"created_by"`
	PriceAmount               string      `json:"price_amount"` // 原始整数金额
	PriceCurrencyAddress      string      `json:"price_currency_address"`
	QuantityInitial           string      `json:"quantity_initial"`
	QuantityRemaining         string      `json:"quantity_remaining"`
	QuantityAvailable         string      `json:"quantity_available"`
	ValidFrom                 int64       `json:"valid_from"`
	ValidUntil                int64       `json:"valid_until"`
}

// CollectibleOrder 单个 Token 的市场状态聚合视图
// Listing/Offer 均为该 Token 当前的"最佳"订单 (最低挂单价 / 最高出价),
// 由后端挑选; 两者都可能缺失, 缺失表示当前没有对应方向的活跃订单
type CollectibleOrder struct {
	Metadata TokenMetadata `json:"metadata"`
	Listing  *Order        `json:"listing,omitempty"`
	Offer    *Order        `json:"offer,omitempty"`
}

// TokenBalance 连接钱包对某个 Token 的持仓
// Balance 为原始整数字符串; 查询不到持仓时整条记录缺失, 调用方按 0 处理
type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance string `json:"balance"`
}
