package types

// PrimarySaleItem 一级销售(Shop)商品
// 与二级市场 Order 不同, 价格固定, 供给受 Supply/SupplyCap 或 UnlimitedSupply 控制
type PrimarySaleItem struct {
	ItemAddress     string       `json:"item_address"`
	TokenID         string       `json:"token_id"`
	ContractType    ContractType `json:"contract_type"`
	CurrencyAddress string       `json:"currency_address"`
	PriceAmount     string       `json:"price_amount"` // 原始整数金额
	Supply          string       `json:"supply"`       // 已铸造/已售数量
	SupplyCap       string       `json:"supply_cap"`   // 供给上限
	UnlimitedSupply bool         `json:"unlimited_supply"`
	StartDate       int64        `json:"start_date"`
	EndDate         int64        `json:"end_date"`
}

// MarketplacePage Builder 服务下发的店面页配置
// 决定店面展示哪些集合, 以及每个集合使用的卡片类型
type MarketplacePage struct {
	ProjectID   int                     `json:"project_id"`
	Title       string                  `json:"title"`
	Collections []MarketplaceCollection `json:"collections"`
}

// MarketplaceCollection 店面页中单个集合的配置
type MarketplaceCollection struct {
	ChainID         int      `json:"chain_id"`
	Address         string   `json:"address"`
	CardType        CardType `json:"card_type"`
	FeePercentage   float64  `json:"fee_percentage"`
	CurrencyOptions []string `json:"currency_options"` // 可用计价币种地址
}

// Step 交易执行步骤, 由 Marketplace 服务生成
// SDK 不理解其内容, 仅透传给 StepExecutor
type Step struct {
	ID    string `json:"id"`
	To    string `json:"to"`
	Data  string `json:"data"`
	Value string `json:"value"`
}
