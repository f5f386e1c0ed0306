package types

// Currency 币种参考数据, 从 Marketplace 服务拉取后不可变
// Decimals 定义链上原始金额到展示金额的缩放位数
type Currency struct {
	ContractAddress string `json:"contract_address"` // 币种合约地址 (原生币为零地址)
	ChainID         int    `json:"chain_id"`
	Symbol          string `json:"symbol"`
	Decimals        uint8  `json:"decimals"`
	ImageURL        string `json:"image_url"`
	NativeCurrency  bool   `json:"native_currency"` // 是否为链原生币 (ETH 等)
}
