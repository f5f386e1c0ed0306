package types

// TokenAttribute Token 的单个属性 (trait)
type TokenAttribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// TokenMetadata Token 的描述性元数据, 只读
type TokenMetadata struct {
	TokenID      string           `json:"token_id"`
	Name         string           `json:"name"`
	Image        string           `json:"image,omitempty"`
	Video        string           `json:"video,omitempty"`
	AnimationURL string           `json:"animation_url,omitempty"`
	Decimals     *uint8           `json:"decimals,omitempty"` // ERC-1155 持仓展示精度
	Attributes   []TokenAttribute `json:"attributes"`
}

// Collection NFT 集合信息
type Collection struct {
	ChainID      int          `json:"chain_id"`
	Address      string       `json:"address"`
	Name         string       `json:"name"`
	Symbol       string       `json:"symbol"`
	ContractType ContractType `json:"contract_type"`
	ImageURI     string       `json:"image_uri"`
}
