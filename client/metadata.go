package client

import (
	"context"

	"github.com/pkg/errors"

	types "github.com/ProjectsTask/EasySwapKit/types/v1"
	"github.com/ProjectsTask/EasySwapKit/xhttp"
)

// MetadataClient 元数据服务客户端
type MetadataClient struct {
	http *xhttp.Client
}

func NewMetadataClient(baseURL string, opts ...xhttp.Option) *MetadataClient {
	return &MetadataClient{http: xhttp.NewClient(baseURL, opts...)}
}

// tokenMetadataParam 批量元数据查询参数
type tokenMetadataParam struct {
	ChainID         int      `json:"chain_id"`
	ContractAddress string   `json:"contract_address"`
	TokenIDs        []string `json:"token_ids"`
}

// GetTokenMetadata 批量获取 Token 元数据
// 后端按请求顺序返回, 查询不到的 Token 不在结果中
func (c *MetadataClient) GetTokenMetadata(ctx context.Context, chainID int, contractAddr string, tokenIDs []string) ([]types.TokenMetadata, error) {
	param := tokenMetadataParam{
		ChainID:         chainID,
		ContractAddress: contractAddr,
		TokenIDs:        tokenIDs,
	}

	var metadata []types.TokenMetadata
	if err := c.http.Post(ctx, "/api/v1/metadata/tokens", param, &metadata); err != nil {
		return nil, errors.Wrap(err, "failed on get token metadata")
	}
	return metadata, nil
}

// GetContractInfo 获取集合合约信息 (名称/标准/图片)
func (c *MetadataClient) GetContractInfo(ctx context.Context, chainID int, contractAddr string) (*types.Collection, error) {
	param := tokenMetadataParam{
		ChainID:         chainID,
		ContractAddress: contractAddr,
	}

	var collection types.Collection
	if err := c.http.Post(ctx, "/api/v1/metadata/contract", param, &collection); err != nil {
		return nil, errors.Wrap(err, "failed on get contract info")
	}
	return &collection, nil
}
