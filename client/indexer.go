package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	types "github.com/ProjectsTask/EasySwapKit/types/v1"
	"github.com/ProjectsTask/EasySwapKit/xhttp"
)

// IndexerClient 链上索引服务客户端
// 负责持仓/供给等链上状态查询
type IndexerClient struct {
	http *xhttp.Client
}

func NewIndexerClient(baseURL string, opts ...xhttp.Option) *IndexerClient {
	return &IndexerClient{http: xhttp.NewClient(baseURL, opts...)}
}

// GetTokenBalances 查询账户在某个集合下的持仓
// tokenID 为空时返回该集合下的全部持仓
func (c *IndexerClient) GetTokenBalances(ctx context.Context, chainID int, accountAddr, contractAddr, tokenID string) ([]types.TokenBalance, error) {
	query := url.Values{}
	query.Set("chain_id", strconv.Itoa(chainID))
	query.Set("account_address", accountAddr)
	query.Set("contract_address", contractAddr)
	if tokenID != "" {
		query.Set("token_id", tokenID)
	}

	var balances []types.TokenBalance
	if err := c.http.Get(ctx, "/api/v1/balances", query, &balances); err != nil {
		return nil, errors.Wrap(err, "failed on get token balances")
	}
	return balances, nil
}

// GetTokenSupply 查询一级销售商品的剩余供给
// 后端查询不到时返回 nil, 调用方按"未知"处理
func (c *IndexerClient) GetTokenSupply(ctx context.Context, chainID int, contractAddr, tokenID string) (*string, error) {
	query := url.Values{}
	query.Set("chain_id", strconv.Itoa(chainID))
	query.Set("contract_address", contractAddr)
	query.Set("token_id", tokenID)

	var supply *string
	if err := c.http.Get(ctx, "/api/v1/supplies", query, &supply); err != nil {
		return nil, errors.Wrap(err, "failed on get token supply")
	}
	return supply, nil
}
