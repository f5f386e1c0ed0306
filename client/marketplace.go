package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	types "github.com/ProjectsTask/EasySwapKit/types/v1"
	"github.com/ProjectsTask/EasySwapKit/xhttp"
)

// MarketplaceClient Marketplace 订单服务客户端
// "最佳"订单(最低挂单价/最高出价)由后端挑选, SDK 只消费结果
type MarketplaceClient struct {
	http *xhttp.Client
}

func NewMarketplaceClient(baseURL string, opts ...xhttp.Option) *MarketplaceClient {
	return &MarketplaceClient{http: xhttp.NewClient(baseURL, opts...)}
}

// CollectiblesResp 分页的集合 Token 市场状态
type CollectiblesResp struct {
	Result []types.CollectibleOrder `json:"result"`
	Count  int64                    `json:"count"`
}

func collectibleQuery(chainID int, collectionAddr, tokenID string) url.Values {
	query := url.Values{}
	query.Set("chain_id", strconv.Itoa(chainID))
	query.Set("collection_address", collectionAddr)
	query.Set("token_id", tokenID)
	return query
}

// GetCollectibleLowestListing 获取 Token 当前的最佳挂单 (最低价)
// 无活跃挂单时返回 nil, 不是错误
func (c *MarketplaceClient) GetCollectibleLowestListing(ctx context.Context, chainID int, collectionAddr, tokenID string) (*types.Order, error) {
	var order *types.Order
	if err := c.http.Get(ctx, "/api/v1/orders/lowest-listing", collectibleQuery(chainID, collectionAddr, tokenID), &order); err != nil {
		return nil, errors.Wrap(err, "failed on get lowest listing")
	}
	return order, nil
}

// GetCollectibleHighestOffer 获取 Token 当前的最佳出价 (最高价)
// 无活跃出价时返回 nil, 不是错误
func (c *MarketplaceClient) GetCollectibleHighestOffer(ctx context.Context, chainID int, collectionAddr, tokenID string) (*types.Order, error) {
	var order *types.Order
	if err := c.http.Get(ctx, "/api/v1/orders/highest-offer", collectibleQuery(chainID, collectionAddr, tokenID), &order); err != nil {
		return nil, errors.Wrap(err, "failed on get highest offer")
	}
	return order, nil
}

// ListCollectibles 分页查询集合下所有 Token 的市场状态聚合视图
func (c *MarketplaceClient) ListCollectibles(ctx context.Context, chainID int, collectionAddr string, page, pageSize int) (*CollectiblesResp, error) {
	query := url.Values{}
	query.Set("chain_id", strconv.Itoa(chainID))
	query.Set("collection_address", collectionAddr)
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var resp CollectiblesResp
	if err := c.http.Get(ctx, "/api/v1/collectibles", query, &resp); err != nil {
		return nil, errors.Wrap(err, "failed on list collectibles")
	}
	return &resp, nil
}

// GetCurrencies 获取链上支持的计价币种列表
func (c *MarketplaceClient) GetCurrencies(ctx context.Context, chainID int) ([]types.Currency, error) {
	query := url.Values{}
	query.Set("chain_id", strconv.Itoa(chainID))

	var currencies []types.Currency
	if err := c.http.Get(ctx, "/api/v1/currencies", query, &currencies); err != nil {
		return nil, errors.Wrap(err, "failed on get currencies")
	}
	return currencies, nil
}

// GetPrimarySaleItems 获取一级销售合约下的商品列表 (shop 卡片数据源)
func (c *MarketplaceClient) GetPrimarySaleItems(ctx context.Context, chainID int, itemAddr string) ([]types.PrimarySaleItem, error) {
	query := url.Values{}
	query.Set("chain_id", strconv.Itoa(chainID))
	query.Set("item_address", itemAddr)

	var items []types.PrimarySaleItem
	if err := c.http.Get(ctx, "/api/v1/shop/items", query, &items); err != nil {
		return nil, errors.Wrap(err, "failed on get primary sale items")
	}
	return items, nil
}

// GenerateStepsParam 交易步骤生成参数
type GenerateStepsParam struct {
	ChainID        int          `json:"chain_id" validate:"required,gt=0"`
	OrderID        string       `json:"order_id" validate:"required"`
	Action         types.Action `json:"action" validate:"required"`
	TakerAddress   string       `json:"taker_address" validate:"required,address"`
	Quantity       string       `json:"quantity" validate:"required"`
	MarketplaceFee float64      `json:"marketplace_fee"`
}

// GenerateSteps 请求后端为指定订单生成交易执行步骤
// 步骤内容对 SDK 完全不透明, 仅透传给 StepExecutor
func (c *MarketplaceClient) GenerateSteps(ctx context.Context, param GenerateStepsParam) ([]types.Step, error) {
	var steps []types.Step
	if err := c.http.Post(ctx, "/api/v1/checkout/steps", param, &steps); err != nil {
		return nil, errors.Wrap(err, "failed on generate steps")
	}
	return steps, nil
}
