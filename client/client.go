package client

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/ProjectsTask/EasySwapKit/cachedloader"
	"github.com/ProjectsTask/EasySwapKit/common/utils"
	"github.com/ProjectsTask/EasySwapKit/config"
	types "github.com/ProjectsTask/EasySwapKit/types/v1"
	"github.com/ProjectsTask/EasySwapKit/xhttp"
)

// WalletProvider 已连接钱包的地址来源
// 未连接时返回 ("", false); 钱包交互本身不属于 SDK
type WalletProvider interface {
	Address() (string, bool)
}

// StepExecutor 交易执行能力: 提交步骤, 返回交易哈希或失败
// 签名与上链细节对 SDK 完全不透明
type StepExecutor interface {
	SubmitSteps(ctx context.Context, steps []types.Step) (string, error)
}

// Client SDK 聚合客户端
// 持有四个后端服务客户端与查询缓存; 所有 Fetch 方法只负责
// 取数并解析, 决策逻辑全部在 card 包的纯函数中
type Client struct {
	Builder     *BuilderClient
	Marketplace *MarketplaceClient
	Metadata    *MetadataClient
	Indexer     *IndexerClient

	cfg      *config.Config
	loader   *cachedloader.Loader
	validate *validator.Validate
	wallet   WalletProvider
	executor StepExecutor
}

type Option func(*Client)

// WithWallet 注入钱包地址来源
func WithWallet(w WalletProvider) Option {
	return func(c *Client) {
		c.wallet = w
	}
}

// WithStepExecutor 注入交易执行器
func WithStepExecutor(e StepExecutor) Option {
	return func(c *Client) {
		c.executor = e
	}
}

// New 根据配置创建聚合客户端
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	loader, err := cachedloader.New(cfg.Cache.TTL(), "eswkit")
	if err != nil {
		return nil, errors.Wrap(err, "failed on create cached loader")
	}

	httpOpts := []xhttp.Option{}
	if cfg.Api.ApiKey != "" {
		httpOpts = append(httpOpts, xhttp.WithAPIKey(cfg.Api.ApiKey))
	}

	c := &Client{
		Builder:     NewBuilderClient(cfg.Api.BuilderURL, httpOpts...),
		Marketplace: NewMarketplaceClient(cfg.Api.MarketplaceURL, httpOpts...),
		Metadata:    NewMetadataClient(cfg.Api.MetadataURL, httpOpts...),
		Indexer:     NewIndexerClient(cfg.Api.IndexerURL, httpOpts...),
		cfg:         cfg,
		loader:      loader,
		validate:    utils.NewValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// collectibleParam Token 定位参数
type collectibleParam struct {
	ChainID           int    `validate:"required,gt=0"`
	CollectionAddress string `validate:"required,address"`
	TokenID           string `validate:"required"`
}

// FetchBestOrders 获取 Token 的最佳挂单与最佳出价聚合视图
// 两者都可能缺失; 结果按请求参数缓存, 并发同 key 请求合并
func (c *Client) FetchBestOrders(ctx context.Context, chainID int, collectionAddr, tokenID string) (*types.CollectibleOrder, error) {
	param := collectibleParam{ChainID: chainID, CollectionAddress: collectionAddr, TokenID: tokenID}
	if err := c.validate.Struct(param); err != nil {
		return nil, errors.Wrap(err, "invalid collectible param")
	}

	key := fmt.Sprintf("orders:%d:%s:%s", chainID, utils.ToValidateAddress(collectionAddr), tokenID)
	v, err := c.loader.Take(key, func() (interface{}, error) {
		listing, err := c.Marketplace.GetCollectibleLowestListing(ctx, chainID, collectionAddr, tokenID)
		if err != nil {
			return nil, err
		}
		offer, err := c.Marketplace.GetCollectibleHighestOffer(ctx, chainID, collectionAddr, tokenID)
		if err != nil {
			return nil, err
		}

		metadata, err := c.Metadata.GetTokenMetadata(ctx, chainID, collectionAddr, []string{tokenID})
		if err != nil {
			return nil, err
		}
		co := &types.CollectibleOrder{Listing: listing, Offer: offer}
		if len(metadata) > 0 {
			co.Metadata = metadata[0]
		} else {
			co.Metadata = types.TokenMetadata{TokenID: tokenID}
		}
		return co, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.CollectibleOrder), nil
}

// FetchCurrency 按币种地址获取币种参考数据
// 整条链的币种列表一次拉取并缓存
func (c *Client) FetchCurrency(ctx context.Context, chainID int, currencyAddr string) (*types.Currency, error) {
	if !utils.IsHexAddress(currencyAddr) {
		return nil, errors.Errorf("invalid currency address: %q", currencyAddr)
	}

	key := fmt.Sprintf("currencies:%d", chainID)
	v, err := c.loader.Take(key, func() (interface{}, error) {
		return c.Marketplace.GetCurrencies(ctx, chainID)
	})
	if err != nil {
		return nil, err
	}

	currencies := v.([]types.Currency)
	for i := range currencies {
		if utils.AddressEqual(currencies[i].ContractAddress, currencyAddr) {
			return &currencies[i], nil
		}
	}
	return nil, errors.Errorf("currency not found: chain %d address %s", chainID, currencyAddr)
}

// FetchViewerBalance 查询浏览者对指定 Token 的持仓
// 无持仓时返回 nil, 调用方按 "0" 处理 (决策层的约定)
func (c *Client) FetchViewerBalance(ctx context.Context, chainID int, collectionAddr, tokenID, viewerAddr string) (*string, error) {
	if viewerAddr == "" {
		return nil, nil
	}
	if !utils.IsHexAddress(viewerAddr) {
		return nil, errors.Errorf("invalid viewer address: %q", viewerAddr)
	}

	balances, err := c.Indexer.GetTokenBalances(ctx, chainID, viewerAddr, collectionAddr, tokenID)
	if err != nil {
		return nil, err
	}
	for _, b := range balances {
		if b.TokenID == tokenID {
			balance := b.Balance
			return &balance, nil
		}
	}
	return nil, nil
}

// ConnectedWalletAddress 当前连接钱包的地址
func (c *Client) ConnectedWalletAddress() (string, bool) {
	if c.wallet == nil {
		return "", false
	}
	return c.wallet.Address()
}

// ExecuteOrder 对指定订单执行动作: 生成交易步骤并提交给执行器
// 成功后使该 Token 的订单缓存失效, 下次渲染拉取新状态
func (c *Client) ExecuteOrder(ctx context.Context, param GenerateStepsParam, collectionAddr, tokenID string) (string, error) {
	if c.executor == nil {
		return "", errors.New("no step executor configured")
	}
	if err := c.validate.Struct(param); err != nil {
		return "", errors.Wrap(err, "invalid steps param")
	}

	steps, err := c.Marketplace.GenerateSteps(ctx, param)
	if err != nil {
		return "", errors.Wrap(err, "failed on generate steps")
	}

	txHash, err := c.executor.SubmitSteps(ctx, steps)
	if err != nil {
		return "", errors.Wrap(err, "failed on submit steps")
	}

	c.loader.Del(fmt.Sprintf("orders:%d:%s:%s", param.ChainID, utils.ToValidateAddress(collectionAddr), tokenID))
	return txHash, nil
}
