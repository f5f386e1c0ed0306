package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ProjectsTask/EasySwapKit/common/utils"
	types "github.com/ProjectsTask/EasySwapKit/types/v1"
	"github.com/ProjectsTask/EasySwapKit/xhttp"
)

// BuilderClient Builder 配置服务客户端
// 负责拉取店面页配置: 展示哪些集合, 每个集合用什么卡片类型
type BuilderClient struct {
	http *xhttp.Client
}

func NewBuilderClient(baseURL string, opts ...xhttp.Option) *BuilderClient {
	return &BuilderClient{http: xhttp.NewClient(baseURL, opts...)}
}

// GetMarketplacePage 获取项目的店面页配置
func (c *BuilderClient) GetMarketplacePage(ctx context.Context, projectID int) (*types.MarketplacePage, error) {
	query := url.Values{}
	query.Set("project_id", strconv.Itoa(projectID))

	var page types.MarketplacePage
	if err := c.http.Get(ctx, "/api/v1/marketplace/page", query, &page); err != nil {
		return nil, errors.Wrap(err, "failed on get marketplace page")
	}
	return &page, nil
}

// LookupCollectionCardType 查询某个集合在店面中配置的卡片类型
// 未配置的集合返回 inventory-non-tradable (只展示, 不可交易)
func (c *BuilderClient) LookupCollectionCardType(ctx context.Context, projectID int, chainID int, collectionAddr string) (types.CardType, error) {
	page, err := c.GetMarketplacePage(ctx, projectID)
	if err != nil {
		return "", err
	}
	for _, collection := range page.Collections {
		if collection.ChainID == chainID && utils.AddressEqual(collection.Address, collectionAddr) {
			return collection.CardType, nil
		}
	}
	return types.CardTypeInventoryNonTradable, nil
}
