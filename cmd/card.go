package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ProjectsTask/EasySwapKit/card"
	"github.com/ProjectsTask/EasySwapKit/client"
	"github.com/ProjectsTask/EasySwapKit/config"
	"github.com/ProjectsTask/EasySwapKit/logger/xzap"
	types "github.com/ProjectsTask/EasySwapKit/types/v1"
)

var (
	cardChainID    int
	cardCollection string
	cardTokenID    string
	cardViewer     string
	cardTypeFlag   string
)

// CardCmd 定义 "card" 子命令
// 拉取单个 Token 的市场状态并打印卡片决策结果, 用于调试店面接入
var CardCmd = &cobra.Command{
	Use:   "card",
	Short: "resolve collectible card state for a token.",
	Long:  "fetch best orders, viewer balance and currency, then print the resolved card props.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// 1. 读取和解析配置文件
		cfg, err := config.UnmarshalConfig(cfgFile)
		if err != nil {
			return err
		}

		// 2. 初始化日志模块
		if _, err = xzap.SetUp(cfg.Log); err != nil {
			return err
		}

		// 3. 初始化聚合客户端
		sdk, err := client.New(cfg)
		if err != nil {
			xzap.WithContext(ctx).Error("Failed to create client", zap.Error(err))
			return err
		}

		// 4. 拉取 Token 的订单聚合视图与浏览者持仓
		collectible, err := sdk.FetchBestOrders(ctx, cardChainID, cardCollection, cardTokenID)
		if err != nil {
			xzap.WithContext(ctx).Error("Failed to fetch best orders", zap.Error(err))
			return err
		}

		var balance *string
		if cardViewer != "" {
			balance, err = sdk.FetchViewerBalance(ctx, cardChainID, cardCollection, cardTokenID, cardViewer)
			if err != nil {
				xzap.WithContext(ctx).Error("Failed to fetch viewer balance", zap.Error(err))
				return err
			}
		}

		// 5. 解析计价币种
		input := card.CardInput{
			CollectibleOrder: *collectible,
			CardType:         types.CardType(cardTypeFlag),
			ViewerAddress:    cardViewer,
			ViewerBalance:    balance,
		}
		if collectible.Listing != nil {
			currency, err := sdk.FetchCurrency(ctx, cardChainID, collectible.Listing.PriceCurrencyAddress)
			if err != nil {
				return err
			}
			input.ListingCurrency = currency
		}
		if collectible.Offer != nil {
			currency, err := sdk.FetchCurrency(ctx, cardChainID, collectible.Offer.PriceCurrencyAddress)
			if err != nil {
				return err
			}
			input.OfferCurrency = currency
		}

		// 6. 运行决策核心并输出结果
		props, err := card.BuildCollectibleCardProps(input)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(props, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}

func init() {
	CardCmd.Flags().IntVar(&cardChainID, "chain-id", 1, "chain id")
	CardCmd.Flags().StringVar(&cardCollection, "collection", "", "collection contract address")
	CardCmd.Flags().StringVar(&cardTokenID, "token-id", "", "token id")
	CardCmd.Flags().StringVar(&cardViewer, "viewer", "", "viewer wallet address (optional)")
	CardCmd.Flags().StringVar(&cardTypeFlag, "card-type", string(types.CardTypeMarket), "card type: market/shop/inventory-non-tradable")
	_ = CardCmd.MarkFlagRequired("collection")
	_ = CardCmd.MarkFlagRequired("token-id")

	rootCmd.AddCommand(CardCmd)
}
