package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/ProjectsTask/EasySwapKit/logger/xzap"
)

// Config 定义 SDK 的全局配置结构
type Config struct {
	Log            xzap.Config `toml:"log" mapstructure:"log" json:"log"`                                      // 日志配置
	Api            ApiCfg      `toml:"api" mapstructure:"api" json:"api"`                                      // 后端服务地址配置
	Cache          CacheCfg    `toml:"cache" mapstructure:"cache" json:"cache"`                                // 查询缓存配置
	Project        ProjectCfg  `toml:"project" mapstructure:"project" json:"project"`                          // 项目配置
	ChainSupported []ChainCfg  `toml:"chain_supported" mapstructure:"chain_supported" json:"chain_supported"` // 支持的链
}

// ApiCfg 四个后端服务的访问地址
type ApiCfg struct {
	BuilderURL     string `toml:"builder_url" mapstructure:"builder_url" json:"builder_url"`             // Builder 配置服务
	MarketplaceURL string `toml:"marketplace_url" mapstructure:"marketplace_url" json:"marketplace_url"` // Marketplace 订单服务
	MetadataURL    string `toml:"metadata_url" mapstructure:"metadata_url" json:"metadata_url"`          // 元数据服务
	IndexerURL     string `toml:"indexer_url" mapstructure:"indexer_url" json:"indexer_url"`             // 链上索引服务
	ApiKey         string `toml:"api_key" mapstructure:"api_key" json:"api_key"`
}

// CacheCfg 查询缓存配置
type CacheCfg struct {
	TTLSeconds int `toml:"ttl_seconds" mapstructure:"ttl_seconds" json:"ttl_seconds"` // 缓存过期秒数, 0 表示使用默认值
}

// TTL 返回缓存过期时间
func (c CacheCfg) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

// ChainCfg 链的基本信息
type ChainCfg struct {
	Name    string `toml:"name" mapstructure:"name" json:"name"` // 链名称 (如: eth, sepolia)
	ChainID int    `toml:"chain_id" mapstructure:"chain_id" json:"chain_id"`
}

// ProjectCfg 项目配置
type ProjectCfg struct {
	Name      string `toml:"name" mapstructure:"name" json:"name"`
	ProjectID int    `toml:"project_id" mapstructure:"project_id" json:"project_id"` // Builder 侧项目 ID
}

// UnmarshalConfig 加载并解析指定路径的配置文件
// @params configFilePath: 配置文件路径
func UnmarshalConfig(configFilePath string) (*Config, error) {
	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("toml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ESWKIT") // 环境变量前缀, 如 ESWKIT_API_MARKETPLACE_URL
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate 校验配置中的链信息是否有效
func (c *Config) Validate() error {
	for _, chain := range c.ChainSupported {
		if chain.ChainID == 0 || chain.Name == "" {
			return errors.New("invalid chain_supported config")
		}
	}
	if c.Api.MarketplaceURL == "" {
		return errors.New("marketplace_url is required")
	}
	return nil
}
