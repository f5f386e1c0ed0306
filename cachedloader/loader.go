package cachedloader

import (
	"time"

	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/collection"
)

// Loader 请求级查询缓存
// 以请求参数拼接的 key 缓存后端查询结果, 并合并并发的同 key 请求 (single-flight),
// 避免同一个 Token 的卡片在一页里渲染多次时重复打后端
type Loader struct {
	cache *collection.Cache
}

// New 创建缓存加载器
// @params ttl: 缓存过期时间
// @params name: 缓存名称, 用于统计日志
func New(ttl time.Duration, name string) (*Loader, error) {
	c, err := collection.NewCache(ttl, collection.WithName(name))
	if err != nil {
		return nil, errors.Wrap(err, "failed on create cache")
	}
	return &Loader{cache: c}, nil
}

// Take 读取缓存, 未命中时调用 fetch 拉取并回填
// 并发的同 key 调用只会触发一次 fetch
func (l *Loader) Take(key string, fetch func() (interface{}, error)) (interface{}, error) {
	return l.cache.Take(key, fetch)
}

// Del 删除指定 key 的缓存 (下单成功后使对应 Token 的订单缓存失效)
func (l *Loader) Del(key string) {
	l.cache.Del(key)
}

// Set 直接写入缓存
func (l *Loader) Set(key string, value interface{}) {
	l.cache.Set(key, value)
}
