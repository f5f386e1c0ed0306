package xhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/ProjectsTask/EasySwapKit/errcode"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultRetryMax   = 3
	defaultRetryWait  = 500 * time.Millisecond
	headerRequestID   = "X-Request-Id"
	headerContentType = "Content-Type"
)

// Response 后端统一响应信封
// 所有 EasySwap 服务都以 {code, msg, result} 形式返回
type Response struct {
	Code   int             `json:"code"`
	Msg    string          `json:"msg"`
	Result json.RawMessage `json:"result"`
}

// Client 带重试的 JSON HTTP 客户端
// 每个后端服务 (Builder/Marketplace/Metadata/Indexer) 各持有一个实例
type Client struct {
	baseURL string
	apiKey  string
	hc      *retryablehttp.Client
}

type Option func(*Client)

// WithAPIKey 设置请求鉴权用的 API Key
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout 覆盖默认的单次请求超时
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.hc.HTTPClient.Timeout = d
	}
}

// NewClient 创建指向某个后端服务的客户端
func NewClient(baseURL string, opts ...Option) *Client {
	hc := retryablehttp.NewClient()
	hc.RetryMax = defaultRetryMax
	hc.RetryWaitMin = defaultRetryWait
	hc.HTTPClient.Timeout = defaultTimeout
	hc.Logger = nil // 重试日志走 xzap, 不使用内置 logger

	c := &Client{
		baseURL: baseURL,
		hc:      hc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get 发起 GET 请求并将 result 解码到 out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, u, nil, out)
}

// Post 发起 POST 请求 (JSON body) 并将 result 解码到 out
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed on marshal request body")
		}
		reqBody = bytes.NewReader(data)
	}
	return c.do(ctx, http.MethodPost, c.baseURL+path, reqBody, out)
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader, out interface{}) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return errors.Wrap(err, "failed on create request")
	}
	req.Header.Set(headerContentType, "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed on %s %s", method, url)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed on read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return errcode.NewCustomErr(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, truncate(string(raw), 200)))
	}

	var envelope Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return errors.Wrapf(err, "failed on decode response (body: %s)", truncate(string(raw), 200))
	}
	if !errcode.IsSuccess(envelope.Code) {
		return errcode.NewErr(envelope.Code, envelope.Msg)
	}

	if out == nil || len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return errors.Wrap(err, "failed on decode result")
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
