package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cognisentinel/cognisentinel-go/internal/model"
)

// QuoteClient 本地名言服务客户端
type QuoteClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewQuoteClient 创建名言服务客户端
func NewQuoteClient(baseURL string) *QuoteClient {
	return &QuoteClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 3 * time.Second},
	}
}

// Fetch 获取一条名言
func (c *QuoteClient) Fetch(ctx context.Context) (model.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/quote", nil)
	if err != nil {
		return model.Quote{}, fmt.Errorf("创建请求失败: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Quote{}, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return model.Quote{}, fmt.Errorf("名言服务返回错误: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Quote{}, fmt.Errorf("读取响应失败: %w", err)
	}

	var quote model.Quote
	if err := json.Unmarshal(body, &quote); err != nil {
		return model.Quote{}, fmt.Errorf("解析响应失败: %w", err)
	}

	return quote, nil
}
