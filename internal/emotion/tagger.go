package emotion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Tagger 文本情绪标注能力：返回按置信度排序的预测列表
type Tagger interface {
	Predict(text string) ([]Prediction, error)
}

// HTTPTagger 通过本地模型服务进行情绪标注
type HTTPTagger struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPTagger 创建模型服务标注器
func NewHTTPTagger(baseURL string) *HTTPTagger {
	return &HTTPTagger{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Predict 调用模型服务预测情绪
func (t *HTTPTagger) Predict(text string) ([]Prediction, error) {
	reqBody := struct {
		Text string `json:"text"`
	}{Text: text}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("序列化请求失败: %w", err)
	}

	resp, err := t.httpClient.Post(t.baseURL+"/predict", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("模型服务返回错误: %d, body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Labels []Prediction `json:"labels"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	if len(result.Labels) == 0 {
		return nil, fmt.Errorf("模型服务返回空结果")
	}

	return result.Labels, nil
}
