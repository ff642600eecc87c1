package randomorg

import (
	"Lucky99/internal/api/config"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Client random.org JSON-RPC 客户端，draw 时要求无放回抽样，结果不含重复值
type Client struct {
	http   *resty.Client
	url    string
	apiKey string
}

type rpcRequest struct {
	Jsonrpc string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int       `json:"id"`
}

type rpcParams struct {
	ApiKey      string `json:"apiKey"`
	N           int    `json:"n"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Replacement bool   `json:"replacement"`
}

type rpcResponse struct {
	Result *struct {
		Random *struct {
			Data []int `json:"data"`
		} `json:"random"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewClient(cfg config.RandomOrgConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   client,
		url:    cfg.URL,
		apiKey: cfg.ApiKey,
	}
}

// Draw 请求 count 个 [min,max] 内互不相同的真随机整数
func (c *Client) Draw(ctx context.Context, count, min, max int) ([]int, error) {
	payload := rpcRequest{
		Jsonrpc: "2.0",
		Method:  "generateIntegers",
		Params: rpcParams{
			ApiKey:      c.apiKey,
			N:           count,
			Min:         min,
			Max:         max,
			Replacement: false,
		},
		ID: 1,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		return nil, &ProtocolError{Reason: "response is not valid json"}
	}

	if rpcResp.Error != nil {
		return nil, &ServiceError{Code: rpcResp.Error.Code, Message: rpcResp.Error.Message}
	}
	if rpcResp.Result == nil || rpcResp.Result.Random == nil {
		return nil, &ProtocolError{Reason: "response missing result.random"}
	}

	data := rpcResp.Result.Random.Data
	if len(data) != count {
		return nil, &ProtocolError{Reason: fmt.Sprintf("expected %d numbers, got %d", count, len(data))}
	}

	seen := make(map[int]struct{}, len(data))
	for _, n := range data {
		if n < min || n > max {
			return nil, &ProtocolError{Reason: fmt.Sprintf("number %d out of range [%d,%d]", n, min, max)}
		}
		if _, dup := seen[n]; dup {
			return nil, &ProtocolError{Reason: fmt.Sprintf("duplicate number %d in replacement-free draw", n)}
		}
		seen[n] = struct{}{}
	}

	return data, nil
}
