package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"xiangqi/internal/xiangqi"
)

// 外部荐招服务的客户端。服务拿到编码后的局面，吐回一个 {from,to}。
// 返回的着法一律当不可信输入处理：调用方必须先在自己的走法集合里
// 查到这步棋，查不到就换一步兜底，绝不直接上盘。

var ErrNoService = errors.New("no suggestion service configured")

type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

type suggestRequest struct {
	Position string `json:"position"`
	ToMove   int    `json:"to_move"`
}

type suggestResponse struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (c *Client) Suggest(ctx context.Context, position string, toMove int) (xiangqi.Move, error) {
	if c == nil || c.url == "" {
		return xiangqi.Move{}, ErrNoService
	}

	body, err := json.Marshal(suggestRequest{Position: position, ToMove: toMove})
	if err != nil {
		return xiangqi.Move{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return xiangqi.Move{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return xiangqi.Move{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return xiangqi.Move{}, fmt.Errorf("suggestion service status %d", resp.StatusCode)
	}
	var out suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return xiangqi.Move{}, err
	}
	return xiangqi.Move{From: out.From, To: out.To}, nil
}
