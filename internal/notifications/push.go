package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ExpoPusher sends push messages through the Expo push API.
type ExpoPusher struct {
	URL    string
	client *resty.Client
}

func NewExpoPusher(url string) *ExpoPusher {
	return &ExpoPusher{
		URL: url,
		client: resty.New().
			SetTimeout(10 * time.Second).
			SetRetryCount(2),
	}
}

type expoMessage struct {
	To    []string               `json:"to"`
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Data  map[string]interface{} `json:"data,omitempty"`
	Sound string                 `json:"sound"`
}

func (p *ExpoPusher) Push(ctx context.Context, tokens []string, title, body string, data map[string]interface{}) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(expoMessage{
			To:    tokens,
			Title: title,
			Body:  body,
			Data:  data,
			Sound: "default",
		}).
		Post(p.URL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("expo push: unexpected status %d", resp.StatusCode())
	}
	return nil
}
