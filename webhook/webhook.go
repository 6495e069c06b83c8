package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-leo/notify/notifier"
)

var _ notifier.Notifier = (*Webhook)(nil)

// Webhook is a terminal that posts each payload to a webhook URL as a JSON
// body of the form {"text": payload}. A non-2xx response is an error.
type Webhook struct {
	url     string
	options *option
}

type body struct {
	Text string `json:"text"`
}

// New returns a Webhook terminal posting to url.
// It panics if url is empty.
func New(url string, opts ...Option) *Webhook {
	if url == "" {
		panic("webhook: empty url")
	}
	return &Webhook{url: url, options: newOption(opts...)}
}

func (w *Webhook) Notify(ctx context.Context, message string) error {
	return w.Deliver(ctx, w.Format(message))
}

func (w *Webhook) Deliver(ctx context.Context, payload string) error {
	encoded, err := jsoniter.Marshal(body{Text: payload})
	if err != nil {
		return fmt.Errorf("webhook: encode body: %w", err)
	}
	if w.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.options.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("webhook: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.options.Client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook: unexpected status %s", resp.Status)
	}
	return nil
}

func (w *Webhook) Format(message string) string {
	return message
}

// Describe returns a fixed label. The URL never appears in descriptions.
func (w *Webhook) Describe() string {
	return "Webhook"
}
