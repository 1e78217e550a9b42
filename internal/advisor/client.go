package advisor

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Message is one turn of a chat history.
type Message struct {
	Role    string `json:"role"` // system | user | assistant
	Content string `json:"content"`
}

// Chunk is one streamed fragment of the assistant's reply. Err is set on the
// final chunk when the stream failed mid-way.
type Chunk struct {
	Text string
	Err  error
}

// Client relays chat histories to an Ollama-style completion endpoint and
// streams the reply back. It contains no projection logic; the engine stays
// on the other side of this boundary.
type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Done bool `json:"done"`
}

func NewClient(endpoint, model string) *Client {
	return &Client{
		endpoint: endpoint,
		model:    model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Stream sends the history (the system prompt should be the first message)
// and returns a channel of reply chunks. The channel closes when the provider
// signals done or the context is cancelled.
func (c *Client) Stream(ctx context.Context, history []Message) (<-chan Chunk, error) {
	reqBody := chatRequest{
		Model:    c.model,
		Messages: history,
		Stream:   true,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/chat", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call completion endpoint: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("completion endpoint error (status %d): %s", resp.StatusCode, string(body))
	}

	chunks := make(chan Chunk)
	go c.relay(ctx, resp.Body, chunks)
	return chunks, nil
}

// Complete collects the full streamed reply into one string.
func (c *Client) Complete(ctx context.Context, history []Message) (string, error) {
	chunks, err := c.Stream(ctx, history)
	if err != nil {
		return "", err
	}

	var sb bytes.Buffer
	for chunk := range chunks {
		if chunk.Err != nil {
			return sb.String(), chunk.Err
		}
		sb.WriteString(chunk.Text)
	}
	return sb.String(), nil
}

// relay decodes NDJSON lines from the response body onto the chunk channel
// until the done sentinel, an error, or cancellation.
func (c *Client) relay(ctx context.Context, body io.ReadCloser, chunks chan<- Chunk) {
	defer close(chunks)
	defer body.Close()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var parsed chatResponse
		if err := json.Unmarshal(line, &parsed); err != nil {
			c.send(ctx, chunks, Chunk{Err: fmt.Errorf("failed to decode stream line: %w", err)})
			return
		}

		if parsed.Message.Content != "" {
			if !c.send(ctx, chunks, Chunk{Text: parsed.Message.Content}) {
				return
			}
		}
		if parsed.Done {
			return
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		c.send(ctx, chunks, Chunk{Err: fmt.Errorf("stream read failed: %w", err)})
	}
}

func (c *Client) send(ctx context.Context, chunks chan<- Chunk, chunk Chunk) bool {
	select {
	case chunks <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}
