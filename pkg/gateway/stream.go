package gateway

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// StreamComplete performs one streaming chat completion, yielding textual
// deltas from the provider's SSE stream. The breaker gates stream
// establishment; once the stream is open, read failures surface on the
// error channel without feeding the trip counter. Cancelling ctx closes
// the stream immediately.
func (g *Gateway) StreamComplete(ctx context.Context, req *CompletionRequest) (<-chan string, <-chan error) {
	deltas := make(chan string, 100)
	errs := make(chan error, 1)

	if req.Model == "" {
		req.Model = g.cfg.DefaultModel
	}
	req.Stream = true

	result, err := g.breaker.Execute(func() (interface{}, error) {
		resp, err := g.post(ctx, g.completionClient, "/chat/completions", req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			defer func() { _ = resp.Body.Close() }()
			return nil, errorFromResponse(resp)
		}
		return resp, nil
	})
	if err != nil {
		errs <- err
		close(deltas)
		close(errs)
		return deltas, errs
	}
	resp := result.(*http.Response)

	go func() {
		defer close(deltas)
		defer close(errs)
		defer func() { _ = resp.Body.Close() }()

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return
				}
				if ctx.Err() != nil {
					errs <- ctx.Err()
					return
				}
				errs <- classifyTransport(ctx, err)
				return
			}

			trimmed := strings.TrimSpace(line)
			if !strings.HasPrefix(trimmed, "data: ") {
				continue
			}
			payload := strings.TrimPrefix(trimmed, "data: ")
			if payload == "[DONE]" {
				return
			}

			var chunk streamChunk
			if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
				slog.Warn("Skipping undecodable stream chunk", "error", err)
				continue
			}
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}

			select {
			case deltas <- delta:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()

	return deltas, errs
}
