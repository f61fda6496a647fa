package client

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
)

// stream opens an SSE connection and invokes onFrame with each data payload.
// It blocks until the context is cancelled or the transport fails; it never
// reconnects, matching the dashboard's close-on-error behavior.
func (c *Client) stream(ctx context.Context, path string, onFrame func([]byte)) error {
	r, err := c.streamRequest(ctx).
		SetHeader("Accept", "text/event-stream").
		SetDoNotParseResponse(true).
		Get(path)
	if err != nil {
		return fmt.Errorf("open stream %s: %w", path, err)
	}
	body := r.RawBody()
	defer body.Close()
	if r.StatusCode() != 200 {
		if r.StatusCode() == 401 {
			return ErrUnauthorized
		}
		return &APIError{Status: r.StatusCode(), Message: r.Status()}
	}

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	prefix := []byte("data: ")
	for scanner.Scan() {
		line := scanner.Bytes()
		if !bytes.HasPrefix(line, prefix) {
			continue
		}
		frame := make([]byte, len(line)-len(prefix))
		copy(frame, line[len(prefix):])
		onFrame(frame)
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stream %s: %w", path, err)
	}
	return ctx.Err()
}
