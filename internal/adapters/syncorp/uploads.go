package syncorp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Upload is a streamed file from the HRIS uploads store (medical
// certificates, coaching signatures). Callers must Close the Body.
type Upload struct {
	Body        io.ReadCloser
	ContentType string
	Length      int64
}

// GetUpload streams a file from /uploads. The path is relative and must
// not escape the uploads root.
func (c *Client) GetUpload(ctx context.Context, sess Session, path string) (*Upload, error) {
	path = strings.TrimLeft(path, "/")
	if path == "" || strings.Contains(path, "..") {
		return nil, fmt.Errorf("invalid upload path")
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/uploads/"+path, sess, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	return &Upload{
		Body:        resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
		Length:      resp.ContentLength,
	}, nil
}
