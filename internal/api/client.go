package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	ytclient "github.com/ytget/ytdlp/v2/client"

	"github.com/ytget/nostorage/internal/logger"
	"github.com/ytget/nostorage/internal/model"
)

// Endpoint paths
const (
	InfoPath     = "/api/info"
	DownloadPath = "/api/download"
)

// Header names
const (
	HeaderRequestID          = "X-Request-ID"
	HeaderContentDisposition = "Content-Disposition"
)

// maxErrorBodyBytes bounds how much of an error response is read
const maxErrorBodyBytes = 64 * 1024

// HTTPConfig configures the underlying HTTP client
type HTTPConfig struct {
	Timeout   time.Duration // 0 means no timeout
	UserAgent string
}

// NewHTTPClient builds the HTTP client used for backend calls. Retries are
// disabled: failed calls are re-triggered by the user.
// The library's default client and header timeouts are cleared: downloads are
// transcoded on the fly and may stream for as long as the media lasts, so only
// cfg.Timeout (0 = none) bounds a request.
func NewHTTPClient(cfg HTTPConfig) *http.Client {
	c := ytclient.NewWith(ytclient.Config{
		Timeout:   cfg.Timeout,
		Retries:   0,
		UserAgent: cfg.UserAgent,
	})

	hc := c.HTTPClient
	hc.Timeout = cfg.Timeout
	if tr, ok := hc.Transport.(*http.Transport); ok {
		tr = tr.Clone()
		tr.ResponseHeaderTimeout = 0
		hc.Transport = tr
	}
	return hc
}

// DownloadRequest is the body of POST /api/download
type DownloadRequest struct {
	URL      string     `json:"url"`
	FormatID string     `json:"format_id"`
	Mode     model.Mode `json:"mode"`
}

// DownloadResult describes a saved download
type DownloadResult struct {
	FileName string // name resolved from Content-Disposition
	Path     string // where the body was saved
	Bytes    int64
}

type infoRequest struct {
	URL string `json:"url"`
}

// Client talks to the download backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string

	mu    sync.RWMutex
	saver Saver
}

// NewClient creates a new API client. An empty baseURL targets relative paths on
// the default host, which only makes sense behind a proxy; callers normally pass
// the configured API base.
func NewClient(baseURL string, httpClient *http.Client, saver Saver) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		saver:      saver,
	}
}

// SetUserAgent sets the User-Agent header sent with every request
func (c *Client) SetUserAgent(userAgent string) {
	c.userAgent = userAgent
}

// SetSaver replaces the file saver, e.g. after the download directory changed
func (c *Client) SetSaver(saver Saver) {
	c.mu.Lock()
	c.saver = saver
	c.mu.Unlock()
}

// BaseURL returns the configured API base
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchInfo retrieves metadata for a media URL
func (c *Client) FetchInfo(ctx context.Context, url string) (*model.MediaInfo, error) {
	resp, requestID, err := c.post(ctx, InfoPath, infoRequest{URL: url})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info model.MediaInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		logger.Log.Warnw("malformed info response", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("decode info response: %w: %w", ErrBadResponse, err)
	}
	if info.Formats == nil {
		info.Formats = []model.Format{}
	}

	return &info, nil
}

// DownloadVideo triggers a download, saves the body and returns the resolved file name
func (c *Client) DownloadVideo(ctx context.Context, req DownloadRequest) (string, error) {
	result, err := c.Download(ctx, req)
	if err != nil {
		return "", err
	}
	return result.FileName, nil
}

// Download triggers a download and saves the streamed body with the configured Saver
func (c *Client) Download(ctx context.Context, req DownloadRequest) (*DownloadResult, error) {
	c.mu.RLock()
	saver := c.saver
	c.mu.RUnlock()
	if saver == nil {
		return nil, ErrNoSaver
	}

	resp, requestID, err := c.post(ctx, DownloadPath, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	fileName := ParseFileName(resp.Header.Get(HeaderContentDisposition))

	counter := &countingReader{r: resp.Body}
	path, err := saver.Save(fileName, counter)
	if err != nil {
		logger.Log.Errorw("download save failed", "request_id", requestID, "file", fileName, "error", err)
		return nil, err
	}

	logger.Log.Infow("download saved",
		"request_id", requestID,
		"file", fileName,
		"path", path,
		"bytes", counter.n,
	)

	return &DownloadResult{FileName: fileName, Path: path, Bytes: counter.n}, nil
}

// FetchThumbnail downloads a thumbnail image for the preview
func (c *Client) FetchThumbnail(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build thumbnail request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError("fetch thumbnail", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Status: resp.StatusCode, Message: GenericRequestMessage}
	}
	return io.ReadAll(resp.Body)
}

// post sends a JSON body and returns the response if it is 2xx (handleResponse)
func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log := logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"path":       path,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warnw("request failed", "error", err, "duration", time.Since(start))
		return nil, requestID, transportError("POST "+path, err)
	}

	log.Debugw("response received", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		reqErr := newRequestError(resp.StatusCode, data, requestID)
		log.Warnw("request rejected", "status", resp.StatusCode, "detail", reqErr.Message)
		return nil, requestID, reqErr
	}

	return resp, requestID, nil
}

// countingReader counts bytes passed through to the saver
type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
