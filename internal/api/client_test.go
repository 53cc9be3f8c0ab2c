package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/nostorage/internal/model"
)

type memorySaver struct {
	name string
	data []byte
	err  error
}

func (s *memorySaver) Save(name string, body io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.name = name
	s.data = data
	return "/downloads/" + name, nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, saver Saver) *Client {
	t.Helper()
	s := httptest.NewServer(handler)
	t.Cleanup(s.Close)
	return NewClient(s.URL, s.Client(), saver)
}

func TestFetchInfo(t *testing.T) {
	var gotBody map[string]string
	var gotRequestID string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != InfoPath {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, expected application/json", ct)
		}
		gotRequestID = r.Header.Get(HeaderRequestID)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"title": "Clip",
			"thumbnail": "https://img.example/clip.jpg",
			"duration": 125,
			"formats": [
				{"format_id": "137", "label": "1080p (mp4)", "filesize": 1048576, "ext": "mp4", "height": 1080},
				{"format_id": "22", "label": "720p (mp4)", "filesize": null}
			]
		}`))
	}, nil)

	info, err := c.FetchInfo(context.Background(), "https://youtube.com/watch?v=abc")
	if err != nil {
		t.Fatalf("FetchInfo failed: %v", err)
	}

	if gotBody["url"] != "https://youtube.com/watch?v=abc" {
		t.Errorf("request body url = %q", gotBody["url"])
	}
	if gotRequestID == "" {
		t.Error("expected X-Request-ID header")
	}

	size := int64(1048576)
	duration := 125.0
	expected := &model.MediaInfo{
		Title:     "Clip",
		Thumbnail: "https://img.example/clip.jpg",
		Duration:  &duration,
		Formats: []model.Format{
			{FormatID: "137", Label: "1080p (mp4)", Filesize: &size, Ext: "mp4", Height: 1080},
			{FormatID: "22", Label: "720p (mp4)"},
		},
	}
	if diff := cmp.Diff(expected, info); diff != "" {
		t.Errorf("FetchInfo mismatch (-want +got):\n%s", diff)
	}
	if info.DefaultFormatID() != "137" {
		t.Errorf("DefaultFormatID() = %s, expected 137", info.DefaultFormatID())
	}
}

func TestFetchInfoServerDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"video unavailable"}`))
	}, nil)

	_, err := c.FetchInfo(context.Background(), "https://example.com/v")
	if err == nil {
		t.Fatal("expected error on 500")
	}
	if err.Error() != "video unavailable" {
		t.Errorf("error message = %q, expected %q", err.Error(), "video unavailable")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, expected 500", reqErr.Status)
	}
	if !errors.Is(err, ErrRequestFailed) {
		t.Error("expected errors.Is(err, ErrRequestFailed)")
	}
}

func TestFetchInfoGenericErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"plain text body", "Internal Server Error"},
		{"json without detail", `{"error":"boom"}`},
		{"empty detail", `{"detail":""}`},
		{"empty body", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(tc.body))
			}, nil)

			_, err := c.FetchInfo(context.Background(), "https://example.com/v")
			if err == nil || err.Error() != GenericRequestMessage {
				t.Errorf("error = %v, expected %q", err, GenericRequestMessage)
			}
		})
	}
}

func TestFetchInfoValidationDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","url"],"msg":"invalid or missing URL scheme","type":"url_parsing"}]}`))
	}, nil)

	_, err := c.FetchInfo(context.Background(), "not a url")
	if err == nil || err.Error() != "invalid or missing URL scheme" {
		t.Errorf("error = %v, expected validation message", err)
	}
}

func TestFetchInfoMalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not-json"))
	}, nil)

	_, err := c.FetchInfo(context.Background(), "https://example.com/v")
	if !errors.Is(err, ErrBadResponse) {
		t.Errorf("expected ErrBadResponse, got %v", err)
	}
}

func TestFetchInfoFractionalFilesize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Clip","formats":[{"format_id":"137","label":"1080p","filesize":1048576.0},{"format_id":"22","label":"720p","filesize":2500.7}]}`))
	}, nil)

	info, err := c.FetchInfo(context.Background(), "https://example.com/v")
	if err != nil {
		t.Fatalf("FetchInfo failed: %v", err)
	}
	if got := info.Formats[0].SizeLabel(); got != "1.0 MB" {
		t.Errorf("SizeLabel() = %s, expected 1.0 MB", got)
	}
	if got := *info.Formats[1].Filesize; got != 2500 {
		t.Errorf("Filesize = %d, expected 2500", got)
	}
}

func TestNewHTTPClientWithoutTimeout(t *testing.T) {
	hc := NewHTTPClient(HTTPConfig{})

	if hc.Timeout != 0 {
		t.Errorf("Timeout = %v, expected none", hc.Timeout)
	}
	tr, ok := hc.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("unexpected transport type %T", hc.Transport)
	}
	if tr.ResponseHeaderTimeout != 0 {
		t.Errorf("ResponseHeaderTimeout = %v, expected none", tr.ResponseHeaderTimeout)
	}
}

func TestNewHTTPClientConfiguredTimeout(t *testing.T) {
	hc := NewHTTPClient(HTTPConfig{Timeout: 90 * time.Second})

	if hc.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, expected 90s", hc.Timeout)
	}
}

func TestFetchInfoTransportError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := s.URL
	s.Close()

	c := NewClient(base, nil, nil)
	_, err := c.FetchInfo(context.Background(), "https://example.com/v")
	if !errors.Is(err, ErrTransport) {
		t.Errorf("expected ErrTransport, got %v", err)
	}
}

func TestFetchInfoContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchInfo(ctx, "https://example.com/v")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDownloadVideo(t *testing.T) {
	cases := []struct {
		name        string
		disposition string
		expected    string
	}{
		{"quoted filename", `attachment; filename="clip.mp4"`, "clip.mp4"},
		{"extended filename", `attachment; filename*=UTF-8''clip%20name.mp4`, "clip name.mp4"},
		{"missing header", "", DefaultFileName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got DownloadRequest
			saver := &memorySaver{}
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != DownloadPath {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				_ = json.NewDecoder(r.Body).Decode(&got)
				if tc.disposition != "" {
					w.Header().Set(HeaderContentDisposition, tc.disposition)
				}
				w.Header().Set("Content-Type", "video/mp4")
				_, _ = w.Write([]byte("binary-stream"))
			}, saver)

			req := DownloadRequest{URL: "https://example.com/v", FormatID: "22", Mode: model.ModeVideo}
			fileName, err := c.DownloadVideo(context.Background(), req)
			if err != nil {
				t.Fatalf("DownloadVideo failed: %v", err)
			}
			if fileName != tc.expected {
				t.Errorf("fileName = %q, expected %q", fileName, tc.expected)
			}
			if saver.name != tc.expected {
				t.Errorf("saved name = %q, expected %q", saver.name, tc.expected)
			}
			if !bytes.Equal(saver.data, []byte("binary-stream")) {
				t.Errorf("saved data = %q", saver.data)
			}
			if diff := cmp.Diff(req, got); diff != "" {
				t.Errorf("request body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDownloadRequestWireFormat(t *testing.T) {
	data, err := json.Marshal(DownloadRequest{URL: "u", FormatID: "", Mode: model.ModeAudio})
	if err != nil {
		t.Fatal(err)
	}
	expected := `{"url":"u","format_id":"","mode":"audio"}`
	if string(data) != expected {
		t.Errorf("wire format = %s, expected %s", data, expected)
	}
}

func TestDownloadServerError(t *testing.T) {
	saver := &memorySaver{}
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"format_id is required for video downloads"}`))
	}, saver)

	_, err := c.DownloadVideo(context.Background(), DownloadRequest{URL: "https://example.com/v", Mode: model.ModeVideo})
	if err == nil || err.Error() != "format_id is required for video downloads" {
		t.Errorf("error = %v", err)
	}
	if saver.name != "" {
		t.Error("nothing should be saved on error")
	}
}

func TestDownloadWithoutSaver(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", nil, nil)
	_, err := c.Download(context.Background(), DownloadRequest{URL: "u", Mode: model.ModeAudio})
	if !errors.Is(err, ErrNoSaver) {
		t.Errorf("expected ErrNoSaver, got %v", err)
	}
}

func TestDownloadSaverError(t *testing.T) {
	saveErr := errors.New("disk full")
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("data"))
	}, &memorySaver{err: saveErr})

	_, err := c.Download(context.Background(), DownloadRequest{URL: "u", Mode: model.ModeAudio})
	if !errors.Is(err, saveErr) {
		t.Errorf("expected saver error, got %v", err)
	}
}

func TestNewClientTrimsBaseURL(t *testing.T) {
	c := NewClient("https://api.example.com/", nil, nil)
	if c.BaseURL() != "https://api.example.com" {
		t.Errorf("BaseURL() = %s", c.BaseURL())
	}
}

func TestFetchThumbnail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("jpeg-bytes"))
	}, nil)

	data, err := c.FetchThumbnail(context.Background(), c.BaseURL()+"/thumb.jpg")
	if err != nil {
		t.Fatalf("FetchThumbnail failed: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("data = %q", data)
	}

	if _, err := c.FetchThumbnail(context.Background(), c.BaseURL()+"/missing.jpg"); err == nil {
		t.Error("expected error for 404 thumbnail")
	}
}
