package sportradar

import (
	"context"
	"io"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 6 << 20

// Transport performs a single GET and hands back the status and body.
// Network failures are returned as errors; HTTP status codes are not.
type Transport interface {
	Get(ctx context.Context, rawURL string, header map[string]string) (int, []byte, error)
}

type NetHTTPTransport struct {
	client *http.Client
}

// NewNetHTTPTransport instruments client with otelhttp. A nil client gets a
// fresh one using timeout.
func NewNetHTTPTransport(client *http.Client, timeout time.Duration) *NetHTTPTransport {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	if client.Timeout <= 0 {
		client.Timeout = timeout
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	client.Transport = otelhttp.NewTransport(base)
	return &NetHTTPTransport{client: client}
}

func (t *NetHTTPTransport) Get(ctx context.Context, rawURL string, header map[string]string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, crerr.Wrap(err, "build request")
	}
	for key, value := range header {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, crerr.Wrap(err, "read response body")
	}
	return resp.StatusCode, raw, nil
}

type FastHTTPTransport struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func NewFastHTTPTransport(timeout time.Duration) *FastHTTPTransport {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &FastHTTPTransport{
		client: &fasthttp.Client{
			Name:                "diamond-stats",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBytes,
		},
		timeout: timeout,
	}
}

func (t *FastHTTPTransport) Get(ctx context.Context, rawURL string, header map[string]string) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	for key, value := range header {
		req.Header.Set(key, value)
	}

	deadline := time.Now().Add(t.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	if err := t.client.DoDeadline(req, resp, deadline); err != nil {
		return 0, nil, err
	}

	body := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), body, nil
}
