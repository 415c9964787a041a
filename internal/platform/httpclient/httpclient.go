package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lost-found-pets/internal/platform/logger"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultTimeout  = 10 * time.Second
	DefaultRetryMax = 2

	maxBodyBytes = 1 << 20 // 1MB
)

// Options del cliente. Cero = defaults.
type Options struct {
	Timeout  time.Duration
	RetryMax int // negativo = sin reintentos

	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Transport permite inyectar un RoundTripper (p.ej. en tests).
	Transport http.RoundTripper

	Logger logger.Logger
}

// Client envuelve un *http.Client con reintentos para adapters.
type Client struct {
	HTTP *http.Client
}

// New crea un Client con reintentos (5xx, 429 y errores de red).
func New(opts Options) *Client {
	rc := retryablehttp.NewClient()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rc.HTTPClient.Timeout = timeout
	if opts.Transport != nil {
		rc.HTTPClient.Transport = opts.Transport
	}

	switch {
	case opts.RetryMax < 0:
		rc.RetryMax = 0
	case opts.RetryMax == 0:
		rc.RetryMax = DefaultRetryMax
	default:
		rc.RetryMax = opts.RetryMax
	}
	if opts.RetryWaitMin > 0 {
		rc.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		rc.RetryWaitMax = opts.RetryWaitMax
	}

	// Al agotar reintentos devolver la última respuesta, no un error genérico.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if opts.Logger != nil {
		rc.Logger = leveled{log: opts.Logger}
	} else {
		rc.Logger = nil
	}

	return &Client{HTTP: rc.StandardClient()}
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// Get trae el body crudo (máx 1MB). Un status no-2xx devuelve *HTTPError.
func (c *Client) Get(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	if c == nil || c.HTTP == nil {
		return nil, errors.New("httpclient: nil client")
	}

	fullURL, err := checkURL(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	return raw, nil
}

// checkURL exige una URL absoluta http(s).
func checkURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", errors.New("httpclient: empty url")
	}
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return "", fmt.Errorf("httpclient: invalid url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("httpclient: url must be absolute http(s): %q", rawURL)
	}
	return rawURL, nil
}

// leveled adapta logger.Logger a retryablehttp.LeveledLogger.
type leveled struct {
	log logger.Logger
}

func (l leveled) Error(msg string, kv ...interface{}) { l.log.Error(msg, pairs(kv)) }
func (l leveled) Info(msg string, kv ...interface{})  { l.log.Debug(msg, pairs(kv)) }
func (l leveled) Debug(msg string, kv ...interface{}) { l.log.Debug(msg, pairs(kv)) }
func (l leveled) Warn(msg string, kv ...interface{})  { l.log.Warn(msg, pairs(kv)) }

func pairs(kv []interface{}) map[string]any {
	if len(kv) == 0 {
		return nil
	}
	out := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return out
}
