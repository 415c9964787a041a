package ipgeo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lost-found-pets/internal/geo"
	"lost-found-pets/internal/platform/httpclient"
	"lost-found-pets/internal/platform/logger"
	"lost-found-pets/internal/ports/geolocation"

	"github.com/tidwall/gjson"
)

var (
	ErrNotConfigured = errors.New("ipgeo locator not configured")
)

// Config del locator por IP. URL y APIKey vienen de env vars.
type Config struct {
	URL    string
	APIKey string

	// Opcional: header para la API key; vacío = "X-Api-Key".
	APIKeyHeader string

	Timeout  time.Duration
	RetryMax int

	Logger logger.Logger
}

// Locator resuelve la posición aproximada consultando un servicio de
// geolocalización por IP.
type Locator struct {
	url          string
	apiKey       string
	apiKeyHeader string
	http         *httpclient.Client
}

var _ geolocation.Locator = (*Locator)(nil)

func New(cfg Config) *Locator {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Locator{
		url:          strings.TrimSpace(cfg.URL),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		http: httpclient.New(httpclient.Options{
			Timeout:  timeout,
			RetryMax: cfg.RetryMax,
			Logger:   cfg.Logger,
		}),
	}
}

func (l *Locator) IsConfigured() bool {
	return l != nil && l.url != ""
}

// CurrentPosition consulta el servicio una vez. 401/403 cuentan como
// permiso denegado; cualquier otro fallo como posición no disponible.
func (l *Locator) CurrentPosition(ctx context.Context) (geo.LatLng, error) {
	if !l.IsConfigured() {
		return geo.LatLng{}, fmt.Errorf("%w: %w", geolocation.ErrUnsupported, ErrNotConfigured)
	}

	var headers map[string]string
	if l.apiKey != "" {
		headers = map[string]string{l.apiKeyHeader: l.apiKey}
	}

	body, err := l.http.Get(ctx, l.url, headers)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return geo.LatLng{}, fmt.Errorf("%w: status=%d", geolocation.ErrDenied, httpErr.StatusCode)
			}
		}
		return geo.LatLng{}, fmt.Errorf("%w: %v", geolocation.ErrUnavailable, err)
	}

	return parsePosition(body)
}

// parsePosition acepta los formatos más comunes de estos servicios:
// {"latitude":..,"longitude":..} o {"lat":..,"lon"|"lng":..}.
func parsePosition(body []byte) (geo.LatLng, error) {
	if !gjson.ValidBytes(body) {
		return geo.LatLng{}, fmt.Errorf("%w: invalid json", geolocation.ErrUnavailable)
	}

	lat := firstNumber(body, "latitude", "lat", "location.latitude", "location.lat")
	lng := firstNumber(body, "longitude", "lon", "lng", "location.longitude", "location.lng")
	if !lat.Exists() || !lng.Exists() {
		return geo.LatLng{}, fmt.Errorf("%w: response without coordinates", geolocation.ErrUnavailable)
	}

	pos := geo.LatLng{Lat: lat.Float(), Lng: lng.Float()}
	if !pos.Valid() {
		return geo.LatLng{}, fmt.Errorf("%w: invalid position %v,%v", geolocation.ErrUnavailable, pos.Lat, pos.Lng)
	}
	return pos, nil
}

func firstNumber(body []byte, paths ...string) gjson.Result {
	for _, p := range paths {
		r := gjson.GetBytes(body, p)
		if r.Type == gjson.Number {
			return r
		}
		if r.Type == gjson.String && gjson.Parse(r.Str).Type == gjson.Number {
			return gjson.Parse(r.Str)
		}
	}
	return gjson.Result{}
}
