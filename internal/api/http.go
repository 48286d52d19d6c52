package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"eatgo/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// HTTP talks JSON to the restaurant API and the login service.
type HTTP struct {
	Base      string
	LoginBase string
	HTTP      *http.Client

	limiter *rate.Limiter
	group   singleflight.Group
	log     *zap.Logger
}

// Option configures an HTTP client.
type Option func(*HTTP)

// WithHTTPClient sets the underlying client (timeouts, transport).
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) {
		if c != nil {
			h.HTTP = c
		}
	}
}

// WithLoginBase points login requests at a different host.
func WithLoginBase(base string) Option {
	return func(h *HTTP) {
		if base != "" {
			h.LoginBase = base
		}
	}
}

// WithRateLimit allows at most rps requests per second with the given burst.
// rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(h *HTTP) {
		if rps <= 0 {
			h.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger logs each request at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(h *HTTP) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHTTP returns a client for base. Login goes to base too unless
// WithLoginBase says otherwise.
func NewHTTP(base string, opts ...Option) *HTTP {
	c := &HTTP{
		Base:      base,
		LoginBase: base,
		HTTP:      http.DefaultClient,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTP) FetchRegions(ctx context.Context) ([]domain.Region, error) {
	var out []domain.Region
	if err := c.getJSON(ctx, "/regions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.getJSON(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) FetchRestaurants(ctx context.Context, q domain.RestaurantQuery) ([]domain.Restaurant, error) {
	v := url.Values{}
	v.Set("region", q.RegionName)
	v.Set("category", strconv.FormatInt(q.CategoryID, 10))

	var out []domain.Restaurant
	if err := c.getJSON(ctx, "/restaurants?"+v.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) FetchRestaurant(ctx context.Context, restaurantID int64) (domain.Restaurant, error) {
	var out domain.Restaurant
	if err := c.getJSON(ctx, restaurantPath(restaurantID), &out); err != nil {
		return domain.Restaurant{}, err
	}
	return out, nil
}

// FetchReviews reads the restaurant detail and returns only its reviews; the
// API has no separate review listing.
func (c *HTTP) FetchReviews(ctx context.Context, restaurantID int64) (domain.Reviews, error) {
	var r domain.Restaurant
	if err := c.getJSON(ctx, restaurantPath(restaurantID), &r); err != nil {
		return domain.Reviews{}, err
	}
	return domain.Reviews{Reviews: r.Reviews}, nil
}

func (c *HTTP) PostLogin(ctx context.Context, creds domain.Credentials) (domain.AccessToken, error) {
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	if err := c.post(ctx, c.LoginBase+"/session", "", creds, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", ErrEmptyToken
	}
	return domain.AccessToken(out.AccessToken), nil
}

// PostReview posts a review. After a successful write, reads of the
// restaurant no longer join a GET that was already in flight.
func (c *HTTP) PostReview(ctx context.Context, sub domain.ReviewSubmission) error {
	if err := c.post(ctx, c.Base+restaurantPath(sub.RestaurantID)+"/reviews", sub.AccessToken, sub, nil); err != nil {
		return err
	}
	c.group.Forget(restaurantPath(sub.RestaurantID))
	return nil
}

func restaurantPath(id int64) string {
	return "/restaurants/" + strconv.FormatInt(id, 10)
}

func (c *HTTP) post(ctx context.Context, target string, token domain.AccessToken, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if !token.Empty() {
		req.Header.Set("Authorization", "Bearer "+token.String())
	}
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}

// getJSON fetches path and decodes it into out. Concurrent calls for the same
// path share a single request, issued with the first caller's context.
func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	v, err, _ := c.group.Do(path, func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
		if err != nil {
			return nil, err
		}
		return c.do(req)
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(v.([]byte), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *HTTP) do(req *http.Request) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	id := uuid.NewString()
	req.Header.Set(requestIDHeader, id)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("api request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", id),
	)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		c.log.Debug("api error",
			zap.String("request_id", id),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &StatusError{
			Method: req.Method,
			Path:   req.URL.Path,
			Code:   resp.StatusCode,
			Status: resp.Status,
		}
	}
	return body, nil
}

var _ domain.APIClient = (*HTTP)(nil)
