package homeassistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pet-health-dashboard/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("home assistant client not configured")
	ErrUnauthorized  = errors.New("home assistant unauthorized")
	ErrUnavailable   = errors.New("home assistant entity unavailable")
)

// Client lee estados de entidades vía la API REST de Home Assistant.
type Client struct {
	http       *httpclient.Client
	configured bool
}

func NewClient(baseURL, token string, timeout time.Duration, tr http.RoundTripper) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	token = strings.TrimSpace(token)

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   baseURL,
		Token:     token,
		Timeout:   timeout,
		Transport: tr,
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc, configured: baseURL != "" && token != ""}, nil
}

// State es la parte del payload de /api/states/<entity_id> que usamos.
type State struct {
	EntityID   string         `json:"entity_id"`
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}

func (c *Client) State(ctx context.Context, entityID string) (State, error) {
	if c == nil || !c.configured {
		return State{}, ErrNotConfigured
	}
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return State{}, errors.New("entity id required")
	}

	var out State
	err := c.http.GetJSON(ctx, "/api/states/"+url.PathEscape(entityID), &out)
	switch httpclient.StatusCode(err) {
	case 0:
	case http.StatusUnauthorized, http.StatusForbidden:
		return State{}, ErrUnauthorized
	default:
		return State{}, fmt.Errorf("home assistant state %s: %w", entityID, err)
	}
	if err != nil {
		return State{}, fmt.Errorf("home assistant state %s: %w", entityID, err)
	}
	return out, nil
}

// Percent lee una entidad numérica y la acota a 0-100.
func (c *Client) Percent(ctx context.Context, entityID string) (float64, error) {
	st, err := c.State(ctx, entityID)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(st.State), 64)
	if err != nil {
		// "unavailable", "unknown", etc.
		return 0, fmt.Errorf("%w: %s=%q", ErrUnavailable, entityID, st.State)
	}
	switch {
	case v < 0:
		v = 0
	case v > 100:
		v = 100
	}
	return v, nil
}
