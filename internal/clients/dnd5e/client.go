package dnd5e

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
)

// equipmentSource is the slice of the upstream API this client reads
type equipmentSource interface {
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
}

type client struct {
	source equipmentSource

	mu    sync.RWMutex
	cache map[string]*BaseWeapon
}

type Config struct {
	HttpClient *http.Client

	// BaseURL points the client at a mirror of the public API. Only the
	// scheme and host are used; paths are the upstream's.
	BaseURL string
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.MissingParam("cfg")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil || base.Host == "" {
			return nil, dnderr.InvalidArgumentf("invalid dnd5e base url %q", cfg.BaseURL)
		}
		rewritten := *httpClient
		rewritten.Transport = &hostRewriter{base: base, next: httpClient.Transport}
		httpClient = &rewritten
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: httpClient,
	})
	if err != nil {
		return nil, err
	}

	return newClient(dndClient), nil
}

func newClient(source equipmentSource) *client {
	return &client{
		source: source,
		cache:  make(map[string]*BaseWeapon),
	}
}

// GetBaseWeapon fetches a weapon by SRD key. Results are cached for the life
// of the client since reference data does not change.
func (c *client) GetBaseWeapon(key string) (*BaseWeapon, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, dnderr.MissingParam("GetBaseWeapon.key")
	}

	c.mu.RLock()
	cached, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	response, err := c.source.GetEquipment(key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get equipment %s", key)
	}
	if response == nil {
		return nil, dnderr.NotFoundf("equipment '%s' not found", key).
			WithMeta("key", key)
	}

	apiWeapon, ok := response.(*apiEntities.Weapon)
	if !ok {
		return nil, dnderr.InvalidArgumentf("equipment '%s' is not a weapon", key).
			WithMeta("key", key)
	}

	weapon := apiWeaponToBaseWeapon(apiWeapon)

	c.mu.Lock()
	c.cache[key] = weapon
	c.mu.Unlock()

	return weapon, nil
}

// hostRewriter sends every request to the configured host
type hostRewriter struct {
	base *url.URL
	next http.RoundTripper
}

func (t *hostRewriter) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}

	out := req.Clone(req.Context())
	out.URL.Scheme = t.base.Scheme
	out.URL.Host = t.base.Host
	out.Host = t.base.Host

	resp, err := next.RoundTrip(out)
	if err != nil {
		return nil, fmt.Errorf("dnd5e request to %s: %w", t.base.Host, err)
	}
	return resp, nil
}
