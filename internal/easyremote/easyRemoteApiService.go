package easyremote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/erbridge/internal/config"
	"github.com/wheelibin/erbridge/internal/models"
	"golang.org/x/time/rate"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrUnreachable    = errors.New("unreachable")

	errNotFound = errors.New("not found")
)

// EasyRemoteAPIService talks to the lighting software running on the configured host
type EasyRemoteAPIService struct {
	logger     *log.Logger
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewEasyRemoteAPIService(cfg config.Config, logger *log.Logger) *EasyRemoteAPIService {
	limit := rate.Inf
	if cfg.Client.RateLimit > 0 {
		limit = rate.Limit(cfg.Client.RateLimit)
	}

	return &EasyRemoteAPIService{
		logger:     logger,
		baseURL:    BaseURL(cfg.Host),
		httpClient: &http.Client{Timeout: cfg.Client.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// BaseURL turns the configured host into a URL, defaulting to plain http
func BaseURL(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host
	}
	return "http://" + host
}

func (s *EasyRemoteAPIService) GET(ctx context.Context, url string) ([]byte, error) {
	return s.makeRequest(ctx, http.MethodGet, url, nil)
}

func (s *EasyRemoteAPIService) PUT(ctx context.Context, url string, body []byte) ([]byte, error) {
	// commands are throttled, a brightness slider can produce a lot of them
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.makeRequest(ctx, http.MethodPut, url, body)
}

// Objects reads all controllable objects, keyed by "page/id"
func (s *EasyRemoteAPIService) Objects(ctx context.Context) (map[string]*Object, error) {
	body, err := s.GET(ctx, "/api/objects")
	if err != nil {
		return nil, fmt.Errorf("error reading objects from lighting software: %w", err)
	}

	respBody := ObjectsResponse{}
	if err := json.Unmarshal(body, &respBody); err != nil {
		return nil, fmt.Errorf("error parsing objects response: %w", err)
	}

	s.logger.Debug("Read objects", "total", len(respBody.Objects))

	valid := lo.Filter(respBody.Objects, func(o RemoteObject, _ int) bool {
		if (models.ObjectKey{Page: o.Page, ID: o.ID}).Valid() {
			return true
		}
		s.logger.Warn("Ignoring object with a negative page or id", "page", o.Page, "id", o.ID, "name", o.Name)
		return false
	})

	objects := lo.SliceToMap(valid, func(o RemoteObject) (string, *Object) {
		obj := &Object{Key: models.ObjectKey{Page: o.Page, ID: o.ID}, Name: o.Name, api: s}
		return obj.Key.String(), obj
	})

	return objects, nil
}

// SortedObjects returns objects ordered by page then id
func SortedObjects(objects map[string]*Object) []*Object {
	sorted := lo.Values(objects)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Key.Page != sorted[j].Key.Page {
			return sorted[i].Key.Page < sorted[j].Key.Page
		}
		return sorted[i].Key.ID < sorted[j].Key.ID
	})
	return sorted
}

func (s *EasyRemoteAPIService) setRGB(ctx context.Context, key models.ObjectKey, r, g, b int) error {
	s.logger.Debug("set rgb", "object", key, "r", r, "g", g, "b", b)

	data, err := json.Marshal(rgbRequest{R: r, G: g, B: b})
	if err != nil {
		return err
	}

	_, err = s.PUT(ctx, fmt.Sprintf("/api/objects/%d/%d/rgb", key.Page, key.ID), data)
	if errors.Is(err, errNotFound) {
		err = ErrObjectNotFound
	}
	if err != nil {
		return fmt.Errorf("error setting rgb for object (%s): %w", key, err)
	}
	return nil
}

func (s *EasyRemoteAPIService) setHSV(ctx context.Context, key models.ObjectKey, h, sat, v float64) error {
	s.logger.Debug("set hsv", "object", key, "h", h, "s", sat, "v", v)

	data, err := json.Marshal(hsvRequest{H: h, S: sat, V: v})
	if err != nil {
		return err
	}

	_, err = s.PUT(ctx, fmt.Sprintf("/api/objects/%d/%d/hsv", key.Page, key.ID), data)
	if errors.Is(err, errNotFound) {
		err = ErrObjectNotFound
	}
	if err != nil {
		return fmt.Errorf("error setting hsv for object (%s): %w", key, err)
	}
	return nil
}

func (s *EasyRemoteAPIService) makeRequest(ctx context.Context, verb string, url string, body []byte) ([]byte, error) {

	req, err := http.NewRequestWithContext(ctx, verb, s.baseURL+url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return io.ReadAll(resp.Body)
	case resp.StatusCode == http.StatusNotFound:
		// only the object setters know a 404 means a missing object
		return nil, fmt.Errorf("%w: %s %s", errNotFound, verb, url)
	case resp.StatusCode == http.StatusServiceUnavailable:
		// the lighting software is running but has no output connected
		return nil, ErrUnreachable
	default:
		s.logger.Error("Error calling lighting software", "url", url, "status", resp.Status)
		return nil, fmt.Errorf("unexpected response status: %s", resp.Status)
	}
}
