package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/mywebclass-content/internal/config"
	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/internal/utils"
	"github.com/MKhiriev/mywebclass-content/internal/validators"
	"github.com/go-resty/resty/v2"
)

const (
	defaultAPIHostname = "api.sanity.io"
	cdnAPIHostname     = "apicdn.sanity.io"

	// maxGETQueryLength is the longest encoded query string sent with GET.
	// Longer queries are POSTed to the uncached API host.
	maxGETQueryLength = 11264
)

type sanityAdapter struct {
	client *utils.HTTPClient

	apiBaseURL string
	cdnBaseURL string
	dataset    string
	token      string
	useCDN     bool

	logger *logger.Logger
}

// queryResponse is the envelope of a successful GROQ query.
type queryResponse struct {
	Result json.RawMessage `json:"result"`
	MS     int             `json:"ms"`
}

type queryRequest struct {
	Query  string         `json:"query"`
	Params map[string]any `json:"params,omitempty"`
}

// NewSanityAdapter constructs the Sanity implementation of [ContentAdapter].
//
// Empty dataset, API version and API host are replaced with their defaults
// before validation. The project id is required and must match the Sanity
// project id format; the dataset and API version are validated the same way
// the official client validates them. When CDN usage is enabled and the
// default API host is used, queries go to <project>.apicdn.sanity.io.
//
// version is embedded into the User-Agent header.
func NewSanityAdapter(cfg config.Sanity, version string, log *logger.Logger) (ContentAdapter, error) {
	cfg = cfg.WithDefaults()

	if err := validators.NewSanityConfigValidator().Validate(context.Background(), cfg); err != nil {
		return nil, err
	}

	apiBaseURL, cdnBaseURL, err := buildBaseURLs(cfg, strings.TrimPrefix(cfg.APIVersion, "v"))
	if err != nil {
		return nil, err
	}

	userAgent := "mywebclass-content"
	if version != "" {
		userAgent += "/" + version
	}

	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient(userAgent)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &sanityAdapter{
		client:     client,
		apiBaseURL: apiBaseURL,
		cdnBaseURL: cdnBaseURL,
		dataset:    cfg.Dataset,
		token:      strings.TrimSpace(cfg.ReadToken),
		useCDN:     cfg.CDNEnabled(),
		logger:     log,
	}, nil
}

// buildBaseURLs returns the versioned API and CDN base URLs. The CDN URL is
// only different from the API URL for the default Sanity host.
func buildBaseURLs(cfg config.Sanity, apiVersion string) (string, string, error) {
	host := strings.TrimRight(strings.TrimSpace(cfg.APIHost), "/")
	u, err := url.Parse(host)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidAPIHost, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidAPIHost, cfg.APIHost)
	}

	versionPath := "/v" + apiVersion

	if !cfg.ProjectHostnameEnabled() {
		base := strings.TrimRight(u.String(), "/") + versionPath
		return base, base, nil
	}

	apiHost := u.Host
	cdnHost := u.Host
	if u.Host == defaultAPIHostname {
		cdnHost = cdnAPIHostname
	}

	apiBase := fmt.Sprintf("%s://%s.%s%s", u.Scheme, cfg.ProjectID, apiHost, versionPath)
	cdnBase := fmt.Sprintf("%s://%s.%s%s", u.Scheme, cfg.ProjectID, cdnHost, versionPath)

	return apiBase, cdnBase, nil
}

// Query implements [ContentAdapter]. It GETs
// /data/query/<dataset>?query=...&$param=<json> from the CDN (or API) host.
// Parameters are JSON-encoded and prefixed with "$" as the query endpoint
// expects. Queries whose encoded form exceeds the GET limit are POSTed to
// the API host instead.
func (s *sanityAdapter) Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", query)
	values.Set("returnQuery", "false")
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode query param %q: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	path := "/data/query/" + url.PathEscape(s.dataset)
	start := time.Now()

	var (
		resp *resty.Response
		err  error
	)
	if len(values.Encode()) > maxGETQueryLength {
		resp, err = s.request(ctx).
			SetHeader("Content-Type", "application/json").
			SetQueryParam("returnQuery", "false").
			SetBody(queryRequest{Query: query, Params: params}).
			Post(s.apiBaseURL + path)
	} else {
		resp, err = s.request(ctx).
			SetQueryParamsFromValues(values).
			Get(s.baseURL() + path)
	}
	if err != nil {
		return nil, fmt.Errorf("query request: %w", err)
	}

	s.logger.Debug().
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("sanity query finished")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var qr queryResponse
	if err = json.Unmarshal(resp.Body(), &qr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return qr.Result, nil
}

func (s *sanityAdapter) baseURL() string {
	if s.useCDN {
		return s.cdnBaseURL
	}
	return s.apiBaseURL
}

func (s *sanityAdapter) request(ctx context.Context) *resty.Request {
	req := s.client.R().SetContext(ctx)
	if s.token != "" {
		req.SetAuthToken(s.token)
	}
	return req
}
