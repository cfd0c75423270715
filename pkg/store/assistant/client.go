package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/de-tools/assistant-migrator/pkg/adapters"
	"github.com/de-tools/assistant-migrator/pkg/models/api"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

const (
	defaultPageLimit = 100
	maxErrorMessage  = 200
)

// Settings identify one assistant deployment.
type Settings struct {
	URL      string
	Username string
	Password string
	Version  string
}

// Client talks to the v1 workspaces API of one deployment.
type Client struct {
	baseURL  *url.URL
	settings Settings
	http     *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the pooled default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func NewClient(settings Settings, opts ...Option) (*Client, error) {
	if settings.URL == "" {
		return nil, fmt.Errorf("%w: assistant url is empty", domain.ErrConfig)
	}
	if settings.Version == "" {
		return nil, fmt.Errorf("%w: assistant api version is empty", domain.ErrConfig)
	}
	base, err := url.Parse(strings.TrimRight(settings.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: assistant url: %w", domain.ErrConfig, err)
	}

	hc := cleanhttp.DefaultPooledClient()
	hc.Transport = NewLoggingTransport(hc.Transport)

	c := &Client{
		baseURL:  base,
		settings: settings,
		http:     hc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListSummaries returns every workspace of the deployment, following pagination cursors.
func (c *Client) ListSummaries(ctx context.Context) ([]domain.WorkspaceSummary, error) {
	logger := zerolog.Ctx(ctx)

	var summaries []domain.WorkspaceSummary
	params := api.ListParams{Version: c.settings.Version, PageLimit: defaultPageLimit}
	for {
		var page api.WorkspaceCollection
		if err := c.do(ctx, "list workspaces", http.MethodGet, "/v1/workspaces", params, nil, &page); err != nil {
			return nil, err
		}
		for _, ws := range page.Workspaces {
			summaries = append(summaries, adapters.MapAPIWorkspaceToSummary(ws))
		}
		next := page.Pagination.NextCursor
		if next == "" || next == params.Cursor {
			break
		}
		params.Cursor = next
	}

	logger.Info().Int("count", len(summaries)).Str("url", c.baseURL.String()).Msg("listed workspaces")
	return summaries, nil
}

// GetExport fetches the full content of a workspace. The response body is
// kept verbatim in Raw.
func (c *Client) GetExport(ctx context.Context, id string) (domain.WorkspaceExport, error) {
	op := "get workspace " + id
	var raw json.RawMessage
	params := api.WorkspaceParams{Version: c.settings.Version, Export: true}
	if err := c.do(ctx, op, http.MethodGet, workspacePath(id), params, nil, &raw); err != nil {
		return domain.WorkspaceExport{}, err
	}

	var export domain.WorkspaceExport
	if err := json.Unmarshal(raw, &export); err != nil {
		return domain.WorkspaceExport{}, &domain.ServiceError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	export.Raw = raw
	return export, nil
}

// UpdateByID replaces the content of payload.WorkspaceID.
func (c *Client) UpdateByID(ctx context.Context, payload domain.UpdatePayload) (domain.WorkspaceResult, error) {
	if payload.WorkspaceID == "" {
		return domain.WorkspaceResult{}, &domain.ServiceError{Op: "update workspace", Message: "workspace_id is empty"}
	}
	var ws api.Workspace
	params := api.WorkspaceParams{Version: c.settings.Version}
	op := "update workspace " + payload.WorkspaceID
	if err := c.do(ctx, op, http.MethodPost, workspacePath(payload.WorkspaceID), params, payload, &ws); err != nil {
		return domain.WorkspaceResult{}, err
	}
	return adapters.MapAPIWorkspaceToResult(ws), nil
}

// Create makes a new workspace; payload.WorkspaceID is ignored.
func (c *Client) Create(ctx context.Context, payload domain.UpdatePayload) (domain.WorkspaceResult, error) {
	var ws api.Workspace
	params := api.WorkspaceParams{Version: c.settings.Version}
	if err := c.do(ctx, "create workspace", http.MethodPost, "/v1/workspaces", params, payload, &ws); err != nil {
		return domain.WorkspaceResult{}, err
	}
	return adapters.MapAPIWorkspaceToResult(ws), nil
}

func (c *Client) DeleteByID(ctx context.Context, id string) error {
	params := api.WorkspaceParams{Version: c.settings.Version}
	return c.do(ctx, "delete workspace "+id, http.MethodDelete, workspacePath(id), params, nil, nil)
}

func workspacePath(id string) string {
	return "/v1/workspaces/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, op, method, path string, params any, body any, out any) error {
	logger := zerolog.Ctx(ctx)

	values, err := query.Values(params)
	if err != nil {
		return &domain.ServiceError{Op: op, Err: fmt.Errorf("encode query: %w", err)}
	}
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = values.Encode()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &domain.ServiceError{Op: op, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return &domain.ServiceError{Op: op, Err: err}
	}
	req.SetBasicAuth(c.settings.Username, c.settings.Password)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.ServiceError{Op: op, Err: err}
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close response body")
		}
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.ServiceError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.ServiceError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.ServiceError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func errorMessage(data []byte) string {
	var e api.ErrorResponse
	if err := json.Unmarshal(data, &e); err == nil && e.Error != "" {
		return e.Error
	}
	msg := strings.TrimSpace(string(data))
	if len(msg) <= maxErrorMessage {
		return msg
	}
	cut := maxErrorMessage
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}
