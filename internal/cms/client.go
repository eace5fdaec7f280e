// Package cms talks to the hosted headless CMS: GROQ queries over the HTTP
// query endpoint, document creation through the mutate endpoint, and image
// asset URL building.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nfrund/folio/internal/config"
	"github.com/tidwall/gjson"
)

const defaultTimeout = 5 * time.Second

// Options configures a Client.
type Options struct {
	BaseURL    string // e.g. https://<project>.api.sanity.io
	ProjectID  string
	Dataset    string
	APIVersion string // date-based version, e.g. 2024-01-01
	Token      string // required for mutations and private datasets
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a minimal HTTP client for the CMS query and mutate APIs.
type Client struct {
	baseURL    string
	projectID  string
	dataset    string
	apiVersion string
	token      string
	http       *http.Client
}

// NewClient creates a Client from explicit options.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		projectID:  opts.ProjectID,
		dataset:    opts.Dataset,
		apiVersion: strings.TrimPrefix(opts.APIVersion, "v"),
		token:      opts.Token,
		http:       httpClient,
	}
}

// NewClientFromConfig creates a Client from the application configuration.
func NewClientFromConfig(cfg config.Provider) *Client {
	return NewClient(Options{
		BaseURL:    cfg.GetCMSBaseURL(),
		ProjectID:  cfg.GetCMSProjectID(),
		Dataset:    cfg.GetCMSDataset(),
		APIVersion: cfg.GetCMSAPIVersion(),
		Token:      cfg.GetCMSToken(),
		Timeout:    cfg.GetCMSTimeout(),
	})
}

// Query runs a GROQ query and unmarshals the "result" member into out.
// Params are JSON encoded and sent as $name query parameters. A null result
// leaves slices and pointers in out at their zero value.
func (c *Client) Query(ctx context.Context, query string, params map[string]any, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode query param %q: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s", c.baseURL, c.apiVersion, c.dataset, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create query request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return err
	}

	result := gjson.GetBytes(body, "result")
	if !result.Exists() {
		return fmt.Errorf("cms query response has no result member")
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(result.Raw), out); err != nil {
		return fmt.Errorf("failed to decode cms query result: %w", err)
	}

	slog.DebugContext(ctx, "CMS query completed", "ms", gjson.GetBytes(body, "ms").Int())
	return nil
}

// Mutation is a single entry of a mutate request, e.g. {"create": {...}}.
type Mutation map[string]any

// Create returns a mutation that creates doc. The document must carry "_type".
func Create(doc map[string]any) Mutation {
	return Mutation{"create": doc}
}

// MutateResult reports the transaction and the affected document ids.
type MutateResult struct {
	TransactionID string
	DocumentIDs   []string
}

// Mutate applies the mutations in a single transaction. It requires a token.
func (c *Client) Mutate(ctx context.Context, mutations ...Mutation) (*MutateResult, error) {
	if c.token == "" {
		return nil, fmt.Errorf("cms mutations require an API token")
	}

	payload, err := json.Marshal(map[string]any{"mutations": mutations})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mutations: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v%s/data/mutate/%s?returnIds=true", c.baseURL, c.apiVersion, c.dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	res := &MutateResult{TransactionID: gjson.GetBytes(body, "transactionId").String()}
	for _, id := range gjson.GetBytes(body, "results.#.id").Array() {
		res.DocumentIDs = append(res.DocumentIDs, id.String())
	}
	return res, nil
}

// ImageURL resolves an image asset reference for this client's project.
func (c *Client) ImageURL(ref string) string {
	return ImageURL(c.projectID, c.dataset, ref)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read cms response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}
