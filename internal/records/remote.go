package records

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// RemoteConfig points the client at a hosted project.
type RemoteConfig struct {
	BaseURL    string
	ProjectID  string
	PublicKey  string
	Timeout    time.Duration
	RetryCount int
}

// Remote talks to the hosted record backend over HTTP.
type Remote struct {
	http *resty.Client
}

func NewRemote(cfg RemoteConfig) *Remote {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Project-Id", cfg.ProjectID).
		SetHeader("X-Public-Key", cfg.PublicKey)
	return &Remote{http: c}
}

func (c *Remote) FetchRecords(ctx context.Context, table string, params *FetchParams) (*FetchResponse, error) {
	var out FetchResponse
	req := c.http.R().SetContext(ctx).
		SetPathParam("table", table).
		SetBody(params)
	if err := c.do(req, "POST", "/tables/{table}/records/search", &out); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	return &out, nil
}

func (c *Remote) GetRecordByID(ctx context.Context, table string, id int64, params *FetchParams) (*RecordResponse, error) {
	var out RecordResponse
	req := c.http.R().SetContext(ctx).
		SetPathParams(map[string]string{"table": table, "id": strconv.FormatInt(id, 10)}).
		SetBody(params)
	if err := c.do(req, "POST", "/tables/{table}/records/{id}/search", &out); err != nil {
		return nil, fmt.Errorf("get %s/%d: %w", table, id, err)
	}
	return &out, nil
}

func (c *Remote) CreateRecord(ctx context.Context, table string, params *MutateParams) (*MutateResponse, error) {
	return c.mutate(ctx, "POST", table, params)
}

func (c *Remote) UpdateRecord(ctx context.Context, table string, params *MutateParams) (*MutateResponse, error) {
	return c.mutate(ctx, "PUT", table, params)
}

func (c *Remote) DeleteRecord(ctx context.Context, table string, params *DeleteParams) (*MutateResponse, error) {
	var out MutateResponse
	req := c.http.R().SetContext(ctx).
		SetPathParam("table", table).
		SetBody(params)
	if err := c.do(req, "DELETE", "/tables/{table}/records", &out); err != nil {
		return nil, fmt.Errorf("delete %s: %w", table, err)
	}
	return &out, nil
}

func (c *Remote) mutate(ctx context.Context, method, table string, params *MutateParams) (*MutateResponse, error) {
	var out MutateResponse
	req := c.http.R().SetContext(ctx).
		SetPathParam("table", table).
		SetBody(params)
	if err := c.do(req, method, "/tables/{table}/records", &out); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, table, err)
	}
	return &out, nil
}

// envelope is the part of every backend reply that survives an error status.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// refusable responses can carry a backend refusal.
type refusable interface {
	refuse(msg string)
}

func (r *FetchResponse) refuse(msg string)  { r.Success, r.Message = false, msg }
func (r *RecordResponse) refuse(msg string) { r.Success, r.Message = false, msg }
func (r *MutateResponse) refuse(msg string) { r.Success, r.Message = false, msg }

// do executes req and decodes the body into out. Error statuses whose body still
// carries a backend envelope are returned as a refusal in out.
func (c *Remote) do(req *resty.Request, method, path string, out refusable) error {
	var env envelope
	resp, err := req.
		ForceContentType("application/json").
		SetResult(out).
		SetError(&env).
		Execute(method, path)
	switch {
	case err != nil && resp != nil && resp.IsError():
		return statusError(resp)
	case err != nil && resp != nil && resp.RawResponse != nil:
		return fmt.Errorf("decode response: %w", err)
	case err != nil:
		return err
	case resp.IsError() && env.Success == nil:
		return statusError(resp)
	case resp.IsError():
		out.refuse(env.Message)
	}
	return nil
}

func statusError(resp *resty.Response) error {
	return fmt.Errorf("%s; body: %s", resp.Status(), abbreviate(resp.String(), 500))
}

// abbreviate cuts s to at most n bytes without splitting a rune.
func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return truncateUTF8(s, n-3) + "..."
}

// truncateUTF8 returns the longest prefix of s that fits in n bytes and ends on
// a rune boundary.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
