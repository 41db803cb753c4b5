// Package simd implements a scenario engine backed by a remote simulation
// daemon speaking the /v1/runs HTTP API.
package simd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/logger"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/utils"
)

var (
	// ErrAlreadyStarted is returned when Start is called more than once or a
	// submission arrives after Start.
	ErrAlreadyStarted = errors.New("simulation already started")
	// ErrNotReady is returned when Start is called before the datacenter, VMs
	// and cloudlets have all been submitted.
	ErrNotReady = errors.New("datacenter, vms and cloudlets must be submitted before start")
)

// Run statuses reported by the daemon. The daemon may also report them with a
// RUN_STATUS_ prefix.
const (
	StatusPending   = "PENDING"
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusCancelled = "CANCELLED"
)

// APIError is a non-2xx response from the daemon.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("simd responded %d: %s", e.StatusCode, e.Message)
}

// RunInfo is the daemon's view of a run.
type RunInfo struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithPollBackoff sets the wait between run status polls.
func WithPollBackoff(b utils.BackoffStrategy) Option {
	return func(c *Client) {
		c.backoff = b
	}
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// Client submits one scenario to a simulation daemon and collects its
// finished cloudlets. A Client is single-use and not safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	backoff utils.BackoffStrategy
	log     *slog.Logger

	datacenter *models.Datacenter
	vms        []*models.Vm
	cloudlets  []*models.Cloudlet

	runID    string
	started  bool
	finished []models.FinishedCloudlet
}

// NewClient creates a client for the daemon at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		backoff: utils.NewExponentialBackoff(200*time.Millisecond, 5*time.Second, 2),
		log:     logger.Default,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunID returns the id of the submitted run, empty before Start.
func (c *Client) RunID() string {
	return c.runID
}

// RegisterDatacenter records dc for submission.
func (c *Client) RegisterDatacenter(dc *models.Datacenter) error {
	if c.started {
		return ErrAlreadyStarted
	}
	if dc == nil || len(dc.Hosts) == 0 {
		return errors.New("datacenter has no hosts")
	}
	c.datacenter = dc
	return nil
}

// SubmitVmList records the VM fleet for submission.
func (c *Client) SubmitVmList(vms []*models.Vm) error {
	if c.started {
		return ErrAlreadyStarted
	}
	if len(vms) == 0 {
		return errors.New("vm list is empty")
	}
	c.vms = vms
	return nil
}

// SubmitCloudletList records the workload for submission.
func (c *Client) SubmitCloudletList(cloudlets []*models.Cloudlet) error {
	if c.started {
		return ErrAlreadyStarted
	}
	if len(cloudlets) == 0 {
		return errors.New("cloudlet list is empty")
	}
	c.cloudlets = cloudlets
	return nil
}

// Start creates the run on the daemon, starts it and blocks until it reaches
// a terminal status. On COMPLETED the finished cloudlets are fetched. If ctx
// is cancelled while waiting the run is asked to stop.
func (c *Client) Start(ctx context.Context) error {
	if c.started {
		return ErrAlreadyStarted
	}
	if c.datacenter == nil || len(c.vms) == 0 || len(c.cloudlets) == 0 {
		return ErrNotReady
	}
	c.started = true

	doc := &Document{Datacenter: c.datacenter, Vms: c.vms, Cloudlets: c.cloudlets}
	scenarioYAML, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode scenario: %w", err)
	}

	c.runID = utils.GenerateRunID()
	log := c.log.With("run_id", c.runID)

	createReq := map[string]any{
		"run_id": c.runID,
		"input":  map[string]any{"scenario_yaml": scenarioYAML},
	}
	if err := c.do(ctx, http.MethodPost, "/v1/runs", createReq, nil); err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	log.Info("run created", "engine", c.baseURL)

	if err := c.do(ctx, http.MethodPost, c.runPath(":start"), nil, nil); err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	log.Info("run started")

	run, err := c.wait(ctx, log)
	if err != nil {
		if ctx.Err() != nil {
			c.stop(log)
		}
		return err
	}

	switch run.Status {
	case StatusFailed:
		return fmt.Errorf("run %s failed: %s", run.ID, run.Error)
	case StatusCancelled:
		return fmt.Errorf("run %s was cancelled", run.ID)
	}

	var resp struct {
		Cloudlets []models.FinishedCloudlet `json:"cloudlets"`
	}
	if err := c.do(ctx, http.MethodGet, c.runPath("/cloudlets"), nil, &resp); err != nil {
		return fmt.Errorf("fetch finished cloudlets: %w", err)
	}
	c.finished = resp.Cloudlets
	if c.finished == nil {
		c.finished = []models.FinishedCloudlet{}
	}
	log.Info("run completed", "finished_cloudlets", len(c.finished))
	return nil
}

// FinishedList returns the finished cloudlets of a completed run, nil before.
func (c *Client) FinishedList() []models.FinishedCloudlet {
	return c.finished
}

// Status fetches the current state of the run.
func (c *Client) Status(ctx context.Context) (*RunInfo, error) {
	var resp struct {
		Run RunInfo `json:"run"`
	}
	if err := c.do(ctx, http.MethodGet, c.runPath(""), nil, &resp); err != nil {
		return nil, err
	}
	resp.Run.Status = normalizeStatus(resp.Run.Status)
	return &resp.Run, nil
}

func (c *Client) wait(ctx context.Context, log *slog.Logger) (*RunInfo, error) {
	for attempt := 0; ; attempt++ {
		run, err := c.Status(ctx)
		if err != nil {
			return nil, fmt.Errorf("poll run: %w", err)
		}
		if isTerminal(run.Status) {
			return run, nil
		}
		log.Debug("run in progress", "status", run.Status, "attempt", attempt)

		if err := utils.Wait(ctx, c.backoff, attempt); err != nil {
			return nil, err
		}
	}
}

func (c *Client) stop(log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.do(ctx, http.MethodPost, c.runPath(":stop"), nil, nil); err != nil {
		log.Warn("failed to stop run", "error", err)
		return
	}
	log.Info("run stop requested")
}

func (c *Client) runPath(suffix string) string {
	return "/v1/runs/" + url.PathEscape(c.runID) + suffix
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response body: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var payload struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(data))
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

func normalizeStatus(s string) string {
	return strings.TrimPrefix(strings.ToUpper(s), "RUN_STATUS_")
}

func isTerminal(status string) bool {
	switch status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}
