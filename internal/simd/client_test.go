package simd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/scenario"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/utils"
)

var _ scenario.Engine = (*Client)(nil)

// fakeDaemon serves the run lifecycle for a single run. The run reports
// RUNNING for pendingPolls polls after start, then finalStatus.
type fakeDaemon struct {
	mu           sync.Mutex
	runID        string
	scenarioYAML string
	started      bool
	stopped      bool
	polls        int
	pendingPolls int
	finalStatus  string
	runError     string
	blockForever bool
}

func (d *fakeDaemon) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (d *fakeDaemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r.URL.Path == "/v1/runs" && r.Method == http.MethodPost {
		var req struct {
			RunID string `json:"run_id"`
			Input struct {
				ScenarioYAML string `json:"scenario_yaml"`
			} `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Input.ScenarioYAML == "" {
			d.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "input is required"})
			return
		}
		d.runID = req.RunID
		d.scenarioYAML = req.Input.ScenarioYAML
		d.writeJSON(w, http.StatusCreated, map[string]any{"run": map[string]any{"id": d.runID, "status": "RUN_STATUS_PENDING"}})
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/v1/runs/")
	switch {
	case path == d.runID+":start" && r.Method == http.MethodPost:
		d.started = true
		d.writeJSON(w, http.StatusOK, map[string]any{"run": map[string]any{"id": d.runID, "status": "RUN_STATUS_RUNNING"}})
	case path == d.runID+":stop" && r.Method == http.MethodPost:
		d.stopped = true
		d.writeJSON(w, http.StatusOK, map[string]any{"run": map[string]any{"id": d.runID, "status": "RUN_STATUS_CANCELLED"}})
	case path == d.runID && r.Method == http.MethodGet:
		d.polls++
		status := "RUN_STATUS_RUNNING"
		if !d.blockForever && d.polls > d.pendingPolls {
			status = d.finalStatus
		}
		d.writeJSON(w, http.StatusOK, map[string]any{"run": map[string]any{"id": d.runID, "status": status, "error": d.runError}})
	case path == d.runID+"/cloudlets" && r.Method == http.MethodGet:
		d.writeJSON(w, http.StatusOK, map[string]any{"cloudlets": []models.FinishedCloudlet{
			{CloudletID: 0, Status: models.CloudletStatusSuccess, VmID: 0, Length: 10_000, FinishedLength: 10_000, FinishTime: 20, ExecTime: 20},
			{CloudletID: 1, Status: models.CloudletStatusSuccess, VmID: 1, Length: 10_000, FinishedLength: 10_000, FinishTime: 20, ExecTime: 20},
		}})
	default:
		d.writeJSON(w, http.StatusNotFound, map[string]any{"error": "run not found"})
	}
}

func defaultScenario(t *testing.T) *scenario.Scenario {
	t.Helper()
	p := config.DefaultParams()
	s, err := scenario.Assemble(&p)
	require.NoError(t, err)
	return s
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL+"/", WithHTTPClient(srv.Client()), WithPollBackoff(utils.NewConstantBackoff(time.Millisecond)))
}

func TestClientLaunch(t *testing.T) {
	daemon := &fakeDaemon{pendingPolls: 2, finalStatus: "RUN_STATUS_COMPLETED"}
	srv := httptest.NewServer(daemon)
	defer srv.Close()

	client := newTestClient(srv)
	finished, err := scenario.Launch(context.Background(), client, defaultScenario(t))
	require.NoError(t, err)

	require.Len(t, finished, 2)
	assert.Equal(t, models.CloudletStatusSuccess, finished[0].Status)
	assert.Equal(t, client.RunID(), daemon.runID)
	assert.True(t, daemon.started)
	assert.Equal(t, 3, daemon.polls)

	var doc struct {
		Datacenter struct {
			Hosts []struct {
				PEs []struct {
					MIPS float64 `yaml:"mips"`
				} `yaml:"pes"`
			} `yaml:"hosts"`
		} `yaml:"datacenter"`
		Vms       []map[string]any `yaml:"vms"`
		Cloudlets []struct {
			Length      int64 `yaml:"length"`
			Utilization struct {
				Type     string  `yaml:"type"`
				Fraction float64 `yaml:"fraction"`
			} `yaml:"utilization"`
		} `yaml:"cloudlets"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(daemon.scenarioYAML), &doc))
	require.Len(t, doc.Datacenter.Hosts, 1)
	assert.Len(t, doc.Datacenter.Hosts[0].PEs, 8)
	assert.Len(t, doc.Vms, 2)
	require.Len(t, doc.Cloudlets, 4)
	assert.Equal(t, "constant", doc.Cloudlets[0].Utilization.Type)
	assert.Equal(t, 0.5, doc.Cloudlets[0].Utilization.Fraction)
}

func TestClientRunFailed(t *testing.T) {
	daemon := &fakeDaemon{finalStatus: "FAILED", runError: "no suitable host for vm 1"}
	srv := httptest.NewServer(daemon)
	defer srv.Close()

	_, err := scenario.Launch(context.Background(), newTestClient(srv), defaultScenario(t))

	var engErr *scenario.EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, scenario.OpStart, engErr.Op)
	assert.Contains(t, err.Error(), "no suitable host for vm 1")
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"daemon is draining"}`))
	}))
	defer srv.Close()

	_, err := scenario.Launch(context.Background(), newTestClient(srv), defaultScenario(t))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "daemon is draining", apiErr.Message)
}

func TestClientStartTwice(t *testing.T) {
	daemon := &fakeDaemon{finalStatus: "COMPLETED"}
	srv := httptest.NewServer(daemon)
	defer srv.Close()

	client := newTestClient(srv)
	_, err := scenario.Launch(context.Background(), client, defaultScenario(t))
	require.NoError(t, err)

	assert.ErrorIs(t, client.Start(context.Background()), ErrAlreadyStarted)
	assert.ErrorIs(t, client.SubmitVmList(defaultScenario(t).Vms), ErrAlreadyStarted)
}

func TestClientStartBeforeSubmission(t *testing.T) {
	client := NewClient("http://127.0.0.1:0")

	assert.ErrorIs(t, client.Start(context.Background()), ErrNotReady)
	assert.Nil(t, client.FinishedList())

	s := defaultScenario(t)
	require.NoError(t, client.RegisterDatacenter(s.Datacenter))
	assert.ErrorIs(t, client.Start(context.Background()), ErrNotReady)
}

func TestClientRejectsEmptySubmissions(t *testing.T) {
	client := NewClient("http://127.0.0.1:0")

	assert.Error(t, client.RegisterDatacenter(nil))
	assert.Error(t, client.SubmitVmList(nil))
	assert.Error(t, client.SubmitCloudletList([]*models.Cloudlet{}))
}

func TestClientCancelStopsRun(t *testing.T) {
	daemon := &fakeDaemon{blockForever: true}
	srv := httptest.NewServer(daemon)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := scenario.Launch(ctx, newTestClient(srv), defaultScenario(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	daemon.mu.Lock()
	defer daemon.mu.Unlock()
	assert.True(t, daemon.stopped)
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusCompleted, normalizeStatus("RUN_STATUS_COMPLETED"))
	assert.Equal(t, StatusFailed, normalizeStatus("failed"))
	assert.True(t, isTerminal(StatusCancelled))
	assert.False(t, isTerminal(StatusRunning))
}
