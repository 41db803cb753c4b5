package scenario

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/logger"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
)

// Engine is the simulation engine a scenario is submitted to. Placement,
// scheduling and the event loop all happen behind it.
type Engine interface {
	RegisterDatacenter(dc *models.Datacenter) error
	SubmitVmList(vms []*models.Vm) error
	SubmitCloudletList(cloudlets []*models.Cloudlet) error
	// Start runs the simulation to completion.
	Start(ctx context.Context) error
	FinishedList() []models.FinishedCloudlet
}

// Engine operations reported in EngineError.Op.
const (
	OpRegister        = "register"
	OpSubmitVms       = "submit-vms"
	OpSubmitCloudlets = "submit-cloudlets"
	OpStart           = "start"
	OpFinished        = "finished"
)

// EngineError wraps a failure reported by the engine.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Launch registers the datacenter, submits the VMs and cloudlets, runs the
// simulation and returns the finished list. Failures are not retried.
func Launch(ctx context.Context, eng Engine, s *Scenario) ([]models.FinishedCloudlet, error) {
	if err := eng.RegisterDatacenter(s.Datacenter); err != nil {
		return nil, &EngineError{Op: OpRegister, Err: err}
	}
	if err := eng.SubmitVmList(s.Vms); err != nil {
		return nil, &EngineError{Op: OpSubmitVms, Err: err}
	}
	if err := eng.SubmitCloudletList(s.Cloudlets); err != nil {
		return nil, &EngineError{Op: OpSubmitCloudlets, Err: err}
	}
	logger.Info("scenario submitted", "vms", len(s.Vms), "cloudlets", len(s.Cloudlets))

	if err := eng.Start(ctx); err != nil {
		return nil, &EngineError{Op: OpStart, Err: err}
	}

	finished := eng.FinishedList()
	if finished == nil {
		return nil, &EngineError{Op: OpFinished, Err: fmt.Errorf("engine returned no finished list")}
	}
	logger.Info("simulation finished", "finished_cloudlets", len(finished))
	return finished, nil
}

// Run resolves src, assembles the scenario and launches it on eng.
func Run(ctx context.Context, src config.Source, eng Engine) (*Scenario, []models.FinishedCloudlet, error) {
	params, err := config.Resolve(src)
	if err != nil {
		return nil, nil, err
	}
	s, err := Assemble(params)
	if err != nil {
		return nil, nil, err
	}
	finished, err := Launch(ctx, eng, s)
	if err != nil {
		return s, nil, err
	}
	return s, finished, nil
}
