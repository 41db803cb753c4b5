package report

import (
	"fmt"
	"io"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/utils"
)

// Summary aggregates a finished list.
type Summary struct {
	Cloudlets    int     `json:"cloudlets"`
	Succeeded    int     `json:"succeeded"`
	Makespan     float64 `json:"makespan_seconds"`
	MeanExecTime float64 `json:"mean_exec_seconds"`
	P50ExecTime  float64 `json:"p50_exec_seconds"`
	P95ExecTime  float64 `json:"p95_exec_seconds"`
}

// Summarize computes the summary of finished. Makespan is the latest finish
// time.
func Summarize(finished []models.FinishedCloudlet) Summary {
	s := Summary{Cloudlets: len(finished)}

	execTimes := make([]float64, 0, len(finished))
	finishTimes := make([]float64, 0, len(finished))
	for _, c := range finished {
		if c.Status == models.CloudletStatusSuccess {
			s.Succeeded++
		}
		execTimes = append(execTimes, c.ExecTime)
		finishTimes = append(finishTimes, c.FinishTime)
	}

	s.Makespan = utils.Max(finishTimes)
	s.MeanExecTime = utils.Round(utils.Mean(execTimes), 3)
	s.P50ExecTime = utils.Round(utils.P50(execTimes), 3)
	s.P95ExecTime = utils.Round(utils.P95(execTimes), 3)
	return s
}

// WriteSummary writes s as a short human-readable block.
func WriteSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w,
		"cloudlets: %d (succeeded %d)\nmakespan: %.2fs\nexec time: mean %.2fs, p50 %.2fs, p95 %.2fs\n",
		s.Cloudlets, s.Succeeded, s.Makespan, s.MeanExecTime, s.P50ExecTime, s.P95ExecTime)
	return err
}
