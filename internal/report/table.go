// Package report renders scenarios and simulation results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
)

var tableHeaders = []string{
	"Cloudlet", "Status", "DC", "Host", "Host PEs", "VM", "VM PEs",
	"Length MI", "Finished MI", "Cloudlet PEs", "Start s", "Finish s", "Exec s",
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	failedStyle = cellStyle.Foreground(lipgloss.Color("#F87171"))
)

// WriteTable writes one row per finished cloudlet, in the order given.
func WriteTable(w io.Writer, finished []models.FinishedCloudlet) error {
	rows := make([][]string, 0, len(finished))
	for _, c := range finished {
		rows = append(rows, []string{
			strconv.Itoa(c.CloudletID),
			string(c.Status),
			strconv.Itoa(c.DatacenterID),
			strconv.Itoa(c.HostID),
			strconv.Itoa(c.HostPEs),
			strconv.Itoa(c.VmID),
			strconv.Itoa(c.VmPEs),
			strconv.FormatInt(c.Length, 10),
			strconv.FormatInt(c.FinishedLength, 10),
			strconv.Itoa(c.CloudletPEs),
			seconds(c.StartTime),
			seconds(c.FinishTime),
			seconds(c.ExecTime),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(finished) && finished[row].Status != models.CloudletStatusSuccess {
				return failedStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
