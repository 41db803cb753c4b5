package models

// ProcessingElement is one simulated CPU core with a fixed computing speed in
// million instructions per second.
type ProcessingElement struct {
	ID   int     `json:"id" yaml:"id"`
	MIPS float64 `json:"mips" yaml:"mips"`
}

// Host is a simulated physical machine. RAM and storage are in MB, bandwidth
// in Mbps. A host belongs to exactly one Datacenter and is not modified after
// it is built.
type Host struct {
	ID        int                 `json:"id" yaml:"id"`
	RAM       int64               `json:"ram" yaml:"ram"`
	Bandwidth int64               `json:"bw" yaml:"bw"`
	Storage   int64               `json:"storage" yaml:"storage"`
	PEs       []ProcessingElement `json:"pes" yaml:"pes"`
}

// TotalMIPS returns the combined speed of all the host's PEs.
func (h *Host) TotalMIPS() float64 {
	total := 0.0
	for _, pe := range h.PEs {
		total += pe.MIPS
	}
	return total
}

// Datacenter owns an ordered, non-empty list of hosts.
type Datacenter struct {
	Name  string  `json:"name" yaml:"name"`
	Hosts []*Host `json:"hosts" yaml:"hosts"`
}

// PECount returns the number of PEs across all hosts.
func (d *Datacenter) PECount() int {
	n := 0
	for _, h := range d.Hosts {
		n += len(h.PEs)
	}
	return n
}

// Vm is a resource-demand descriptor. It carries no host: placement is decided
// by the simulation engine after submission.
type Vm struct {
	ID        int     `json:"id" yaml:"id"`
	MIPS      float64 `json:"mips" yaml:"mips"` // required speed per PE
	PEs       int     `json:"pes" yaml:"pes"`
	RAM       int64   `json:"ram" yaml:"ram"`
	Bandwidth int64   `json:"bw" yaml:"bw"`
	Size      int64   `json:"size" yaml:"size"` // image size, MB
}

// Cloudlet is a unit of workload executed inside a VM.
type Cloudlet struct {
	ID          int              `json:"id" yaml:"id"`
	Length      int64            `json:"length" yaml:"length"` // million instructions per PE
	PEs         int              `json:"pes" yaml:"pes"`
	FileSize    int64            `json:"file_size" yaml:"file_size"`
	OutputSize  int64            `json:"output_size" yaml:"output_size"`
	Utilization UtilizationModel `json:"utilization" yaml:"utilization"`
}

// CloudletStatus is the engine-reported state of a finished cloudlet.
type CloudletStatus string

const (
	CloudletStatusSuccess  CloudletStatus = "SUCCESS"
	CloudletStatusFailed   CloudletStatus = "FAILED"
	CloudletStatusCanceled CloudletStatus = "CANCELED"
)

// FinishedCloudlet is one record of the engine's finished list. Times are
// simulation seconds.
type FinishedCloudlet struct {
	CloudletID     int            `json:"cloudlet_id" yaml:"cloudlet_id"`
	Status         CloudletStatus `json:"status" yaml:"status"`
	DatacenterID   int            `json:"datacenter_id" yaml:"datacenter_id"`
	HostID         int            `json:"host_id" yaml:"host_id"`
	HostPEs        int            `json:"host_pes" yaml:"host_pes"`
	VmID           int            `json:"vm_id" yaml:"vm_id"`
	VmPEs          int            `json:"vm_pes" yaml:"vm_pes"`
	CloudletPEs    int            `json:"cloudlet_pes" yaml:"cloudlet_pes"`
	Length         int64          `json:"length" yaml:"length"`
	FinishedLength int64          `json:"finished_length" yaml:"finished_length"`
	StartTime      float64        `json:"start_time" yaml:"start_time"`
	FinishTime     float64        `json:"finish_time" yaml:"finish_time"`
	ExecTime       float64        `json:"exec_time" yaml:"exec_time"`
}
