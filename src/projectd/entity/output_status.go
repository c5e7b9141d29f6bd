package entity

// OutputState describes the build output of one input file.
type OutputState int

const (
	// OutputEmitSkipped means output is blocked, e.g. by errors.
	OutputEmitSkipped OutputState = iota
	// OutputNone means the input file produces no output.
	OutputNone
	// OutputUpToDate means the output reflects the current input.
	OutputUpToDate
	// OutputOutOfDate means the input changed since output was produced.
	OutputOutOfDate
)

// String implements fmt.Stringer.
func (s OutputState) String() string {
	switch s {
	case OutputEmitSkipped:
		return "emit-skipped"
	case OutputNone:
		return "no-output"
	case OutputUpToDate:
		return "up-to-date"
	case OutputOutOfDate:
		return "out-of-date"
	default:
		return "unknown"
	}
}

// FileOutputStatus is the output state of one input file.
type FileOutputStatus struct {
	InputFilePath  string      `json:"inputFilePath"`
	State          OutputState `json:"state"`
	OutputFilePath string      `json:"outputFilePath,omitempty"`
}

// OutputStatusCache maps an input file path to its status.
type OutputStatusCache map[string]FileOutputStatus
