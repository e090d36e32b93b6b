package inspect

import (
	"os"

	"github.com/elf-tools/elfscan/lib/elfutil"
	"github.com/pkg/errors"
)

// Outcome records what happened to a single input file: either a decoded
// header or the error that stopped it.
type Outcome struct {
	Path   string
	Header *elfutil.Header
	Err    error
}

// Report collects per-file outcomes in input order. A failed file never
// aborts the batch.
type Report struct {
	Outcomes []Outcome
}

// Run reads and decodes the header of every path, in order.
func Run(paths []string) *Report {
	report := &Report{}
	for _, path := range paths {
		report.scanFile(path)
	}
	return report
}

func (r *Report) scanFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.Outcomes = append(r.Outcomes, Outcome{Path: path, Err: errors.Wrap(err, "read")})
		return
	}
	r.AddBuffer(path, data)
}

// AddBuffer decodes an in-memory image as if it had been read from path.
func (r *Report) AddBuffer(path string, data []byte) {
	header, err := elfutil.Decode(data)
	r.Outcomes = append(r.Outcomes, Outcome{Path: path, Header: header, Err: err})
}

// Headers returns the successfully decoded outcomes, in input order.
func (r *Report) Headers() []Outcome {
	decoded := make([]Outcome, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Err == nil {
			decoded = append(decoded, o)
		}
	}
	return decoded
}

// Failures returns the outcomes that produced no header, in input order.
func (r *Report) Failures() []Outcome {
	failed := make([]Outcome, 0)
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}
