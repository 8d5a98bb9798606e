package weights

import (
	"fmt"
	"strings"
	"time"

	"github.com/coreos/go-semver/semver"
	"github.com/hashicorp/go-multierror"
)

// ProvenanceDateLayout is the layout of Provenance.Date.
const ProvenanceDateLayout = "2006-01-02"

// Provenance describes the benchmark run a weight table was generated from.
// It has no effect on any weight; it is kept so a table can be audited and
// reproduced.
type Provenance struct {
	Pallet           string   `json:"pallet" yaml:"pallet"`
	HarnessVersion   string   `json:"harness_version" yaml:"harness_version"`
	Date             string   `json:"date" yaml:"date"`
	Steps            uint32   `json:"steps" yaml:"steps"`
	Repeat           uint32   `json:"repeat" yaml:"repeat"`
	LowRange         string   `json:"low_range" yaml:"low_range"`
	HighRange        string   `json:"high_range" yaml:"high_range"`
	WorstCaseMapSize uint64   `json:"worst_case_map_size" yaml:"worst_case_map_size"`
	Hostname         string   `json:"hostname" yaml:"hostname"`
	CPU              string   `json:"cpu" yaml:"cpu"`
	Execution        string   `json:"execution" yaml:"execution"`
	WasmExecution    string   `json:"wasm_execution" yaml:"wasm_execution"`
	Chain            string   `json:"chain" yaml:"chain"`
	DbCache          uint64   `json:"db_cache" yaml:"db_cache"`
	Command          []string `json:"command" yaml:"command"`
}

// Version parses the harness version.
func (p Provenance) Version() (*semver.Version, error) {
	v, err := semver.NewVersion(p.HarnessVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid harness version %q: %w", p.HarnessVersion, err)
	}
	return v, nil
}

// GeneratedAt parses the date of the benchmark run.
func (p Provenance) GeneratedAt() (time.Time, error) {
	t, err := time.Parse(ProvenanceDateLayout, p.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid benchmark date %q: %w", p.Date, err)
	}
	return t, nil
}

// Validate returns every problem found in the provenance.
func (p Provenance) Validate() error {
	var result *multierror.Error

	if p.Pallet == "" {
		result = multierror.Append(result, fmt.Errorf("pallet must not be empty"))
	}
	if _, err := p.Version(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := p.GeneratedAt(); err != nil {
		result = multierror.Append(result, err)
	}
	if p.Steps == 0 {
		result = multierror.Append(result, fmt.Errorf("steps must be positive"))
	}
	if p.Repeat == 0 {
		result = multierror.Append(result, fmt.Errorf("repeat must be positive"))
	}
	if len(p.Command) == 0 {
		result = multierror.Append(result, fmt.Errorf("executed command must not be empty"))
	}

	// each field renders onto a single comment line of the generated header
	type field struct{ name, value string }
	fields := []field{
		{"pallet", p.Pallet},
		{"harness_version", p.HarnessVersion},
		{"date", p.Date},
		{"low_range", p.LowRange},
		{"high_range", p.HighRange},
		{"hostname", p.Hostname},
		{"cpu", p.CPU},
		{"execution", p.Execution},
		{"wasm_execution", p.WasmExecution},
		{"chain", p.Chain},
	}
	for i, arg := range p.Command {
		fields = append(fields, field{fmt.Sprintf("command[%d]", i), arg})
	}
	for _, f := range fields {
		if strings.ContainsAny(f.value, "\r\n") {
			result = multierror.Append(result, fmt.Errorf("%s must not contain line breaks: %q", f.name, f.value))
		}
	}

	return result.ErrorOrNil()
}

// HeaderLines renders the provenance block that heads a generated weight
// file, one line per element, without comment markers.
func (p Provenance) HeaderLines() []string {
	lines := []string{
		fmt.Sprintf("Autogenerated weights for `%s`", p.Pallet),
		"",
		fmt.Sprintf("THIS FILE WAS AUTO-GENERATED USING THE SUBSTRATE BENCHMARK CLI VERSION %s", p.HarnessVersion),
		fmt.Sprintf("DATE: %s, STEPS: `%d`, REPEAT: `%d`, LOW RANGE: `%s`, HIGH RANGE: `%s`",
			p.Date, p.Steps, p.Repeat, p.LowRange, p.HighRange),
		fmt.Sprintf("WORST CASE MAP SIZE: `%d`", p.WorstCaseMapSize),
		fmt.Sprintf("HOSTNAME: `%s`, CPU: `%s`", p.Hostname, p.CPU),
		fmt.Sprintf("EXECUTION: %s, WASM-EXECUTION: %s, CHAIN: %s, DB CACHE: %d",
			p.Execution, p.WasmExecution, p.Chain, p.DbCache),
		"",
		"Executed Command:",
	}
	return append(lines, p.Command...)
}

// Header renders HeaderLines joined by newlines.
func (p Provenance) Header() string {
	return strings.Join(p.HeaderLines(), "\n")
}
