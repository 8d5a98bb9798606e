package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"text/template"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/xcm"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights"
)

// GeneratedMarker is the first line of every rendered file.
const GeneratedMarker = "// Code generated by xcm-weights generate. DO NOT EDIT."

var tableTemplate = template.Must(template.New("table").Funcs(template.FuncMap{
	"comment": comment,
	"quote":   strconv.Quote,
	"grouped": grouped,
}).Parse(GeneratedMarker + `

{{range .Header}}{{comment .}}
{{end}}
package {{.Package}}

import (
	"github.com/Bullrich/polkadot-fellows-runtimes/model/xcm"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights"
)

// Provenance describes the benchmark run this table was generated from.
var Provenance = weights.Provenance{
	Pallet: {{quote .Provenance.Pallet}},
	HarnessVersion: {{quote .Provenance.HarnessVersion}},
	Date: {{quote .Provenance.Date}},
	Steps: {{.Provenance.Steps}},
	Repeat: {{.Provenance.Repeat}},
	LowRange: {{quote .Provenance.LowRange}},
	HighRange: {{quote .Provenance.HighRange}},
	WorstCaseMapSize: {{.Provenance.WorstCaseMapSize}},
	Hostname: {{quote .Provenance.Hostname}},
	CPU: {{quote .Provenance.CPU}},
	Execution: {{quote .Provenance.Execution}},
	WasmExecution: {{quote .Provenance.WasmExecution}},
	Chain: {{quote .Provenance.Chain}},
	DbCache: {{.Provenance.DbCache}},
	Command: []string{
{{- range .Provenance.Command}}
		{{quote .}},
{{- end}}
	},
}

// Records holds the benchmarked record of every generic instruction.
var Records = map[xcm.Instruction]weights.Record{
{{- range .Entries}}
	// Minimum execution time: {{grouped .Record.MinExecutionTime}} picoseconds.
	xcm.{{.Instruction}}: {
		BaseTime: {{grouped .Record.BaseTime}},
		ProofSize: {{.Record.ProofSize}},
		Reads: {{.Record.Reads}},
		Writes: {{.Record.Writes}},
		MeasuredProofSize: {{.Record.MeasuredProofSize}},
		MinExecutionTime: {{grouped .Record.MinExecutionTime}},
{{- if .Record.Storage}}
		Storage: []weights.StorageAccess{
{{- range .Record.Storage}}
			{Pallet: {{quote .Pallet}}, Item: {{quote .Item}}, Reads: {{.Reads}}, Writes: {{.Writes}}{{if .Proof}}, Proof: {{quote .Proof}}{{end}}},
{{- end}}
		},
{{- end}}
	},
{{- end}}
}
`))

type tableEntry struct {
	Instruction string
	Record      weights.Record
}

type tableData struct {
	Package    string
	Header     []string
	Provenance weights.Provenance
	Entries    []tableEntry
}

// Render produces the gofmt-formatted source of a Go file declaring the
// result set's Provenance and Records in package pkg.
func Render(rs *ResultSet, pkg string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	records, err := rs.Records()
	if err != nil {
		return nil, err
	}

	data := tableData{
		Package:    pkg,
		Header:     rs.Provenance.HeaderLines(),
		Provenance: rs.Provenance,
	}
	for _, i := range xcm.AllInstructions() {
		data.Entries = append(data.Entries, tableEntry{
			Instruction: i.String(),
			Record:      records[i],
		})
	}

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("could not render weight table: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not format weight table: %w", err)
	}
	return src, nil
}

func comment(line string) string {
	if line == "" {
		return "//"
	}
	return "// " + line
}

// grouped renders large values with digit separators, e.g. 35_000_000.
func grouped(v uint64) string {
	s := strconv.FormatUint(v, 10)
	if v < 10_000 {
		return s
	}
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '_')
		}
		out = append(out, s[i])
	}
	return string(out)
}
