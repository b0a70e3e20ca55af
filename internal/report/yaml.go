package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/esprintf/internal/cases"
)

type yamlResult struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
	Format string `yaml:"format"`
	Want   string `yaml:"want"`
	Got    string `yaml:"got"`
	N      int    `yaml:"n"`
	Error  string `yaml:"error,omitempty"`
}

type yamlReport struct {
	Summary Summary      `yaml:"summary"`
	Results []yamlResult `yaml:"results"`
}

func writeYAML(w io.Writer, results []cases.Result) error {
	doc := yamlReport{Summary: Summarize(results), Results: make([]yamlResult, len(results))}
	for i, r := range results {
		y := yamlResult{
			Name:   r.Case.Name,
			Status: Status(r),
			Format: r.Case.Format,
			Want:   r.Case.Want,
			Got:    r.Got,
			N:      r.N,
		}
		if r.Err != nil {
			y.Error = r.Err.Error()
		}
		doc.Results[i] = y
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
