// file: cmd/show.go
// version: 1.0.0
// guid: 43f15228-e8b5-46f3-a20c-2fa9e5a30ff5

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"gopkg.in/yaml.v3"

	"github.com/jdfalk/iptc-organizer/internal/config"
	"github.com/jdfalk/iptc-organizer/internal/iptc"
	"github.com/jdfalk/iptc-organizer/internal/metadata"
)

// fileReport is the structured output of show for one image.
type fileReport struct {
	File     string           `json:"file" yaml:"file"`
	HasIPTC  bool             `json:"has_iptc" yaml:"has_iptc"`
	Encoding string           `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	DataSets []metadata.Entry `json:"datasets" yaml:"datasets"`
}

func newReport(path string, d *iptc.Data, fallback encoding.Encoding) fileReport {
	r := fileReport{File: path, DataSets: metadata.Entries(d, fallback)}
	if d != nil {
		r.HasIPTC = true
		r.Encoding = d.Encoding().String()
	}
	return r
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE...",
		Short: "Display the IPTC datasets of JPEG images",
		Long: `Display the IPTC datasets of one or more JPEG images as a table, or as
YAML or JSON with --format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), config.AppConfig, args)
		},
	}
}

func runShow(out io.Writer, cfg config.Config, paths []string) error {
	fallback, err := cfg.Charset()
	if err != nil {
		return err
	}

	reports := make([]fileReport, 0, len(paths))
	for i, path := range paths {
		doc, err := metadata.ReadFile(path)
		if err != nil {
			return err
		}
		if cfg.Sort && doc.Data != nil {
			doc.Data.Sort()
		}

		if cfg.OutputFormat != "table" {
			reports = append(reports, newReport(path, doc.Data, fallback))
			continue
		}
		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s:\n", path)
		}
		if err := metadata.WriteTableCharset(out, doc.Data, fallback); err != nil {
			return err
		}
	}

	switch cfg.OutputFormat {
	case "json":
		return writeJSON(out, reports)
	case "yaml":
		return writeYAML(out, reports)
	}
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
