// file: cmd/edit.go
// version: 1.0.0
// guid: e9932b3d-63ec-4755-9a97-989e389b43a8

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"

	"github.com/jdfalk/iptc-organizer/internal/config"
	"github.com/jdfalk/iptc-organizer/internal/fileops"
	"github.com/jdfalk/iptc-organizer/internal/metadata"
)

// progressThreshold is the number of files from which edit shows a
// progress bar instead of a table per file.
const progressThreshold = 5

const encodingWarning = `Warning: Strings encoded in UTF-8 have been added to the IPTC data, but
pre-existing data may have been encoded with a different character set.`

var errNoOperations = errors.New("no operations given: use --add, --modify, --delete or --print")

func newEditCmd() *cobra.Command {
	var ops *opList
	cmd := &cobra.Command{
		Use:   "edit FILE...",
		Short: "Add, modify, delete or print IPTC datasets",
		Long: `Apply operations to the IPTC data of JPEG images. Operations run in the
order given. TAG is a dataset name (Caption, Keywords) or a numeric
record:tag pair (2:120), optionally followed by #N to address the Nth
match, counting from zero.

  iptc-organizer edit -a Caption="Harbour at dusk" -a Keywords=boats photo.jpg
  iptc-organizer edit -m Keywords#1=sails -d City photo.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := ops.Operations()
			if err != nil {
				return err
			}
			if len(parsed) == 0 {
				return errNoOperations
			}
			e, err := newEditor(config.AppConfig, parsed, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return e.editFiles(args)
		},
	}
	ops = addOperationFlags(cmd)
	return cmd
}

// editor applies one operation list to any number of files.
type editor struct {
	cfg      config.Config
	ops      []metadata.Operation
	fallback encoding.Encoding
	out      io.Writer
	errOut   io.Writer
	// showTable prints the resulting datasets after each edit.
	showTable bool
}

func newEditor(cfg config.Config, ops []metadata.Operation, out, errOut io.Writer) (*editor, error) {
	fallback, err := cfg.Charset()
	if err != nil {
		return nil, err
	}
	return &editor{
		cfg:       cfg,
		ops:       ops,
		fallback:  fallback,
		out:       out,
		errOut:    errOut,
		showTable: !cfg.Quiet && !hasPrint(ops),
	}, nil
}

// editFiles edits every path, continuing past failures. The returned
// error joins all failures.
func (e *editor) editFiles(paths []string) error {
	var bar *progressbar.ProgressBar
	if len(paths) >= progressThreshold && !e.cfg.Quiet {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(e.errOut),
			progressbar.OptionSetDescription("Editing"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		e.showTable = false
	}

	var errs []error
	saved := 0
	for i, path := range paths {
		if e.showTable && len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(e.out)
			}
			fmt.Fprintf(e.out, "%s:\n", path)
		}
		result, err := e.editFile(path)
		if err != nil {
			log.Printf("[ERROR] edit %s: %v", path, err)
			errs = append(errs, err)
		} else if result != nil {
			saved++
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
		fmt.Fprintf(e.errOut, "%d of %d images saved\n", saved, len(paths))
	}
	return errors.Join(errs...)
}

// editFile applies the operations to path and writes it back when the
// data changed. The WriteResult is nil when nothing was written.
func (e *editor) editFile(path string) (*fileops.WriteResult, error) {
	doc, err := metadata.ReadFile(path)
	if err != nil {
		return nil, err
	}
	hadData := doc.Data != nil

	res, err := metadata.ApplyWith(doc.EnsureData(), e.ops, metadata.ApplyOptions{
		Out:        e.out,
		NoValidate: e.cfg.NoValidate,
		Sort:       e.cfg.Sort,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if res.EncodingWarning {
		fmt.Fprintln(e.errOut, encodingWarning)
	}

	if e.showTable {
		shown := doc.Data
		if !hadData && !res.Changed() {
			shown = nil
		}
		if err := metadata.WriteTableCharset(e.out, shown, e.fallback); err != nil {
			return nil, err
		}
	}

	if !res.Changed() {
		return nil, nil
	}
	result, err := metadata.WriteFile(path, doc, e.cfg.FileOps())
	if err != nil {
		return nil, fmt.Errorf("failed to save image %s: %w", path, err)
	}
	if !e.cfg.Quiet {
		if result.BackupPath != "" {
			fmt.Fprintf(e.errOut, "Image saved (backup in %s)\n", result.BackupPath)
		} else {
			fmt.Fprintln(e.errOut, "Image saved")
		}
	}
	return result, nil
}
