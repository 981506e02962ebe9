// file: cmd/tags.go
// version: 1.0.0
// guid: 5e10ecf8-f393-400d-ac0f-8c8487108284

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jdfalk/iptc-organizer/internal/iptc"
	"github.com/jdfalk/iptc-organizer/internal/matcher"
	"github.com/jdfalk/iptc-organizer/internal/metadata"
)

func newTagsCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the known IPTC datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if search == "" {
				return metadata.WriteTagList(cmd.OutOrStdout())
			}
			return writeMatchingTags(cmd.OutOrStdout(), search)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "only list tags whose name or title contains these letters in order")
	return cmd
}

func writeMatchingTags(out io.Writer, search string) error {
	n := 0
	for _, ti := range iptc.Tags() {
		if !matcher.Contains(ti.Name, search) && !matcher.Contains(ti.Title, search) {
			continue
		}
		if err := metadata.WriteTagInfo(out, ti.Record, ti.Tag, false); err != nil {
			return err
		}
		n++
	}
	if n == 0 {
		return fmt.Errorf("no tag matches %q: %w", search, iptc.ErrNotFound)
	}
	return nil
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe TAG...",
		Short: "Show the name, limits and description of datasets",
		Example: `  iptc-organizer describe Caption
  iptc-organizer describe 2:025`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, arg := range args {
				r, t, err := metadata.ParseTagID(arg)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := metadata.WriteTagInfo(out, r, t, true); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
