// file: cmd/segments.go
// version: 1.0.0
// guid: e03ea6a7-4aed-40a6-a572-4390b29c1b40

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdfalk/iptc-organizer/internal/jpegsegs"
	"github.com/jdfalk/iptc-organizer/internal/photoshop"
)

func newSegmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segments FILE",
		Short: "Print the JPEG marker segments and Photoshop resources of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jpeg, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			return writeSegments(cmd.OutOrStdout(), jpeg)
		},
	}
}

// writeSegments prints one line per marker segment up to the first scan,
// followed by the size of the remaining image data. Photoshop APP13
// segments also list their resource blocks.
func writeSegments(out io.Writer, jpeg []byte) error {
	segs, err := jpegsegs.Walk(jpeg)
	if err != nil {
		return err
	}
	for _, s := range segs {
		if s.Marker.Standalone() {
			fmt.Fprintln(out, s.Marker.Name())
			continue
		}
		payload := s.Payload(jpeg)
		if s.Marker != jpegsegs.APP13 || !photoshop.HasSignature(payload) {
			fmt.Fprintf(out, "%s, %d bytes\n", s.Marker.Name(), len(payload))
			continue
		}
		fmt.Fprintf(out, "%s, %d bytes (Photoshop 3.0)\n", s.Marker.Name(), len(payload))
		resources, err := photoshop.Parse(payload)
		if err != nil {
			// A resource block split across segments does not parse
			// on its own.
			fmt.Fprintf(out, "  resources: %v\n", err)
			continue
		}
		for _, r := range resources {
			label := ""
			if r.ID == photoshop.IPTCResourceID {
				label = " IPTC-NAA"
			}
			fmt.Fprintf(out, "  %s 0x%04X%s %q, %d bytes\n", r.Type, r.ID, label, r.Name, r.DataLen)
		}
	}
	if last := segs[len(segs)-1]; last.End < len(jpeg) {
		fmt.Fprintf(out, "%d bytes of image data\n", len(jpeg)-last.End)
	}
	return nil
}
