// file: internal/metadata/render.go
// version: 1.0.0
// guid: 186d5115-f3e7-4067-bd5b-ca185a7354c4

package metadata

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"

	"github.com/jdfalk/iptc-organizer/internal/iptc"
)

// Entry is the structured form of one dataset for YAML and JSON output.
type Entry struct {
	ID     string `json:"id" yaml:"id"`
	Record int    `json:"record" yaml:"record"`
	Tag    int    `json:"tag" yaml:"tag"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Format string `json:"format" yaml:"format"`
	Size   int    `json:"size" yaml:"size"`
	Value  string `json:"value" yaml:"value"`
}

// Entries lists the datasets of d in iteration order. Text values are
// converted to UTF-8, falling back to fallback (ISO-8859-1 when nil) for
// undeclared character sets.
func Entries(d *iptc.Data, fallback encoding.Encoding) []Entry {
	if d == nil {
		return []Entry{}
	}
	out := make([]Entry, 0, d.Len())
	for _, ds := range d.DataSets() {
		out = append(out, Entry{
			ID:     FormatTagID(ds.Record(), ds.Tag()),
			Record: int(ds.Record()),
			Tag:    int(ds.Tag()),
			Name:   iptc.TagName(ds.Record(), ds.Tag()),
			Title:  iptc.TagTitle(ds.Record(), ds.Tag()),
			Format: ds.Format().String(),
			Size:   ds.Len(),
			Value:  displayValue(ds, fallback),
		})
	}
	return out
}

func displayValue(ds *iptc.DataSet, fallback encoding.Encoding) string {
	switch ds.Format() {
	case iptc.FormatByte, iptc.FormatShort, iptc.FormatLong,
		iptc.FormatBinary, iptc.FormatUndefined, iptc.FormatUnknown:
		return ds.Text(0)
	case iptc.FormatString, iptc.FormatNumericString, iptc.FormatDate, iptc.FormatTime:
		return iptc.DecodeTextWith(ds, fallback)
	}
	return ds.Text(0)
}

// WriteTable prints d as the Tag/Name/Type/Size/Value table.
func WriteTable(w io.Writer, d *iptc.Data) error {
	return WriteTableCharset(w, d, nil)
}

// WriteTableCharset is WriteTable with an explicit fallback charset for
// text that does not declare one.
func WriteTableCharset(w io.Writer, d *iptc.Data, fallback encoding.Encoding) error {
	if d == nil {
		_, err := fmt.Fprintln(w, "No IPTC data found")
		return err
	}
	if d.Len() > 0 {
		if _, err := fmt.Fprintf(w, "%6.6s %-20.20s %-9.9s %6s  %s\n", "Tag", "Name", "Type", "Size", "Value"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, " ----- -------------------- --------- ------  -----"); err != nil {
			return err
		}
	}
	for _, e := range Entries(d, fallback) {
		if _, err := fmt.Fprintf(w, "%2d:%03d %-20.20s %-9.9s %6d  %s\n",
			e.Record, e.Tag, e.Title, e.Format, e.Size, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// WriteTagList prints every known tag.
func WriteTagList(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%6.6s %s\n ----- --------------------\n", "Tag", "Name"); err != nil {
		return err
	}
	for _, ti := range iptc.Tags() {
		if err := WriteTagInfo(w, ti.Record, ti.Tag, false); err != nil {
			return err
		}
	}
	return nil
}

// WriteTagInfo prints the ID and name of (r, t), and with verbose set its
// description.
func WriteTagInfo(w io.Writer, r iptc.Record, t iptc.Tag, verbose bool) error {
	ti, ok := iptc.LookupTag(r, t)
	if !ok {
		return &UnknownTagError{Input: FormatTagID(r, t)}
	}
	if _, err := fmt.Fprintf(w, "%2d:%03d %s\n", r, t, ti.Name); err != nil {
		return err
	}
	if !verbose {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s\n\nTitle:      %s\nRecord:     %s\nFormat:     %s\nLength:     %d..%d bytes\nMandatory:  %t\nRepeatable: %t\n",
		ti.Description, ti.Title, iptc.RecordName(r), ti.Format, ti.MinBytes, ti.MaxBytes, ti.Mandatory, ti.Repeatable)
	return err
}
