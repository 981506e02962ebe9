// file: internal/iptc/tags.go
// version: 1.0.0
// guid: 529cbb88-ee12-422f-8301-280b6870e673

package iptc

import "fmt"

// Record is an IIM record number (1-9).
type Record uint8

// Tag is an IIM dataset number within a record (0-255).
type Tag uint8

// Well-known records.
const (
	RecordEnvelope    Record = 1
	RecordApplication Record = 2
	RecordNewsPhoto   Record = 3
	RecordPreObject   Record = 7
	RecordObject      Record = 8
	RecordPostObject  Record = 9
)

// Tags referenced directly by the container.
const (
	TagModelVersion  Tag = 0
	TagCharacterSet  Tag = 90
	TagRecordVersion Tag = 0
	TagKeywords      Tag = 25
	TagCaption       Tag = 120
)

// IIMVersion is the application record version written by SetVersion
// callers that do not choose one.
const IIMVersion = 4

// TagInfo describes one (record, tag) pair of the IIM tag table.
type TagInfo struct {
	Record      Record
	Tag         Tag
	Name        string
	Title       string
	Description string
	Format      Format
	Mandatory   bool
	Repeatable  bool
	MinBytes    int
	MaxBytes    int
}

// ID returns the "R:TTT" form used in listings.
func (ti TagInfo) ID() string {
	return fmt.Sprintf("%d:%03d", ti.Record, ti.Tag)
}

var (
	tagIndex [10][256]*TagInfo
	tagNames = make(map[string][2]uint8)
)

// Initialize the lookup index from the static table.
func init() {
	for i := range tagTable {
		ti := &tagTable[i]
		if ti.Record < 1 || ti.Record > 9 {
			panic(fmt.Sprintf("iptc: tag table entry %q has record %d", ti.Name, ti.Record))
		}
		tagIndex[ti.Record][ti.Tag] = ti
		if _, dup := tagNames[ti.Name]; !dup {
			tagNames[ti.Name] = [2]uint8{uint8(ti.Record), uint8(ti.Tag)}
		}
	}
}

func lookupTag(r Record, t Tag) *TagInfo {
	if r > 9 {
		return nil
	}
	return tagIndex[r][t]
}

// LookupTag returns the table entry for (r, t). Unknown tags are reported
// with ok == false.
func LookupTag(r Record, t Tag) (TagInfo, bool) {
	ti := lookupTag(r, t)
	if ti == nil {
		return TagInfo{}, false
	}
	return *ti, true
}

// FindTagByName resolves a canonical tag name ("Caption", "Keywords") to
// its record and tag numbers. The match is exact and case-sensitive.
func FindTagByName(name string) (Record, Tag, bool) {
	rt, ok := tagNames[name]
	if !ok {
		return 0, 0, false
	}
	return Record(rt[0]), Tag(rt[1]), true
}

// Tags returns every known tag ordered by record then tag.
func Tags() []TagInfo {
	out := make([]TagInfo, 0, len(tagTable))
	for r := 1; r <= 9; r++ {
		for t := 0; t < 256; t++ {
			if ti := tagIndex[r][t]; ti != nil {
				out = append(out, *ti)
			}
		}
	}
	return out
}

// TagNames returns the canonical names of all known tags in table order.
func TagNames() []string {
	all := Tags()
	names := make([]string, len(all))
	for i, ti := range all {
		names[i] = ti.Name
	}
	return names
}

// TagName returns the canonical name of (r, t), or "" if unknown.
func TagName(r Record, t Tag) string {
	if ti := lookupTag(r, t); ti != nil {
		return ti.Name
	}
	return ""
}

// TagTitle returns the human readable title of (r, t), or "" if unknown.
func TagTitle(r Record, t Tag) string {
	if ti := lookupTag(r, t); ti != nil {
		return ti.Title
	}
	return ""
}

// TagDescription returns the long description of (r, t), or "" if unknown.
func TagDescription(r Record, t Tag) string {
	if ti := lookupTag(r, t); ti != nil {
		return ti.Description
	}
	return ""
}

// RecordName returns the IIM name of a record.
func RecordName(r Record) string {
	switch r {
	case RecordEnvelope:
		return "Envelope"
	case RecordApplication:
		return "Application"
	case RecordNewsPhoto:
		return "Digital Newsphoto Parameter"
	case 4:
		return "Not Allocated"
	case 5:
		return "Abstract Relationship"
	case 6:
		return "Not Allocated"
	case RecordPreObject:
		return "Pre-ObjectData Descriptor"
	case RecordObject:
		return "ObjectData"
	case RecordPostObject:
		return "Post-ObjectData Descriptor"
	}
	return "Unknown"
}
