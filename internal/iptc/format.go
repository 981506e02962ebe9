// file: internal/iptc/format.go
// version: 1.0.0
// guid: 0681b28e-a4d5-4ac3-b732-509e7cf770ea

package iptc

// Format is the storage format of a dataset value as declared by the IIM
// tag table.
type Format int

const (
	FormatUnknown Format = iota
	FormatByte
	FormatShort
	FormatLong
	FormatString
	FormatNumericString
	FormatDate
	FormatTime
	FormatBinary
	FormatUndefined
)

// String returns the short name used in listings ("Byte", "String", ...).
func (f Format) String() string {
	switch f {
	case FormatByte:
		return "Byte"
	case FormatShort:
		return "Short"
	case FormatLong:
		return "Long"
	case FormatString:
		return "String"
	case FormatNumericString:
		return "NumString"
	case FormatDate:
		return "Date"
	case FormatTime:
		return "Time"
	case FormatBinary:
		return "Binary"
	case FormatUndefined:
		return "Undefined"
	case FormatUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// Width returns the fixed byte width of integer formats, or 0 for formats
// without one.
func (f Format) Width() int {
	switch f {
	case FormatByte:
		return 1
	case FormatShort:
		return 2
	case FormatLong:
		return 4
	case FormatString, FormatNumericString, FormatDate, FormatTime,
		FormatBinary, FormatUndefined, FormatUnknown:
		return 0
	}
	return 0
}

// IsInteger reports whether values of this format are big-endian integers.
func (f Format) IsInteger() bool {
	return f.Width() > 0
}

// IsText reports whether values of this format are character data.
func (f Format) IsText() bool {
	switch f {
	case FormatString, FormatNumericString, FormatDate, FormatTime:
		return true
	case FormatByte, FormatShort, FormatLong, FormatBinary, FormatUndefined, FormatUnknown:
		return false
	}
	return false
}
