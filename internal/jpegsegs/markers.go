// file: internal/jpegsegs/markers.go
// version: 1.0.0
// guid: ffe0217b-dc47-4547-803a-301c2bcb63d8

// Package jpegsegs walks JPEG marker segments and splices Photoshop APP13
// payloads into an otherwise unchanged JPEG stream.
package jpegsegs

import "fmt"

// Marker is the second byte of a JPEG marker (the first is always 0xFF).
type Marker uint8

// Marker values. SOFn = SOF0+n, RSTn = RST0+n, APPn = APP0+n.
const (
	TEM   Marker = 0x01
	SOF0  Marker = 0xC0
	DHT   Marker = 0xC4
	JPG   Marker = 0xC8
	DAC   Marker = 0xCC
	RST0  Marker = 0xD0
	SOI   Marker = 0xD8
	EOI   Marker = 0xD9
	SOS   Marker = 0xDA
	DQT   Marker = 0xDB
	DNL   Marker = 0xDC
	DRI   Marker = 0xDD
	DHP   Marker = 0xDE
	EXP   Marker = 0xDF
	APP0  Marker = 0xE0
	APP1  Marker = 0xE1
	APP13 Marker = 0xED
	JPG0  Marker = 0xF0
	COM   Marker = 0xFE
)

var markerNames [256]string

func init() {
	markerNames[0] = "NUL"
	markerNames[TEM] = "TEM"
	markerNames[DHT] = "DHT"
	markerNames[JPG] = "JPG"
	markerNames[DAC] = "DAC"
	markerNames[SOI] = "SOI"
	markerNames[EOI] = "EOI"
	markerNames[SOS] = "SOS"
	markerNames[DQT] = "DQT"
	markerNames[DNL] = "DNL"
	markerNames[DRI] = "DRI"
	markerNames[DHP] = "DHP"
	markerNames[EXP] = "EXP"
	markerNames[COM] = "COM"
	markerNames[0xFF] = "FILL"

	for m := 0x02; m <= 0xBF; m++ {
		markerNames[m] = fmt.Sprintf("RES%02X", m)
	}
	for n := 0; n < 16; n++ {
		if n == 4 || n == 8 || n == 12 {
			continue
		}
		markerNames[int(SOF0)+n] = fmt.Sprintf("SOF%d", n)
	}
	for n := 0; n < 8; n++ {
		markerNames[int(RST0)+n] = fmt.Sprintf("RST%d", n)
	}
	for n := 0; n < 16; n++ {
		markerNames[int(APP0)+n] = fmt.Sprintf("APP%d", n)
	}
	for n := 0; n < 14; n++ {
		markerNames[int(JPG0)+n] = fmt.Sprintf("JPG%d", n)
	}
}

// Name returns the conventional name of m ("SOI", "APP13", "RST3").
func (m Marker) Name() string {
	return markerNames[m]
}

func (m Marker) String() string {
	return m.Name()
}

// Standalone reports whether m is a marker without a length field.
func (m Marker) Standalone() bool {
	return m == TEM || (m >= RST0 && m <= RST0+7) || m == SOI || m == EOI
}
