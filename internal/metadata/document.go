// file: internal/metadata/document.go
// version: 1.1.0
// guid: 3c53b5a7-e13e-4a77-aa6b-d04390bdfd2f

// Package metadata ties the JPEG, Photoshop and IIM codecs together into
// documents that can be inspected, edited and written back.
package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jdfalk/iptc-organizer/internal/fileops"
	"github.com/jdfalk/iptc-organizer/internal/iptc"
	"github.com/jdfalk/iptc-organizer/internal/jpegsegs"
	"github.com/jdfalk/iptc-organizer/internal/metrics"
	"github.com/jdfalk/iptc-organizer/internal/photoshop"
)

// Document is a decoded JPEG together with its IPTC metadata.
type Document struct {
	// Data is nil when the image carries no IPTC resource.
	Data *iptc.Data
	// Payload is the Photoshop APP13 payload as found, nil if absent.
	Payload []byte
	// Original holds the JPEG bytes the document was decoded from.
	Original []byte
}

// Decode extracts the IPTC metadata of a JPEG image.
func Decode(jpeg []byte) (*Document, error) {
	doc := &Document{Original: jpeg}
	err := metrics.Track("decode", ErrorClass, func() error {
		payload, err := jpegsegs.ReadPhotoshopPayload(jpeg)
		if err != nil {
			return err
		}
		doc.Payload = payload
		if payload == nil {
			return nil
		}
		iim, ok, err := photoshop.FindIPTC(payload)
		if err != nil || !ok {
			return err
		}
		d, err := iptc.Parse(iim)
		if err != nil {
			return err
		}
		doc.Data = d
		metrics.AddDatasets(d.Len())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ReadFile reads and decodes the JPEG at path.
func ReadFile(path string) (*Document, error) {
	jpeg, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Decode(jpeg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// EnsureData returns the document's IPTC data, creating an empty set when
// the image has none.
func (doc *Document) EnsureData() *iptc.Data {
	if doc.Data == nil {
		doc.Data = iptc.New()
	}
	return doc.Data
}

// Encode returns the JPEG with the document's current IPTC data embedded.
// A document without data is returned unchanged.
func (doc *Document) Encode() ([]byte, error) {
	if doc.Data == nil {
		return append([]byte(nil), doc.Original...), nil
	}
	var out []byte
	err := metrics.Track("encode", ErrorClass, func() error {
		iim, err := doc.Data.Bytes()
		if err != nil {
			return fmt.Errorf("failed to generate IPTC bytestream: %w", err)
		}
		payload, err := photoshop.Replace(doc.Payload, photoshop.IPTCResourceID, iim)
		if err != nil {
			return fmt.Errorf("failed to generate Photoshop payload: %w", err)
		}
		out, err = jpegsegs.WritePhotoshopPayload(doc.Original, payload)
		if err != nil {
			return err
		}
		metrics.AddBytesWritten(len(out))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WriteFile encodes doc and atomically replaces path with the result.
func WriteFile(path string, doc *Document, config fileops.OperationConfig) (*fileops.WriteResult, error) {
	jpeg, err := doc.Encode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fileops.WriteFile(path, jpeg, config)
}

// ErrorClass maps an error to a short label for metrics and exit codes.
// Any path or link error from the file system counts as "io".
func ErrorClass(err error) string {
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, jpegsegs.ErrNotJPEG):
		return "not_jpeg"
	case errors.Is(err, jpegsegs.ErrFormat),
		errors.Is(err, photoshop.ErrFormat),
		errors.Is(err, iptc.ErrFormat):
		return "format"
	case errors.Is(err, iptc.ErrNotFound):
		return "not_found"
	case errors.Is(err, iptc.ErrValidation):
		return "validation"
	case errors.Is(err, os.ErrNotExist), errors.Is(err, os.ErrPermission),
		errors.As(err, &pathErr), errors.As(err, &linkErr):
		return "io"
	default:
		return "error"
	}
}
