// file: internal/server/response_types.go
// version: 2.0.0
// guid: 7f8a9b0c-1d2e-3f4a-5b6c-7d8e9f0a1b2c

package server

import (
	"github.com/jdfalk/iptc-organizer/internal/iptc"
	"github.com/jdfalk/iptc-organizer/internal/metadata"
)

// ListResponse provides a consistent format for list responses
type ListResponse struct {
	Items any `json:"items"`
	Count int `json:"count"`
}

// TagResponse describes one entry of the tag table.
type TagResponse struct {
	ID          string `json:"id"`
	Record      int    `json:"record"`
	Tag         int    `json:"tag"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Format      string `json:"format"`
	Mandatory   bool   `json:"mandatory"`
	Repeatable  bool   `json:"repeatable"`
	MinBytes    int    `json:"min_bytes"`
	MaxBytes    int    `json:"max_bytes"`
}

func newTagResponse(ti iptc.TagInfo, withDescription bool) TagResponse {
	resp := TagResponse{
		ID:         metadata.FormatTagID(ti.Record, ti.Tag),
		Record:     int(ti.Record),
		Tag:        int(ti.Tag),
		Name:       ti.Name,
		Title:      ti.Title,
		Format:     ti.Format.String(),
		Mandatory:  ti.Mandatory,
		Repeatable: ti.Repeatable,
		MinBytes:   ti.MinBytes,
		MaxBytes:   ti.MaxBytes,
	}
	if withDescription {
		resp.Description = ti.Description
	}
	return resp
}

// InspectResponse is the IPTC content of an uploaded JPEG.
type InspectResponse struct {
	HasIPTC  bool             `json:"has_iptc"`
	Encoding string           `json:"encoding,omitempty"`
	Version  int              `json:"version,omitempty"`
	Count    int              `json:"count"`
	DataSets []metadata.Entry `json:"datasets"`
	Problems []string         `json:"problems,omitempty"`
}

// OperationRequest is one element of the ops list sent to /apply.
type OperationRequest struct {
	Op    string `json:"op"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}
