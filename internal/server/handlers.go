// file: internal/server/handlers.go
// version: 1.3.0
// guid: 7d3b56c2-b318-4b04-90de-8ed1eb453e0d

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jdfalk/iptc-organizer/internal/fileops"
	"github.com/jdfalk/iptc-organizer/internal/iptc"
	"github.com/jdfalk/iptc-organizer/internal/matcher"
	"github.com/jdfalk/iptc-organizer/internal/metadata"
	"github.com/jdfalk/iptc-organizer/internal/metrics"
	"github.com/jdfalk/iptc-organizer/internal/server/middleware"
)

// OpsHeader may carry the /apply operation list instead of the ops query
// parameter.
const OpsHeader = "X-IPTC-Ops"

// Response headers set by /apply.
const (
	headerAdded    = "X-IPTC-Added"
	headerModified = "X-IPTC-Modified"
	headerDeleted  = "X-IPTC-Deleted"
	headerOutput   = "X-IPTC-Output"
	headerWarning  = "X-IPTC-Warning"
	headerCache    = "X-IPTC-Cache"
)

func (s *Server) listTags(c *gin.Context) {
	query := c.Query("q")
	record := 0
	if raw, ok := c.GetQuery("record"); ok {
		n, err := strconv.Atoi(raw)
		if err == nil {
			err = ValidateRecord(n)
		}
		if err != nil {
			RespondWithValidationError(c, "record", "must be a record number from 1 to 9")
			return
		}
		record = n
	}

	items := []TagResponse{}
	for _, ti := range iptc.Tags() {
		if record != 0 && int(ti.Record) != record {
			continue
		}
		if query != "" && !matcher.Contains(ti.Name, query) && !matcher.Contains(ti.Title, query) {
			continue
		}
		items = append(items, newTagResponse(ti, false))
	}
	c.JSON(http.StatusOK, ListResponse{Items: items, Count: len(items)})
}

func (s *Server) getTag(c *gin.Context) {
	id := c.Param("id")
	r, t, err := metadata.ParseTagID(id)
	if err != nil {
		respondWithTagError(c, err)
		return
	}
	ti, ok := iptc.LookupTag(r, t)
	if !ok {
		RespondWithNotFound(c, "tag", id)
		return
	}
	RespondWithOK(c, newTagResponse(ti, true))
}

func respondWithTagError(c *gin.Context, err error) {
	var unknown *metadata.UnknownTagError
	if errors.As(err, &unknown) {
		logErrorWithContext(c, http.StatusNotFound, err.Error())
		c.JSON(http.StatusNotFound, gin.H{
			"error":       err.Error(),
			"code":        "NOT_FOUND",
			"status":      http.StatusNotFound,
			"suggestions": unknown.Suggestions,
		})
		return
	}
	RespondWithIPTCError(c, err)
}

// readImage reads the request body, answering 413 itself when the body
// limit is hit.
func readImage(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			RespondWithError(c, http.StatusRequestEntityTooLarge, "request body too large", "TOO_LARGE")
			return nil, false
		}
		RespondWithBadRequest(c, "failed to read request body: "+err.Error())
		return nil, false
	}
	if len(body) == 0 {
		RespondWithBadRequest(c, "request body must be a JPEG image")
		return nil, false
	}
	return body, true
}

func (s *Server) inspect(c *gin.Context) {
	opLog := NewOperationLogger("inspect", c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c))
	opLog.LogStart()

	body, ok := readImage(c)
	if !ok {
		return
	}
	opLog.AddDetail("bytes", len(body))

	key := fileops.HashBytes(body)
	if resp, ok := s.inspectCache.Get(key); ok {
		opLog.AddDetail("cache", "hit")
		opLog.LogSuccess(http.StatusOK)
		c.Header(headerCache, "hit")
		c.JSON(http.StatusOK, resp)
		return
	}

	doc, err := metadata.Decode(body)
	if err != nil {
		opLog.LogError(statusForError(err), err)
		RespondWithIPTCError(c, err)
		return
	}

	resp := InspectResponse{DataSets: metadata.Entries(doc.Data, s.fallback)}
	if doc.Data != nil {
		resp.HasIPTC = true
		resp.Encoding = doc.Data.Encoding().String()
		if v, ok := doc.Data.Version(); ok {
			resp.Version = int(v)
		}
		resp.Problems = validationProblems(doc.Data.Validate())
	}
	resp.Count = len(resp.DataSets)
	s.inspectCache.Set(key, resp)

	opLog.LogSuccess(http.StatusOK)
	c.Header(headerCache, "miss")
	c.JSON(http.StatusOK, resp)
}

func validationProblems(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

// parseOperations decodes the JSON operation list of an /apply request.
func parseOperations(raw string) ([]metadata.Operation, error) {
	if raw == "" {
		return nil, fmt.Errorf("no operations given")
	}
	var reqs []OperationRequest
	if err := json.Unmarshal([]byte(raw), &reqs); err != nil {
		return nil, fmt.Errorf("invalid operation list: %w", err)
	}
	if err := ValidateOperationCount(len(reqs)); err != nil {
		return nil, err
	}
	ops := make([]metadata.Operation, 0, len(reqs))
	for i, r := range reqs {
		if err := ValidateOperationRequest(r); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
		kind, err := metadata.ParseOpKind(r.Op)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
		// delete and print take a bare tag; a stray value is ignored
		arg := r.Tag
		if kind == metadata.OpAdd || kind == metadata.OpModify {
			arg += "=" + r.Value
		}
		op, err := metadata.ParseOperation(kind.String(), arg)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (s *Server) apply(c *gin.Context) {
	opLog := NewOperationLogger("apply", c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c))
	opLog.LogStart()

	raw := c.Query("ops")
	if raw == "" {
		raw = c.GetHeader(OpsHeader)
	}
	ops, err := parseOperations(raw)
	if err != nil {
		var unknown *metadata.UnknownTagError
		if errors.As(err, &unknown) {
			respondWithTagError(c, err)
			return
		}
		LogValidationError("apply", "ops", err.Error(), middleware.GetRequestID(c))
		RespondWithValidationError(c, "ops", err.Error())
		return
	}
	opLog.AddDetail("operations", len(ops))

	body, ok := readImage(c)
	if !ok {
		return
	}

	opts := metadata.ApplyOptions{
		NoValidate: !ParseQueryBool(c, "validate", !s.cfg.NoValidate),
		Sort:       ParseQueryBool(c, "sort", s.cfg.Sort),
	}
	var printed bytes.Buffer
	opts.Out = &printed

	var (
		out []byte
		res metadata.ApplyResult
	)
	err = metrics.Track("apply", metadata.ErrorClass, func() error {
		doc, err := metadata.Decode(body)
		if err != nil {
			return err
		}
		res, err = metadata.ApplyWith(doc.EnsureData(), ops, opts)
		if err != nil {
			return err
		}
		if !res.Changed() {
			out = body
			return nil
		}
		out, err = doc.Encode()
		return err
	})
	if err != nil {
		opLog.LogError(statusForError(err), err)
		RespondWithIPTCError(c, err)
		return
	}

	c.Header(headerAdded, strconv.Itoa(res.Added))
	c.Header(headerModified, strconv.Itoa(res.Modified))
	c.Header(headerDeleted, strconv.Itoa(res.Deleted))
	if printed.Len() > 0 {
		c.Header(headerOutput, strconv.QuoteToASCII(printed.String()))
	}
	if res.EncodingWarning {
		opLog.LogWarning("UTF-8 values added to data declaring another character set")
		c.Header(headerWarning, "character set is not UTF-8")
	}

	opLog.LogSuccess(http.StatusOK)
	c.Data(http.StatusOK, "image/jpeg", out)
}
