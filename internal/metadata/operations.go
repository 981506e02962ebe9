// file: internal/metadata/operations.go
// version: 1.0.0
// guid: 3b5c0387-65bc-4c26-8bf2-19ffef032e36

package metadata

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jdfalk/iptc-organizer/internal/iptc"
)

// OpKind selects what an Operation does.
type OpKind int

const (
	OpAdd OpKind = iota
	OpModify
	OpDelete
	OpPrint
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	case OpPrint:
		return "print"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// ParseOpKind accepts the names returned by OpKind.String.
func ParseOpKind(s string) (OpKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "a":
		return OpAdd, nil
	case "modify", "m":
		return OpModify, nil
	case "delete", "d":
		return OpDelete, nil
	case "print", "p":
		return OpPrint, nil
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// Operation is one edit applied to a dataset list.
//
// Skip selects the match after that many earlier matches of the same
// tag. Add only looks for a match when Anchored is set; otherwise it
// appends.
type Operation struct {
	Kind     OpKind
	Record   iptc.Record
	Tag      iptc.Tag
	Skip     int
	Anchored bool
	Value    string
}

// ParseOperation builds an Operation from its command-line form:
// "TAG=VALUE" for add and modify, "TAG" for delete and print. TAG is a
// name or "R:T" with an optional "#N" match index.
func ParseOperation(kind, arg string) (Operation, error) {
	k, err := ParseOpKind(kind)
	if err != nil {
		return Operation{}, err
	}
	op := Operation{Kind: k}

	ref := arg
	if k == OpAdd || k == OpModify {
		var ok bool
		ref, op.Value, ok = strings.Cut(arg, "=")
		if !ok {
			return Operation{}, fmt.Errorf("%s %q: must specify value as TAG=VALUE", k, arg)
		}
	}
	op.Record, op.Tag, op.Skip, op.Anchored, err = ParseTagRef(ref)
	if err != nil {
		return Operation{}, fmt.Errorf("%s: %w", k, err)
	}
	return op, nil
}

// String renders the operation in the form ParseOperation accepts.
func (op Operation) String() string {
	ref := FormatTagID(op.Record, op.Tag)
	if op.Anchored || op.Skip > 0 {
		ref += "#" + strconv.Itoa(op.Skip)
	}
	if op.Kind == OpAdd || op.Kind == OpModify {
		return fmt.Sprintf("%s %s=%s", op.Kind, ref, op.Value)
	}
	return fmt.Sprintf("%s %s", op.Kind, ref)
}

// Modifies reports whether the operation changes the data.
func (op Operation) Modifies() bool {
	return op.Kind != OpPrint
}

// ApplyOptions tune Apply.
type ApplyOptions struct {
	// Out receives the raw value of print operations.
	Out io.Writer
	// NoValidate stores values even when they break the tag's length
	// bounds.
	NoValidate bool
	// Sort orders the datasets by record and tag afterwards.
	Sort bool
}

// ApplyResult summarises what Apply did.
type ApplyResult struct {
	Added    int
	Modified int
	Deleted  int
	Printed  int
	// EncodingWarning is set when UTF-8 strings were added to data that
	// declares another character set.
	EncodingWarning bool
}

// Changed reports whether any dataset was added, modified or removed.
func (r ApplyResult) Changed() bool {
	return r.Added+r.Modified+r.Deleted > 0
}

// Apply runs ops against d in order, writing print output to out. Values
// are validated against the tag table.
func Apply(d *iptc.Data, ops []Operation, out io.Writer) (ApplyResult, error) {
	return ApplyWith(d, ops, ApplyOptions{Out: out})
}

// ApplyWith runs ops against d in order. It stops at the first failing
// operation; the operations before it stay applied.
//
// When a String dataset was added and d declares no character set, the
// UTF-8 marker is inserted. If d declares some other character set the
// declaration is kept and EncodingWarning is set.
func ApplyWith(d *iptc.Data, ops []Operation, opts ApplyOptions) (ApplyResult, error) {
	var res ApplyResult
	addedString := false
	for i, op := range ops {
		isString, err := applyOne(d, op, opts, &res)
		if err != nil {
			return res, fmt.Errorf("operation %d (%s): %w", i+1, op, err)
		}
		addedString = addedString || isString
	}

	if addedString {
		switch err := d.SetEncodingUTF8(); {
		case errors.Is(err, iptc.ErrEncodingConflict):
			res.EncodingWarning = true
		case err != nil:
			return res, err
		}
	}
	if opts.Sort {
		d.Sort()
	}
	return res, nil
}

// applyOne executes op and reports whether it stored a String value.
func applyOne(d *iptc.Data, op Operation, opts ApplyOptions, res *ApplyResult) (bool, error) {
	var target *iptc.DataSet
	if op.Kind != OpAdd || op.Anchored {
		target = d.FindNth(op.Record, op.Tag, op.Skip)
		if target == nil {
			return false, fmt.Errorf("could not find dataset %d:%d: %w", op.Record, op.Tag, iptc.ErrNotFound)
		}
	}

	switch op.Kind {
	case OpAdd, OpModify:
		ds, err := newDataSet(op, !opts.NoValidate)
		if err != nil {
			return false, err
		}
		if target == nil {
			err = d.Add(ds)
		} else {
			err = d.AddBefore(target, ds)
		}
		if err != nil {
			return false, err
		}
		if op.Kind == OpModify {
			if err := d.Remove(target); err != nil {
				return false, err
			}
			res.Modified++
		} else {
			res.Added++
		}
		return ds.Format() == iptc.FormatString, nil

	case OpDelete:
		if err := d.Remove(target); err != nil {
			return false, err
		}
		res.Deleted++

	case OpPrint:
		if opts.Out != nil {
			if _, err := opts.Out.Write(target.Bytes()); err != nil {
				return false, err
			}
		}
		res.Printed++
	}
	return false, nil
}

// newDataSet converts the textual value of op into a detached dataset.
// Integer tags take a decimal number, everything else the UTF-8 text.
func newDataSet(op Operation, validate bool) (*iptc.DataSet, error) {
	ds := iptc.NewDataSet(op.Record, op.Tag)
	switch f := ds.Format(); f {
	case iptc.FormatByte, iptc.FormatShort, iptc.FormatLong:
		v, err := strconv.ParseUint(strings.TrimSpace(op.Value), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s takes an integer value, got %q", iptc.ErrValidation, f, op.Value)
		}
		if err := ds.SetValue(uint32(v), validate); err != nil {
			return nil, err
		}
	case iptc.FormatString, iptc.FormatNumericString, iptc.FormatDate, iptc.FormatTime,
		iptc.FormatBinary, iptc.FormatUndefined, iptc.FormatUnknown:
		if err := ds.SetData([]byte(op.Value), validate); err != nil {
			return nil, err
		}
	}
	return ds, nil
}
