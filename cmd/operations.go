// file: cmd/operations.go
// version: 1.0.0
// guid: b4d0d4ce-500f-4e4b-b53b-7ea7a73eabef

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdfalk/iptc-organizer/internal/metadata"
)

// opSpec is one operation flag as typed on the command line.
type opSpec struct {
	kind string
	arg  string
}

// opList collects --add, --modify, --delete and --print in the order
// they were given.
type opList struct {
	specs []opSpec
}

// opFlag is the flag value for one operation kind. All four share one
// opList.
type opFlag struct {
	kind string
	list *opList
}

func (f *opFlag) String() string { return "" }

func (f *opFlag) Set(v string) error {
	f.list.specs = append(f.list.specs, opSpec{kind: f.kind, arg: v})
	return nil
}

func (f *opFlag) Type() string {
	if f.kind == "add" || f.kind == "modify" {
		return "TAG=VALUE"
	}
	return "TAG"
}

// addOperationFlags registers the operation flags on cmd.
func addOperationFlags(cmd *cobra.Command) *opList {
	list := &opList{}
	flags := cmd.Flags()
	flags.VarP(&opFlag{kind: "add", list: list}, "add", "a", "add a dataset (TAG or TAG#N to insert before the Nth match)")
	flags.VarP(&opFlag{kind: "modify", list: list}, "modify", "m", "replace the value of a dataset (TAG#N for the Nth match)")
	flags.VarP(&opFlag{kind: "delete", list: list}, "delete", "d", "delete a dataset (TAG#N for the Nth match)")
	flags.VarP(&opFlag{kind: "print", list: list}, "print", "p", "print the raw value of a dataset")
	return list
}

// Operations parses the collected flags. TAG is a name such as Caption
// or a numeric "R:T" pair.
func (l *opList) Operations() ([]metadata.Operation, error) {
	ops := make([]metadata.Operation, 0, len(l.specs))
	for _, s := range l.specs {
		op, err := metadata.ParseOperation(s.kind, s.arg)
		if err != nil {
			return nil, fmt.Errorf("--%s %s: %w", s.kind, s.arg, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// hasPrint reports whether any operation prints a value.
func hasPrint(ops []metadata.Operation) bool {
	for _, op := range ops {
		if op.Kind == metadata.OpPrint {
			return true
		}
	}
	return false
}

// modifies reports whether any operation changes the data.
func modifies(ops []metadata.Operation) bool {
	for _, op := range ops {
		if op.Modifies() {
			return true
		}
	}
	return false
}
