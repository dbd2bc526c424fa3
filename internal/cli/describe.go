package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cursors/pkg/adapt"
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
	"github.com/mesh-intelligence/cursors/pkg/memory"
)

// family describes one cursor type as the dispatch layer sees it.
type family struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Result   string `json:"result"`
	Identity bool   `json:"identity"`
	Backend  string `json:"backend"`
	Error    string `json:"error,omitempty"`
}

func describe[C cursor.Cursor[R], R any](name string) family {
	var zero C
	res := cursor.ResultOf[C, R]()
	f := family{
		Name:     name,
		Category: res.Category.String(),
		Result:   res.Type.String(),
		Identity: res.Identity(),
		Backend:  backend.Of(zero).Name(),
	}
	if err := cursor.Verify[C, R](); err != nil {
		f.Error = err.Error()
	}
	return f
}

type (
	hostInts    = memory.HostPointer[int]
	hostRef     = memory.HostRef[int]
	discardInts = adapt.Discard[int]
)

// families lists every built-in cursor family instantiated over int.
func families() []family {
	return []family{
		describe[hostInts, hostRef]("host"),
		describe[memory.MultiCorePointer[int], memory.MultiCoreRef[int]]("multicore"),
		describe[memory.VectorPointer[int], memory.VectorRef[int]]("vector"),
		describe[memory.AcceleratorPointer[int], memory.AcceleratorRef[int]]("accelerator"),
		describe[discardInts, discardInts]("discard"),
		describe[adapt.Counting[int], int]("counting"),
		describe[adapt.Constant[int], int]("constant"),
		describe[adapt.Offset[hostInts, hostRef], hostRef]("offset(host)"),
		describe[adapt.OffsetSink[discardInts, int], adapt.OffsetSink[discardInts, int]]("offset(discard)"),
		describe[adapt.Transform[hostInts, hostRef, int], int]("transform(host)"),
		describe[adapt.Transform[discardInts, discardInts, int], int]("transform(discard)"),
		describe[adapt.Zip2[hostInts, hostRef, adapt.Counting[int], int], cursor.Tuple2[hostRef, int]]("zip(host, counting)"),
		describe[adapt.Zip2[hostInts, hostRef, discardInts, discardInts], cursor.Tuple2[hostRef, discardInts]]("zip(host, discard)"),
		describe[adapt.Reverse[hostInts, hostRef], hostRef]("reverse(host)"),
		describe[adapt.ReverseSink[discardInts, int], adapt.ReverseSink[discardInts, int]]("reverse(discard)"),
		describe[adapt.Permutation[hostInts, hostRef, adapt.Counting[int], int], hostRef]("permutation(host, counting)"),
		describe[adapt.Tagged[hostInts, hostRef, backend.Vector], hostRef]("tagged(host, vector)"),
		describe[adapt.TaggedSink[discardInts, int, backend.Accelerator], adapt.TaggedSink[discardInts, int, backend.Accelerator]]("tagged(discard, accelerator)"),
	}
}

func (a *app) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "List the built-in cursor families with their category and result type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fams := families()
			if a.flags.jsonMode {
				out, err := json.MarshalIndent(fams, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal families: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			return writeFamilies(cmd.OutOrStdout(), fams)
		},
	}
}

func writeFamilies(w io.Writer, fams []family) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FAMILY\tCATEGORY\tBACKEND\tRESULT")
	for _, f := range fams {
		result := f.Result
		if f.Identity {
			result += " (self)"
		}
		if f.Error != "" {
			result += " ! " + f.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Category, f.Backend, result)
	}
	return tw.Flush()
}
