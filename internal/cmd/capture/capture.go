package capture

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pavver/flexbuf/internal/inspect"
	"github.com/pavver/flexbuf/internal/linebuf"
)

// NewCommand constructs the `capture` command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Read stdin into a ring buffer and print the retained tail",
		RunE: func(cmd *cobra.Command, _ []string) error {
			capacity, _ := cmd.Flags().GetInt("capacity")
			maxRecords, _ := cmd.Flags().GetInt("max-records")
			filterExpr, _ := cmd.Flags().GetString("filter")
			outPath, _ := cmd.Flags().GetString("out")
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), capacity, maxRecords, filterExpr, outPath)
		},
	}
	cmd.Flags().Int("capacity", 4096, "Buffer capacity in cells")
	cmd.Flags().Int("max-records", 128, "Maximum retained records")
	cmd.Flags().String("filter", "", "CEL expression over id, size, text, fragmented, start, end")
	cmd.Flags().String("out", "", "Write an HTML snapshot of the final buffer state to this file")
	return cmd
}

func run(in io.Reader, out io.Writer, capacity, maxRecords int, filterExpr, outPath string) error {
	filter, err := inspect.NewFilter(filterExpr)
	if err != nil {
		return fmt.Errorf("invalid --filter: %w", err)
	}
	buf, err := linebuf.New(linebuf.Options{Capacity: capacity, MaxRecords: maxRecords, Locker: linebuf.NopLocker{}})
	if err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), linebuf.MaxCapacity)
	var skipped int
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if _, err := buf.WriteRecord(line); err != nil {
			skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	st := buf.Inspect()
	for _, r := range st.Records {
		if !filter.Matches(r) {
			continue
		}
		fmt.Fprintf(out, "%s\n", r.Data)
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d oversized line(s)\n", skipped)
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := inspect.Render(f, st, filter); err != nil {
			return err
		}
	}
	return nil
}
