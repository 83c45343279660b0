// Status command: report the derived environment state and recent
// bootstrap activity.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// statusTailLength is how many journal events status prints.
const statusTailLength = 10

var statusCmd = &cobra.Command{
	Use:   "status <script>",
	Short: "Show the script's environment paths, integrity verdict, and bootstrap history",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	b, ictx, j, err := newLauncher(cmd, args[0], nil)
	if err != nil {
		return err
	}
	defer j.Close()

	out := cmd.OutOrStdout()
	desc := b.Locate(ictx.Root)

	fmt.Fprintf(out, "script root:  %s\n", ictx.Root)
	fmt.Fprintf(out, "environment:  %s\n", desc.Dir)
	fmt.Fprintf(out, "interpreter:  %s\n", desc.Python)

	if _, statErr := os.Stat(desc.Dir); statErr != nil {
		fmt.Fprintln(out, "state:        not provisioned")
		return nil
	}

	verdict := "unsatisfied"
	if b.Verifier.Satisfied(desc.Python) {
		verdict = "satisfied"
	}
	fmt.Fprintf(out, "state:        provisioned, %s\n", verdict)

	events, err := j.Tail(statusTailLength)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	if len(events) == 0 {
		return nil
	}

	fmt.Fprintln(out, "recent bootstrap events:")
	for _, ev := range events {
		fmt.Fprintf(out, "  %s  %-9s %s\n", ev.OccurredAt.Format(time.RFC3339), ev.Kind, ev.Detail)
	}
	return nil
}
