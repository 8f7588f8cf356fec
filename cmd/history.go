package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var historyLimit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "View AI search history",
		Long:  `Displays past AI searches recorded by the application, newest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := GetAppFromContext(cmd.Context())
			if err != nil {
				return err
			}

			queries, err := appInstance.HistoryService.Recent(cmd.Context(), historyLimit)
			if err != nil {
				return fmt.Errorf("error listing search history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(queries) == 0 {
				fmt.Fprintln(out, "No search history found.")
				return nil
			}

			table := newTable(out, []string{"ID", "Query", "Progress", "Courses", "Tutors", "Fallback", "Executed At"})
			for _, q := range queries {
				table.Append([]string{
					strconv.FormatInt(q.ID, 10),
					q.Query,
					strconv.FormatBool(q.IncludeProgress),
					strconv.Itoa(q.CourseCount),
					strconv.Itoa(q.TutorCount),
					strconv.FormatBool(q.Fallback),
					q.ExecutedAt.Format("2006-01-02 15:04:05"),
				})
			}
			table.Render()
			return nil
		},
	}

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of history entries to show")
	return historyCmd
}
