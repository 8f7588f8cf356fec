package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rightsteps/internal/clix"
)

func newCostCmd() *cobra.Command {
	costCmd := &cobra.Command{
		Use:   "cost",
		Short: "View AI usage costs",
		Long:  `Provides subcommands to list detailed AI usage logs and view cost summaries.`,
	}

	costListCmd := &cobra.Command{
		Use:   "list",
		Short: "List detailed AI usage logs",
		Long:  `Displays a paginated list of recorded completion calls with their token counts and cost.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := GetAppFromContext(cmd.Context())
			if err != nil {
				return err
			}

			pagination, err := clix.ParsePagination(cmd.Flags())
			if err != nil {
				return fmt.Errorf("invalid pagination flags: %w", err)
			}

			logs, err := appInstance.CostService.ListUsage(cmd.Context(), pagination.Limit, pagination.Offset)
			if err != nil {
				return fmt.Errorf("failed to list cost logs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No cost logs found.")
				return nil
			}

			table := newTable(out, []string{"ID", "Timestamp", "Provider", "Service", "Model", "In Tokens", "Out Tokens", "Cost"})
			for _, l := range logs {
				table.Append([]string{
					strconv.FormatInt(l.ID, 10),
					l.Timestamp.Format("2006-01-02 15:04:05"),
					l.ProviderName,
					l.ServiceType,
					l.ModelName,
					strconv.Itoa(l.InputTokens),
					strconv.Itoa(l.OutputTokens),
					fmt.Sprintf("%.8f", l.Cost),
				})
			}
			table.Render()

			fmt.Fprintf(out, "\nDisplayed %d logs.\n", len(logs))
			return nil
		},
	}
	costListCmd.Flags().IntP("limit", "l", 50, "Number of logs to display")
	costListCmd.Flags().IntP("offset", "o", 0, "Number of logs to skip")

	costSummaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show summary of total AI costs and token usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := GetAppFromContext(cmd.Context())
			if err != nil {
				return err
			}

			summary, err := appInstance.CostService.GetSummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get cost summary: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "AI Usage Cost Summary:")
			fmt.Fprintln(out, "----------------------")
			fmt.Fprintf(out, "Total Cost:          $%.6f\n", summary.TotalCostUSD)
			fmt.Fprintf(out, "Total Input Tokens:  %d\n", summary.TotalInputTokens)
			fmt.Fprintf(out, "Total Output Tokens: %d\n", summary.TotalOutputTokens)
			fmt.Fprintln(out, "----------------------")
			return nil
		},
	}

	costCmd.AddCommand(costListCmd, costSummaryCmd)
	return costCmd
}
