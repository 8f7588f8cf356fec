package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rightsteps/internal/services"
	"rightsteps/internal/store"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check database connectivity, provider and catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			appInstance, err := GetAppFromContext(ctx)
			if err != nil {
				return fmt.Errorf("failed to get app instance: %w", err)
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Checking database connectivity...")
			switch err := appInstance.PrimaryStore.Ping(ctx); {
			case errors.Is(err, store.ErrStoreDisabled):
				fmt.Fprintln(out, "Database not configured; history and cost logs are not persisted.")
			case err != nil:
				return fmt.Errorf("database ping failed: %w", err)
			default:
				fmt.Fprintln(out, "Database connection successful.")
			}

			spent, err := appInstance.CostTracker.TotalCost(ctx)
			if err != nil {
				return fmt.Errorf("cost check failed: %w", err)
			}
			fmt.Fprintf(out, "AI spend to date: $%.6f\n", spent)

			cs := appInstance.CompletionService
			fmt.Fprintf(out, "Completion provider: %s (model %q) is %s.\n", cs.Name(), cs.ModelName(), cs.Status())
			if b, ok := cs.(services.BreakerState); ok {
				fmt.Fprintf(out, "Circuit breaker: %s.\n", b.State())
			}

			courses, err := appInstance.CatalogStore.ListCourses(ctx)
			if err != nil {
				return fmt.Errorf("catalog check failed: %w", err)
			}
			tutors, err := appInstance.CatalogStore.ListTutors(ctx)
			if err != nil {
				return fmt.Errorf("catalog check failed: %w", err)
			}
			fmt.Fprintf(out, "Catalog: %d courses, %d tutors.\n", len(courses), len(tutors))
			return nil
		},
	}
}
