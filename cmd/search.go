package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rightsteps/internal/models"
)

func newSearchCmd() *cobra.Command {
	var (
		searchProgress bool
		searchJSON     bool
	)

	searchCmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Ask the AI assistant for course and tutor recommendations",
		Long: `Sends the query to the configured completion provider, grounded in the
catalog, and prints the suggestion with the matching courses and tutors.
Use --progress to include the learner's progress report.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := GetAppFromContext(cmd.Context())
			if err != nil {
				return err
			}

			req := models.RecommendationRequest{
				Query:           strings.Join(args, " "),
				IncludeProgress: searchProgress,
			}
			resp, err := appInstance.RecommendationService.Recommend(cmd.Context(), req)

			var perr *models.ProviderError
			if err != nil && !errors.As(err, &perr) {
				return fmt.Errorf("search failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if searchJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(resp); encErr != nil {
					return fmt.Errorf("failed to encode result: %w", encErr)
				}
			} else {
				printRecommendation(out, resp, perr != nil)
			}

			if perr != nil {
				return fmt.Errorf("search fell back to the default answer: %w", perr)
			}
			return nil
		},
	}

	searchCmd.Flags().BoolVarP(&searchProgress, "progress", "p", false, "Include the learner's progress report")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print the result as JSON")
	return searchCmd
}

func printRecommendation(w io.Writer, resp *models.RecommendationResponse, fallback bool) {
	heading := color.New(color.FgCyan, color.Bold)
	answer := color.New(color.FgWhite)
	if fallback {
		answer = color.New(color.FgYellow)
	}

	heading.Fprintln(w, "Suggestion:")
	answer.Fprintln(w, resp.AISuggestion)

	if len(resp.Courses) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Courses:")
		for _, c := range resp.Courses {
			fmt.Fprintf(w, "  %s  %s, £%v, rating %v\n", color.GreenString(c.Name), c.Difficulty, c.Price, c.Rating)
		}
	}
	if len(resp.Tutors) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Tutors:")
		for _, t := range resp.Tutors {
			fmt.Fprintf(w, "  %s  %s, £%v/hr, rating %v\n", color.GreenString(t.Name), t.Category, t.HourlyRate, t.Rating)
		}
	}
	if p := resp.ProgressData; p != nil {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Progress:")
		fmt.Fprintf(w, "  Overall %d%%, %d study hours/week\n", p.OverallPerformance, p.StudyHours)
		for _, s := range p.Subjects {
			fmt.Fprintf(w, "  %s: %d%% (%s)\n", s.Subject, s.Score, s.Trend)
		}
	}
}
