package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"rightsteps/internal/clix"
	"rightsteps/internal/services"
)

func newCoursesCmd() *cobra.Command {
	var filter services.CourseFilter

	coursesCmd := &cobra.Command{
		Use:   "courses [slug]",
		Short: "List courses, or show one course by slug",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := GetAppFromContext(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				course, err := appInstance.CatalogService.GetCourse(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%s)\n", course.Name, course.Slug)
				fmt.Fprintf(out, "  %s, %s, £%v, rating %v (%d reviews), %s\n",
					course.Category, course.Difficulty, course.Price, course.Rating, course.Reviews, course.Duration)
				fmt.Fprintf(out, "  by %s via %s\n", course.Instructor, course.ProviderName)
				fmt.Fprintf(out, "\n%s\n", course.Description)
				return nil
			}

			page, err := clix.ParsePage(cmd.Flags())
			if err != nil {
				return err
			}
			filter.Page = page

			result, err := appInstance.CatalogService.ListCourses(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("failed to list courses: %w", err)
			}
			if result.Total == 0 {
				fmt.Fprintln(out, "No courses found.")
				return nil
			}

			table := newTable(out, []string{"Slug", "Name", "Category", "Difficulty", "Price", "Rating", "Provider"})
			for _, c := range result.Courses {
				table.Append([]string{
					c.Slug,
					c.Name,
					c.Category,
					string(c.Difficulty),
					"£" + formatFloat(c.Price),
					formatFloat(c.Rating),
					c.Provider,
				})
			}
			table.Render()
			fmt.Fprintf(out, "\nPage %d of %d (%d courses)\n", result.CurrentPage, result.TotalPages, result.Total)
			return nil
		},
	}

	coursesCmd.Flags().StringVar(&filter.Category, "category", "", "Match courses whose name contains this text")
	coursesCmd.Flags().StringVar(&filter.Difficulty, "difficulty", "", "Beginner, Intermediate or Advanced")
	coursesCmd.Flags().StringVar(&filter.Provider, "provider", "", "rightsteps or external")
	clix.AddPageFlags(coursesCmd.Flags())
	return coursesCmd
}

func newTutorsCmd() *cobra.Command {
	var filter services.TutorFilter

	tutorsCmd := &cobra.Command{
		Use:   "tutors [slug]",
		Short: "List tutors, or show one tutor by slug",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := GetAppFromContext(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				tutor, err := appInstance.CatalogService.GetTutor(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%s)\n", tutor.Name, tutor.Slug)
				fmt.Fprintf(out, "  %s, %s, £%v/hr, rating %v (%d reviews)\n",
					tutor.Category, tutor.Experience, tutor.HourlyRate, tutor.Rating, tutor.Reviews)
				fmt.Fprintf(out, "  Specializes in %s\n", strings.Join(tutor.Specialization, ", "))
				if tutor.Tagline != "" {
					fmt.Fprintf(out, "\n%s\n", tutor.Tagline)
				}
				return nil
			}

			page, err := clix.ParsePage(cmd.Flags())
			if err != nil {
				return err
			}
			filter.Page = page

			result, err := appInstance.CatalogService.ListTutors(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("failed to list tutors: %w", err)
			}
			if result.Total == 0 {
				fmt.Fprintln(out, "No tutors found.")
				return nil
			}

			table := newTable(out, []string{"Slug", "Name", "Category", "Specialization", "Experience", "Rate", "Rating"})
			for _, t := range result.Tutors {
				table.Append([]string{
					t.Slug,
					t.Name,
					t.Category,
					strings.Join(t.Specialization, ", "),
					t.Experience,
					"£" + formatFloat(t.HourlyRate) + "/hr",
					formatFloat(t.Rating),
				})
			}
			table.Render()
			fmt.Fprintf(out, "\nPage %d of %d (%d tutors)\n", result.CurrentPage, result.TotalPages, result.Total)
			return nil
		},
	}

	tutorsCmd.Flags().StringVar(&filter.Category, "category", "", "Exact tutor category")
	tutorsCmd.Flags().StringVar(&filter.Specialization, "specialization", "", "Required specialization, e.g. \"Exam Preparation\"")
	tutorsCmd.Flags().IntVar(&filter.MinExperience, "experience", 0, "Minimum years of experience")
	tutorsCmd.Flags().Float64Var(&filter.MinRating, "rating", 0, "Minimum rating")
	clix.AddPageFlags(tutorsCmd.Flags())
	return tutorsCmd
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
