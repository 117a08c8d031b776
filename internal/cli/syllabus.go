package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"study-planner/internal/app"
)

func newExtractCmd(open openFunc) *cobra.Command {
	var (
		course string
		file   string
		save   bool
	)
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract assignments and dates from syllabus text",
		Long: `Reads syllabus text from --file (or stdin) and prints every line that
looks like a dated assignment. With --save the candidates are added as tasks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if file != "" {
				raw, err = os.ReadFile(file)
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read syllabus: %w", err)
			}

			return withApp(cmd, open, func(a *app.App) error {
				candidates, err := a.Syllabus.Extract(course, string(raw))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprint(out, renderCandidates(candidates))
				if !save || len(candidates) == 0 {
					return nil
				}
				added, err := a.Syllabus.Confirm(cmd.Context(), candidates)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved %d tasks for %s.\n", len(added), course)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&course, "course", "", "course label for the extracted tasks")
	cmd.Flags().StringVar(&file, "file", "", "syllabus text file (default stdin)")
	cmd.Flags().BoolVar(&save, "save", false, "add the extracted tasks")
	_ = cmd.MarkFlagRequired("course")
	return cmd
}

func newLoadCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "load <course-code>",
		Short: "Load a preloaded course schedule, replacing its earlier copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				course, n, err := a.Courses.LoadCourse(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d items for %s.\n", n, course.Course)
				return nil
			})
		},
	}
}
