package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"study-planner/internal/app"
	"study-planner/internal/model"
)

func dateArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}

func newDayCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show the schedule of a day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				date, err := a.Schedule.ParseDate(dateArg(args))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderDay(a.Schedule.Day(date)))
				return nil
			})
		},
	}
}

func newWeekCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "week [YYYY-MM-DD]",
		Short: "Show the week containing a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				date, err := a.Schedule.ParseDate(dateArg(args))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderWeek(a.Schedule.Week(date)))
				return nil
			})
		},
	}
}

func newDashboardCmd(open openFunc) *cobra.Command {
	var on string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show completion, deadlines and the suggested focus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				today, err := a.Schedule.ParseDate(on)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderDashboard(a.Schedule.Dashboard(today)))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&on, "on", "", "treat this date (YYYY-MM-DD) as today")
	return cmd
}

func newUpcomingCmd(open openFunc) *cobra.Command {
	var (
		taskType string
		on       string
	)
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List open tasks due within 30 days or overdue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := model.TaskType(strings.ToLower(strings.TrimSpace(taskType)))
			if filter == "all" {
				filter = ""
			}
			if filter != "" && !filter.Valid() {
				return fmt.Errorf("unknown task type %q", taskType)
			}
			return withApp(cmd, open, func(a *app.App) error {
				today, err := a.Schedule.ParseDate(on)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderUpcoming(a.Schedule.Upcoming(today, filter)))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&taskType, "type", "", "assignment, quiz, project or other")
	cmd.Flags().StringVar(&on, "on", "", "treat this date (YYYY-MM-DD) as today")
	return cmd
}
