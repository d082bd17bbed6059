package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/output"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/parser"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/repo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/validate"
)

// taskCmd represents the task command.
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks", "t"},
	Short:   "Manage tasks",
	Long: `List, add, edit and complete tasks.

Examples:
  skillhub task
  skillhub task add "Review PR" --priority high --due tomorrow
  skillhub task add "Water plants" --due +2d
  skillhub task done <id>
  skillhub task delete <id>`,
	RunE: runTaskList,
}

// Task subcommand flags.
var (
	taskAddFlagDescription string
	taskAddFlagPriority    string
	taskAddFlagDue         string

	taskEditFlagTitle       string
	taskEditFlagDescription string
	taskEditFlagPriority    string
	taskEditFlagDue         string
	taskEditFlagClearDue    bool
)

var taskAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

var taskEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskEdit,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Toggle a task's completion",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDelete,
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskAddFlagDescription, "description", "d", "", "Task description")
	taskAddCmd.Flags().StringVarP(&taskAddFlagPriority, "priority", "p", "medium", "Priority (low, medium, high)")
	taskAddCmd.Flags().StringVar(&taskAddFlagDue, "due", "", "Due date (e.g. 'tomorrow', 'next friday', '+2d')")

	taskEditCmd.Flags().StringVarP(&taskEditFlagTitle, "title", "t", "", "Update title")
	taskEditCmd.Flags().StringVarP(&taskEditFlagDescription, "description", "d", "", "Update description")
	taskEditCmd.Flags().StringVarP(&taskEditFlagPriority, "priority", "p", "", "Update priority")
	taskEditCmd.Flags().StringVar(&taskEditFlagDue, "due", "", "Update due date")
	taskEditCmd.Flags().BoolVar(&taskEditFlagClearDue, "clear-due", false, "Remove the due date")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	tasks := ctx.Repos.Tasks.Load()

	if ctx.IsJSON() {
		outputs := make([]output.TaskOutput, len(tasks))
		for i, t := range tasks {
			outputs[i] = output.NewTaskOutput(t)
		}
		return ctx.Formatter.JSON(output.TasksResponse{Mode: ctx.Session.Mode(), Tasks: outputs})
	}

	cli := ctx.CLIFormatter()
	if badge := cli.ModeBadge(ctx.Session.Mode()); badge != "" {
		cli.Println(badge)
	}
	if len(tasks) == 0 {
		cli.Muted("No tasks yet. Add one with 'skillhub task add'.")
		return nil
	}
	for _, t := range tasks {
		line := cli.Checkbox(t.Completed) + " " + cli.RecordTitle(t.Title) + "  " + cli.Priority(t.Priority)
		if t.DueDate != nil {
			line += "  due " + output.FormatDate(*t.DueDate)
		}
		cli.Println(line)
		cli.Muted("  " + t.ID)
	}
	return nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	title := validate.SanitizeTitle(strings.Join(args, " "))
	if err := validate.Title(title); err != nil {
		return err
	}
	if err := validate.Body(taskAddFlagDescription); err != nil {
		return err
	}
	priority, err := validate.Priority(taskAddFlagPriority)
	if err != nil {
		return err
	}

	var due *time.Time
	if taskAddFlagDue != "" {
		when, err := parser.ParseWhen(taskAddFlagDue)
		if err != nil {
			return err
		}
		due = &when
	}

	task, err := ctx.Repos.Tasks.Create(title, taskAddFlagDescription, priority, due)
	if err := warnPersist(err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTaskOutput(task))
	}
	ctx.CLIFormatter().Success("added task " + task.ID)
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	patch := repo.TaskPatch{ClearDueDate: taskEditFlagClearDue}
	if cmd.Flags().Changed("title") {
		title := validate.SanitizeTitle(taskEditFlagTitle)
		if err := validate.Title(title); err != nil {
			return err
		}
		patch.Title = &title
	}
	if cmd.Flags().Changed("description") {
		if err := validate.Body(taskEditFlagDescription); err != nil {
			return err
		}
		patch.Description = &taskEditFlagDescription
	}
	if cmd.Flags().Changed("priority") {
		priority, err := validate.Priority(taskEditFlagPriority)
		if err != nil {
			return err
		}
		patch.Priority = &priority
	}
	if cmd.Flags().Changed("due") {
		when, err := parser.ParseWhen(taskEditFlagDue)
		if err != nil {
			return err
		}
		patch.DueDate = &when
	}

	task, err := ctx.Repos.Tasks.Update(args[0], patch)
	if err := warnPersist(err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTaskOutput(task))
	}
	ctx.CLIFormatter().Success("updated task " + task.ID)
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	task, err := ctx.Repos.Tasks.ToggleCompletion(args[0])
	if err := warnPersist(err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTaskOutput(task))
	}
	state := "reopened"
	if task.Completed {
		state = "completed"
	}
	ctx.CLIFormatter().Success(state + " task " + task.ID)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	if err := warnPersist(ctx.Repos.Tasks.Delete(args[0])); err != nil {
		return err
	}
	if !ctx.IsJSON() {
		ctx.CLIFormatter().Success("deleted task " + args[0])
	}
	return nil
}
