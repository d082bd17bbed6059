package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/output"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/parser"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/repo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/validate"
)

// eventCmd represents the event command.
var eventCmd = &cobra.Command{
	Use:     "event",
	Aliases: []string{"events", "e", "calendar"},
	Short:   "Manage calendar events",
	Long: `List, add, edit and delete calendar events.

Examples:
  skillhub event
  skillhub event add "Team standup" --date tomorrow --time 09:30 --attendees 5
  skillhub event edit <id> --time 10:00
  skillhub event delete <id>`,
	RunE: runEventList,
}

// Event subcommand flags.
var (
	eventAddFlagDescription string
	eventAddFlagDate        string
	eventAddFlagTime        string
	eventAddFlagAttendees   string

	eventEditFlagTitle       string
	eventEditFlagDescription string
	eventEditFlagDate        string
	eventEditFlagTime        string
	eventEditFlagAttendees   string
)

var eventAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a new event",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEventAdd,
}

var eventEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventEdit,
}

var eventDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an event",
	Args:    cobra.ExactArgs(1),
	RunE:    runEventDelete,
}

func init() {
	eventAddCmd.Flags().StringVarP(&eventAddFlagDescription, "description", "d", "", "Event description")
	eventAddCmd.Flags().StringVar(&eventAddFlagDate, "date", "today", "Event date (e.g. 'tomorrow', 'next monday')")
	eventAddCmd.Flags().StringVar(&eventAddFlagTime, "time", "09:00", "Event time (HH:MM)")
	eventAddCmd.Flags().StringVar(&eventAddFlagAttendees, "attendees", "1", "Number of attendees")

	eventEditCmd.Flags().StringVarP(&eventEditFlagTitle, "title", "t", "", "Update title")
	eventEditCmd.Flags().StringVarP(&eventEditFlagDescription, "description", "d", "", "Update description")
	eventEditCmd.Flags().StringVar(&eventEditFlagDate, "date", "", "Update date")
	eventEditCmd.Flags().StringVar(&eventEditFlagTime, "time", "", "Update time (HH:MM)")
	eventEditCmd.Flags().StringVar(&eventEditFlagAttendees, "attendees", "", "Update attendee count")

	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventEditCmd)
	eventCmd.AddCommand(eventDeleteCmd)
	rootCmd.AddCommand(eventCmd)
}

func runEventList(cmd *cobra.Command, args []string) error {
	events := ctx.Repos.Events.Load()

	if ctx.IsJSON() {
		outputs := make([]output.EventOutput, len(events))
		for i, e := range events {
			outputs[i] = output.NewEventOutput(e)
		}
		return ctx.Formatter.JSON(output.EventsResponse{Mode: ctx.Session.Mode(), Events: outputs})
	}

	cli := ctx.CLIFormatter()
	if badge := cli.ModeBadge(ctx.Session.Mode()); badge != "" {
		cli.Println(badge)
	}
	if len(events) == 0 {
		cli.Muted("No events yet. Add one with 'skillhub event add'.")
		return nil
	}
	for _, e := range events {
		cli.Printf("%s %s  %s %s\n", cli.RecordTitle(e.Title), e.ID, output.FormatDate(e.EventDate), e.EventTime)
		if e.Attendees > 1 {
			cli.Muted("  " + pluralAttendees(e.Attendees))
		}
	}
	return nil
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	title := validate.SanitizeTitle(strings.Join(args, " "))
	if err := validate.Title(title); err != nil {
		return err
	}
	if err := validate.Body(eventAddFlagDescription); err != nil {
		return err
	}
	date, err := parser.ParseWhen(eventAddFlagDate)
	if err != nil {
		return err
	}
	if err := validate.TimeOfDay(eventAddFlagTime); err != nil {
		return err
	}
	attendees, err := validate.Attendees(eventAddFlagAttendees)
	if err != nil {
		return err
	}

	event, err := ctx.Repos.Events.Create(title, eventAddFlagDescription, date, eventAddFlagTime, attendees)
	if err := warnPersist(err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewEventOutput(event))
	}
	ctx.CLIFormatter().Success("added event " + event.ID)
	return nil
}

func runEventEdit(cmd *cobra.Command, args []string) error {
	patch := repo.EventPatch{}
	if cmd.Flags().Changed("title") {
		title := validate.SanitizeTitle(eventEditFlagTitle)
		if err := validate.Title(title); err != nil {
			return err
		}
		patch.Title = &title
	}
	if cmd.Flags().Changed("description") {
		if err := validate.Body(eventEditFlagDescription); err != nil {
			return err
		}
		patch.Description = &eventEditFlagDescription
	}
	if cmd.Flags().Changed("date") {
		date, err := parser.ParseWhen(eventEditFlagDate)
		if err != nil {
			return err
		}
		patch.EventDate = &date
	}
	if cmd.Flags().Changed("time") {
		if err := validate.TimeOfDay(eventEditFlagTime); err != nil {
			return err
		}
		patch.EventTime = &eventEditFlagTime
	}
	if cmd.Flags().Changed("attendees") {
		attendees, err := validate.Attendees(eventEditFlagAttendees)
		if err != nil {
			return err
		}
		patch.Attendees = &attendees
	}

	event, err := ctx.Repos.Events.Update(args[0], patch)
	if err := warnPersist(err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewEventOutput(event))
	}
	ctx.CLIFormatter().Success("updated event " + event.ID)
	return nil
}

func runEventDelete(cmd *cobra.Command, args []string) error {
	if err := warnPersist(ctx.Repos.Events.Delete(args[0])); err != nil {
		return err
	}
	if !ctx.IsJSON() {
		ctx.CLIFormatter().Success("deleted event " + args[0])
	}
	return nil
}

func pluralAttendees(n int) string {
	if n == 1 {
		return "1 attendee"
	}
	return strconv.Itoa(n) + " attendees"
}
