package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/taskeasy/internal/editor"
	"github.com/rogersnm/taskeasy/internal/markdown"
	"github.com/rogersnm/taskeasy/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new task",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetString("priority")
		status, _ := cmd.Flags().GetString("status")
		asJSON, _ := cmd.Flags().GetBool("json")

		if !asJSON && !cmd.Flags().Changed("description") {
			description = readStdin()
		}

		in := model.TaskInput{
			Description: description,
			Priority:    model.Priority(priority),
			Status:      model.Status(status),
		}
		if len(args) == 1 {
			in.Title = args[0]
		}

		if asJSON {
			fields, err := readFields(cmd.InOrStdin())
			if err != nil {
				return err
			}
			in = mergeInput(in, fields)
		} else if len(args) == 0 && stdinIsTerminal() {
			if err := runCreateForm(&in); err != nil {
				return err
			}
		}

		t, err := st.Create(in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created task %s (%s)\n", t.Title, t.ID)
		return nil
	},
}

// mergeInput overlays the keys present in fields on in.
func mergeInput(in model.TaskInput, fields map[string]any) model.TaskInput {
	loose := model.InputFromFields(fields)
	if _, ok := fields["title"]; ok {
		in.Title = loose.Title
	}
	if _, ok := fields["description"]; ok {
		in.Description = loose.Description
	}
	if _, ok := fields["priority"]; ok {
		in.Priority = loose.Priority
	}
	if _, ok := fields["status"]; ok {
		in.Status = loose.Status
	}
	return in
}

// readFields decodes one JSON object. Numbers are kept as json.Number so
// they convert to their literal text.
func readFields(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decoding JSON fields: %w", err)
	}
	return fields, nil
}

// runCreateForm fills in from an interactive form, starting from the flag values.
func runCreateForm(in *model.TaskInput) error {
	var title string
	description := model.Text(in.Description)
	priority := in.Priority
	status := in.Status

	priorityOpts := make([]huh.Option[model.Priority], 0, 3)
	for _, p := range model.Priorities() {
		priorityOpts = append(priorityOpts, huh.NewOption(p.Label(), p))
	}
	statusOpts := make([]huh.Option[model.Status], 0, 3)
	for _, s := range model.Statuses() {
		statusOpts = append(statusOpts, huh.NewOption(s.Label(), s))
	}

	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title").Value(&title),
		huh.NewText().Title("Description").Value(&description),
		huh.NewSelect[model.Priority]().Title("Priority").Options(priorityOpts...).Value(&priority),
		huh.NewSelect[model.Status]().Title("Status").Options(statusOpts...).Value(&status),
	)).Run()
	if err != nil {
		return fmt.Errorf("cancelled")
	}

	in.Title = title
	in.Description = description
	in.Priority = priority
	in.Status = status
	return nil
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, highest priority first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, markdown.RenderTaskTable(st.SortedByPriority(), now()))
		if st.Len() > 0 {
			fmt.Fprintln(out, markdown.RenderStoreStats(st))
		}
		return nil
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := st.Get(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		pretty, _ := cmd.Flags().GetBool("pretty")
		if !pretty {
			data, err := markdown.EncodeTask(t)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(data))
			return nil
		}

		fields := []string{
			markdown.RenderField("ID", t.ID),
			markdown.RenderField("Priority", markdown.RenderPriority(t.Priority)),
			markdown.RenderField("Status", markdown.RenderStatus(t.Status)),
			markdown.RenderDates(t, now()),
		}
		fmt.Fprint(out, markdown.RenderEntityHeader(t.Title, fields))
		if t.Description != "" {
			rendered, err := markdown.RenderMarkdown(t.Description)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
		}
		return nil
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		upd := model.TaskUpdate{}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			fields, err := readFields(cmd.InOrStdin())
			if err != nil {
				return err
			}
			upd = model.UpdateFromFields(fields)
		}

		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			upd.Title = &title
		}
		if cmd.Flags().Changed("description") {
			desc, _ := cmd.Flags().GetString("description")
			upd.Description = &desc
		} else if !asJSON {
			if body := readStdin(); body != "" {
				upd.Description = &body
			}
		}
		if cmd.Flags().Changed("priority") {
			p, _ := cmd.Flags().GetString("priority")
			pp := model.Priority(p)
			upd.Priority = &pp
		}
		if cmd.Flags().Changed("status") {
			s, _ := cmd.Flags().GetString("status")
			ss := model.Status(s)
			upd.Status = &ss
		}

		if upd.Empty() {
			return fmt.Errorf("at least one update flag or piped description is required (--title, --description, --priority, --status, --json, stdin)")
		}

		t, err := st.Update(args[0], upd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", t.ID)
		return nil
	},
}

func statusCommand(use, short, verb string, status model.Status) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := status
			t, err := st.Update(args[0], model.TaskUpdate{Status: &s})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s task %s\n", verb, t.ID)
			return nil
		},
	}
}

var (
	taskStartCmd = statusCommand("start", "Start a task (set status to in-progress)", "Started", model.StatusInProgress)
	taskDoneCmd  = statusCommand("done", "Finish a task (set status to done)", "Finished", model.StatusDone)
)

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orig, err := st.Get(args[0])
		if err != nil {
			return err
		}
		doc, err := markdown.EncodeTask(orig)
		if err != nil {
			return err
		}
		edited, err := editTask("taskeasy-"+orig.ID+"-*.md", doc)
		if err != nil {
			return err
		}

		meta, description, err := markdown.DecodeTask(bytes.NewReader(edited))
		if err != nil {
			return err
		}
		upd := meta.Update(orig, description)
		if upd.Empty() {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes")
			return nil
		}
		t, err := st.Update(orig.ID, upd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", t.ID)
		return nil
	},
}

// editTask is replaced in tests.
var editTask = editor.EditTemp

func readStdin() string {
	info, err := os.Stdin.Stat()
	if err != nil {
		return ""
	}
	// Only read if stdin is explicitly a pipe (not a terminal, not a socket)
	if info.Mode()&os.ModeNamedPipe == 0 && info.Size() == 0 {
		return ""
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func init() {
	taskCreateCmd.Flags().StringP("description", "d", "", "task description (also read from piped stdin)")
	taskCreateCmd.Flags().StringP("priority", "p", string(model.PriorityMedium), "priority (high, medium, low)")
	taskCreateCmd.Flags().StringP("status", "s", string(model.StatusTodo), "status (to-do, in-progress, done)")

	taskCreateCmd.Flags().Bool("json", false, "read fields from a JSON object on stdin; keys present override flags")

	taskShowCmd.Flags().Bool("pretty", false, "render with ANSI styling")

	taskUpdateCmd.Flags().String("title", "", "new title")
	taskUpdateCmd.Flags().StringP("description", "d", "", "new description")
	taskUpdateCmd.Flags().StringP("priority", "p", "", "new priority (high, medium, low)")
	taskUpdateCmd.Flags().StringP("status", "s", "", "new status (to-do, in-progress, done)")
	taskUpdateCmd.Flags().Bool("json", false, "read fields to change from a JSON object on stdin; flags override it")

	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskStartCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskEditCmd)
	rootCmd.AddCommand(taskCmd)
}
