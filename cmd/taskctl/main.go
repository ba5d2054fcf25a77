// taskctl is a terminal front end for the taskboard API. It signs
// in, renders the three status columns, and drives the task CRUD
// operations through the sync client.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"taskboard/pkg/client"
)

var (
	flagAddr   string
	flagStatus string
)

func main() {
	root := &cobra.Command{
		Use:           "taskctl",
		Short:         "Manage taskboard tasks from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultAddr := os.Getenv("TASKBOARD_ADDR")
	if defaultAddr == "" {
		defaultAddr = "http://localhost:8080"
	}
	root.PersistentFlags().StringVar(&flagAddr, "addr", defaultAddr, "taskboard server address")

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newBoardCmd(),
		newAddCmd(),
		newSetStatusCmd(),
		newAdvanceCmd(),
		newEditCmd(),
		newRemoveCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newAPIClient builds a client carrying the token from the
// environment. Every command except login/register needs one.
func newAPIClient() *client.Client {
	return client.New(flagAddr, os.Getenv("TASKBOARD_TOKEN"))
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Sign in and print the access token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(flagAddr, "")
			if err := c.Login(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("export TASKBOARD_TOKEN=%s\n", c.Token())
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <email> <password>",
		Short: "Create an account and print the access token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(flagAddr, "")
			if err := c.Register(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("export TASKBOARD_TOKEN=%s\n", c.Token())
			return nil
		},
	}
}

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show tasks grouped by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board := client.NewBoard(newAPIClient())
			if err := board.Refresh(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(renderBoard(board.Columns()))
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board := client.NewBoard(newAPIClient())
			task, err := board.Create(cmd.Context(), strings.Join(args, " "), flagStatus)
			if err != nil {
				return err
			}
			fmt.Printf("created task %d: %s [%s]\n", task.ID, task.Title, task.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagStatus, "status", "", `initial status (default "To Do")`)
	return cmd
}

func newSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a task to any status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			task, err := newAPIClient().UpdateTask(cmd.Context(), id, client.TaskPatch{Status: &args[1]})
			if err != nil {
				return err
			}
			fmt.Printf("task %d is now %s\n", task.ID, task.Status)
			return nil
		},
	}
}

func newAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance <id>",
		Short: "Move a task to the next status in the cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			board := client.NewBoard(newAPIClient())
			if err := board.Refresh(cmd.Context()); err != nil {
				return err
			}
			task, err := board.Advance(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("task %d is now %s\n", task.ID, task.Status)
			return nil
		},
	}
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Rename a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			title := strings.Join(args[1:], " ")
			task, err := newAPIClient().UpdateTask(cmd.Context(), id, client.TaskPatch{Title: &title})
			if err != nil {
				return err
			}
			fmt.Printf("renamed task %d to %q\n", task.ID, task.Title)
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if err := newAPIClient().DeleteTask(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted task %d\n", id)
			return nil
		},
	}
}

func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id: %q", s)
	}
	return id, nil
}
