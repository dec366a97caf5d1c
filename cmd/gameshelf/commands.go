package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gameshelf.dev/shelf/internal/game"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// execute runs the command line and releases the store once the command returns.
func execute(args []string, out io.Writer) error {
	app := &application{}
	defer app.stop()
	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetOut(out)
	return root.Execute()
}

func newRootCommand(app *application) *cobra.Command {
	root := &cobra.Command{
		Use:           APPLICATION_NAME,
		Short:         "Track the games of a personal library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.start(cmd.Context())
		},
	}
	// Parsing the command line argument to change settings file location
	root.PersistentFlags().StringVar(&app.configurationFilePath, "config", "", "Configuration file path")
	root.AddCommand(
		newListCommand(app),
		newCountCommand(app),
		newShowCommand(app),
		newAddCommand(app),
		newUpdateCommand(app),
		newRemoveCommand(app),
		newStatusCommand(app),
		newPlatformsCommand(app),
	)
	return root
}

func parseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid game id %q: %w", value, err)
	}
	return id, nil
}

func completionDate(g game.Game) string {
	if g.DateCompleted == nil {
		return "-"
	}
	return g.DateCompleted.Local().Format(dateLayout)
}

func printGames(out io.Writer, games []game.Game) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tPLATFORM\tSTATUS\tCOMPLETED")
	for _, g := range games {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", g.ID, g.Title, g.Platform, g.Status, completionDate(g))
	}
	return writer.Flush()
}

func newListCommand(app *application) *cobra.Command {
	var page, size int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the games ordered by title, one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size == 0 {
				size = app.config.PageSize
			}
			games, err := app.store().GetPaged(cmd.Context(), page, size)
			if err != nil {
				return err
			}
			total, err := app.store().Count(cmd.Context())
			if err != nil {
				return err
			}
			if err = printGames(cmd.OutOrStdout(), games); err != nil {
				return err
			}
			pages := (total + int64(size) - 1) / int64(size)
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d games)\n", page, pages, total)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting from 1")
	cmd.Flags().IntVar(&size, "size", 0, "Games per page, PAGE_SIZE when omitted")
	return cmd
}

func newCountCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of games in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := app.store().Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
}

func newShowCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a single game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			g, err := app.store().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if g == nil {
				fmt.Fprintln(out, "not found")
				return nil
			}
			fmt.Fprintf(out, "ID:          %s\n", g.ID)
			fmt.Fprintf(out, "Title:       %s\n", g.Title)
			fmt.Fprintf(out, "Platform:    %s\n", g.Platform)
			fmt.Fprintf(out, "Status:      %s\n", g.Status)
			fmt.Fprintf(out, "Completed:   %s\n", completionDate(*g))
			fmt.Fprintf(out, "Description: %s\n", g.Description)
			return nil
		},
	}
}

func newAddCommand(app *application) *cobra.Command {
	var title, platform, status, description string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a game to the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := game.ParseStatus(status)
			if err != nil {
				return err
			}
			g := game.NewGame(title, platform)
			g.Description = description
			g.SetStatus(parsed, time.Now())
			if err = app.store().Add(cmd.Context(), g); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Game title")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform the game is played on")
	cmd.Flags().StringVar(&status, "status", game.Wishlist.String(), "Wishlist, Playing, Paused or Completed")
	cmd.Flags().StringVar(&description, "description", "", "Free text description")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newUpdateCommand(app *application) *cobra.Command {
	var title, platform, description string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the title, platform or description of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			g, err := app.store().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if g == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not found")
				return nil
			}
			flags := cmd.Flags()
			if flags.Changed("title") {
				g.Title = title
			}
			if flags.Changed("platform") {
				g.Platform = platform
			}
			if flags.Changed("description") {
				g.Description = description
			}
			return app.store().Update(cmd.Context(), g)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&platform, "platform", "", "New platform")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	return cmd
}

func newRemoveCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a game from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.store().Remove(cmd.Context(), id)
		},
	}
}

func newStatusCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set the status of a game, Completed records the completion date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := game.ParseStatus(args[1])
			if err != nil {
				return err
			}
			return app.store().SetStatus(cmd.Context(), id, status)
		},
	}
}

func newPlatformsCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List the distinct platforms of the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			platforms, err := app.store().GetDistinctPlatforms(cmd.Context())
			if err != nil {
				return err
			}
			for _, platform := range platforms {
				fmt.Fprintln(cmd.OutOrStdout(), platform)
			}
			return nil
		},
	}
}
