// Package cli implements the command-line surface invoked as
// "songbook --cli": one store operation per invocation, with
// human-readable errors on stderr and exit code 0 only on success.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/songbook/songbook/internal/config"
	"github.com/songbook/songbook/internal/logging"
	"github.com/songbook/songbook/internal/store"
)

// Run executes the CLI with the arguments following --cli and returns the
// process exit code.
func Run(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	var listFlag bool
	var addFlag bool
	var removeFlag string

	cmd := &cobra.Command{
		Use:           `songbook --cli [--list | --add "Title" ["Number"] | --remove INDEX]`,
		Short:         "Manage the song list from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			log := logging.New(cfg.DebugLogging)
			st := store.New(cfg.SongsFile, store.WithLogger(log))

			selected := 0
			for _, flag := range []bool{listFlag, addFlag, removeFlag != ""} {
				if flag {
					selected++
				}
			}
			if selected != 1 {
				if selected == 0 {
					return cmd.Help()
				}
				return errors.New("choose exactly one of --list, --add, --remove")
			}

			if err := st.Load(); err != nil {
				return err
			}

			switch {
			case listFlag:
				return runList(cmd, st)
			case addFlag:
				return runAdd(cmd, st, args)
			default:
				return runRemove(cmd, st, removeFlag)
			}
		},
	}

	cmd.Flags().BoolVar(&listFlag, "list", false, "Print every song with its index")
	cmd.Flags().BoolVar(&addFlag, "add", false, `Add a song: --add "Title" ["Number"]`)
	cmd.Flags().StringVar(&removeFlag, "remove", "", "Remove the song at the given index")

	return cmd
}

func runList(cmd *cobra.Command, st *store.Store) error {
	songs := st.List()
	if len(songs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No songs yet.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSongTable(songs))
	return nil
}

func runAdd(cmd *cobra.Command, st *store.Store, args []string) error {
	if len(args) == 0 {
		return errors.New(`--add needs a title: --add "Title" ["Number"]`)
	}
	title := args[0]
	number := ""
	if len(args) > 1 {
		number = args[1]
	}

	song, err := st.Add(title, number)
	if err != nil {
		return err
	}
	if err := st.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added: %s\n", song.DisplayLabel())
	return nil
}

func runRemove(cmd *cobra.Command, st *store.Store, arg string) error {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid index %q: expected a number", arg)
	}

	removed, err := st.Delete(index)
	if err != nil {
		return err
	}
	if err := st.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed: %s\n", removed.DisplayLabel())
	return nil
}
