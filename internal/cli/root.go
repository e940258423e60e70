// Package cli provides the command-line interface for hostbook.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dperrin/hostbook/internal/appconfig"
	"github.com/dperrin/hostbook/internal/doctor"
	"github.com/dperrin/hostbook/internal/events"
	"github.com/dperrin/hostbook/internal/model"
	"github.com/dperrin/hostbook/internal/profile"
	"github.com/dperrin/hostbook/internal/snapshot"
	"github.com/dperrin/hostbook/internal/table"
	"github.com/dperrin/hostbook/internal/ui"
)

var listHeaders = []string{"ALIAS", "HOSTNAME", "USER", "PORT"}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	var filePath string

	root := &cobra.Command{
		Use:          "hostbook",
		Short:        "Manage named host connection profiles in an SSH-style config file",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := openStore(filePath)
			return ui.Run(store)
		},
	}
	root.PersistentFlags().StringVarP(&filePath, "file", "f", "", "profiles file to edit (default from config.yaml, falling back to ~/.ssh/config)")

	root.AddCommand(newAddCmd(&filePath))
	root.AddCommand(newRemoveCmd(&filePath))
	root.AddCommand(newListCmd(&filePath))
	root.AddCommand(newLogCmd())
	root.AddCommand(newDoctorCmd(&filePath))
	root.AddCommand(newExportCmd(&filePath))
	root.AddCommand(newImportCmd(&filePath))
	return root
}

// openStore resolves the profiles file path (flag override first, then
// config.yaml, then the default) and binds a store to it.
func openStore(override string) (*profile.Store, appconfig.Config) {
	cfg, err := appconfig.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = appconfig.Default()
	}
	path := cfg.ProfilesPath
	if strings.TrimSpace(override) != "" {
		path = override
	}
	return profile.NewStore(path), cfg
}

func newAddCmd(filePath *string) *cobra.Command {
	var user, port string
	cmd := &cobra.Command{
		Use:   "add <alias> <target-host>",
		Short: "Add a new host profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := openStore(*filePath)
			p := model.Profile{Alias: args[0], HostName: args[1], User: user, Port: port}
			if err := store.Add(p); err != nil {
				return err
			}
			journal(events.Event{Action: events.ActionAdd, Alias: p.Alias, Target: p.HostName, File: store.Path()})
			fmt.Printf("added profile %q to %s\n", p.Alias, store.Path())
			return nil
		},
	}
	cmd.Flags().StringVarP(&user, "user", "u", "", "remote user for the profile")
	cmd.Flags().StringVarP(&port, "port", "p", "", "remote port for the profile")
	return cmd
}

func newRemoveCmd(filePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <alias>",
		Short: "Remove a host profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := openStore(*filePath)
			if err := store.Remove(args[0]); err != nil {
				return err
			}
			journal(events.Event{Action: events.ActionRemove, Alias: args[0], File: store.Path()})
			fmt.Printf("removed profile %q from %s\n", args[0], store.Path())
			return nil
		},
	}
}

func newListCmd(filePath *string) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List host profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg := openStore(*filePath)
			profiles, err := store.List()
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(profiles)
			}
			if len(profiles) == 0 {
				fmt.Printf("no entries in %s\n", store.Path())
				return nil
			}
			rows := make([][]string, 0, len(profiles))
			for _, p := range profiles {
				rows = append(rows, p.Columns())
			}
			r := table.New(cfg.Output.Style, os.Stdout)
			fmt.Println(r.Render(listHeaders, rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output JSON")
	return cmd
}

func newLogCmd() *cobra.Command {
	var (
		alias   string
		action  string
		limit   int
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the profile mutation journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := events.NewStore()
			evts, err := store.Read(events.Query{Alias: alias, Action: action, Limit: limit})
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(evts)
			}
			if len(evts) == 0 {
				fmt.Println("no recorded events")
				return nil
			}
			for _, evt := range evts {
				fmt.Printf("%s %-7s %-20s %s\n", evt.Timestamp.Format("2006-01-02 15:04:05"), evt.Action, evt.Alias, evt.Target)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&alias, "alias", "", "filter by alias")
	cmd.Flags().StringVar(&action, "action", "", "filter by action (add, remove, import)")
	cmd.Flags().IntVar(&limit, "limit", 0, "return at most this many events (most recent)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output JSON")
	return cmd
}

func newDoctorCmd(filePath *string) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose profiles file and config posture",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := openStore(*filePath)
			report, err := doctor.Run(store.Path())
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else if len(report.Issues) == 0 {
				fmt.Println("no issues found")
			} else {
				for _, issue := range report.Issues {
					fmt.Printf("[%s] %s %s: %s\n    fix: %s\n", strings.ToUpper(string(issue.Severity)), issue.Check, issue.Target, issue.Message, issue.Recommendation)
				}
			}
			if report.HasHigh() {
				return fmt.Errorf("doctor found high severity issues")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output JSON")
	return cmd
}

func newExportCmd(filePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export all profiles to a YAML snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := openStore(*filePath)
			n, err := snapshot.Export(store, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("exported %d profiles to %s\n", n, args[0])
			return nil
		},
	}
}

func newImportCmd(filePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import profiles from a YAML snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := openStore(*filePath)
			res, err := snapshot.Import(store, args[0])
			if err != nil {
				return err
			}
			for _, alias := range res.Added {
				journal(events.Event{Action: events.ActionImport, Alias: alias, File: store.Path()})
			}
			fmt.Printf("imported %d profiles (%d skipped as duplicates)\n", len(res.Added), len(res.Skipped))
			return nil
		},
	}
}

// journal records a successful mutation. Journal failures are never allowed
// to fail the mutation itself.
func journal(evt events.Event) {
	if err := events.NewStore().Append(evt); err != nil {
		slog.Warn("failed to record event", "error", err)
	}
}
