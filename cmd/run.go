// Copyright © 2026 The peek authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"

	"github.com/peeklua/peek/luahost"
	"github.com/peeklua/peek/trigger"
)

var (
	runWatch  bool
	runModule string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run FILE [FILE...]",
	Short: "Run Lua scripts with the inspection shim installed",
	Long: `Run Lua scripts with the peek module installed as a global, so the
scripts can suspend themselves with peek.pause() and peek.poll(). The
--trigger flag names the marker file peek.poll() checks for; with
--watch the marker is observed by a filesystem watcher so negative polls
cost nothing.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := []luahost.ModOption{luahost.WithName(runModule)}
		if marker := viper.GetString("trigger"); marker != "" {
			trig, err := newTrigger(marker)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer trig.Close() //nolint:errcheck
			opts = append(opts, luahost.WithTrigger(trig))
		}
		m := luahost.NewModule(opts...)

		l := lua.NewState()
		defer l.Close()
		m.Preload(l)
		m.Install(l)
		for i := range args {
			if err := l.DoFile(args[i]); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

func newTrigger(marker string) (*trigger.Trigger, error) {
	if runWatch {
		return trigger.NewWatched(marker)
	}
	return trigger.New(marker), nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("trigger", "", "marker file consulted by peek.poll()")
	runCmd.Flags().StringVar(&runModule, "module", "peek",
		"name the shim is installed under in the script")
	runCmd.Flags().BoolVar(&runWatch, "watch", false,
		"observe the marker with a filesystem watcher instead of polling stat")
	if err := viper.BindPFlag("trigger", runCmd.Flags().Lookup("trigger")); err != nil {
		panic(err)
	}
}
