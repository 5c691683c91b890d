// Copyright © 2026 The peek authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "peek",
	Short: "peek — interactive inspection for Lua scripts",
	Long: `peek runs Lua scripts with an embedded inspection shim. A script that
calls peek.pause() suspends itself, prints every local variable visible
from the suspension point, and hands control to an interactive prompt;
peek.poll() does the same only when a marker file exists, so a running
script can be interrupted from another terminal.

Getting started:
  peek run script.lua                  Run a script
  peek run --trigger /tmp/peek s.lua   Poll the marker file /tmp/peek
  peek run --watch s.lua               Watch the marker instead of stat'ing

Inside a suspension, the prompt accepts:
  vars [GLOB]       List variables, optionally filtered
  print NAME        Show one variable as "name = value"
  get NAME          Show one variable's value
  set NAME LITERAL  Overwrite a variable (string, number, true/false, nil)
  cont              Resume the script
Anything else is evaluated as Lua in the suspended script's state, where
peek.get, peek.set and peek.print reach the same variables by name.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.peek.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".peek" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".peek")
	}

	viper.SetEnvPrefix("peek")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
