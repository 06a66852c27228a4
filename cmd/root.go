// Package cmd is for command line interactions with the fisheye application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "fisheye",
	Short: `Design pad and amplification probe pairs for targeted gene expression.
Probes are scored along each gene's representative CDS region`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

func init() {
	// settings is an optional settings file that overrides the defaults
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file <YAML>")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log the progress of each gene")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// bindFlags binds a command's flags to their viper keys. Commands share
// some flag names so they're bound when the command runs rather than in init.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
