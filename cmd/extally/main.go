package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

var flagVerbose bool // value of --verbose flag

var rootCmd = &cobra.Command{
	Use:   "extally",
	Short: "Tool counting file extensions from a list of paths on stdin",
	Long: `extally reads file paths from standard input, one per line, and counts
occurrences of each file extension. Extensions are lowercased, paths without
an extension are counted under the ` + "`[no extension]`" + ` key. The tally is
printed to standard output sorted by ascending count, one "<key>: <count>"
line per extension:

    find . -type f | extally`,
	Args: cobra.NoArgs,
	RunE: doTally,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version provides a version of extally",
	RunE:  doVersion,
}

func main() {
	// root flags
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose logging")

	// never print messages and usage
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(versionCmd)

	if cmd, err := rootCmd.ExecuteC(); err != nil {
		slog.Error("extally failed", "err", err)
		if strings.HasPrefix(err.Error(), "unknown command") {
			_ = cmd.Help() // ./extally bflmp
		}
		os.Exit(1)
	}
}

func doVersion(cmd *cobra.Command, args []string) error {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return fmt.Errorf("extally: version info not available")
	}

	fmt.Printf("extally: %s\n", info.Main.Version)
	fmt.Printf("go:      %s\n", info.GoVersion)
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			fmt.Printf("commit:  %s\n", s.Value)
		case "vcs.time":
			fmt.Printf("date:    %s\n", s.Value)
		case "vcs.modified":
			fmt.Printf("dirty:   %s\n", s.Value)
		}
	}
	fmt.Println()

	return nil
}
