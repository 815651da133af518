package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio-transcript/cmd/atp/cmd/cli"
	"audio-transcript/cmd/atp/cmd/config"
	"audio-transcript/cmd/atp/cmd/serve"
	"audio-transcript/cmd/atp/cmd/transcribe"
	"audio-transcript/cmd/atp/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "atp",
	Short: "Turn an MP3 recording into a speaker-labelled, timestamped transcript",
	Long: `Turn an MP3 recording into a speaker-labelled, timestamped transcript.
- transcribe sends one local file to the configured speech capability
- serve exposes the same flow over HTTP for browser uploads
- Credentials come from the environment or a .env file.`,
	TraverseChildren: true,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(config.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "settings file (default $ATP_CONFIG or config/atp.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "V", false, "verbose output")
}
