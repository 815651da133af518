package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"audio-transcript/cmd/atp/cmd/cli"
	"audio-transcript/internal/app/api/provider"
	appconfig "audio-transcript/internal/config"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  `Show the effective configuration. API keys are masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cli.Load(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		printConfig(cmd.OutOrStdout(), opts.Settings, opts.Keys)
		return nil
	},
}

func printConfig(w io.Writer, s *appconfig.Settings, keys *appconfig.APIKeys) {
	source := s.Path
	if source == "" {
		source = "(defaults)"
	}
	key, variable := keys.For(s.Capability)

	fmt.Fprintf(w, "Settings:      %s\n", source)
	fmt.Fprintf(w, "Capability:    %s\n", s.Capability)
	fmt.Fprintf(w, "Model:         %s\n", s.Model)
	if s.BaseURL != "" {
		fmt.Fprintf(w, "Base URL:      %s\n", s.BaseURL)
	}
	fmt.Fprintf(w, "Credential:    %s=%s\n", variable, appconfig.MaskKey(key))
	fmt.Fprintf(w, "Timeout:       %s\n", timeout(s))
	fmt.Fprintf(w, "Max upload:    %d MB\n", s.MaxUploadMB)
	fmt.Fprintf(w, "Listen:        %s (%s)\n", s.Server.Addr(), s.Server.Environment)
	fmt.Fprintf(w, "Log level:     %s\n", s.Log.Level)
	fmt.Fprintf(w, "Registered:    %v\n", provider.ListRegisteredCapabilities())
	fmt.Fprintf(w, "Keys present:  %v\n", keys.Available())
}

func timeout(s *appconfig.Settings) string {
	if s.RequestTimeout() == 0 {
		return "none"
	}
	return s.RequestTimeout().String()
}
