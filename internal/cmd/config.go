package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg/nom/internal/config"
	"github.com/xdg/nom/internal/process"
	"github.com/xdg/nom/internal/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user configuration",
	Long: `Manage nom's user configuration.

The user configuration file is stored at ~/.config/nom/config.yaml
(or $XDG_CONFIG_HOME/nom/config.yaml if XDG_CONFIG_HOME is set). Its log
settings and vars apply to every build; a build file's own values win.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective user config",
	Long: `Print the effective user configuration as YAML.

If no config file exists, shows the default configuration.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit user config in $EDITOR",
	Long: `Open the user configuration file in your editor.

The editor is $VISUAL, then $EDITOR, then the config's editor setting, then vi.
If the configuration file doesn't exist, a default one is created first.`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file path",
	Args:  cobra.NoArgs,
	Run:   runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	Long: `Create a commented default configuration file if it doesn't exist.

If the file already exists, this command leaves it alone.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := config.MarshalUserConfig(cfg)
	if err != nil {
		return err
	}

	term.Print(string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	if err := config.EditUserConfig(process.NewRunner(nil, nil)); err != nil {
		return fmt.Errorf("failed to edit config: %w", err)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	term.Println(config.UserConfigPath())
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.WriteDefaultUserConfig()
	if errors.Is(err, os.ErrExist) {
		term.Printf("Config already exists at: %s\n", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	term.Printf("Created default config at: %s\n", path)
	return nil
}
