package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/tessro/cutline/internal/config"
	cuterrors "github.com/tessro/cutline/internal/errors"
	"github.com/tessro/cutline/internal/wizard"
)

var (
	initInteractive bool
	initYAML        bool
	initForce       bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for viewing and editing cutline configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the loaded configuration, including defaults and environment overrides.`,
	RunE:  runConfigShow,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file",
	Long:  `Open the configuration file in your default editor.`,
	RunE:  runConfigEdit,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a new configuration file with default values.

With --interactive, asks for the main settings first.`,
	// init must work before any config exists, or when it is broken
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Supported keys:
  ` + strings.Join(config.SetKeys, "\n  ") + `

Examples:
  cutline config set timeline.fps 24
  cutline config set playback.timecode frames`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configInitCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "prompt for settings")
	configInitCmd.Flags().BoolVar(&initYAML, "yaml", false, "write YAML instead of TOML")
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(cfg)
	}

	data, err := config.Encode(cfg, false)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cuterrors.WithSuggestion(
			fmt.Errorf("%w: %s", cuterrors.ErrConfigNotFound, configPath),
			"Run 'cutline config init' first",
		)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"nano", "vim", "vi", "notepad"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	return editorCmd.Run()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	if initYAML && cfgFile == "" {
		configPath += ".yaml"
	}

	if _, err := os.Stat(configPath); err == nil && !initForce {
		return cuterrors.WithSuggestion(
			fmt.Errorf("config file already exists at %s", configPath),
			"Use --force to overwrite it, or 'cutline config edit' to change it",
		)
	}

	newCfg := config.Default()
	if initInteractive {
		prompt := wizard.NewInteractive()
		if !prompt.CanInteract() {
			return fmt.Errorf("--interactive needs a terminal")
		}
		newCfg, err = prompt.PromptConfig(newCfg)
		if err != nil {
			return fmt.Errorf("config init cancelled: %w", err)
		}
	}

	if err := config.Save(newCfg, configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{
			"status": "created",
			"path":   configPath,
		})
	}
	fmt.Printf("Created config file: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Define your scenes under [[timeline.scenes]]")
	fmt.Println("  2. Run 'cutline ui' to open the editor")
	return nil
}

// getConfigPath returns the --config path, or the default location.
func getConfigPath() (string, error) {
	if cfgFile != "" {
		return homedir.Expand(cfgFile)
	}
	return config.DefaultPath(), nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	if err := config.Set(configPath, key, value); err != nil {
		return err
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{
			"status": "updated",
			"key":    key,
			"value":  value,
		})
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
