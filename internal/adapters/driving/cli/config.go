package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const tokenKey = "github.token"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the settings stored in config.toml.

The configuration directory is ~/.relnote, or $RELNOTE_CONFIG_DIR when set.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  github.owner       default repository owner
  github.repo        default repository name
  github.sort        default search sort order
  github.token       GitHub token (prefer "relnote config token")
  output.dir         directory documents are written to
  output.pr_numbers  show pull request numbers (true/false)
  output.authors     write the contributors list (true/false)
  history.enabled    record runs (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configTokenCmd = &cobra.Command{
	Use:   "token [token]",
	Short: "Store a GitHub token",
	Long: `Store a GitHub personal access token.

Without an argument the token is read from stdin without echo.
A token given with -t or $GITHUB_TOKEN takes precedence over the stored one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigToken,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configTokenCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[GitHub]")
	cmd.Printf("  Owner: %s\n", orNotSet(settings.GitHub.Owner))
	cmd.Printf("  Repo: %s\n", orNotSet(settings.GitHub.Repo))
	cmd.Printf("  Sort: %s\n", settings.GitHub.Sort)
	if settings.GitHub.HasToken() {
		cmd.Printf("  Token: %s\n", maskToken(settings.GitHub.Token))
	} else {
		cmd.Printf("  Token: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Directory: %s\n", settings.Output.Dir)
	cmd.Printf("  PR numbers: %t\n", settings.Output.PRNumbers)
	cmd.Printf("  Contributors: %t\n", settings.Output.Authors)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %t\n", settings.History.Enabled)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if key == tokenKey {
		value = maskToken(value)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Unset(args[0]); err != nil {
		return fmt.Errorf("failed to unset %s: %w", args[0], err)
	}
	cmd.Printf("Unset %s\n", args[0])
	return nil
}

func runConfigToken(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var token string
	if len(args) == 1 {
		token = strings.TrimSpace(args[0])
	} else {
		cmd.Print("GitHub token: ")
		token = readPassword(cmd.InOrStdin())
		cmd.Println()
	}
	if token == "" {
		return errors.New("no token given")
	}

	if err := settingsService.SetToken(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	cmd.Printf("Token saved (%s)\n", maskToken(token))
	return nil
}

func readPassword(in io.Reader) string {
	// Try to read without echo
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func orNotSet(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
