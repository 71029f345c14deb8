package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/smf/internal/awscli"
	"github.com/vietdv277/smf/internal/config"
	"github.com/vietdv277/smf/internal/editor"
	"github.com/vietdv277/smf/internal/logging"
	"github.com/vietdv277/smf/internal/secrets"
	"github.com/vietdv277/smf/internal/ui"
	pkgexec "github.com/vietdv277/smf/pkg/exec"
)

// Viper keys, also the persistent flag names
const (
	keyProfile = "profile"
	keyRegion  = "region"
	keyAWSCLI  = "aws-cli"
	keyEditor  = "editor"
	keyNoFuzzy = "no-fuzzy"
	keyNoColor = "no-color"
	keyDebug   = "debug"
)

// executor runs the aws CLI and the editor. Tests swap it for a mock.
var executor pkgexec.CommandExecutor = pkgexec.DefaultExecutor()

var logger = logging.New(false)

var rootCmd = &cobra.Command{
	Use:   "smf",
	Short: "Fuzzy search and edit AWS Secrets Manager secrets",
	Long: `smf wraps the aws CLI's secretsmanager commands with search,
interactive selection, tables and editor-driven create/edit workflows.

Every remote call goes through the aws CLI, so credentials, profiles and
regions work exactly as they do for 'aws' itself.

Examples:
  smf list                       # Table of all secrets
  smf search db                  # Secrets whose name contains "db"
  smf get prod/db                # Print a secret value (JSON pretty-printed)
  smf edit prod/db               # Edit the value in $VISUAL / $EDITOR
  smf create app/token -d "CI"   # Create a secret from the editor
  smf delete old-secret          # Delete after confirmation`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDebug(viper.GetBool(keyDebug))
		if viper.GetBool(keyNoColor) || os.Getenv("NO_COLOR") != "" {
			ui.DisableColor()
		}
	},
}

// Execute runs the root command. Any error is printed as "ERROR: <message>"
// and the process exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ui.ErrorStyle.Render("ERROR:"), err)
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP(keyProfile, "p", "", "AWS profile passed to the aws CLI")
	flags.StringP(keyRegion, "r", "", "AWS region passed to the aws CLI")
	flags.String(keyAWSCLI, awscli.DefaultBinary, "aws CLI executable")
	flags.String(keyEditor, "", "Editor for create/edit (default $VISUAL, $EDITOR, vi)")
	flags.Bool(keyNoFuzzy, false, "Pick among multiple matches by number instead of fuzzy search")
	flags.Bool(keyNoColor, false, "Disable colored output")
	flags.Bool(keyDebug, false, "Log every aws CLI invocation to stderr")

	for _, key := range []string{keyProfile, keyRegion, keyAWSCLI, keyEditor, keyNoFuzzy, keyNoColor, keyDebug} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

func initConfig() {
	// Read from environment variables, e.g. SMF_PROFILE, SMF_AWS_CLI
	viper.SetEnvPrefix("SMF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// The config file supplies defaults below flags and env
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("ignoring config file %s: %v", config.GetConfigPath(), err)
		return
	}
	if cfg.AWSCLI != "" {
		viper.SetDefault(keyAWSCLI, cfg.AWSCLI)
	}
	viper.SetDefault(keyProfile, cfg.Profile)
	viper.SetDefault(keyRegion, cfg.Region)
	viper.SetDefault(keyEditor, cfg.Editor)
	viper.SetDefault(keyNoFuzzy, cfg.NoFuzzy)
}

// newClient builds the aws CLI invoker from the resolved settings
func newClient() *awscli.Client {
	client := awscli.NewClient(
		awscli.WithBinary(viper.GetString(keyAWSCLI)),
		awscli.WithProfile(viper.GetString(keyProfile)),
		awscli.WithRegion(viper.GetString(keyRegion)),
		awscli.WithExecutor(executor),
		awscli.WithLogger(logger),
	)
	logger.Debug("client: %s", client)
	return client
}

// newService wires a secrets.Service to the command's streams
func newService(cmd *cobra.Command) *secrets.Service {
	return secrets.New(newClient(),
		secrets.WithChooser(newChooser(cmd)),
		secrets.WithConfirmer(&ui.Confirmer{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()}),
		secrets.WithEditor(newEditor(cmd)),
		secrets.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		secrets.WithLogger(logger),
	)
}

// newChooser uses the fuzzy picker on an interactive terminal, otherwise the
// numbered prompt
func newChooser(cmd *cobra.Command) secrets.Chooser {
	if !viper.GetBool(keyNoFuzzy) && isTerminal(cmd.InOrStdin()) {
		return &ui.FuzzyChooser{Options: []tea.ProgramOption{
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.ErrOrStderr()),
		}}
	}
	return &ui.NumberedChooser{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveEditor picks --editor / SMF_EDITOR / config, then VISUAL, EDITOR, vi
func resolveEditor() string {
	if e := viper.GetString(keyEditor); e != "" {
		return e
	}
	return editor.Resolve(os.LookupEnv)
}

func newEditor(cmd *cobra.Command) editor.Editor {
	ed := editor.NewCommand(resolveEditor())
	ed.Stdin = cmd.InOrStdin()
	ed.Stdout = cmd.ErrOrStderr()
	ed.Stderr = cmd.ErrOrStderr()
	if ie, ok := executor.(pkgexec.InteractiveExecutor); ok {
		ed.Executor = ie
	}
	logger.Debug("editor: %s", ed.Program)
	return ed
}
