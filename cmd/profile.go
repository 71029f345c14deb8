package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/smf/internal/awscli"
	"github.com/vietdv277/smf/internal/config"
	"github.com/vietdv277/smf/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage AWS profiles",
	Long: `Manage the AWS profile smf passes to the aws CLI.

When run without subcommands, lists the available profiles.

Examples:
  smf profile                    # List all available profiles
  smf profile ls                 # Same as above
  smf profile set my-profile     # Save a default profile`,
	Args: cobra.NoArgs,
	RunE: runProfileList,
}

var profileLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available AWS profiles",
	Long: `List all available AWS profiles from ~/.aws/credentials and ~/.aws/config.

Examples:
  smf profile ls`,
	Args: cobra.NoArgs,
	RunE: runProfileList,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <profile-name>",
	Short: "Set the default AWS profile",
	Long: `Save an AWS profile as the default for future smf commands.

The profile is saved to ~/.config/smf/config.yaml. --profile and SMF_PROFILE
still take precedence.

Examples:
  smf profile set my-profile
  smf profile set production`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileSet,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileLsCmd)
	profileCmd.AddCommand(profileSetCmd)
}

func runProfileList(cmd *cobra.Command, args []string) error {
	profiles, err := awscli.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(profiles) == 0 {
		fmt.Fprintln(out, "No AWS profiles found")
		fmt.Fprintln(out, "Create profiles in ~/.aws/credentials or ~/.aws/config")
		return nil
	}

	ui.PrintProfileTable(out, profiles, getActiveProfile())
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	profileName := args[0]

	if !awscli.ValidateProfile(profileName) {
		return fmt.Errorf("profile %q not found", profileName)
	}

	if err := config.SetProfile(profileName); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	logger.Info("Profile set to: %s", profileName)
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved to: %s\n", config.GetConfigPath())
	return nil
}

// getActiveProfile returns the profile the aws CLI will use.
// Priority: --profile / SMF_PROFILE / config file > AWS_PROFILE env
func getActiveProfile() string {
	if p := viper.GetString(keyProfile); p != "" {
		return p
	}
	return os.Getenv("AWS_PROFILE")
}
