package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List all secrets",
	Long: `List every secret with its name and description.

Examples:
  smf list
  smf l --profile prod`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newService(cmd).List(cmd.Context())
	},
}

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Aliases: []string{"s"},
	Short:   "Search secrets by name",
	Long: `List the secrets whose name contains <query>, ignoring case.

Examples:
  smf search db
  smf s PROD/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newService(cmd).Search(cmd.Context(), args[0])
	},
}

var getValueRaw bool

var getValueCmd = &cobra.Command{
	Use:     "get-value <query>",
	Aliases: []string{"get", "g"},
	Short:   "Print the value of a secret",
	Long: `Print the value of the secret matching <query>.

JSON values are pretty-printed and colorized. When several secrets match,
you are asked to pick one.

Examples:
  smf get-value prod/db
  smf get api-key --raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newService(cmd).GetValue(cmd.Context(), args[0], colorEnabled(getValueRaw))
	},
}

var getARNCmd = &cobra.Command{
	Use:   "get-arn <query>",
	Short: "Print the ARN of a secret",
	Long: `Print the ARN of the secret matching <query>.

Examples:
  smf get-arn prod/db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newService(cmd).GetARN(cmd.Context(), args[0])
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show the metadata of a secret",
	Long: `Show the full describe-secret document of the secret matching <name>.

Examples:
  smf describe prod/db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newService(cmd).Describe(cmd.Context(), args[0], colorEnabled(false))
	},
}

var createDescription string

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a secret in your editor",
	Long: `Create a secret named <name>. The value is written in your editor
($VISUAL, $EDITOR or vi). Deleting the file in the editor aborts.

Examples:
  smf create app/token
  smf create app/token --description "CI deploy token"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var description *string
		if cmd.Flags().Changed("description") {
			description = &createDescription
		}
		return newService(cmd).Create(cmd.Context(), args[0], description)
	},
}

var editDescription bool

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a secret value or description",
	Long: `Open the value of the secret matching <name> in your editor and save
it back when it changed.

Examples:
  smf edit prod/db
  smf edit prod/db --description`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newService(cmd).Edit(cmd.Context(), args[0], editDescription)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a secret",
	Long: `Delete the secret matching <name> after confirmation.

Examples:
  smf delete old-secret`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newService(cmd).Delete(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(getValueCmd)
	rootCmd.AddCommand(getARNCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)

	getValueCmd.Flags().BoolVar(&getValueRaw, "raw", false, "Print the value without color")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Secret description")
	editCmd.Flags().BoolVarP(&editDescription, "description", "d", false, "Edit the description instead of the value")
}

// colorEnabled reports whether JSON output should carry ANSI styles
func colorEnabled(raw bool) bool {
	return !raw && !viper.GetBool(keyNoColor)
}
