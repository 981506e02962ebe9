// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/iptc-organizer/internal/config"
	"github.com/jdfalk/iptc-organizer/internal/metadata"
)

var cfgFile string

// Exit codes returned by ExitCode.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitValidation = 2
	ExitNotFound   = 3
	ExitBadImage   = 4
	ExitIO         = 5
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "iptc-organizer",
		Short: "Inspect and edit IPTC metadata in JPEG images",
		Long: `IPTC Organizer reads, edits and writes the IPTC IIM datasets stored in
the Photoshop APP13 segment of JPEG images.

It can also watch a directory and apply edits to new images, or serve the
same operations over an HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			// config subcommands must run to repair a broken file
			if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
				return nil
			}
			return config.AppConfig.Validate()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.ConfigFileName+")")
	flags.BoolP("backup", "b", false, "keep a copy of every modified file")
	flags.String("backup-dir", "", "directory for backups (default: FILE~ next to the image)")
	flags.BoolP("sort", "s", false, "sort datasets by record and tag before displaying or saving")
	flags.BoolP("quiet", "q", false, "produce less verbose output")
	flags.Bool("no-validate", false, "store values that break a tag's length bounds")
	flags.StringP("format", "f", "table", "output format: table, yaml or json")
	flags.String("fallback-charset", "ISO-8859-1", "character set assumed for text without a declared one")

	viper.BindPFlag("backup", flags.Lookup("backup"))
	viper.BindPFlag("backup_dir", flags.Lookup("backup-dir"))
	viper.BindPFlag("sort", flags.Lookup("sort"))
	viper.BindPFlag("quiet", flags.Lookup("quiet"))
	viper.BindPFlag("no_validate", flags.Lookup("no-validate"))
	viper.BindPFlag("output_format", flags.Lookup("format"))
	viper.BindPFlag("fallback_charset", flags.Lookup("fallback-charset"))

	root.AddCommand(newShowCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newTagsCmd())
	root.AddCommand(newDescribeCmd())
	root.AddCommand(newSegmentsCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigFile(config.ConfigFilePath())
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("IPTC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if !viper.GetBool("quiet") {
			log.Printf("[INFO] Using config file: %s", viper.ConfigFileUsed())
		}
	}

	config.InitConfig()
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch metadata.ErrorClass(err) {
	case "ok":
		return ExitOK
	case "validation":
		return ExitValidation
	case "not_found":
		return ExitNotFound
	case "not_jpeg", "format":
		return ExitBadImage
	case "io":
		return ExitIO
	default:
		return ExitError
	}
}
