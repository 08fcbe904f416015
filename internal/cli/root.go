// Package cli implements the genvault command-line client.
package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/genvault/genvault-go/internal/config"
	"github.com/genvault/genvault-go/internal/vaultapi"
	"github.com/genvault/genvault-go/internal/viewmodel"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// rootOptions carries what the persistent flags resolve to. It is filled in
// by the root command's PersistentPreRunE before any subcommand runs.
type rootOptions struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg    config.ClientConfig
	logger *slog.Logger
}

// NewRootCmd builds the genvault command tree. Each call returns a fresh
// tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "genvault",
		Short: "GenVault keeps site credentials in a remote vault.",
		Long: `GenVault lists, saves and generates site passwords against a
GenVault API server. Use "genvault tui <userId>" for the interactive page.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient(o.v, o.cfgFile)
			if err != nil {
				return err
			}
			o.cfg = cfg
			o.logger = newLogger(cmd.ErrOrStderr(), o.verbose)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default is $HOME/.genvault.yaml or ./.genvault.yaml)")
	flags.String(config.KeyServer, "http://localhost:8080", "vault API base URL")
	flags.String(config.KeyToken, "", "bearer token for the vault API")
	flags.Duration(config.KeyTimeout, 10*time.Second, "timeout for each API request")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log API calls to stderr")

	for _, key := range []string{config.KeyServer, config.KeyToken, config.KeyTimeout} {
		_ = o.v.BindPFlag(key, flags.Lookup(key))
	}

	cmd.AddCommand(
		newListCmd(o),
		newSaveCmd(o),
		newGenerateCmd(o),
		newTUICmd(o),
		newVersionCmd(),
	)

	return cmd
}

// newViewModel wires a view model to the configured API server.
func (o *rootOptions) newViewModel(logger *slog.Logger) *viewmodel.VaultViewModel {
	client := vaultapi.New(o.cfg.Server,
		vaultapi.WithTimeout(o.cfg.Timeout),
		vaultapi.WithToken(o.cfg.Token),
		vaultapi.WithLogger(logger),
	)
	vm := viewmodel.New(client, logger)
	vm.SetOptions(o.cfg.Options)
	return vm
}

// newLogger returns a debug-level text logger on w when verbose is set.
// Otherwise logs are dropped; commands report their own errors.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// addGeneratorFlags registers the character class flags. Their defaults
// come from the configuration, so the flag defaults shown here are only
// used when nothing else is set.
func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().Int(config.KeyLetters, 8, "number of letters")
	cmd.Flags().Int(config.KeyNumbers, 4, "number of digits")
	cmd.Flags().Int(config.KeySymbols, 2, "number of symbols")
}

// applyGeneratorFlags overrides the view model's options with the flags the
// user actually passed.
func applyGeneratorFlags(cmd *cobra.Command, vm *viewmodel.VaultViewModel) {
	flags := cmd.Flags()
	if flags.Changed(config.KeyLetters) {
		n, _ := flags.GetInt(config.KeyLetters)
		vm.SetLetters(n)
	}
	if flags.Changed(config.KeyNumbers) {
		n, _ := flags.GetInt(config.KeyNumbers)
		vm.SetNumbers(n)
	}
	if flags.Changed(config.KeySymbols) {
		n, _ := flags.GetInt(config.KeySymbols)
		vm.SetSymbols(n)
	}
}
