package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tagmix/tagmix/internal/bot"
	"github.com/tagmix/tagmix/internal/config"
	"github.com/tagmix/tagmix/internal/logger"
)

var (
	cfgFile   string
	token     string
	blockSize int
	verbose   bool
)

func Execute(version, commit, date string) error {
	rootCmd := &cobra.Command{
		Use:   "tagmix",
		Short: "Telegram bot generating hashtag combinations",
		Long: `tagmix runs a Telegram bot that builds every hashtag combination from
root and suffix word lists and returns them in copy-paste sized blocks.

Send the bot a message like:
  Корни: отопление, котел
  Суффиксы: москва, спб`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.NoArgs,
		RunE:    run,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/tagmix/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", "", "Telegram bot token")
	rootCmd.PersistentFlags().IntVarP(&blockSize, "block-size", "b", 0, "hashtags per block (default 30)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Management commands
	rootCmd.AddCommand(setupCmd())
	rootCmd.AddCommand(checkConfigCmd())
	rootCmd.AddCommand(generateCmd())

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	viper.BindPFlag("block-size", rootCmd.PersistentFlags().Lookup("block-size"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Environment variable support
	viper.SetEnvPrefix("TAGMIX")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	botToken, err := cfg.GetToken()
	if err != nil {
		return err
	}

	log := logger.New(os.Stderr, logger.Format(cfg.GetLogFormat()), viper.GetBool("verbose"))

	b, err := bot.New(botToken, cfg.GetBlockSize(), log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return b.Run(ctx)
}
