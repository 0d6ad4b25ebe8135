package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagmix/tagmix/internal/config"
	"github.com/tagmix/tagmix/internal/export"
	"github.com/tagmix/tagmix/internal/hashtag"
)

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactive configuration wizard",
		Long: `Interactive setup wizard to create the tagmix config file.

You can also configure tagmix manually by editing:
  ~/.config/tagmix/config.toml (Linux/others)
  ~/Library/Application Support/tagmix/config.toml (macOS)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Tagmix Setup Wizard")
			fmt.Println("===================")
			fmt.Println()

			cfg, err := config.Load()
			if err != nil {
				cfg = &config.Config{BlockSize: config.DefaultBlockSize}
			}

			fmt.Println("Get a bot token from @BotFather on Telegram.")
			fmt.Print("Bot token: ")

			var token string
			fmt.Scanln(&token)

			if token == "" && cfg.Token == "" {
				return fmt.Errorf("a bot token is required")
			}
			if token != "" {
				cfg.Token = token
			}

			fmt.Printf("Hashtags per block [%d]: ", cfg.GetBlockSize())

			var sizeInput string
			fmt.Scanln(&sizeInput)
			if sizeInput != "" {
				size, err := strconv.Atoi(sizeInput)
				if err != nil || size < 1 {
					return fmt.Errorf("invalid block size: %q", sizeInput)
				}
				cfg.BlockSize = size
			}

			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("\n✓ Configuration saved!\n")
			fmt.Printf("  Block size: %d hashtags\n", cfg.GetBlockSize())
			fmt.Printf("\nStart the bot:\n")
			fmt.Printf("  tagmix\n")

			return nil
		},
	}
}

func checkConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Validate the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fmt.Println("Checking configuration...")
			fmt.Println()

			hasErrors := false

			fmt.Print("Bot token...  ")
			if token, err := cfg.GetToken(); err != nil {
				fmt.Println("❌ missing (run 'tagmix setup' or set TAGMIX_TOKEN)")
				hasErrors = true
			} else {
				fmt.Printf("✓ %s\n", maskToken(token))
			}

			fmt.Print("Block size... ")
			fmt.Printf("✓ %d\n", cfg.GetBlockSize())

			fmt.Print("Log format... ")
			if format := cfg.GetLogFormat(); format != "text" && format != "json" {
				fmt.Printf("❌ %q (must be \"text\" or \"json\")\n", format)
				hasErrors = true
			} else {
				fmt.Printf("✓ %s\n", format)
			}

			if hasErrors {
				return fmt.Errorf("configuration has issues")
			}

			fmt.Println("\n✓ Configuration looks good")
			return nil
		},
	}
}

func generateCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Generate hashtags once without starting the bot",
		Long: `Run the generator on the given text (or stdin when no argument is given)
and print the result in the same layout as the bot's downloadable file.

Example:
  tagmix generate "Корни: отопление, котел Суффиксы: москва, спб"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = string(data)
			}

			res, err := hashtag.Process(text, cfg.GetBlockSize())
			if err != nil {
				return err
			}

			doc := export.Document(res)
			if outputPath != "" {
				if err := os.WriteFile(outputPath, doc, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outputPath, err)
				}
				fmt.Printf("✓ Wrote %d hashtags in %d blocks to %s\n",
					len(res.Hashtags), len(res.Blocks), outputPath)
				return nil
			}

			fmt.Println(string(doc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}

// maskToken keeps enough of the token to recognize it without exposing it.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
