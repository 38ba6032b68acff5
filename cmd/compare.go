package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/harishsure007/Jobflowai/internal/catalog"
	"github.com/harishsure007/Jobflowai/internal/logger"
	"github.com/harishsure007/Jobflowai/internal/match"
	"github.com/harishsure007/Jobflowai/internal/semantic"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Score a resume against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		compare(cmd)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringP("resume", "r", "", "resume text file ('-' reads stdin)")
	compareCmd.Flags().String("jd", "", "job description text file ('-' reads stdin)")
	compareCmd.Flags().StringP("mode", "m", "", "comparison mode: word, skill or overall (prompted when unset)")
	compareCmd.Flags().Int("top-n", 0, "cap for the keyword lists (negative removes the cap)")
	compareCmd.Flags().Bool("debug-breakdown", false, "include the per-category breakdown in the report")
	compareCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
}

func compare(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	resumeText, err := readInput(cmd, "resume")
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}
	jdText, err := readInput(cmd, "jd")
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	mode, err := selectMode(cmd)
	if err != nil {
		logger.Fatal("selecting mode", zap.Error(err))
	}

	cat, err := loadCatalog(config, logger)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	sem := buildSemanticScorer(ctx, config, logger)

	engine, err := match.NewEngine(engineConfig(config), cat, sem, logger)
	if err != nil {
		logger.Fatal("building engine", zap.Error(err))
	}

	topN, _ := cmd.Flags().GetInt("top-n")
	debug, _ := cmd.Flags().GetBool("debug-breakdown")

	report, err := engine.Score(ctx, resumeText, jdText, mode, &match.ScoreOptions{
		TopN:  topN,
		Debug: debug,
	})
	if err != nil {
		logger.Fatal("scoring", zap.Error(err))
	}

	if err := writeJSON(cmd, report); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}
}

// readInput loads the text behind a file flag; "-" means stdin.
func readInput(cmd *cobra.Command, flag string) (string, error) {
	path, _ := cmd.Flags().GetString(flag)
	if path == "" {
		return "", fmt.Errorf("--%s is required", flag)
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return string(data), nil
}

// selectMode parses the --mode flag or prompts when it is unset.
func selectMode(cmd *cobra.Command) (match.Mode, error) {
	raw, _ := cmd.Flags().GetString("mode")
	if raw != "" {
		return match.ParseMode(raw)
	}

	items := make([]string, 0, len(match.Modes()))
	for _, m := range match.Modes() {
		items = append(items, string(m))
	}

	prompt := promptui.Select{
		Label: "Comparison mode",
		Items: items,
	}

	_, selected, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return match.ParseMode(selected)
}

func loadCatalog(config *Config, logger *zap.Logger) (*catalog.Catalog, error) {
	path := viper.GetString("catalog-file")
	if config != nil && config.CatalogFile != "" {
		path = config.CatalogFile
	}
	if path == "" {
		return catalog.Default(), nil
	}

	logger.Debug("loading catalog file", zap.String("path", path))
	return catalog.FromFile(path)
}

// buildSemanticScorer wires the embedding blend when enabled. Setup
// failures degrade to the disabled scorer with a warning; they never
// block deterministic scoring.
func buildSemanticScorer(ctx context.Context, config *Config, logger *zap.Logger) semantic.Scorer {
	enabled := viper.GetBool("semantic.enabled")
	if config != nil && config.Semantic != nil && config.Semantic.Enabled {
		enabled = true
	}
	if !enabled {
		return semantic.Disabled{}
	}

	keyFile := viper.GetString("semantic.api-key-file")
	model := ""
	if config != nil && config.Semantic != nil {
		if config.Semantic.APIKeyFile != "" {
			keyFile = config.Semantic.APIKeyFile
		}
		model = config.Semantic.Model
	}

	apiKey, err := readSecretFile("gemini api key", keyFile)
	if err != nil {
		logger.Warn("semantic scoring disabled",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY_FILE or the semantic.api-key-file key in the configuration file"),
		)
		return semantic.Disabled{}
	}

	scorer, err := semantic.NewGemini(ctx, apiKey, model, logger)
	if err != nil {
		logger.Warn("semantic scoring disabled", zap.Error(err))
		return semantic.Disabled{}
	}

	logger.Debug("semantic scoring enabled", zap.String("model", scorer.Model()))
	return scorer
}

// readSecretFile loads and trims a secret from a file.
func readSecretFile(name, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("%s file is not configured", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, path, err)
	}

	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", fmt.Errorf("%s file %q is empty", name, path)
	}
	return secret, nil
}

// writeJSON renders v to the --output file or stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	pretty = append(pretty, '\n')

	path, _ := cmd.Flags().GetString("output")
	if path == "" || path == "-" {
		_, err = os.Stdout.Write(pretty)
		return err
	}
	return os.WriteFile(path, pretty, 0o644)
}
