package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/harishsure007/Jobflowai/internal/logger"
	"github.com/harishsure007/Jobflowai/internal/resume"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume into structured fields",
	Run: func(cmd *cobra.Command, _ []string) {
		parse(cmd)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("resume", "r", "", "resume text file ('-' reads stdin)")
	parseCmd.Flags().Bool("no-fuzzy-skills", false, "skip fuzzy expansion of detected skills")
	parseCmd.Flags().StringP("output", "o", "", "write the result to a file instead of stdout")
}

func parse(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	raw, err := readInput(cmd, "resume")
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}

	cat, err := loadCatalog(config, logger)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	noFuzzy, _ := cmd.Flags().GetBool("no-fuzzy-skills")
	opts := resume.Options{
		FuzzySkills: !noFuzzy,
		Logger:      logger,
	}

	structured := resume.Parse(raw, cat, opts)

	if err := writeJSON(cmd, structured); err != nil {
		logger.Fatal("writing result", zap.Error(err))
	}
}
