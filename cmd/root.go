package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harishsure007/Jobflowai/internal/match"
)

const (
	app = "jobflowai"
)

// Config is the file-level configuration. Every knob is optional; unset
// values fall back to the engine defaults.
type Config struct {
	CatalogFile string          `mapstructure:"catalog-file"`
	Match       *MatchConfig    `mapstructure:"match"`
	Semantic    *SemanticConfig `mapstructure:"semantic"`
}

// MatchConfig mirrors the tunable knobs of the deterministic engine.
type MatchConfig struct {
	Strict      int `mapstructure:"strict"`
	TokenStrict int `mapstructure:"token-strict"`
	Loose       int `mapstructure:"loose"`

	PhraseStrict int `mapstructure:"phrase-strict"`
	PhraseLoose  int `mapstructure:"phrase-loose"`

	WordWeight   float64 `mapstructure:"word-weight"`
	SkillWeight  float64 `mapstructure:"skill-weight"`
	PhraseWeight float64 `mapstructure:"phrase-weight"`

	SynonymHops int `mapstructure:"synonym-hops"`
	SynonymCap  int `mapstructure:"synonym-cap"`

	PhraseWindow int `mapstructure:"phrase-window"`
	PhraseStep   int `mapstructure:"phrase-step"`

	TopKeywords int  `mapstructure:"top-keywords"`
	Stemming    bool `mapstructure:"stemming"`
	CacheSize   int  `mapstructure:"cache-size"`
}

// SemanticConfig controls the optional embedding blend.
type SemanticConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	APIKeyFile  string  `mapstructure:"api-key-file"`
	Model       string  `mapstructure:"model"`
	BaseWeight  float64 `mapstructure:"base-weight"`
	EmbedWeight float64 `mapstructure:"embed-weight"`
}

// engineDefaults mirror match.DefaultConfig so the effective values show
// up in viper and a partially filled config file stays safe.
var engineDefaults = map[string]any{
	"match.strict":          92,
	"match.token-strict":    88,
	"match.loose":           82,
	"match.phrase-strict":   90,
	"match.phrase-loose":    84,
	"match.word-weight":     1.0,
	"match.skill-weight":    2.0,
	"match.phrase-weight":   2.0,
	"match.synonym-hops":    1,
	"match.synonym-cap":     2000,
	"match.phrase-window":   16,
	"match.phrase-step":     4,
	"match.top-keywords":    40,
	"semantic.enabled":      false,
	"semantic.base-weight":  0.4,
	"semantic.embed-weight": 0.6,
}

// envBindings maps viper keys to their environment variables.
var envBindings = map[string]string{
	"match.strict":          "STRICT",
	"match.token-strict":    "TOKEN_STRICT",
	"match.loose":           "LOOSE",
	"match.phrase-strict":   "PHRASE_STRICT",
	"match.phrase-loose":    "PHRASE_LOOSE",
	"match.word-weight":     "W_WORD",
	"match.skill-weight":    "W_SKILL",
	"match.phrase-weight":   "W_PHRASE",
	"match.synonym-hops":    "MAX_SYNONYM_HOPS",
	"match.synonym-cap":     "MAX_SYNONYM_SIZE",
	"match.phrase-window":   "PHRASE_WINDOW",
	"match.phrase-step":     "PHRASE_STEP",
	"match.top-keywords":    "TOP_N_KEYWORDS",
	"semantic.enabled":      "USE_EMBED",
	"semantic.base-weight":  "BASE_WEIGHT",
	"semantic.embed-weight": "EMBED_WEIGHT",
	"semantic.api-key-file": "GEMINI_API_KEY_FILE",
	"catalog-file":          "CATALOG_FILE",
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobflowai is a cli for matching resumes against job descriptions and parsing resume structure",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	for key, value := range engineDefaults {
		viper.SetDefault(key, value)
	}

	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobflowai.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// The config file is optional: everything has a default or an
	// environment binding.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// engineConfig translates the file/env configuration into the engine's
// config. Unset values stay zero and pick up the engine defaults.
func engineConfig(config *Config) *match.Config {
	out := &match.Config{}

	if config != nil && config.Match != nil {
		m := config.Match
		out.Strict = m.Strict
		out.TokenStrict = m.TokenStrict
		out.Loose = m.Loose
		out.PhraseStrict = m.PhraseStrict
		out.PhraseLoose = m.PhraseLoose
		out.WordWeight = m.WordWeight
		out.SkillWeight = m.SkillWeight
		out.PhraseWeight = m.PhraseWeight
		out.SynonymHops = m.SynonymHops
		out.SynonymCap = m.SynonymCap
		out.PhraseWindow = m.PhraseWindow
		out.PhraseStep = m.PhraseStep
		out.TopKeywords = m.TopKeywords
		out.Stemming = m.Stemming
		out.CacheSize = m.CacheSize
	}

	if config != nil && config.Semantic != nil {
		out.BaseWeight = config.Semantic.BaseWeight
		out.EmbedWeight = config.Semantic.EmbedWeight
	}

	return out
}
