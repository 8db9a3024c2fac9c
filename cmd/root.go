package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/ats-analyzer/internal/experience"
	"github.com/spigell/ats-analyzer/internal/skills"
)

const (
	app = "ats-analyzer"

	defaultAITimeout = 30 * time.Second
)

type Config struct {
	AI         *AIConfig         `mapstructure:"ai"`
	Skills     skills.Config     `mapstructure:"skills"`
	Experience experience.Config `mapstructure:"experience"`
	Rules      RulesConfig       `mapstructure:"rules"`
	Output     OutputConfig      `mapstructure:"output"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider" validate:"omitempty,oneof=gemini"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey         string `mapstructure:"api-key" json:"-"`
	APIKeyFile     string `mapstructure:"api-key-file"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding-model"`
	MaxRetries     int    `mapstructure:"max-retries" validate:"gte=0"`
	MaxLogLength   int    `mapstructure:"max-log-length" validate:"gte=0"`
}

type RulesConfig struct {
	Disabled []string `mapstructure:"disabled" validate:"dive,oneof=formatting content_quality seniority certifications"`
}

type OutputConfig struct {
	File string `mapstructure:"file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "ats-analyzer scores a resume against a job description the way an applicant tracking system would",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	viper.SetDefault("ai.enabled", true)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.timeout", defaultAITimeout)
	viper.SetDefault("ai.gemini.max-retries", 3)
	viper.SetDefault("skills.fuzzy-threshold", skills.DefaultFuzzyThreshold)
	viper.SetDefault("skills.min-fuzzy-length", skills.DefaultMinFuzzyLength)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is ats-analyzer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if versionCmd.CalledAs() != "" {
		return
	}

	// GEMINI_API_KEY may live in a .env file next to the config.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env file: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The default config file is optional; an explicit one must be readable.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
