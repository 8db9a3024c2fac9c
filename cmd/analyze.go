package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/ats-analyzer/internal/ai"
	"github.com/spigell/ats-analyzer/internal/ai/gemini"
	"github.com/spigell/ats-analyzer/internal/logger"
	"github.com/spigell/ats-analyzer/internal/report"
	"github.com/spigell/ats-analyzer/internal/scoring"
	"github.com/spigell/ats-analyzer/internal/secrets"
	"github.com/spigell/ats-analyzer/internal/vacancy"
)

const (
	PromptSummary    = "Show summary"
	PromptFullReport = "Show full report"
	PromptDumpToFile = "Dump report to file"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptSummary, PromptFullReport, PromptDumpToFile, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "plain text resume file")
	analyzeCmd.Flags().String("jd", "", "plain text job description file")
	analyzeCmd.Flags().String("vacancy", "", "hh.ru vacancy id or link to use as the job description")
	analyzeCmd.Flags().StringP("output", "o", "", "write the report JSON to this file")
	analyzeCmd.Flags().BoolP("interactive", "i", false, "choose what to do with the report interactively")

	analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagsMutuallyExclusive("jd", "vacancy")
	analyzeCmd.MarkFlagsOneRequired("jd", "vacancy")

	viper.BindPFlag("output.file", analyzeCmd.Flags().Lookup("output"))
}

func analyze(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the ats-analyzer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	resume, err := readTextFile(cmd.Flag("resume").Value.String())
	if err != nil {
		logger.Fatal("reading the resume", zap.Error(err))
	}

	jd, err := loadJobDescription(ctx, cmd, logger)
	if err != nil {
		logger.Fatal("loading the job description", zap.Error(err))
	}

	generator, embedder := newCapabilities(ctx, config.AI, logger)

	engine := scoring.New(scoring.Config{
		Experience:    config.Experience,
		Skills:        config.Skills,
		DisabledRules: config.Rules.Disabled,
	}, scoring.Deps{
		Generator: generator,
		Embedder:  embedder,
		Timeout:   config.AI.Timeout,
	}, logger)

	rep := engine.Analyze(ctx, resume, jd)
	logger.Info("analysis finished",
		zap.String("report_id", rep.ID),
		zap.Int("ats_score", rep.ATSScore),
		zap.Bool("ai_powered", rep.CareerPath.AIPowered),
	)

	if file := config.Output.File; file != "" {
		filename, err := rep.DumpToFile(file)
		if err != nil {
			logger.Fatal("writing the report", zap.Error(err))
		}
		logger.Info("report written", zap.String("filename", filename))
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if !interactive {
		if err := printJSON(cmd.OutOrStdout(), rep); err != nil {
			logger.Fatal("printing the report", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(cmd.OutOrStdout(), action, logger, rep); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(w io.Writer, action string, logger *zap.Logger, rep *report.Report) error {
	switch action {
	case PromptSummary:
		printSummary(w, rep)
		return nil
	case PromptFullReport:
		return printJSON(w, rep)
	case PromptDumpToFile:
		filename, err := rep.DumpToFile("")
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// newCapabilities picks the live or null AI implementations once, before the
// pipeline is built.
func newCapabilities(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.TextGenerator, ai.Embedder) {
	if cfg == nil || !cfg.Enabled {
		logger.Info("ai capabilities disabled", zap.String("reason", "ai.enabled is false"))
		return ai.NopGenerator{}, ai.NopEmbedder{}
	}

	client, err := newGeminiClient(ctx, cfg, logger)
	if err != nil {
		logger.Warn("ai capabilities unavailable, using fallbacks",
			zap.Error(err),
			zap.String("hint", "set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY"),
		)
		return ai.NopGenerator{}, ai.NopEmbedder{}
	}

	return client, client
}

func newGeminiClient(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (*gemini.Client, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	g := cfg.Gemini
	if g == nil {
		g = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  g.APIKeyFile,
		Value: g.APIKey,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, err
	}

	return gemini.New(ctx, gemini.Config{
		APIKey:         apiKey,
		Model:          g.Model,
		EmbeddingModel: g.EmbeddingModel,
		MaxRetries:     g.MaxRetries,
		MaxLogLength:   g.MaxLogLength,
	}, logger)
}

func loadJobDescription(ctx context.Context, cmd *cobra.Command, logger *zap.Logger) (string, error) {
	if ref := cmd.Flag("vacancy").Value.String(); ref != "" {
		logger.Info("fetching the vacancy", zap.String("vacancy", ref))
		return vacancy.New(logger).JobDescription(ctx, ref)
	}
	return readTextFile(cmd.Flag("jd").Value.String())
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("file %q is empty", path)
	}
	return text, nil
}

func printJSON(w io.Writer, rep *report.Report) error {
	data, err := rep.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printSummary(w io.Writer, rep *report.Report) {
	fmt.Fprintf(w, "ATS score: %d/100 (semantic %.1f, rules %.1f)\n", rep.ATSScore, rep.Scores.Semantic, rep.Scores.Rule)
	fmt.Fprintln(w, rep.Summary)
	fmt.Fprintf(w, "Seniority: %s (detected %s, required %s)\n",
		rep.SeniorityAlignment, rep.Seniority.Detected, rep.Seniority.Required)
	printList(w, "Strengths", rep.Strengths)
	printList(w, "Weaknesses", rep.Weaknesses)
	printList(w, "Missing skills", rep.MissingSkills)
	printList(w, "Suggestions", rep.Suggestions)
	printList(w, "Recommended certifications", rep.RecommendedCertifications)
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
