package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"planpilot/internal/category"
	"planpilot/internal/config"
	"planpilot/internal/generation"
	"planpilot/internal/llm"
	"planpilot/internal/logger"
	"planpilot/internal/observability"
	"planpilot/internal/pipeline"
	"planpilot/internal/research"
	"planpilot/internal/schemas"
	"planpilot/internal/store"
	"planpilot/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a business plan from questionnaire answers",
	Long:  "Reads a JSON file of questionnaire answers, classifies the business stage, gathers market research, generates every plan section, and prints the assembled plan as Markdown. With --save the plan is also persisted.",
	RunE:  runGenerate,
}

var (
	generateAnswersPath string
	generateConfigPath  string
	generateOutPath     string
	generateUserID      string
	generateDatabaseURL string
	generateSave        bool
	generateVerbose     bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateAnswersPath, "answers", "a", "", "Path to questionnaire answers JSON file (required)")
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Path to CLI config JSON file")
	generateCmd.Flags().StringVarP(&generateOutPath, "out", "o", "", "Write the assembled plan to this file instead of stdout")
	generateCmd.Flags().StringVarP(&generateUserID, "user-id", "u", "", "User ID owning the saved plan (required with --save)")
	generateCmd.Flags().StringVar(&generateDatabaseURL, "db-url", "", "Database URL (required with --save)")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Persist the generated plan")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Verbose progress output")

	if err := generateCmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func loadCLIConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if generateConfigPath != "" {
		loaded, err := config.LoadConfig(generateConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.MergeWithEnv()
	merged := cfg.MergeWithDefaults(config.Config{
		Provider: string(llm.ProviderHTTP),
		LogPath:  "logs/planpilot.log",
	})
	if generateVerbose {
		merged.Verbose = true
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func loadAnswers(path string) (types.AnswerSet, error) {
	if err := schemas.ValidateAnswersFile(path); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}

	var answers types.AnswerSet
	if err := json.Unmarshal(content, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers JSON: %w", err)
	}
	return answers, nil
}

func buildGenerationClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	var llmCfg *llm.Config
	switch llm.Provider(cfg.Provider) {
	case llm.ProviderGemini:
		llmCfg = llm.DefaultGeminiConfig()
		if cfg.GenerationAPIKey == "" {
			cfg.GenerationAPIKey = os.Getenv("GEMINI_API_KEY")
		}
	default:
		llmCfg = llm.DefaultConfig()
		llmCfg.BaseURL = cfg.GenerationURL
	}
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}

	return llm.NewClient(ctx, llmCfg, cfg.GenerationAPIKey)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogPath, cfg.Verbose)
	defer func() { _ = log.Sync() }()

	answers, err := loadAnswers(generateAnswersPath)
	if err != nil {
		return err
	}

	researchCfg := research.DefaultConfig()
	if cfg.ResearchBaseURL != "" {
		researchCfg.BaseURL = cfg.ResearchBaseURL
	}
	researcher := research.NewClient(researchCfg, cfg.ResearchAPIKey)

	client, err := buildGenerationClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = client.Close() }()

	generator := generation.NewGenerator(client, generation.WithLogger(log))
	service := pipeline.NewService(researcher, generator, pipeline.WithLogger(log))

	doc, err := service.Generate(ctx, answers)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintClassification(doc.Category,
			pipeline.DeriveBusinessType(answers.Get(types.QuestionBusinessIdea)),
			answers.Get(types.QuestionLocation),
			category.TemplatesFor(doc.Category))
		printer.PrintDocumentSummary(doc)
	}

	if failed := doc.FailedSections(); len(failed) > 0 {
		log.Warn("some sections failed to generate",
			zap.Int("failed_count", len(failed)),
			zap.Strings("sections", failed))
	}

	rendered := renderDocument(doc)
	if generateOutPath != "" {
		if err := os.WriteFile(generateOutPath, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("failed to write plan to %s: %w", generateOutPath, err)
		}
		fmt.Fprintf(os.Stdout, "Plan written to %s (%d sections, %d failed)\n",
			generateOutPath, len(doc.Sections), len(doc.FailedSections()))
	} else {
		fmt.Fprint(os.Stdout, rendered)
	}

	if generateSave {
		return saveDocument(ctx, cfg, doc, log)
	}
	return nil
}

func saveDocument(ctx context.Context, cfg *config.Config, doc *types.BusinessPlanDocument, log *zap.Logger) error {
	dbURL := generateDatabaseURL
	if dbURL == "" {
		dbURL = cfg.DatabaseURL
	}
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL not set (set DATABASE_URL environment variable or use --db-url flag)")
	}

	userIDValue := generateUserID
	if userIDValue == "" {
		userIDValue = cfg.UserID
	}
	if userIDValue == "" {
		return fmt.Errorf("user ID not set (use --user-id flag or PLANPILOT_USER_ID environment variable)")
	}
	userID, err := uuid.Parse(userIDValue)
	if err != nil {
		return fmt.Errorf("invalid user-id: %w", err)
	}

	primary, err := store.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer primary.Close()

	gateway := store.NewGateway(primary, store.NewMemoryStore(), store.WithLogger(log))
	rec, err := gateway.Save(ctx, userID, doc)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	if rec.Fallback {
		fmt.Fprintf(os.Stdout, "Saved plan to in-memory fallback (id: %s); database was unavailable\n", rec.ID)
	} else {
		fmt.Fprintf(os.Stdout, "Saved plan (id: %s)\n", rec.ID)
	}
	return nil
}

// renderDocument assembles the document as Markdown, one heading per section
// in generation order.
func renderDocument(doc *types.BusinessPlanDocument) string {
	var sb strings.Builder
	sb.WriteString("# " + doc.Title + "\n\n")
	sb.WriteString(fmt.Sprintf("*Category: %s — %s*\n\n", doc.Category, doc.Location))
	for _, section := range doc.Sections {
		sb.WriteString("## " + section.Title + "\n\n")
		sb.WriteString(section.Content)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
