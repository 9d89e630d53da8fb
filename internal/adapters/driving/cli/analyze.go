package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze text from an argument or stdin",
	Long: `Runs the full analysis pipeline over the given text: sentiment,
keywords, readability, and statistics. Reads stdin when no argument is
given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	analysis, err := analysisService.AnalyzeText(context.Background(), text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		return outputAnalysisJSON(cmd, analysis)
	}
	outputAnalysisText(cmd, analysis)
	return nil
}

func outputAnalysisJSON(cmd *cobra.Command, analysis *domain.Analysis) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnalysisText(cmd *cobra.Command, analysis *domain.Analysis) {
	cmd.Println("Sentiment:")
	cmd.Printf("  Classification: %s\n", analysis.Sentiment.Classification)
	cmd.Printf("  Score:          %.2f\n", analysis.Sentiment.Score)
	cmd.Printf("  Comparative:    %.4f\n", analysis.Sentiment.Comparative)
	if len(analysis.Sentiment.Positive) > 0 {
		cmd.Printf("  Positive words: %s\n", strings.Join(analysis.Sentiment.Positive, ", "))
	}
	if len(analysis.Sentiment.Negative) > 0 {
		cmd.Printf("  Negative words: %s\n", strings.Join(analysis.Sentiment.Negative, ", "))
	}
	cmd.Println()

	cmd.Println("Keywords:")
	if len(analysis.Keywords) == 0 {
		cmd.Println("  (none)")
	}
	for _, kw := range analysis.Keywords {
		cmd.Printf("  %-20s freq=%d importance=%.0f\n", kw.Term, kw.Frequency, kw.Importance)
	}
	cmd.Println()

	cmd.Println("Readability:")
	cmd.Printf("  Flesch-Kincaid: %.2f\n", analysis.Readability.FleschKincaid)
	cmd.Printf("  Grade level:    %s\n", analysis.Readability.GradeLevel)
	cmd.Printf("  Complexity:     %s\n", analysis.Readability.Complexity)
	cmd.Println()

	cmd.Println("Statistics:")
	cmd.Printf("  Words:                %d\n", analysis.Stats.WordCount)
	cmd.Printf("  Sentences:            %d\n", analysis.Stats.SentenceCount)
	cmd.Printf("  Paragraphs:           %d\n", analysis.Stats.ParagraphCount)
	cmd.Printf("  Unique words:         %d\n", analysis.Stats.UniqueWordCount)
	cmd.Printf("  Avg words/sentence:   %.2f\n", analysis.Stats.AvgWordsPerSentence)
	cmd.Printf("  Vocabulary diversity: %.3f\n", analysis.Stats.VocabularyDiversity)
}
