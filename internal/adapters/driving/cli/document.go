package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driving"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage the document collection",
	Long:  `Add, list, view, update, delete, or analyze stored documents.`,
}

var documentAddCmd = &cobra.Command{
	Use:   "add [title] [content]",
	Short: "Add a document",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentAdd,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentUpdateCmd = &cobra.Command{
	Use:   "update [doc-id]",
	Short: "Update fields of a document",
	Long:  `Updates only the fields given as flags; everything else keeps its value.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentUpdate,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

var documentAnalyzeCmd = &cobra.Command{
	Use:   "analyze [doc-id]",
	Short: "Analyze a stored document",
	Long:  `Runs the analysis pipeline over a stored document. Results are cached until the document changes.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentAnalyze,
}

// Flags for add and update.
var (
	docAuthor   string
	docCategory string
	docTags     []string

	updateTitle    string
	updateContent  string
	updateAuthor   string
	updateCategory string
	updateTags     []string

	listCategory string
	listAuthor   string
	listLimit    int
)

func init() {
	documentAddCmd.Flags().StringVarP(&docAuthor, "author", "a", "", "document author")
	documentAddCmd.Flags().StringVarP(&docCategory, "category", "c", "", "document category")
	documentAddCmd.Flags().StringSliceVarP(&docTags, "tag", "t", nil, "document tag (repeatable)")

	documentUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	documentUpdateCmd.Flags().StringVar(&updateContent, "content", "", "new content")
	documentUpdateCmd.Flags().StringVar(&updateAuthor, "author", "", "new author")
	documentUpdateCmd.Flags().StringVar(&updateCategory, "category", "", "new category")
	documentUpdateCmd.Flags().StringSliceVar(&updateTags, "tag", nil, "replacement tag list (repeatable)")

	documentListCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category")
	documentListCmd.Flags().StringVarP(&listAuthor, "author", "a", "", "filter by author")
	documentListCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "maximum documents to show (0 = all)")

	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentUpdateCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	documentCmd.AddCommand(documentAnalyzeCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Add(context.Background(), driving.AddDocumentInput{
		Title:    args[0],
		Content:  args[1],
		Author:   docAuthor,
		Category: docCategory,
		Tags:     docTags,
	})
	if err != nil {
		return fmt.Errorf("failed to add document: %w", err)
	}

	cmd.Printf("Added document %s\n", doc.ID)
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	var (
		docs []domain.Document
		err  error
	)
	switch {
	case listCategory != "":
		docs, err = documentService.ListByCategory(ctx, listCategory)
	case listAuthor != "":
		docs, err = documentService.ListByAuthor(ctx, listAuthor)
	default:
		docs, err = documentService.List(ctx, listLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		if docs[i].Author != "" {
			cmd.Printf("    Author: %s\n", docs[i].Author)
		}
		if docs[i].Category != "" {
			cmd.Printf("    Category: %s\n", docs[i].Category)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:    %s\n", doc.Title)
	if doc.Author != "" {
		cmd.Printf("  Author:   %s\n", doc.Author)
	}
	if doc.Category != "" {
		cmd.Printf("  Category: %s\n", doc.Category)
	}
	if len(doc.Tags) > 0 {
		cmd.Printf("  Tags:     %v\n", doc.Tags)
	}
	cmd.Printf("  Created:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:  %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))
	cmd.Println()
	cmd.Println(doc.Content)
	return nil
}

func runDocumentUpdate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	update := domain.DocumentUpdate{Tags: updateTags}
	if cmd.Flags().Changed("title") {
		update.Title = &updateTitle
	}
	if cmd.Flags().Changed("content") {
		update.Content = &updateContent
	}
	if cmd.Flags().Changed("author") {
		update.Author = &updateAuthor
	}
	if cmd.Flags().Changed("category") {
		update.Category = &updateCategory
	}

	doc, err := documentService.Update(context.Background(), args[0], update)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	cmd.Printf("Updated document %s\n", doc.ID)
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	deleted, err := documentService.Delete(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if !deleted {
		cmd.Printf("No document with ID %s\n", args[0])
		return nil
	}
	cmd.Printf("Deleted document %s\n", args[0])
	return nil
}

func runDocumentAnalyze(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	analysis, err := documentService.Analyze(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to analyze document: %w", err)
	}

	cmd.Printf("Analysis for %s (computed %s)\n\n",
		analysis.DocumentID, analysis.AnalysisDate.Format("2006-01-02 15:04:05"))
	outputAnalysisText(cmd, analysis)
	return nil
}
