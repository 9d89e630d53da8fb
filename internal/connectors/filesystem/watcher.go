package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driving"
	"github.com/custodia-labs/textlens-cli/internal/logger"
)

// textExtensions are the file types treated as ingestible documents.
var textExtensions = map[string]struct{}{
	".txt":      {},
	".md":       {},
	".markdown": {},
	".text":     {},
}

// Watcher mirrors a directory of text files into the document
// collection. Not safe for concurrent Run calls.
type Watcher struct {
	dir      string
	category string
	docs     driving.DocumentService

	mu       sync.Mutex
	ingested map[string]string // file path -> document ID
}

// NewWatcher creates a watcher over dir. Ingested documents carry the
// given category so they can be listed apart from manually added ones.
func NewWatcher(dir string, category string, docs driving.DocumentService) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat watch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, dir)
	}

	return &Watcher{
		dir:      dir,
		category: category,
		docs:     docs,
		ingested: make(map[string]string),
	}, nil
}

// SyncExisting ingests the text files already present in the directory.
// Subdirectories are not descended into.
func (w *Watcher) SyncExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("reading watch directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.dir, entry.Name())
		if !w.ingestible(path) {
			continue
		}
		if err := w.Ingest(ctx, path); err != nil {
			logger.Warn("watch: skipping %s: %v", path, err)
		}
	}
	return nil
}

// Run watches the directory and applies file events to the collection.
// It blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	logger.Info("watching %s for text files", w.dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if err := w.handleEvent(ctx, event); err != nil {
				logger.Warn("watch: %s: %v", event.Name, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleEvent applies a single filesystem event. Creates and writes
// ingest the file; removes and renames drop the document.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) error {
	switch {
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		return w.Remove(ctx, event.Name)
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		if !w.ingestible(event.Name) {
			return nil
		}
		if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
			return nil
		}
		return w.Ingest(ctx, event.Name)
	default:
		// Chmod and other operations carry no content change.
		return nil
	}
}

// Ingest adds the file as a document, or updates the existing document
// when the file was ingested before.
func (w *Watcher) Ingest(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	content := string(data)
	title := titleFromPath(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if id, ok := w.ingested[path]; ok {
		_, err := w.docs.Update(ctx, id, domain.DocumentUpdate{
			Title:   &title,
			Content: &content,
		})
		if err != nil {
			return fmt.Errorf("updating document: %w", err)
		}
		logger.Debug("watch: updated %s -> %s", path, id)
		return nil
	}

	doc, err := w.docs.Add(ctx, driving.AddDocumentInput{
		Title:    title,
		Content:  content,
		Category: w.category,
		Metadata: map[string]any{"path": path},
	})
	if err != nil {
		return fmt.Errorf("adding document: %w", err)
	}
	w.ingested[path] = doc.ID
	logger.Debug("watch: ingested %s -> %s", path, doc.ID)
	return nil
}

// Remove deletes the document previously ingested from path. Unknown
// paths are ignored.
func (w *Watcher) Remove(ctx context.Context, path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	id, ok := w.ingested[path]
	if !ok {
		return nil
	}
	delete(w.ingested, path)

	if _, err := w.docs.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	logger.Debug("watch: removed %s (%s)", path, id)
	return nil
}

// DocumentID reports the document ingested from path, if any.
func (w *Watcher) DocumentID(path string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id, ok := w.ingested[path]
	return id, ok
}

// ingestible reports whether path names a visible text file.
func (w *Watcher) ingestible(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	_, ok := textExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// titleFromPath derives a document title from the file name, minus the
// extension.
func titleFromPath(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
