package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"go.uber.org/zap"
)

type IndexingServiceInterface interface {
	IndexDocument(indexName, id string, document interface{}) error
	BulkIndexDocuments(indexName string, documents map[string]interface{}) error
	DeleteDocument(indexName, id string) error
	SearchIndex(indexName string, q query.Query, size int) (*bleve.SearchResult, error)
	UpdateDocument(indexName, id string, document interface{}) error
	DeleteIndex(indexName string) error
	IndexExists(indexName string) (bool, error)
	DeleteAllIndices() error
}

// IndexingService keeps one bleve index per content collection under
// basePath. The aggregator fans searches out concurrently, so index lookup
// is guarded by a mutex.
type IndexingService struct {
	mu       sync.RWMutex
	indexes  map[string]bleve.Index
	logger   *zap.Logger
	basePath string
}

func NewIndexingService(logger *zap.Logger, basePath string) *IndexingService {
	return &IndexingService{
		indexes:  make(map[string]bleve.Index),
		logger:   logger,
		basePath: basePath,
	}
}

func (s *IndexingService) getOrCreateIndex(indexName string) (bleve.Index, error) {
	s.mu.RLock()
	idx, ok := s.indexes[indexName]
	s.mu.RUnlock()
	if ok {
		return idx, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx, ok := s.indexes[indexName]; ok {
		return idx, nil
	}

	fullPath := fmt.Sprintf("%s/%s.bleve", s.basePath, indexName)

	// Default mapping; documents are indexed as flat field maps so all
	// stored fields come back on hits.
	mapping := bleve.NewIndexMapping()

	idx, err := bleve.Open(fullPath)
	if err != nil {
		// Index does not exist yet, create a new one
		idx, err = bleve.New(fullPath, mapping)
		if err != nil {
			return nil, fmt.Errorf("failed to create index %s: %w", fullPath, err)
		}
	}

	s.indexes[indexName] = idx
	return idx, nil
}

// SearchIndex performs a search and requests stored fields to be included
func (s *IndexingService) SearchIndex(indexName string, q query.Query, size int) (*bleve.SearchResult, error) {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return nil, err
	}

	searchRequest := bleve.NewSearchRequestOptions(q, size, 0, false)
	searchRequest.Fields = []string{"*"} // Fetch all stored fields

	searchResult, err := idx.Search(searchRequest)
	if err != nil {
		s.logger.Error("Search failed", zap.String("index", indexName), zap.Error(err))
		return nil, err
	}

	return searchResult, nil
}

func (s *IndexingService) IndexDocument(indexName, id string, document interface{}) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return err
	}

	if err := idx.Index(id, document); err != nil {
		s.logger.Error("Failed to index document", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *IndexingService) BulkIndexDocuments(indexName string, documents map[string]interface{}) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return err
	}

	batch := idx.NewBatch()
	for id, doc := range documents {
		if err := batch.Index(id, doc); err != nil {
			s.logger.Error("Failed to add doc to batch", zap.String("id", id), zap.Error(err))
			return err
		}
	}

	if err := idx.Batch(batch); err != nil {
		s.logger.Error("Failed to execute batch", zap.Error(err))
		return err
	}

	s.logger.Info("Successfully bulk indexed documents",
		zap.String("index", indexName),
		zap.Int("count", len(documents)))
	return nil
}

func (s *IndexingService) DeleteDocument(indexName, id string) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return err
	}

	if err := idx.Delete(id); err != nil {
		s.logger.Error("Failed to delete document", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// UpdateDocument replaces a document by delete-then-index
func (s *IndexingService) UpdateDocument(indexName, id string, document interface{}) error {
	if err := s.DeleteDocument(indexName, id); err != nil {
		return fmt.Errorf("failed to delete existing document for update: %w", err)
	}

	if err := s.IndexDocument(indexName, id, document); err != nil {
		return fmt.Errorf("failed to re-index updated document: %w", err)
	}

	return nil
}

func (s *IndexingService) DeleteIndex(indexName string) error {
	s.mu.Lock()
	idx, exists := s.indexes[indexName]
	if exists {
		delete(s.indexes, indexName)
	}
	s.mu.Unlock()

	if exists {
		if err := idx.Close(); err != nil {
			s.logger.Error("Failed to close index before deletion",
				zap.String("index_name", indexName),
				zap.Error(err))
			return fmt.Errorf("failed to close index: %w", err)
		}
	}

	fullPath := fmt.Sprintf("%s/%s.bleve", s.basePath, indexName)
	if err := os.RemoveAll(fullPath); err != nil {
		s.logger.Error("Failed to delete index files",
			zap.String("path", fullPath),
			zap.Error(err))
		return fmt.Errorf("failed to delete index files: %w", err)
	}

	s.logger.Info("Successfully deleted index", zap.String("index_name", indexName))
	return nil
}

func (s *IndexingService) IndexExists(indexName string) (bool, error) {
	fullPath := fmt.Sprintf("%s/%s.bleve", s.basePath, indexName)
	_, err := os.Stat(fullPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *IndexingService) DeleteAllIndices() error {
	s.mu.Lock()
	knownIndices := make([]string, 0, len(s.indexes))
	for indexName := range s.indexes {
		knownIndices = append(knownIndices, indexName)
	}
	s.mu.Unlock()

	var errorsOccurred []error

	for _, indexName := range knownIndices {
		if err := s.DeleteIndex(indexName); err != nil {
			errorsOccurred = append(errorsOccurred, err)
		}
	}

	// Remove index directories left over from earlier runs
	files, err := filepath.Glob(filepath.Join(s.basePath, "*.bleve"))
	if err != nil {
		s.logger.Error("Failed to scan for index files",
			zap.String("path", s.basePath),
			zap.Error(err))
		return fmt.Errorf("failed to scan index directory: %w", err)
	}

	for _, file := range files {
		indexName := strings.TrimSuffix(filepath.Base(file), ".bleve")
		s.mu.RLock()
		_, known := s.indexes[indexName]
		s.mu.RUnlock()
		if !known {
			if err := os.RemoveAll(file); err != nil {
				errorsOccurred = append(errorsOccurred, err)
				continue
			}
			s.logger.Info("Deleted orphaned index files",
				zap.String("index_name", indexName))
		}
	}

	if len(errorsOccurred) > 0 {
		return fmt.Errorf("%d errors occurred while deleting indices", len(errorsOccurred))
	}

	return nil
}
