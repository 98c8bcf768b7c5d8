package search

import (
	"fmt"

	"donation-service/src/pkg/log"

	"github.com/blevesearch/bleve/v2"
	"github.com/puzpuzpuz/xsync"
)

const (
	EmergencyDoc = "emergency"
	RewardDoc    = "reward"
)

type EmergencyData struct {
	Title       string
	Description string
}

type RewardData struct {
	Title       string
	Description string
	Type        string
}

type Hit struct {
	ID    string
	Title string
	Score float64
}

// Index keeps one in-memory bleve index per document kind. Titles are kept
// alongside so hits can be rendered without a repository round trip.
type Index struct {
	log     log.Log
	indexes *xsync.MapOf[string, bleve.Index]
	titles  *xsync.MapOf[string, string]
}

func NewIndex(logger log.Log) *Index {
	return &Index{
		log:     logger,
		indexes: xsync.NewMapOf[bleve.Index](),
		titles:  xsync.NewMapOf[string](),
	}
}

func (i *Index) Index(document, id, title string, data any) error {
	index, err := i.getIndexByDocument(document)
	if err != nil {
		return err
	}

	record, err := index.Document(id)
	if err != nil {
		return err
	}

	// Delete if the record existed.
	if record != nil {
		if err := index.Delete(id); err != nil {
			return err
		}
	}

	if err := index.Index(id, data); err != nil {
		return err
	}
	i.titles.Store(titleKey(document, id), title)
	return nil
}

func (i *Index) Delete(document, id string) error {
	index, err := i.getIndexByDocument(document)
	if err != nil {
		return err
	}

	i.titles.Delete(titleKey(document, id))
	return index.Delete(id)
}

func (i *Index) Search(document, query string, limit int) ([]Hit, error) {
	index, err := i.getIndexByDocument(document)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	searchResults, err := index.Search(req)
	if err != nil {
		return nil, err
	}

	hits := []Hit{}
	for _, match := range searchResults.Hits {
		title, _ := i.titles.Load(titleKey(document, match.ID))
		hits = append(hits, Hit{ID: match.ID, Title: title, Score: match.Score})
	}

	return hits, nil
}

func (i *Index) Close() {
	i.log.Info("search-index", "closing all indexers", "Close", "")

	i.indexes.Range(func(document string, index bleve.Index) bool {
		if err := index.Close(); err != nil {
			i.log.Error("search-index", err.Error(), "Close", document)
		}

		return true
	})
}

func (i *Index) getIndexByDocument(document string) (bleve.Index, error) {
	if index, ok := i.indexes.Load(document); ok {
		return index, nil
	}

	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, err
	}
	actual, loaded := i.indexes.LoadOrStore(document, index)
	if loaded {
		_ = index.Close()
	} else {
		i.log.Info("search-index", "a new document index is added", "getIndexByDocument", document)
	}
	return actual, nil
}

func titleKey(document, id string) string {
	return fmt.Sprintf("%s:%s", document, id)
}
