//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_index.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abadojack/whatlanggo"
	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

type ISearchIndex interface {
	Index(message DiskMessage) error
	Remove(id uuid.UUID) error
	Search(ctx context.Context, query SearchQuery) ([]uuid.UUID, error)
}

type SearchQuery struct {
	WorkspaceID uuid.UUID
	Terms       string
	Lang        string
	Limit       int
}

// SearchIndex is the full-text index of live messages, one document per message.
type SearchIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchIndex(writer *bluge.Writer, log *slog.Logger) SearchIndex {
	return SearchIndex{writer: writer, log: log}
}

const (
	fieldWorkspace = "workspace"
	fieldBody      = "body"
	fieldLang      = "lang"
	fieldCreatedAt = "created_at"
)

// Index adds or replaces the document of the message.
// The detected language is stored as an ISO 639-1 code.
func (s SearchIndex) Index(message DiskMessage) error {
	lang := detectLang(message.Body)
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField(fieldWorkspace, message.WorkspaceID.String())).
		AddField(bluge.NewTextField(fieldBody, message.Body)).
		AddField(bluge.NewKeywordField(fieldLang, lang)).
		AddField(bluge.NewDateTimeField(fieldCreatedAt, message.CreatedAt).Sortable())
	if err := s.writer.Update(bluge.Identifier(message.ID.String()), doc); err != nil {
		return fmt.Errorf("index message %s: %w", message.ID, err)
	}
	s.log.Debug("message indexed", "id", message.ID, "lang", lang)
	return nil
}

func (s SearchIndex) Remove(id uuid.UUID) error {
	return s.writer.Delete(bluge.Identifier(id.String()))
}

// Search returns matching message ids, best match first.
func (s SearchIndex) Search(ctx context.Context, query SearchQuery) ([]uuid.UUID, error) {
	reader, err := s.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.log.Warn("unable to close search reader", "error", err)
		}
	}()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query.Terms).SetField(fieldBody)).
		AddMust(bluge.NewTermQuery(query.WorkspaceID.String()).SetField(fieldWorkspace))
	if query.Lang != "" {
		q.AddMust(bluge.NewTermQuery(query.Lang).SetField(fieldLang))
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	match, err := iterator.Next()
	for err == nil && match != nil {
		var visitErr error
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field != "_id" {
				return true
			}
			id, parseErr := uuid.Parse(string(value))
			if parseErr != nil {
				visitErr = parseErr
				return false
			}
			ids = append(ids, id)
			return false
		})
		if err == nil {
			err = visitErr
		}
		if err != nil {
			break
		}
		match, err = iterator.Next()
	}
	return ids, err
}

func detectLang(body string) string {
	info := whatlanggo.Detect(body)
	if !info.IsReliable() {
		return "und"
	}
	return info.Lang.Iso6391()
}
