package search

import (
	"context"
	"fmt"
	"log/slog"
	"whisperwall/contract"
	"whisperwall/domain"

	"github.com/blugelabs/bluge"
)

var _ contract.IWhisperIndex = (*WhisperIndex)(nil)

const (
	fieldContent   = "content"
	fieldZone      = "zone"
	fieldEmotion   = "emotion"
	fieldCreatedAt = "created_at"
	fieldID        = "_id"
)

// WhisperIndex keeps a bluge index of whisper content. The stored whispers stay
// the source of truth: hits are ids, expired ones are dropped when hydrated.
type WhisperIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewWhisperIndex(writer *bluge.Writer, log *slog.Logger) *WhisperIndex {
	return &WhisperIndex{writer: writer, log: log}
}

func (i *WhisperIndex) Index(w domain.Whisper) error {
	doc := bluge.NewDocument(w.ID).
		AddField(bluge.NewTextField(fieldContent, w.Content)).
		AddField(bluge.NewKeywordField(fieldZone, string(w.Zone))).
		AddField(bluge.NewKeywordField(fieldEmotion, string(w.Emotion))).
		AddField(bluge.NewDateTimeField(fieldCreatedAt, w.CreatedAt).Sortable())
	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("indexing whisper %s: %w", w.ID, err)
	}
	return nil
}

func (i *WhisperIndex) Delete(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	batch := bluge.NewBatch()
	for _, id := range ids {
		batch.Delete(bluge.Identifier(id))
	}
	return i.writer.Batch(batch)
}

// Search matches any of the terms in the content, optionally restricted to one zone.
// Hits are ordered by score, then newest first.
func (i *WhisperIndex) Search(ctx context.Context, q domain.SearchQuery) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	var text bluge.Query = bluge.NewMatchAllQuery()
	if q.Terms != "" {
		text = bluge.NewMatchQuery(q.Terms).SetField(fieldContent)
	}
	query := bluge.NewBooleanQuery().AddMust(text)
	if q.Zone != nil {
		query.AddMust(bluge.NewTermQuery(string(*q.Zone)).SetField(fieldZone))
	}

	request := bluge.NewTopNSearch(q.Limit, query).SortBy([]string{"-_score", "-" + fieldCreatedAt})
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", q.Terms, err)
	}

	var ids []string
	match, err := matches.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == fieldID {
				ids = append(ids, string(value))
				return false
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	i.log.Debug("Whisper search", "terms", q.Terms, "hits", len(ids))
	return ids, nil
}
