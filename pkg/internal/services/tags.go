package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/likelion-vlog/server/pkg/internal/cache"
	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func tagCacheKey(title string) string {
	return fmt.Sprintf("tag#%s", title)
}

// GetTagOrCreate resolves a tag by exact title, creating it when absent.
// Two callers racing on the same new title both hit the unique index on
// tags.title; the loser's insert is absorbed with ON CONFLICT DO NOTHING
// so the enclosing transaction stays usable, then the winner's row is
// fetched. A plain unique-violation here would abort the caller's whole
// transaction on postgres.
func GetTagOrCreate(tx *gorm.DB, title string) (models.Tag, error) {
	marshal := marshaler.New(cache.New[any](localCache.S))
	ctx := context.Background()

	if hit, err := marshal.Get(ctx, tagCacheKey(title), new(models.Tag)); err == nil {
		return *hit.(*models.Tag), nil
	}

	var tag models.Tag
	if err := tx.Where("title = ?", title).First(&tag).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return tag, err
		}

		tag = models.Tag{Title: title}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error; err != nil {
			return tag, err
		}
		if tag.ID == 0 {
			// Lost the create race; the winner's row must be there now.
			if err := tx.Where("title = ?", title).First(&tag).Error; err != nil {
				return tag, err
			}
		}
		return tag, nil
	}

	// A row read inside a caller's open transaction may never commit;
	// only plain reads feed the cache.
	if tx == database.C {
		_ = marshal.Set(
			ctx,
			tagCacheKey(title),
			tag,
			store.WithExpiration(5*time.Minute),
			store.WithTags([]string{"tags"}),
		)
	}

	return tag, nil
}

// SyncPostTags attaches the named tags to a post, creating missing tags
// on the way. It always creates a mapping row per name; idempotence
// within one update is the caller's job via the preceding bulk delete.
func SyncPostTags(tx *gorm.DB, post models.Post, names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	if len(names) == 0 {
		return out, nil
	}

	for _, name := range names {
		tag, err := GetTagOrCreate(tx, name)
		if err != nil {
			return out, err
		}
		if err := tx.Create(&models.TagMap{PostID: post.ID, TagID: tag.ID}).Error; err != nil {
			return out, err
		}
		out = append(out, tag.Title)
	}

	return out, nil
}

// PostTagNames extracts the tag titles attached to one post through the
// mapping relation. Order follows store iteration order.
func PostTagNames(post models.Post) ([]string, error) {
	names := make([]string, 0)
	if err := database.C.Model(&models.TagMap{}).
		Joins("JOIN tags ON tags.id = tag_maps.tag_id").
		Where("tag_maps.post_id = ?", post.ID).
		Pluck("tags.title", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// BatchPostTagNames does the same for a whole page of posts in one query.
func BatchPostTagNames(idx []uint) (map[uint][]string, error) {
	out := map[uint][]string{}
	if len(idx) == 0 {
		return out, nil
	}

	var rows []struct {
		PostID uint
		Title  string
	}
	if err := database.C.Model(&models.TagMap{}).
		Select("tag_maps.post_id as post_id, tags.title as title").
		Joins("JOIN tags ON tags.id = tag_maps.tag_id").
		Where("tag_maps.post_id IN ?", idx).
		Scan(&rows).Error; err != nil {
		return out, err
	}

	for _, row := range rows {
		out[row.PostID] = append(out[row.PostID], row.Title)
	}
	return out, nil
}
