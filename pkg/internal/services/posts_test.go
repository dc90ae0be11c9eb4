package services_test

import (
	"testing"
	"time"

	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
	"github.com/likelion-vlog/server/pkg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	setupStore(t)
	author := createUserWithBlog(t, "alice")

	post, tags, err := services.NewPost(author.ID, "T1", "C1", []string{"go", "infra"})
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, author.Blog.ID, post.BlogID)
	assert.Equal(t, []string{"go", "infra"}, tags)
	assert.Zero(t, post.ViewCount)
}

func TestNewPostReusesExistingTags(t *testing.T) {
	setupStore(t)
	author := createUserWithBlog(t, "alice")

	_, _, err := services.NewPost(author.ID, "first", "C1", []string{"go", "infra"})
	require.NoError(t, err)
	_, _, err = services.NewPost(author.ID, "second", "C2", []string{"go"})
	require.NoError(t, err)

	var goTags int64
	require.NoError(t, database.C.Model(&models.Tag{}).Where("title = ?", "go").Count(&goTags).Error)
	assert.EqualValues(t, 1, goTags)
}

func TestNewPostResolutionFailures(t *testing.T) {
	setupStore(t)
	blogless := createUser(t, "nomad")

	var notFound *services.NotFoundError

	_, _, err := services.NewPost(9999, "T", "C", nil)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.Subject)

	_, _, err = services.NewPost(blogless.ID, "T", "C", nil)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "blog", notFound.Subject)

	// Nothing was persisted along either failure path.
	var posts int64
	require.NoError(t, database.C.Model(&models.Post{}).Count(&posts).Error)
	assert.Zero(t, posts)
}

func TestEditPostReplacesTagSet(t *testing.T) {
	setupStore(t)
	author := createUserWithBlog(t, "alice")

	post, _, err := services.NewPost(author.ID, "T", "C", []string{"a", "b"})
	require.NoError(t, err)

	_, tags, err := services.EditPost(post.ID, author.ID, "T2", "C2", []string{"b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, tags)

	names, err := services.PostTagNames(post)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)

	// Detached, not deleted: the tag itself survives for reuse.
	var aTags int64
	require.NoError(t, database.C.Model(&models.Tag{}).Where("title = ?", "a").Count(&aTags).Error)
	assert.EqualValues(t, 1, aTags)

	edited, err := services.GetPost(database.C, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", edited.Title)
	assert.Equal(t, "C2", edited.Content)
	assert.WithinDuration(t, post.CreatedAt, edited.CreatedAt, time.Second)
}

func TestEditPostClearsTags(t *testing.T) {
	setupStore(t)
	author := createUserWithBlog(t, "alice")

	post, _, err := services.NewPost(author.ID, "T", "C", []string{"a", "b"})
	require.NoError(t, err)

	_, tags, err := services.EditPost(post.ID, author.ID, "T", "C", nil)
	require.NoError(t, err)
	assert.Empty(t, tags)

	var mappings int64
	require.NoError(t, database.C.Model(&models.TagMap{}).Where("post_id = ?", post.ID).Count(&mappings).Error)
	assert.Zero(t, mappings)
}

func TestMutationsRequireOwnership(t *testing.T) {
	setupStore(t)
	author := createUserWithBlog(t, "alice")
	intruder := createUserWithBlog(t, "mallory")

	post, _, err := services.NewPost(author.ID, "T", "C", nil)
	require.NoError(t, err)

	var forbidden *services.ForbiddenError

	_, _, err = services.EditPost(post.ID, intruder.ID, "X", "Y", nil)
	require.ErrorAs(t, err, &forbidden)

	err = services.DeletePost(post.ID, intruder.ID)
	require.ErrorAs(t, err, &forbidden)

	// The owner is still allowed to do both.
	_, _, err = services.EditPost(post.ID, author.ID, "X", "Y", nil)
	require.NoError(t, err)
	require.NoError(t, services.DeletePost(post.ID, author.ID))
}

func TestMutationsOnMissingPost(t *testing.T) {
	setupStore(t)
	author := createUserWithBlog(t, "alice")

	var notFound *services.NotFoundError

	_, _, err := services.EditPost(404, author.ID, "X", "Y", nil)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "post", notFound.Subject)

	err = services.DeletePost(404, author.ID)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "post", notFound.Subject)
}

func TestDeletePostCascades(t *testing.T) {
	setupStore(t)
	author := createUserWithBlog(t, "alice")
	fan := createUserWithBlog(t, "bob")

	post, _, err := services.NewPost(author.ID, "T", "C", []string{"go"})
	require.NoError(t, err)
	_, err = services.ToggleLike(fan.ID, post.ID)
	require.NoError(t, err)
	createComment(t, post.ID, fan.ID, "hello", nil)

	require.NoError(t, services.DeletePost(post.ID, author.ID))

	_, err = services.GetPost(database.C, post.ID)
	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)

	for probe, model := range map[string]any{
		"tag_maps": &models.TagMap{},
		"likes":    &models.Like{},
		"comments": &models.Comment{},
	} {
		var count int64
		require.NoError(t, database.C.Model(model).Where("post_id = ?", post.ID).Count(&count).Error)
		assert.Zero(t, count, "orphaned rows left in %s", probe)
	}
}
