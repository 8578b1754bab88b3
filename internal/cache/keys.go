package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix = "user:%d"
	postKeyPrefix = "post:%d"
	postsListKey  = "posts:first-page"
)

// TTLs for cached entities.
const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
	ListTTL = time.Minute
)

// UserKey returns the cache key for a user.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// PostKey returns the cache key for a post.
func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

// PostsListKey returns the cache key for the first page of the public feed.
func PostsListKey() string {
	return postsListKey
}

// Invalidate removes a key. A nil client makes this a no-op.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser removes a user's cache entry.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePost removes a post's cache entry.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidatePostsList removes the cached feed first page.
func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, postsListKey)
}
