package pg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline-dev/threadline/internal/domain"
)

func TestToggleLike(t *testing.T) {
	user := mustCreateUser(t)
	thread := mustCreateThread(t, user.Id)
	comment := mustCreateComment(t, thread.Id, user.Id, "hello")

	t.Run("First toggle counts, second nets out", func(t *testing.T) {
		require.NoError(t, storage.ToggleLike(user.Id, comment.Id))

		counts, err := storage.LikeCountsByCommentIds([]domain.CommentId{comment.Id})
		require.NoError(t, err)
		assert.Equal(t, 1, counts[comment.Id])

		require.NoError(t, storage.ToggleLike(user.Id, comment.Id))

		counts, err = storage.LikeCountsByCommentIds([]domain.CommentId{comment.Id})
		require.NoError(t, err)
		assert.Zero(t, counts[comment.Id])
	})

	t.Run("Counts are per user", func(t *testing.T) {
		other := mustCreateUser(t)
		target := mustCreateComment(t, thread.Id, user.Id, "target")

		require.NoError(t, storage.ToggleLike(user.Id, target.Id))
		require.NoError(t, storage.ToggleLike(other.Id, target.Id))

		counts, err := storage.LikeCountsByCommentIds([]domain.CommentId{target.Id})
		require.NoError(t, err)
		assert.Equal(t, 2, counts[target.Id])
	})

	t.Run("Concurrent toggles serialize on the pair", func(t *testing.T) {
		target := mustCreateComment(t, thread.Id, user.Id, "contended")

		const toggles = 8 // even, so the final state must be unliked
		var wg sync.WaitGroup
		errs := make([]error, toggles)
		for i := 0; i < toggles; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = storage.ToggleLike(user.Id, target.Id)
			}(i)
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err)
		}

		counts, err := storage.LikeCountsByCommentIds([]domain.CommentId{target.Id})
		require.NoError(t, err)
		assert.Zero(t, counts[target.Id])
	})
}

func TestLikeCountsByCommentIds(t *testing.T) {
	user := mustCreateUser(t)
	thread := mustCreateThread(t, user.Id)
	liked := mustCreateComment(t, thread.Id, user.Id, "liked")
	unliked := mustCreateComment(t, thread.Id, user.Id, "never liked")

	require.NoError(t, storage.ToggleLike(user.Id, liked.Id))

	counts, err := storage.LikeCountsByCommentIds([]domain.CommentId{liked.Id, unliked.Id})

	require.NoError(t, err)
	assert.Equal(t, 1, counts[liked.Id])
	_, present := counts[unliked.Id]
	assert.False(t, present, "comments without likes are absent from the map")
}
