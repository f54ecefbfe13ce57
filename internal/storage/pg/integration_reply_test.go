package pg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline-dev/threadline/internal/domain"
	internal_errors "github.com/threadline-dev/threadline/internal/errors"
)

func TestCreateReply(t *testing.T) {
	user := mustCreateUser(t)
	thread := mustCreateThread(t, user.Id)
	comment := mustCreateComment(t, thread.Id, user.Id, "hello")

	created := mustCreateReply(t, comment.Id, user.Id, "a reply")

	assert.True(t, strings.HasPrefix(string(created.Id), "reply-"))
	assert.Equal(t, user.Id, created.Owner)
}

func TestReplyInComment(t *testing.T) {
	user := mustCreateUser(t)
	thread := mustCreateThread(t, user.Id)
	comment := mustCreateComment(t, thread.Id, user.Id, "hello")
	otherComment := mustCreateComment(t, thread.Id, user.Id, "other")
	reply := mustCreateReply(t, comment.Id, user.Id, "a reply")

	t.Run("Reply under its own comment", func(t *testing.T) {
		assert.NoError(t, storage.ReplyInComment(comment.Id, reply.Id))
	})

	t.Run("Reply under a different comment is not found", func(t *testing.T) {
		err := storage.ReplyInComment(otherComment.Id, reply.Id)
		assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))
	})
}

func TestReplyOwner(t *testing.T) {
	user := mustCreateUser(t)
	thread := mustCreateThread(t, user.Id)
	comment := mustCreateComment(t, thread.Id, user.Id, "hello")
	reply := mustCreateReply(t, comment.Id, user.Id, "a reply")

	owner, err := storage.ReplyOwner(reply.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Id, owner)

	_, err = storage.ReplyOwner("reply-missing")
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))
}

func TestRepliesByCommentIds(t *testing.T) {
	user := mustCreateUser(t)
	thread := mustCreateThread(t, user.Id)
	first := mustCreateComment(t, thread.Id, user.Id, "first")
	second := mustCreateComment(t, thread.Id, user.Id, "second")

	replyA := mustCreateReply(t, first.Id, user.Id, "to first")
	replyB := mustCreateReply(t, second.Id, user.Id, "to second")
	require.NoError(t, storage.SoftDeleteReply(replyB.Id))

	// A reply under an unrelated comment must not leak in.
	unrelated := mustCreateComment(t, thread.Id, user.Id, "unrelated")
	mustCreateReply(t, unrelated.Id, user.Id, "elsewhere")

	records, err := storage.RepliesByCommentIds([]domain.CommentId{first.Id, second.Id})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, replyA.Id, records[0].Id)
	assert.Equal(t, first.Id, records[0].CommentId)
	assert.Nil(t, records[0].DeletedAt)
	assert.Equal(t, replyB.Id, records[1].Id)
	assert.NotNil(t, records[1].DeletedAt)
	assert.Equal(t, domain.Content("to second"), records[1].Content, "stored content survives soft delete")
}
