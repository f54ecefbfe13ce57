package domain

import "time"

type ReplyCreationData struct {
	CommentId CommentId
	Owner     UserId
	Content   Content
}

type CreatedReply struct {
	Id      ReplyId `json:"id"`
	Content Content `json:"content"`
	Owner   UserId  `json:"owner"`
}

// ReplyRecord is a raw storage row, keyed by its parent comment so
// batched fetches can be regrouped during view assembly.
type ReplyRecord struct {
	Id        ReplyId
	CommentId CommentId
	Username  Username
	Content   Content
	CreatedAt time.Time
	DeletedAt *time.Time
}

func (r *ReplyRecord) IsDeleted() bool {
	return r.DeletedAt != nil
}

// ReplyDetail is the outward-facing view of a reply within a comment.
type ReplyDetail struct {
	Id        ReplyId   `json:"id"`
	Username  Username  `json:"username"`
	Content   Content   `json:"content"`
	CreatedAt time.Time `json:"date"`
}
