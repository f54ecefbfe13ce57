package domain

import "time"

type CommentCreationData struct {
	ThreadId ThreadId
	Owner    UserId
	Content  Content
}

type CreatedComment struct {
	Id      CommentId `json:"id"`
	Content Content   `json:"content"`
	Owner   UserId    `json:"owner"`
}

// CommentRecord is a raw storage row, soft-delete marker included.
// Display masking happens at view assembly, never here.
type CommentRecord struct {
	Id        CommentId
	Username  Username
	Content   Content
	CreatedAt time.Time
	DeletedAt *time.Time
}

func (c *CommentRecord) IsDeleted() bool {
	return c.DeletedAt != nil
}

// CommentDetail is the outward-facing view of a comment within a thread.
type CommentDetail struct {
	Id        CommentId     `json:"id"`
	Username  Username      `json:"username"`
	Content   Content       `json:"content"`
	CreatedAt time.Time     `json:"date"`
	LikeCount int           `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}
