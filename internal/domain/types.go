package domain

type (
	UserId   = string
	Username = string
	Password = string

	ThreadId    = string
	ThreadTitle = string
	ThreadBody  = string

	CommentId = string
	ReplyId   = string
	Content   = string
)
