package domain

import "time"

// ThreadCreationData iterates thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title ThreadTitle
	Body  ThreadBody
	Owner UserId
}

// CreatedThread is the public view returned after creation.
type CreatedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

// ThreadMetadata is the thread record without its comment tree.
type ThreadMetadata struct {
	Id        ThreadId    `json:"id"`
	Title     ThreadTitle `json:"title"`
	Body      ThreadBody  `json:"body"`
	Username  Username    `json:"username"`
	CreatedAt time.Time   `json:"date"`
}

// ThreadDetail is the full aggregate: thread metadata plus ordered
// comments, each carrying its ordered replies and like count.
type ThreadDetail struct {
	ThreadMetadata
	Comments []CommentDetail `json:"comments"`
}
