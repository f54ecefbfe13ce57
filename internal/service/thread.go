package service

import (
	"sort"
	"sync"

	"github.com/threadline-dev/threadline/internal/domain"
)

type ThreadService interface {
	Create(data domain.ThreadCreationData) (domain.CreatedThread, error)
	GetDetail(id domain.ThreadId) (domain.ThreadDetail, error)
}

type ThreadStorage interface {
	CreateThread(data domain.ThreadCreationData) (domain.CreatedThread, error)
	GetThread(id domain.ThreadId) (domain.ThreadMetadata, error)
	CommentsByThread(threadId domain.ThreadId) ([]domain.CommentRecord, error)
	RepliesByCommentIds(ids []domain.CommentId) ([]domain.ReplyRecord, error)
	LikeCountsByCommentIds(ids []domain.CommentId) (map[domain.CommentId]int, error)
}

type ThreadValidator interface {
	Title(title domain.ThreadTitle) error
	Body(body domain.ThreadBody) error
}

type Thread struct {
	storage   ThreadStorage
	verifier  *Verifier
	validator ThreadValidator
}

func NewThread(storage ThreadStorage, verifier *Verifier, validator ThreadValidator) ThreadService {
	return &Thread{storage, verifier, validator}
}

func (s *Thread) Create(data domain.ThreadCreationData) (domain.CreatedThread, error) {
	if err := s.validator.Title(data.Title); err != nil {
		return domain.CreatedThread{}, err
	}
	if err := s.validator.Body(data.Body); err != nil {
		return domain.CreatedThread{}, err
	}
	data.Title = sanitizeContent(data.Title)
	data.Body = sanitizeContent(data.Body)

	return s.storage.CreateThread(data)
}

// GetDetail assembles the full thread view: thread metadata, comments in
// creation order, each comment's replies in creation order and its like
// count. Soft-deleted content is masked here and only here.
func (s *Thread) GetDetail(id domain.ThreadId) (domain.ThreadDetail, error) {
	if err := s.verifier.Thread(id); err != nil {
		return domain.ThreadDetail{}, err
	}

	metadata, err := s.storage.GetThread(id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	records, err := s.storage.CommentsByThread(id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	detail := domain.ThreadDetail{
		ThreadMetadata: metadata,
		Comments:       []domain.CommentDetail{},
	}
	if len(records) == 0 {
		return detail, nil
	}

	sortCommentRecords(records)
	ids := make([]domain.CommentId, len(records))
	for i, rec := range records {
		ids[i] = rec.Id
	}

	// Replies and like counts are independent reads, fetch them in
	// parallel and join before assembly.
	var (
		wg       sync.WaitGroup
		replies  []domain.ReplyRecord
		counts   map[domain.CommentId]int
		replyErr error
		likeErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		replies, replyErr = s.storage.RepliesByCommentIds(ids)
	}()
	go func() {
		defer wg.Done()
		counts, likeErr = s.storage.LikeCountsByCommentIds(ids)
	}()
	wg.Wait()
	if replyErr != nil {
		return domain.ThreadDetail{}, replyErr
	}
	if likeErr != nil {
		return domain.ThreadDetail{}, likeErr
	}

	repliesByComment := groupReplies(replies)
	for _, rec := range records {
		commentReplies := repliesByComment[rec.Id]
		if commentReplies == nil {
			commentReplies = []domain.ReplyDetail{}
		}
		detail.Comments = append(detail.Comments, domain.CommentDetail{
			Id:        rec.Id,
			Username:  rec.Username,
			Content:   domain.DisplayContent(rec.Content, rec.IsDeleted(), domain.KindComment),
			CreatedAt: rec.CreatedAt,
			LikeCount: counts[rec.Id],
			Replies:   commentReplies,
		})
	}
	return detail, nil
}

// Comment ordering is by creation time ascending, ties broken by id so
// repeated reads of the same thread are byte-for-byte identical.
func sortCommentRecords(records []domain.CommentRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].Id < records[j].Id
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}

func groupReplies(records []domain.ReplyRecord) map[domain.CommentId][]domain.ReplyDetail {
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].Id < records[j].Id
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	grouped := make(map[domain.CommentId][]domain.ReplyDetail)
	for _, rec := range records {
		grouped[rec.CommentId] = append(grouped[rec.CommentId], domain.ReplyDetail{
			Id:        rec.Id,
			Username:  rec.Username,
			Content:   domain.DisplayContent(rec.Content, rec.IsDeleted(), domain.KindReply),
			CreatedAt: rec.CreatedAt,
		})
	}
	return grouped
}
