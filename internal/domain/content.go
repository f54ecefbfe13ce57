package domain

// ContentKind selects the placeholder shown for soft-deleted content.
type ContentKind int

const (
	KindComment ContentKind = iota
	KindReply
)

const (
	DeletedCommentPlaceholder = "**komentar telah dihapus**"
	DeletedReplyPlaceholder   = "**balasan telah dihapus**"
)

// DisplayContent returns the outward-facing content for a piece of user
// content. Undeleted content passes through unchanged; deleted content is
// replaced by the kind-specific placeholder. Stored content is never
// modified, masking happens only at view assembly.
func DisplayContent(raw Content, deleted bool, kind ContentKind) Content {
	if !deleted {
		return raw
	}
	if kind == KindReply {
		return DeletedReplyPlaceholder
	}
	return DeletedCommentPlaceholder
}
