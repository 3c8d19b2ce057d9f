package m_thread

// Field constants for conversation threads and their messages.
// Messages live in a flat collection keyed by thread id so a thread's
// history is one equality-filtered, time-ordered query.
const (
	Collection         = "threads"
	MessagesCollection = "messages"

	FldThreadID      = "threadId"
	FldListingID     = "listingId"
	FldBuyerID       = "buyerId"
	FldSellerID      = "sellerId"
	FldLastMessageAt = "lastMessageAt"

	FldMessageID = "messageId"
	FldSenderID  = "senderId"
	FldBody      = "body"
	FldSentAt    = "sentAt"
)
