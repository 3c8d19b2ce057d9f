package m_thread

import (
	"fmt"
	"time"
)

// ThreadID derives the deterministic thread id for a listing/buyer pair,
// so repeated messages land in the same conversation without a lookup.
func ThreadID(listingID, buyerID string) string {
	return fmt.Sprintf("%s_%s", listingID, buyerID)
}

// BuildThreadMap constructs the field map for a thread upsert. Applied with
// merge semantics so repeated messages only advance lastMessageAt.
func BuildThreadMap(threadID, listingID, buyerID, sellerID string, lastMessageAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		FldThreadID:      threadID,
		FldListingID:     listingID,
		FldBuyerID:       buyerID,
		FldSellerID:      sellerID,
		FldLastMessageAt: lastMessageAt.UTC(),
	}
}

// BuildMessageMap constructs the field map for a message document.
func BuildMessageMap(messageID, threadID, senderID, body string, sentAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		FldMessageID: messageID,
		FldThreadID:  threadID,
		FldSenderID:  senderID,
		FldBody:      body,
		FldSentAt:    sentAt.UTC(),
	}
}
