package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brainiacs-dev/brainiacs/internal/domain"
	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
)

// AppendMessage pushes onto the tail of the ordered sequence; existing
// messages are never reordered.
func (s *Storage) AppendMessage(ctx context.Context, boardId string, msg domain.Message) error {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{"_id": boardId},
		bson.M{"$push": bson.M{"messages": msg}},
	)
	if err != nil {
		return storeErr(err)
	}
	if result.MatchedCount == 0 {
		return internal_errors.NotFound("Board not found")
	}
	return nil
}

// GetMessage projects the single matched element out of the sequence.
func (s *Storage) GetMessage(ctx context.Context, boardId, messageId string) (domain.Message, error) {
	var doc struct {
		Messages []domain.Message `bson:"messages"`
	}
	err := s.boards.FindOne(ctx,
		bson.M{"_id": boardId, "messages.messageId": messageId},
		options.FindOne().SetProjection(bson.M{"messages.$": 1}),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.Message{}, internal_errors.NotFound("Message not found")
		}
		return domain.Message{}, storeErr(err)
	}
	if len(doc.Messages) == 0 {
		return domain.Message{}, internal_errors.NotFound("Message not found")
	}
	return doc.Messages[0], nil
}

// SetMessageText overwrites text only; reactions, pin and seen state are
// untouched.
func (s *Storage) SetMessageText(ctx context.Context, boardId, messageId, text string) error {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{"_id": boardId, "messages.messageId": messageId},
		bson.M{"$set": bson.M{"messages.$.text": text}},
	)
	if err != nil {
		return storeErr(err)
	}
	if result.MatchedCount == 0 {
		return internal_errors.NotFound("Message not found")
	}
	return nil
}

// TombstoneMessage sets the null-text tombstone plus deletion metadata,
// guarded by "not already tombstoned" so a replay never overwrites the
// original deleter/time. Reports whether the guard matched.
func (s *Storage) TombstoneMessage(ctx context.Context, boardId, messageId, deletedBy string, deletedAt time.Time) (bool, error) {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{
			"_id": boardId,
			"messages": bson.M{"$elemMatch": bson.M{
				"messageId": messageId,
				"text":      bson.M{"$ne": nil},
			}},
		},
		bson.M{"$set": bson.M{
			"messages.$.text":      nil,
			"messages.$.deletedBy": deletedBy,
			"messages.$.deletedAt": deletedAt,
		}},
	)
	if err != nil {
		return false, storeErr(err)
	}
	return result.MatchedCount > 0, nil
}

// PullReaction removes user from the kind's set, guarded by presence.
// Reports whether the guard matched (i.e. the user had reacted).
func (s *Storage) PullReaction(ctx context.Context, boardId, messageId, kind, userId string) (bool, error) {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{
			"_id": boardId,
			"messages": bson.M{"$elemMatch": bson.M{
				"messageId":         messageId,
				"reactions." + kind: userId,
			}},
		},
		bson.M{"$pull": bson.M{"messages.$.reactions." + kind: userId}},
	)
	if err != nil {
		return false, storeErr(err)
	}
	return result.MatchedCount > 0, nil
}

// AddReaction adds user to the kind's set. $addToSet keeps the set
// semantics even when raced.
func (s *Storage) AddReaction(ctx context.Context, boardId, messageId, kind, userId string) error {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{"_id": boardId, "messages.messageId": messageId},
		bson.M{"$addToSet": bson.M{"messages.$.reactions." + kind: userId}},
	)
	if err != nil {
		return storeErr(err)
	}
	if result.MatchedCount == 0 {
		return internal_errors.NotFound("Message not found")
	}
	return nil
}

// SetPin overwrites any prior pin unconditionally: last pin wins.
func (s *Storage) SetPin(ctx context.Context, boardId, messageId, pinnedBy string, pinExpiry time.Time) error {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{"_id": boardId, "messages.messageId": messageId},
		bson.M{"$set": bson.M{
			"messages.$.pinnedBy":  pinnedBy,
			"messages.$.pinExpiry": pinExpiry,
		}},
	)
	if err != nil {
		return storeErr(err)
	}
	if result.MatchedCount == 0 {
		return internal_errors.NotFound("Message not found")
	}
	return nil
}

// ClearPin is idempotent: unsetting an absent pin still matches the message.
func (s *Storage) ClearPin(ctx context.Context, boardId, messageId string) error {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{"_id": boardId, "messages.messageId": messageId},
		bson.M{"$unset": bson.M{
			"messages.$.pinnedBy":  "",
			"messages.$.pinExpiry": "",
		}},
	)
	if err != nil {
		return storeErr(err)
	}
	if result.MatchedCount == 0 {
		return internal_errors.NotFound("Message not found")
	}
	return nil
}

// AddSeen records an observation; $addToSet makes replays no-ops.
func (s *Storage) AddSeen(ctx context.Context, boardId, messageId, userId string) error {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{"_id": boardId, "messages.messageId": messageId},
		bson.M{"$addToSet": bson.M{"messages.$.seenBy": userId}},
	)
	if err != nil {
		return storeErr(err)
	}
	if result.MatchedCount == 0 {
		return internal_errors.NotFound("Message not found")
	}
	return nil
}
