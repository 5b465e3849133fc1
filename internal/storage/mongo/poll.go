package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brainiacs-dev/brainiacs/internal/domain"
	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
)

func (s *Storage) AppendPoll(ctx context.Context, boardId string, poll domain.Poll) error {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{"_id": boardId},
		bson.M{"$push": bson.M{"polls": poll}},
	)
	if err != nil {
		return storeErr(err)
	}
	if result.MatchedCount == 0 {
		return internal_errors.NotFound("Board not found")
	}
	return nil
}

func (s *Storage) GetPoll(ctx context.Context, boardId, pollId string) (domain.Poll, error) {
	var doc struct {
		Polls []domain.Poll `bson:"polls"`
	}
	err := s.boards.FindOne(ctx,
		bson.M{"_id": boardId, "polls.pollId": pollId},
		options.FindOne().SetProjection(bson.M{"polls.$": 1}),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.Poll{}, internal_errors.NotFound("Poll not found")
		}
		return domain.Poll{}, storeErr(err)
	}
	if len(doc.Polls) == 0 {
		return domain.Poll{}, internal_errors.NotFound("Poll not found")
	}
	return doc.Polls[0], nil
}

// PushVote appends the voter to one option's set in a single conditional
// write: the filter asserts the poll exists AND the voter is absent from
// every option, so of two concurrent votes exactly one matches and wins.
// Reports whether the guard matched.
func (s *Storage) PushVote(ctx context.Context, boardId, pollId string, optionIndex int, userId string) (bool, error) {
	votesPath := fmt.Sprintf("polls.$.options.%d.votes", optionIndex)
	result, err := s.boards.UpdateOne(ctx,
		bson.M{
			"_id": boardId,
			"polls": bson.M{"$elemMatch": bson.M{
				"pollId":        pollId,
				"options.votes": bson.M{"$ne": userId},
			}},
		},
		bson.M{"$push": bson.M{votesPath: userId}},
	)
	if err != nil {
		return false, storeErr(err)
	}
	return result.MatchedCount > 0, nil
}

// RemovePoll is the only true deletion in the model.
func (s *Storage) RemovePoll(ctx context.Context, boardId, pollId string) (bool, error) {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{"_id": boardId},
		bson.M{"$pull": bson.M{"polls": bson.M{"pollId": pollId}}},
	)
	if err != nil {
		return false, storeErr(err)
	}
	return result.ModifiedCount > 0, nil
}
