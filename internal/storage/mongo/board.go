package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brainiacs-dev/brainiacs/internal/domain"
	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
)

func (s *Storage) CreateBoard(ctx context.Context, board domain.Board) error {
	if _, err := s.boards.InsertOne(ctx, board); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Storage) GetBoard(ctx context.Context, boardId string) (domain.Board, error) {
	var board domain.Board
	err := s.boards.FindOne(ctx, bson.M{"_id": boardId}).Decode(&board)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.Board{}, internal_errors.NotFound("Board not found")
		}
		return domain.Board{}, storeErr(err)
	}
	return board, nil
}

func (s *Storage) ListBoards(ctx context.Context) ([]domain.Board, error) {
	cur, err := s.boards.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	boards := []domain.Board{}
	for cur.Next(ctx) {
		var board domain.Board
		if err := cur.Decode(&board); err != nil {
			return nil, storeErr(err)
		}
		boards = append(boards, board)
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr(err)
	}
	return boards, nil
}

// ReplaceMembers swaps the whole member sequence in one conditional set.
func (s *Storage) ReplaceMembers(ctx context.Context, boardId string, members []domain.Member) error {
	result, err := s.boards.UpdateOne(ctx,
		bson.M{"_id": boardId},
		bson.M{"$set": bson.M{"members": members}},
	)
	if err != nil {
		return storeErr(err)
	}
	if result.MatchedCount == 0 {
		return internal_errors.NotFound("Board not found")
	}
	return nil
}

// DeleteBoard destroys the aggregate; nested messages and polls go with it.
func (s *Storage) DeleteBoard(ctx context.Context, boardId string) error {
	result, err := s.boards.DeleteOne(ctx, bson.M{"_id": boardId})
	if err != nil {
		return storeErr(err)
	}
	if result.DeletedCount == 0 {
		return internal_errors.NotFound("Board not found")
	}
	return nil
}
