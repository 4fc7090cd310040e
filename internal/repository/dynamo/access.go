package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/BrahmVanH/uw-pantry-service/internal/model"
)

var _ model.AccessStore = (*AccessRepository)(nil)

// AccessRepository persists pantry access records. The table key is the
// (pantry_id, user_id) composite; three GSIs serve the reverse directions:
// by user, by access level, and by contact-agent flag.
type AccessRepository struct {
	db DynamoAPI
}

func NewAccessRepository(db DynamoAPI) *AccessRepository {
	return &AccessRepository{
		db: db,
	}
}

func accessToItem(access model.PantryAccess) Item {
	return Item{
		"pantry_id":        stringAttr(access.PantryID),
		"user_id":          stringAttr(access.UserID),
		"access_level":     stringAttr(string(access.AccessLevel)),
		"is_contact_agent": boolFlagAttr(access.IsContactAgent),
		"created_at":       timeAttr(access.CreatedAt),
		"updated_at":       timeAttr(access.UpdatedAt),
	}
}

func accessFromItem(item Item) (model.PantryAccess, bool) {
	var access model.PantryAccess
	var ok bool

	if access.PantryID, ok = getString(item, "pantry_id"); !ok {
		return model.PantryAccess{}, false
	}
	if access.UserID, ok = getString(item, "user_id"); !ok {
		return model.PantryAccess{}, false
	}

	code, ok := getString(item, "access_level")
	if !ok {
		return model.PantryAccess{}, false
	}
	level, err := model.ParseAccessLevel(code)
	if err != nil {
		return model.PantryAccess{}, false
	}
	access.AccessLevel = level

	if access.IsContactAgent, ok = getBoolFlag(item, "is_contact_agent"); !ok {
		return model.PantryAccess{}, false
	}
	access.CreatedAt = getTime(item, "created_at")
	access.UpdatedAt = getTime(item, "updated_at")

	return access, true
}

func (r *AccessRepository) Get(ctx context.Context, pantryID, userID string) (model.PantryAccess, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(accessTable),
		Key: Item{
			"pantry_id": stringAttr(pantryID),
			"user_id":   stringAttr(userID),
		},
	})
	if err != nil {
		return model.PantryAccess{}, model.NewStorageError("access.Get", "failed to get access record", err)
	}
	if out.Item == nil {
		return model.PantryAccess{}, model.ErrNotFound
	}

	access, ok := accessFromItem(out.Item)
	if !ok {
		return model.PantryAccess{}, model.NewStorageError("access.Get", "stored access item failed to map", nil)
	}

	return access, nil
}

func (r *AccessRepository) ListByPantry(ctx context.Context, pantryID string) ([]model.PantryAccess, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(accessTable),
		KeyConditionExpression:    aws.String("pantry_id = :pantry_id"),
		ExpressionAttributeValues: Item{":pantry_id": stringAttr(pantryID)},
	})
	if err != nil {
		return nil, model.NewStorageError("access.ListByPantry", "failed to query access by pantry", err)
	}

	return collectAccess(out.Items), nil
}

func (r *AccessRepository) ListByUser(ctx context.Context, userID string) ([]model.PantryAccess, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(accessTable),
		IndexName:                 aws.String(userIndex),
		KeyConditionExpression:    aws.String("user_id = :user_id"),
		ExpressionAttributeValues: Item{":user_id": stringAttr(userID)},
	})
	if err != nil {
		return nil, model.NewStorageError("access.ListByUser", "failed to query access by user", err)
	}

	return collectAccess(out.Items), nil
}

func (r *AccessRepository) ListByLevel(ctx context.Context, pantryID string, level model.AccessLevel) ([]model.PantryAccess, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(accessTable),
		IndexName:              aws.String(accessLevelIndex),
		KeyConditionExpression: aws.String("pantry_id = :pantry_id AND access_level = :level"),
		ExpressionAttributeValues: Item{
			":pantry_id": stringAttr(pantryID),
			":level":     stringAttr(string(level)),
		},
	})
	if err != nil {
		return nil, model.NewStorageError("access.ListByLevel", "failed to query access by level", err)
	}

	return collectAccess(out.Items), nil
}

// GetContactAgent returns the designated contact for a pantry. Multiple
// contacts would violate the invariant; the first match wins.
func (r *AccessRepository) GetContactAgent(ctx context.Context, pantryID string) (model.PantryAccess, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(accessTable),
		IndexName:              aws.String(contactAgentIndex),
		KeyConditionExpression: aws.String("pantry_id = :pantry_id AND is_contact_agent = :flag"),
		ExpressionAttributeValues: Item{
			":pantry_id": stringAttr(pantryID),
			":flag":      boolFlagAttr(true),
		},
	})
	if err != nil {
		return model.PantryAccess{}, model.NewStorageError("access.GetContactAgent", "failed to query contact agent", err)
	}
	if len(out.Items) == 0 {
		return model.PantryAccess{}, model.ErrNotFound
	}

	access, ok := accessFromItem(out.Items[0])
	if !ok {
		return model.PantryAccess{}, model.NewStorageError("access.GetContactAgent", "stored access item failed to map", nil)
	}

	return access, nil
}

func (r *AccessRepository) Create(ctx context.Context, access model.PantryAccess) (model.PantryAccess, error) {
	_, err := r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(accessTable),
		Item:      accessToItem(access),
	})
	if err != nil {
		return model.PantryAccess{}, model.NewStorageError("access.Create", "failed to create access record", err)
	}

	return access, nil
}

func (r *AccessRepository) Delete(ctx context.Context, pantryID, userID string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(accessTable),
		Key: Item{
			"pantry_id": stringAttr(pantryID),
			"user_id":   stringAttr(userID),
		},
	})
	if err != nil {
		return model.NewStorageError("access.Delete", "failed to delete access record", err)
	}

	return nil
}

func collectAccess(items []Item) []model.PantryAccess {
	records := make([]model.PantryAccess, 0, len(items))
	for _, item := range items {
		if access, ok := accessFromItem(item); ok {
			records = append(records, access)
		}
	}
	return records
}
