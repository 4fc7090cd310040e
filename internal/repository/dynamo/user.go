package dynamo

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/BrahmVanH/uw-pantry-service/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository persists users in the Users table. Point lookups use the
// id partition key; email lookups go through the EmailIndex GSI.
type UserRepository struct {
	db DynamoAPI
}

func NewUserRepository(db DynamoAPI) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func userToItem(user model.User) Item {
	item := Item{
		"id":            stringAttr(user.ID),
		"email":         stringAttr(user.Email),
		"password_hash": stringAttr(user.PasswordHash),
		"first_name":    stringAttr(user.FirstName),
		"last_name":     stringAttr(user.LastName),
		"created_at":    timeAttr(user.CreatedAt),
		"updated_at":    timeAttr(user.UpdatedAt),
	}
	if user.PantryID != nil {
		item["pantry_id"] = stringAttr(*user.PantryID)
	}
	return item
}

// userFromItem is total: any missing required field yields no result, never
// a panic. An absent pantry_id parses as nil, not empty string.
func userFromItem(item Item) (model.User, bool) {
	var user model.User
	var ok bool

	if user.ID, ok = getString(item, "id"); !ok {
		return model.User{}, false
	}
	if user.Email, ok = getString(item, "email"); !ok {
		return model.User{}, false
	}
	if user.PasswordHash, ok = getString(item, "password_hash"); !ok {
		return model.User{}, false
	}
	if user.FirstName, ok = getString(item, "first_name"); !ok {
		return model.User{}, false
	}
	if user.LastName, ok = getString(item, "last_name"); !ok {
		return model.User{}, false
	}
	if user.PantryID, ok = getOptionalString(item, "pantry_id"); !ok {
		return model.User{}, false
	}
	user.CreatedAt = getTime(item, "created_at")
	user.UpdatedAt = getTime(item, "updated_at")

	return user, true
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(usersTable),
		Key:       Item{"id": stringAttr(id)},
	})
	if err != nil {
		return model.User{}, model.NewStorageError("users.GetByID", "failed to get user by id", err)
	}
	if out.Item == nil {
		return model.User{}, model.ErrNotFound
	}

	user, ok := userFromItem(out.Item)
	if !ok {
		// A stored item that no longer maps is corruption, not absence.
		return model.User{}, model.NewStorageError("users.GetByID", "stored user item failed to map", nil)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(usersTable),
		IndexName:                 aws.String(emailIndex),
		KeyConditionExpression:    aws.String("email = :email"),
		ExpressionAttributeValues: Item{":email": stringAttr(email)},
	})
	if err != nil {
		return model.User{}, model.NewStorageError("users.GetByEmail", "failed to query users by email", err)
	}
	if len(out.Items) == 0 {
		return model.User{}, model.ErrNotFound
	}

	// Email is unique by convention only; if the invariant was ever
	// violated the first index match wins.
	user, ok := userFromItem(out.Items[0])
	if !ok {
		return model.User{}, model.NewStorageError("users.GetByEmail", "stored user item failed to map", nil)
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(usersTable),
	})
	if err != nil {
		return nil, model.NewStorageError("users.List", "failed to scan users", err)
	}

	users := make([]model.User, 0, len(out.Items))
	for _, item := range out.Items {
		if user, ok := userFromItem(item); ok {
			users = append(users, user)
		}
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	_, err := r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(usersTable),
		Item:      userToItem(user),
	})
	if err != nil {
		return model.User{}, model.NewStorageError("users.Create", "failed to create user", err)
	}

	return user, nil
}

// Update is a full-item put: last writer wins, no concurrency check.
func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	_, err := r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(usersTable),
		Item:      userToItem(user),
	})
	if err != nil {
		return model.User{}, model.NewStorageError("users.Update", "failed to update user", err)
	}

	return user, nil
}

// DeleteByEmail resolves the user through the EmailIndex first because the
// table key is id, then deletes the item.
func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) error {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return err
	}

	_, err = r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(usersTable),
		Key:       Item{"id": stringAttr(user.ID)},
	})
	if err != nil {
		return model.NewStorageError("users.DeleteByEmail", "failed to delete user", err)
	}

	return nil
}
