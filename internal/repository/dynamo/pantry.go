package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/BrahmVanH/uw-pantry-service/internal/model"
)

var _ model.PantryStore = (*PantryRepository)(nil)

// PantryRepository persists pantries in the Pantries table.
type PantryRepository struct {
	db DynamoAPI
}

func NewPantryRepository(db DynamoAPI) *PantryRepository {
	return &PantryRepository{
		db: db,
	}
}

func addressToItem(addr model.Address) Item {
	item := Item{
		"street":  stringAttr(addr.Street),
		"city":    stringAttr(addr.City),
		"state":   stringAttr(addr.State),
		"zipcode": stringAttr(addr.Zipcode),
	}
	if addr.Unit != nil {
		item["unit"] = stringAttr(*addr.Unit)
	}
	return item
}

func addressFromItem(item Item) (model.Address, bool) {
	var addr model.Address
	var ok bool

	if addr.Street, ok = getString(item, "street"); !ok {
		return model.Address{}, false
	}
	if addr.Unit, ok = getOptionalString(item, "unit"); !ok {
		return model.Address{}, false
	}
	if addr.City, ok = getString(item, "city"); !ok {
		return model.Address{}, false
	}
	if addr.State, ok = getString(item, "state"); !ok {
		return model.Address{}, false
	}
	if addr.Zipcode, ok = getString(item, "zipcode"); !ok {
		return model.Address{}, false
	}

	return addr, true
}

func pantryToItem(pantry model.Pantry) Item {
	return Item{
		"id":              stringAttr(pantry.ID),
		"name":            stringAttr(pantry.Name),
		"is_self_managed": boolFlagAttr(pantry.IsSelfManaged),
		"opt_status":      stringAttr(string(pantry.OptStatus)),
		"address":         &types.AttributeValueMemberM{Value: addressToItem(pantry.Address)},
		"phone":           stringAttr(pantry.Phone),
		"email":           stringAttr(pantry.Email),
		"created_at":      timeAttr(pantry.CreatedAt),
		"updated_at":      timeAttr(pantry.UpdatedAt),
	}
}

// pantryFromItem rejects unknown opt_status codes instead of defaulting.
func pantryFromItem(item Item) (model.Pantry, bool) {
	var pantry model.Pantry
	var ok bool

	if pantry.ID, ok = getString(item, "id"); !ok {
		return model.Pantry{}, false
	}
	if pantry.Name, ok = getString(item, "name"); !ok {
		return model.Pantry{}, false
	}
	if pantry.IsSelfManaged, ok = getBoolFlag(item, "is_self_managed"); !ok {
		return model.Pantry{}, false
	}

	code, ok := getString(item, "opt_status")
	if !ok {
		return model.Pantry{}, false
	}
	status, err := model.ParseOptStatus(code)
	if err != nil {
		return model.Pantry{}, false
	}
	pantry.OptStatus = status

	addrItem, ok := getNested(item, "address")
	if !ok {
		return model.Pantry{}, false
	}
	if pantry.Address, ok = addressFromItem(addrItem); !ok {
		return model.Pantry{}, false
	}

	if pantry.Phone, ok = getString(item, "phone"); !ok {
		return model.Pantry{}, false
	}
	if pantry.Email, ok = getString(item, "email"); !ok {
		return model.Pantry{}, false
	}
	pantry.CreatedAt = getTime(item, "created_at")
	pantry.UpdatedAt = getTime(item, "updated_at")

	return pantry, true
}

func (r *PantryRepository) GetByID(ctx context.Context, id string) (model.Pantry, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(pantriesTable),
		Key:       Item{"id": stringAttr(id)},
	})
	if err != nil {
		return model.Pantry{}, model.NewStorageError("pantries.GetByID", "failed to get pantry by id", err)
	}
	if out.Item == nil {
		return model.Pantry{}, model.ErrNotFound
	}

	pantry, ok := pantryFromItem(out.Item)
	if !ok {
		return model.Pantry{}, model.NewStorageError("pantries.GetByID", "stored pantry item failed to map", nil)
	}

	return pantry, nil
}

func (r *PantryRepository) List(ctx context.Context) ([]model.Pantry, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(pantriesTable),
	})
	if err != nil {
		return nil, model.NewStorageError("pantries.List", "failed to scan pantries", err)
	}

	pantries := make([]model.Pantry, 0, len(out.Items))
	for _, item := range out.Items {
		if pantry, ok := pantryFromItem(item); ok {
			pantries = append(pantries, pantry)
		}
	}

	return pantries, nil
}

func (r *PantryRepository) ListSelfManaged(ctx context.Context, selfManaged bool) ([]model.Pantry, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(pantriesTable),
		IndexName:                 aws.String(selfManagedIndex),
		KeyConditionExpression:    aws.String("is_self_managed = :flag"),
		ExpressionAttributeValues: Item{":flag": boolFlagAttr(selfManaged)},
	})
	if err != nil {
		return nil, model.NewStorageError("pantries.ListSelfManaged", "failed to query pantries by flag", err)
	}

	pantries := make([]model.Pantry, 0, len(out.Items))
	for _, item := range out.Items {
		if pantry, ok := pantryFromItem(item); ok {
			pantries = append(pantries, pantry)
		}
	}

	return pantries, nil
}

func (r *PantryRepository) Create(ctx context.Context, pantry model.Pantry) (model.Pantry, error) {
	_, err := r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(pantriesTable),
		Item:      pantryToItem(pantry),
	})
	if err != nil {
		return model.Pantry{}, model.NewStorageError("pantries.Create", "failed to create pantry", err)
	}

	return pantry, nil
}

func (r *PantryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(pantriesTable),
		Key:       Item{"id": stringAttr(id)},
	})
	if err != nil {
		return model.NewStorageError("pantries.Delete", "failed to delete pantry", err)
	}

	return nil
}
