package dynamo

import (
	"context"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/BrahmVanH/uw-pantry-service/internal/model"
)

// Table and index names. These are part of the wire contract for any
// existing stored data and must remain stable.
const (
	usersTable = "Users"
	emailIndex = "EmailIndex"
	roleIndex  = "RoleIndex"

	pantriesTable    = "Pantries"
	selfManagedIndex = "SelfManagedIndex"

	accessTable       = "PantryAccess"
	userIndex         = "UserIndex"
	accessLevelIndex  = "AccessLevelIndex"
	contactAgentIndex = "ContactAgentIndex"
)

func stringAttrDef(name string) types.AttributeDefinition {
	return types.AttributeDefinition{
		AttributeName: aws.String(name),
		AttributeType: types.ScalarAttributeTypeS,
	}
}

func hashKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
}

func rangeKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeRange}
}

func allProjection() *types.Projection {
	return &types.Projection{ProjectionType: types.ProjectionTypeAll}
}

// EnsureTables creates the Users, Pantries, and PantryAccess tables with
// their secondary indexes if they do not exist yet. Idempotent; billing is
// pay-per-request.
func EnsureTables(ctx context.Context, db DynamoAPI) error {
	out, err := db.ListTables(ctx, &dynamodb.ListTablesInput{})
	if err != nil {
		return model.NewStorageError("schema.EnsureTables", "failed to list tables", err)
	}

	for _, spec := range tableSpecs() {
		if slices.Contains(out.TableNames, *spec.TableName) {
			continue
		}
		if _, err := db.CreateTable(ctx, spec); err != nil {
			return model.NewStorageError("schema.EnsureTables", "failed to create table "+*spec.TableName, err)
		}
	}

	return nil
}

func tableSpecs() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:   aws.String(usersTable),
			BillingMode: types.BillingModePayPerRequest,
			KeySchema:   []types.KeySchemaElement{hashKey("id")},
			AttributeDefinitions: []types.AttributeDefinition{
				stringAttrDef("id"),
				stringAttrDef("email"),
				stringAttrDef("role"),
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName:  aws.String(emailIndex),
					KeySchema:  []types.KeySchemaElement{hashKey("email")},
					Projection: allProjection(),
				},
				{
					IndexName:  aws.String(roleIndex),
					KeySchema:  []types.KeySchemaElement{hashKey("role")},
					Projection: allProjection(),
				},
			},
		},
		{
			TableName:   aws.String(pantriesTable),
			BillingMode: types.BillingModePayPerRequest,
			KeySchema:   []types.KeySchemaElement{hashKey("id")},
			AttributeDefinitions: []types.AttributeDefinition{
				stringAttrDef("id"),
				stringAttrDef("is_self_managed"),
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName:  aws.String(selfManagedIndex),
					KeySchema:  []types.KeySchemaElement{hashKey("is_self_managed")},
					Projection: allProjection(),
				},
			},
		},
		{
			TableName:   aws.String(accessTable),
			BillingMode: types.BillingModePayPerRequest,
			KeySchema:   []types.KeySchemaElement{hashKey("pantry_id"), rangeKey("user_id")},
			AttributeDefinitions: []types.AttributeDefinition{
				stringAttrDef("pantry_id"),
				stringAttrDef("user_id"),
				stringAttrDef("access_level"),
				stringAttrDef("is_contact_agent"),
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName:  aws.String(userIndex),
					KeySchema:  []types.KeySchemaElement{hashKey("user_id"), rangeKey("pantry_id")},
					Projection: allProjection(),
				},
				{
					IndexName:  aws.String(accessLevelIndex),
					KeySchema:  []types.KeySchemaElement{hashKey("pantry_id"), rangeKey("access_level")},
					Projection: allProjection(),
				},
				{
					IndexName:  aws.String(contactAgentIndex),
					KeySchema:  []types.KeySchemaElement{hashKey("pantry_id"), rangeKey("is_contact_agent")},
					Projection: allProjection(),
				},
			},
		},
	}
}
