package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDB is an in-memory DynamoAPI good enough for the key and index shapes
// the repositories use. When err is set every call fails with it.
type fakeDB struct {
	tables map[string][]Item
	err    error
}

func newFakeDB() *fakeDB {
	return &fakeDB{tables: map[string][]Item{}}
}

func tableKeys(table string) []string {
	if table == accessTable {
		return []string{"pantry_id", "user_id"}
	}
	return []string{"id"}
}

func attrEqual(a, b types.AttributeValue) bool {
	as, aok := a.(*types.AttributeValueMemberS)
	bs, bok := b.(*types.AttributeValueMemberS)
	return aok && bok && as.Value == bs.Value
}

func matches(item, cond Item) bool {
	for k, v := range cond {
		attr, ok := item[k]
		if !ok || !attrEqual(attr, v) {
			return false
		}
	}
	return true
}

func (f *fakeDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, item := range f.tables[*in.TableName] {
		if matches(item, in.Key) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	table := *in.TableName
	cond := Item{}
	for _, k := range tableKeys(table) {
		cond[k] = in.Item[k]
	}
	for i, item := range f.tables[table] {
		if matches(item, cond) {
			f.tables[table][i] = in.Item
			return &dynamodb.PutItemOutput{}, nil
		}
	}
	f.tables[table] = append(f.tables[table], in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDB) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	table := *in.TableName
	items := f.tables[table]
	for i, item := range items {
		if matches(item, in.Key) {
			f.tables[table] = append(items[:i:i], items[i+1:]...)
			break
		}
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	index := ""
	if in.IndexName != nil {
		index = *in.IndexName
	}
	vals := in.ExpressionAttributeValues

	cond := Item{}
	switch {
	case *in.TableName == usersTable && index == emailIndex:
		cond["email"] = vals[":email"]
	case *in.TableName == pantriesTable && index == selfManagedIndex:
		cond["is_self_managed"] = vals[":flag"]
	case *in.TableName == accessTable && index == "":
		cond["pantry_id"] = vals[":pantry_id"]
	case *in.TableName == accessTable && index == userIndex:
		cond["user_id"] = vals[":user_id"]
	case *in.TableName == accessTable && index == accessLevelIndex:
		cond["pantry_id"] = vals[":pantry_id"]
		cond["access_level"] = vals[":level"]
	case *in.TableName == accessTable && index == contactAgentIndex:
		cond["pantry_id"] = vals[":pantry_id"]
		cond["is_contact_agent"] = vals[":flag"]
	}

	out := &dynamodb.QueryOutput{}
	for _, item := range f.tables[*in.TableName] {
		if matches(item, cond) {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

func (f *fakeDB) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.ScanOutput{Items: f.tables[*in.TableName]}, nil
}

func (f *fakeDB) ListTables(_ context.Context, _ *dynamodb.ListTablesInput, _ ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := &dynamodb.ListTablesOutput{}
	for name := range f.tables {
		out.TableNames = append(out.TableNames, name)
	}
	return out, nil
}

func (f *fakeDB) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.tables[*in.TableName]; !ok {
		f.tables[*in.TableName] = nil
	}
	return &dynamodb.CreateTableOutput{}, nil
}
