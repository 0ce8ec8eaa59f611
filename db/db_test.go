package db

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/guitarnotes/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	dynamodbiface.DynamoDBAPI
	items   map[string]map[string]*dynamodb.AttributeValue
	calls   int
	batches []int
	fail    bool
}

func (f *fakeClient) BatchGetItem(input *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("boom")
	}
	out := &dynamodb.BatchGetItemOutput{Responses: map[string][]map[string]*dynamodb.AttributeValue{}}
	for table, ka := range input.RequestItems {
		f.batches = append(f.batches, len(ka.Keys))
		for _, key := range ka.Keys {
			if item, ok := f.items[*key["PK"].S]; ok {
				out.Responses[table] = append(out.Responses[table], item)
			}
		}
	}
	return out, nil
}

func item(pk, artist, title string, year string) map[string]*dynamodb.AttributeValue {
	res := map[string]*dynamodb.AttributeValue{
		"PK":     {S: aws.String(pk)},
		"Artist": {S: aws.String(artist)},
		"Title":  {S: aws.String(title)},
	}
	if year != "" {
		res["Year"] = &dynamodb.AttributeValue{N: aws.String(year)}
	}
	return res
}

func TestGetMidiMetadatas(t *testing.T) {
	client := &fakeClient{items: map[string]map[string]*dynamodb.AttributeValue{
		"a.mid": item("a.mid", "Someone", "Song", "1999"),
		"b.mid": item("b.mid", "Other", "Tune", ""),
	}}
	store := NewDynamo(client, "tbl")

	res, err := store.GetMidiMetadatas([]string{"a.mid", "b.mid", "c.mid", "a.mid"})
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(map[string]model.MidiMetadata{
		"a.mid": {Artist: "Someone", Title: "Song", Year: 1999},
		"b.mid": {Artist: "Other", Title: "Tune"},
	}, res)
	assert.Equal([]int{3}, client.batches)
}

func TestGetMidiMetadatasBatches(t *testing.T) {
	client := &fakeClient{}
	store := NewDynamo(client, "tbl")

	names := make([]string, 250)
	for i := range names {
		names[i] = string(rune('a'+i%26)) + string(rune('a'+i/26)) + ".mid"
	}
	res, err := store.GetMidiMetadatas(names)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Equal(t, []int{100, 100, 50}, client.batches)

	_, err = store.GetMidiMetadatas(nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, client.calls)
}

func TestGetMidiMetadatasError(t *testing.T) {
	_, err := NewDynamo(&fakeClient{fail: true}, "tbl").GetMidiMetadatas([]string{"a.mid"})
	assert.Error(t, err)
}

func TestFromEnvDisabled(t *testing.T) {
	t.Setenv("METADATA_ENDPOINT", "")
	store, err := FromEnv()
	assert.NoError(t, err)
	assert.Nil(t, store)
}
