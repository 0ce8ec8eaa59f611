package db

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/guitarnotes/constants"
	"github.com/jsphweid/guitarnotes/model"
	"github.com/pkg/errors"
)

// MetadataStore looks up metadata by file name. Files it knows nothing about
// are absent from the result.
type MetadataStore interface {
	GetMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error)
}

type Dynamo struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamo(client dynamodbiface.DynamoDBAPI, table string) *Dynamo {
	return &Dynamo{client: client, table: table}
}

// FromEnv connects to the configured table, or returns nil when no endpoint
// is configured.
func FromEnv() (MetadataStore, error) {
	endpoint := constants.GetMetadataEndpoint()
	if endpoint == "" {
		return nil, nil
	}
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetMetadataRegion()),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewDynamo(dynamodb.New(session), constants.GetMetadataTable()), nil
}

func (d *Dynamo) GetMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error) {
	res := make(map[string]model.MidiMetadata)

	for start := 0; start < len(filenames); start += constants.MaxMetadataBatch {
		end := start + constants.MaxMetadataBatch
		if end > len(filenames) {
			end = len(filenames)
		}
		if err := d.getBatch(filenames[start:end], res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (d *Dynamo) getBatch(filenames []string, res map[string]model.MidiMetadata) error {
	var keys []map[string]*dynamodb.AttributeValue
	seen := make(map[string]bool)
	for _, filename := range filenames {
		if seen[filename] {
			continue
		}
		seen[filename] = true
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			d.table: {Keys: keys},
		},
	}
	// unprocessed keys come back when the table is throttled, so keep asking
	for len(input.RequestItems) > 0 {
		dbres, err := d.client.BatchGetItem(input)
		if err != nil {
			return errors.Wrap(err, "error from DynamoDB")
		}
		for _, v := range dbres.Responses[d.table] {
			pk := str(v["PK"])
			if pk == "" {
				continue
			}
			res[pk] = parseItem(v)
		}
		input = &dynamodb.BatchGetItemInput{RequestItems: dbres.UnprocessedKeys}
	}
	return nil
}

func str(v *dynamodb.AttributeValue) string {
	if v == nil || v.S == nil {
		return ""
	}
	return *v.S
}

func parseItem(v map[string]*dynamodb.AttributeValue) model.MidiMetadata {
	var s model.MidiMetadata
	if year := v["Year"]; year != nil && year.N != nil {
		parsed, _ := strconv.ParseUint(*year.N, 10, 32)
		s.Year = uint(parsed)
	}
	s.Artist = str(v["Artist"])
	s.Release = str(v["Release"])
	s.Title = str(v["Title"])
	return s
}
