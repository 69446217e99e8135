package db

import (
	"context"
	"fmt"

	"iatv/pkg/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client wraps the MongoDB client holding downloaded broadcast transcripts.
type Client struct {
	mongoClient *mongo.Client
	database    *mongo.Database
	collection  *mongo.Collection
}

// NewClient creates a new transcript store client.
func NewClient(connectionString, databaseName, collectionName string) *Client {
	clientOptions := options.Client().ApplyURI(connectionString)
	mongoClient, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		// Return client with nil - error will be caught during Connect()
		return &Client{}
	}

	database := mongoClient.Database(databaseName)
	collection := database.Collection(collectionName)

	return &Client{
		mongoClient: mongoClient,
		database:    database,
		collection:  collection,
	}
}

// Connect establishes connection to MongoDB
func (c *Client) Connect(ctx context.Context) error {
	if c.mongoClient == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return c.mongoClient.Ping(ctx, nil)
}

// Close closes the MongoDB connection
func (c *Client) Close(ctx context.Context) error {
	if c.mongoClient == nil {
		return nil
	}
	return c.mongoClient.Disconnect(ctx)
}

// SaveTranscript upserts a transcript record, keyed by broadcast identifier.
func (c *Client) SaveTranscript(ctx context.Context, record *domain.TranscriptRecord) error {
	if c.collection == nil {
		return fmt.Errorf("collection not initialized")
	}

	filter := bson.M{"identifier": record.Identifier}
	update := bson.M{"$set": record}
	opts := options.Update().SetUpsert(true)

	_, err := c.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetExistingIdentifiers fetches all stored broadcast identifiers as a set.
func (c *Client) GetExistingIdentifiers(ctx context.Context) (map[string]bool, error) {
	if c.collection == nil {
		return nil, fmt.Errorf("collection not initialized")
	}

	cursor, err := c.collection.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"identifier": 1, "_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("failed to query identifiers: %w", err)
	}
	defer cursor.Close(ctx)

	idSet := make(map[string]bool)
	for cursor.Next(ctx) {
		var result struct {
			Identifier string `bson:"identifier"`
		}
		if err := cursor.Decode(&result); err != nil {
			continue // Skip invalid documents
		}
		if result.Identifier != "" {
			idSet[result.Identifier] = true
		}
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return idSet, nil
}

// ReadAllTranscripts loads every stored transcript record. Used by the
// replication flow; a batch of broadcast transcripts fits in memory.
func (c *Client) ReadAllTranscripts(ctx context.Context) ([]domain.TranscriptRecord, error) {
	if c.collection == nil {
		return nil, fmt.Errorf("collection not initialized")
	}

	cursor, err := c.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query transcripts: %w", err)
	}
	defer cursor.Close(ctx)

	var records []domain.TranscriptRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode transcripts: %w", err)
	}
	return records, nil
}
