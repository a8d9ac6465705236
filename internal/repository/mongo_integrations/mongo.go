package mongo

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"driftAnalyzer/internal/analyzer/models"
	"driftAnalyzer/internal/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

type MongoClient struct {
	client           *mongo.Client
	tasksCollection  *mongo.Collection
	driftsCollection *mongo.Collection
}

func NewMongoClient(ctx context.Context) (c *MongoClient, err error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		err = fmt.Errorf("empty MONGO_URI for connection string")
		return
	}
	databaseName := os.Getenv("MONGO_DATABASE")
	if databaseName == "" {
		err = fmt.Errorf("empty MONGO_DATABASE for connection string")
		return
	}
	tasksCollectionName := os.Getenv("MONGO_TASKS_COLLECTION")
	if tasksCollectionName == "" {
		err = fmt.Errorf("empty MONGO_TASKS_COLLECTION for connection string")
		return
	}
	driftsCollectionName := os.Getenv("MONGO_DRIFTS_COLLECTION")
	if driftsCollectionName == "" {
		err = fmt.Errorf("empty MONGO_DRIFTS_COLLECTION for connection string")
		return
	}

	opts := options.Client().ApplyURI(uri).
		SetWriteConcern(writeconcern.New(writeconcern.WMajority()))

	retryWrites := os.Getenv("MONGO_RETRY_WRITES")
	if retries, err := strconv.ParseBool(retryWrites); err == nil && retries {
		opts.SetRetryWrites(retries)
	}
	timeoutMs := os.Getenv("MONGO_TIMEOUT_MS")
	if timeout, err := strconv.ParseInt(timeoutMs, 10, 32); err == nil && timeout != 0 {
		opts.SetTimeout(time.Duration(timeout) * time.Millisecond)
	}

	c = &MongoClient{}

	c.client, err = mongo.Connect(ctx, opts)
	if err != nil {
		return
	}

	database := c.client.Database(databaseName)
	c.tasksCollection = database.Collection(tasksCollectionName)
	c.driftsCollection = database.Collection(driftsCollectionName)
	return
}

var _ repository.ReadWriteRepository = (*MongoClient)(nil)

func (m *MongoClient) ListActiveTasks(ctx context.Context, projectId string) (result []*models.WorkItem, err error) {
	filter := bson.D{
		{Key: "projectId", Value: projectId},
		{Key: "status", Value: bson.D{{Key: "$ne", Value: models.StatusCompleted}}},
	}
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	result, err = m.listTasks(ctx, filter, findOptions)
	if err != nil {
		err = errors.Wrapf(err, "list active tasks for project %s", projectId)
	}
	return
}

func (m *MongoClient) ListTasks(ctx context.Context, projectId string) (result []*models.WorkItem, err error) {
	filter := bson.D{{Key: "projectId", Value: projectId}}
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "dueDate", Value: 1}})

	result, err = m.listTasks(ctx, filter, findOptions)
	if err != nil {
		err = errors.Wrapf(err, "list tasks for project %s", projectId)
	}
	return
}

func (m *MongoClient) listTasks(ctx context.Context, filter bson.D, findOptions *options.FindOptions) (result []*models.WorkItem, err error) {
	log.Printf("searching for task documents with filter %+v\n", filter)
	cursor, err := m.tasksCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var wi models.WorkItem
		if err = cursor.Decode(&wi); err != nil {
			return
		}
		result = append(result, &wi)
	}
	if err = cursor.Err(); err != nil {
		return
	}
	return
}

func (m *MongoClient) AddDrift(ctx context.Context, drift *models.Drift) (result *models.Drift, err error) {
	result = drift
	out, err := m.driftsCollection.InsertOne(ctx, drift)
	if err != nil {
		err = errors.Wrap(err, "insert drift")
		return
	}
	id, ok := out.InsertedID.(primitive.ObjectID)
	if !ok {
		return
	}
	result.Id = id
	log.Printf("successfully inserted drift with document id %v\n", id)
	return
}

func (m *MongoClient) ListDrifts(ctx context.Context, projectId string, statuses []string) (result []*models.Drift, err error) {
	filter := bson.D{}
	if projectId != "" {
		filter = append(filter, bson.E{Key: "projectId", Value: projectId})
	}
	if len(statuses) > 0 {
		filter = append(filter, bson.E{Key: "status", Value: bson.D{{Key: "$in", Value: statuses}}})
	}
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := m.driftsCollection.Find(ctx, filter, findOptions)
	if err != nil {
		err = errors.Wrap(err, "list drifts")
		return
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var d models.Drift
		if err = cursor.Decode(&d); err != nil {
			return
		}
		result = append(result, &d)
	}
	if err = cursor.Err(); err != nil {
		return
	}
	return
}

func (m *MongoClient) UpdateDrift(ctx context.Context, drift *models.Drift) (result *models.Drift, err error) {
	filter := bson.D{{Key: "_id", Value: drift.Id}}
	update := bson.M{
		"$set": drift,
	}
	out, err := m.driftsCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		err = errors.Wrapf(err, "update drift %s", drift.Id.Hex())
		return
	}
	result = drift
	log.Printf("successfully updated %v drift document with id %v\n", out.ModifiedCount, drift.Id.Hex())
	return
}
