package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
	mongodoc "github.com/sngm3741/facility-feedback-services/api/internal/infrastructure/mongo"
)

type seedOptions struct {
	mongoURI        string
	database        string
	collection      string
	feedbackCount   int
	dropCollections bool
	randomSeed      int64
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.mongoURI, "uri", "mongodb://localhost:27017", "MongoDB 接続URI")
	flag.StringVar(&opts.database, "db", "facility-feedback", "データベース名")
	flag.StringVar(&opts.collection, "collection", "feedbacks", "フィードバックコレクション名")
	flag.IntVar(&opts.feedbackCount, "feedbacks", 50, "生成するフィードバック数")
	flag.BoolVar(&opts.dropCollections, "drop", true, "既存コレクションを削除してから投入する")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "乱数シード（再現用）")
	flag.Parse()
	return opts
}

var (
	shifts = []string{"A", "B", "General"}

	ratings    = []string{"veryClean", "clean", "moderatelyClean", "dirty", ""}
	trashBins  = []string{"empty", "halfFull", "full", "noTrashBin", ""}
	waterState = []string{"sufficient", "insufficient", "noWater", ""}
	lightings  = []string{"wellLit", "sufficient", "dimLight", ""}

	sampleComments = []string{
		"",
		"Floor was wet near the entrance.",
		"Soap dispenser needs a refill.",
		"Very clean this morning, well done.",
		"Trash bin overflowing since yesterday evening.",
		"One of the taps keeps dripping.",
	}
)

func main() {
	opts := parseFlags()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.mongoURI))
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(opts.database)
	collection := db.Collection(opts.collection)

	if opts.dropCollections {
		if err := collection.Drop(ctx); err != nil {
			log.Fatalf("コレクション削除に失敗しました: %v", err)
		}
		log.Printf("既存コレクションを削除しました")
	}

	if err := ensureIndexes(ctx, collection); err != nil {
		log.Fatalf("インデックス作成に失敗しました: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	docs := generateFeedbacks(rng, opts.feedbackCount)
	if len(docs) == 0 {
		log.Fatal("feedback docs が生成されませんでした")
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		log.Fatalf("フィードバックデータの挿入に失敗しました: %v", err)
	}

	log.Printf("Seed 完了: feedbacks=%d", len(docs))
	log.Printf("Mongo: %s / %s", opts.mongoURI, opts.database)
}

// ensureIndexes は一覧取得で使う createdAt の降順インデックスを保証する。
func ensureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}

// generateFeedbacks は過去30日に分散したダミーのフィードバックを生成する。
func generateFeedbacks(rng *rand.Rand, count int) []any {
	locations := domain.Locations()
	now := time.Now().UTC()

	docs := make([]any, 0, count)
	for i := 0; i < count; i++ {
		createdAt := now.Add(-time.Duration(rng.Intn(30*24*60)) * time.Minute)
		doc := mongodoc.FeedbackDocument{
			ID:                 primitive.NewObjectID(),
			Shift:              shifts[rng.Intn(len(shifts))],
			Location:           locations[rng.Intn(len(locations))],
			FloorCondition:     ratings[rng.Intn(len(ratings))],
			OverallCleanliness: ratings[rng.Intn(len(ratings))],
			BowlCleanliness:    ratings[rng.Intn(len(ratings))],
			TrashBinCondition:  trashBins[rng.Intn(len(trashBins))],
			WaterSupply:        waterState[rng.Intn(len(waterState))],
			Lighting:           lightings[rng.Intn(len(lightings))],
			Comments:           sampleComments[rng.Intn(len(sampleComments))],
			CreatedAt:          createdAt,
			UpdatedAt:          createdAt,
		}
		if rng.Intn(4) == 0 {
			doc.Attachments = []mongodoc.AttachmentDocument{
				{
					ID:          fmt.Sprintf("seed-%d", i),
					Name:        fmt.Sprintf("photo-%d.png", i),
					ContentType: "image/png",
					Size:        68,
					Data:        "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg==",
					CreatedAt:   createdAt,
				},
			}
		}
		docs = append(docs, doc)
	}
	return docs
}
