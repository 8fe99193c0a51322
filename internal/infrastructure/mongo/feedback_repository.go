package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
)

// FeedbackRepository はフィードバック集約を MongoDB で扱う実装リポジトリ。
// 一覧系クエリはすべて createdAt 降順を保証する。
type FeedbackRepository struct {
	feedbacks *mongo.Collection
}

// NewFeedbackRepository はフィードバックコレクションを束縛したリポジトリを構築する。
func NewFeedbackRepository(db *mongo.Database, collection string) *FeedbackRepository {
	return &FeedbackRepository{feedbacks: db.Collection(collection)}
}

// Create はフィードバック投稿を Mongo に追加し、ドメインモデルへ採番結果を反映する。
// レコードと添付画像は単一ドキュメントとして一括書き込みするため、中途半端な状態は残らない。
func (r *FeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	now := time.Now().UTC()
	createdAt := feedback.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := feedback.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	doc := mapFeedbackToDocument(*feedback)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = createdAt
	doc.UpdatedAt = updatedAt

	if _, err := r.feedbacks.InsertOne(ctx, doc); err != nil {
		return err
	}

	feedback.ID = doc.ID.Hex()
	feedback.CreatedAt = doc.CreatedAt
	feedback.UpdatedAt = doc.UpdatedAt
	return nil
}

// FindAll は全件を createdAt 降順で返す。一覧画面の表示順契約はここで担保する。
func (r *FeedbackRepository) FindAll(ctx context.Context) ([]domain.Feedback, error) {
	return r.find(ctx, bson.M{})
}

// FindByDateRange は createdAt が [from, to] に収まるレコードを降順で返す。境界は両端とも含む。
func (r *FeedbackRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Feedback, error) {
	return r.find(ctx, bson.M{"createdAt": bson.M{"$gte": from, "$lte": to}})
}

// FindByID はフィードバック ID から単一レコードを取得する。
func (r *FeedbackRepository) FindByID(ctx context.Context, id string) (*domain.Feedback, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc FeedbackDocument
	if err := r.feedbacks.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	feedback := mapFeedbackDocument(doc)
	return &feedback, nil
}

// Update はパッチ済みフィールドの差し替えと添付列の置き換えを 1 回の更新で行う。
// 添付の追記ルール (置換禁止) はアプリケーション層で組み立て済みのため、ここでは全列を書き戻す。
func (r *FeedbackRepository) Update(ctx context.Context, feedback *domain.Feedback) error {
	objectID, err := parseObjectID(feedback.ID)
	if err != nil {
		return err
	}

	doc := mapFeedbackToDocument(*feedback)
	update := bson.M{"$set": bson.M{
		"shift":              doc.Shift,
		"location":           doc.Location,
		"floorCondition":     doc.FloorCondition,
		"overallCleanliness": doc.OverallCleanliness,
		"bowlCleanliness":    doc.BowlCleanliness,
		"trashBinCondition":  doc.TrashBinCondition,
		"waterSupply":        doc.WaterSupply,
		"lighting":           doc.Lighting,
		"comments":           doc.Comments,
		"imageAttachments":   doc.Attachments,
		"updatedAt":          doc.UpdatedAt,
	}}

	result, err := r.feedbacks.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete は ID 指定でレコードを削除する。存在しない ID は黙って握りつぶさずエラーにする。
func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.feedbacks.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// find はフィルタ条件付きの一覧取得を createdAt 降順で実行する共通処理。
func (r *FeedbackRepository) find(ctx context.Context, filter bson.M) ([]domain.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.feedbacks.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	feedbacks := make([]domain.Feedback, 0)
	for cursor.Next(ctx) {
		var doc FeedbackDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, mapFeedbackDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// parseObjectID は不正 ID も NotFound として扱い、呼び出し側の分岐を単純化する。
func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, domain.ErrNotFound
	}
	return objectID, nil
}

// mapFeedbackDocument は Mongo ドキュメントをドメイン Feedback へ復元する。
func mapFeedbackDocument(doc FeedbackDocument) domain.Feedback {
	attachments := make([]domain.Attachment, 0, len(doc.Attachments))
	for _, attachment := range doc.Attachments {
		attachments = append(attachments, domain.Attachment{
			ID:          attachment.ID,
			Name:        attachment.Name,
			ContentType: attachment.ContentType,
			Size:        attachment.Size,
			Data:        attachment.Data,
			CreatedAt:   attachment.CreatedAt,
		})
	}
	if len(attachments) == 0 {
		attachments = nil
	}

	return domain.Feedback{
		ID:                 doc.ID.Hex(),
		Shift:              domain.Shift(doc.Shift),
		Location:           domain.Location(doc.Location),
		FloorCondition:     domain.CleanlinessRating(doc.FloorCondition),
		OverallCleanliness: domain.CleanlinessRating(doc.OverallCleanliness),
		BowlCleanliness:    domain.CleanlinessRating(doc.BowlCleanliness),
		TrashBinCondition:  domain.TrashBinCondition(doc.TrashBinCondition),
		WaterSupply:        domain.WaterSupply(doc.WaterSupply),
		Lighting:           domain.Lighting(doc.Lighting),
		Comments:           doc.Comments,
		Attachments:        attachments,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}
}

// mapFeedbackToDocument はドメイン Feedback を Mongo ドキュメントへ変換する。
func mapFeedbackToDocument(feedback domain.Feedback) FeedbackDocument {
	attachments := make([]AttachmentDocument, 0, len(feedback.Attachments))
	for _, attachment := range feedback.Attachments {
		attachments = append(attachments, AttachmentDocument{
			ID:          attachment.ID,
			Name:        attachment.Name,
			ContentType: attachment.ContentType,
			Size:        attachment.Size,
			Data:        attachment.Data,
			CreatedAt:   attachment.CreatedAt,
		})
	}
	if len(attachments) == 0 {
		attachments = nil
	}

	return FeedbackDocument{
		Shift:              feedback.Shift.String(),
		Location:           feedback.Location.String(),
		FloorCondition:     feedback.FloorCondition.String(),
		OverallCleanliness: feedback.OverallCleanliness.String(),
		BowlCleanliness:    feedback.BowlCleanliness.String(),
		TrashBinCondition:  feedback.TrashBinCondition.String(),
		WaterSupply:        feedback.WaterSupply.String(),
		Lighting:           feedback.Lighting.String(),
		Comments:           feedback.Comments,
		Attachments:        attachments,
		CreatedAt:          feedback.CreatedAt,
		UpdatedAt:          feedback.UpdatedAt,
	}
}
