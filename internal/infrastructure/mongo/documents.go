package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedbackDocument は MongoDB 上でのフィードバックスキーマを Go 構造体として表現したもの。
// 画像は外部ストレージを持たず、インラインの data URI としてドキュメント内に埋め込む。
type FeedbackDocument struct {
	ID                 primitive.ObjectID   `bson:"_id"`
	Shift              string               `bson:"shift"`
	Location           string               `bson:"location"`
	FloorCondition     string               `bson:"floorCondition,omitempty"`
	OverallCleanliness string               `bson:"overallCleanliness,omitempty"`
	BowlCleanliness    string               `bson:"bowlCleanliness,omitempty"`
	TrashBinCondition  string               `bson:"trashBinCondition,omitempty"`
	WaterSupply        string               `bson:"waterSupply,omitempty"`
	Lighting           string               `bson:"lighting,omitempty"`
	Comments           string               `bson:"comments,omitempty"`
	Attachments        []AttachmentDocument `bson:"imageAttachments,omitempty"`
	CreatedAt          time.Time            `bson:"createdAt"`
	UpdatedAt          time.Time            `bson:"updatedAt"`
}

// AttachmentDocument は添付画像 1 枚分のメタデータと本体を格納する埋め込みドキュメント。
type AttachmentDocument struct {
	ID          string    `bson:"id"`
	Name        string    `bson:"name"`
	ContentType string    `bson:"type"`
	Size        int64     `bson:"size"`
	Data        string    `bson:"data"`
	CreatedAt   time.Time `bson:"createdAt"`
}

// NotificationFailureDocument は通知送信に失敗した際の再送用レコード。
type NotificationFailureDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Target      string             `bson:"target"`
	Payload     map[string]string  `bson:"payload"`
	Error       string             `bson:"error"`
	Attempts    int                `bson:"attempts"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	LastTriedAt time.Time          `bson:"lastTriedAt"`
}
