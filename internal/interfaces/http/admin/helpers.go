package admin

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/application"
	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
	"github.com/sngm3741/facility-feedback-services/api/internal/interfaces/http/common"
)

// adminFeedbackDomainToResponse はドメインの Feedback 集約を Admin UI 用レスポンスへ変換する。
// includeData が真のとき画像のデータURIも含める。
func adminFeedbackDomainToResponse(record domain.Feedback, includeData bool) adminFeedbackResponse {
	attachments := make([]adminAttachmentResponse, 0, len(record.Attachments))
	for _, attachment := range record.Attachments {
		item := adminAttachmentResponse{
			ID:        attachment.ID,
			Name:      attachment.Name,
			Type:      attachment.ContentType,
			Size:      attachment.Size,
			CreatedAt: attachment.CreatedAt,
		}
		if includeData {
			item.Data = attachment.Data
		}
		attachments = append(attachments, item)
	}
	return adminFeedbackResponse{
		ID:                 record.ID,
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
		Shift:              record.Shift.String(),
		Location:           record.Location.String(),
		FloorCondition:     record.FloorCondition.String(),
		OverallCleanliness: record.OverallCleanliness.String(),
		BowlCleanliness:    record.BowlCleanliness.String(),
		TrashBinCondition:  record.TrashBinCondition.String(),
		WaterSupply:        record.WaterSupply.String(),
		Lighting:           record.Lighting.String(),
		Comments:           record.Comments,
		ImageAttachments:   attachments,
	}
}

// parseListFilter は start/end/location クエリを検索条件へ変換する。
// 日付のみの end は当日の終端まで含める。
func (h *Handler) parseListFilter(query url.Values) (application.Filter, error) {
	filter := application.Filter{Location: strings.TrimSpace(query.Get("location"))}

	startRaw := strings.TrimSpace(query.Get("start"))
	if startRaw != "" {
		start, ok := common.ParseDateTime(startRaw, h.location)
		if !ok {
			return filter, fmt.Errorf("開始日の形式が不正です: %s", startRaw)
		}
		filter.From = &start
	}

	endRaw := strings.TrimSpace(query.Get("end"))
	if endRaw != "" {
		end, ok := common.ParseDateTime(endRaw, h.location)
		if !ok {
			return filter, fmt.Errorf("終了日の形式が不正です: %s", endRaw)
		}
		if len(endRaw) == len("2006-01-02") {
			end = common.EndOfDay(end)
		}
		filter.To = &end
	}

	if (filter.From == nil) != (filter.To == nil) {
		return filter, errors.New("開始日と終了日は両方指定してください")
	}
	return filter, nil
}

// buildUpdateCommand は PATCH リクエストを更新コマンドへ変換する。
func buildUpdateCommand(req updateFeedbackRequest, existingAttachments int) (application.UpdateCommand, error) {
	var cmd application.UpdateCommand

	if req.Shift != nil {
		shift, err := domain.NewShift(*req.Shift)
		if err != nil {
			return cmd, err
		}
		cmd.Shift = &shift
	}
	if req.Location != nil {
		location, err := domain.NewLocation(*req.Location)
		if err != nil {
			return cmd, err
		}
		cmd.Location = &location
	}
	if req.FloorCondition != nil {
		rating, err := domain.NewCleanlinessRating(*req.FloorCondition)
		if err != nil {
			return cmd, err
		}
		cmd.FloorCondition = &rating
	}
	if req.OverallCleanliness != nil {
		rating, err := domain.NewCleanlinessRating(*req.OverallCleanliness)
		if err != nil {
			return cmd, err
		}
		cmd.OverallCleanliness = &rating
	}
	if req.BowlCleanliness != nil {
		rating, err := domain.NewCleanlinessRating(*req.BowlCleanliness)
		if err != nil {
			return cmd, err
		}
		cmd.BowlCleanliness = &rating
	}
	if req.TrashBinCondition != nil {
		condition, err := domain.NewTrashBinCondition(*req.TrashBinCondition)
		if err != nil {
			return cmd, err
		}
		cmd.TrashBinCondition = &condition
	}
	if req.WaterSupply != nil {
		supply, err := domain.NewWaterSupply(*req.WaterSupply)
		if err != nil {
			return cmd, err
		}
		cmd.WaterSupply = &supply
	}
	if req.Lighting != nil {
		lighting, err := domain.NewLighting(*req.Lighting)
		if err != nil {
			return cmd, err
		}
		cmd.Lighting = &lighting
	}
	if req.Comments != nil {
		comments := strings.TrimSpace(*req.Comments)
		cmd.Comments = &comments
	}

	if len(req.NewImageAttachments) > 0 {
		files, err := decodeAdminUploads(req.NewImageAttachments)
		if err != nil {
			return cmd, err
		}
		attachments, err := domain.EncodeBatch(existingAttachments, files)
		if err != nil && !errors.Is(err, domain.ErrTooManyImages) {
			return cmd, err
		}
		if errors.Is(err, domain.ErrTooManyImages) {
			return cmd, fmt.Errorf("画像は合計%d枚までです", domain.MaxAttachmentCount)
		}
		cmd.NewAttachments = attachments
	}

	return cmd, nil
}

// decodeAdminUploads は base64 画像ペイロードを生ファイルへ復元する。
func decodeAdminUploads(payloads []adminImagePayload) ([]domain.File, error) {
	files := make([]domain.File, 0, len(payloads))
	for _, payload := range payloads {
		data := payload.Data
		contentType := strings.TrimSpace(payload.Type)
		if strings.HasPrefix(data, "data:") {
			if idx := strings.Index(data, ";base64,"); idx >= 0 {
				if contentType == "" {
					contentType = data[len("data:"):idx]
				}
				data = data[idx+len(";base64,"):]
			}
		}
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("画像データの形式が不正です: %s", payload.Name)
		}
		files = append(files, domain.File{
			Name:        payload.Name,
			ContentType: contentType,
			Data:        decoded,
		})
	}
	return files, nil
}

// exportFilename は出力PDFのファイル名を生成する。
func exportFilename(generatedAt time.Time) string {
	return fmt.Sprintf("feedback-report-%s.pdf", generatedAt.Format("20060102-1504"))
}
