package public

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/application"
	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
	"github.com/sngm3741/facility-feedback-services/api/internal/interfaces/http/common"
)

func (p *feedbackPayload) toDraft() domain.Draft {
	return domain.Draft{
		DateTime:           p.DateTime,
		Shift:              p.Shift,
		Location:           p.Location,
		FloorCondition:     p.FloorCondition,
		OverallCleanliness: p.OverallCleanliness,
		BowlCleanliness:    p.BowlCleanliness,
		TrashBinCondition:  p.TrashBinCondition,
		WaterSupply:        p.WaterSupply,
		Lighting:           p.Lighting,
		Comments:           p.Comments,
	}
}

func (p *feedbackPayload) validate() error {
	if err := p.toDraft().Validate(); err != nil {
		return err
	}
	if utf8.RuneCountInString(strings.TrimSpace(p.Comments)) > common.MaxFeedbackCommentRunes {
		return fmt.Errorf("コメントは%d文字以内で入力してください", common.MaxFeedbackCommentRunes)
	}
	return nil
}

// decodeUploads converts the base64 image payloads into raw files. Data
// URIs pasted straight from a browser are accepted too.
func decodeUploads(payloads []imageUploadPayload) ([]domain.File, error) {
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

func (h *Handler) feedbackCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req feedbackPayload
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxFeedbackRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("リクエストの形式が不正です: %v", err),
			})
			return
		}

		if err := req.validate(); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		cmd, warning, err := h.buildSubmitCommand(req)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := h.commands.Submit(ctx, cmd)
		if err != nil {
			h.logger.Printf("フィードバックの保存に失敗: %v", err)
			http.Error(w, "フィードバックの保存に失敗しました", http.StatusInternalServerError)
			return
		}

		if h.dispatcher != nil {
			record := created.Clone()
			go h.dispatcher.Notify(context.Background(), record)
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, createFeedbackResponse{
			Status:   "created",
			Warning:  warning,
			Feedback: buildFeedbackResponse(*created),
		})
	}
}

// buildSubmitCommand turns the validated payload into a submit command.
// An over-limit image batch is truncated, not rejected: the surviving
// images are kept and the submitter gets a warning in the response.
func (h *Handler) buildSubmitCommand(req feedbackPayload) (application.SubmitCommand, string, error) {
	var cmd application.SubmitCommand

	createdAt, ok := common.ParseDateTime(req.DateTime, h.location)
	if !ok {
		return cmd, "", errors.New("日時の形式が不正です")
	}

	shift, err := domain.NewShift(req.Shift)
	if err != nil {
		return cmd, "", err
	}
	location, err := domain.NewLocation(req.Location)
	if err != nil {
		return cmd, "", err
	}
	floor, err := domain.NewCleanlinessRating(req.FloorCondition)
	if err != nil {
		return cmd, "", err
	}
	overall, err := domain.NewCleanlinessRating(req.OverallCleanliness)
	if err != nil {
		return cmd, "", err
	}
	bowl, err := domain.NewCleanlinessRating(req.BowlCleanliness)
	if err != nil {
		return cmd, "", err
	}
	trashBin, err := domain.NewTrashBinCondition(req.TrashBinCondition)
	if err != nil {
		return cmd, "", err
	}
	waterSupply, err := domain.NewWaterSupply(req.WaterSupply)
	if err != nil {
		return cmd, "", err
	}
	lighting, err := domain.NewLighting(req.Lighting)
	if err != nil {
		return cmd, "", err
	}

	files, err := decodeUploads(req.ImageAttachments)
	if err != nil {
		return cmd, "", err
	}

	warning := ""
	attachments, err := domain.EncodeBatch(0, files)
	if err != nil {
		if !errors.Is(err, domain.ErrTooManyImages) {
			return cmd, "", err
		}
		warning = fmt.Sprintf("画像は最大%d枚までのため、超過分は保存されませんでした", domain.MaxAttachmentCount)
	}

	cmd = application.SubmitCommand{
		CreatedAt:          createdAt.UTC(),
		Shift:              shift,
		Location:           location,
		FloorCondition:     floor,
		OverallCleanliness: overall,
		BowlCleanliness:    bowl,
		TrashBinCondition:  trashBin,
		WaterSupply:        waterSupply,
		Lighting:           lighting,
		Comments:           strings.TrimSpace(req.Comments),
		Attachments:        attachments,
	}
	return cmd, warning, nil
}
