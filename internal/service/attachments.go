package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/pkordes/euro-itinerary/internal/domain"
)

const mimePDF = "application/pdf"

// AttachFiles converts uploads into inline attachments and appends them, in
// order, to an activity of the day plan for date. Only images and PDFs are
// kept; other uploads are skipped without error.
// Returns the attachments that were added, or domain.ErrNotFound when the day
// or activity does not exist.
func (s *PlannerService) AttachFiles(ctx context.Context, date, activityID string, uploads []domain.Upload) ([]domain.Attachment, error) {
	added := make([]domain.Attachment, 0, len(uploads))
	for _, u := range uploads {
		mediaType, kind, ok := classify(u)
		if !ok {
			s.log.DebugContext(ctx, "skipping unsupported attachment", "name", u.Name, "content_type", u.ContentType)
			continue
		}
		added = append(added, domain.Attachment{
			ID:   s.newID(),
			Name: u.Name,
			Type: kind,
			Data: "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(u.Data),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.editActivity(ctx, "AttachFiles", date, activityID, func(a domain.Activity) (domain.Activity, error) {
		a.Attachments = append(slices.Clip(a.Attachments), added...)
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// RemoveAttachment deletes one attachment from an activity. The activity
// itself is kept even when it loses its last attachment.
// Returns domain.ErrNotFound when the day, activity or attachment does not exist.
func (s *PlannerService) RemoveAttachment(ctx context.Context, date, activityID, attachmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editActivity(ctx, "RemoveAttachment", date, activityID, func(a domain.Activity) (domain.Activity, error) {
		i := slices.IndexFunc(a.Attachments, func(att domain.Attachment) bool { return att.ID == attachmentID })
		if i < 0 {
			return domain.Activity{}, fmt.Errorf("attachment %s: %w", attachmentID, domain.ErrNotFound)
		}
		a.Attachments = slices.Delete(slices.Clone(a.Attachments), i, i+1)
		return a, nil
	})
}

// classify resolves the media type of an upload. The declared type wins
// unless it is missing or generic, in which case the content is sniffed.
func classify(u domain.Upload) (mediaType string, kind domain.AttachmentType, ok bool) {
	declared, _, err := mime.ParseMediaType(u.ContentType)
	if err != nil || declared == "" || declared == "application/octet-stream" {
		declared, _, _ = mime.ParseMediaType(mimetype.Detect(u.Data).String())
	}
	switch {
	case strings.HasPrefix(declared, "image/"):
		return declared, domain.AttachmentImage, true
	case declared == mimePDF:
		return declared, domain.AttachmentPDF, true
	default:
		return "", "", false
	}
}
