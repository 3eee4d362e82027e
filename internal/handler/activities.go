package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/euro-itinerary/internal/domain"
)

// multipartMemory is how much of a multipart upload is buffered in memory
// before spilling to temporary files.
const multipartMemory = 8 << 20

// Activity is the JSON representation of a day-plan activity.
type Activity struct {
	ID          string       `json:"id"`
	Time        string       `json:"time"`
	Description string       `json:"description"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment is the JSON representation of an inline attachment.
type Attachment struct {
	ID   string                `json:"id"`
	Name string                `json:"name"`
	Type domain.AttachmentType `json:"type"`
	Data string                `json:"data"`
}

// ActivityRequest is the body of POST and PATCH on activities.
type ActivityRequest struct {
	Time        *string `json:"time"`
	Description *string `json:"description"`
}

// AddActivity handles POST /trip/days/{date}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	var body ActivityRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &body) {
		return
	}

	created, err := s.planner.AddActivity(r.Context(), chi.URLParam(r, "date"), domain.ActivityDraft{
		Time:        body.Time,
		Description: body.Description,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "day not found")
		return
	}
	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// UpdateActivity handles PATCH /trip/days/{date}/activities/{activityId}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var body ActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.planner.UpdateActivity(r.Context(), chi.URLParam(r, "date"), chi.URLParam(r, "activityId"),
		domain.ActivityPatch{Time: body.Time, Description: body.Description})
	if err != nil {
		s.writeServiceError(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, activityToResponse(updated))
}

// RemoveActivity handles DELETE /trip/days/{date}/activities/{activityId}.
func (s *Server) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	err := s.planner.RemoveActivity(r.Context(), chi.URLParam(r, "date"), chi.URLParam(r, "activityId"))
	if err != nil {
		s.writeServiceError(w, r, err, "activity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AttachFiles handles POST /trip/days/{date}/activities/{activityId}/attachments.
// Expects a multipart form with one or more "files" parts. Parts that are
// neither images nor PDFs are ignored; the response lists what was attached.
func (s *Server) AttachFiles(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge,
				ErrorResponse{Error: ErrorDetail{Code: "request_too_large", Message: "request body too large"}})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("multipart form body is required"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("at least one file is required in the files field"))
		return
	}

	uploads := make([]domain.Upload, 0, len(headers))
	for _, fh := range headers {
		var f openapi_types.File
		f.InitFromMultipart(fh)
		data, err := f.Bytes()
		if err != nil {
			s.writeServiceError(w, r, err, "")
			return
		}
		uploads = append(uploads, domain.Upload{
			Name:        f.Filename(),
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	added, err := s.planner.AttachFiles(r.Context(), chi.URLParam(r, "date"), chi.URLParam(r, "activityId"), uploads)
	if err != nil {
		s.writeServiceError(w, r, err, "activity not found")
		return
	}
	out := make([]Attachment, len(added))
	for i, a := range added {
		out[i] = attachmentToResponse(a)
	}
	writeJSON(w, http.StatusCreated, out)
}

// RemoveAttachment handles
// DELETE /trip/days/{date}/activities/{activityId}/attachments/{attachmentId}.
func (s *Server) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	err := s.planner.RemoveAttachment(r.Context(),
		chi.URLParam(r, "date"), chi.URLParam(r, "activityId"), chi.URLParam(r, "attachmentId"))
	if err != nil {
		s.writeServiceError(w, r, err, "attachment not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func activityToResponse(a domain.Activity) Activity {
	resp := Activity{
		ID:          a.ID,
		Time:        a.Time,
		Description: a.Description,
		Attachments: make([]Attachment, len(a.Attachments)),
	}
	for i, att := range a.Attachments {
		resp.Attachments[i] = attachmentToResponse(att)
	}
	return resp
}

func attachmentToResponse(a domain.Attachment) Attachment {
	return Attachment{ID: a.ID, Name: a.Name, Type: a.Type, Data: a.Data}
}
