package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/vincentbai/watss-forms/internal/export"
	"github.com/vincentbai/watss-forms/internal/models"
	"github.com/vincentbai/watss-forms/internal/relay"
	"github.com/vincentbai/watss-forms/internal/submissions"
)

const maxFormBytes = 1 << 20

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("ok"))
}

// handleEvents lists the event checkboxes the join form offers.
func (s *Server) handleEvents(w http.ResponseWriter, _ *http.Request) {
	labels := s.options.EventLabels
	if labels == nil {
		labels = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"events": labels})
}

func (s *Server) handleSubmit(w http.ResponseWriter, request *http.Request) {
	payload, err := decodeSubmit(request)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	if s.relayVariant() {
		s.forward(w, request, payload)
		return
	}

	list, err := s.store.Append(request.Context(), payload.Name, payload.Email, payload.Events)
	if err != nil {
		var (
			validation *submissions.ValidationError
			corrupt    *submissions.CorruptStorageError
		)
		switch {
		case errors.As(err, &validation):
			writeError(w, http.StatusBadRequest, validation.Message)
		case errors.As(err, &corrupt):
			s.logger.Error("stored submissions unreadable", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Stored submissions are unreadable")
		default:
			s.logger.Error("failed to save submission", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to save submission")
		}
		return
	}

	s.logger.Info("saved submission",
		zap.String("name", list[len(list)-1].Name),
		zap.Int("count", len(list)),
		zap.String("request_id", requestIDFromContext(request.Context())))
	writeJSON(w, http.StatusOK, models.SubmitResponse{
		Success: true,
		Message: "Submission saved successfully",
		Count:   len(list),
	})
}

func (s *Server) forward(w http.ResponseWriter, request *http.Request, payload models.SubmitRequest) {
	name, email, err := submissions.Validate(payload.Name, payload.Email)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	err = s.relay.Submit(request.Context(), relay.Fields{Name: name, Email: email, Events: payload.Events})
	if err != nil {
		s.logger.Warn("relay submission failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, relay.UserMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, models.SubmitResponse{Success: true, Message: "Submission forwarded successfully"})
}

// decodeSubmit accepts a JSON body or an HTML form post.
func decodeSubmit(request *http.Request) (models.SubmitRequest, error) {
	var payload models.SubmitRequest
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := request.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return payload, err
		}
		payload.Name = request.PostFormValue("name")
		payload.Email = request.PostFormValue("email")
		payload.Events = request.PostForm["events"]
		if len(payload.Events) == 0 {
			payload.Events = request.PostForm["event"]
		}
		return payload, nil
	default:
		decoder := json.NewDecoder(io.LimitReader(request.Body, maxFormBytes))
		err := decoder.Decode(&payload)
		return payload, err
	}
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, request *http.Request) {
	list, err := s.store.List(request.Context())
	if err != nil {
		s.logger.Error("failed to read submissions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Stored submissions are unreadable")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleStatus(w http.ResponseWriter, request *http.Request) {
	status, err := s.store.Status(request.Context())
	if err != nil {
		s.logger.Error("failed to read submissions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Stored submissions are unreadable")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleDownload(w http.ResponseWriter, request *http.Request) {
	filename := strings.TrimSpace(request.URL.Query().Get("filename"))
	if filename == "" {
		filename = s.options.Filename
	}

	list, err := s.store.List(request.Context())
	if err != nil {
		s.logger.Error("failed to read submissions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Stored submissions are unreadable")
		return
	}
	if err := export.Download(request.Context(), export.HTTPDownloader{W: w}, list, filename); err != nil {
		if errors.Is(err, export.ErrNothingToDownload) {
			writeError(w, http.StatusConflict, export.MessageNothingToDownload)
			return
		}
		s.logger.Error("csv download failed", zap.Error(err))
	}
}
