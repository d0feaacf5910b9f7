package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/diillson/sme-health-dashboard-go/internal/adapter/driven/records"
	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/internal/domain/health"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
	"github.com/sirupsen/logrus"
)

var errNoUpload = errors.New("file is required")

type assessmentResponse struct {
	Records    []entity.MonthlyRecord `json:"records"`
	Assessment entity.Assessment      `json:"assessment"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, pageView{})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	recs, a, err := s.evaluateUpload(w, r)
	if err != nil {
		status := statusFor(err)
		s.metrics.RecordFailure(status)
		s.renderPage(w, status, pageView{Error: err.Error()})
		return
	}
	s.renderPage(w, http.StatusOK, pageView{Dashboard: newDashboardView(recs, a)})
}

func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	recs, a, err := s.evaluateUpload(w, r)
	if err != nil {
		status := statusFor(err)
		s.metrics.RecordFailure(status)
		s.writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, assessmentResponse{Records: recs, Assessment: a})
}

// evaluateUpload lê o CSV (campo multipart "file" ou corpo cru) e avalia.
func (s *Server) evaluateUpload(w http.ResponseWriter, r *http.Request) ([]entity.MonthlyRecord, entity.Assessment, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	body, closeBody, err := uploadReader(r)
	if err != nil {
		return nil, entity.Assessment{}, err
	}
	defer closeBody()

	recs, err := records.ParseCSV(body)
	if err != nil {
		return nil, entity.Assessment{}, err
	}

	a, err := health.Evaluate(recs)
	if err != nil {
		s.logger.WithError(err).WithField("request_id", requestID(r)).Warn("assessment failed")
		return nil, entity.Assessment{}, err
	}
	s.metrics.RecordAssessment(a.Risk.String())

	s.logger.WithFields(logrus.Fields{
		"request_id": requestID(r),
		"months":     a.Months,
		"score":      int(a.Score),
		"risk":       a.Risk.String(),
	}).Debug("assessment computed")

	return recs, a, nil
}

func uploadReader(r *http.Request) (io.Reader, func(), error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, func() {}, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, fmt.Errorf("invalid upload: %w", err)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, nil, errNoUpload
	}
	return file, func() { file.Close() }, nil
}

// statusFor mapeia erros de entrada para 400 e erros do motor para 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrEmptyRecordSet), errors.Is(err, types.ErrZeroRevenue):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func (s *Server) renderPage(w http.ResponseWriter, status int, view pageView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, view); err != nil {
		s.logger.WithError(err).Error("rendering page")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("encoding response")
	}
}
