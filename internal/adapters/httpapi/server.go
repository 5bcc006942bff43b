package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/bnema/fibdrv/internal/application"
	"github.com/bnema/fibdrv/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 16

var errMalformedBody = errors.New("malformed request body")

// Server exposes a Device over HTTP. Each POST /sessions plays the part of an
// open on the device node and hands back a serial that later calls address.
type Server struct {
	dev    *application.Device
	logger *log.Logger

	mu       sync.Mutex
	sessions map[uint32]*application.Session
}

func NewServer(dev *application.Device, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Server{
		dev:      dev,
		logger:   logger,
		sessions: make(map[uint32]*application.Session),
	}
}

// Handler wires the routes into a chi router and exposes a health check.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/seek", s.handleDeviceSeek)
	r.Post("/sessions", s.handleOpen)
	r.Route("/sessions/{serial}", func(r chi.Router) {
		r.Delete("/", s.handleClose)
		r.Post("/seek", s.handleSessionSeek)
		r.Get("/read", s.handleRead)
		r.Post("/write", s.handleWrite)
	})

	return r
}

// Close releases every session still registered, so the device is free once
// the listener has stopped.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for serial, session := range s.sessions {
		if err := session.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close session %d: %w", serial, err))
		}
		delete(s.sessions, serial)
	}

	return errors.Join(errs...)
}

type seekRequest struct {
	Offset int64  `json:"offset"`
	Whence string `json:"whence"`
}

type seekResponse struct {
	Position int64 `json:"position"`
}

type openResponse struct {
	Serial uint32 `json:"serial"`
}

type readResponse struct {
	Index  int64  `json:"index"`
	Digits string `json:"digits"`
	Length int    `json:"length"`
}

type writeResponse struct {
	ElapsedNs int64 `json:"elapsed_ns"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request) {
	session, err := s.dev.Open(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	s.sessions[session.Serial()] = session
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, openResponse{Serial: session.Serial()})
}

func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	serial, ok := parseSerial(r)
	if !ok {
		s.writeError(w, domain.ErrSessionClosed)
		return
	}

	s.mu.Lock()
	session, found := s.sessions[serial]
	delete(s.sessions, serial)
	s.mu.Unlock()

	if !found {
		s.writeError(w, domain.ErrSessionClosed)
		return
	}
	if err := session.Close(); err != nil {
		s.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeviceSeek(w http.ResponseWriter, r *http.Request) {
	req, whence, err := decodeSeek(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, seekResponse{Position: s.dev.SeekTo(req.Offset, whence)})
}

func (s *Server) handleSessionSeek(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}

	req, whence, err := decodeSeek(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, seekResponse{Position: session.SeekTo(req.Offset, whence)})
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}

	value, err := session.Read(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, readResponse{
		Index:  value.Index,
		Digits: value.String(),
		Length: value.Len(),
	})
}

func (s *Server) handleWrite(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", errMalformedBody, err))
		return
	}

	ns, err := session.Write(payload)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, writeResponse{ElapsedNs: ns})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*application.Session, bool) {
	serial, ok := parseSerial(r)
	if !ok {
		s.writeError(w, domain.ErrSessionClosed)
		return nil, false
	}

	s.mu.Lock()
	session, found := s.sessions[serial]
	s.mu.Unlock()

	if !found {
		s.writeError(w, domain.ErrSessionClosed)
		return nil, false
	}

	return session, true
}

func parseSerial(r *http.Request) (uint32, bool) {
	serial, err := strconv.ParseUint(chi.URLParam(r, "serial"), 10, 32)
	if err != nil || serial == 0 {
		return 0, false
	}

	return uint32(serial), true
}

func decodeSeek(r *http.Request) (seekRequest, domain.Whence, error) {
	var req seekRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return seekRequest{}, 0, fmt.Errorf("%w: %v", errMalformedBody, err)
	}

	whence, err := domain.ParseWhence(req.Whence)
	if err != nil {
		return seekRequest{}, 0, err
	}

	return req, whence, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSessionClosed):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidWhence), errors.Is(err, errMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAllocation):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Printf("request failed: %v", err)
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
