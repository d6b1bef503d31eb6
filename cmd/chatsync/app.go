package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/chat-sync/internal/logger"
	"bitbucket.org/sotavant/chat-sync/internal/models"
	"bitbucket.org/sotavant/chat-sync/internal/store"
)

type app struct {
	// mu serialises every store access: the store has a single writer.
	mu    sync.Mutex
	store store.Store
}

func newApp(s store.Store) *app {
	return &app{store: s}
}

type syncResult struct {
	Admitted int   `json:"admitted"`
	Revision int64 `json:"revision"`
}

type stateView struct {
	Ready      int    `json:"ready"`
	Revision   int64  `json:"revision"`
	Operations int    `json:"operations"`
	MediaURL   string `json:"mediaURL"`
}

func (a *app) routes() http.HandlerFunc {
	mux := http.NewServeMux()
	mux.HandleFunc("/operations", a.operations)
	mux.HandleFunc("/contacts", a.contacts)
	mux.HandleFunc("/messages", a.messages)
	mux.HandleFunc("/profile", a.profile)
	mux.HandleFunc("/state", a.state)

	return logger.RequestLogger(gzipMiddleware(mux.ServeHTTP))
}

// operations ingests a batch delivered by the transport and moves the
// watermark to its tail.
func (a *app) operations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var batch []models.Operation
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		logger.Log.Debug("cannot decode operations batch", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	res := syncResult{Admitted: a.store.Ingest(batch), Revision: a.store.Revision()}
	// short batches and batches with a stale tail leave the watermark unchanged.
	if tail, ok := tailRevision(batch); !ok || tail < res.Revision {
		logger.Log.Debug("keeping revision watermark",
			zap.Int("received", len(batch)),
			zap.Int64("revision", res.Revision),
		)
	} else {
		rev, err := a.store.AdvanceRevision(batch)
		if err != nil {
			a.mu.Unlock()
			logger.Log.Error("cannot advance revision", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		res.Revision = rev
	}
	a.mu.Unlock()

	logger.Log.Debug("operations batch synced",
		zap.Int("received", len(batch)),
		zap.Int("admitted", res.Admitted),
		zap.Int64("revision", res.Revision),
	)
	writeJSON(w, res)
}

// tailRevision is the larger revision of the last two operations of batch.
func tailRevision(batch []models.Operation) (int64, bool) {
	n := len(batch)
	if n < 2 {
		return 0, false
	}
	tail := batch[n-2].Revision
	if last := batch[n-1].Revision; last > tail {
		tail = last
	}
	return tail, true
}

func (a *app) contacts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.mu.Lock()
		info := a.store.ContactInfo()
		a.mu.Unlock()

		writeJSON(w, info)
	case http.MethodPost:
		var batch models.ContactBatch
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			logger.Log.Debug("cannot decode contact batch", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		a.mu.Lock()
		err := a.store.SyncContacts(batch)
		a.mu.Unlock()

		if errors.Is(err, models.ErrInvalidArgument) {
			logger.Log.Debug("rejected contact batch", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err != nil {
			logger.Log.Error("cannot sync contacts", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (a *app) messages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	a.mu.Lock()
	ops := a.store.MessageOperations()
	a.mu.Unlock()

	writeJSON(w, ops)
}

func (a *app) profile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.mu.Lock()
		p := a.store.Profile()
		a.mu.Unlock()

		writeJSON(w, p)
	case http.MethodPut:
		var p models.Profile
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			logger.Log.Debug("cannot decode profile", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		a.mu.Lock()
		a.store.UpdateProfile(p)
		a.mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	default:
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (a *app) state(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	a.mu.Lock()
	view := stateView{
		Ready:      a.store.Ready(),
		Revision:   a.store.Revision(),
		Operations: a.store.OperationCount(),
		MediaURL:   a.store.MediaURL(),
	}
	a.mu.Unlock()

	writeJSON(w, view)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}
