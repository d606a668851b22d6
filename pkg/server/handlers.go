package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/shapeboard/pkg/buildinfo"
	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/pipeline"
	"github.com/matzehuels/shapeboard/pkg/scene"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sc, err := s.decodeScene(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, sc)
}

func (s *Server) handleRenderScene(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, rec.Scene)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, sc scene.Scene) {
	opts, err := renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	ctx := r.Context()
	if s.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.RenderTimeout)
		defer cancel()
	}

	res, err := s.Runner.Execute(ctx, sc, opts)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = errors.Wrap(errors.ErrCodeTimeout, err, "render timed out")
		}
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("X-Scene-Hash", res.SceneHash)
	if res.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) handleCreateScene(w http.ResponseWriter, r *http.Request) {
	sc, err := s.decodeScene(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.Store.Save(r.Context(), sc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/scenes/"+rec.ID)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListScenes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidOptions, "invalid limit %q", v))
			return
		}
		limit = n
	}
	list, err := s.Store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenes": list})
}

func (s *Server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteScene(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{
		Error:     errorDetail{Code: errors.ErrCodeInvalidInput, Message: "method " + r.Method + " not allowed"},
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// decodeScene reads a scene from the bounded request body.
func (s *Server) decodeScene(w http.ResponseWriter, r *http.Request) (scene.Scene, error) {
	body := http.MaxBytesReader(w, r.Body, s.MaxBodyBytes)
	defer body.Close()
	return scene.ReadJSON(body)
}

// renderOptions builds pipeline options from query parameters. Exactly one
// format is rendered per request; the runner validates the values.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Style:  q.Get("style"),
		Engine: q.Get("engine"),
		Title:  q.Get("title"),
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}

	var err error
	if opts.Width, err = floatParam(q.Get("width"), "width"); err != nil {
		return opts, err
	}
	if opts.Height, err = floatParam(q.Get("height"), "height"); err != nil {
		return opts, err
	}
	if opts.Scale, err = floatParam(q.Get("scale"), "scale"); err != nil {
		return opts, err
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidOptions, err, "invalid seed %q", v)
		}
		opts.Seed = &seed
	}
	if v := q.Get("randomize"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidOptions, err, "invalid randomize %q", v)
		}
		opts.Randomize = &on
	}
	return opts, nil
}

func floatParam(v, name string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidOptions, err, "invalid %s %q", name, v)
	}
	return f, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorBody{
		Error:     errorDetail{Code: code, Message: msg},
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
