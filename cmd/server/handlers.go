package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/cours-de-grec/stems"
)

// maxLexiconBytes bounds the body of /api/check.
const maxLexiconBytes = 4 << 20

// ---- JSON response types ------------------------------------------------

type rootsJSON struct {
	Root1  string `json:"root1"`
	Root1b string `json:"root1b"`
	Root1c string `json:"root1c"`
}

type stemJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stem        string `json:"stem"`
}

type stemsResponse struct {
	Class stems.VerbClass `json:"class"`
	Roots rootsJSON       `json:"roots"`
	Stems []stemJSON      `json:"stems"`
}

type classJSON struct {
	Class  stems.VerbClass `json:"class"`
	Ending string          `json:"ending"`
}

type classesResponse struct {
	Classes []classJSON `json:"classes"`
}

type mismatchJSON struct {
	Headword string `json:"headword"`
	Stem     string `json:"stem"`
	Derived  string `json:"derived"`
	Recorded string `json:"recorded"`
}

type checkResponse struct {
	Report   stems.PartitionReport `json:"report"`
	OK       bool                  `json:"ok"`
	Error    string                `json:"error,omitempty"`
	Mismatch *mismatchJSON         `json:"mismatch,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

type server struct {
	engine *stems.Engine
	logger *zap.Logger
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/stems", s.handleStems)
	mux.HandleFunc("/api/classes", s.handleClasses)
	mux.HandleFunc("/api/check", s.handleCheck)
	return mux
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleStems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	root := r.URL.Query().Get("root")
	if root == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'root' query parameter")
		return
	}
	class, err := stems.ParseVerbClass(r.URL.Query().Get("class"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !class.Accepts(root) {
		s.writeError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("root %q does not fit class %s (requires ending %s)", root, class, class.Ending()))
		return
	}
	roots, err := class.Roots(root)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	set, _ := s.engine.Derive(roots.Root1, class)

	out := stemsResponse{
		Class: class,
		Roots: rootsJSON{Root1: roots.Root1, Root1b: roots.Root1b, Root1c: roots.Root1c},
	}
	for _, ns := range set.Ordered() {
		out.Stems = append(out.Stems, stemJSON{
			Name:        string(ns.Name),
			Description: ns.Name.Description(),
			Stem:        ns.Stem,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *server) handleClasses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	out := classesResponse{Classes: make([]classJSON, 0, len(stems.VerbClasses))}
	for _, c := range stems.VerbClasses {
		out.Classes = append(out.Classes, classJSON{Class: c, Ending: c.Ending()})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// handleCheck checks a YAML lexicon partition posted as the request body.
func (s *server) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	class, err := stems.ParseVerbClass(r.URL.Query().Get("class"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "request"
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxLexiconBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("lexicon larger than %d bytes", tooLarge.Limit))
			return
		}
		s.writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	lex, err := stems.ParseLexicon(name, bytes.NewReader(body))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.engine.CheckLexicon(lex, class)
	out := checkResponse{Report: report, OK: err == nil}
	if err != nil {
		out.Error = err.Error()
		var me *stems.MismatchError
		if errors.As(err, &me) {
			out.Mismatch = &mismatchJSON{
				Headword: me.Headword,
				Stem:     string(me.Stem),
				Derived:  me.Derived,
				Recorded: me.Recorded,
			}
		}
		s.logger.Info("partition inconsistent", zap.String("name", name), zap.Error(err))
	}
	s.writeJSON(w, http.StatusOK, out)
}
