package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Protocol-Lattice/gqlparser/gqlerrors"
	"github.com/Protocol-Lattice/gqlparser/loader"
	"github.com/Protocol-Lattice/gqlparser/parser"
	"github.com/Protocol-Lattice/gqlparser/source"
)

// ServeUpload parses every file of a multipart/form-data request as one
// document. Files are ordered by form field name and then by position
// within the field. An optional "operations" field holds a JSON Request
// whose Name and NoLocation apply to the upload; its Query is ignored.
// Requests that are not multipart are handled by ServeParse.
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		h.ServeParse(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	if err := r.ParseMultipartForm(h.opts.MaxBodyBytes); err != nil {
		http.Error(w, "failed to parse multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	var req Request
	if operations := r.FormValue("operations"); operations != "" {
		if err := json.Unmarshal([]byte(operations), &req); err != nil {
			http.Error(w, "invalid operations JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	files := formFiles(r.MultipartForm)
	if len(files) == 0 {
		http.Error(w, "no files uploaded", http.StatusBadRequest)
		return
	}

	parts, err := h.readFiles(files)
	if err != nil {
		http.Error(w, "failed to read uploaded file: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp := h.parseBundle(loader.Concat(parts...), req)
	status := http.StatusOK
	if len(resp.Errors) > 0 {
		status = http.StatusBadRequest
	}
	h.writeJSON(w, status, resp)
}

// formFiles flattens the uploaded files into a stable order.
func formFiles(form *multipart.Form) []*multipart.FileHeader {
	fields := make([]string, 0, len(form.File))
	for field := range form.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var files []*multipart.FileHeader
	for _, field := range fields {
		files = append(files, form.File[field]...)
	}
	return files
}

// readFiles reads all files concurrently, keeping their order.
func (h *Handler) readFiles(files []*multipart.FileHeader) ([]loader.Part, error) {
	parts := make([]loader.Part, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, header := range files {
		wg.Add(1)
		go func(i int, header *multipart.FileHeader) {
			defer wg.Done()
			file, err := header.Open()
			if err != nil {
				errs[i] = err
				return
			}
			defer file.Close()
			data, err := io.ReadAll(file)
			if err != nil {
				errs[i] = err
				return
			}
			h.logger.Debug("uploaded file",
				zap.String("file", header.Filename),
				zap.Int("bytes", len(data)),
			)
			parts[i] = loader.Part{Name: header.Filename, Body: string(data)}
		}(i, header)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return parts, nil
}

// parseBundle parses an uploaded bundle, reporting syntax errors against
// the file they occurred in.
func (h *Handler) parseBundle(bundle *loader.Bundle, req Request) Response {
	began := time.Now()
	opts := h.opts.Parser
	if req.NoLocation {
		opts.NoLocation = true
	}
	if req.Name != "" {
		bundle.Source.Name = req.Name
	}

	doc, err := parser.Parse(bundle.Source, opts)
	h.logger.Info("parse upload",
		zap.String("source", bundle.Source.Name),
		zap.Int("files", len(bundle.Segments)),
		zap.Int("bytes", len(bundle.Source.Body)),
		zap.Duration("duration", time.Since(began)),
		zap.Error(err),
	)
	if err == nil {
		return Response{Data: doc}
	}

	var serr *gqlerrors.SyntaxError
	if !errors.As(err, &serr) {
		return Response{Errors: []Error{toError(err)}}
	}
	out := Error{Message: serr.Message(), Locations: serr.Locations}
	if seg, loc, ok := bundle.Locate(serr.Position); ok {
		out.File = seg.Name
		out.Locations = []source.Location{loc}
	}
	return Response{Errors: []Error{out}}
}
