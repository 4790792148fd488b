// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/models"
)

// maxBodyBytes caps a registration request body.
const maxBodyBytes = 1 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request := models.Request{
		HTTPMethod: r.Method,
		Headers:    flattenHeaders(r.Header),
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.Err(err).Msg("error reading request body")
		writeResponse(w, h.event.RejectBody(request))
		return
	}
	if len(body) > 0 {
		raw := string(body)
		request.Body = &raw
	}

	writeResponse(w, h.event.Handle(r.Context(), request))
}

func flattenHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for name, values := range header {
		headers[name] = strings.Join(values, ", ")
	}
	return headers
}

func writeResponse(w http.ResponseWriter, response models.Response) {
	for name, value := range response.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(response.StatusCode)
	if response.Body != "" {
		_, _ = io.WriteString(w, response.Body)
	}
}
