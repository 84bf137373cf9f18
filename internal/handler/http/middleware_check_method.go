// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-keeper/internal/app"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
)

// notFound replaces chi's plain-text 404 with an envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, nil, app.MsgNotFound, http.StatusNotFound)
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. chi has
// already set the Allow header when it is called.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, nil, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
