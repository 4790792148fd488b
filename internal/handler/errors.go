// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the services or the
// message catalog are missing, so no handler can serve a request.
var errNoHandlersAreCreated = errors.New("no handlers are created")
