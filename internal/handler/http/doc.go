// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes the registration endpoint over net/http.
//
// Requests are adapted to the function-style request descriptor and served by
// the event handler, so both transports share one behavior. Request tracing,
// access logging, panic recovery and a request timeout are applied as chi
// middleware.
package http
