// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package event implements the registration endpoint over HTTP-like request
// and response descriptors, the shape in which function runtimes deliver
// HTTP triggers. The HTTP transport and the local invoke tool both adapt to
// this package.
package event
