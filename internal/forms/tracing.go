// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package forms

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/oleg-github-collab/KooKooha/internal/forms")
