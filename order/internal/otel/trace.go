package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/tropics/poolscape/internal/constants"
)

var Tracer = otel.Tracer(constants.AppOrderService)
