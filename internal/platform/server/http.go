package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/protobuf/proto"

	balancev1 "github.com/cardroomlabs/balanced/gen/balance/v1"
)

// inBandResponse is implemented by every RPC response that carries ok plus a
// structured domain error.
type inBandResponse interface {
	GetOk() bool
	GetError() *balancev1.DomainError
}

// IncomingHeaderMatcher forwards the Idempotency-Key header into gRPC
// metadata on top of the gateway defaults.
func IncomingHeaderMatcher(key string) (string, bool) {
	if strings.EqualFold(key, "Idempotency-Key") {
		return "idempotency-key", true
	}
	return runtime.DefaultHeaderMatcher(key)
}

func httpStatusForCode(code string) int {
	switch code {
	case "ACCOUNT_NOT_FOUND", "RESERVATION_NOT_FOUND", "POT_NOT_FOUND":
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// ForwardResponse maps in-band outcomes onto HTTP status codes for gateway
// clients: domain refusals become 400 or 404, a freshly created account 201.
func ForwardResponse(_ context.Context, w http.ResponseWriter, msg proto.Message) error {
	if r, ok := msg.(inBandResponse); ok && !r.GetOk() && r.GetError() != nil {
		w.WriteHeader(httpStatusForCode(r.GetError().GetCode()))
		return nil
	}
	if m, ok := msg.(*balancev1.EnsureAccountResponse); ok && m.GetCreated() {
		w.WriteHeader(http.StatusCreated)
	}
	return nil
}

// NewGatewayMux builds the gateway mux with the balance service's header
// forwarding and status mapping.
func NewGatewayMux() *runtime.ServeMux {
	return runtime.NewServeMux(
		runtime.WithIncomingHeaderMatcher(IncomingHeaderMatcher),
		runtime.WithForwardResponseOption(ForwardResponse),
	)
}
