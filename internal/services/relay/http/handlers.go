// Package http provides http transport for the relay
package http

import (
	"io"
	stdhttp "net/http"

	"hubgate/internal/hub/pb"
	"hubgate/internal/modkit/httpkit"
	perr "hubgate/internal/platform/errors"
	authdom "hubgate/internal/services/authgate/domain"
	svc "hubgate/internal/services/relay/service"
)

// maxMessageBody bounds a single submitted envelope; hub messages are tiny
const maxMessageBody = 1 << 20

// batchInput is the /submit_messages body. Each update is one serialized
// message envelope; JSON base64 decodes straight into the byte slices.
type batchInput struct {
	Updates [][]byte `json:"updates" validate:"required,min=1"`
}

// Register mounts relay endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/submit_message", h.submitOne)
	httpkit.PostJSON[batchInput](r, "/submit_messages", h.submitMany)
}

type handlers struct{ svc svc.Service }

func (h *handlers) submitOne(r *stdhttp.Request) (any, error) {
	id, ok := authdom.IdentityFrom(r.Context())
	if !ok {
		return nil, perr.Unauthorizedf("no identity")
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxMessageBody))
	if err != nil || len(raw) == 0 {
		return nil, perr.Validationf("unreadable message body")
	}
	msg, err := pb.ParseMessage(raw)
	if err != nil {
		return nil, perr.Validationf("undecodable message")
	}
	if err := h.svc.Relay(r.Context(), id.Signer, msg); err != nil {
		return nil, err
	}
	return map[string]bool{"ok": true}, nil
}

func (h *handlers) submitMany(r *stdhttp.Request, in batchInput) (any, error) {
	id, ok := authdom.IdentityFrom(r.Context())
	if !ok {
		return nil, perr.Unauthorizedf("no identity")
	}
	msgs := make([]*pb.Message, 0, len(in.Updates))
	for _, raw := range in.Updates {
		msg, err := pb.ParseMessage(raw)
		if err != nil {
			return nil, perr.Validationf("undecodable message in batch")
		}
		msgs = append(msgs, msg)
	}
	if err := h.svc.RelayBatch(r.Context(), id.Signer, msgs); err != nil {
		return nil, err
	}
	return map[string]any{"ok": true, "submitted": len(msgs)}, nil
}
