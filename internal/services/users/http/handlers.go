// Package http provides http transport for profiles and follow graphs
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hubgate/internal/modkit/httpkit"
	perr "hubgate/internal/platform/errors"
	"hubgate/internal/platform/logger"
	authdom "hubgate/internal/services/authgate/domain"
	idxdom "hubgate/internal/services/indexer/domain"
	"hubgate/internal/services/users/domain"
)

// Register mounts profile endpoints on the given router
func Register(r httpkit.Router, reader domain.ReaderPort, tasks idxdom.Enqueuer) {
	h := &handlers{reader: reader, tasks: tasks}
	httpkit.Get(r, "/profile/me", h.me)
	httpkit.Get(r, "/profile/{fid}", h.profile)
	httpkit.Get(r, "/profile/{fid}/follows", h.follows)
	httpkit.Get(r, "/profile/{fid}/following", h.following)
}

type handlers struct {
	reader domain.ReaderPort
	tasks  idxdom.Enqueuer
}

func (h *handlers) me(r *stdhttp.Request) (any, error) {
	id, ok := authdom.IdentityFrom(r.Context())
	if !ok {
		return nil, perr.Unauthorizedf("no identity")
	}
	h.warm(r, uint64(id.Signer.Fid))
	return id.Profile, nil
}

func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	fid, err := pathFid(r)
	if err != nil {
		return nil, err
	}
	p, err := h.reader.GetUserProfile(r.Context(), fid, false)
	if err != nil {
		// single profile lookups surface any failure as absence
		return nil, perr.Wrap(err, perr.ErrorCodeNotFound, "profile unavailable")
	}
	h.warm(r, fid)
	return p, nil
}

func (h *handlers) follows(r *stdhttp.Request) (any, error) {
	return h.linked(r, domain.FollowedBy)
}

func (h *handlers) following(r *stdhttp.Request) (any, error) {
	return h.linked(r, domain.Following)
}

func (h *handlers) linked(r *stdhttp.Request, d domain.FollowDirection) (any, error) {
	fid, err := pathFid(r)
	if err != nil {
		return nil, err
	}
	list, err := h.reader.GetProfileLinks(r.Context(), fid, false, d)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "follow list unavailable")
	}
	h.warm(r, fid)
	return list, nil
}

// warm enqueues opportunistic refresh tasks for fid. Failures are logged and
// never surfaced on the request path.
func (h *handlers) warm(r *stdhttp.Request, fid uint64) {
	if h.tasks == nil {
		return
	}
	for _, t := range []idxdom.Task{
		idxdom.IndexFid(fid, false),
		idxdom.IndexLinks(fid),
		idxdom.IndexFidCasts(fid, false),
	} {
		if !h.tasks.Enqueue(t) {
			logger.C(r.Context()).Warn().Uint64("fid", fid).
				Str("kind", t.Kind.String()).Msg("warm-up enqueue dropped")
		}
	}
}

func pathFid(r *stdhttp.Request) (uint64, error) {
	raw := chi.URLParam(r, "fid")
	fid, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, perr.Validationf("bad fid %q", raw)
	}
	return fid, nil
}
