package httpkit

import (
	"net/http"
	"strconv"

	perrs "hubgate/internal/platform/errors"
	pnet "hubgate/internal/platform/net"
)

// Fid returns the authenticated fid from the request context
func Fid(r *http.Request) (uint64, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return 0, perrs.Unauthorizedf("missing identity")
	}
	fid, err := strconv.ParseUint(uid, 10, 64)
	if err != nil {
		return 0, perrs.Unauthorizedf("malformed identity")
	}
	return fid, nil
}

// MustFid returns the authenticated fid or panics
// only use on routes protected by the auth middleware
func MustFid(r *http.Request) uint64 {
	fid, err := Fid(r)
	if err != nil {
		panic(err)
	}
	return fid
}
