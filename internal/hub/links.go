package hub

import (
	"math"

	"hubgate/internal/hub/pb"
)

// FarcasterEpoch is the offset of hub timestamps from the UNIX epoch
// (2021-01-01T00:00:00Z), in seconds
const FarcasterEpoch int64 = 1609459200

// ToUnixSeconds converts a hub timestamp to UNIX seconds. An out-of-range
// value maps to 0 rather than failing the whole batch.
func ToUnixSeconds(ts uint32) int64 {
	sum := FarcasterEpoch + int64(ts)
	if sum < 0 || sum > math.MaxInt64-1 {
		return 0
	}
	return sum
}

// Follow is one directed follow edge decoded from a link message
type Follow struct {
	SourceFid uint64
	TargetFid uint64
	// Timestamp in UNIX seconds
	Timestamp int64
}

// FollowActions is the net effect of a batch of link messages
type FollowActions struct {
	Adds    []Follow
	Removes []Follow
}

// DecodeFollowActions splits link messages into follow adds and removes.
// Non-link messages and non-follow link types are skipped.
func DecodeFollowActions(msgs []*pb.Message) FollowActions {
	var out FollowActions
	for _, m := range msgs {
		data := m.GetData()
		if data == nil || data.LinkBody == nil || data.LinkBody.Type != FollowLinkType {
			continue
		}
		edge := Follow{
			SourceFid: data.Fid,
			TargetFid: data.LinkBody.TargetFid,
			Timestamp: ToUnixSeconds(data.Timestamp),
		}
		switch data.Type {
		case pb.MessageType_MESSAGE_TYPE_LINK_ADD:
			out.Adds = append(out.Adds, edge)
		case pb.MessageType_MESSAGE_TYPE_LINK_REMOVE:
			out.Removes = append(out.Removes, edge)
		}
	}
	return out
}
