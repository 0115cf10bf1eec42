package hub

import "hubgate/internal/hub/pb"

// Profile is the canonical user view at the API boundary. All attributes
// except Fid are optional; absent values stay nil.
type Profile struct {
	Fid            uint64  `json:"fid"`
	Username       *string `json:"username,omitempty"`
	DisplayName    *string `json:"display_name,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	URL            *string `json:"url,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// foldProfile reduces USER_DATA messages into a Profile. Later messages win
// for a repeated type, matching hub CRDT semantics where the set holds one
// live message per type.
func foldProfile(fid uint64, msgs []*pb.Message) Profile {
	p := Profile{Fid: fid}
	for _, m := range msgs {
		data := m.GetData()
		if data.GetType() != pb.MessageType_MESSAGE_TYPE_USER_DATA_ADD || data.UserDataBody == nil {
			continue
		}
		v := data.UserDataBody.Value
		switch data.UserDataBody.Type {
		case pb.UserDataType_USER_DATA_TYPE_USERNAME:
			p.Username = &v
		case pb.UserDataType_USER_DATA_TYPE_DISPLAY:
			p.DisplayName = &v
		case pb.UserDataType_USER_DATA_TYPE_BIO:
			p.Bio = &v
		case pb.UserDataType_USER_DATA_TYPE_URL:
			p.URL = &v
		case pb.UserDataType_USER_DATA_TYPE_PFP:
			p.ProfilePicture = &v
		}
	}
	return p
}
