// Package domain holds user types and ports
package domain

import "hubgate/internal/hub"

// FollowDirection selects which side of the follow graph a query walks
type FollowDirection uint8

const (
	// Following selects the users fid follows
	Following FollowDirection = iota
	// FollowedBy selects the users following fid
	FollowedBy
)

// String names the direction for logs
func (d FollowDirection) String() string {
	if d == FollowedBy {
		return "followed_by"
	}
	return "following"
}

// User is the persisted form of a profile. Fid is stored signed with the same
// bit pattern as the wire uint64. A row with all text fields nil is a
// placeholder seeded to satisfy foreign keys before the real profile arrives.
type User struct {
	Fid         int64
	Username    *string
	DisplayName *string
	Bio         *string
	URL         *string
	ProfilePic  *string
}

// EmptyUser returns a placeholder row for fid
func EmptyUser(fid int64) User { return User{Fid: fid} }

// UserFromProfile converts the hub view to the persisted form
func UserFromProfile(p hub.Profile) User {
	return User{
		Fid:         int64(p.Fid),
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		URL:         p.URL,
		ProfilePic:  p.ProfilePicture,
	}
}

// Profile converts the persisted form back to the API view
func (u User) Profile() hub.Profile {
	return hub.Profile{
		Fid:            uint64(u.Fid),
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		Bio:            u.Bio,
		URL:            u.URL,
		ProfilePicture: u.ProfilePic,
	}
}
