package discord

// DefaultAvatarURL is returned by AvatarURL when the user has no avatar set.
var DefaultAvatarURL = "https://discordapp.com/assets/dd4dbc0016779df1378e7812eabaa04d.png"

// User is a Discord account, cached once at the top level and referenced by
// id from guild members, DM recipients and message authors.
type User struct {
	ID            UserID `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`

	Bot   bool   `json:"bot,omitempty"`
	Email string `json:"email,omitempty"`
}

func (u User) Mention() string {
	return "<@" + u.ID.String() + ">"
}

// AvatarURL returns the CDN link to the user's avatar, or the default one.
func (u User) AvatarURL() string {
	if u.Avatar == "" {
		return DefaultAvatarURL
	}
	return "https://cdn.discordapp.com/avatars/" + u.ID.String() + "/" + u.Avatar + ".png"
}
