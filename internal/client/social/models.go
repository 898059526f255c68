package social

import "github.com/dmitrijs2005/gophsocial/internal/client/session"

// ID is a backend identifier; the server sends numbers or strings.
// Timestamps are kept as the server formats them.
type ID = session.ID

type Post struct {
	ID                  ID     `json:"id"`
	Title               string `json:"title,omitempty"`
	Content             string `json:"content"`
	ImageURL            string `json:"image_url,omitempty"`
	VideoURL            string `json:"video_url,omitempty"`
	OwnerUsername       string `json:"owner_username"`
	OwnerProfilePicture string `json:"owner_profile_picture,omitempty"`
	LikesCount          int    `json:"likes_count"`
	CommentsCount       int    `json:"comments_count"`
	IsLiked             bool   `json:"is_liked"`
	IsBookmarked        bool   `json:"is_bookmarked"`
	CreatedAt           string `json:"created_at"`
}

type Comment struct {
	ID                  ID        `json:"id"`
	PostID              ID        `json:"post_id,omitempty"`
	ParentID            ID        `json:"parent_id,omitempty"`
	Text                string    `json:"text"`
	OwnerUsername       string    `json:"owner_username"`
	OwnerProfilePicture string    `json:"owner_profile_picture,omitempty"`
	LikesCount          int       `json:"likes_count"`
	IsLiked             bool      `json:"is_liked"`
	Children            []Comment `json:"children,omitempty"`
	CreatedAt           string    `json:"created_at"`
}

type Notification struct {
	ID                   ID     `json:"id"`
	Message              string `json:"message"`
	Link                 string `json:"link,omitempty"`
	Read                 bool   `json:"read"`
	SenderUsername       string `json:"sender_username,omitempty"`
	SenderProfilePicture string `json:"sender_profile_picture,omitempty"`
	Timestamp            string `json:"timestamp"`
}

// Profile is a public user profile.
type Profile struct {
	ID             ID     `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name,omitempty"`
	Email          string `json:"email,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	Website        string `json:"website,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	JoinedDate     string `json:"joined_date,omitempty"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	IsFollowing    bool   `json:"is_following"`
}

// ProfileUpdate carries the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
}

type Stats struct {
	TotalPosts     int `json:"total_posts"`
	TotalComments  int `json:"total_comments"`
	TotalLikes     int `json:"total_likes"`
	TotalFollowers int `json:"total_followers"`
	TotalFollowing int `json:"total_following"`
	TotalViews     int `json:"total_views"`
}
