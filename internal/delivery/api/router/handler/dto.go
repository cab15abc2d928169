package handler

import (
	"time"

	"bulletin/internal/domain/entity"

	"github.com/google/uuid"
)

// SignUpRequest is the body of POST /users/sign-up. Bcrypt only reads the
// first 72 bytes of a password, so longer ones are rejected up front.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Username string `json:"username" validate:"required,max=64"`
	Country  string `json:"country" validate:"max=64"`
}

// SignInRequest is the body of POST /users/sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest is the body of POST /users/token-refresh.
type RefreshTokenRequest struct {
	JWT string `json:"jwt" validate:"required"`
}

// UpdateUserRequest is the body of PUT /users/:userID. Omitted fields are kept.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=254"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Username *string `json:"username" validate:"omitempty,min=1,max=64"`
	Country  *string `json:"country" validate:"omitempty,max=64"`
	Role     *string `json:"role" validate:"omitempty,oneof=regular admin banned"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

// UpdatePostRequest is the body of PUT /posts/:postID. Omitted fields are kept.
type UpdatePostRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	JWT       string    `json:"jwt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SignInResponse is returned by a successful sign-in.
type SignInResponse struct {
	TokenResponse
	User *UserResponse `json:"user"`
}

// UserResponse is the public view of a user. The password hash never leaves the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Country   string    `json:"country"`
	RoleID    uuid.UUID `json:"roleID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Country:   user.Country,
		RoleID:    user.RoleID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func newUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return out
}

// RoleResponse is the public view of a role.
type RoleResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func newRoleResponses(roles []*entity.Role) []*RoleResponse {
	out := make([]*RoleResponse, 0, len(roles))
	for _, role := range roles {
		out = append(out, &RoleResponse{ID: role.ID, Name: role.Name.String(), Description: role.Description})
	}

	return out
}

// PostResponse is the public view of a post.
type PostResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    uuid.UUID `json:"authorID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newPostResponse(post *entity.Post) *PostResponse {
	return &PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		AuthorID:    post.AuthorID,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func newPostResponses(posts []*entity.Post) []*PostResponse {
	out := make([]*PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, newPostResponse(post))
	}

	return out
}
