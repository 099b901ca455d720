// Package dto はpostフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	authdto "dawn_eats/internal/feature/auth/transport/http/dto"
	"dawn_eats/internal/feature/post/domain/entity"
)

// CreatePostReq は POST /posts/ のリクエストボディです。
// user_id や author は受け付けず、所有者は認証済みユーザーになります。
type CreatePostReq struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// PostRes は投稿のレスポンス表現です。
type PostRes struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"image_url"`
	UserID      uint             `json:"user_id"`
	Author      *authdto.UserRes `json:"author"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewPostRes converts a post entity to its response shape.
func NewPostRes(p *entity.Post) PostRes {
	res := PostRes{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Author != nil {
		author := authdto.NewUserRes(p.Author)
		res.Author = &author
	}
	return res
}

// NewPostList converts posts to response items, never returning nil.
func NewPostList(posts []entity.Post) []PostRes {
	out := make([]PostRes, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostRes(&posts[i]))
	}
	return out
}
