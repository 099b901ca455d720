// Package adapters はpostフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dawn_eats/internal/feature/post/domain/entity"
	"dawn_eats/internal/feature/post/usecase"
)

// postGorm はPostRepositoryインターフェースのGORM実装です。
type postGorm struct {
	db *gorm.DB
}

var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostRepository は指定されたDB接続でpostGormリポジトリの新しいインスタンスを生成します。
func NewPostRepository(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// List はid順に投稿を取得し、投稿者をプリロードします。
func (r *postGorm) List(ctx context.Context, offset, limit int) ([]entity.Post, error) {
	posts := make([]entity.Post, 0, limit)
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create は投稿行のみを1つのINSERTで保存します。
func (r *postGorm) Create(ctx context.Context, post *entity.Post) error {
	if post == nil {
		return errors.New("post is nil")
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// FindByID はIDで投稿を取得します。
// 投稿が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postGorm) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var post entity.Post
	if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}
