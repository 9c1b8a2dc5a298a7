package mysql

import (
	"database/sql"
	"strings"

	"go.uber.org/zap"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
)

// TagRepo 实现了 TagRepository 接口
type TagRepo struct {
	db *sql.DB
}

// NewTagRepo 创建一个新的 TagRepo 实例
func NewTagRepo(db *sql.DB) interfaces.TagRepository {
	return &TagRepo{db: db}
}

// Create 创建标签，名称或标识符重复时返回冲突错误
func (r *TagRepo) Create(tag *model.Tag) error {
	result, err := r.db.Exec(
		`INSERT INTO tags (name, slug, description) VALUES (?, ?, ?)`,
		tag.Name, tag.Slug, tag.Description)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return errors.New(errors.ErrTagExists, "标签已存在")
		}
		zap.L().Error("创建标签失败", zap.String("name", tag.Name), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "创建标签失败", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "获取标签ID失败", err)
	}
	tag.ID = int(id)
	return nil
}

// FindByName 按名称查找标签，未找到时返回 nil
func (r *TagRepo) FindByName(name string) (*model.Tag, error) {
	tag := &model.Tag{}
	err := r.db.QueryRow(
		`SELECT id, name, slug, description FROM tags WHERE name = ?`, name).Scan(
		&tag.ID, &tag.Name, &tag.Slug, &tag.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("查询标签失败", zap.String("name", name), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询标签失败", err)
	}
	return tag, nil
}

// FindAll 返回全部标签，按名称排序
func (r *TagRepo) FindAll() ([]*model.Tag, error) {
	rows, err := r.db.Query(`SELECT id, name, slug, description FROM tags ORDER BY name`)
	if err != nil {
		zap.L().Error("查询标签列表失败", zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询标签列表失败", err)
	}
	defer rows.Close()

	tags := make([]*model.Tag, 0)
	for rows.Next() {
		tag := &model.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Description); err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "扫描标签行失败", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// Count 返回标签总数
func (r *TagRepo) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM tags`).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, "统计标签数失败", err)
	}
	return count, nil
}
