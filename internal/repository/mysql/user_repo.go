package mysql

import (
	"database/sql"
	"strings"
	"time"

	"go.uber.org/zap"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
)

// UserRepo 实现了 UserRepository 接口
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo 创建一个新的 UserRepo 实例
func NewUserRepo(db *sql.DB) interfaces.UserRepository {
	return &UserRepo{db: db}
}

// Create 创建新用户
func (r *UserRepo) Create(user *model.User) error {
	query := `
		INSERT INTO users (name, username, email, password_hash, avatar_url, bio, role, is_verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now()
	result, err := r.db.Exec(query,
		user.Name, user.Username, user.Email, user.PasswordHash,
		user.AvatarURL, user.Bio, user.Role, user.IsVerified, now, now)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return errors.New(errors.ErrUserExists, "邮箱或用户名已被注册")
		}
		zap.L().Error("创建用户失败", zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "创建用户失败", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "获取用户ID失败", err)
	}
	user.ID = int(id)
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *UserRepo) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Username, &user.Email, &user.PasswordHash,
		&user.AvatarURL, &user.Bio, &user.Role, &user.IsVerified,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("查询用户失败", zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	return user, nil
}

const userColumns = `id, name, username, email, password_hash, avatar_url, bio, role, is_verified, created_at, updated_at, deleted_at`

// FindByID 根据ID查找用户，未找到时返回 nil
func (r *UserRepo) FindByID(id int) (*model.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ? AND deleted_at IS NULL`, id)
	return r.scanUser(row)
}

// FindByEmail 根据邮箱查找用户，未找到时返回 nil
func (r *UserRepo) FindByEmail(email string) (*model.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = ? AND deleted_at IS NULL`, email)
	return r.scanUser(row)
}

// FindByUsername 根据用户名查找用户，未找到时返回 nil
func (r *UserRepo) FindByUsername(username string) (*model.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ? AND deleted_at IS NULL`, username)
	return r.scanUser(row)
}

// GetProfileByUsername 返回公开主页投影，附带帖子数和粉丝数
func (r *UserRepo) GetProfileByUsername(username string) (*model.UserProfile, error) {
	query := `
		SELECT u.id, u.name, u.username, u.avatar_url,
			(SELECT COUNT(*) FROM posts p WHERE p.author_id = u.id),
			(SELECT COUNT(*) FROM follows f WHERE f.followed_id = u.id)
		FROM users u
		WHERE u.username = ? AND u.deleted_at IS NULL`

	profile := &model.UserProfile{}
	err := r.db.QueryRow(query, username).Scan(
		&profile.ID, &profile.Name, &profile.Username, &profile.AvatarURL,
		&profile.PostCount, &profile.FollowerCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("查询用户主页失败", zap.String("username", username), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询用户主页失败", err)
	}
	return profile, nil
}

// Update 更新用户信息
func (r *UserRepo) Update(user *model.User) error {
	query := `
		UPDATE users
		SET name = ?, username = ?, email = ?, password_hash = ?, avatar_url = ?, bio = ?, role = ?, is_verified = ?, updated_at = ?
		WHERE id = ?`

	_, err := r.db.Exec(query,
		user.Name, user.Username, user.Email, user.PasswordHash,
		user.AvatarURL, user.Bio, user.Role, user.IsVerified, time.Now(), user.ID)
	if err != nil {
		zap.L().Error("更新用户失败", zap.Int("user_id", user.ID), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "更新用户失败", err)
	}
	return nil
}

// Delete 软删除用户
func (r *UserRepo) Delete(id int) error {
	_, err := r.db.Exec(`UPDATE users SET deleted_at = ? WHERE id = ?`, time.Now(), id)
	if err != nil {
		zap.L().Error("删除用户失败", zap.Int("user_id", id), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "删除用户失败", err)
	}
	return nil
}

// Count 返回未删除的用户总数
func (r *UserRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, "统计用户数失败", err)
	}
	return count, nil
}

// FindAll 分页查询用户列表
func (r *UserRepo) FindAll(page, pageSize int) ([]*model.User, error) {
	offset := (page - 1) * pageSize
	rows, err := r.db.Query(
		`SELECT `+userColumns+` FROM users WHERE deleted_at IS NULL ORDER BY id DESC LIMIT ? OFFSET ?`,
		pageSize, offset)
	if err != nil {
		zap.L().Error("查询用户列表失败", zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询用户列表失败", err)
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		user := &model.User{}
		err := rows.Scan(
			&user.ID, &user.Name, &user.Username, &user.Email, &user.PasswordHash,
			&user.AvatarURL, &user.Bio, &user.Role, &user.IsVerified,
			&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "扫描用户行失败", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
