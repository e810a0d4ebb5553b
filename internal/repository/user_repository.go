package repository

import (
	"database/sql"
	"fmt"
	"time"

	"brewflow/internal/domain"
	"brewflow/pkg/logger"
)

type UserRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewUserRepository(db *sql.DB, logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

const userColumns = "id, username, email, password, role_id, created_at, updated_at"

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) Authenticate(email, password string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = ? AND password = ?", userColumns)

	user, err := r.scanUser(r.db.QueryRow(query, email, password))
	if err != nil {
		r.logger.Error("Kimlik doğrulama sorgusu başarısız", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, fmt.Errorf("kimlik doğrulanamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByID(id int64) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ?", userColumns)

	user, err := r.scanUser(r.db.QueryRow(query, id))
	if err != nil {
		r.logger.Error("Kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByUsername(username string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE username = ?", userColumns)

	user, err := r.scanUser(r.db.QueryRow(query, username))
	if err != nil {
		r.logger.Error("Kullanıcı adına göre bulunamadı", map[string]interface{}{"username": username, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = ?", userColumns)

	user, err := r.scanUser(r.db.QueryRow(query, email))
	if err != nil {
		r.logger.Error("Kullanıcı e-posta adresine göre bulunamadı", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password, role_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if user.RoleID == 0 {
		user.RoleID = domain.RoleBarista
	}

	result, err := r.db.Exec(
		query,
		user.Username,
		user.Email,
		user.Password,
		user.RoleID,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("Kullanıcı ID alınamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	user.ID = id
	return user, nil
}

func (r *UserRepository) Update(user *domain.User) error {
	query := `
		UPDATE users
		SET username = ?, email = ?, password = ?, role_id = ?, updated_at = ?
		WHERE id = ?
	`

	user.UpdatedAt = time.Now()

	_, err := r.db.Exec(
		query,
		user.Username,
		user.Email,
		user.Password,
		user.RoleID,
		user.UpdatedAt,
		user.ID,
	)

	if err != nil {
		r.logger.Error("Kullanıcı güncellenemedi", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	return nil
}

func (r *UserRepository) Delete(id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = ?`

	result, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Kullanıcı silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return false, fmt.Errorf("kullanıcı silinemedi: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Silinen satır sayısı alınamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return false, fmt.Errorf("kullanıcı silinemedi: %w", err)
	}

	return affected > 0, nil
}

func (r *UserRepository) FindAll() ([]*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY id", userColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Kullanıcılar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}
	defer rows.Close()

	return r.collectUsers(rows)
}

func (r *UserRepository) FindByRole(roleID int64) ([]*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE role_id = ? ORDER BY id", userColumns)

	rows, err := r.db.Query(query, roleID)
	if err != nil {
		r.logger.Error("Role göre kullanıcılar listelenemedi", map[string]interface{}{"role_id": roleID, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}
	defer rows.Close()

	return r.collectUsers(rows)
}

func (r *UserRepository) collectUsers(rows *sql.Rows) ([]*domain.User, error) {
	users := make([]*domain.User, 0)

	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.Password,
			&user.RoleID,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Kullanıcı satırı okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}

	return users, nil
}
