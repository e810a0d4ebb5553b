package service

import (
	"fmt"

	"brewflow/internal/domain"
	"brewflow/pkg/logger"
)

type UserService struct {
	repo   domain.UserRepository
	logger logger.Logger
}

func NewUserService(repo domain.UserRepository, logger logger.Logger) domain.UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserService) Authenticate(email, password string) (*domain.User, error) {
	user, err := s.repo.Authenticate(email, password)
	if err != nil {
		s.logger.Error("Kimlik doğrulama sırasında hata oluştu", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, fmt.Errorf("kimlik doğrulanamadı: %w", err)
	}

	// Eşleşme yoksa sonuç nil'dir, hata değil.
	return user, nil
}

func (s *UserService) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrNilUser
	}

	existingUser, err := s.repo.FindByUsername(user.Username)
	if err != nil {
		s.logger.Error("Kullanıcı adı kontrolü sırasında hata oluştu", map[string]interface{}{"username": user.Username, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	if existingUser != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUsernameTaken, user.Username)
	}

	existingUser, err = s.repo.FindByEmail(user.Email)
	if err != nil {
		s.logger.Error("E-posta adresi kontrolü sırasında hata oluştu", map[string]interface{}{"email": user.Email, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	if existingUser != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmailTaken, user.Email)
	}

	created, err := s.repo.Create(user)
	if err != nil {
		s.logger.Error("Kullanıcı oluşturma sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	return created, nil
}

func (s *UserService) DeleteUser(id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: %d", domain.ErrInvalidUserID, id)
	}

	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("Kullanıcı silme sırasında hata oluştu", map[string]interface{}{"id": id, "error": err.Error()})
		return false, fmt.Errorf("kullanıcı silinemedi: %w", err)
	}

	return deleted, nil
}

func (s *UserService) GetAllUsers() ([]*domain.User, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		s.logger.Error("Kullanıcılar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}

	return users, nil
}

func (s *UserService) GetUserByID(id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("Kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateUser(user *domain.User) error {
	existingUser, err := s.repo.FindByID(user.ID)
	if err != nil {
		s.logger.Error("Kullanıcı güncellemesi sırasında hata oluştu", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	if existingUser == nil {
		return fmt.Errorf("%w: %d", domain.ErrUserNotFound, user.ID)
	}

	// Benzersizlik kontrolü yalnızca değişen alanlar için yapılır; aksi halde
	// kayıt kendi değeriyle çakışır.
	if existingUser.Username != user.Username {
		usernameUser, err := s.repo.FindByUsername(user.Username)
		if err != nil {
			s.logger.Error("Kullanıcı adı kontrolü sırasında hata oluştu", map[string]interface{}{"username": user.Username, "error": err.Error()})
			return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
		}

		if usernameUser != nil {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, user.Username)
		}
	}

	if existingUser.Email != user.Email {
		emailUser, err := s.repo.FindByEmail(user.Email)
		if err != nil {
			s.logger.Error("E-posta adresi kontrolü sırasında hata oluştu", map[string]interface{}{"email": user.Email, "error": err.Error()})
			return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
		}

		if emailUser != nil {
			return fmt.Errorf("%w: %s", domain.ErrEmailTaken, user.Email)
		}
	}

	if err := s.repo.Update(user); err != nil {
		s.logger.Error("Kullanıcı güncelleme sırasında hata oluştu", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	return nil
}

func (s *UserService) GetUsersByRole(roleID int64) ([]*domain.User, error) {
	if roleID < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidRoleID, roleID)
	}

	users, err := s.repo.FindByRole(roleID)
	if err != nil {
		s.logger.Error("Role göre kullanıcılar listelenemedi", map[string]interface{}{"role_id": roleID, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}

	return users, nil
}
