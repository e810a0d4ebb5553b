package domain

import "errors"

var (
	ErrNilUser       = errors.New("kullanıcı boş olamaz")
	ErrUserNotFound  = errors.New("kullanıcı bulunamadı")
	ErrUsernameTaken = errors.New("bu kullanıcı adı zaten kullanılıyor")
	ErrEmailTaken    = errors.New("bu e-posta adresi zaten kullanılıyor")
	ErrInvalidUserID = errors.New("geçersiz kullanıcı ID")
	ErrInvalidRoleID = errors.New("geçersiz rol ID")
)
