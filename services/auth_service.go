package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,})+$`)

// AuthService จัดการ business logic ของการ login/register
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register สมัครเองได้เฉพาะ farmer และต้องรอ admin อนุมัติก่อน login
func (s *AuthService) Register(name, email, password, phone, location string, role entity.Role) (*entity.User, error) {
	if role != "" && role != entity.RoleFarmer {
		return nil, ErrRoleNotAllowed
	}

	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Phone:    strings.TrimSpace(phone),
		Location: strings.TrimSpace(location),
		Role:     entity.RoleFarmer,
		Approved: false, // รอ admin
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login ตรวจสอบ user + approval gate + สร้าง JWT
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// เช็ค approved ก่อนเทียบรหัส (ตาม flow เดิมของระบบ)
	if !user.Approved {
		return "", nil, ErrPendingApproval
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

// CreateByAdmin สร้าง user role ไหนก็ได้ approved ทันที
func (s *AuthService) CreateByAdmin(name, email, password, phone, location string, role entity.Role) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" || phone == "" || role == "" {
		return nil, validation("please provide: name, email, password, phone, and role")
	}
	if !emailPattern.MatchString(email) {
		return nil, validation("please provide a valid email address")
	}
	if len(password) < 6 {
		return nil, validation("password must be at least 6 characters")
	}
	if !role.Valid() {
		return nil, validation("invalid role: must be farmer, agronomist, or admin")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Phone:    strings.TrimSpace(phone),
		Location: strings.TrimSpace(location),
		Role:     role,
		Approved: true, // admin สร้างให้ ไม่ต้องรออนุมัติ
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
