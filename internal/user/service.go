package user

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbiddenRole      = errors.New("only admins can create privileged accounts")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*TokenPairResponse, error)
	GoogleLogin(ctx context.Context, code string) (*TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPairResponse, error)
	GetMe(ctx context.Context) (*UserResponse, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository) UserService {
	return &userService{
		repo: repo,
		oauthConfig: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Register cria contas. Aluno pode se cadastrar sozinho; contas de professor e
// admin só podem ser criadas por um admin autenticado.
func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	role := dto.Role
	if role == "" {
		role = RoleStudent
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	if role != RoleStudent {
		claims, err := auth.GetUserClaimsFromContext(ctx)
		if err != nil || claims.Role != string(RoleAdmin) {
			log.Warn("Tentativa de criar conta privilegiada sem ser admin")
			return nil, ErrForbiddenRole
		}
	}

	existing, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Erro ao verificar e-mail existente")
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Erro ao gerar hash de senha")
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Erro ao criar usuário")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("Usuário criado com sucesso")
	return toResponse(u), nil
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (*TokenPairResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuário para login")
		return nil, err
	}
	if u == nil || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		log.WithField("user_id", u.ID.String()).Warn("Senha incorreta")
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *userService) GoogleLogin(ctx context.Context, code string) (*TokenPairResponse, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Erro ao trocar code do Google por token")
		return nil, ErrInvalidCredentials
	}

	info, err := s.fetchGoogleUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar perfil do Google")
		return nil, err
	}

	u, err := s.repo.GetByGoogleID(info.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u, err = s.repo.GetByEmail(info.Email)
		if err != nil {
			return nil, err
		}
	}

	if u == nil {
		u = &User{
			ID:       uuid.New(),
			Name:     info.Name,
			Email:    info.Email,
			Role:     RoleStudent,
			GoogleID: &info.ID,
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Erro ao criar usuário via Google")
			return nil, err
		}
		log.WithField("user_id", u.ID.String()).Info("Usuário criado via Google")
	} else if u.GoogleID == nil {
		u.GoogleID = &info.ID
		if err := s.repo.Update(u); err != nil {
			log.WithError(err).Error("Erro ao vincular conta Google")
			return nil, err
		}
	}

	return s.issueTokens(ctx, u)
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *userService) fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, ErrInvalidCredentials
	}
	return &info, nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*TokenPairResponse, error) {
	log := config.WithContext(ctx)

	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	u, err := s.repo.GetByID(claims.UserID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuário para refresh")
		return nil, err
	}
	if u == nil || u.EncryptedRefreshToken == "" {
		return nil, ErrInvalidRefresh
	}

	stored, err := config.Decrypt(u.EncryptedRefreshToken)
	if err != nil || stored != refreshToken {
		log.WithField("user_id", claims.UserID).Warn("Refresh token não confere com o armazenado")
		return nil, ErrInvalidRefresh
	}

	return s.issueTokens(ctx, u)
}

func (s *userService) GetMe(ctx context.Context) (*UserResponse, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

// issueTokens gera o par de tokens e persiste o refresh cifrado, invalidando
// o refresh anterior do usuário.
func (s *userService) issueTokens(ctx context.Context, u *User) (*TokenPairResponse, error) {
	log := config.WithContext(ctx)

	access, err := auth.GenerateJWT(u.ID.String(), string(u.Role), accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), string(u.Role), refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	encrypted, err := config.Encrypt(refresh)
	if err != nil {
		log.WithError(err).Error("Erro ao cifrar refresh token")
		return nil, err
	}

	u.EncryptedRefreshToken = encrypted
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Erro ao persistir refresh token")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("Tokens emitidos com sucesso")
	return &TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}
