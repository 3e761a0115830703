// File: internal/service/users.go
package service

import (
	"context"
	"fmt"

	"user-center/internal/database"
	"user-center/internal/metrics"
	"user-center/internal/model"
	"user-center/internal/notify"
	"user-center/internal/store"

	"github.com/rs/zerolog"
)

var (
	hashPassword = HashPassword
	createUser   = store.CreateUser
	emailExists  = store.EmailExists
	listUsers    = store.ListUsers
)

// CreateUserInput 建立使用者所需欄位
// role 與 active 不開放外部指定，一律強制為 user / true
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
}

// ListedUser 列表回傳項目，CanEdit 相對於請求者逐列計算
type ListedUser struct {
	model.User
	CanEdit bool
}

// UserListing 分頁列表結果
type UserListing struct {
	Page  int
	Users []ListedUser
}

// Users 使用者用例介面，方便 handler 測試時替換
type Users interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error)
	ListUsers(ctx context.Context, params store.ListUsersParams, actor *model.User) (*UserListing, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserService 使用者用例的編排層
// 依賴全部由建構式注入，不使用全域狀態
type UserService struct {
	db       database.DB
	notifier notify.Notifier
	log      zerolog.Logger
}

func NewUserService(db database.DB, notifier notify.Notifier, log zerolog.Logger) *UserService {
	return &UserService{db: db, notifier: notifier, log: log}
}

// CreateUser 於交易內建立使用者並觸發通知
// 通知為 best-effort，不影響交易結果；任何持久化錯誤回滾並重新拋出
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("建立使用者失敗：無法開啟交易")
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	created, err := createUser(ctx, tx, &model.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Role:         model.RoleUser,
		Active:       true,
	})
	if err != nil {
		_ = tx.Rollback(ctx)
		s.log.Error().Err(err).Str("email", input.Email).Msg("建立使用者失敗")
		return nil, err
	}

	// 通知在持久化成功後觸發；寄送失敗由 dispatcher 內部吞掉，
	// 不會回滾也不會擋住 commit
	s.notifier.NotifyNewUser(*created)

	if err := tx.Commit(ctx); err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("建立使用者失敗：commit 錯誤")
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	metrics.UsersCreated.Inc()
	s.log.Info().Int("user_id", created.ID).Str("email", created.Email).Msg("新使用者建立成功")
	return created, nil
}

// ListUsers 執行查詢管線並為每列計算 can_edit
// actor 為 nil（匿名）時所有列的 can_edit 皆為 false
func (s *UserService) ListUsers(ctx context.Context, params store.ListUsersParams, actor *model.User) (*UserListing, error) {
	page, users, err := listUsers(ctx, s.db, params)
	if err != nil {
		s.log.Error().Err(err).Msg("查詢使用者列表失敗")
		return nil, err
	}

	items := make([]ListedUser, 0, len(users))
	for _, u := range users {
		items = append(items, ListedUser{User: u, CanEdit: CanEditUser(actor, u)})
	}
	return &UserListing{Page: page, Users: items}, nil
}

// EmailExists 檢查 email 是否已被使用
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return emailExists(ctx, s.db, email)
}
