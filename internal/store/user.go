package store

import (
	"context"
	"errors"
	"fmt"

	"user-center/internal/database"
	"user-center/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateEmail 表示 email 唯一約束被違反
var ErrDuplicateEmail = errors.New("email already exists")

// UsersPerPage 列表固定每頁筆數
const UsersPerPage = 15

// pgUniqueViolation Postgres unique_violation 錯誤碼
const pgUniqueViolation = "23505"

// ListUsersParams 列表查詢條件
// SortBy 不在白名單內時回退為 created_at，Page < 1 時回退為 1
type ListUsersParams struct {
	Search string
	SortBy string
	Page   int
}

// CreateUser 新增使用者並回填 id 與 created_at
// email 撞到唯一約束時回傳 ErrDuplicateEmail
func CreateUser(ctx context.Context, q database.Querier, u *model.User) (*model.User, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name, role, active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.Role,
		u.Active,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// EmailExists 檢查 email 是否已被使用
func EmailExists(ctx context.Context, q database.Querier, email string) (bool, error) {
	row := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("EmailExists: %w", err)
	}
	return exists, nil
}

// ListUsers 以單一查詢完成過濾、搜尋、排序、訂單數彙總與分頁
// 回傳正規化後的頁碼與該頁使用者（含 OrdersCount）
func ListUsers(ctx context.Context, q database.Querier, p ListUsersParams) (int, []model.User, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}

	sql := `SELECT u.id, u.email, u.name, u.role, u.active, u.created_at,
		       COUNT(o.id) AS orders_count
		FROM users u
		LEFT JOIN orders o ON o.user_id = u.id
		WHERE u.active`

	args := []any{}
	if p.Search != "" {
		args = append(args, "%"+p.Search+"%")
		sql += fmt.Sprintf(` AND (u.name ILIKE $%d OR u.email ILIKE $%d)`, len(args), len(args))
	}

	// 排序欄位白名單，id 作為次要排序確保分頁穩定
	sql += ` GROUP BY u.id ORDER BY u.` + sortColumn(p.SortBy) + ` ASC, u.id ASC`

	args = append(args, UsersPerPage)
	sql += fmt.Sprintf(` LIMIT $%d`, len(args))
	args = append(args, (page-1)*UsersPerPage)
	sql += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.Name,
			&u.Role,
			&u.Active,
			&u.CreatedAt,
			&u.OrdersCount,
		); err != nil {
			return 0, nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("ListUsers: %w", err)
	}
	return page, users, nil
}

func sortColumn(sortBy string) string {
	switch sortBy {
	case "name", "email", "created_at":
		return sortBy
	default:
		return "created_at"
	}
}
