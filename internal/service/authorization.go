// File: internal/service/authorization.go
package service

import "user-center/internal/model"

// CanEditUser 判斷 actor 是否可編輯 target
// 規則依序評估，命中即回傳：
// 1. administrator 可編輯任何人
// 2. manager 僅可編輯 role 為 user 的對象
// 3. 其他情況僅可編輯自己
// actor 為 nil（匿名）時一律 false
// 純函式，無副作用、無 I/O
func CanEditUser(actor *model.User, target model.User) bool {
	if actor == nil {
		return false
	}
	if actor.Role == model.RoleAdministrator {
		return true
	}
	if actor.Role == model.RoleManager {
		return target.Role == model.RoleUser
	}
	return actor.ID == target.ID
}
