// Package policy holds the object storage access rules.
package policy

import (
	"strings"

	"storefront/internal/domain/entity"
)

// Action is an object storage action.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
)

// Storage key prefixes.
const (
	PrefixProducts    = "products/"
	PrefixBrands      = "brands/"
	PrefixOrderImages = "order-images/"
)

// PrefixRule lists the actions each role may perform under a key prefix.
type PrefixRule struct {
	Prefix  string
	Actions map[entity.Role][]Action
}

var adminActions = []Action{ActionRead, ActionWrite, ActionDelete}

// StorageRules is the path-prefix access table.
var StorageRules = []PrefixRule{
	{
		Prefix: PrefixProducts,
		Actions: map[entity.Role][]Action{
			entity.RoleGuest:         {ActionRead},
			entity.RoleAuthenticated: {ActionRead},
			entity.RoleAdmin:         adminActions,
		},
	},
	{
		Prefix: PrefixBrands,
		Actions: map[entity.Role][]Action{
			entity.RoleGuest:         {ActionRead},
			entity.RoleAuthenticated: {ActionRead},
			entity.RoleAdmin:         adminActions,
		},
	},
	{
		Prefix: PrefixOrderImages,
		Actions: map[entity.Role][]Action{
			entity.RoleGuest:         {ActionRead, ActionWrite},
			entity.RoleAuthenticated: {ActionRead, ActionWrite},
			entity.RoleAdmin:         adminActions,
		},
	},
}

// Allows reports whether role may perform action on key. Unknown prefixes are denied.
func Allows(role entity.Role, key string, action Action) bool {
	if !ValidKey(key) {
		return false
	}
	for _, rule := range StorageRules {
		if !strings.HasPrefix(key, rule.Prefix) {
			continue
		}
		for _, granted := range rule.Actions[role] {
			if granted == action {
				return true
			}
		}

		return false
	}

	return false
}

// ValidKey rejects empty keys, bare prefixes and path traversal.
func ValidKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.HasSuffix(key, "/") {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}

	return true
}
