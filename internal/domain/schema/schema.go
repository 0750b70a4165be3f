// Package schema declares the storefront data models and who may do what with them.
// Rules are data: usecases consult the table before touching the data service.
package schema

import "storefront/internal/domain/entity"

// Model names a data-service model.
type Model string

const (
	ModelCategory        Model = "Category"
	ModelBrand           Model = "Brand"
	ModelProduct         Model = "Product"
	ModelProductCategory Model = "ProductCategory"
	ModelCart            Model = "Cart"
	ModelCartItem        Model = "CartItem"
	ModelOrder           Model = "Order"
	ModelWishlist        Model = "Wishlist"
	ModelProfile         Model = "Profile"
)

// Operation is a data-service operation.
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Principal is the caller a rule is evaluated for.
type Principal struct {
	Role    entity.Role
	IsOwner bool
}

// Rule grants operations to one principal class of a model.
type Rule struct {
	Role  entity.Role
	Owner bool // grants apply only when the principal owns the record
	Ops   []Operation
}

var (
	all      = []Operation{OpRead, OpCreate, OpUpdate, OpDelete}
	readOnly = []Operation{OpRead}
	catalog  = []Rule{
		{Role: entity.RoleAdmin, Ops: all},
		{Role: entity.RoleAuthenticated, Ops: readOnly},
		{Role: entity.RoleGuest, Ops: readOnly},
	}
)

// Rules is the authorization table of every model.
var Rules = map[Model][]Rule{
	ModelCategory:        catalog,
	ModelBrand:           catalog,
	ModelProduct:         catalog,
	ModelProductCategory: catalog,
	ModelCart:            catalog,
	ModelCartItem:        catalog,
	ModelOrder: {
		{Role: entity.RoleAdmin, Ops: all},
		{Role: entity.RoleAuthenticated, Ops: []Operation{OpRead, OpCreate}},
		{Role: entity.RoleGuest, Ops: []Operation{OpRead, OpCreate}},
	},
	ModelWishlist: {
		{Role: entity.RoleAuthenticated, Ops: []Operation{OpRead, OpCreate, OpDelete}},
	},
	ModelProfile: {
		{Role: entity.RoleAdmin, Ops: all},
		{Role: entity.RoleAuthenticated, Ops: []Operation{OpCreate}},
		{Role: entity.RoleAuthenticated, Owner: true, Ops: []Operation{OpRead, OpUpdate}},
	},
}

// Allows reports whether principal may perform op on model.
// Admins are also authenticated users, so authenticated grants apply to them.
func Allows(model Model, principal Principal, op Operation) bool {
	for _, rule := range Rules[model] {
		if !roleMatches(rule.Role, principal.Role) {
			continue
		}
		if rule.Owner && !principal.IsOwner {
			continue
		}
		for _, granted := range rule.Ops {
			if granted == op {
				return true
			}
		}
	}

	return false
}

func roleMatches(ruleRole, role entity.Role) bool {
	if ruleRole == role {
		return true
	}

	return ruleRole == entity.RoleAuthenticated && role == entity.RoleAdmin
}
