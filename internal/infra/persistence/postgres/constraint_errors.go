package postgres

import (
	"slices"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes of the integrity violations the repositories translate.
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
	sqlStateCheck      = "23514"
)

// Constraint names as AutoMigrate derives them from the models.
const (
	constraintWishlistProduct = "fk_wishlists_product"
	constraintCartItemProduct = "fk_cart_items_product"
	constraintProductBrand    = "fk_products_brand"
	constraintCategoryLink    = "fk_product_categories_category"
)

// violation returns the SQLSTATE and constraint name of an integrity error.
// Errors the dialector already translated only carry the class.
func violation(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return sqlStateUnique, ""
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return sqlStateForeignKey, ""
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return sqlStateCheck, ""
	default:
		return "", ""
	}
}

func isUniqueConstraintViolation(err error) bool {
	code, _ := violation(err)

	return code == sqlStateUnique
}

func isForeignKeyConstraintViolation(err error) bool {
	code, _ := violation(err)

	return code == sqlStateForeignKey
}

func isNotNullConstraintViolation(err error) bool {
	code, _ := violation(err)

	return code == sqlStateNotNull
}

func isCheckConstraintViolation(err error) bool {
	code, _ := violation(err)

	return code == sqlStateCheck
}

// violates reports whether err was raised by one of the named constraints.
func violates(err error, constraints ...string) bool {
	_, name := violation(err)

	return name != "" && slices.Contains(constraints, name)
}
