package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestViolation(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantCode       string
		wantConstraint string
	}{
		{
			name:           "wrapped pg error",
			err:            errors.Wrap(&pgconn.PgError{Code: sqlStateForeignKey, ConstraintName: constraintProductBrand}, "insert"),
			wantCode:       sqlStateForeignKey,
			wantConstraint: constraintProductBrand,
		},
		{
			name:     "translated duplicate",
			err:      gorm.ErrDuplicatedKey,
			wantCode: sqlStateUnique,
		},
		{
			name:     "translated check",
			err:      gorm.ErrCheckConstraintViolated,
			wantCode: sqlStateCheck,
		},
		{
			name: "unrelated",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, constraint := violation(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantConstraint, constraint)
		})
	}
}

func TestConstraintClassifiers(t *testing.T) {
	notNull := &pgconn.PgError{Code: sqlStateNotNull, ColumnName: "email"}
	unique := &pgconn.PgError{Code: sqlStateUnique, ConstraintName: "idx_wishlist_user_product"}
	wishlistFK := &pgconn.PgError{Code: sqlStateForeignKey, ConstraintName: constraintWishlistProduct}

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(errors.New("value is required")))
	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isForeignKeyConstraintViolation(wishlistFK))
	assert.False(t, isCheckConstraintViolation(wishlistFK))

	assert.True(t, violates(wishlistFK, constraintCartItemProduct, constraintWishlistProduct))
	assert.False(t, violates(wishlistFK, constraintCategoryLink))
	assert.False(t, violates(gorm.ErrForeignKeyViolated, constraintWishlistProduct))
}
