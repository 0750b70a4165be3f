package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table. Categories nest through ParentCategoryID.
type CategoryModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string     `gorm:"type:varchar(120);not null"`
	Description      string     `gorm:"type:text"`
	Active           bool       `gorm:"not null;default:true"`
	Tipo             string     `gorm:"type:varchar(32)"`
	ParentCategoryID *uuid.UUID `gorm:"type:uuid;index"`
	OrdenVisual      int        `gorm:"column:orden_visualizacion;not null;default:0"`
	ImageURL         string     `gorm:"type:varchar(512)"`
	EsDestacado      bool       `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Description string    `gorm:"type:text"`
	Logo        string    `gorm:"type:varchar(512)"`
	Active      bool      `gorm:"not null;default:true"`
	Country     string    `gorm:"type:varchar(64)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// ProductModel mirrors the 'products' table. Image, size and color lists are jsonb arrays.
type ProductModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string          `gorm:"type:varchar(200);not null"`
	Description        string          `gorm:"type:text"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OriginalPrice      decimal.Decimal `gorm:"type:numeric(12,2)"`
	DiscountPercentage int             `gorm:"not null;default:0"`
	Stock              int             `gorm:"not null;default:0"`
	Active             bool            `gorm:"not null;default:true;index"`
	Carousel           bool            `gorm:"not null;default:false"`
	IsPromoted         bool            `gorm:"not null;default:false"`
	BrandID            *uuid.UUID      `gorm:"type:uuid;index"`
	Gender             string          `gorm:"type:varchar(16);index"`
	Temporada          string          `gorm:"type:varchar(32)"`
	TipoProducto       string          `gorm:"type:varchar(32);index"`
	Ocasion            string          `gorm:"type:varchar(32)"`
	Material           string          `gorm:"type:varchar(120)"`
	ImageURL           string          `gorm:"type:varchar(512)"`
	AdditionalImages   []string        `gorm:"type:jsonb;serializer:json"`
	Tallas             []string        `gorm:"type:jsonb;serializer:json"`
	Colores            []string        `gorm:"type:jsonb;serializer:json"`
	PromotionStartDate *time.Time
	PromotionEndDate   *time.Time
	PromotionType      string `gorm:"type:varchar(64)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Brand      *BrandModel            `gorm:"foreignKey:BrandID"`
	Categories []ProductCategoryModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductCategoryModel mirrors the 'product_categories' join table.
type ProductCategoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_category"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_category;index"`
	CreatedAt  time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductCategoryModel) TableName() string {
	return "product_categories"
}
