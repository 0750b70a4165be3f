package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType classifies a category.
type CategoryType string

const (
	CategoryGenero       CategoryType = "genero"
	CategoryTemporada    CategoryType = "temporada"
	CategoryTipoProducto CategoryType = "tipoProducto"
	CategoryColeccion    CategoryType = "coleccion"
	CategoryOcasion      CategoryType = "ocasion"
	CategoryDestacado    CategoryType = "destacado"
	CategoryOtro         CategoryType = "otro"
)

// IsValid checks if the CategoryType is a valid value.
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryGenero, CategoryTemporada, CategoryTipoProducto, CategoryColeccion,
		CategoryOcasion, CategoryDestacado, CategoryOtro:
		return true
	default:
		return false
	}
}

// Gender is the target audience of a garment.
type Gender string

const (
	GenderMujer  Gender = "mujer"
	GenderHombre Gender = "hombre"
	GenderUnisex Gender = "unisex"
)

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMujer, GenderHombre, GenderUnisex:
		return true
	default:
		return false
	}
}

// Season is the collection season of a product.
type Season string

const (
	SeasonPrimaveraVerano Season = "primavera-verano"
	SeasonOtonoInvierno   Season = "otono-invierno"
	SeasonTodoElAno       Season = "todo-el-ano"
	SeasonBano            Season = "bano"
	SeasonHalloween       Season = "halloween"
)

// IsValid checks if the Season is a valid value.
func (s Season) IsValid() bool {
	switch s {
	case SeasonPrimaveraVerano, SeasonOtonoInvierno, SeasonTodoElAno, SeasonBano, SeasonHalloween:
		return true
	default:
		return false
	}
}

// ProductType is the garment or accessory kind.
type ProductType string

var productTypes = map[ProductType]struct{}{
	// tops
	"camiseta": {}, "blusa": {}, "camisa": {}, "sueter": {}, "top": {}, "crop-top": {},
	// bottoms
	"pantalon": {}, "jeans": {}, "shorts": {}, "falda": {}, "leggins": {},
	// full body
	"vestido": {}, "jumpsuit": {}, "enterizo": {}, "conjunto": {},
	// outerwear
	"chaqueta": {}, "abrigo": {}, "cardigan": {}, "blazer": {},
	// swimwear
	"traje-de-bano": {}, "bikini": {}, "salida-de-bano": {},
	// lingerie and sleepwear
	"lenceria": {}, "pijama": {}, "ropa-interior": {}, "sosten": {},
	// footwear
	"tenis": {}, "botas": {}, "sandalias": {}, "tacones": {}, "zapatos-planos": {},
	// accessories
	"bolso": {}, "cartera": {}, "joyeria": {}, "sombrero": {}, "bufanda": {}, "cinturon": {}, "accesorio": {},
	// halloween
	"disfraz": {}, "accesorio-halloween": {},
	"otro": {},
}

// IsValid checks if the ProductType is a valid value.
func (t ProductType) IsValid() bool {
	_, ok := productTypes[t]

	return ok
}

// Occasion is the intended use of a product.
type Occasion string

const (
	OccasionCasual         Occasion = "casual"
	OccasionTrabajo        Occasion = "trabajo"
	OccasionFiesta         Occasion = "fiesta"
	OccasionFormal         Occasion = "formal"
	OccasionDeportiva      Occasion = "deportiva"
	OccasionPlaya          Occasion = "playa"
	OccasionHalloween      Occasion = "halloween"
	OccasionEventoEspecial Occasion = "evento-especial"
	OccasionDiario         Occasion = "diario"
	OccasionOtro           Occasion = "otro"
)

// IsValid checks if the Occasion is a valid value.
func (o Occasion) IsValid() bool {
	switch o {
	case OccasionCasual, OccasionTrabajo, OccasionFiesta, OccasionFormal, OccasionDeportiva,
		OccasionPlaya, OccasionHalloween, OccasionEventoEspecial, OccasionDiario, OccasionOtro:
		return true
	default:
		return false
	}
}

// Category groups products; categories nest through ParentCategoryID.
type Category struct {
	ID               uuid.UUID    `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description,omitempty"`
	Active           bool         `json:"active"`
	Type             CategoryType `json:"tipo,omitempty"`
	ParentCategoryID *uuid.UUID   `json:"parentCategoryID,omitempty"`
	SubCategories    []*Category  `json:"subCategories,omitempty"`
	DisplayOrder     int          `json:"ordenVisualizacion"`
	ImageURL         string       `json:"imageUrl,omitempty"`
	IsFeatured       bool         `json:"esDestacado"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// Brand is a product manufacturer.
type Brand struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	Active      bool      `json:"active"`
	Country     string    `json:"country,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Product is a sellable catalog item.
type Product struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	Price              decimal.Decimal `json:"price"`
	OriginalPrice      decimal.Decimal `json:"originalPrice"`
	DiscountPercentage int             `json:"discountPercentage"`
	Stock              int             `json:"stock"`
	Active             bool            `json:"active"`
	Carousel           bool            `json:"carousel"`
	IsPromoted         bool            `json:"isPromoted"`
	BrandID            *uuid.UUID      `json:"brandID,omitempty"`
	Brand              *Brand          `json:"brand,omitempty"`
	Gender             Gender          `json:"gender,omitempty"`
	Season             Season          `json:"temporada,omitempty"`
	ProductType        ProductType     `json:"tipoProducto,omitempty"`
	Occasion           Occasion        `json:"ocasion,omitempty"`
	Material           string          `json:"material,omitempty"`
	ImageURL           string          `json:"imageUrl,omitempty"`
	AdditionalImages   []string        `json:"additionalImages,omitempty"`
	Sizes              []string        `json:"tallas,omitempty"`
	Colors             []string        `json:"colores,omitempty"`
	PromotionStartDate *time.Time      `json:"promotionStartDate,omitempty"`
	PromotionEndDate   *time.Time      `json:"promotionEndDate,omitempty"`
	PromotionType      string          `json:"promotionType,omitempty"`
	CategoryIDs        []uuid.UUID     `json:"categoryIDs,omitempty"`
	Categories         []*Category     `json:"categories,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// PromotionActive reports whether the promotion window covers now.
// An open-ended window only requires IsPromoted.
func (p *Product) PromotionActive(now time.Time) bool {
	if !p.IsPromoted {
		return false
	}
	if p.PromotionStartDate != nil && now.Before(*p.PromotionStartDate) {
		return false
	}
	if p.PromotionEndDate != nil && now.After(*p.PromotionEndDate) {
		return false
	}

	return true
}

// InStock reports whether at least qty units are available.
func (p *Product) InStock(qty int) bool {
	return p.Stock >= qty
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	CategoryID  *uuid.UUID
	BrandID     *uuid.UUID
	Gender      Gender
	ProductType ProductType
	Promoted    *bool
	Carousel    *bool
	ActiveOnly  bool
	Limit       int
	Offset      int
}
