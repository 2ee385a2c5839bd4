package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El Stock solo se fija al
// crear (saldo inicial); después cambia únicamente vía el kardex.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida las reglas de negocio y crea el producto. Ninguna regla
// violada deja estado parcial: la validación corre completa antes de escribir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := inventory.ValidateProductRules(inventory.ProductRuleInput{
		SKU:      in.SKU,
		Price:    in.Price,
		Cost:     in.Cost,
		Stock:    in.Stock,
		MinStock: in.MinStock,
		MaxStock: in.MaxStock,
		Images:   in.Images,
		Tags:     in.Tags,
	}); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Cost:        in.Cost,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		MaxStock:    in.MaxStock,
		Images:      in.Images,
		Tags:        in.Tags,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID con su clasificación de stock.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza atributos del producto. No permite modificar Stock: todo
// cambio de stock pasa por el kardex para no romper la pista de auditoría.
// Las reglas de negocio se revalidan sobre el estado resultante.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		product.MaxStock = in.MaxStock
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.Tags != nil {
		product.Tags = in.Tags
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}

	if err := inventory.ValidateProductRules(inventory.ProductRuleInput{
		SKU:      product.SKU,
		Price:    product.Price,
		Cost:     product.Cost,
		Stock:    product.Stock,
		MinStock: product.MinStock,
		MaxStock: product.MaxStock,
		Images:   product.Images,
		Tags:     product.Tags,
	}); err != nil {
		return nil, err
	}

	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos activos con búsqueda por nombre insensible a acentos.
func (uc *ProductUseCase) List(search string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListActive(NormalizeSearch(search), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Deactivate da de baja lógica un producto (IsActive=false). El historial del
// kardex se conserva intacto.
func (uc *ProductUseCase) Deactivate(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

// searchNormalizer descompone (NFD), elimina marcas diacríticas y recompone,
// para que "cafe" encuentre "Café".
var searchNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSearch normaliza un término de búsqueda: minúsculas y sin acentos.
func NormalizeSearch(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	out, _, err := transform.String(searchNormalizer, s)
	if err != nil {
		return s
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Price:           p.Price,
		Cost:            p.Cost,
		Stock:           p.Stock,
		MinStock:        p.MinStock,
		MaxStock:        p.MaxStock,
		Images:          p.Images,
		Tags:            p.Tags,
		IsActive:        p.IsActive,
		StockStatus:     inventory.Classify(p.Stock, p.MinStock),
		StockPercentage: inventory.StockPercentage(p.Stock, p.MinStock, p.MaxStock),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
