package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos del inventario.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create valida y crea un producto. Stock y precio mínimos de 1, como el
// formulario de inventario.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if err := validateProducto(in); err != nil {
		return nil, err
	}
	producto := &entity.Producto{
		Name:        in.Name,
		Description: in.Description,
		Stock:       in.Stock,
		Price:       in.Price,
		Image:       in.Image,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (uc *ProductoUseCase) GetByID(id int) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// List lista productos; q filtra por nombre ignorando mayúsculas y tildes.
func (uc *ProductoUseCase) List(q string) ([]*dto.ProductoResponse, error) {
	productos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		if q != "" && !MatchesFold(p.Name, q) {
			continue
		}
		list = append(list, toProductoResponse(p))
	}
	return list, nil
}

// Update reemplaza los datos del producto conservando su ID.
func (uc *ProductoUseCase) Update(id int, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	if err := validateProducto(in); err != nil {
		return nil, err
	}
	producto := &entity.Producto{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Stock:       in.Stock,
		Price:       in.Price,
		Image:       in.Image,
	}
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Delete elimina un producto.
func (uc *ProductoUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

func validateProducto(in dto.CreateProductoRequest) error {
	if in.Name == "" || in.Description == "" {
		return domain.ErrInvalidInput
	}
	if in.Stock < 1 || in.Price.LessThan(decimal.NewFromInt(1)) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Stock:       p.Stock,
		Price:       p.Price,
		Image:       p.Image,
	}
}
