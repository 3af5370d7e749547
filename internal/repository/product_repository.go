package repository

import (
	"errors"
	"strings"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// 排序白名单：查询参数字段 -> 数据库列
var productOrderingColumns = map[string]string{
	constants.OrderingPrice:     "price",
	constants.OrderingQuantity:  "quantity",
	constants.OrderingDiscount:  "discount",
	constants.OrderingCreatedAt: "created_at",
}

// List 商品列表（精确过滤 + 名称/描述模糊搜索 + 白名单排序 + 分页）
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithImages {
		query = query.Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_main DESC, id ASC")
		})
	}
	if categoryID := strings.TrimSpace(filter.CategoryID); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if price := strings.TrimSpace(filter.Price); price != "" {
		query = query.Where("price = ?", price)
	}
	if quantity := strings.TrimSpace(filter.Quantity); quantity != "" {
		query = query.Where("quantity = ?", quantity)
	}
	if discount := strings.TrimSpace(filter.Discount); discount != "" {
		query = query.Where("discount = ?", discount)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(resolveProductOrdering(filter.Ordering))
	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// resolveProductOrdering 将 "-price" 风格的排序参数映射为 ORDER BY 子句。
// 白名单之外的字段回退到按创建时间倒序。
func resolveProductOrdering(ordering string) string {
	ordering = strings.TrimSpace(ordering)
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	column, ok := productOrderingColumns[field]
	if !ok {
		return "created_at DESC, id DESC"
	}
	if desc {
		return column + " DESC, id DESC"
	}
	return column + " ASC, id ASC"
}

// GetByID 根据 ID 获取商品（带图片与评分）
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_main DESC, id ASC")
		}).
		Preload("Ratings").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete 删除商品及其图片/评分/点赞/订单项
func (r *GormProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductRate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.LikeProduct{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}
