package main

import (
	"github.com/savdo-next/internal/config"
	"github.com/savdo-next/internal/logger"
	"github.com/savdo-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "热菜"},
		{Name: "凉菜"},
		{Name: "饮品"},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Name)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("name IN ?", []string{"热菜", "凉菜", "饮品"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Name] = cat.ID
	}

	// 添加滚动分类
	scrolls := []models.CategoryScroll{
		{Name: "今日推荐", Image: "banners/today.png"},
		{Name: "新品上架", Image: "banners/new.png"},
	}
	for _, scroll := range scrolls {
		var existing models.CategoryScroll
		if err := models.DB.Where("name = ?", scroll.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&scroll).Error; err != nil {
				stdLog.Printf("Failed to create category scroll %s: %v", scroll.Name, err)
			} else {
				stdLog.Printf("Created category scroll: %s", scroll.Name)
			}
		} else {
			stdLog.Printf("Category scroll already exists: %s", scroll.Name)
		}
	}

	// 添加演示用户
	users := []models.User{
		{Number: "13800000001", Name: "演示用户一"},
		{Number: "13800000002", Name: "演示用户二"},
	}
	for _, user := range users {
		var existing models.User
		if err := models.DB.Where("number = ?", user.Number).First(&existing).Error; err != nil {
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create user %s: %v", user.Number, err)
			} else {
				stdLog.Printf("Created user: %s", user.Number)
			}
		} else {
			stdLog.Printf("User already exists: %s", user.Number)
		}
	}

	// 添加演示商品
	discount := int64(20)
	products := []models.Product{
		{
			Name:        "宫保鸡丁",
			Description: "经典川味热菜",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(38.00)),
			Discount:    &discount,
			Quantity:    100,
			CategoryID:  categoryIDs["热菜"],
		},
		{
			Name:        "拍黄瓜",
			Description: "清爽开胃凉菜",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(12.00)),
			Quantity:    50,
			CategoryID:  categoryIDs["凉菜"],
		},
		{
			Name:        "酸梅汤",
			Description: "手工熬制饮品",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(8.00)),
			Quantity:    200,
			CategoryID:  categoryIDs["饮品"],
		},
	}
	for _, product := range products {
		if product.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category missing", product.Name)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	stdLog.Println("Seed finished")
}
