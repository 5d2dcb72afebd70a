package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/ikkim/creme-backend/internal/app/model"
	"github.com/ikkim/creme-backend/internal/app/repository"
	"github.com/ikkim/creme-backend/pkg/util"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	categoriesSheet = "Categories"
	productsSheet   = "Products"
)

// Column layout of the Products sheet, after a header row.
const (
	colProductID = iota
	colName
	colDescription
	colPrice
	colSecondaryPrice
	colImage
	colCategory
	colFeatured
	colVisible
	colOptions
)

type menuSheet struct {
	Categories []menu.Category
	Products   []menu.Product
	Skipped    int
}

// readMenuFromXLSX reads the "Categories" sheet (id, label) and the
// "Products" sheet. Row order in Categories becomes the display order.
func readMenuFromXLSX(filePath string) (*menuSheet, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	out := &menuSheet{}

	catRows, err := f.GetRows(categoriesSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", categoriesSheet, err)
	}
	for i, row := range catRows {
		if i == 0 {
			continue
		}
		id := util.Slugify(cell(row, 0))
		label := cell(row, 1)
		if id == "" || label == "" {
			out.Skipped++
			continue
		}
		out.Categories = append(out.Categories, menu.Category{ID: id, Label: label, SortOrder: len(out.Categories)})
	}

	productRows, err := f.GetRows(productsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", productsSheet, err)
	}
	for i, row := range productRows {
		if i == 0 {
			continue
		}
		p, err := parseProductRow(row)
		if err != nil {
			fmt.Printf("Skipping product row %d: %v\n", i+1, err)
			out.Skipped++
			continue
		}
		out.Products = append(out.Products, p)
	}

	return out, nil
}

func parseProductRow(row []string) (menu.Product, error) {
	price, err := parseMoney(cell(row, colPrice))
	if err != nil {
		return menu.Product{}, fmt.Errorf("price: %w", err)
	}

	p := menu.Product{
		ID:          cell(row, colProductID),
		Name:        cell(row, colName),
		Description: cell(row, colDescription),
		Price:       price,
		Image:       cell(row, colImage),
		Category:    util.Slugify(cell(row, colCategory)),
		IsFeatured:  parseFlag(cell(row, colFeatured), false),
		IsVisible:   parseFlag(cell(row, colVisible), true),
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if raw := cell(row, colSecondaryPrice); raw != "" {
		secondary, err := parseMoney(raw)
		if err != nil {
			return menu.Product{}, fmt.Errorf("secondary price: %w", err)
		}
		p.SecondaryPrice = &secondary
	}

	if raw := cell(row, colOptions); raw != "" {
		for _, opt := range strings.Split(raw, ",") {
			if opt = strings.TrimSpace(opt); opt != "" {
				p.AvailableOptions = append(p.AvailableOptions, opt)
			}
		}
	}

	if err := p.Validate(); err != nil {
		return menu.Product{}, err
	}
	return p, nil
}

// importMenu upserts categories before products.
func importMenu(ctx context.Context, gdb *gorm.DB, sheet *menuSheet) error {
	categoryRows := make([]model.Category, 0, len(sheet.Categories))
	for _, c := range sheet.Categories {
		categoryRows = append(categoryRows, model.CategoryFromMenu(c))
	}
	if len(categoryRows) > 0 {
		if err := repository.NewCategoryRepository(gdb).Upsert(ctx, categoryRows); err != nil {
			return fmt.Errorf("upsert categories: %w", err)
		}
	}

	productRows := make([]model.Product, 0, len(sheet.Products))
	for _, p := range sheet.Products {
		productRows = append(productRows, model.ProductFromMenu(p))
	}
	if len(productRows) > 0 {
		if err := repository.NewProductRepository(gdb).Upsert(ctx, productRows); err != nil {
			return fmt.Errorf("upsert products: %w", err)
		}
	}
	return nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseMoney(s string) (float64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "RM")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseFlag(s string, fallback bool) bool {
	switch strings.ToLower(s) {
	case "y", "yes", "true", "1":
		return true
	case "n", "no", "false", "0":
		return false
	}
	return fallback
}
